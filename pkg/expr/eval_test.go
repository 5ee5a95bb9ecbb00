// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package expr

import (
	"math"
	"testing"

	"github.com/consensys/go-symdiff/pkg/util/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Equal_01(t *testing.T) {
	x, y := NewVariable("x"), NewVariable("y")
	// Sums and products are commutative
	assert.True(t, Equal(Add(x, y), Add(y, x)))
	assert.True(t, Equal(Multiply(x, y), Multiply(y, x)))
	// Differences and quotients are not
	assert.False(t, Equal(Subtract(x, y), Subtract(y, x)))
	assert.False(t, Equal(Divide(x, y), Divide(y, x)))
	assert.True(t, Equal(Subtract(x, y), Subtract(x, y)))
	assert.True(t, Equal(Divide(x, y), Divide(x, y)))
}

func Test_Equal_02(t *testing.T) {
	x1, x2 := NewVariable("x"), NewVariable("x")
	//
	assert.Equal(t, x1.String(), x2.String())
	assert.False(t, SameVariable(x1, x2))
	assert.False(t, Equal(x1, x2))
	assert.True(t, Equal(x1, x1))
	assert.False(t, Equal(Add(x1, Float(1)), Add(x2, Float(1))))
}

func Test_Equal_03(t *testing.T) {
	assert.True(t, Equal(Float(1), Float(1+1e-9)))
	assert.False(t, Equal(Float(1), Float(1.01)))
	assert.True(t, Equal(Const(tensor.Vector(0, 0)), Float(0)))
	assert.False(t, Equal(Const(tensor.Vector(0, 0)), Const(tensor.Vector(0, 0, 0))))
	assert.True(t, Float(2).ApproxEqual(Float(2.000001)))
}

func Test_Equal_04(t *testing.T) {
	x := NewVariable("x")
	// Different kinds are never equal
	exprs := []Expr{x, Float(1), Add(x, Float(1)), Subtract(x, Float(1)), Multiply(x, Float(2)),
		Divide(x, Float(2)), Pow(x, num(2)), Exp(x), Ln(x)}
	//
	for i, e := range exprs {
		for j, f := range exprs {
			assert.Equal(t, i == j, Equal(e, f), "%s == %s", e, f)
		}
	}
}

func Test_Equal_05(t *testing.T) {
	x := NewVariable("x")
	assert.True(t, Equal(Pow(x, num(2)), Pow(x, num(2+1e-9))))
	assert.False(t, Equal(Pow(x, num(2)), Pow(x, num(3))))
	assert.True(t, Equal(Exponential(num(2), x), Exponential(num(2), x)))
	assert.False(t, Equal(Exponential(num(2), x), Exponential(num(3), x)))
	assert.True(t, Equal(Log(num(10), x), Log(num(10), x)))
	assert.False(t, Equal(Log(num(10), x), Ln(x)))
}

func Test_Equal_06(t *testing.T) {
	x := NewVariable("x")
	p := Pow(x, num(3)).(Powered)
	//
	assert.True(t, p.HasSameBase(x))
	assert.True(t, p.HasSameBase(Pow(x, num(2))))
	assert.False(t, p.HasSameBase(NewVariable("x")))
	assert.Same(t, x, p.Base())
	assert.Equal(t, 3.0, p.Exponent().Float())
}

func Test_Compute_01(t *testing.T) {
	x := NewVariable("x")
	val, err := Add(x, x).Compute(Assignment{x: tensor.Vector(1, 2, 3)})
	//
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, val.Data())
}

func Test_Compute_02(t *testing.T) {
	x, y := NewVariable("x"), NewVariable("y")
	_, err := Multiply(x, y).Compute(Assignment{x: num(1)})
	//
	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Same(t, y, lerr.Variable)
	assert.Contains(t, err.Error(), "y")
}

func Test_Compute_03(t *testing.T) {
	x, y := NewVariable("x"), NewVariable("y")
	e := Add(Multiply(x, y), Divide(Exp(x), Ln(y)))
	values := Assignment{x: num(0.3), y: num(1.7)}
	//
	first, err := e.Compute(values)
	require.NoError(t, err)
	// Evaluation is pure
	for i := 0; i < 4; i++ {
		next, err := e.Compute(values)
		require.NoError(t, err)
		assert.Equal(t, first.Data(), next.Data())
	}
	//
	expected := 0.3*1.7 + math.Exp(0.3)/math.Log(1.7)
	assert.InDelta(t, expected, first.Float(), 1e-12)
}

func Test_Compute_04(t *testing.T) {
	x, y := NewVariable("x"), NewVariable("y")
	// Mixing scalars and arrays broadcasts
	val, err := Subtract(x, y).Compute(Assignment{x: tensor.Vector(5, 6, 7), y: num(1)})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, val.Data())
	// Incompatible arrays fail
	_, err = Subtract(x, y).Compute(Assignment{x: tensor.Vector(5, 6, 7), y: tensor.Vector(1, 2)})
	var serr *tensor.ShapeError
	assert.ErrorAs(t, err, &serr)
}

func Test_Compute_05(t *testing.T) {
	x := NewVariable("x")
	//
	val, err := Log(num(2), x).Compute(Assignment{x: num(8)})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, val.Float(), 1e-12)
	//
	val, err = Exponential(num(2), x).Compute(Assignment{x: tensor.Vector(1, 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 8}, val.Data())
	//
	val, err = Pow(x, num(0.5)).Compute(Assignment{x: num(9)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, val.Float())
}

func Test_Compute_06(t *testing.T) {
	x := NewVariable("x")
	val, err := Divide(Float(1), x).Compute(Assignment{x: tensor.Vector(0, -0.5)})
	//
	require.NoError(t, err)
	assert.True(t, math.IsInf(val.At(0), 1))
	assert.Equal(t, -2.0, val.At(1))
}

func Test_FreeVariables_01(t *testing.T) {
	x, y, z := NewVariable("x"), NewVariable("y"), NewVariable("z")
	e := Add(Multiply(y, Exp(x)), Divide(Ln(x), Pow(Subtract(z, y), num(3))))
	//
	vars := FreeVariables(e)
	require.Len(t, vars, 3)
	assert.Same(t, y, vars[0])
	assert.Same(t, x, vars[1])
	assert.Same(t, z, vars[2])
	assert.Empty(t, FreeVariables(Float(2)))
	assert.Equal(t, uint(12), Size(e))
}

func Test_Display_01(t *testing.T) {
	x := NewVariable("x")
	//
	assert.Equal(t, "(x + 1)", Add(x, Float(1)).String())
	assert.Equal(t, "(x - 1)", Subtract(x, Float(1)).String())
	assert.Equal(t, "(2 * x)", Multiply(Float(2), x).String())
	assert.Equal(t, "(1/x)", Divide(Float(1), x).String())
	assert.Equal(t, "(x^(3))", Pow(x, num(3)).String())
	assert.Equal(t, "e^x", Exp(x).String())
	assert.Equal(t, "2^x", Exponential(num(2), x).String())
	assert.Equal(t, "lnx", Ln(x).String())
	assert.Equal(t, "log_(10)x", Log(num(10), x).String())
}

func Test_Display_02(t *testing.T) {
	x := NewVariable("x")
	e := Add(Multiply(Const(tensor.Vector(1, 2)), Pow(x, num(2))), Ln(x))
	//
	assert.Equal(t, "(+ (* [1 2] (^ x 2)) (ln x))", e.Lisp().String(false))
	assert.Equal(t, "(^ 2 (exp x))", Exponential(num(2), Exp(x)).Lisp().String(false))
	assert.Equal(t, "(log 10 x)", Log(num(10), x).Lisp().String(false))
}
