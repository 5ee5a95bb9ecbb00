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
	"testing"

	"github.com/consensys/go-symdiff/pkg/util/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Term_01(t *testing.T) {
	x := NewVariable("x")
	//
	checkEqual(t, Add(Pow(x, num(2)), Float(1)), T(x).Times(x).Plus(1).Expr)
	checkEqual(t, Subtract(x, Float(2.5)), T(x).Minus(2.5).Expr)
	checkEqual(t, Divide(x, Add(x, Float(1))), T(x).Over(T(x).Plus(1)).Expr)
	checkEqual(t, Pow(x, num(3)), T(x).Pow(3).Expr)
	checkEqual(t, Pow(x, num(3)), T(x).Pow(Float(3)).Expr)
}

func Test_Term_02(t *testing.T) {
	x := NewVariable("x")
	// Identity operands are simplified away
	assert.Same(t, x, T(x).Plus(0).Times(1).Over(1).Pow(1).Expr)
	checkEqual(t, Float(6), T(2).Times(3).Expr)
}

func Test_Term_03(t *testing.T) {
	x := NewVariable("x")
	e := T(x).Plus([]float64{1, 2, 3})
	//
	val, err := e.Compute(Assignment{x: num(1)})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, val.Data())
	//
	e = T(x).Times(tensor.Vector(2, 2))
	val, err = e.Compute(Assignment{x: tensor.Vector(1, 2)})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, val.Data())
}

func Test_Term_04(t *testing.T) {
	x := NewVariable("x")
	d := T(x).Pow(2).Times(3).Backward(x)
	//
	val, err := d.Compute(Assignment{x: num(2)})
	require.NoError(t, err)
	assert.Equal(t, 12.0, val.Float())
}

func Test_Term_05(t *testing.T) {
	x := NewVariable("x")
	//
	assert.Panics(t, func() { T(x).Pow(x) })
	assert.Panics(t, func() { T(x).Plus("one") })
}
