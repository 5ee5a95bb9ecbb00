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
package gradcheck

import (
	"math"
	"testing"

	"github.com/consensys/go-symdiff/pkg/expr"
	"github.com/consensys/go-symdiff/pkg/util/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Check_01(t *testing.T) {
	x, y := expr.NewVariable("x"), expr.NewVariable("y")
	f := expr.Divide(expr.Multiply(x, expr.Exp(y)), expr.Add(x, expr.Float(1)))
	at := expr.Assignment{x: tensor.Scalar(0.7), y: tensor.Scalar(-0.3)}
	//
	for _, v := range []*expr.Variable{x, y} {
		result, err := Check(f, v, at, DefaultConfig())
		require.NoError(t, err)
		assert.False(t, result.Skipped)
		assert.True(t, result.Agrees, result.String())
	}
}

func Test_Check_02(t *testing.T) {
	x := expr.NewVariable("x")
	// Logarithms to a non-natural base scale by ln(base), rather than dividing.
	result, err := Check(expr.Log(tensor.Scalar(10), x), x, expr.Assignment{x: tensor.Scalar(2)}, DefaultConfig())
	//
	require.NoError(t, err)
	assert.False(t, result.Agrees)
	assert.InDelta(t, math.Log(10)/2, result.Symbolic, 1e-9)
	assert.InDelta(t, 1/(2*math.Log(10)), result.Numeric, 1e-6)
}

func Test_Check_03(t *testing.T) {
	x := expr.NewVariable("x")
	result, err := Check(expr.Divide(expr.Float(1), x), x, expr.Assignment{x: tensor.Scalar(0)}, DefaultConfig())
	//
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.False(t, result.Agrees)
}

func Test_Check_04(t *testing.T) {
	x, y := expr.NewVariable("x"), expr.NewVariable("y")
	_, err := Check(expr.Multiply(x, y), x, expr.Assignment{x: tensor.Scalar(1)}, DefaultConfig())
	//
	var lerr *expr.LookupError
	assert.ErrorAs(t, err, &lerr)
}

func Test_Check_05(t *testing.T) {
	x := expr.NewVariable("x")
	_, err := Check(expr.Add(x, x), x, expr.Assignment{x: tensor.Vector(1, 2)}, DefaultConfig())
	//
	assert.Error(t, err)
}

func Test_Generator_01(t *testing.T) {
	x, y := expr.NewVariable("x"), expr.NewVariable("y")
	g1 := NewGenerator(42, x, y)
	g2 := NewGenerator(42, x, y)
	//
	for i := 0; i < 20; i++ {
		e1, e2 := g1.Generate(4), g2.Generate(4)
		assert.True(t, expr.Equal(e1, e2), "%s != %s", e1, e2)
	}
}

func Test_Generator_02(t *testing.T) {
	x := expr.NewVariable("x")
	g := NewGenerator(7, x)
	//
	for i := 0; i < 50; i++ {
		assert.Equal(t, uint(1), expr.Size(g.Generate(0)))
	}
}

func Test_Generator_03(t *testing.T) {
	x, y := expr.NewVariable("x"), expr.NewVariable("y")
	g := NewGenerator(3, x, y)
	//
	for i := 0; i < 50; i++ {
		at := g.Point(0.5, 2)
		require.Len(t, at, 2)
		//
		for _, val := range at {
			assert.GreaterOrEqual(t, val.Float(), 0.5)
			assert.Less(t, val.Float(), 2.0)
		}
	}
}

func Test_Run_01(t *testing.T) {
	for seed := uint64(1); seed <= 4; seed++ {
		opts := DefaultOptions()
		opts.Seed = seed
		opts.Depth = 3
		//
		report, err := Run(opts)
		require.NoError(t, err)
		assert.NotZero(t, report.Checked)
		//
		for _, f := range report.Failures {
			t.Errorf("seed %d: %s", seed, f)
		}
	}
}
