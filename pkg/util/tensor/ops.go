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
package tensor

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Add returns the elementwise sum of two values.
func Add(lhs Value, rhs Value) (Value, error) {
	return combine("add", lhs, rhs, floats.AddTo, func(x, y float64) float64 { return x + y })
}

// Sub returns the elementwise difference of two values.
func Sub(lhs Value, rhs Value) (Value, error) {
	return combine("sub", lhs, rhs, floats.SubTo, func(x, y float64) float64 { return x - y })
}

// Mul returns the elementwise product of two values.
func Mul(lhs Value, rhs Value) (Value, error) {
	return combine("mul", lhs, rhs, floats.MulTo, func(x, y float64) float64 { return x * y })
}

// Div returns the elementwise quotient of two values.  Division by zero is not
// guarded against, and produces infinities or NaNs as per IEEE 754.
func Div(lhs Value, rhs Value) (Value, error) {
	return combine("div", lhs, rhs, floats.DivTo, func(x, y float64) float64 { return x / y })
}

// Pow returns lhs raised (elementwise) to the power rhs.
func Pow(lhs Value, rhs Value) (Value, error) {
	return zipWith("pow", lhs, rhs, math.Pow)
}

// Log returns the elementwise natural logarithm of a value.
func Log(v Value) Value {
	return v.Map(math.Log)
}

// Exp returns e raised (elementwise) to a given value.
func Exp(v Value) Value {
	return v.Map(math.Exp)
}

// Neg returns the elementwise negation of a value.
func Neg(v Value) Value {
	var data = slices.Clone(v.data)
	//
	floats.Scale(-1, data)
	//
	return Value{v.shape, data}
}

// Map applies a given function to every element of a value.
func (v Value) Map(fn func(float64) float64) Value {
	var data = make([]float64, len(v.data))
	//
	for i, x := range v.data {
		data[i] = fn(x)
	}
	// Shape can be shared as values are immutable
	return Value{v.shape, data}
}

// Combine two values using a gonum kernel when their shapes coincide, and
// falling back to general broadcasting otherwise.
func combine(op string, lhs Value, rhs Value, kernel func(dst, s, t []float64) []float64,
	fn func(float64, float64) float64) (Value, error) {
	if slices.Equal(lhs.shape, rhs.shape) {
		var data = make([]float64, len(lhs.data))
		//
		kernel(data, lhs.data, rhs.data)
		//
		return Value{lhs.shape, data}, nil
	}
	//
	return zipWith(op, lhs, rhs, fn)
}
