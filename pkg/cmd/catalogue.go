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
package cmd

import (
	"sort"

	"github.com/consensys/go-symdiff/pkg/expr"
	"github.com/consensys/go-symdiff/pkg/util/tensor"
)

// sample is a named expression from the built-in catalogue.
type sample struct {
	name        string
	description string
	// Builds the expression over a fresh set of variables.
	build func(x, y *expr.Variable) expr.Expr
}

var catalogue = []sample{
	{"square", "x*x", func(x, _ *expr.Variable) expr.Expr {
		return expr.Multiply(x, x)
	}},
	{"cubic", "x^3 - 2x + 1", func(x, _ *expr.Variable) expr.Expr {
		return expr.T(x).Pow(3).Minus(expr.T(x).Times(2)).Plus(1).Expr
	}},
	{"rational", "x / (x^2 + 1)", func(x, _ *expr.Variable) expr.Expr {
		return expr.T(x).Over(expr.T(x).Pow(2).Plus(1)).Expr
	}},
	{"gaussian", "e^(-x^2/2)", func(x, _ *expr.Variable) expr.Expr {
		return expr.Exp(expr.Negate(expr.T(x).Pow(2).Over(2).Expr))
	}},
	{"logistic", "1 / (1 + e^-x)", func(x, _ *expr.Variable) expr.Expr {
		return expr.Divide(expr.Float(1), expr.Add(expr.Float(1), expr.Exp(expr.Negate(x))))
	}},
	{"softplus", "ln(1 + e^x)", func(x, _ *expr.Variable) expr.Expr {
		return expr.Ln(expr.Add(expr.Float(1), expr.Exp(x)))
	}},
	{"entropy", "-x ln(x)", func(x, _ *expr.Variable) expr.Expr {
		return expr.Negate(expr.Multiply(x, expr.Ln(x)))
	}},
	{"decay", "2^(-x)", func(x, _ *expr.Variable) expr.Expr {
		return expr.Exponential(tensor.Scalar(2), expr.Negate(x))
	}},
	{"log10", "log_10(x)", func(x, _ *expr.Variable) expr.Expr {
		return expr.Log(tensor.Scalar(10), x)
	}},
	{"bilinear", "x*y + y/x", func(x, y *expr.Variable) expr.Expr {
		return expr.Add(expr.Multiply(x, y), expr.Divide(y, x))
	}},
	{"norm", "(x^2 + y^2)^0.5", func(x, y *expr.Variable) expr.Expr {
		return expr.T(x).Pow(2).Plus(expr.T(y).Pow(2)).Pow(0.5).Expr
	}},
}

// Find a catalogue sample by name.
func findSample(name string) (sample, bool) {
	for _, s := range catalogue {
		if s.name == name {
			return s, true
		}
	}
	//
	return sample{}, false
}

// Names of all samples in the catalogue, in alphabetical order.
func sampleNames() []string {
	var names = make([]string, len(catalogue))
	//
	for i, s := range catalogue {
		names[i] = s.name
	}
	//
	sort.Strings(names)
	//
	return names
}
