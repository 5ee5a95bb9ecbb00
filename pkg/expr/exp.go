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
	"fmt"
	"math"

	"github.com/consensys/go-symdiff/pkg/util/source/sexp"
	"github.com/consensys/go-symdiff/pkg/util/tensor"
)

// Exponent represents a constant (scalar or array) base raised to an
// expression.
type Exponent struct {
	radix    tensor.Value
	exponent Expr
}

// Exponential returns an expression representing a constant base raised to
// the power of a given expression.  Constant exponents are folded, whilst a
// base of zero (resp. one) gives zero (resp. one).
func Exponential(radix tensor.Value, exponent Expr) Expr {
	if c := IsConstant(exponent); c != nil {
		if val, err := tensor.Pow(radix, c.value); err == nil {
			return Const(val)
		}
		//
		return &Exponent{radix, exponent}
	}
	//
	switch {
	case radix.IsClose(0):
		return Float(0)
	case radix.IsClose(1):
		return Float(1)
	}
	//
	return &Exponent{radix, exponent}
}

// Exp returns an expression representing e raised to the power of a given
// expression.
func Exp(exponent Expr) Expr {
	return Exponential(tensor.Scalar(math.E), exponent)
}

// Radix returns the constant base of this exponent.
func (p *Exponent) Radix() tensor.Value { return p.radix }

// Power returns the expression this exponent's base is raised to.
func (p *Exponent) Power() Expr { return p.exponent }

// Compute implementation for Expr interface.
func (p *Exponent) Compute(values Assignment) (tensor.Value, error) {
	val, err := p.exponent.Compute(values)
	if err != nil {
		return val, err
	}
	//
	return tensor.Pow(p.radix, val)
}

// Backward implementation for Expr interface.
func (p *Exponent) Backward(v *Variable) Expr {
	return Multiply(
		Const(tensor.Log(p.radix)),
		Multiply(Exponential(p.radix, p.exponent), p.exponent.Backward(v)),
	)
}

// Lisp implementation for Expr interface.
func (p *Exponent) Lisp() sexp.SExp {
	if isNatural(p.radix) {
		return sexp.NewList(sexp.NewSymbol("exp"), p.exponent.Lisp())
	}
	//
	return sexp.NewList(sexp.NewSymbol("^"), lispOfValue(p.radix), p.exponent.Lisp())
}

func (p *Exponent) String() string {
	if isNatural(p.radix) {
		return fmt.Sprintf("e^%s", p.exponent)
	}
	//
	return fmt.Sprintf("%s^%s", p.radix, p.exponent)
}

func (p *Exponent) node() {}

// Check whether a given base is (approximately) Euler's number.
func isNatural(radix tensor.Value) bool {
	return radix.IsClose(math.E)
}
