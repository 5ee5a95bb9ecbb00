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

// Logarithm represents the logarithm of an expression to a constant (scalar or
// array) base.
type Logarithm struct {
	radix    tensor.Value
	argument Expr
}

// Ln returns an expression representing the natural logarithm of a given
// expression.  Constant arguments are folded.
func Ln(argument Expr) Expr {
	return Log(tensor.Scalar(math.E), argument)
}

// Log returns an expression representing the logarithm of a given expression
// to a constant base.  Constant arguments are folded.
func Log(radix tensor.Value, argument Expr) Expr {
	if c := IsConstant(argument); c != nil {
		if val, err := tensor.Div(tensor.Log(c.value), tensor.Log(radix)); err == nil {
			return Const(val)
		}
	}
	//
	return &Logarithm{radix, argument}
}

// Radix returns the constant base of this logarithm.
func (p *Logarithm) Radix() tensor.Value { return p.radix }

// Argument returns the expression whose logarithm is taken.
func (p *Logarithm) Argument() Expr { return p.argument }

// Compute implementation for Expr interface.
func (p *Logarithm) Compute(values Assignment) (tensor.Value, error) {
	val, err := p.argument.Compute(values)
	if err != nil {
		return val, err
	}
	//
	return tensor.Div(tensor.Log(val), tensor.Log(p.radix))
}

// Backward implementation for Expr interface.  Observe that the factor ln(base)
// multiplies the numerator, hence this is exact only for natural logarithms.
//
// TODO: confirm whether non-natural bases should divide by ln(base) instead.
func (p *Logarithm) Backward(v *Variable) Expr {
	return Divide(
		Multiply(p.argument.Backward(v), Const(tensor.Log(p.radix))),
		p.argument,
	)
}

// Lisp implementation for Expr interface.
func (p *Logarithm) Lisp() sexp.SExp {
	if isNatural(p.radix) {
		return sexp.NewList(sexp.NewSymbol("ln"), p.argument.Lisp())
	}
	//
	return sexp.NewList(sexp.NewSymbol("log"), lispOfValue(p.radix), p.argument.Lisp())
}

func (p *Logarithm) String() string {
	if isNatural(p.radix) {
		return fmt.Sprintf("ln%s", p.argument)
	}
	//
	return fmt.Sprintf("log_(%s)%s", p.radix, p.argument)
}

func (p *Logarithm) node() {}
