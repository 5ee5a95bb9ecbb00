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

	"github.com/consensys/go-symdiff/pkg/util/tensor"
)

// Term wraps an expression to provide arithmetic operators in a fluent style.
// For example, given a variable x, T(x).Times(x).Plus(1) builds (x^2 + 1).
// Every operator delegates to the corresponding smart constructor, and raw
// numeric operands are lifted into constants.
type Term struct {
	Expr
}

// T wraps an expression (or a raw numeric value) as a term.
func T(e any) Term {
	return Term{Lift(e)}
}

// Lift converts a given operand into an expression.  Expressions (and terms)
// are returned as is, whilst raw numeric values (see tensor.Of) become
// constants.  This panics on any other kind of operand.
func Lift(e any) Expr {
	switch t := e.(type) {
	case Term:
		return t.Expr
	case Expr:
		return t
	default:
		val, err := tensor.Of(e)
		if err != nil {
			panic(err.Error())
		}
		//
		return Const(val)
	}
}

// Plus returns this term plus a given operand.
func (t Term) Plus(rhs any) Term {
	return Term{Add(t.Expr, Lift(rhs))}
}

// Minus returns this term minus a given operand.
func (t Term) Minus(rhs any) Term {
	return Term{Subtract(t.Expr, Lift(rhs))}
}

// Times returns this term multiplied by a given operand.
func (t Term) Times(rhs any) Term {
	return Term{Multiply(t.Expr, Lift(rhs))}
}

// Over returns this term divided by a given operand.
func (t Term) Over(rhs any) Term {
	return Term{Divide(t.Expr, Lift(rhs))}
}

// Pow returns this term raised to a given constant exponent.  The exponent may
// be a raw numeric value or a constant expression.
func (t Term) Pow(exponent any) Term {
	var val tensor.Value
	//
	switch e := Lift(exponent).(type) {
	case *Constant:
		val = e.value
	default:
		panic(fmt.Sprintf("exponent %s is not constant", e))
	}
	//
	return Term{Pow(t.Expr, val)}
}

// Backward differentiates this term with respect to a given variable.
func (t Term) Backward(v *Variable) Term {
	return Term{t.Expr.Backward(v)}
}
