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

	"github.com/consensys/go-symdiff/pkg/util/source/sexp"
	"github.com/consensys/go-symdiff/pkg/util/tensor"
)

// Product represents the product of two expressions.
type Product struct {
	lhs Expr
	rhs Expr
}

// Multiply returns an expression representing the product of two expressions.
// Constant operands are folded, multiplication by zero gives zero and
// multiplication by one returns the other operand.  Operands sharing a common
// base are fused into a single power, such that x^2 * x becomes x^3 and x * x
// becomes x^2.
func Multiply(lhs Expr, rhs Expr) Expr {
	var (
		lc = IsConstant(lhs)
		rc = IsConstant(rhs)
	)
	//
	switch {
	case lc != nil && rc != nil:
		if val, err := tensor.Mul(lc.value, rc.value); err == nil {
			return Const(val)
		}
		//
		return &Product{lhs, rhs}
	case isZero(lhs) || isZero(rhs):
		return Float(0)
	case lc != nil && lc.IsOne():
		return rhs
	case rc != nil && rc.IsOne():
		return lhs
	}
	//
	if fused, ok := fusePowers(lhs, rhs, tensor.Add); ok {
		return fused
	}
	//
	return &Product{lhs, rhs}
}

// Lhs returns the first factor.
func (p *Product) Lhs() Expr { return p.lhs }

// Rhs returns the second factor.
func (p *Product) Rhs() Expr { return p.rhs }

// Compute implementation for Expr interface.
func (p *Product) Compute(values Assignment) (tensor.Value, error) {
	return computeBinary(p.lhs, p.rhs, values, tensor.Mul)
}

// Backward implementation for Expr interface.
func (p *Product) Backward(v *Variable) Expr {
	return Add(
		Multiply(p.lhs.Backward(v), p.rhs),
		Multiply(p.rhs.Backward(v), p.lhs),
	)
}

// Lisp implementation for Expr interface.
func (p *Product) Lisp() sexp.SExp {
	return lispOfBinary("*", p.lhs, p.rhs)
}

func (p *Product) String() string {
	return fmt.Sprintf("(%s * %s)", p.lhs, p.rhs)
}

func (p *Product) node() {}

// Attempt to fuse two operands over a common base into a single power, whose
// exponent is obtained by combining the exponents of both operands (using
// addition for products, or subtraction for quotients).  An operand which is
// not Powered is treated as its own base raised to the first power.  This
// fails if neither operand shares a base with the other, or if the combined
// exponents cannot be broadcast together.
func fusePowers(lhs Expr, rhs Expr, combine func(tensor.Value, tensor.Value) (tensor.Value, error)) (Expr, bool) {
	var (
		lp, lok = lhs.(Powered)
		rp, rok = rhs.(Powered)
		base    Expr
	)
	//
	switch {
	case lok && lp.HasSameBase(rhs):
		base = lp.Base()
	case rok && rp.HasSameBase(lhs):
		base = rp.Base()
	case !lok && !rok && Equal(lhs, rhs):
		base = lhs
	default:
		return nil, false
	}
	//
	exponent, err := combine(exponentOf(lhs), exponentOf(rhs))
	if err != nil {
		return nil, false
	}
	//
	return Pow(base, exponent), true
}

// Determine the exponent of an expression, where an expression which is not
// Powered has exponent one.
func exponentOf(e Expr) tensor.Value {
	if p, ok := e.(Powered); ok {
		return p.Exponent()
	}
	//
	return tensor.Scalar(1)
}
