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

// Sum represents the sum of two expressions.
type Sum struct {
	lhs Expr
	rhs Expr
}

// Add returns an expression representing the sum of two expressions.  Constant
// operands are folded, and adding zero returns the other operand unchanged.
func Add(lhs Expr, rhs Expr) Expr {
	var (
		lc = IsConstant(lhs)
		rc = IsConstant(rhs)
	)
	//
	switch {
	case lc != nil && rc != nil:
		if val, err := tensor.Add(lc.value, rc.value); err == nil {
			return Const(val)
		}
	case lc != nil && lc.IsZero():
		return rhs
	case rc != nil && rc.IsZero():
		return lhs
	}
	// Failing all else
	return &Sum{lhs, rhs}
}

// Lhs returns the first addend.
func (p *Sum) Lhs() Expr { return p.lhs }

// Rhs returns the second addend.
func (p *Sum) Rhs() Expr { return p.rhs }

// Compute implementation for Expr interface.
func (p *Sum) Compute(values Assignment) (tensor.Value, error) {
	return computeBinary(p.lhs, p.rhs, values, tensor.Add)
}

// Backward implementation for Expr interface.
func (p *Sum) Backward(v *Variable) Expr {
	return Add(p.lhs.Backward(v), p.rhs.Backward(v))
}

// Lisp implementation for Expr interface.
func (p *Sum) Lisp() sexp.SExp {
	return lispOfBinary("+", p.lhs, p.rhs)
}

func (p *Sum) String() string {
	return fmt.Sprintf("(%s + %s)", p.lhs, p.rhs)
}

func (p *Sum) node() {}

// Evaluate both operands of a binary node, and then combine them.
func computeBinary(lhs Expr, rhs Expr, values Assignment,
	fn func(tensor.Value, tensor.Value) (tensor.Value, error)) (tensor.Value, error) {
	l, err := lhs.Compute(values)
	if err != nil {
		return l, err
	}
	//
	r, err := rhs.Compute(values)
	if err != nil {
		return r, err
	}
	//
	return fn(l, r)
}

func lispOfBinary(op string, lhs Expr, rhs Expr) sexp.SExp {
	return sexp.NewList(sexp.NewSymbol(op), lhs.Lisp(), rhs.Lisp())
}
