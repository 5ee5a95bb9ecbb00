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

// Difference represents the difference of two expressions (minuend minus
// subtrahend).
type Difference struct {
	lhs Expr
	rhs Expr
}

// Subtract returns an expression representing lhs - rhs.  Constant operands
// are folded, subtracting zero returns the minuend, and subtracting from zero
// returns the negated subtrahend.
func Subtract(lhs Expr, rhs Expr) Expr {
	var (
		lc = IsConstant(lhs)
		rc = IsConstant(rhs)
	)
	//
	switch {
	case lc != nil && rc != nil:
		if val, err := tensor.Sub(lc.value, rc.value); err == nil {
			return Const(val)
		}
	case lc != nil && lc.IsZero():
		return Negate(rhs)
	case rc != nil && rc.IsZero():
		return lhs
	}
	// Failing all else
	return &Difference{lhs, rhs}
}

// Negate returns an expression representing -e.
func Negate(e Expr) Expr {
	if c := IsConstant(e); c != nil {
		return Const(tensor.Neg(c.value))
	}
	//
	return Multiply(Float(-1), e)
}

// Lhs returns the minuend.
func (p *Difference) Lhs() Expr { return p.lhs }

// Rhs returns the subtrahend.
func (p *Difference) Rhs() Expr { return p.rhs }

// Compute implementation for Expr interface.
func (p *Difference) Compute(values Assignment) (tensor.Value, error) {
	return computeBinary(p.lhs, p.rhs, values, tensor.Sub)
}

// Backward implementation for Expr interface.
func (p *Difference) Backward(v *Variable) Expr {
	return Subtract(p.lhs.Backward(v), p.rhs.Backward(v))
}

// Lisp implementation for Expr interface.
func (p *Difference) Lisp() sexp.SExp {
	return lispOfBinary("-", p.lhs, p.rhs)
}

func (p *Difference) String() string {
	return fmt.Sprintf("(%s - %s)", p.lhs, p.rhs)
}

func (p *Difference) node() {}
