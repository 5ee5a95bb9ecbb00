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

// Quotient represents the quotient of two expressions (dividend over
// divisor).
type Quotient struct {
	lhs Expr
	rhs Expr
}

// Divide returns an expression representing lhs / rhs.  Constant operands are
// folded, a zero dividend gives zero, division by one returns the dividend
// and dividing an expression by itself gives one.  Operands sharing a common
// base are fused into a single power, such that x^3 / x becomes x^2.
// Division by zero is not guarded against.
func Divide(lhs Expr, rhs Expr) Expr {
	var (
		lc = IsConstant(lhs)
		rc = IsConstant(rhs)
	)
	//
	switch {
	case lc != nil && rc != nil:
		if val, err := tensor.Div(lc.value, rc.value); err == nil {
			return Const(val)
		}
		//
		return &Quotient{lhs, rhs}
	case lc != nil && lc.IsZero():
		return Float(0)
	case rc != nil && rc.IsOne():
		return lhs
	case Equal(lhs, rhs):
		return Float(1)
	}
	//
	_, lok := lhs.(Powered)
	_, rok := rhs.(Powered)
	// Only fuse when at least one side is already a power
	if lok || rok {
		if fused, ok := fusePowers(lhs, rhs, tensor.Sub); ok {
			return fused
		}
	}
	//
	return &Quotient{lhs, rhs}
}

// Lhs returns the dividend.
func (p *Quotient) Lhs() Expr { return p.lhs }

// Rhs returns the divisor.
func (p *Quotient) Rhs() Expr { return p.rhs }

// Compute implementation for Expr interface.
func (p *Quotient) Compute(values Assignment) (tensor.Value, error) {
	return computeBinary(p.lhs, p.rhs, values, tensor.Div)
}

// Backward implementation for Expr interface.
func (p *Quotient) Backward(v *Variable) Expr {
	return Divide(
		Subtract(
			Multiply(p.rhs, p.lhs.Backward(v)),
			Multiply(p.lhs, p.rhs.Backward(v)),
		),
		Pow(p.rhs, tensor.Scalar(2)),
	)
}

// Lisp implementation for Expr interface.
func (p *Quotient) Lisp() sexp.SExp {
	return lispOfBinary("/", p.lhs, p.rhs)
}

func (p *Quotient) String() string {
	return fmt.Sprintf("(%s/%s)", p.lhs, p.rhs)
}

func (p *Quotient) node() {}
