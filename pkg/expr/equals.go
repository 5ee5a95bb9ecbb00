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

// Equal determines whether two expressions are structurally equal.  Variables
// are compared by identity, constants (and constant bases or exponents) are
// compared within tolerance, sums and products are compared irrespective of
// operand order, whilst differences and quotients are compared positionally.
// Expressions of different kinds are never equal.
func Equal(lhs Expr, rhs Expr) bool {
	switch l := lhs.(type) {
	case *Variable:
		r, ok := rhs.(*Variable)
		return ok && SameVariable(l, r)
	case *Constant:
		r, ok := rhs.(*Constant)
		return ok && l.ApproxEqual(r)
	case *Sum:
		r, ok := rhs.(*Sum)
		return ok && equalUnordered(l.lhs, l.rhs, r.lhs, r.rhs)
	case *Difference:
		r, ok := rhs.(*Difference)
		return ok && Equal(l.lhs, r.lhs) && Equal(l.rhs, r.rhs)
	case *Product:
		r, ok := rhs.(*Product)
		return ok && equalUnordered(l.lhs, l.rhs, r.lhs, r.rhs)
	case *Quotient:
		r, ok := rhs.(*Quotient)
		return ok && Equal(l.lhs, r.lhs) && Equal(l.rhs, r.rhs)
	case *Power:
		r, ok := rhs.(*Power)
		return ok && Equal(l.base, r.base) && tensor.AllClose(l.exponent, r.exponent)
	case *Exponent:
		r, ok := rhs.(*Exponent)
		return ok && tensor.AllClose(l.radix, r.radix) && Equal(l.exponent, r.exponent)
	case *Logarithm:
		r, ok := rhs.(*Logarithm)
		return ok && tensor.AllClose(l.radix, r.radix) && Equal(l.argument, r.argument)
	default:
		panic(fmt.Sprintf("unknown expression encountered: %s", lhs))
	}
}

// Check whether the pair (l1,l2) matches (r1,r2) in either order.
func equalUnordered(l1 Expr, l2 Expr, r1 Expr, r2 Expr) bool {
	return (Equal(l1, r1) && Equal(l2, r2)) || (Equal(l1, r2) && Equal(l2, r1))
}
