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

import "fmt"

// FreeVariables returns the distinct variables reachable within a given
// expression, in the order in which they are first encountered (left to
// right).
func FreeVariables(e Expr) []*Variable {
	var (
		seen = make(map[*Variable]bool)
		vars []*Variable
	)
	//
	walk(e, func(v *Variable) {
		if !seen[v] {
			seen[v] = true
			vars = append(vars, v)
		}
	})
	//
	return vars
}

// Size returns the number of nodes in a given expression, counting shared
// subtrees once per occurrence.
func Size(e Expr) uint {
	var n uint
	//
	visit(e, func(Expr) { n++ })
	//
	return n
}

func walk(e Expr, fn func(*Variable)) {
	visit(e, func(node Expr) {
		if v, ok := node.(*Variable); ok {
			fn(v)
		}
	})
}

// Visit every node of a given expression in pre-order.
func visit(e Expr, fn func(Expr)) {
	fn(e)
	//
	switch t := e.(type) {
	case *Variable, *Constant:
		return
	case *Sum:
		visit(t.lhs, fn)
		visit(t.rhs, fn)
	case *Difference:
		visit(t.lhs, fn)
		visit(t.rhs, fn)
	case *Product:
		visit(t.lhs, fn)
		visit(t.rhs, fn)
	case *Quotient:
		visit(t.lhs, fn)
		visit(t.rhs, fn)
	case *Power:
		visit(t.base, fn)
	case *Exponent:
		visit(t.exponent, fn)
	case *Logarithm:
		visit(t.argument, fn)
	default:
		panic(fmt.Sprintf("unknown expression encountered: %s", e))
	}
}
