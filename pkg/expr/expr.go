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

// Assignment binds variables to the values they take during evaluation.
// Variables are keyed by identity, not by name.  Values may freely mix scalars
// and arrays, in which case evaluation broadcasts elementwise.
type Assignment map[*Variable]tensor.Value

// Expr represents a node in an immutable expression tree.  The set of node
// kinds is closed: Variable, Constant, Sum, Difference, Product, Quotient,
// Power, Exponent and Logarithm.  Nodes should be created via the smart
// constructors (e.g. Add, Multiply, Pow), which simplify as they go.
type Expr interface {
	// Compute evaluates this expression under a given assignment.  This fails
	// with a LookupError if a variable reachable in this expression has no
	// binding, or with a tensor.ShapeError if values of incompatible shapes are
	// combined.
	Compute(Assignment) (tensor.Value, error)
	// Backward returns a (simplified) expression for the partial derivative of
	// this expression with respect to a given variable.
	Backward(*Variable) Expr
	// Lisp converts this expression into a simple S-Expression, for example
	// so it can be printed.
	Lisp() sexp.SExp
	// String returns an infix rendering of this expression.
	String() string
	// Restricts the set of implementations to this package.
	node()
}

// Powered is implemented by nodes which raise some base expression to a
// constant exponent.  The multiplicative smart constructors use this (and only
// this) to decide whether two operands can be fused into a single power.
type Powered interface {
	Expr
	// Base returns the expression being raised to a power.
	Base() Expr
	// Exponent returns the constant exponent.
	Exponent() tensor.Value
	// HasSameBase checks whether a given expression has the same base as this
	// node.  An expression which is not itself Powered is treated as being
	// raised to the first power.
	HasSameBase(Expr) bool
}

// LookupError is returned when evaluating an expression which refers to a
// variable not bound in the assignment.
type LookupError struct {
	Variable *Variable
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("variable %s is not assigned", e.Variable.Name())
}
