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
	"github.com/consensys/go-symdiff/pkg/util/source/sexp"
	"github.com/consensys/go-symdiff/pkg/util/tensor"
)

// Constant represents a fixed scalar or array value.
type Constant struct {
	value tensor.Value
}

// Const constructs a constant holding a given value.
func Const(value tensor.Value) *Constant {
	return &Constant{value}
}

// Float constructs a constant holding a given scalar.
func Float(value float64) *Constant {
	return &Constant{tensor.Scalar(value)}
}

// Value returns the value held by this constant.
func (p *Constant) Value() tensor.Value {
	return p.value
}

// ApproxEqual checks whether two constants hold the same value, within the
// tolerance of tensor.AllClose.  Unlike SameVariable, this is a value
// comparison.
func (p *Constant) ApproxEqual(other *Constant) bool {
	return tensor.AllClose(p.value, other.value)
}

// IsZero checks whether this constant is (approximately) zero everywhere.
func (p *Constant) IsZero() bool {
	return p.value.IsClose(0)
}

// IsOne checks whether this constant is (approximately) one everywhere.
func (p *Constant) IsOne() bool {
	return p.value.IsClose(1)
}

// Compute implementation for Expr interface.
func (p *Constant) Compute(Assignment) (tensor.Value, error) {
	return p.value, nil
}

// Backward implementation for Expr interface.
func (p *Constant) Backward(*Variable) Expr {
	return Float(0)
}

// Lisp implementation for Expr interface.
func (p *Constant) Lisp() sexp.SExp {
	return lispOfValue(p.value)
}

func (p *Constant) String() string {
	return p.value.String()
}

func (p *Constant) node() {}

// IsConstant returns the given expression as a constant, or nil if it is not
// one.
func IsConstant(e Expr) *Constant {
	if c, ok := e.(*Constant); ok {
		return c
	}
	//
	return nil
}

// Check whether an expression is a constant which is (approximately) zero.
func isZero(e Expr) bool {
	c := IsConstant(e)
	return c != nil && c.IsZero()
}

// Check whether an expression is a constant which is (approximately) one.
func isOne(e Expr) bool {
	c := IsConstant(e)
	return c != nil && c.IsOne()
}

func lispOfValue(value tensor.Value) sexp.SExp {
	if value.IsScalar() {
		return sexp.NewSymbol(value.String())
	}
	// Flatten arrays, since display is not load bearing.
	elements := make([]sexp.SExp, value.Len())
	//
	for i := range elements {
		elements[i] = sexp.NewSymbol(tensor.Scalar(value.At(i)).String())
	}
	//
	return sexp.NewArray(elements...)
}
