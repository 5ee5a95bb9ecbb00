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

// Power represents an expression raised to a constant (scalar or array)
// exponent.
type Power struct {
	base     Expr
	exponent tensor.Value
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Powered = (*Power)(nil)

// Pow returns an expression representing base raised to a constant exponent.
// Raising to the power one returns the base, whilst raising to the power zero
// gives one.  Constant bases are folded, and nested powers are collapsed by
// multiplying their exponents, such that (x^2)^3 becomes x^6.
func Pow(base Expr, exponent tensor.Value) Expr {
	switch {
	case exponent.IsClose(1):
		return base
	case exponent.IsClose(0):
		return Float(1)
	}
	//
	switch b := base.(type) {
	case *Constant:
		if val, err := tensor.Pow(b.value, exponent); err == nil {
			return Const(val)
		}
	case Powered:
		if pow, err := tensor.Mul(b.Exponent(), exponent); err == nil {
			return Pow(b.Base(), pow)
		}
	}
	//
	return &Power{base, exponent}
}

// Base implementation for Powered interface.
func (p *Power) Base() Expr { return p.base }

// Exponent implementation for Powered interface.
func (p *Power) Exponent() tensor.Value { return p.exponent }

// HasSameBase implementation for Powered interface.
func (p *Power) HasSameBase(other Expr) bool {
	if o, ok := other.(Powered); ok {
		return Equal(p.base, o.Base())
	}
	//
	return Equal(p.base, other)
}

// Compute implementation for Expr interface.
func (p *Power) Compute(values Assignment) (tensor.Value, error) {
	val, err := p.base.Compute(values)
	if err != nil {
		return val, err
	}
	//
	return tensor.Pow(val, p.exponent)
}

// Backward implementation for Expr interface.
func (p *Power) Backward(v *Variable) Expr {
	// Subtracting a scalar always broadcasts
	pm1, _ := tensor.Sub(p.exponent, tensor.Scalar(1))
	//
	return Multiply(
		Multiply(Const(p.exponent), p.base.Backward(v)),
		Pow(p.base, pm1),
	)
}

// Lisp implementation for Expr interface.
func (p *Power) Lisp() sexp.SExp {
	return sexp.NewList(sexp.NewSymbol("^"), p.base.Lisp(), lispOfValue(p.exponent))
}

func (p *Power) String() string {
	return fmt.Sprintf("(%s^(%s))", p.base, p.exponent)
}

func (p *Power) node() {}
