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

// Variable represents a free variable.  Variables are compared by identity:
// two distinct variables with the same name are different variables.  The name
// is only used for display.
type Variable struct {
	name string
}

// NewVariable constructs a fresh variable with a given display name.
func NewVariable(name string) *Variable {
	return &Variable{name}
}

// Name returns the display name of this variable.
func (p *Variable) Name() string {
	return p.name
}

// SameVariable checks whether two variables are the same variable (i.e. the
// same instance).  Names play no part in this comparison.
func SameVariable(lhs *Variable, rhs *Variable) bool {
	return lhs == rhs
}

// Compute implementation for Expr interface.
func (p *Variable) Compute(values Assignment) (tensor.Value, error) {
	if val, ok := values[p]; ok {
		return val, nil
	}
	//
	return tensor.Value{}, &LookupError{p}
}

// Backward implementation for Expr interface.
func (p *Variable) Backward(v *Variable) Expr {
	if SameVariable(p, v) {
		return Float(1)
	}
	//
	return Float(0)
}

// Lisp implementation for Expr interface.
func (p *Variable) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.name)
}

func (p *Variable) String() string {
	return p.name
}

func (p *Variable) node() {}
