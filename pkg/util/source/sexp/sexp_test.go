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
package sexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SExp_01(t *testing.T) {
	l := NewList(NewSymbol("+"), NewSymbol("x"), NewSymbol("1"))
	assert.Equal(t, "(+ x 1)", l.String(false))
	assert.True(t, l.MatchSymbols("+", "x"))
	assert.False(t, l.MatchSymbols("*"))
}

func Test_SExp_02(t *testing.T) {
	a := NewArray(NewSymbol("1"), NewSymbol("2"))
	l := NewList(NewSymbol("*"), a, NewSymbol("my var"))
	assert.Equal(t, "(* [1 2] \"my var\")", l.String(true))
	assert.Equal(t, "(* [1 2] my var)", l.String(false))
	assert.Nil(t, l.AsSymbol())
	assert.Equal(t, 3, l.Len())
	assert.Same(t, a, l.Get(1).AsArray())
}
