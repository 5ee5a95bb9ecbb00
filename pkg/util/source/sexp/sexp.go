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
	"fmt"
	"unicode"
)

// SExp is an S-Expression used for displaying expression trees.  It is either
// a List of zero or more S-Expressions, an Array of them, or a Symbol.
type SExp interface {
	// AsList checks whether this S-Expression is a list and, if
	// so, returns it.  Otherwise, it returns nil.
	AsList() *List
	// AsArray checks whether this S-Expression is an array and, if so, returns
	// it.  Otherwise, it returns nil.
	AsArray() *Array
	// AsSymbol checks whether this S-Expression is a symbol and,
	// if so, returns it.  Otherwise, it returns nil.
	AsSymbol() *Symbol
	// String generates a string representation which may (may not) be quoted.
	// Quoting is used to manage symbol names which contain whitespace
	// characters and braces, etc.
	String(quote bool) string
}

// ===================================================================
// List
// ===================================================================

// List represents a list of zero or more S-Expressions.
type List struct {
	Elements []SExp
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*List)(nil)

// NewList creates a new list from a given array of S-Expressions.
func NewList(elements ...SExp) *List {
	return &List{elements}
}

// AsArray returns nil for a List.
func (l *List) AsArray() *Array { return nil }

// AsList returns the given List.
func (l *List) AsList() *List { return l }

// AsSymbol returns nil for a List.
func (l *List) AsSymbol() *Symbol { return nil }

// Len gets the number of elements in this List.
func (l *List) Len() int { return len(l.Elements) }

// Get the ith element of this List
func (l *List) Get(i int) SExp { return l.Elements[i] }

func (l *List) String(quote bool) string {
	return formatElements("(", ")", l.Elements, quote)
}

// MatchSymbols matches the first n elements of this list against a given
// sequence of symbols.
func (l *List) MatchSymbols(symbols ...string) bool {
	if len(l.Elements) < len(symbols) {
		return false
	}

	for i := 0; i < len(symbols); i++ {
		if ith := l.Elements[i].AsSymbol(); ith == nil || ith.Value != symbols[i] {
			return false
		}
	}

	return true
}

// ===================================================================
// Array
// ===================================================================

// Array represents a list of zero or more S-Expressions, printed using square
// brackets.  This is used for array-valued constants.
type Array struct {
	Elements []SExp
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*Array)(nil)

// NewArray creates a new Array from a given array of S-Expressions.
func NewArray(elements ...SExp) *Array {
	return &Array{elements}
}

// AsArray returns the given array.
func (a *Array) AsArray() *Array { return a }

// AsList returns nil for an Array.
func (a *Array) AsList() *List { return nil }

// AsSymbol returns nil for an Array.
func (a *Array) AsSymbol() *Symbol { return nil }

// Len gets the number of elements in this Array.
func (a *Array) Len() int { return len(a.Elements) }

// Get the ith element of this Array
func (a *Array) Get(i int) SExp { return a.Elements[i] }

func (a *Array) String(quote bool) string {
	return formatElements("[", "]", a.Elements, quote)
}

// ===================================================================
// Symbol
// ===================================================================

// Symbol represents a terminating symbol.
type Symbol struct {
	Value string
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ SExp = (*Symbol)(nil)

// NewSymbol creates a new Symbol from a given string.
func NewSymbol(value string) *Symbol {
	return &Symbol{value}
}

// AsArray returns nil for a Symbol.
func (s *Symbol) AsArray() *Array { return nil }

// AsList returns nil for a Symbol.
func (s *Symbol) AsList() *List { return nil }

// AsSymbol returns the given Symbol
func (s *Symbol) AsSymbol() *Symbol { return s }

func (s *Symbol) String(quote bool) string {
	if quote {
		needed := false
		// Check whether suitable symbol
		for _, r := range s.Value {
			if !isSymbolLetter(r) {
				needed = true
				break
			}
		}
		// Quote (if necessary)
		if needed {
			return fmt.Sprintf("\"%s\"", s.Value)
		}
	}
	// No quote required
	return s.Value
}

func isSymbolLetter(r rune) bool {
	return r != '(' && r != ')' && r != '[' && r != ']' && !unicode.IsSpace(r)
}

func formatElements(open string, close string, elements []SExp, quote bool) string {
	var s = open

	for i := 0; i < len(elements); i++ {
		if i != 0 {
			s += " "
		}

		s += elements[i].String(quote)
	}

	return s + close
}
