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
package tensor

import (
	"fmt"
	"slices"
)

// ShapeError indicates that two values could not be combined because their
// shapes are incompatible under the broadcasting rules.
type ShapeError struct {
	// Operation being attempted.
	Op string
	// Shape of the left-hand operand.
	Lhs []int
	// Shape of the right-hand operand.
	Rhs []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: incompatible shapes %v and %v", e.Op, e.Lhs, e.Rhs)
}

// Broadcast determines the shape resulting from combining two values of the
// given shapes elementwise.  Dimensions are aligned from the right, and a
// dimension of size one (or a missing dimension) stretches to match the other
// operand.
func Broadcast(lhs []int, rhs []int) ([]int, bool) {
	var (
		n     = max(len(lhs), len(rhs))
		shape = make([]int, n)
	)
	//
	for i := 1; i <= n; i++ {
		l, r := dimFromRight(lhs, i), dimFromRight(rhs, i)
		//
		switch {
		case l == r:
			shape[n-i] = l
		case l == 1:
			shape[n-i] = r
		case r == 1:
			shape[n-i] = l
		default:
			return nil, false
		}
	}
	//
	return shape, true
}

// Return the ith dimension counting from the right (starting at 1), where
// missing dimensions have size one.
func dimFromRight(shape []int, i int) int {
	if i > len(shape) {
		return 1
	}
	//
	return shape[len(shape)-i]
}

// Determine the element strides for reading an operand of a given shape
// broadcast into a (larger) target shape.  Broadcast dimensions have a stride
// of zero.
func broadcastStrides(shape []int, target []int) []int {
	var (
		strides = make([]int, len(target))
		stride  = 1
	)
	//
	for i := 1; i <= len(target); i++ {
		if d := dimFromRight(shape, i); d != 1 {
			strides[len(target)-i] = stride
			stride *= d
		} else if i <= len(shape) {
			stride *= d
		}
	}
	//
	return strides
}

// Combine two values elementwise using a given binary function, broadcasting
// as necessary.
func zipWith(op string, lhs Value, rhs Value, fn func(float64, float64) float64) (Value, error) {
	shape, ok := Broadcast(lhs.shape, rhs.shape)
	//
	if !ok {
		return Value{}, &ShapeError{op, slices.Clone(lhs.shape), slices.Clone(rhs.shape)}
	}
	//
	var (
		size     = volume(shape)
		data     = make([]float64, size)
		lstrides = broadcastStrides(lhs.shape, shape)
		rstrides = broadcastStrides(rhs.shape, shape)
		index    = make([]int, len(shape))
		loff     = 0
		roff     = 0
	)
	//
	for k := 0; k < size; k++ {
		data[k] = fn(lhs.data[loff], rhs.data[roff])
		// Advance multi-dimensional index
		for d := len(shape) - 1; d >= 0; d-- {
			index[d]++
			loff += lstrides[d]
			roff += rstrides[d]
			//
			if index[d] < shape[d] {
				break
			}
			// Wrap this dimension
			loff -= lstrides[d] * shape[d]
			roff -= rstrides[d] * shape[d]
			index[d] = 0
		}
	}
	//
	return Value{normaliseShape(shape), data}, nil
}

func volume(shape []int) int {
	var n = 1
	//
	for _, d := range shape {
		n *= d
	}
	//
	return n
}

func normaliseShape(shape []int) []int {
	if len(shape) == 0 {
		return nil
	}
	//
	return shape
}
