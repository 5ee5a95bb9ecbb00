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
	"strconv"
	"strings"
)

// Value represents an immutable numeric value which is either a scalar, or an
// n-dimensional array of float64 values stored in row-major order.  Scalars
// have an empty shape.  Values are never modified once constructed, hence they
// can be freely shared.
type Value struct {
	shape []int
	data  []float64
}

// Scalar constructs a scalar value.
func Scalar(x float64) Value {
	return Value{nil, []float64{x}}
}

// Vector constructs a one-dimensional array from a given set of elements.
func Vector(elements ...float64) Value {
	return Value{[]int{len(elements)}, slices.Clone(elements)}
}

// New constructs an n-dimensional array with the given shape, whose elements
// are given in row-major order.  An error is returned if the number of
// elements does not match the shape.
func New(shape []int, data []float64) (Value, error) {
	var n = 1
	//
	for _, d := range shape {
		if d < 0 {
			return Value{}, fmt.Errorf("invalid dimension %d in shape %v", d, shape)
		}
		//
		n *= d
	}
	//
	if n != len(data) {
		return Value{}, &ShapeError{"construct", shape, []int{len(data)}}
	}
	// Clone everything to preserve immutability
	return Value{slices.Clone(shape), slices.Clone(data)}, nil
}

// Of lifts a raw Go value into a Value.  Supported kinds are Value itself,
// float64, float32, int, int64 and []float64.
func Of(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case float64:
		return Scalar(t), nil
	case float32:
		return Scalar(float64(t)), nil
	case int:
		return Scalar(float64(t)), nil
	case int64:
		return Scalar(float64(t)), nil
	case []float64:
		return Vector(t...), nil
	default:
		return Value{}, fmt.Errorf("cannot convert %T into a numeric value", v)
	}
}

// IsScalar checks whether this value is a scalar (i.e. has an empty shape).
func (v Value) IsScalar() bool {
	return len(v.shape) == 0
}

// Shape returns (a copy of) the dimensions of this value.  Scalars have an
// empty shape.
func (v Value) Shape() []int {
	return slices.Clone(v.shape)
}

// Len returns the total number of elements held in this value.
func (v Value) Len() int {
	return len(v.data)
}

// Data returns (a copy of) the elements of this value in row-major order.
func (v Value) Data() []float64 {
	return slices.Clone(v.data)
}

// At returns the ith element of this value in row-major order.
func (v Value) At(i int) float64 {
	return v.data[i]
}

// Float returns the single element held by this value.  This panics if the
// value holds more than one element.
func (v Value) Float() float64 {
	if len(v.data) != 1 {
		panic(fmt.Sprintf("value of shape %v is not a scalar", v.shape))
	}
	//
	return v.data[0]
}

// String returns a human-readable representation of this value, using nested
// square brackets for arrays.
func (v Value) String() string {
	if v.IsScalar() {
		return formatFloat(v.data[0])
	}
	//
	var builder strings.Builder
	//
	v.format(&builder, 0, 0)
	//
	return builder.String()
}

// Write out the sub-array at a given dimension, starting from a given offset.
// Returns the offset following the last element written.
func (v Value) format(builder *strings.Builder, dim int, offset int) int {
	builder.WriteString("[")
	//
	for i := 0; i < v.shape[dim]; i++ {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		if dim+1 == len(v.shape) {
			builder.WriteString(formatFloat(v.data[offset]))
			offset++
		} else {
			offset = v.format(builder, dim+1, offset)
		}
	}
	//
	builder.WriteString("]")
	//
	return offset
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
