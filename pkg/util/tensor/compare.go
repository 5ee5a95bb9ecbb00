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
	"gonum.org/v1/gonum/floats/scalar"
)

// RTOL is the relative tolerance used when comparing values approximately.
const RTOL = 1e-5

// ATOL is the absolute tolerance used when comparing values approximately.
const ATOL = 1e-8

// AllClose checks whether two values are elementwise equal within a fixed
// tolerance (see RTOL and ATOL), broadcasting as necessary.  Values whose shapes
// cannot be broadcast together are never close.  NaN is never close to
// anything, whilst infinities are close only to themselves.
func AllClose(lhs Value, rhs Value) bool {
	var ok = true
	//
	_, err := zipWith("compare", lhs, rhs, func(x, y float64) float64 {
		if !scalar.EqualWithinAbsOrRel(x, y, ATOL, RTOL) {
			ok = false
		}
		//
		return 0
	})
	//
	return err == nil && ok
}

// IsClose checks whether every element of a value is within tolerance of a
// given scalar.
func (v Value) IsClose(x float64) bool {
	for _, y := range v.data {
		if !scalar.EqualWithinAbsOrRel(y, x, ATOL, RTOL) {
			return false
		}
	}
	//
	return true
}
