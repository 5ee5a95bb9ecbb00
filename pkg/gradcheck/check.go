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
package gradcheck

import (
	"fmt"
	"math"

	"github.com/consensys/go-symdiff/pkg/expr"
	"github.com/consensys/go-symdiff/pkg/util/tensor"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

// DEFAULT_TOLERANCE is the default (absolute and relative) tolerance within
// which symbolic and numeric derivatives must agree.
const DEFAULT_TOLERANCE = 1e-4

// DEFAULT_STEP is the default step size used for central differences.
const DEFAULT_STEP = 1e-5

// Config determines how a symbolic derivative is compared against its finite
// difference approximation.
type Config struct {
	// Absolute and relative tolerance for agreement.
	Tolerance float64
	// Step size for the finite difference.
	Step float64
}

// DefaultConfig returns the default check configuration.
func DefaultConfig() Config {
	return Config{DEFAULT_TOLERANCE, DEFAULT_STEP}
}

// Result captures the outcome of comparing a symbolic derivative against a
// numeric one at a given point.
type Result struct {
	// Variable with respect to which the derivative was taken.
	Variable *expr.Variable
	// Value of the symbolic derivative.
	Symbolic float64
	// Value of the central finite difference.
	Numeric float64
	// Skipped indicates that the function (or either derivative) was not
	// finite at the point, hence no comparison was made.
	Skipped bool
	// Agrees indicates whether both derivatives agree within tolerance.
	Agrees bool
}

func (r Result) String() string {
	if r.Skipped {
		return fmt.Sprintf("d/d%s skipped (symbolic %v, numeric %v)", r.Variable, r.Symbolic, r.Numeric)
	}
	//
	return fmt.Sprintf("d/d%s symbolic %v, numeric %v", r.Variable, r.Symbolic, r.Numeric)
}

// Check compares the symbolic derivative of a given expression with respect to
// a given variable against a central finite difference, at a given point.  The
// point must bind every free variable to a scalar.  An error is returned if
// evaluation fails (e.g. due to an unbound variable).
func Check(f expr.Expr, v *expr.Variable, at expr.Assignment, cfg Config) (Result, error) {
	var (
		result = Result{Variable: v}
		failed error
	)
	//
	origin, err := scalarAt(f, at)
	if err != nil {
		return result, err
	}
	//
	result.Symbolic, err = scalarAt(f.Backward(v), at)
	if err != nil {
		return result, err
	}
	//
	x0, ok := at[v]
	if !ok {
		return result, &expr.LookupError{Variable: v}
	}
	// Evaluate at shifted points by rebinding v only
	shifted := make(expr.Assignment, len(at))
	for k, val := range at {
		shifted[k] = val
	}
	//
	result.Numeric = fd.Derivative(func(x float64) float64 {
		shifted[v] = tensor.Scalar(x)
		//
		y, err := scalarAt(f, shifted)
		if err != nil {
			failed = err
			return math.NaN()
		}
		//
		return y
	}, x0.Float(), &fd.Settings{Formula: fd.Central, Step: cfg.Step, OriginKnown: true, OriginValue: origin})
	//
	if failed != nil {
		return result, failed
	}
	//
	if !isFinite(origin) || !isFinite(result.Symbolic) || !isFinite(result.Numeric) {
		result.Skipped = true
	} else {
		// Rounding error in the difference grows with the magnitude of f
		atol := cfg.Tolerance * math.Max(1, math.Abs(origin))
		result.Agrees = scalar.EqualWithinAbsOrRel(result.Symbolic, result.Numeric, atol, cfg.Tolerance)
	}
	//
	return result, nil
}

// Evaluate an expression which is expected to produce a scalar.
func scalarAt(f expr.Expr, at expr.Assignment) (float64, error) {
	val, err := f.Compute(at)
	if err != nil {
		return math.NaN(), err
	}
	//
	if val.Len() != 1 {
		return math.NaN(), fmt.Errorf("expected scalar value, found shape %v", val.Shape())
	}
	//
	return val.Float(), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
