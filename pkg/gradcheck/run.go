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

	"github.com/consensys/go-symdiff/pkg/expr"
	log "github.com/sirupsen/logrus"
)

// Options configures a randomised run of derivative checks.
type Options struct {
	Config
	// Number of random expressions to check.
	Samples uint
	// Maximum depth of generated expressions.
	Depth uint
	// Number of distinct variables in generated expressions.
	Variables uint
	// Seed for the random generator.
	Seed uint64
	// Evaluation points are drawn uniformly from [Lo,Hi).
	Lo, Hi float64
}

// DefaultOptions returns a sensible set of options for randomised checking.
func DefaultOptions() Options {
	return Options{DefaultConfig(), 100, 4, 2, 1, 0.5, 2.0}
}

// Failure records a derivative which disagreed with its finite difference.
type Failure struct {
	// Expression being differentiated.
	Expr expr.Expr
	// Point at which the disagreement arose.
	Point expr.Assignment
	// Result of the comparison.
	Result Result
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Expr, f.Result)
}

// Report summarises a randomised run of derivative checks.
type Report struct {
	// Number of derivatives compared.
	Checked uint
	// Number of derivatives skipped as non-finite.
	Skipped uint
	// Derivatives which disagreed.
	Failures []Failure
}

// Run generates random expressions and checks the symbolic derivative of each
// with respect to every variable it uses.  An error is returned only if
// evaluation itself fails.
func Run(opts Options) (Report, error) {
	var (
		report Report
		vars   = make([]*expr.Variable, opts.Variables)
	)
	//
	for i := range vars {
		vars[i] = expr.NewVariable(fmt.Sprintf("x%d", i))
	}
	//
	gen := NewGenerator(opts.Seed, vars...)
	//
	for i := uint(0); i < opts.Samples; i++ {
		f := gen.Generate(opts.Depth)
		at := gen.Point(opts.Lo, opts.Hi)
		//
		log.Debugf("sample %d: %s", i, f)
		//
		for _, v := range expr.FreeVariables(f) {
			result, err := Check(f, v, at, opts.Config)
			if err != nil {
				return report, fmt.Errorf("sample %d (%s): %w", i, f, err)
			}
			//
			switch {
			case result.Skipped:
				report.Skipped++
			case !result.Agrees:
				report.Failures = append(report.Failures, Failure{f, at, result})
			}
			//
			report.Checked++
		}
	}
	//
	return report, nil
}
