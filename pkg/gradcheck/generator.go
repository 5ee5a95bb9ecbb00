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
	"math"
	"math/rand/v2"

	"github.com/consensys/go-symdiff/pkg/expr"
	"github.com/consensys/go-symdiff/pkg/util/tensor"
)

// DEFAULT_STDDEV is the default standard deviation used when generating
// random constants.
const DEFAULT_STDDEV = 2.0

// Generator generates random expressions over a fixed set of variables.  Every
// smart constructor may be used, though arguments are shaped so that generated
// expressions remain defined (and differentiable) for positive variable
// values: logarithms are only taken of squares plus one, exponentials use a
// positive base, and divisors are kept away from zero.
type Generator struct {
	// Variables which may appear in generated expressions.
	Variables []*expr.Variable
	// Stddev specifies the standard deviation for generating random constants
	// on a normal distribution.  If this is 0, DEFAULT_STDDEV is used.
	Stddev float64
	// Source of randomness.
	rng *rand.Rand
}

// NewGenerator constructs a generator for a given set of variables, seeded
// deterministically.
func NewGenerator(seed uint64, vars ...*expr.Variable) *Generator {
	return &Generator{vars, DEFAULT_STDDEV, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate generates a random expression with a given maximum nesting depth.
// If maxDepth is 0, the result is either a variable or a constant.
func (g *Generator) Generate(maxDepth uint) expr.Expr {
	if maxDepth == 0 || g.rng.IntN(int(maxDepth)+1) == 0 {
		return g.leaf()
	}
	//
	switch g.rng.IntN(8) {
	case 0:
		return expr.Add(g.Generate(maxDepth-1), g.Generate(maxDepth-1))
	case 1:
		return expr.Subtract(g.Generate(maxDepth-1), g.Generate(maxDepth-1))
	case 2:
		return expr.Multiply(g.Generate(maxDepth-1), g.Generate(maxDepth-1))
	case 3:
		return expr.Divide(g.Generate(maxDepth-1), g.positive(maxDepth-1))
	case 4:
		return expr.Pow(g.Generate(maxDepth-1), tensor.Scalar(float64(1+g.rng.IntN(3))))
	case 5:
		return expr.Pow(g.positive(maxDepth-1), tensor.Scalar(g.rng.Float64()+0.5))
	case 6:
		// Keep exponents small so values stay representable
		arg := expr.Divide(g.Generate(maxDepth-1), g.positive(0))
		return expr.Exponential(tensor.Scalar(0.5+2*g.rng.Float64()), arg)
	default:
		return expr.Ln(g.positive(maxDepth - 1))
	}
}

// Generate an expression which is strictly positive (in fact, at least one)
// wherever it is defined.
func (g *Generator) positive(maxDepth uint) expr.Expr {
	return expr.Add(expr.Pow(g.Generate(maxDepth), tensor.Scalar(2)), expr.Float(1))
}

// Generate a random variable or constant.
func (g *Generator) leaf() expr.Expr {
	if len(g.Variables) > 0 && g.rng.IntN(3) != 0 {
		return g.Variables[g.rng.IntN(len(g.Variables))]
	}
	//
	return expr.Float(g.constant())
}

// Generate a random constant, rounded to two decimal places to keep things
// readable.
func (g *Generator) constant() float64 {
	stddev := g.Stddev
	//
	if stddev == 0 {
		stddev = DEFAULT_STDDEV
	}
	//
	return math.Round(g.rng.NormFloat64()*stddev*100) / 100
}

// Point generates a random assignment for the generator's variables, with
// every value drawn uniformly from [lo,hi).
func (g *Generator) Point(lo float64, hi float64) expr.Assignment {
	var values = make(expr.Assignment, len(g.Variables))
	//
	for _, v := range g.Variables {
		values[v] = tensor.Scalar(lo + (hi-lo)*g.rng.Float64())
	}
	//
	return values
}
