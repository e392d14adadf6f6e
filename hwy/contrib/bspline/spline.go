// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bspline

import (
	"slices"

	"github.com/ajroetker/go-bspline/hwy"
)

// Spline is a validated, immutable B-spline. It copies its knots and
// control points at construction, so it is safe for concurrent use.
type Spline[T hwy.Floats] struct {
	knots         []T
	controlPoints []T
	degree        int
}

// New validates the arguments (see Validate) and returns a Spline holding
// copies of them.
func New[T hwy.Floats](controlPoints, knots []T, degree int) (*Spline[T], error) {
	if err := Validate(controlPoints, knots, degree); err != nil {
		return nil, err
	}
	return &Spline[T]{
		knots:         slices.Clone(knots),
		controlPoints: slices.Clone(controlPoints),
		degree:        degree,
	}, nil
}

// Degree returns the polynomial degree of each piece.
func (s *Spline[T]) Degree() int { return s.degree }

// NumBasis returns the number of top-level basis functions, which equals the
// number of control points.
func (s *Spline[T]) NumBasis() int { return len(s.controlPoints) }

// Knots returns a copy of the knot vector.
func (s *Spline[T]) Knots() []T { return slices.Clone(s.knots) }

// ControlPoints returns a copy of the control points.
func (s *Spline[T]) ControlPoints() []T { return slices.Clone(s.controlPoints) }

// Domain returns the interval [knots[degree], knots[len(knots)-degree-1])
// on which the basis functions sum to one.
func (s *Spline[T]) Domain() (lo, hi T) {
	return s.knots[s.degree], s.knots[len(s.knots)-s.degree-1]
}

// Evaluate returns the spline value at x using the scalar kernel.
func (s *Spline[T]) Evaluate(x T) T {
	var out [1]T
	BaseEvaluateScalar([]T{x}, s.controlPoints, s.knots, s.degree, make([]T, len(s.knots)-1), out[:])
	return out[0]
}

// EvaluateBatch evaluates the spline at every value in inputs.
func (s *Spline[T]) EvaluateBatch(opts Options, inputs []T) ([]T, error) {
	return EvaluateBatchWith(opts, inputs, s.controlPoints, s.knots, s.degree)
}

// EvaluateBatchInto evaluates the spline at every value in inputs into dst,
// which must hold at least len(inputs) values.
func (s *Spline[T]) EvaluateBatchInto(opts Options, dst, inputs []T) error {
	return EvaluateBatchInto(opts, dst, inputs, s.controlPoints, s.knots, s.degree)
}

// Basis returns the values of all NumBasis top-level basis functions at x.
func (s *Spline[T]) Basis(x T) []T {
	activation := make([]T, len(s.knots)-1)
	BaseBasis(x, s.knots, s.degree, activation)
	return activation[:len(s.controlPoints):len(s.controlPoints)]
}

// UniformKnots returns n evenly spaced knots from lo to hi inclusive.
// It returns nil for n <= 0 and []T{lo} for n == 1.
func UniformKnots[T hwy.Floats](n int, lo, hi T) []T {
	if n <= 0 {
		return nil
	}
	knots := make([]T, n)
	if n == 1 {
		knots[0] = lo
		return knots
	}
	span := hi - lo
	for i := range knots {
		knots[i] = lo + span*T(i)/T(n-1)
	}
	knots[n-1] = hi
	return knots
}
