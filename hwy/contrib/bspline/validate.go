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

import "github.com/ajroetker/go-bspline/hwy"

// Validate checks the evaluation contract for a spline:
//
//   - degree >= 0
//   - len(knots) >= 2*degree + 2
//   - len(controlPoints) == len(knots) - degree - 1
//
// Knots are expected to be non-decreasing, but that is not checked: an
// unordered knot vector is a caller error that shows up as garbage output,
// not as a validation failure.
//
// The returned error is an *ArgumentError matching ErrInvalidArguments.
func Validate[T hwy.Floats](controlPoints, knots []T, degree int) error {
	if degree < 0 {
		return argError("degree", "must be non-negative, got %d", degree)
	}
	if minKnots := 2*degree + 2; len(knots) < minKnots {
		return argError("knots", "degree %d needs at least %d knots, got %d", degree, minKnots, len(knots))
	}
	if want := len(knots) - degree - 1; len(controlPoints) != want {
		return argError("controlPoints", "%d knots with degree %d need %d control points, got %d",
			len(knots), degree, want, len(controlPoints))
	}
	return nil
}

// resolveLanes returns the vector path lane count for opts.
func resolveLanes[T hwy.Floats](opts Options) (int, error) {
	lanes := opts.Lanes
	if lanes == 0 {
		lanes = hwy.MaxLanes[T]()
	}
	if lanes < 1 || lanes > hwy.MaxVecLanes {
		return 0, argError("Lanes", "must be in [1, %d], got %d", hwy.MaxVecLanes, opts.Lanes)
	}
	return lanes, nil
}
