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

// RecursiveBasis computes basis function i of degree k at x directly from
// the recursive definition:
//
//	B(i, 0)(x) = 1 if knots[i] <= x < knots[i+1], else 0
//	B(i, k)(x) = (x - knots[i]) / (knots[i+k] - knots[i]) * B(i, k-1)(x)
//	           + (knots[i+k+1] - x) / (knots[i+k+1] - knots[i+1]) * B(i+1, k-1)(x)
//
// It recomputes shared subproblems and costs O(2^k) per call, so it is only
// meant as a reference for checking the layered kernels. It rounds exactly
// like BaseBasis, so the two agree bit for bit.
func RecursiveBasis[T hwy.Floats](i, k int, x T, knots []T) T {
	if k == 0 {
		if knots[i] <= x && x < knots[i+1] {
			return 1
		}
		return 0
	}
	left := (x - knots[i]) / (knots[i+k] - knots[i])
	right := (knots[i+k+1] - x) / (knots[i+k+1] - knots[i+1])
	return T(left*RecursiveBasis(i, k-1, x, knots)) + T(right*RecursiveBasis(i+1, k-1, x, knots))
}

// EvaluateRecursive evaluates the spline at x with RecursiveBasis. Arguments
// are not validated.
func EvaluateRecursive[T hwy.Floats](x T, controlPoints, knots []T, degree int) T {
	var sum T
	for i, c := range controlPoints {
		sum += T(c * RecursiveBasis(i, degree, x, knots))
	}
	return sum
}
