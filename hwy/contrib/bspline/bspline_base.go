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

// The kernels in this file do not validate their arguments; EvaluateBatch
// and friends call Validate once before entering them. They require:
//
//   - len(controlPoints) == len(knots) - degree - 1, degree >= 0
//   - len(activation) >= len(knots) - 1
//   - len(output) >= len(inputs)
//
// Products are converted back to T before they are summed. The conversion
// forces rounding, which keeps the compiler from fusing a multiply and an add
// into an FMA, so every strategy rounds each product the same way.

// BaseBasis fills activation with the basis function values of degree
// `degree` at x. On return activation[i] holds basis i for
// i < len(knots)-degree-1; the remaining slots hold stale lower-degree values.
//
// Layer 0 uses half-open intervals: basis i is 1 when
// knots[i] <= x < knots[i+1]. An empty span (knots[i] == knots[i+1]) is
// never active. Zero denominators in higher layers follow IEEE-754 division.
func BaseBasis[T hwy.Floats](x T, knots []T, degree int, activation []T) {
	numKnots := len(knots)
	if numKnots < 2 {
		return
	}

	n := numKnots - 1
	act := activation[:n]
	for i := range act {
		var v T
		if knots[i] <= x && x < knots[i+1] {
			v = 1
		}
		act[i] = v
	}

	for k := 1; k <= degree; k++ {
		n := numKnots - k - 1
		for i := range n {
			left := (x - knots[i]) / (knots[i+k] - knots[i])
			right := (knots[i+k+1] - x) / (knots[i+k+1] - knots[i+1])
			act[i] = T(left*act[i]) + T(right*act[i+1])
		}
	}
}

// BaseEvaluateScalar evaluates the spline at every input, one knot index at
// a time. It is the reference implementation the vector kernels are tested
// against.
func BaseEvaluateScalar[T hwy.Floats](inputs, controlPoints, knots []T, degree int, activation, output []T) {
	numBasis := len(controlPoints)
	act := activation[:numBasis]
	out := output[:len(inputs)]

	for j, x := range inputs {
		BaseBasis(x, knots, degree, activation)

		var sum T
		for i, c := range controlPoints {
			sum += T(c * act[i])
		}
		out[j] = sum
	}
}

// BaseEvaluateVec evaluates the spline at every input, processing the knot
// index loops in chunks of `lanes` using portable hwy vectors.
//
// Within one layer a chunk covering [i, i+lanes) loads activation[i:i+lanes+1]
// before storing to activation[i:i+lanes], and the next chunk starts reading
// at i+lanes, which is still untouched. This keeps the in-place update valid.
// Indices left over when a loop length is not a multiple of lanes are handled
// by a scalar loop.
//
// lanes must be in [1, hwy.MaxVecLanes].
func BaseEvaluateVec[T hwy.Floats](lanes int, inputs, controlPoints, knots []T, degree int, activation, output []T) {
	numKnots := len(knots)
	numBasis := len(controlPoints)
	out := output[:len(inputs)]

	one := hwy.SetN(T(1), lanes)
	zero := hwy.ZeroN[T](lanes)

	for j, x := range inputs {
		vx := hwy.SetN(x, lanes)

		// Layer 0: lanes are 1 inside [knots[i], knots[i+1]), 0 elsewhere.
		n := numKnots - 1
		i := 0
		for ; i+lanes <= n; i += lanes {
			lo := hwy.LoadN(knots[i:], lanes)
			hi := hwy.LoadN(knots[i+1:], lanes)
			inside := hwy.MaskAnd(hwy.GreaterEqual(vx, lo), hwy.LessThan(vx, hi))
			hwy.Store(hwy.IfThenElse(inside, one, zero), activation[i:])
		}
		for ; i < n; i++ {
			var v T
			if knots[i] <= x && x < knots[i+1] {
				v = 1
			}
			activation[i] = v
		}

		// Layers 1..degree, in place.
		for k := 1; k <= degree; k++ {
			n := numKnots - k - 1
			i := 0
			for ; i+lanes <= n; i += lanes {
				ki := hwy.LoadN(knots[i:], lanes)
				ki1 := hwy.LoadN(knots[i+1:], lanes)
				kik := hwy.LoadN(knots[i+k:], lanes)
				kik1 := hwy.LoadN(knots[i+k+1:], lanes)
				left := hwy.Div(hwy.Sub(vx, ki), hwy.Sub(kik, ki))
				right := hwy.Div(hwy.Sub(kik1, vx), hwy.Sub(kik1, ki1))

				a0 := hwy.LoadN(activation[i:], lanes)
				a1 := hwy.LoadN(activation[i+1:], lanes)
				hwy.Store(hwy.Add(hwy.Mul(left, a0), hwy.Mul(right, a1)), activation[i:])
			}
			for ; i < n; i++ {
				left := (x - knots[i]) / (knots[i+k] - knots[i])
				right := (knots[i+k+1] - x) / (knots[i+k+1] - knots[i+1])
				activation[i] = T(left*activation[i]) + T(right*activation[i+1])
			}
		}

		// Weighted sum: reduce each chunk of products, then the scalar tail.
		var sum T
		i = 0
		for ; i+lanes <= numBasis; i += lanes {
			c := hwy.LoadN(controlPoints[i:], lanes)
			a := hwy.LoadN(activation[i:], lanes)
			sum += hwy.ReduceSum(hwy.Mul(c, a))
		}
		for ; i < numBasis; i++ {
			sum += T(controlPoints[i] * activation[i])
		}
		out[j] = sum
	}
}
