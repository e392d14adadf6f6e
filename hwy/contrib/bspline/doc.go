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

// Package bspline evaluates B-spline curves at batches of parameter values.
//
// A spline is given by a knot vector, one control point per top-level basis
// function, and a degree. Evaluation does not recurse: for every input x the
// degree-0 basis activations are written into one scratch buffer and each
// higher degree is computed in place from the layer below, so basis i of
// degree k overwrites slot i after slots i and i+1 of degree k-1 were read.
// The result is the dot product of the control points with the top layer.
//
// # Strategies
//
// All strategies run the same recurrence and agree up to the order of the
// final summation:
//
//   - StrategyScalar: a plain loop nest (BaseEvaluateScalar). This is the
//     reference implementation.
//   - StrategyVector: the same loops processed in chunks of a configurable
//     lane count using portable hwy vectors (BaseEvaluateVec), with a scalar
//     loop for the remainder.
//   - StrategyNative: archsimd kernels for AVX2 and AVX-512, generated by
//     cmd/bsplinegen. They are only compiled with GOEXPERIMENT=simd on amd64
//     and only installed when the CPU reports the instruction set.
//   - StrategyAuto: native when installed, scalar otherwise.
//
// # Degenerate knots
//
// Repeated knots make a coefficient denominator zero. The division is not
// guarded: IEEE-754 rules apply and the resulting ±Inf or NaN propagates to
// the outputs whose basis functions touch the empty span. Every strategy
// produces the same NaN pattern.
//
// # Boundary convention
//
// Degree-0 intervals are left-closed and right-open, [knots[i], knots[i+1]).
// The right end of the knot vector is not special-cased, so evaluating at
// the last knot yields 0.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-bspline/hwy/contrib/bspline"
//
//	knots := bspline.UniformKnots[float64](20, 0, 19)
//	controlPoints := make([]float64, len(knots)-3-1)
//	for i := range controlPoints {
//	    controlPoints[i] = 1
//	}
//	out, err := bspline.EvaluateBatch(inputs, controlPoints, knots, 3)
//
// # Build Requirements
//
// The scalar and vector strategies build everywhere. The native strategy
// needs:
//   - GOEXPERIMENT=simd
//   - amd64 with AVX2 or AVX-512 at runtime
//
// Setting HWY_NO_SIMD=1 keeps the native kernels from being installed.
package bspline

//go:generate go run ../../../cmd/bsplinegen -output . -targets avx2,avx512
