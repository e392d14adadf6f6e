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

// EvaluateNativeFloat32 and EvaluateNativeFloat64 hold the archsimd kernels
// selected for this CPU. They are nil unless the package was built with
// GOEXPERIMENT=simd on amd64 and the CPU supports AVX2 or AVX-512; see
// dispatch_amd64.gen.go. They share BaseEvaluateScalar's signature and
// requirements.
var (
	EvaluateNativeFloat32 func(inputs, controlPoints, knots []float32, degree int, activation, output []float32)
	EvaluateNativeFloat64 func(inputs, controlPoints, knots []float64, degree int, activation, output []float64)
)

// nativeLevel is the instruction set of the installed native kernels.
var nativeLevel = hwy.DispatchScalar

// NativeLevel returns the instruction set used by StrategyNative, or
// hwy.DispatchScalar when no native kernel is installed.
func NativeLevel() hwy.DispatchLevel {
	return nativeLevel
}

// NativeAvailable reports whether StrategyNative can evaluate T.
func NativeAvailable[T hwy.Floats]() bool {
	var zero T
	switch any(zero).(type) {
	case float32:
		return EvaluateNativeFloat32 != nil
	case float64:
		return EvaluateNativeFloat64 != nil
	}
	return false
}

// kernel is the common signature of every evaluation strategy.
type kernel[T hwy.Floats] func(inputs, controlPoints, knots []T, degree int, activation, output []T)

// nativeKernel returns the installed native kernel for T, or nil.
func nativeKernel[T hwy.Floats]() kernel[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		if fn := EvaluateNativeFloat32; fn != nil {
			return any(kernel[float32](fn)).(kernel[T])
		}
	case float64:
		if fn := EvaluateNativeFloat64; fn != nil {
			return any(kernel[float64](fn)).(kernel[T])
		}
	}
	return nil
}
