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
	"fmt"

	"github.com/ajroetker/go-bspline/hwy"
)

// EvaluateBatch evaluates the spline defined by controlPoints, knots and
// degree at every value in inputs, using StrategyAuto on the calling
// goroutine. out[j] corresponds to inputs[j].
//
// Arguments are validated once (see Validate); on failure no work is done
// and the error matches ErrInvalidArguments.
func EvaluateBatch[T hwy.Floats](inputs, controlPoints, knots []T, degree int) ([]T, error) {
	return EvaluateBatchWith(Options{}, inputs, controlPoints, knots, degree)
}

// EvaluateBatchWith is EvaluateBatch with explicit options.
func EvaluateBatchWith[T hwy.Floats](opts Options, inputs, controlPoints, knots []T, degree int) ([]T, error) {
	out := make([]T, len(inputs))
	if err := EvaluateBatchInto(opts, out, inputs, controlPoints, knots, degree); err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluateBatchInto evaluates into dst, which must hold at least len(inputs)
// values. Entries of dst past len(inputs) are left untouched.
func EvaluateBatchInto[T hwy.Floats](opts Options, dst, inputs, controlPoints, knots []T, degree int) error {
	if err := Validate(controlPoints, knots, degree); err != nil {
		return err
	}
	if len(dst) < len(inputs) {
		return argError("dst", "holds %d values, need %d", len(dst), len(inputs))
	}
	fn, err := selectKernel[T](opts)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return nil
	}
	run(opts, fn, dst, inputs, controlPoints, knots, degree)
	return nil
}

// EvaluateBatchFloat32 is the non-generic version for float32.
func EvaluateBatchFloat32(inputs, controlPoints, knots []float32, degree int) ([]float32, error) {
	return EvaluateBatch(inputs, controlPoints, knots, degree)
}

// EvaluateBatchFloat64 is the non-generic version for float64.
func EvaluateBatchFloat64(inputs, controlPoints, knots []float64, degree int) ([]float64, error) {
	return EvaluateBatch(inputs, controlPoints, knots, degree)
}

// selectKernel resolves opts.Strategy to a kernel for T.
func selectKernel[T hwy.Floats](opts Options) (kernel[T], error) {
	switch opts.Strategy {
	case StrategyAuto:
		if fn := nativeKernel[T](); fn != nil {
			return fn, nil
		}
		return BaseEvaluateScalar[T], nil
	case StrategyScalar:
		return BaseEvaluateScalar[T], nil
	case StrategyVector:
		lanes, err := resolveLanes[T](opts)
		if err != nil {
			return nil, err
		}
		return func(inputs, controlPoints, knots []T, degree int, activation, output []T) {
			BaseEvaluateVec(lanes, inputs, controlPoints, knots, degree, activation, output)
		}, nil
	case StrategyNative:
		if fn := nativeKernel[T](); fn != nil {
			return fn, nil
		}
		var zero T
		return nil, fmt.Errorf("%w for %T (dispatch level %s; rebuild with GOEXPERIMENT=simd on an AVX2 or AVX-512 amd64 CPU)",
			ErrNativeUnavailable, zero, hwy.CurrentName())
	}
	return nil, argError("Strategy", "unknown strategy %s", opts.Strategy)
}

// run evaluates the whole batch, splitting it across opts.Pool when the batch
// is large enough. Every range gets a private activation buffer and writes
// its results by input index.
func run[T hwy.Floats](opts Options, fn kernel[T], dst, inputs, controlPoints, knots []T, degree int) {
	bufLen := len(knots) - 1
	n := len(inputs)

	minParallel := opts.MinParallel
	if minParallel <= 0 {
		minParallel = DefaultMinParallel
	}

	pool := opts.Pool
	if pool == nil || pool.Closed() || pool.NumWorkers() < 2 || n < minParallel {
		fn(inputs, controlPoints, knots, degree, make([]T, bufLen), dst)
		return
	}

	scratch := make([]T, pool.NumWorkers()*bufLen)
	pool.ParallelForWorker(n, func(worker, start, end int) {
		activation := scratch[worker*bufLen : (worker+1)*bufLen]
		fn(inputs[start:end], controlPoints, knots, degree, activation, dst[start:end])
	})
}
