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

// Package contrib groups the algorithms built on the hwy vector core.
//
// # Subpackages
//
//   - bspline: batch B-spline evaluation with scalar, portable vector and
//     native AVX2/AVX-512 kernels
//   - workerpool: persistent goroutine pool used to split large batches
//
// # B-spline Evaluation (hwy/contrib/bspline)
//
//	import "github.com/ajroetker/go-bspline/hwy/contrib/bspline"
//
//	out, err := bspline.EvaluateBatch(inputs, controlPoints, knots, degree)
//
//	// Portable vector kernel, 8 lanes, split across a pool
//	pool := workerpool.New(0)
//	defer pool.Close()
//	out, err = bspline.EvaluateBatchWith(bspline.Options{
//	    Strategy: bspline.StrategyVector,
//	    Lanes:    8,
//	    Pool:     pool,
//	}, inputs, controlPoints, knots, degree)
//
// # Build Requirements
//
// The native kernels require:
//   - GOEXPERIMENT=simd build flag
//   - AMD64 architecture with AVX2 or AVX-512 support
//
// Everything else builds with a standard toolchain on any architecture.
package contrib
