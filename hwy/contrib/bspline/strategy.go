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
	"strings"

	"github.com/ajroetker/go-bspline/hwy/contrib/workerpool"
)

// Strategy selects which kernel evaluates a batch.
type Strategy int

const (
	// StrategyAuto uses the native kernel when one is installed and the
	// scalar kernel otherwise.
	StrategyAuto Strategy = iota

	// StrategyScalar uses BaseEvaluateScalar.
	StrategyScalar

	// StrategyVector uses BaseEvaluateVec with Options.Lanes lanes.
	StrategyVector

	// StrategyNative uses the archsimd kernel for the CPU's widest
	// supported instruction set, or fails with ErrNativeUnavailable.
	StrategyNative
)

// String returns the lower-case strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyScalar:
		return "scalar"
	case StrategyVector:
		return "vector"
	case StrategyNative:
		return "native"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a name ("auto", "scalar", "vector", "native"),
// case-insensitively, to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return StrategyAuto, nil
	case "scalar":
		return StrategyScalar, nil
	case "vector", "vec":
		return StrategyVector, nil
	case "native":
		return StrategyNative, nil
	}
	return StrategyAuto, fmt.Errorf("bspline: unknown strategy %q", name)
}

// DefaultMinParallel is the batch size below which evaluation stays on the
// calling goroutine even when a pool is configured.
const DefaultMinParallel = 1024

// Options configures batch evaluation. The zero value evaluates serially
// with StrategyAuto.
type Options struct {
	// Strategy selects the kernel.
	Strategy Strategy

	// Lanes is the chunk width of StrategyVector. Zero means the lane count
	// of the current dispatch width (hwy.MaxLanes). Use a fixed tag to pick
	// a register width, e.g. hwy.FixedTag512[float64]{}.MaxLanes() for the
	// 8-lane configuration.
	Lanes int

	// Pool, when non-nil, splits large batches into contiguous ranges run
	// on its workers. Each worker gets its own activation buffer.
	Pool *workerpool.Pool

	// MinParallel is the smallest batch that is split across Pool.
	// Zero means DefaultMinParallel.
	MinParallel int
}
