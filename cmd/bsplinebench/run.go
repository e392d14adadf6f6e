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

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/go-bspline/hwy"
	"github.com/ajroetker/go-bspline/hwy/contrib/bspline"
	"github.com/ajroetker/go-bspline/hwy/contrib/workerpool"
)

// Result is the outcome of timing one strategy.
type Result struct {
	Strategy bspline.Strategy
	// Skipped is set when the strategy cannot run on this build or CPU.
	Skipped bool
	PerCall time.Duration
	// MaxRelErr is the largest difference from the scalar result, relative
	// to max(|scalar|, 1). NaN in both results counts as equal.
	MaxRelErr float64
	Checksum  float64
}

// Passed reports whether the result is within tolerance of the scalar one.
func (r Result) Passed(tolerance float64) bool {
	return r.Skipped || r.MaxRelErr <= tolerance
}

// runBench evaluates the configured spline with every requested strategy.
// con must have passed CheckInit.
func runBench(con *Config, pool *workerpool.Pool) ([]Result, error) {
	spline, err := bspline.New(con.Spline.ControlPoint,
		bspline.UniformKnots(con.Spline.Knots, con.Spline.Lo, con.Spline.Hi), con.Spline.Degree)
	if err != nil {
		return nil, err
	}
	strategies, err := con.Run.Strategies()
	if err != nil {
		return nil, err
	}
	inputs := con.Run.InputValues()

	reference, err := spline.EvaluateBatch(bspline.Options{Strategy: bspline.StrategyScalar}, inputs)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(strategies))
	dst := make([]float64, len(inputs))
	for _, strategy := range strategies {
		opts := bspline.Options{
			Strategy:    strategy,
			Lanes:       con.Run.Lanes,
			Pool:        pool,
			MinParallel: con.Run.MinParallel,
		}
		out, err := spline.EvaluateBatch(opts, inputs)
		if errors.Is(err, bspline.ErrNativeUnavailable) {
			results = append(results, Result{Strategy: strategy, Skipped: true})
			continue
		} else if err != nil {
			return nil, fmt.Errorf("%s: %w", strategy, err)
		}

		res := Result{
			Strategy:  strategy,
			MaxRelErr: maxRelErr(reference, out),
			Checksum:  checksum(out),
		}

		start := time.Now()
		for range con.Run.Iterations {
			if err := spline.EvaluateBatchInto(opts, dst, inputs); err != nil {
				return nil, fmt.Errorf("%s: %w", strategy, err)
			}
		}
		res.PerCall = time.Since(start) / time.Duration(con.Run.Iterations)
		results = append(results, res)
	}
	return results, nil
}

func maxRelErr(want, got []float64) float64 {
	var worst float64
	for i := range want {
		a, b := want[i], got[i]
		if math.IsNaN(a) && math.IsNaN(b) {
			continue
		}
		if math.IsNaN(a) != math.IsNaN(b) {
			return math.Inf(1)
		}
		if a == b {
			continue
		}
		worst = max(worst, math.Abs(a-b)/max(math.Abs(a), 1))
	}
	return worst
}

// checksum sums the finite outputs, so runs can be compared at a glance.
func checksum(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			sum += x
		}
	}
	return sum
}

// report writes one line per result.
func report(w io.Writer, con *Config, results []Result) error {
	fmt.Fprintf(w, "Dispatch level: %s, native level: %s\n", hwy.CurrentName(), bspline.NativeLevel())
	fmt.Fprintf(w, "Spline: degree %d, %d knots on [%g, %g], %d inputs, %d iterations\n\n",
		con.Spline.Degree, con.Spline.Knots, con.Spline.Lo, con.Spline.Hi, con.Run.Inputs, con.Run.Iterations)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "strategy\tns/batch\tns/input\tmax rel err\tchecksum\tstatus")
	for _, r := range results {
		if r.Skipped {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\tunavailable\n", r.Strategy)
			continue
		}
		status := "ok"
		if !r.Passed(con.Run.Tolerance) {
			status = "MISMATCH"
		}
		perInput := float64(r.PerCall.Nanoseconds()) / float64(con.Run.Inputs)
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.3g\t%.12g\t%s\n",
			r.Strategy, r.PerCall.Nanoseconds(), perInput, r.MaxRelErr, r.Checksum, status)
	}
	return tw.Flush()
}
