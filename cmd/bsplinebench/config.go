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
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/ajroetker/go-bspline/hwy"
	"github.com/ajroetker/go-bspline/hwy/contrib/bspline"
)

// ExampleConfigFile is printed by -example. It describes the configuration
// of the reference benchmark.
const ExampleConfigFile = `[spline]
# Polynomial degree of each piece.
degree = 3
# Number of knots, spaced evenly over [lo, hi].
knots = 20
lo = 0
hi = 19
# One line per control point; there must be knots - degree - 1 of them.
# If none are given every control point is 1.
# controlpoint = 0.5
# controlpoint = 1.5

[run]
# Input j is start + j*step.
inputs = 100
start = 0
step = 0.1
# Timed batch evaluations per strategy.
iterations = 10000
# Comma-separated list of auto, scalar, vector, native, or all.
strategy = all
# Vector lane count; 0 uses the dispatch width.
lanes = 0
# Worker goroutines; 0 uses GOMAXPROCS, 1 evaluates serially.
workers = 1
# Batches smaller than this stay on one goroutine even with workers != 1;
# 0 uses the library default.
minparallel = 1
# Largest accepted relative difference from the scalar result.
tolerance = 1e-9
`

// Config is the gcfg representation of a benchmark run.
type Config struct {
	Spline SplineConfig
	Run    RunConfig
}

type SplineConfig struct {
	// Required
	Degree int
	Knots  int
	Lo, Hi float64

	// Optional
	ControlPoint []float64
}

type RunConfig struct {
	Inputs      int
	Start, Step float64
	Iterations  int
	Strategy    string
	Lanes       int
	Workers     int
	MinParallel int
	Tolerance   float64
}

// DefaultConfig returns the configuration of the reference benchmark.
func DefaultConfig() *Config {
	return &Config{
		Spline: SplineConfig{
			Degree: 3,
			Knots:  20,
			Lo:     0,
			Hi:     19,
		},
		Run: RunConfig{
			Inputs:      100,
			Start:       0,
			Step:        0.1,
			Iterations:  10000,
			Strategy:    "all",
			Lanes:       0,
			Workers:     1,
			MinParallel: 1,
			Tolerance:   1e-9,
		},
	}
}

// ReadConfig reads the file at path on top of DefaultConfig. An empty path
// returns the defaults. The result still needs CheckInit.
func ReadConfig(path string) (*Config, error) {
	con := DefaultConfig()
	if path == "" {
		return con, nil
	}
	if err := gcfg.ReadFileInto(con, path); err != nil {
		return nil, err
	}
	return con, nil
}

// parseConfig is ReadConfig for configuration text.
func parseConfig(text string) (*Config, error) {
	con := DefaultConfig()
	if err := gcfg.ReadStringInto(con, text); err != nil {
		return nil, err
	}
	return con, nil
}

// CheckInit validates the configuration and fills in the control points
// when none were given.
func (con *Config) CheckInit() error {
	if err := con.Spline.CheckInit(); err != nil {
		return err
	}
	return con.Run.CheckInit()
}

func (sc *SplineConfig) CheckInit() error {
	if sc.Degree < 0 {
		return fmt.Errorf("[spline] degree must be non-negative, but is %d", sc.Degree)
	}
	if minKnots := 2*sc.Degree + 2; sc.Knots < minKnots {
		return fmt.Errorf(
			"[spline] degree %d needs at least %d knots, but knots is %d",
			sc.Degree, minKnots, sc.Knots,
		)
	}
	if !(sc.Hi > sc.Lo) {
		return fmt.Errorf("[spline] hi (%g) must be larger than lo (%g)", sc.Hi, sc.Lo)
	}

	numBasis := sc.Knots - sc.Degree - 1
	if len(sc.ControlPoint) == 0 {
		sc.ControlPoint = make([]float64, numBasis)
		for i := range sc.ControlPoint {
			sc.ControlPoint[i] = 1
		}
	} else if len(sc.ControlPoint) != numBasis {
		return fmt.Errorf(
			"[spline] %d knots with degree %d need %d controlpoint values, but %d were given",
			sc.Knots, sc.Degree, numBasis, len(sc.ControlPoint),
		)
	}
	return nil
}

func (rc *RunConfig) CheckInit() error {
	if rc.Inputs <= 0 {
		return fmt.Errorf("[run] inputs must be positive, but is %d", rc.Inputs)
	} else if rc.Iterations <= 0 {
		return fmt.Errorf("[run] iterations must be positive, but is %d", rc.Iterations)
	} else if rc.Workers < 0 {
		return fmt.Errorf("[run] workers must be non-negative, but is %d", rc.Workers)
	} else if rc.MinParallel < 0 {
		return fmt.Errorf("[run] minparallel must be non-negative, but is %d", rc.MinParallel)
	} else if rc.Tolerance < 0 {
		return fmt.Errorf("[run] tolerance must be non-negative, but is %g", rc.Tolerance)
	}
	if rc.Lanes < 0 || rc.Lanes > hwy.MaxVecLanes {
		return fmt.Errorf("[run] lanes must be in [0, %d], but is %d", hwy.MaxVecLanes, rc.Lanes)
	}
	if _, err := rc.Strategies(); err != nil {
		return err
	}
	return nil
}

// Strategies parses the strategy list. "all" expands to scalar, vector and
// native.
func (rc *RunConfig) Strategies() ([]bspline.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(rc.Strategy), "all") {
		return []bspline.Strategy{bspline.StrategyScalar, bspline.StrategyVector, bspline.StrategyNative}, nil
	}

	var out []bspline.Strategy
	for _, name := range strings.Split(rc.Strategy, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := bspline.ParseStrategy(name)
		if err != nil {
			return nil, fmt.Errorf("[run] strategy: %w", err)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("[run] strategy lists no strategies")
	}
	return out, nil
}

// InputValues returns the parameter values start + j*step for j < inputs.
func (rc *RunConfig) InputValues() []float64 {
	xs := make([]float64, rc.Inputs)
	for j := range xs {
		xs[j] = rc.Start + float64(j)*rc.Step
	}
	return xs
}
