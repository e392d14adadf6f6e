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

// Command bsplinebench times B-spline batch evaluation with each strategy
// and checks that every strategy agrees with the scalar kernel.
//
// Usage:
//
//	bsplinebench [-config bench.ini] [-strategy scalar,vector] [-lanes 8] [-workers 4]
//	bsplinebench -example > bench.ini
//
// Without -config it runs the reference configuration: degree 3, knots
// 0..19, 16 control points of 1 and 100 inputs j/10. Flags override the
// values read from the file. The exit status is 1 if any strategy differs
// from the scalar result by more than the tolerance.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ajroetker/go-bspline/hwy/contrib/workerpool"
)

var (
	configFile = flag.String("config", "", "gcfg configuration file (default: built-in reference configuration)")
	example    = flag.Bool("example", false, "Print an example configuration file to stdout and exit")
	strategy   = flag.String("strategy", "", "Comma-separated strategies (auto, scalar, vector, native) or 'all'")
	lanes      = flag.Int("lanes", 0, "Vector strategy lane count; 0 uses the dispatch width")
	workers    = flag.Int("workers", 1, "Worker goroutines; 0 uses GOMAXPROCS")
	minPar     = flag.Int("minparallel", 0, "Smallest batch split across workers; 0 uses the library default")
	inputs     = flag.Int("inputs", 0, "Number of inputs")
	iterations = flag.Int("iterations", 0, "Timed batch evaluations per strategy")
	tolerance  = flag.Float64("tolerance", 0, "Largest accepted relative difference from the scalar result")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bsplinebench: ")
	flag.Parse()

	if *example {
		fmt.Print(ExampleConfigFile)
		return
	}

	con, err := ReadConfig(*configFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	applyFlags(con)
	if err := con.CheckInit(); err != nil {
		log.Fatal(err.Error())
	}

	var pool *workerpool.Pool
	if con.Run.Workers != 1 {
		pool = workerpool.New(con.Run.Workers)
	}

	results, err := runBench(con, pool)
	if pool != nil {
		pool.Close()
	}
	if err != nil {
		log.Fatal(err.Error())
	}
	if err := report(os.Stdout, con, results); err != nil {
		log.Fatal(err.Error())
	}

	failed := false
	for _, r := range results {
		if !r.Passed(con.Run.Tolerance) {
			log.Printf("%s differs from scalar by %g (tolerance %g)", r.Strategy, r.MaxRelErr, con.Run.Tolerance)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// applyFlags copies the flags given on the command line into con.
func applyFlags(con *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategy":
			con.Run.Strategy = *strategy
		case "lanes":
			con.Run.Lanes = *lanes
		case "workers":
			con.Run.Workers = *workers
		case "minparallel":
			con.Run.MinParallel = *minPar
		case "inputs":
			con.Run.Inputs = *inputs
		case "iterations":
			con.Run.Iterations = *iterations
		case "tolerance":
			con.Run.Tolerance = *tolerance
		}
	})
}
