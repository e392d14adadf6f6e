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

// Command bsplinegen generates the archsimd B-spline kernels and their
// dispatcher for the bspline package.
//
// Usage:
//
//	bsplinegen -output . -targets avx2,avx512
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/bsplinegen -output . -targets avx2,avx512
//
// For each target it writes bspline_base<suffix>.gen.go holding one kernel
// per element type, each a fixed-width specialization of BaseEvaluateVec.
// It also writes dispatch_amd64.gen.go, which installs the widest supported
// kernels into EvaluateNativeFloat32/Float64 at init time.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	targets    = flag.String("targets", "avx2,avx512", "Comma-separated targets ("+strings.Join(AvailableTargets(), ",")+") or 'all'")
	packageOut = flag.String("pkg", "bspline", "Output package name")
	dryRun     = flag.Bool("n", false, "Print generated files to stdout instead of writing them")
)

func main() {
	flag.Parse()

	targetList, err := parseTargets(*targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if len(targetList) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid targets specified\n")
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir:  *outputDir,
		PackageOut: *packageOut,
		Targets:    targetList,
		DryRun:     *dryRun,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*dryRun {
		names := make([]string, len(targetList))
		for i, t := range targetList {
			names[i] = t.Name
		}
		fmt.Printf("Successfully generated code for targets: %s\n", strings.Join(names, ", "))
	}
}
