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

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Target is an archsimd instruction set the kernels are generated for.
type Target struct {
	Name     string // "AVX2", "AVX512"
	Suffix   string // "_avx2", "_avx512"
	Level    string // hwy.DispatchLevel constant name
	Detect   string // archsimd.X86 method reporting the capability
	VecWidth int    // register width in bytes
}

// ElemType is one element type a kernel is instantiated for.
type ElemType struct {
	Name string // "float32", "float64"
	Size int    // bytes per lane
}

// Kernel is the data one kernel template is rendered with.
type Kernel struct {
	Target
	Elem      string // element type
	Lanes     int    // lanes per register
	VecType   string // archsimd vector type, e.g. "Float64x8"
	FuncName  string // generated function name
	DispatchV string // dispatch variable the kernel is installed into
}

var allTargets = map[string]Target{
	"avx2":   {Name: "AVX2", Suffix: "_avx2", Level: "DispatchAVX2", Detect: "AVX2", VecWidth: 32},
	"avx512": {Name: "AVX512", Suffix: "_avx512", Level: "DispatchAVX512", Detect: "AVX512", VecWidth: 64},
}

var elemTypes = []ElemType{
	{Name: "float32", Size: 4},
	{Name: "float64", Size: 8},
}

// AvailableTargets returns the names accepted by -targets.
func AvailableTargets() []string {
	return []string{"avx2", "avx512"}
}

// parseTargets converts a comma-separated list into targets ordered from
// widest to narrowest, which is the order the dispatcher probes them in.
func parseTargets(s string) ([]Target, error) {
	var result []Target
	seen := make(map[string]bool)
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		if p == "all" {
			return parseTargets(strings.Join(AvailableTargets(), ","))
		}
		t, ok := allTargets[p]
		if !ok {
			return nil, fmt.Errorf("unknown target %q (available: %s)", p, strings.Join(AvailableTargets(), ","))
		}
		seen[p] = true
		result = append(result, t)
	}
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].VecWidth > result[j-1].VecWidth; j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result, nil
}

// exported returns name with its first letter upper-cased ("float64" ->
// "Float64").
func exported(name string) string {
	return cases.Title(language.Und).String(name)
}

// kernelsFor returns one kernel per element type for target t.
func kernelsFor(t Target) []Kernel {
	var ks []Kernel
	for _, e := range elemTypes {
		lanes := t.VecWidth / e.Size
		name := "BaseEvaluateVec" + t.Suffix
		if e.Name != "float32" {
			name += "_" + exported(e.Name)
		}
		ks = append(ks, Kernel{
			Target:    t,
			Elem:      e.Name,
			Lanes:     lanes,
			VecType:   fmt.Sprintf("%sx%d", exported(e.Name), lanes),
			FuncName:  name,
			DispatchV: "EvaluateNative" + exported(e.Name),
		})
	}
	return ks
}
