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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

// Generator renders the kernel and dispatcher templates.
type Generator struct {
	OutputDir  string
	PackageOut string
	Targets    []Target
	DryRun     bool
}

// Run renders every file and writes it (or prints it in dry-run mode).
func (g *Generator) Run() error {
	for _, t := range g.Targets {
		data := struct {
			Package string
			Target
			Kernels []Kernel
		}{g.PackageOut, t, kernelsFor(t)}
		if err := g.emit("bspline_base"+t.Suffix+".gen.go", kernelTemplate, data); err != nil {
			return err
		}
	}

	var kernels []Kernel
	for _, t := range g.Targets {
		kernels = append(kernels, kernelsFor(t)...)
	}
	data := struct {
		Package string
		Targets []Target
		Kernels []Kernel
	}{g.PackageOut, g.Targets, kernels}
	return g.emit("dispatch_amd64.gen.go", dispatchTemplate, data)
}

// emit executes tmpl, formats the result and fixes its imports.
func (g *Generator) emit(name string, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	path := filepath.Join(g.OutputDir, name)
	formatted, err := imports.Process(path, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return fmt.Errorf("format %s: %w\n%s", name, err, buf.Bytes())
	}

	if g.DryRun {
		fmt.Printf("// ===== %s =====\n%s\n", name, formatted)
		return nil
	}
	if err := os.WriteFile(path, formatted, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
