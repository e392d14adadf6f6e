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

import "text/template"

// kernelTemplate mirrors BaseEvaluateVec with the lane count fixed to one
// register. The scalar remainder loops and the per-chunk reduction order are
// identical, so a generated kernel matches BaseEvaluateVec bit for bit when
// both use the same lane count.
var kernelTemplate = template.Must(template.New("kernel").Parse(`// Code generated by bsplinegen. DO NOT EDIT.

//go:build amd64 && goexperiment.simd

package {{.Package}}

import "simd/archsimd"

// This file holds the {{.Name}} kernels. They are the only code in the package
// that issues archsimd instructions; callers reach them through the
// EvaluateNative* variables, which are set only when the CPU supports {{.Name}}.
{{range .Kernels}}
// {{.FuncName}} is BaseEvaluateVec for {{.Elem}} with {{.Lanes}} lanes of {{.Name}}.
func {{.FuncName}}(inputs, controlPoints, knots []{{.Elem}}, degree int, activation, output []{{.Elem}}) {
	const lanes = {{.Lanes}}
	numKnots := len(knots)
	numBasis := len(controlPoints)
	out := output[:len(inputs)]

	one := archsimd.Broadcast{{.VecType}}(1)
	zero := archsimd.Broadcast{{.VecType}}(0)
	var prod [lanes]{{.Elem}}

	for j, x := range inputs {
		vx := archsimd.Broadcast{{.VecType}}(x)

		n := numKnots - 1
		i := 0
		for ; i+lanes <= n; i += lanes {
			lo := archsimd.Load{{.VecType}}Slice(knots[i:])
			hi := archsimd.Load{{.VecType}}Slice(knots[i+1:])
			inside := vx.GreaterEqual(lo).And(vx.Less(hi))
			one.Merge(zero, inside).StoreSlice(activation[i:])
		}
		for ; i < n; i++ {
			var v {{.Elem}}
			if knots[i] <= x && x < knots[i+1] {
				v = 1
			}
			activation[i] = v
		}

		for k := 1; k <= degree; k++ {
			n := numKnots - k - 1
			i := 0
			for ; i+lanes <= n; i += lanes {
				ki := archsimd.Load{{.VecType}}Slice(knots[i:])
				ki1 := archsimd.Load{{.VecType}}Slice(knots[i+1:])
				kik := archsimd.Load{{.VecType}}Slice(knots[i+k:])
				kik1 := archsimd.Load{{.VecType}}Slice(knots[i+k+1:])
				left := vx.Sub(ki).Div(kik.Sub(ki))
				right := kik1.Sub(vx).Div(kik1.Sub(ki1))

				a0 := archsimd.Load{{.VecType}}Slice(activation[i:])
				a1 := archsimd.Load{{.VecType}}Slice(activation[i+1:])
				left.Mul(a0).Add(right.Mul(a1)).StoreSlice(activation[i:])
			}
			for ; i < n; i++ {
				left := (x - knots[i]) / (knots[i+k] - knots[i])
				right := (knots[i+k+1] - x) / (knots[i+k+1] - knots[i+1])
				activation[i] = {{.Elem}}(left*activation[i]) + {{.Elem}}(right*activation[i+1])
			}
		}

		var sum {{.Elem}}
		i = 0
		for ; i+lanes <= numBasis; i += lanes {
			c := archsimd.Load{{.VecType}}Slice(controlPoints[i:])
			a := archsimd.Load{{.VecType}}Slice(activation[i:])
			c.Mul(a).StoreSlice(prod[:])
			var chunk {{.Elem}}
			for _, p := range prod {
				chunk += p
			}
			sum += chunk
		}
		for ; i < numBasis; i++ {
			sum += {{.Elem}}(controlPoints[i] * activation[i])
		}
		out[j] = sum
	}
}
{{end}}`))

// dispatchTemplate probes targets from widest to narrowest.
var dispatchTemplate = template.Must(template.New("dispatch").Parse(`// Code generated by bsplinegen. DO NOT EDIT.

//go:build amd64 && goexperiment.simd

package {{.Package}}

import (
	"simd/archsimd"

	"github.com/ajroetker/go-bspline/hwy"
)

func init() {
	if hwy.NoSimdEnv() {
		return
	}
{{- range .Targets}}
	if archsimd.X86.{{.Detect}}() {
		init{{.Name}}()
		return
	}
{{- end}}
}
{{range $t := .Targets}}
func init{{$t.Name}}() {
{{- range $.Kernels}}{{if eq .Target.Name $t.Name}}
	{{.DispatchV}} = {{.FuncName}}
{{- end}}{{end}}
	nativeLevel = hwy.{{$t.Level}}
}
{{end}}`))
