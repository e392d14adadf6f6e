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

package hwy

// This file provides the pure Go implementations of the portable vector
// operations. Every operation works on the first NumLanes lanes of its
// operands; binary operations use the smaller lane count of the two.
// Lanes beyond a Vec's lane count are never read.

// LoadN creates a vector of n lanes by loading data from a slice.
// If src is shorter than n, the vector has len(src) lanes.
func LoadN[T Floats](src []T, n int) Vec[T] {
	n = min(clampLanes(n), len(src))
	var v Vec[T]
	copy(v.data[:n], src[:n])
	v.n = n
	return v
}

// Load creates a vector by loading data from a slice, using the lane count
// of the current dispatch width.
func Load[T Floats](src []T) Vec[T] {
	return LoadN(src, MaxLanes[T]())
}

// Store writes a vector's data to a slice.
func Store[T Floats](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// SetN creates a vector of n lanes, all set to the same value.
func SetN[T Floats](value T, n int) Vec[T] {
	var v Vec[T]
	v.n = clampLanes(n)
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Set creates a vector with all lanes set to the same value, using the lane
// count of the current dispatch width.
func Set[T Floats](value T) Vec[T] {
	return SetN(value, MaxLanes[T]())
}

// ZeroN creates a vector of n lanes set to zero.
func ZeroN[T Floats](n int) Vec[T] {
	return Vec[T]{n: clampLanes(n)}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return ZeroN[T](MaxLanes[T]())
}

// Add performs element-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication.
// Each product is rounded to T, so a following Add never fuses with it.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = T(a.data[i] * b.data[i])
	}
	return r
}

// Div performs element-wise division with IEEE-754 semantics: a zero
// divisor yields ±Inf or NaN, never a panic.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// ReduceSum sums all lanes, in lane order.
func ReduceSum[T Floats](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// LessThan performs element-wise less-than comparison.
// Lanes holding NaN compare false.
func LessThan[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] < b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
// Lanes holding NaN compare false.
func GreaterEqual[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] >= b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range m.n {
		if v.data[i] != v.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// MaskAnd returns the lane-wise AND of two masks.
func MaskAnd[T Floats](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{bits: a.bits & b.bits & laneBits(n), n: n}
}

// IfThenElse performs conditional selection: lane i is a[i] where the mask
// is set and b[i] otherwise.
func IfThenElse[T Floats](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, a.n, b.n)}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}
