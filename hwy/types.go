// Package hwy provides portable SIMD-style vector operations with runtime CPU dispatch.
//
// It follows the Highway C++ library's design philosophy: write a kernel once
// against a lane-count-agnostic vector handle, then let the dispatch layer pick
// the widest instruction set available (AVX2, AVX-512, NEON) or fall back to
// scalar code.
//
// The Vec type in this package is the portable representation: a fixed-capacity
// value type holding up to MaxVecLanes lanes. Kernels written against it choose
// their lane count at runtime, which is what lets a caller configure the vector
// width of an algorithm without recompiling.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-bspline/hwy"
//
//	lanes := hwy.MaxLanes[float64]()
//	a := hwy.LoadN(data1, lanes)
//	b := hwy.LoadN(data2, lanes)
//	hwy.Store(hwy.Add(a, b), output)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// MaxVecLanes is the largest lane count a Vec can hold: one 512-bit register
// of float32.
const MaxVecLanes = 16

// Vec is a portable vector handle.
//
// It is a value type backed by a fixed-size array, so portable kernels do not
// allocate per operation. Only the first NumLanes lanes are meaningful.
//
// Vec instances should not be created directly; use Load, LoadN, Set, SetN or Zero.
type Vec[T Floats] struct {
	data [MaxVecLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse to perform lane-wise selection.
//
// Mask instances should not be created directly; use comparison operations
// like LessThan or GreaterEqual instead.
type Mask[T Floats] struct {
	// bits has bit i set if lane i is active.
	bits uint32
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == laneBits(m.n)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for b := m.bits; b != 0; b &= b - 1 {
		count++
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

// laneBits returns a bit pattern with the low n bits set.
func laneBits(n int) uint32 {
	return uint32(1)<<uint(n) - 1
}

// clampLanes bounds a requested lane count to [0, MaxVecLanes].
func clampLanes(n int) int {
	return max(0, min(n, MaxVecLanes))
}
