// Package hwy provides portable vector operations with runtime lane-width
// dispatch.
//
// It follows the Highway C++ library's design philosophy: write a kernel
// once against length-agnostic vectors, and let the runtime decide how many
// lanes a vector holds. Vectors here are backed by plain Go slices, so every
// operation is a per-lane loop with identical results regardless of the
// lane count; only throughput depends on the width reported by the CPU.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-hal/hwy"
//
//	tag := hwy.ScalableTag[float32]{}
//	for off := 0; off < len(src); {
//	    vl := hwy.VL[float32](tag, len(src)-off)
//	    v := hwy.LoadN(src[off:], vl)
//	    hwy.StoreN(hwy.Add(v, v), dst[off:], vl)
//	    off += vl
//	}
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle.
//
// Vec instances should not be created directly; use Load, LoadN, Set or Zero.
// The number of lanes is fixed when the vector is created and is at most the
// lane count of the tag used to size it.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse and Merge to perform conditional operations.
//
// Mask instances should not be created directly; use comparison operations
// like Equal instead.
type Mask[T Lanes] struct {
	// bits[i] is true if lane i is active.
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// RebindMask reinterprets a mask computed on lanes of type TFrom as a mask
// over lanes of type TTo. Both types must have the same size for the lane
// positions to line up, e.g. int32 and float32.
func RebindMask[TTo, TFrom Lanes](m Mask[TFrom]) Mask[TTo] {
	return Mask[TTo]{bits: m.bits}
}
