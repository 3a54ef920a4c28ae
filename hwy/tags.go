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

import "strconv"

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("sse2", "avx2", etc.)
	Name() string
}

// TypedTag is a Tag bound to a lane type, so it can report a lane count.
// Length-agnostic kernels take a TypedTag and size every strip with VL.
type TypedTag[T Lanes] interface {
	Tag

	// MaxLanes returns the number of T values in one full vector.
	MaxLanes() int

	// Zero returns a full vector of zero lanes. It also ties the tag to T,
	// so a tag for another lane type does not satisfy TypedTag[T].
	Zero() Vec[T]
}

// ScalableTag adapts to the widest SIMD available at runtime.
// This is the recommended tag for most use cases as it provides
// optimal performance across different CPU architectures.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	maxLanes := tag.MaxLanes()
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// MaxLanes returns the maximum number of lanes for type T
// with the current SIMD width.
func (t ScalableTag[T]) MaxLanes() int {
	return MaxLanes[T]()
}

// Zero returns a vector of MaxLanes() zeros.
func (t ScalableTag[T]) Zero() Vec[T] {
	return SetN(t.MaxLanes(), T(0))
}

// FixedTag128 forces 128-bit SIMD operations (SSE, NEON).
// Use this when you need consistent behavior across platforms
// or when you know 128-bit is optimal for your use case.
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	return lanesFor[T](16)
}

// Zero returns a vector of MaxLanes() zeros.
func (t FixedTag128[T]) Zero() Vec[T] {
	return SetN(t.MaxLanes(), T(0))
}

// FixedTag256 forces 256-bit SIMD operations (AVX2).
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	return lanesFor[T](32)
}

// Zero returns a vector of MaxLanes() zeros.
func (t FixedTag256[T]) Zero() Vec[T] {
	return SetN(t.MaxLanes(), T(0))
}

// FixedTag512 forces 512-bit SIMD operations (AVX-512, RVV with LMUL=4).
type FixedTag512[T Lanes] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// MaxLanes returns the number of T values that fit in 512 bits.
func (t FixedTag512[T]) MaxLanes() int {
	return lanesFor[T](64)
}

// Zero returns a vector of MaxLanes() zeros.
func (t FixedTag512[T]) Zero() Vec[T] {
	return SetN(t.MaxLanes(), T(0))
}

// CappedTag limits vectors to at most N lanes, and never more than the
// runtime width allows. It mirrors Highway's CappedTag<T, N>; N is a field
// because Go type parameters cannot be constants.
//
// Capping is the tool for checking that a length-agnostic kernel gives
// bit-identical output when forced through more, narrower strips.
// N < 1 is treated as 1.
type CappedTag[T Lanes] struct {
	N int
}

// Width returns the byte width of a capped vector.
func (t CappedTag[T]) Width() int {
	var dummy T
	return t.MaxLanes() * sizeOf(dummy)
}

// Name returns "capped<N>".
func (t CappedTag[T]) Name() string {
	return "capped" + strconv.Itoa(t.MaxLanes())
}

// MaxLanes returns min(N, MaxLanes[T]()), at least 1.
func (t CappedTag[T]) MaxLanes() int {
	return max(1, min(t.N, MaxLanes[T]()))
}

// Zero returns a vector of MaxLanes() zeros.
func (t CappedTag[T]) Zero() Vec[T] {
	return SetN(t.MaxLanes(), T(0))
}
