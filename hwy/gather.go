package hwy

// This file provides pure Go implementations of gather operations: vector
// loads whose lane addresses come from a vector of per-lane indices.

// GatherIndex loads elements from non-contiguous memory locations specified by indices.
// For each lane i in the index vector, it loads src[indices[i]].
// If an index is out of bounds (negative or >= len(src)), the result for that lane is zero.
func GatherIndex[T Lanes, I ~int32 | ~int64](src []T, indices Vec[I]) Vec[T] {
	return GatherIndexOffset(src, 0, indices, 1)
}

// GatherIndexOffset loads elements using base + index*scale addressing.
// For each lane i, it loads src[base + indices[i]*scale]; out-of-bounds
// lanes are zero.
//
// With interleaved tables, base selects the field: for a table of
// (key, value) pairs addressed by an even element index idx,
// GatherIndexOffset(tab, 1, idx, 1) fetches the values paired with
// GatherIndex(tab, idx).
func GatherIndexOffset[T Lanes, I ~int32 | ~int64](src []T, base int, indices Vec[I], scale int) Vec[T] {
	n := len(indices.data)
	result := make([]T, n)
	for i := range n {
		idx := base + int(indices.data[i])*scale
		if idx >= 0 && idx < len(src) {
			result[i] = src[idx]
		}
		// else: leave as zero value
	}
	return Vec[T]{data: result}
}
