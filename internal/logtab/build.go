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

// Package logtab holds the bucket table used by the table-assisted
// logarithm kernels in hal/core.
//
// The mantissa range [1, 2) is split into Buckets equal buckets. Bucket i
// starts at 1 + i/Buckets and contributes the pair
//
//	(ln(1 + i/Buckets), Buckets/(Buckets + i))
//
// stored interleaved, so the log of bucket i sits at offset 2i and its
// reciprocal at 2i+1. The last bucket instead holds (ln 2, 1/2), the pair of
// the mantissa's upper end: its inputs are reduced against 2 rather than
// against the bucket start, with the kernel subtracting the 1/(2·Buckets)
// gap from the reduced argument.
package logtab

import (
	"fmt"
	"strconv"
)

const (
	// Scale is log2(Buckets): the number of mantissa bits that select a bucket.
	Scale = 8

	// Buckets is the number of mantissa buckets.
	Buckets = 1 << Scale

	// Size is the number of table elements, one pair per bucket.
	Size = 2 * Buckets
)

// Build returns the interleaved table rounded to T.
//
// Each entry is parsed to float64 and then converted to T, so a float32
// table is the float64 table narrowed element by element.
func Build[T ~float32 | ~float64]() []T {
	tab := make([]T, Size)
	for i, s := range literals {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			panic(fmt.Sprintf("logtab: entry %d: %v", i, err))
		}
		tab[i] = T(v)
	}
	return tab
}
