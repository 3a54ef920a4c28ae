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

// VL returns the number of lanes to process in the next strip of a
// length-agnostic loop: min(tag.MaxLanes(), remaining), or 0 when nothing
// remains. It is the portable counterpart of RVV's vsetvl and must be
// re-queried every iteration, since the final strip is usually narrower.
//
// Example:
//
//	tag := hwy.ScalableTag[float32]{}
//	for off := 0; off < n; {
//	    vl := hwy.VL[float32](tag, n-off)
//	    v := hwy.LoadN(src[off:], vl)
//	    // ... process vl lanes
//	    hwy.StoreN(v, dst[off:], vl)
//	    off += vl
//	}
func VL[T Lanes](tag TypedTag[T], remaining int) int {
	if remaining <= 0 {
		return 0
	}
	return min(tag.MaxLanes(), remaining)
}
