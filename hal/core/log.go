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

package core

import (
	"math"

	"github.com/ajroetker/go-hal/hwy"
	"github.com/ajroetker/go-hal/internal/logtab"
)

// IEEE-754 field layout.
const (
	f32MantBits = 23
	f32ExpMask  = 0xff
	f32Bias     = 127

	f64MantBits = 52
	f64ExpMask  = 0x7ff
	f64Bias     = 1023
)

const (
	// pairMask keeps the bucket bits of a shifted mantissa, already
	// multiplied by the pair stride of the interleaved table.
	pairMask = logtab.Size - 2

	// lastPair is the table offset of the final bucket, which holds
	// (ln 2, 1/2) so its inputs are reduced against 2.
	lastPair = pairMask

	// lastBucketGap is (2 - (1+255/256))·1/2. Subtracting it from x0 gives
	// x0 = (m-2)/2 for mantissas m in the last bucket.
	lastBucketGap = 1.0 / (2 * logtab.Buckets)
)

// Coefficients of ln(1+x) = x - x²/2 + ... - x⁸/8, highest degree first.
var log64Coeffs = [...]float64{
	-1.0 / 8,
	1.0 / 7,
	-1.0 / 6,
	1.0 / 5,
	-1.0 / 4,
	1.0 / 3,
	-1.0 / 2,
	1,
}

// Log32f computes dst[i] = ln(src[i]) for i in [0, n) using the widest
// vectors available at runtime.
//
// src and dst must hold at least n elements and may be the same slice.
// The result is always OK.
func Log32f(src, dst []float32, n int) Status {
	return Log32fTag(hwy.ScalableTag[float32]{}, src, dst, n)
}

// Log64f is the float64 counterpart of Log32f.
func Log64f(src, dst []float64, n int) Status {
	return Log64fTag(hwy.ScalableTag[float64]{}, src, dst, n)
}

// Log32fTag is Log32f with strips of at most tag.MaxLanes() elements.
func Log32fTag(tag hwy.TypedTag[float32], src, dst []float32, n int) Status {
	src, dst = src[:n], dst[:n]

	lanes := tag.MaxLanes()
	mantMask := hwy.SetN(lanes, int32(1<<(f32MantBits-logtab.Scale)-1))
	oneBits := hwy.SetN(lanes, int32(f32Bias<<f32MantBits))
	idxMask := hwy.SetN(lanes, int32(pairMask))
	last := hwy.SetN(lanes, int32(lastPair))
	expMask := hwy.SetN(lanes, int32(f32ExpMask))
	bias := hwy.SetN(lanes, int32(f32Bias))
	ln2 := hwy.SetN(lanes, float32(math.Ln2))
	gap := hwy.SetN(lanes, float32(lastBucketGap))
	one := hwy.SetN(lanes, float32(1))
	third := hwy.SetN(lanes, float32(1.0/3))
	negHalf := hwy.SetN(lanes, float32(-0.5))
	tab := logTabFloat32[:]

	for off := 0; off < n; {
		vl := hwy.VL[float32](tag, n-off)
		i0 := hwy.BitCastF32ToI32(hwy.LoadN(src[off:], vl))

		// Mantissa bits below the bucket, as a float in [1, 1+1/256).
		f := hwy.BitCastI32ToF32(hwy.Or(hwy.And(i0, mantMask), oneBits))

		idx := hwy.And(hwy.ShiftRight(i0, f32MantBits-logtab.Scale-1), idxMask)
		logv := hwy.GatherIndex(tab, idx)
		rcp := hwy.GatherIndexOffset(tab, 1, idx, 1)

		e := hwy.Sub(hwy.And(hwy.ShiftRight(i0, f32MantBits), expMask), bias)
		y0 := hwy.MulAdd(hwy.ConvertToFloat32(e), ln2, logv)

		x0 := hwy.Mul(hwy.Sub(f, one), rcp)
		inLast := hwy.RebindMask[float32](hwy.Equal(idx, last))
		x0 = hwy.IfThenElse(inLast, hwy.Sub(x0, gap), x0)

		p := hwy.Add(hwy.Mul(x0, third), negHalf)
		p = hwy.MulAdd(p, x0, one)
		hwy.StoreN(hwy.MulAdd(p, x0, y0), dst[off:], vl)

		off += vl
	}
	return OK
}

// Log64fTag is Log64f with strips of at most tag.MaxLanes() elements.
func Log64fTag(tag hwy.TypedTag[float64], src, dst []float64, n int) Status {
	src, dst = src[:n], dst[:n]

	lanes := tag.MaxLanes()
	mantMask := hwy.SetN(lanes, int64(1<<(f64MantBits-logtab.Scale)-1))
	oneBits := hwy.SetN(lanes, int64(f64Bias<<f64MantBits))
	idxMask := hwy.SetN(lanes, int64(pairMask))
	last := hwy.SetN(lanes, int64(lastPair))
	expMask := hwy.SetN(lanes, int64(f64ExpMask))
	bias := hwy.SetN(lanes, int64(f64Bias))
	ln2 := hwy.SetN(lanes, math.Ln2)
	gap := hwy.SetN(lanes, float64(lastBucketGap))
	var a [len(log64Coeffs)]hwy.Vec[float64]
	for k, c := range log64Coeffs {
		a[k] = hwy.SetN(lanes, c)
	}
	one := a[len(a)-1]
	tab := logTabFloat64[:]

	for off := 0; off < n; {
		vl := hwy.VL[float64](tag, n-off)
		i0 := hwy.BitCastF64ToI64(hwy.LoadN(src[off:], vl))

		f := hwy.BitCastI64ToF64(hwy.Or(hwy.And(i0, mantMask), oneBits))

		idx := hwy.And(hwy.ShiftRight(i0, f64MantBits-logtab.Scale-1), idxMask)
		logv := hwy.GatherIndex(tab, idx)
		rcp := hwy.GatherIndexOffset(tab, 1, idx, 1)

		e := hwy.Sub(hwy.And(hwy.ShiftRight(i0, f64MantBits), expMask), bias)
		y0 := hwy.MulAdd(hwy.ConvertToFloat64(e), ln2, logv)

		x0 := hwy.Mul(hwy.Sub(f, one), rcp)
		inLast := hwy.RebindMask[float64](hwy.Equal(idx, last))
		x0 = hwy.IfThenElse(inLast, hwy.Sub(x0, gap), x0)

		// The first four steps round the product before adding; the rest
		// are fused.
		p := hwy.Add(hwy.Mul(x0, a[0]), a[1])
		for k := 2; k <= 4; k++ {
			p = hwy.Add(hwy.Mul(x0, p), a[k])
		}
		for k := 5; k < len(a); k++ {
			p = hwy.MulAdd(p, x0, a[k])
		}
		hwy.StoreN(hwy.MulAdd(p, x0, y0), dst[off:], vl)

		off += vl
	}
	return OK
}
