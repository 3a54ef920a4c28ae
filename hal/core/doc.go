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

// Package core provides element-wise kernels of the hardware abstraction
// layer, written once against length-agnostic vectors from the hwy package.
//
// # Natural logarithm
//
// Log32f and Log64f compute dst[i] = ln(src[i]) for the first n elements:
//
//	src := []float32{1, 2, 0.5, 100}
//	dst := make([]float32, len(src))
//	core.Log32f(src, dst, len(src))
//	// dst = [0 0.6931472 -0.6931472 4.6051702]
//
// Each input is split into its binary exponent e and mantissa m in [1, 2).
// The top 8 mantissa bits pick one of 256 buckets; the bucket's start
// 1+i/256 has its logarithm and reciprocal stored in a precomputed table.
// The remaining mantissa bits, scaled by the reciprocal, give a small
// argument x0 in [0, 1/256), and
//
//	ln(src) = e·ln2 + ln(1+i/256) + ln(1+x0)
//
// with ln(1+x0) evaluated by a short polynomial: degree 3 for float32 and
// degree 8 for float64.
//
// The last bucket, m in [1+255/256, 2), is reduced against 2 instead of its
// start: its table pair is (ln 2, 1/2) and 1/512 is subtracted from x0,
// so x0 = (m-2)/2 lies in [-1/512, 0). The float32 result is within
// 2.5e-7·max(1, |ln src|) of the true value and the float64 result within
// 8e-16·max(1, |ln src|), and both increase with src over positive normal
// inputs.
//
// # Special values
//
// Inputs are not validated. The result is whatever the bit manipulation
// yields:
//
//   - the sign bit is ignored, so ln(-x) = ln(x);
//   - zero and subnormals read as exponent -127 (float32) or -1023
//     (float64), giving results near -88.03 and -709.09;
//   - infinities and NaNs read as exponent 128 (float32) or 1024 (float64)
//     and give finite results in [128·ln2, 129·ln2) or [1024·ln2, 1025·ln2).
//
// # Vector length
//
// The kernels process the input in strips sized by hwy.VL. Log32fTag and
// Log64fTag accept any hwy.TypedTag, and every tag yields bit-identical
// results; only throughput changes.
package core

//go:generate go run ../../cmd/logtabgen -output . -pkg core -types float32,float64
