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

//go:build riscv64

package hwy

import "golang.org/x/sys/cpu"

// rvvGroupWidth is the byte width of an LMUL=4 register group at VLEN=128.
const rvvGroupWidth = 4 * 16

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	if HasRVV() {
		setLevel(DispatchRVV, rvvGroupWidth)
		return
	}
	setScalarMode()
}

// HasRVV returns true if the CPU implements the RISC-V V extension and it
// has not been disabled with HWY_NO_SIMD or HWY_NO_RVV.
func HasRVV() bool {
	if NoSimdEnv() || envFlag("HWY_NO_RVV") {
		return false
	}
	return cpu.RISCV64.HasV
}

// HasFMA returns true: fused multiply-add is part of the F/D extensions.
func HasFMA() bool {
	return true
}
