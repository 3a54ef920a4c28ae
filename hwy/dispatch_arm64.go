//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		setLevel(DispatchNEON, 16)
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}

	// SVE register length is implementation defined and cannot be queried
	// without assembly; 128 bits is the architectural minimum.
	if HasSVE() {
		setLevel(DispatchSVE, 16)
	}
}

// HasFMA returns true: FMLA is part of the ARMv8-A base architecture.
func HasFMA() bool {
	return true
}
