//go:build !amd64 && !arm64 && !riscv64

package hwy

func init() {
	// Other architectures run the portable kernels strip by strip at the
	// scalar width; wasm SIMD128 would slot in here.
	setScalarMode()
}

// HasFMA reports false: no fused multiply-add detection on this GOARCH.
// math.FMA still provides fused semantics in software.
func HasFMA() bool {
	return false
}
