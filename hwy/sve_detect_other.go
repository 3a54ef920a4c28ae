//go:build arm64 && !linux

package hwy

// HasSVE returns false: SVE detection is only wired up on Linux.
func HasSVE() bool {
	return false
}
