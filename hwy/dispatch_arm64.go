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
	switch {
	case detectSVE():
		currentLevel = DispatchSVE
		currentWidth = 16 // kernels use the 128-bit minimum SVE length
		currentName = "sve"
	case cpu.ARM64.HasASIMD:
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	default:
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}

	// NEON and SVE have no single-instruction mantissa extraction, so the
	// log kernels always take the bit-manipulation path here.
	hasGetExpMant.Store(false)
}
