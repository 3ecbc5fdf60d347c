package hwy

import (
	"os"
	"strconv"
	"sync/atomic"
	"unsafe"
)

// DispatchLevel represents the current SIMD instruction set being used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// hasGetExpMant reports whether the target has single-instruction exponent
// and mantissa extraction (AVX-512F VGETEXP/VGETMANT). Set by init() in
// dispatch_*.go files and overridable with SetGetExpMant.
var hasGetExpMant atomic.Bool

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// HasGetExpMant reports whether GetExponent and GetMantissa map to native
// instructions on this CPU. Kernels use it to choose between extracting the
// exponent and mantissa directly and the portable bit-manipulation path.
//
// It is false when HWY_NO_SIMD or HWY_NO_GETEXP is set.
func HasGetExpMant() bool {
	return hasGetExpMant.Load()
}

// SetGetExpMant overrides the detected capability and returns a function
// that restores the previous value. It exists so both kernel variants can
// be exercised on any machine:
//
//	defer hwy.SetGetExpMant(false)()
func SetGetExpMant(enabled bool) (restore func()) {
	prev := hasGetExpMant.Swap(enabled)
	return func() { hasGetExpMant.Store(prev) }
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Highway will use scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	return boolEnv("HWY_NO_SIMD")
}

// NoGetExpEnv checks if the HWY_NO_GETEXP environment variable is set.
// When set, kernels take the portable exponent/mantissa extraction path
// even on CPUs that have native instructions for it.
func NoGetExpEnv() bool {
	return boolEnv("HWY_NO_GETEXP")
}

func boolEnv(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setScalarMode configures the package for the pure Go fallback.
func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
	hasGetExpMant.Store(false)
}

// MaxLanes returns the maximum number of lanes for type T with the current SIMD width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
