// Package hwy provides the portable vector layer the logarithm library is
// written against.
//
// It follows the Highway C++ library's design: kernels are written once
// against Vec and Mask, and lane-parallel selects (IfThenElse) replace
// branches so that every lane runs the same instruction stream. In this
// package each operation is the scalar reference implementation; runtime
// dispatch only decides which kernel variant a caller should pick (see
// HasGetExpMant).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-highway-log/hwy"
//
//	v := hwy.Load(data)
//	m := hwy.GetMantissa(v, hwy.MantissaNormP75To1P5)
//	e := hwy.GetExponent(hwy.Mul(v, hwy.Set[float32](4.0/3.0)))
//	hwy.Store(hwy.Add(m, e), out)
package hwy

import "slices"

// Floats is the lane constraint of every logarithm kernel.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is the constraint for any lane type: floats for values,
// integers for exponents and bit patterns.
type Lanes interface {
	Floats | Integers
}

// Vec is a vector of lanes of type T. Here it is backed by a slice whose
// length is the lane count: Load caps it at MaxLanes, while FromSlice,
// SetN and Concat build vectors of any width.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the lane count of v.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data exposes the lanes of v. Per-lane fallbacks and tests read it; the
// slice must not be modified.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask holds one boolean per lane, as produced by comparisons and
// classification ops and consumed by IfThenElse, MaskLoad and MaskStore.
type Mask[T Lanes] struct {
	bits []bool
}

// AnyTrue reports whether at least one lane is set.
func (m Mask[T]) AnyTrue() bool {
	return slices.Contains(m.bits, true)
}
