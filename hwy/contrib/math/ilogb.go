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

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-highway-log/hwy"
)

// Sentinels returned by ILogB.
const (
	// ILogB0 is the result of ILogB(±0).
	ILogB0 int32 = stdmath.MinInt32

	// ILogBNaN is the result of ILogB(NaN). It coincides with ILogB0.
	ILogBNaN int32 = stdmath.MinInt32

	// ILogBInf is the result of ILogB(±Inf).
	ILogBInf int32 = stdmath.MaxInt32
)

// IEEE-754 layout.
const (
	expMask_f64  = 0x7ff
	expBias_f64  = 0x3ff
	mantBits_f64 = 52

	expMask_f32  = 0xff
	expBias_f32  = 0x7f
	mantBits_f32 = 23
)

// smallestNormal returns the smallest positive normal value of T.
func smallestNormal[T hwy.Floats]() T {
	if hwy.IsFloat32[T]() {
		return T(minNormal_f32)
	}
	return T(minNormal_f64)
}

// subnormalScale returns 2^64, the factor that lifts subnormals into the
// normal range before the exponent field is read.
func subnormalScale[T hwy.Floats]() T {
	return T(0x1p64)
}

const subnormalShift = 64

// ILogBScalar returns the unbiased binary exponent of x, the e for which
// |x| = m·2^e with m in [1, 2). Subnormals report their true exponent.
//
// Special cases are:
//
//	ILogBScalar(±0) = ILogB0
//	ILogBScalar(±Inf) = ILogBInf
//	ILogBScalar(NaN) = ILogBNaN
func ILogBScalar[T hwy.Floats](x T) int32 {
	e := ilogbk(abs(x))
	if x == 0 {
		e = ILogB0
	}
	if x != x {
		e = ILogBNaN
	}
	if stdmath.IsInf(float64(x), 0) {
		e = ILogBInf
	}
	return e
}

// ILogB computes ILogBScalar for every lane of v.
func ILogB[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[int32] {
	out := make([]int32, v.NumLanes())
	for i, x := range v.Data() {
		out[i] = ilogbk(abs(x))
	}
	e := hwy.FromSlice(out)
	n := v.NumLanes()

	zero := hwy.Equal(v, hwy.SetN[T](n, 0))
	nan := hwy.IsNaN(v)
	inf := hwy.IsInf(v, 0)
	e = hwy.IfThenElse(hwy.RebindMask[int32](zero), hwy.SetN(n, ILogB0), e)
	e = hwy.IfThenElse(hwy.RebindMask[int32](nan), hwy.SetN(n, ILogBNaN), e)
	e = hwy.IfThenElse(hwy.RebindMask[int32](inf), hwy.SetN(n, ILogBInf), e)
	return e
}

// Ldexp returns x·2^q computed on the exponent field. Results that
// overflow become ±Inf and results that underflow become ±0 (or a
// subnormal); NaN and ±Inf pass through.
func Ldexp[T hwy.Floats](x T, q int32) T {
	if x == 0 || x != x || stdmath.IsInf(float64(x), 0) {
		return x
	}
	return ldexpk(x, q)
}

// SplitFloat breaks x into m·2^e with |m| in [1, 2), the sign carried by m.
// Subnormal inputs are normalized. For ±0, ±Inf and NaN it returns (x, 0).
func SplitFloat[T hwy.Floats](x T) (m T, e int32) {
	if x == 0 || x != x || stdmath.IsInf(float64(x), 0) {
		return x, 0
	}
	e = ilogbk(abs(x))
	return ldexpk(x, -e), e
}

// ilogbk extracts the exponent of a non-negative finite d, rescaling
// subnormals first.
func ilogbk[T hwy.Floats](d T) int32 {
	if hwy.IsFloat32[T]() {
		f := float32(d)
		o := f < 0x1p-64
		if o {
			f *= 0x1p64
		}
		q := int32(stdmath.Float32bits(f)>>mantBits_f32) & expMask_f32
		if o {
			return q - (64 + expBias_f32)
		}
		return q - expBias_f32
	}
	f := float64(d)
	o := f < 0x1p-300
	if o {
		f *= 0x1p300
	}
	q := int32(stdmath.Float64bits(f)>>mantBits_f64) & expMask_f64
	if o {
		return q - (300 + expBias_f64)
	}
	return q - expBias_f64
}

// ilogb2k reads the exponent field of a positive normal d. No range checks.
func ilogb2k[T hwy.Floats](d T) int32 {
	if hwy.IsFloat32[T]() {
		return int32(stdmath.Float32bits(float32(d))>>mantBits_f32)&expMask_f32 - expBias_f32
	}
	return int32(stdmath.Float64bits(float64(d))>>mantBits_f64)&expMask_f64 - expBias_f64
}

// ldexp3k adds e to the exponent field of d. The caller guarantees the
// result is normal.
func ldexp3k[T hwy.Floats](d T, e int32) T {
	if hwy.IsFloat32[T]() {
		bits := int32(stdmath.Float32bits(float32(d))) + e<<mantBits_f32
		return T(stdmath.Float32frombits(uint32(bits)))
	}
	bits := int64(stdmath.Float64bits(float64(d))) + int64(e)<<mantBits_f64
	return T(stdmath.Float64frombits(uint64(bits)))
}

// pow2i returns 2^q for q in the normal exponent range.
func pow2i[T hwy.Floats](q int32) T {
	if hwy.IsFloat32[T]() {
		return T(stdmath.Float32frombits(uint32(q+expBias_f32) << mantBits_f32))
	}
	return T(stdmath.Float64frombits(uint64(int64(q)+expBias_f64) << mantBits_f64))
}

// ldexpk scales x by 2^q over the full range by splitting q across four
// clamped factors and a remainder.
func ldexpk[T hwy.Floats](x T, q int32) T {
	if hwy.IsFloat32[T]() {
		m := q >> 31
		m = (((m + q) >> 6) - m) << 4
		q -= m << 2
		m = min(max(m+expBias_f32, 0), expMask_f32)
		u := T(stdmath.Float32frombits(uint32(m) << mantBits_f32))
		x = x * u * u * u * u
		return x * pow2i[T](q)
	}
	m := q >> 31
	m = (((m + q) >> 9) - m) << 7
	q -= m << 2
	m = min(max(m+expBias_f64, 0), expMask_f64)
	u := T(stdmath.Float64frombits(uint64(m) << mantBits_f64))
	x = x * u * u * u * u
	return x * pow2i[T](q)
}

// abs clears the sign bit, so abs(-0) is +0.
func abs[T hwy.Floats](x T) T {
	if hwy.IsFloat32[T]() {
		return T(stdmath.Float32frombits(stdmath.Float32bits(float32(x)) &^ (1 << 31)))
	}
	return T(stdmath.Abs(float64(x)))
}
