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
	"fmt"

	"github.com/ajroetker/go-highway-log/hwy"
)

// Base selects the logarithm base of the fast path.
type Base int

const (
	// BaseE selects the natural logarithm.
	BaseE Base = iota
	// Base2 selects the binary logarithm.
	Base2
	// Base10 selects the decimal logarithm.
	Base10

	numBases
)

// String returns "e", "2" or "10".
func (b Base) String() string {
	switch b {
	case BaseE:
		return "e"
	case Base2:
		return "2"
	case Base10:
		return "10"
	default:
		return fmt.Sprintf("Base(%d)", int(b))
	}
}

func (b Base) check() {
	if b < 0 || b >= numBases {
		panic(fmt.Sprintf("math: unsupported logarithm base %v", b))
	}
}

// fastKernel is the per-call selection of coefficients for one base and
// precision. It is resolved before any lane is touched.
type fastKernel[T hwy.Floats] struct {
	poly64  []float64
	poly32  []float32
	invLog2 T
}

func newFastKernel[T hwy.Floats](base Base) fastKernel[T] {
	base.check()
	if hwy.IsFloat32[T]() {
		return fastKernel[T]{poly32: logFastF32[base][:], invLog2: T(invLog2F32[base])}
	}
	return fastKernel[T]{poly64: logFastF64[base][:], invLog2: T(invLog2F64[base])}
}

func (k fastKernel[T]) polyScalar(x2 T) T {
	if k.poly32 != nil {
		return hornerScalar(x2, k.poly32)
	}
	return hornerScalar(x2, k.poly64)
}

func (k fastKernel[T]) polyVec(x2 hwy.Vec[T]) hwy.Vec[T] {
	if k.poly32 != nil {
		return hornerVec(x2, k.poly32)
	}
	return hornerVec(x2, k.poly64)
}

// LogFastScalar returns the natural logarithm of x using working-precision
// arithmetic. The error is at most 3.5 ulp for float64 and 4 ulp for
// float32. Special cases match LogScalar.
func LogFastScalar[T hwy.Floats](x T) T {
	return logFastScalar(BaseE, x)
}

// Log2FastScalar is LogFastScalar in base 2.
func Log2FastScalar[T hwy.Floats](x T) T {
	return logFastScalar(Base2, x)
}

// Log10FastScalar is LogFastScalar in base 10.
func Log10FastScalar[T hwy.Floats](x T) T {
	return logFastScalar(Base10, x)
}

// LogFastBaseScalar is the fast logarithm in the given base.
func LogFastBaseScalar[T hwy.Floats](base Base, x T) T {
	return logFastScalar(base, x)
}

func logFastScalar[T hwy.Floats](base Base, d T) T {
	k := newFastKernel[T](base)
	x0 := d

	o := d < smallestNormal[T]()
	if o {
		d *= subnormalScale[T]()
	}
	e := ilogb2k(d * T(1.0/0.75))
	m := ldexp3k(d, -e)
	if o {
		e -= subnormalShift
	}

	x := (m - 1) / (m + 1)
	t := k.polyScalar(x * x)
	r := hwy.FusedMulAdd(x, t, T(e)*k.invLog2)
	return logOverridesScalar(x0, r)
}

// logFastGeneric is the vector fast path that reads the exponent field
// directly. Subnormal lanes are first scaled by 2^64.
func logFastGeneric[T hwy.Floats](base Base, d hwy.Vec[T]) hwy.Vec[T] {
	k := newFastKernel[T](base)
	n := d.NumLanes()

	// Negative lanes compare below the smallest normal too; their result is
	// overridden anyway.
	o := hwy.Less(d, hwy.SetN(n, smallestNormal[T]()))
	rescale := o.AnyTrue()
	ds := d
	if rescale {
		ds = hwy.IfThenElse(o, hwy.Mul(d, hwy.SetN(n, subnormalScale[T]())), d)
	}
	e, m := splitExponentBits(ds)
	if rescale {
		e = hwy.IfThenElse(o, hwy.Sub(e, hwy.SetN[T](n, subnormalShift)), e)
	}

	return logOverrides(d, logFastCombine(k, m, e))
}

// logFastHardware is the vector fast path built on GetMantissa and
// GetExponent. Subnormals need no rescaling. The exponent of x·4/3 is
// clamped for inputs near the top of the range, where the product
// overflows.
func logFastHardware[T hwy.Floats](base Base, d hwy.Vec[T]) hwy.Vec[T] {
	k := newFastKernel[T](base)
	n := d.NumLanes()

	m := hwy.GetMantissa(d, hwy.MantissaNormP75To1P5)
	e := hwy.GetExponent(hwy.Mul(d, hwy.SetN(n, T(1.0/0.75))))
	e = hwy.IfThenElse(hwy.IsInf(e, 1), hwy.SetN(n, overflowExponent[T]()), e)

	return logOverrides(d, logFastCombine(k, m, e))
}

// logFastCombine evaluates x·P(x²) + e·log_base(2) for x = (m-1)/(m+1).
func logFastCombine[T hwy.Floats](k fastKernel[T], m, e hwy.Vec[T]) hwy.Vec[T] {
	n := m.NumLanes()
	one := hwy.SetN[T](n, 1)
	x := hwy.Div(hwy.Sub(m, one), hwy.Add(m, one))
	t := k.polyVec(hwy.Mul(x, x))
	return hwy.MulAdd(x, t, hwy.Mul(e, hwy.SetN(n, k.invLog2)))
}

// splitExponentBits returns e = ilogb2k(d·4/3) as floats and
// m = d·2^-e, using integer operations on the bit patterns.
func splitExponentBits[T hwy.Floats](d hwy.Vec[T]) (e, m hwy.Vec[T]) {
	n := d.NumLanes()
	switch dv := any(d).(type) {
	case hwy.Vec[float32]:
		bits := hwy.AsInt32(hwy.Mul(dv, hwy.SetN(n, float32(1.0/0.75))))
		q := hwy.Sub(hwy.And(hwy.ShiftRight(bits, mantBits_f32), hwy.SetN[int32](n, expMask_f32)), hwy.SetN[int32](n, expBias_f32))
		mm := hwy.AsFloat32(hwy.Sub(hwy.AsInt32(dv), hwy.ShiftLeft(q, mantBits_f32)))
		return any(hwy.ConvertToFloat32(q)).(hwy.Vec[T]), any(mm).(hwy.Vec[T])
	case hwy.Vec[float64]:
		bits := hwy.AsInt64(hwy.Mul(dv, hwy.SetN(n, 1.0/0.75)))
		q := hwy.Sub(hwy.And(hwy.ShiftRight(bits, mantBits_f64), hwy.SetN[int64](n, expMask_f64)), hwy.SetN[int64](n, expBias_f64))
		mm := hwy.AsFloat64(hwy.Sub(hwy.AsInt64(dv), hwy.ShiftLeft(q, mantBits_f64)))
		return any(hwy.ConvertToFloat64(q)).(hwy.Vec[T]), any(mm).(hwy.Vec[T])
	}

	// Named float types: same bit manipulation, one lane at a time.
	es := make([]T, n)
	ms := make([]T, n)
	for i, x := range d.Data() {
		q := ilogb2k(x * T(1.0/0.75))
		es[i] = T(q)
		ms[i] = ldexp3k(x, -q)
	}
	return hwy.FromSlice(es), hwy.FromSlice(ms)
}

// overflowExponent is the exponent GetExponent would report for x·4/3 if
// the product did not overflow: one past the largest finite exponent.
func overflowExponent[T hwy.Floats]() T {
	if hwy.IsFloat32[T]() {
		return 128
	}
	return 1024
}
