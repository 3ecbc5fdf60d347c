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
	"github.com/ajroetker/go-highway-log/hwy/contrib/ddouble"
)

// LogScalar returns the natural logarithm of x with at most 1 ulp of error.
//
// Special cases are:
//
//	LogScalar(+Inf) = +Inf
//	LogScalar(x < 0) = NaN, including -Inf
//	LogScalar(NaN) = NaN
//	LogScalar(±0) = -Inf
func LogScalar[T hwy.Floats](x T) T {
	return logOverridesScalar(x, logk(x).Value())
}

// Log2Scalar returns the base-2 logarithm of x with at most 1 ulp of error.
// Exact powers of two give exact integers. Special cases match LogScalar.
func Log2Scalar[T hwy.Floats](x T) T {
	return logOverridesScalar(x, log2Core(x))
}

// Log10Scalar returns the base-10 logarithm of x with at most 1 ulp of
// error. Special cases match LogScalar.
func Log10Scalar[T hwy.Floats](x T) T {
	return logOverridesScalar(x, log10Core(x))
}

// Log1pScalar returns ln(1+a), accurate for a near zero.
//
// Special cases are:
//
//	Log1pScalar(a > 1e307) = +Inf (1e38 for float32)
//	Log1pScalar(a < -1) = NaN
//	Log1pScalar(NaN) = NaN
//	Log1pScalar(-1) = -Inf
//	Log1pScalar(±0) = ±0
//	Log1pScalar(a) = a for |a| < 2^-54 (2^-25 for float32)
func Log1pScalar[T hwy.Floats](a T) T {
	return log1pOverridesScalar(a, log1pCore(a))
}

// Log computes the natural logarithm of each lane with the accurate path.
// Lanes are evaluated one at a time by the double-double kernel; the
// special values are then patched with lane selects in the same order as
// LogScalar.
func Log[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return logOverrides(v, perLane(v, func(x T) T { return logk(x).Value() }))
}

// Log2 computes the base-2 logarithm of each lane with the accurate path.
func Log2[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return logOverrides(v, perLane(v, log2Core[T]))
}

// Log10 computes the base-10 logarithm of each lane with the accurate path.
func Log10[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return logOverrides(v, perLane(v, log10Core[T]))
}

// Log1p computes ln(1+a) for each lane with the accurate path.
func Log1p[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return log1pOverrides(v, perLane(v, log1pCore[T]))
}

// perLane applies a scalar kernel to every lane of v.
func perLane[T hwy.Floats](v hwy.Vec[T], fn func(T) T) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	for i, x := range data {
		result[i] = fn(x)
	}
	return hwy.FromSlice(result)
}

func log2Core[T hwy.Floats](x T) T {
	return ddouble.Mul(logk(x), log2eDD[T]()).Value()
}

func log10Core[T hwy.Floats](x T) T {
	return ddouble.Mul(logk(x), log10eDD[T]()).Value()
}

// logk returns ln(d) as a double-double for positive finite d. Other inputs
// produce an unspecified finite or non-finite value; callers patch them.
//
// d = m·2^e with m in [0.75, 1.5), x = (m-1)/(m+1), and
// ln(d) = e·ln2 + 2x + x³·P(x²).
func logk[T hwy.Floats](d T) ddouble.Double[T] {
	o := d < smallestNormal[T]()
	if o {
		d *= subnormalScale[T]()
	}
	e := ilogb2k(d * T(1.0/0.75))
	m := ldexp3k(d, -e)
	if o {
		e -= subnormalShift
	}

	x := ddouble.Div(ddouble.TwoSum(m, -1), ddouble.TwoSum(m, 1))
	x2 := x.Hi * x.Hi

	var t T
	if hwy.IsFloat32[T]() {
		t = hornerScalar(x2, logAccurateF32[:])
	} else {
		t = hornerScalar(x2, logAccurateF64[:])
	}

	s := ddouble.MulFloat(ln2DD[T](), T(e))
	s = ddouble.Add(s, x.Scale(2))
	return ddouble.AddFloat(s, x2*x.Hi*t)
}

// log1pCore evaluates ln(1+a) by forming 1+a exactly as a double-double.
func log1pCore[T hwy.Floats](a T) T {
	return logk2(ddouble.TwoSum(a, 1)).Value()
}

// logk2 returns ln(d) for a positive double-double d. The scale factor
// 2^-e is exact, so the low word of 1+a survives the reduction.
func logk2[T hwy.Floats](d ddouble.Double[T]) ddouble.Double[T] {
	e := ilogbk(d.Hi * T(1.0/0.75))
	m := d.Scale(pow2i[T](-e))

	x := ddouble.Div(ddouble.Add2Float(m, -1), ddouble.Add2Float(m, 1))
	x2 := ddouble.Square(x)

	var t T
	if hwy.IsFloat32[T]() {
		t = hornerScalar(x2.Hi, logk2F32[:])
	} else {
		t = hornerScalar(x2.Hi, logk2F64[:])
	}

	s := ddouble.MulFloat(ln2DD[T](), T(e))
	s = ddouble.Add(s, x.Scale(2))
	return ddouble.Add(s, ddouble.MulFloat(ddouble.Mul(x2, x), t))
}

func ln2DD[T hwy.Floats]() ddouble.Double[T] {
	if hwy.IsFloat32[T]() {
		return ddouble.New(T(ln2Hi_f32), T(ln2Lo_f32))
	}
	return ddouble.New(T(ln2Hi_f64), T(ln2Lo_f64))
}

func log2eDD[T hwy.Floats]() ddouble.Double[T] {
	if hwy.IsFloat32[T]() {
		return ddouble.New(T(log2eHi_f32), T(log2eLo_f32))
	}
	return ddouble.New(T(log2eHi_f64), T(log2eLo_f64))
}

func log10eDD[T hwy.Floats]() ddouble.Double[T] {
	if hwy.IsFloat32[T]() {
		return ddouble.New(T(log10eHi_f32), T(log10eLo_f32))
	}
	return ddouble.New(T(log10eHi_f64), T(log10eLo_f64))
}

func log1pMax[T hwy.Floats]() T {
	if hwy.IsFloat32[T]() {
		return T(log1pMax_f32)
	}
	return T(log1pMax_f64)
}

// logOverridesScalar patches r for the special inputs of the logarithm.
// Each rule overwrites the previous one, so the order matters: -Inf ends
// up NaN.
func log1pTiny[T hwy.Floats]() T {
	if hwy.IsFloat32[T]() {
		return T(log1pTiny_f32)
	}
	return T(log1pTiny_f64)
}

func logOverridesScalar[T hwy.Floats](x, r T) T {
	if stdmath.IsInf(float64(x), 0) {
		r = T(stdmath.Inf(1))
	}
	if x < 0 || x != x {
		r = T(stdmath.NaN())
	}
	if x == 0 {
		r = T(stdmath.Inf(-1))
	}
	return r
}

// logOverrides is logOverridesScalar with lane selects.
func logOverrides[T hwy.Floats](x, r hwy.Vec[T]) hwy.Vec[T] {
	n := x.NumLanes()
	zero := hwy.SetN[T](n, 0)
	r = hwy.IfThenElse(hwy.IsInf(x, 0), hwy.SetN(n, T(stdmath.Inf(1))), r)
	r = hwy.IfThenElse(hwy.MaskOr(hwy.Less(x, zero), hwy.IsNaN(x)), hwy.SetN(n, T(stdmath.NaN())), r)
	r = hwy.IfThenElse(hwy.Equal(x, zero), hwy.SetN(n, T(stdmath.Inf(-1))), r)
	return r
}

func log1pOverridesScalar[T hwy.Floats](a, r T) T {
	if a > log1pMax[T]() {
		r = T(stdmath.Inf(1))
	}
	if a < -1 || a != a {
		r = T(stdmath.NaN())
	}
	if a == -1 {
		r = T(stdmath.Inf(-1))
	}
	// Tiny arguments, ±0 and subnormals included, pass through.
	if abs(a) < log1pTiny[T]() {
		r = a
	}
	return r
}

func log1pOverrides[T hwy.Floats](a, r hwy.Vec[T]) hwy.Vec[T] {
	n := a.NumLanes()
	minusOne := hwy.SetN[T](n, -1)
	r = hwy.IfThenElse(hwy.Greater(a, hwy.SetN(n, log1pMax[T]())), hwy.SetN(n, T(stdmath.Inf(1))), r)
	r = hwy.IfThenElse(hwy.MaskOr(hwy.Less(a, minusOne), hwy.IsNaN(a)), hwy.SetN(n, T(stdmath.NaN())), r)
	r = hwy.IfThenElse(hwy.Equal(a, minusOne), hwy.SetN(n, T(stdmath.Inf(-1))), r)
	// Tiny arguments, ±0 and subnormals included, pass through.
	r = hwy.IfThenElse(hwy.Less(hwy.Abs(a), hwy.SetN(n, log1pTiny[T]())), a, r)
	return r
}
