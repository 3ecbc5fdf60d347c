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
	"math/rand/v2"

	"github.com/ajroetker/go-highway-log/hwy"
)

// ulps64 returns |got-want| in units of the spacing of float64 at want.
func ulps64(got, want float64) float64 {
	if got == want || (stdmath.IsNaN(got) && stdmath.IsNaN(want)) {
		return 0
	}
	a := stdmath.Abs(want)
	ulp := stdmath.Nextafter(a, stdmath.Inf(1)) - a
	return stdmath.Abs(got-want) / ulp
}

// ulps32 returns |got-want| in units of the spacing of float32 at want,
// where want is a float64 reference value.
func ulps32(got float32, want float64) float64 {
	if float64(got) == want || (got != got && want != want) {
		return 0
	}
	a := float32(stdmath.Abs(want))
	ulp := float64(stdmath.Float32frombits(stdmath.Float32bits(a)+1)) - float64(a)
	return stdmath.Abs(float64(got)-want) / ulp
}

// Two-part constants for the reference logarithm.
const (
	refLn2Hi    = 0.6931471805599453
	refLn2Lo    = 2.3190468138462996e-17
	refLog2EHi  = 1.4426950408889634
	refLog2ELo  = 2.0355273740931033e-17
	refLog10EHi = 0.4342944819032518
	refLog10ELo = 1.098319650216765e-17
)

// refLogScaled returns ln(x)·(scaleHi+scaleLo), carried in two parts and
// rounded once, within about 0.53 ulp. It does not use math.Log, which is
// inaccurate for subnormals on some platforms, or math.Log2, which cancels
// near 1. With x = m·2^e and m in [√½, √2), ln(m) = 2·atanh(s) for
// s = (m-1)/(m+1); s is split into two parts and only the series tail,
// below 1% of the total, is evaluated in plain float64.
func refLogScaled(x, scaleHi, scaleLo float64) float64 {
	if !(x > 0) || stdmath.IsInf(x, 1) {
		return stdmath.Log(x)
	}
	m, e := stdmath.Frexp(x)
	if m < stdmath.Sqrt2/2 {
		m *= 2
		e--
	}
	f := m - 1

	dHi := 2 + f
	dLo := f - (dHi - 2)
	sHi := f / dHi
	sLo := (stdmath.FMA(-sHi, dHi, f) - sHi*dLo) / dHi

	z := sHi * sHi
	q := 0.0
	for k := 20; k >= 1; k-- {
		q = q*z + 1/float64(2*k+1)
	}
	tail := 2*sHi*z*q + 2*sLo
	pHi := 2*sHi + tail
	pLo := tail - (pHi - 2*sHi)

	fe := float64(e)
	aHi := fe * refLn2Hi
	aLo := stdmath.FMA(fe, refLn2Hi, -aHi) + fe*refLn2Lo

	hHi := aHi + pHi
	bv := hHi - aHi
	hLo := (aHi - (hHi - bv)) + (pHi - bv) + aLo + pLo

	rHi := hHi * scaleHi
	rLo := stdmath.FMA(hHi, scaleHi, -rHi) + hHi*scaleLo + hLo*scaleHi
	return rHi + rLo
}

func refLog(x float64) float64 { return refLogScaled(x, 1, 0) }
func refLog2(x float64) float64 { return refLogScaled(x, refLog2EHi, refLog2ELo) }
func refLog10(x float64) float64 { return refLogScaled(x, refLog10EHi, refLog10ELo) }

// sweep64 returns positive float64 inputs covering every binade from the
// smallest subnormal to the largest finite value, plus dense samples
// around 1.
func sweep64(seed uint64) []float64 {
	r := rand.New(rand.NewPCG(seed, 0x1b))
	var xs []float64
	for e := -1074; e <= 1023; e += 3 {
		for range 4 {
			xs = append(xs, stdmath.Ldexp(1+0.99*r.Float64(), e))
		}
	}
	for range 2000 {
		xs = append(xs, 0.5+r.Float64())
	}
	return append(xs, 1, 2, stdmath.MaxFloat64, stdmath.SmallestNonzeroFloat64, 0x1p-1022, 0x0.fffffffffffffp-1022)
}

// sweep32 is sweep64 for float32.
func sweep32(seed uint64) []float32 {
	r := rand.New(rand.NewPCG(seed, 0x2c))
	var xs []float32
	for e := -149; e <= 127; e++ {
		for range 8 {
			xs = append(xs, float32(stdmath.Ldexp(1+0.99*r.Float64(), e)))
		}
	}
	for range 2000 {
		xs = append(xs, float32(0.5+r.Float64()))
	}
	return append(xs, 1, 2, stdmath.MaxFloat32, stdmath.SmallestNonzeroFloat32, 0x1p-126, stdmath.Float32frombits(0x007fffff))
}

// specials are the inputs every logarithm overrides.
func specials[T hwy.Floats]() []T {
	return []T{0, T(stdmath.Copysign(0, -1)), T(stdmath.NaN()), T(stdmath.Inf(1)), T(stdmath.Inf(-1)), -1, -2.5}
}

// applyVec runs fn over xs in full-width vectors and returns the results.
func applyVec[T hwy.Floats](xs []T, fn func(hwy.Vec[T]) hwy.Vec[T]) []T {
	lanes := hwy.MaxLanes[T]()
	out := make([]T, 0, len(xs))
	for i := 0; i < len(xs); i += lanes {
		end := min(i+lanes, len(xs))
		out = append(out, fn(hwy.FromSlice(xs[i:end])).Data()...)
	}
	return out
}

func sameBits[T hwy.Floats](a, b T) bool {
	if hwy.IsFloat32[T]() {
		return stdmath.Float32bits(float32(a)) == stdmath.Float32bits(float32(b))
	}
	return stdmath.Float64bits(float64(a)) == stdmath.Float64bits(float64(b))
}
