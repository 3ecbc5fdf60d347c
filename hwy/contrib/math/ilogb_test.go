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
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-highway-log/hwy"
)

func TestILogBScalar(t *testing.T) {
	tests := []struct {
		x    float64
		want int32
	}{
		{8, 3},
		{0.5, -1},
		{1, 0},
		{-12, 3},
		{stdmath.MaxFloat64, 1023},
		{0x1p-1022, -1022},
		{stdmath.SmallestNonzeroFloat64, -1074},
		{0x1.8p-1060, -1060},
		{0, ILogB0},
		{stdmath.Copysign(0, -1), ILogB0},
		{stdmath.NaN(), ILogBNaN},
		{stdmath.Inf(1), ILogBInf},
		{stdmath.Inf(-1), ILogBInf},
	}
	for _, tt := range tests {
		if got := ILogBScalar(tt.x); got != tt.want {
			t.Errorf("ILogBScalar(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}

	tests32 := []struct {
		x    float32
		want int32
	}{
		{8, 3},
		{0.5, -1},
		{stdmath.MaxFloat32, 127},
		{stdmath.SmallestNonzeroFloat32, -149},
		{0x1p-130, -130},
		{0, ILogB0},
		{float32(stdmath.NaN()), ILogBNaN},
		{float32(stdmath.Inf(-1)), ILogBInf},
	}
	for _, tt := range tests32 {
		if got := ILogBScalar(tt.x); got != tt.want {
			t.Errorf("ILogBScalar[float32](%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestILogBMatchesStdlib(t *testing.T) {
	for _, x := range sweep64(1) {
		require.Equal(t, int32(stdmath.Ilogb(x)), ILogBScalar(x), "x=%g", x)
	}
	for _, x := range sweep32(1) {
		require.Equal(t, int32(math32.Ilogb(x)), ILogBScalar(x), "x=%g", x)
	}
}

func TestILogBVector(t *testing.T) {
	in := append(sweep64(2)[:37], specials[float64]()...)
	// Wider than MaxLanes: every lane must still be produced.
	got := ILogB(hwy.FromSlice(in)).Data()
	require.Len(t, got, len(in))
	for i, x := range in {
		assert.Equal(t, ILogBScalar(x), got[i], "lane %d x=%g", i, x)
	}

	in32 := append(sweep32(2)[:21], specials[float32]()...)
	got32 := ILogB(hwy.FromSlice(in32)).Data()
	for i, x := range in32 {
		assert.Equal(t, ILogBScalar(x), got32[i], "lane %d x=%g", i, x)
	}
}

func TestLdexp(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 20000 {
		x := stdmath.Ldexp(r.Float64()+0.5, r.IntN(2000)-1000)
		if r.IntN(2) == 0 {
			x = -x
		}
		q := int32(r.IntN(4400) - 2200)
		want := stdmath.Ldexp(x, int(q))
		// Results below the normal range may round twice.
		if stdmath.Abs(want) < 0x1p-1022 {
			continue
		}
		require.Equal(t, want, Ldexp(x, q), "Ldexp(%g, %d)", x, q)
	}

	for range 20000 {
		x := float32(stdmath.Ldexp(r.Float64()+0.5, r.IntN(200)-100))
		q := int32(r.IntN(600) - 300)
		if stdmath.Abs(stdmath.Ldexp(float64(x), int(q))) < 0x1p-126 {
			continue
		}
		want := math32.Ldexp(x, int(q))
		require.Equal(t, want, Ldexp(x, q), "Ldexp[float32](%g, %d)", x, q)
	}
}

func TestLdexpSpecial(t *testing.T) {
	assert.True(t, stdmath.IsNaN(Ldexp(stdmath.NaN(), 3)))
	assert.Equal(t, stdmath.Inf(1), Ldexp(stdmath.Inf(1), -5000))
	assert.Equal(t, stdmath.Inf(-1), Ldexp(-1.5, 2000))
	assert.Equal(t, 0.0, Ldexp(1.5, -3000))
	assert.Equal(t, float32(0), Ldexp[float32](1, -400))
	assert.True(t, math32.IsInf(Ldexp[float32](1, 400), 1))
	assert.Equal(t, stdmath.SmallestNonzeroFloat64, Ldexp(1.0, -1074))
}

func TestSplitFloat(t *testing.T) {
	tests := []struct {
		x     float64
		wantM float64
		wantE int32
	}{
		{12, 1.5, 3},
		{1, 1, 0},
		{-0.75, -1.5, -1},
		{0x1.8p-1070, 1.5, -1070},
		{0, 0, 0},
		{stdmath.Inf(1), stdmath.Inf(1), 0},
	}
	for _, tt := range tests {
		m, e := SplitFloat(tt.x)
		if m != tt.wantM || e != tt.wantE {
			t.Errorf("SplitFloat(%v) = (%v, %d), want (%v, %d)", tt.x, m, e, tt.wantM, tt.wantE)
		}
	}

	m, e := SplitFloat(stdmath.NaN())
	assert.True(t, stdmath.IsNaN(m))
	assert.Zero(t, e)

	// Round trip through Ldexp.
	for _, x := range sweep64(5) {
		m, e := SplitFloat(x)
		require.True(t, m >= 1 && m < 2, "SplitFloat(%g) mantissa %g", x, m)
		require.Equal(t, x, Ldexp(m, e), "x=%g", x)
	}
	for _, x := range sweep32(5) {
		m, e := SplitFloat(x)
		require.True(t, m >= 1 && m < 2, "SplitFloat(%g) mantissa %g", x, m)
		require.Equal(t, x, Ldexp(m, e), "x=%g", x)
	}
}
