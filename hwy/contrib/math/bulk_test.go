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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-highway-log/hwy"
	"github.com/ajroetker/go-highway-log/hwy/contrib/workerpool"
)

func TestBaseLogFunctions(t *testing.T) {
	in := append(sweep64(40), specials[float64]()...)
	// A partial final vector forces a masked tail.
	if len(in)%hwy.MaxLanes[float64]() == 0 {
		in = append(in, 3.5)
	}

	for _, tc := range []struct {
		name   string
		bulk   func(input, output []float64)
		scalar func(float64) float64
	}{
		{"BaseLog", BaseLog[float64], LogScalar[float64]},
		{"BaseLog2", BaseLog2[float64], Log2Scalar[float64]},
		{"BaseLog10", BaseLog10[float64], Log10Scalar[float64]},
		{"BaseLog1p", BaseLog1p[float64], Log1pScalar[float64]},
		{"BaseLogFast(e)", func(i, o []float64) { BaseLogFast(BaseE, i, o) }, LogFastScalar[float64]},
		{"BaseLogFast(2)", func(i, o []float64) { BaseLogFast(Base2, i, o) }, Log2FastScalar[float64]},
		{"BaseLogFast(10)", func(i, o []float64) { BaseLogFast(Base10, i, o) }, Log10FastScalar[float64]},
	} {
		out := make([]float64, len(in))
		tc.bulk(in, out)
		for i, x := range in {
			require.True(t, sameBits(tc.scalar(x), out[i]), "%s(%g) = %v, want %v", tc.name, x, out[i], tc.scalar(x))
		}
	}
}

func TestBaseLogShortOutput(t *testing.T) {
	in := []float32{1, 2, 4, 8, 16, 32, 64}
	out := make([]float32, 5)
	BaseLogFast(Base2, in, out)
	assert.Equal(t, []float32{0, 1, 2, 3, 4}, out)

	// Elements past len(output) are never written.
	out = make([]float32, 10)
	for i := range out {
		out[i] = -7
	}
	BaseLog2(in[:3], out)
	assert.Equal(t, []float32{0, 1, 2, -7, -7, -7, -7, -7, -7, -7}, out)
}

func TestParallelLogFast(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	n := 5*minParallelPerWorker + 3
	in := make([]float32, n)
	for i := range in {
		in[i] = float32(i)*0.37 + 1e-3
	}

	for _, b := range bases {
		out := make([]float32, n)
		ParallelLogFast(pool, b.base, in, out)
		for i, x := range in {
			require.True(t, sameBits(LogFastBaseScalar(b.base, x), out[i]), "base %v i=%d", b.base, i)
		}
	}

	// Nil pool and short inputs take the serial path.
	out := make([]float32, 10)
	ParallelLogFast(nil, Base2, in[:10], out)
	for i, x := range in[:10] {
		assert.Equal(t, Log2FastScalar(x), out[i])
	}
}

func TestParallelAccurate(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	n := 3*minParallelPerWorker + 5
	in := make([]float64, n)
	for i := range in {
		in[i] = stdmath.Ldexp(1+float64(i%97)/97, i%2000-1000)
	}

	for _, tc := range []struct {
		name     string
		parallel func(*workerpool.Pool, []float64, []float64)
		scalar   func(float64) float64
	}{
		{"ParallelLog", ParallelLog[float64], LogScalar[float64]},
		{"ParallelLog2", ParallelLog2[float64], Log2Scalar[float64]},
		{"ParallelLog10", ParallelLog10[float64], Log10Scalar[float64]},
		{"ParallelLog1p", ParallelLog1p[float64], Log1pScalar[float64]},
	} {
		out := make([]float64, n)
		tc.parallel(pool, in, out)
		for i, x := range in {
			require.True(t, sameBits(tc.scalar(x), out[i]), "%s(%g) i=%d", tc.name, x, i)
		}
	}
}
