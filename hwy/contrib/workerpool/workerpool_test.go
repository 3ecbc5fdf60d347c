// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.NumWorkers())

	def := New(0)
	defer def.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), def.NumWorkers())
}

// visits records every index handed to fn and the ranges it was called with.
type visits struct {
	mu     sync.Mutex
	counts []int32
	ranges [][2]int
}

func newVisits(n int) *visits {
	return &visits{counts: make([]int32, n)}
}

func (v *visits) record(start, end int) {
	v.mu.Lock()
	v.ranges = append(v.ranges, [2]int{start, end})
	v.mu.Unlock()
	for i := start; i < end; i++ {
		atomic.AddInt32(&v.counts[i], 1)
	}
}

func (v *visits) requireEachOnce(t *testing.T, msg string) {
	t.Helper()
	for i, c := range v.counts {
		require.EqualValues(t, 1, c, "%s: index %d visited %d times", msg, i, c)
	}
}

func TestParallelForCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 100, 1001} {
		v := newVisits(n)
		pool.ParallelFor(n, v.record)
		v.requireEachOnce(t, "ParallelFor")
		assert.LessOrEqual(t, len(v.ranges), pool.NumWorkers(), "n=%d", n)
	}
}

func TestParallelForAligned(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, tc := range []struct{ n, align int }{
		{100, 8},
		{101, 8},
		{7, 8},
		{64, 16},
		{1000, 0},
	} {
		v := newVisits(tc.n)
		pool.ParallelForAligned(tc.n, tc.align, v.record)
		v.requireEachOnce(t, "ParallelForAligned")

		align := max(tc.align, 1)
		for _, r := range v.ranges {
			assert.Zero(t, r[0]%align, "n=%d align=%d: range %v starts off boundary", tc.n, tc.align, r)
			if r[1] != tc.n {
				assert.Zero(t, r[1]%align, "n=%d align=%d: range %v ends off boundary", tc.n, tc.align, r)
			}
		}
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, tc := range []struct{ n, batch int }{
		{100, 10},
		{105, 10},
		{5, 10},
		{64, 0},
	} {
		v := newVisits(tc.n)
		pool.ParallelForAtomicBatched(tc.n, tc.batch, v.record)
		v.requireEachOnce(t, "ParallelForAtomicBatched")
		for _, r := range v.ranges {
			assert.LessOrEqual(t, r[1]-r[0], max(tc.batch, 1), "n=%d batch=%d", tc.n, tc.batch)
		}
	}
}

func TestEmptyRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	fail := func(start, end int) { t.Errorf("fn called with [%d, %d) for n=0", start, end) }
	pool.ParallelFor(0, fail)
	pool.ParallelForAligned(0, 8, fail)
	pool.ParallelForAtomicBatched(0, 8, fail)
}

func TestClosedPoolRunsSerially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic

	v := newVisits(100)
	pool.ParallelForAligned(100, 8, v.record)
	v.requireEachOnce(t, "closed pool")
	assert.Equal(t, [][2]int{{0, 100}}, v.ranges)

	v = newVisits(50)
	pool.ParallelForAtomicBatched(50, 7, v.record)
	assert.Equal(t, [][2]int{{0, 50}}, v.ranges)
}

func BenchmarkParallelForAligned(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]float64, 1<<16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForAligned(len(data), 8, func(start, end int) {
			for j := start; j < end; j++ {
				data[j] = float64(j) * 0.5
			}
		})
	}
}

func BenchmarkParallelForAtomicBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	data := make([]float64, 1<<16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForAtomicBatched(len(data), 1024, func(start, end int) {
			for j := start; j < end; j++ {
				data[j] = float64(j) * 0.5
			}
		})
	}
}
