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
	"github.com/ajroetker/go-highway-log/hwy"
	"github.com/ajroetker/go-highway-log/hwy/contrib/workerpool"
)

// minParallelPerWorker is the smallest number of elements worth handing to
// a worker; shorter inputs run on the calling goroutine.
const minParallelPerWorker = 4096

// BaseLog computes the natural logarithm of each element of input with the
// accurate path, writing min(len(input), len(output)) results.
func BaseLog[T hwy.Floats](input, output []T) {
	baseApply(input, output, Log[T])
}

// BaseLog2 is BaseLog in base 2.
func BaseLog2[T hwy.Floats](input, output []T) {
	baseApply(input, output, Log2[T])
}

// BaseLog10 is BaseLog in base 10.
func BaseLog10[T hwy.Floats](input, output []T) {
	baseApply(input, output, Log10[T])
}

// BaseLog1p computes ln(1+x) for each element of input.
func BaseLog1p[T hwy.Floats](input, output []T) {
	baseApply(input, output, Log1p[T])
}

// BaseLogFast computes the fast logarithm in the given base for each
// element of input. It panics on an unsupported base.
func BaseLogFast[T hwy.Floats](base Base, input, output []T) {
	base.check()
	baseApply(input, output, func(v hwy.Vec[T]) hwy.Vec[T] {
		return logFastDispatch(base, v)
	})
}

// baseApply runs fn over full vectors and then over the masked tail.
// Inactive tail lanes load as zero and are never stored.
func baseApply[T hwy.Floats](input, output []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	size := min(len(input), len(output))
	hwy.ProcessWithTail[T](size,
		func(offset int) {
			hwy.Store(fn(hwy.Load(input[offset:])), output[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			hwy.MaskStore(mask, fn(hwy.MaskLoad(mask, input[offset:])), output[offset:])
		},
	)
}

// ParallelLogFast is BaseLogFast spread across pool. Work is handed out in
// batches that are a multiple of the vector width, so only the final batch
// has a tail. A nil pool, or an input too short to keep two workers busy,
// runs serially.
func ParallelLogFast[T hwy.Floats](pool *workerpool.Pool, base Base, input, output []T) {
	base.check()
	size := min(len(input), len(output))
	if pool == nil || pool.NumWorkers() < 2 || size < 2*minParallelPerWorker {
		BaseLogFast(base, input[:size], output[:size])
		return
	}

	workers := min(pool.NumWorkers(), size/minParallelPerWorker)
	// Four batches per worker leaves room for work stealing.
	batch := hwy.AlignedSize[T]((size + 4*workers - 1) / (4 * workers))
	pool.ParallelForAtomicBatched(size, batch, func(start, end int) {
		BaseLogFast(base, input[start:end], output[start:end])
	})
}

// ParallelLog is BaseLog spread across pool in contiguous, vector-aligned
// ranges, one per worker.
func ParallelLog[T hwy.Floats](pool *workerpool.Pool, input, output []T) {
	parallelApply(pool, input, output, BaseLog[T])
}

// ParallelLog2 is BaseLog2 spread across pool.
func ParallelLog2[T hwy.Floats](pool *workerpool.Pool, input, output []T) {
	parallelApply(pool, input, output, BaseLog2[T])
}

// ParallelLog10 is BaseLog10 spread across pool.
func ParallelLog10[T hwy.Floats](pool *workerpool.Pool, input, output []T) {
	parallelApply(pool, input, output, BaseLog10[T])
}

// ParallelLog1p is BaseLog1p spread across pool.
func ParallelLog1p[T hwy.Floats](pool *workerpool.Pool, input, output []T) {
	parallelApply(pool, input, output, BaseLog1p[T])
}

func parallelApply[T hwy.Floats](pool *workerpool.Pool, input, output []T, fn func(input, output []T)) {
	size := min(len(input), len(output))
	if pool == nil || pool.NumWorkers() < 2 || size < 2*minParallelPerWorker {
		fn(input[:size], output[:size])
		return
	}
	pool.ParallelForAligned(size, hwy.MaxLanes[T](), func(start, end int) {
		fn(input[start:end], output[start:end])
	})
}
