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

package hwy

// TailMask returns a MaxLanes-wide mask whose first count lanes are active.
// count is clamped to [0, MaxLanes]. Paired with MaskLoad and MaskStore it
// handles the remainder of a slice whose length is not a multiple of the
// vector width:
//
//	mask := hwy.TailMask[float32](len(in) % hwy.MaxLanes[float32]())
//	v := hwy.MaskLoad(mask, in[start:])
//	hwy.MaskStore(mask, math.Log2Fast(v), out[start:])
//
// Inactive lanes load as zero. Their results are computed but never stored.
func TailMask[T Lanes](count int) Mask[T] {
	bits := make([]bool, MaxLanes[T]())
	for i := range min(max(count, 0), len(bits)) {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// ProcessWithTail walks [0, size) one vector at a time. It calls
// fullFn(offset) for every complete vector and then, if size is not a
// multiple of MaxLanes, tailFn(offset, count) once for the last count
// elements.
//
//	hwy.ProcessWithTail[float64](len(in),
//	    func(offset int) {
//	        hwy.Store(math.LogFast(hwy.Load(in[offset:])), out[offset:])
//	    },
//	    func(offset, count int) {
//	        mask := hwy.TailMask[float64](count)
//	        hwy.MaskStore(mask, math.LogFast(hwy.MaskLoad(mask, in[offset:])), out[offset:])
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := MaxLanes[T]()
	offset := 0
	for ; offset+lanes <= size; offset += lanes {
		fullFn(offset)
	}
	if rest := size - offset; rest > 0 {
		tailFn(offset, rest)
	}
}

// AlignedSize rounds size up to a multiple of MaxLanes. Batches of this
// size split a slice without leaving a tail anywhere but at its end.
func AlignedSize[T Lanes](size int) int {
	lanes := MaxLanes[T]()
	if lanes == 0 {
		return size
	}
	return (size + lanes - 1) / lanes * lanes
}
