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

import "github.com/ajroetker/go-highway-log/hwy"

// Coefficient tables are stored at their own precision and read into T
// without rounding: callers pick the float32 table when T is float32.
type coefficient interface {
	float32 | float64
}

// hornerScalar evaluates c[0] + x*(c[1] + x*(c[2] + ...)) with fused
// multiply-adds, starting from the highest degree.
func hornerScalar[T hwy.Floats, C coefficient](x T, c []C) T {
	p := T(c[len(c)-1])
	for i := len(c) - 2; i >= 0; i-- {
		p = hwy.FusedMulAdd(p, x, T(c[i]))
	}
	return p
}

// hornerVec is hornerScalar applied lane-wise. Constants take the lane count
// of x, and every lane rounds exactly as hornerScalar does.
func hornerVec[T hwy.Floats, C coefficient](x hwy.Vec[T], c []C) hwy.Vec[T] {
	n := x.NumLanes()
	p := hwy.SetN(n, T(c[len(c)-1]))
	for i := len(c) - 2; i >= 0; i-- {
		p = hwy.MulAdd(p, x, hwy.SetN(n, T(c[i])))
	}
	return p
}

// BasePoly evaluates the polynomial c (lowest degree first) at every
// element of x, writing min(len(x), len(result)) results.
func BasePoly[T hwy.Floats, C coefficient](x []T, c []C, result []T) {
	size := min(len(x), len(result))
	if size == 0 || len(c) == 0 {
		return
	}
	lanes := hwy.MaxLanes[T]()

	// Process in vector chunks; Load returns a short vector at the tail.
	for ii := 0; ii < size; ii += lanes {
		vx := hwy.Load(x[ii:size])
		hwy.Store(hornerVec(vx, c), result[ii:size])
	}
}
