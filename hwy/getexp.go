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

import (
	"math"

	"github.com/chewxy/math32"
)

// MantissaNorm selects the interval GetMantissa normalizes into.
// The values match the interval field of the VGETMANT immediate.
type MantissaNorm int

const (
	// MantissaNormOneTwo normalizes into [1, 2).
	MantissaNormOneTwo MantissaNorm = 0

	// MantissaNormHalfOne normalizes into [0.5, 1).
	MantissaNormHalfOne MantissaNorm = 2

	// MantissaNormP75To1P5 normalizes into [0.75, 1.5).
	MantissaNormP75To1P5 MantissaNorm = 3
)

// GetExponent returns floor(log2(|x|)) of each lane as a float, the
// VGETEXP operation. Subnormals report their true exponent.
//
// Special values: ±0 gives -Inf, ±Inf gives +Inf and NaN stays NaN.
func GetExponent[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	f32 := IsFloat32[T]()
	for i, x := range v.data {
		switch {
		case x != x:
			result[i] = x
		case x == 0:
			result[i] = T(math.Inf(-1))
		case math.IsInf(float64(x), 0):
			result[i] = T(math.Inf(1))
		case f32:
			_, e := math32.Frexp(float32(x))
			result[i] = T(e - 1)
		default:
			_, e := math.Frexp(float64(x))
			result[i] = T(e - 1)
		}
	}
	return Vec[T]{data: result}
}

// GetMantissa returns the significand of each lane scaled into the interval
// selected by norm, keeping the sign of the source, the VGETMANT operation.
//
// For MantissaNormP75To1P5 a lane whose [1, 2) significand is at least 1.5
// is halved, so it pairs with GetExponent(x * 4/3).
//
// Special values: ±0 and ±Inf give ±1 and NaN stays NaN.
func GetMantissa[T Floats](v Vec[T], norm MantissaNorm) Vec[T] {
	result := make([]T, len(v.data))
	f32 := IsFloat32[T]()
	for i, x := range v.data {
		if x != x {
			result[i] = x
			continue
		}
		neg := x < 0 || (x == 0 && math.Signbit(float64(x)))
		var frac T
		switch {
		case x == 0 || math.IsInf(float64(x), 0):
			frac = 0.5
		case f32:
			f, _ := math32.Frexp(math32.Abs(float32(x)))
			frac = T(f)
		default:
			f, _ := math.Frexp(math.Abs(float64(x)))
			frac = T(f)
		}
		// frac is in [0.5, 1).
		var m T
		switch norm {
		case MantissaNormHalfOne:
			m = frac
		case MantissaNormP75To1P5:
			if frac < 0.75 {
				m = frac * 2
			} else {
				m = frac
			}
		default:
			m = frac * 2
		}
		if neg {
			m = -m
		}
		result[i] = m
	}
	return Vec[T]{data: result}
}
