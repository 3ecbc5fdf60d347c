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

// LogFast computes the natural logarithm of each lane with the fast path.
// The kernel variant is picked once per call: lanes use GetMantissa and
// GetExponent when hwy.HasGetExpMant reports native support, otherwise the
// exponent field is read with integer operations. Both variants return
// identical results.
func LogFast[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return logFastDispatch(BaseE, v)
}

// Log2Fast computes the base-2 logarithm of each lane with the fast path.
func Log2Fast[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return logFastDispatch(Base2, v)
}

// Log10Fast computes the base-10 logarithm of each lane with the fast path.
func Log10Fast[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return logFastDispatch(Base10, v)
}

// LogFastWith runs the fast logarithm in the given base on a pinned kernel
// variant: hardware selects the GetMantissa/GetExponent path, otherwise
// the bit-manipulation path. It panics if base is not one of BaseE, Base2
// or Base10.
func LogFastWith[T hwy.Floats](base Base, v hwy.Vec[T], hardware bool) hwy.Vec[T] {
	if hardware {
		return logFastHardware(base, v)
	}
	return logFastGeneric(base, v)
}

func logFastDispatch[T hwy.Floats](base Base, v hwy.Vec[T]) hwy.Vec[T] {
	return LogFastWith(base, v, useHardwareExtraction[T](v.NumLanes()))
}

// useHardwareExtraction reports whether vectors of the given lane count
// take the hardware-extraction path. Two-lane float32 vectors always take
// the generic path.
func useHardwareExtraction[T hwy.Floats](lanes int) bool {
	if !hwy.HasGetExpMant() {
		return false
	}
	if hwy.IsFloat32[T]() && lanes == 2 {
		return false
	}
	return true
}
