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

// Package math provides the logarithm family over hwy vectors: natural,
// base-2 and base-10 logarithms, log1p and binary exponent extraction, for
// float32 and float64.
//
// # Accurate Functions
//
// Range reduction followed by double-double accumulation, at most 1 ulp of
// error:
//   - Log, Log2, Log10 (and LogScalar, Log2Scalar, Log10Scalar)
//   - Log1p (and Log1pScalar), accurate near zero
//
// # Fast Functions
//
// Working-precision arithmetic and one polynomial per base, at most 3.5 ulp
// (float64) or 4 ulp (float32) of error on normal inputs:
//   - LogFast, Log2Fast, Log10Fast
//   - LogFastWith(base, v, hardware) to pin the kernel variant
//   - LogFastUnrolled for groups of vectors produced by loop unrolling
//
// Two kernel variants exist. One extracts the exponent and mantissa with
// hwy.GetExponent and hwy.GetMantissa, which map to single instructions on
// AVX-512. The other reads the IEEE-754 exponent field with integer
// operations. The dispatching entry points pick the first when
// hwy.HasGetExpMant reports support, except for two-lane float32 vectors.
// Both variants produce identical bits.
//
// # Special Values
//
// Every logarithm applies the same overrides after the arithmetic, each
// one winning over the previous:
//
//	+Inf or -Inf  -> +Inf
//	x < 0 or NaN  -> NaN
//	±0            -> -Inf
//
// so Log(-Inf) is NaN. Log1p returns +Inf above 1e307 (1e38 for float32),
// NaN below -1, -Inf at -1, and returns arguments too small to change 1+a,
// ±0 and subnormals included, unchanged.
//
// ILogB returns ILogB0 for ±0, ILogBNaN for NaN and ILogBInf for ±Inf.
//
// # Slices
//
// BaseLog, BaseLog2, BaseLog10, BaseLog1p and BaseLogFast evaluate whole
// slices with tail masking. ParallelLog* and ParallelLogFast spread the
// work over a workerpool.Pool.
//
// # Example Usage
//
//	v := hwy.Load(data)
//	hwy.Store(math.Log2Fast(v), out)
//
//	math.BaseLog1p(input, output)
package math
