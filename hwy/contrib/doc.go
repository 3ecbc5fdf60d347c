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

// Package contrib holds the libraries built on the hwy vector layer.
//
// # Subpackages
//
//   - math: the logarithm family (Log, Log2, Log10, Log1p, their fast
//     variants, ILogB) with scalar, vector and slice entry points
//   - ddouble: double-double arithmetic used by the accurate logarithms
//   - workerpool: a persistent worker pool for parallel slice evaluation
//
// # Example
//
//	import "github.com/ajroetker/go-highway-log/hwy/contrib/math"
//
//	math.BaseLogFast(math.Base10, input, output)
package contrib
