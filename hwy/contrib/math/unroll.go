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
	"fmt"

	"github.com/ajroetker/go-highway-log/hwy"
)

// Unrolled is a group of equal-width vectors processed together, the
// result of unrolling a loop by len(Vecs).
type Unrolled[T hwy.Floats] struct {
	Vecs []hwy.Vec[T]
}

// NewUnrolled groups vs. It panics if the vectors differ in width.
func NewUnrolled[T hwy.Floats](vs ...hwy.Vec[T]) Unrolled[T] {
	for _, v := range vs {
		if v.NumLanes() != vs[0].NumLanes() {
			panic(fmt.Sprintf("math: unrolled vectors differ in width: %d and %d", vs[0].NumLanes(), v.NumLanes()))
		}
	}
	return Unrolled[T]{Vecs: vs}
}

// LoadUnrolled loads n consecutive full vectors from src. It panics if src
// holds fewer than n·MaxLanes elements.
func LoadUnrolled[T hwy.Floats](src []T, n int) Unrolled[T] {
	lanes := hwy.MaxLanes[T]()
	if n < 0 || len(src) < n*lanes {
		panic(fmt.Sprintf("math: LoadUnrolled needs %d elements, have %d", max(n, 0)*lanes, len(src)))
	}
	vs := make([]hwy.Vec[T], n)
	for i := range vs {
		vs[i] = hwy.Load(src[i*lanes:])
	}
	return NewUnrolled(vs...)
}

// Store writes the groups back to back into dst.
func (u Unrolled[T]) Store(dst []T) {
	offset := 0
	for _, v := range u.Vecs {
		hwy.Store(v, dst[offset:])
		offset += v.NumLanes()
	}
}

// Lanes returns the width of each vector in the group.
func (u Unrolled[T]) Lanes() int {
	if len(u.Vecs) == 0 {
		return 0
	}
	return u.Vecs[0].NumLanes()
}

// LogFastUnrolled computes the fast logarithm of every lane of u. The
// groups are joined into one wide vector, the kernel runs once, and the
// result is split back into the original grouping. The path choice
// follows the width of a single group, so the result is bit-identical to
// calling the kernel on each group.
func LogFastUnrolled[T hwy.Floats](base Base, u Unrolled[T]) Unrolled[T] {
	if len(u.Vecs) == 0 {
		return u
	}
	lanes := make([]int, len(u.Vecs))
	for i, v := range u.Vecs {
		lanes[i] = v.NumLanes()
	}
	wide := hwy.Concat(u.Vecs...)
	r := LogFastWith(base, wide, useHardwareExtraction[T](u.Lanes()))
	return Unrolled[T]{Vecs: hwy.Split(r, lanes...)}
}
