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

// Package ddouble implements double-double ("float-float" for float32)
// arithmetic: a value is carried as the unevaluated sum Hi + Lo of two
// floats with |Lo| <= ulp(Hi)/2, giving roughly twice the working
// precision.
//
// The accurate logarithms in hwy/contrib/math use it to accumulate the
// range-reduced result without losing the low bits of e·ln2.
//
// Functions named Add, AddFloat, FastTwoSum and Sub require the magnitude of
// the first operand to be at least that of the second (or the first to be
// zero). TwoSum, Add2 and Add2Float have no such precondition.
//
// Products use a fused multiply-add to recover the rounding error exactly.
// For float32 the fused operation is evaluated in float64, where the product
// of two float32 values is exact.
package ddouble

import "github.com/ajroetker/go-highway-log/hwy"

// Double is an unevaluated sum Hi + Lo.
type Double[T hwy.Floats] struct {
	Hi, Lo T
}

// New returns the pair (hi, lo) as is.
func New[T hwy.Floats](hi, lo T) Double[T] {
	return Double[T]{Hi: hi, Lo: lo}
}

// FromFloat widens x to a Double with a zero low part.
func FromFloat[T hwy.Floats](x T) Double[T] {
	return Double[T]{Hi: x}
}

// Value rounds the pair to working precision.
func (d Double[T]) Value() T {
	return d.Hi + d.Lo
}

// Neg negates both components.
func (d Double[T]) Neg() Double[T] {
	return Double[T]{Hi: -d.Hi, Lo: -d.Lo}
}

// Scale multiplies both components by s. It is exact when s is a power of
// two and neither component under- or overflows.
func (d Double[T]) Scale(s T) Double[T] {
	return Double[T]{Hi: d.Hi * s, Lo: d.Lo * s}
}

// Normalize renormalizes the pair so that Hi is the rounded value of the sum.
func (d Double[T]) Normalize() Double[T] {
	hi := d.Hi + d.Lo
	return Double[T]{Hi: hi, Lo: d.Hi - hi + d.Lo}
}

// TwoSum returns a + b exactly as a rounded sum and its error (Knuth).
func TwoSum[T hwy.Floats](a, b T) Double[T] {
	s := a + b
	v := s - a
	return Double[T]{Hi: s, Lo: (a - (s - v)) + (b - v)}
}

// FastTwoSum is TwoSum for |a| >= |b| (Dekker).
func FastTwoSum[T hwy.Floats](a, b T) Double[T] {
	s := a + b
	return Double[T]{Hi: s, Lo: a - s + b}
}

// Add returns x + y for |x| >= |y|.
func Add[T hwy.Floats](x, y Double[T]) Double[T] {
	s := x.Hi + y.Hi
	return Double[T]{Hi: s, Lo: x.Hi - s + y.Hi + x.Lo + y.Lo}
}

// AddFloat returns x + y for |x| >= |y|.
func AddFloat[T hwy.Floats](x Double[T], y T) Double[T] {
	s := x.Hi + y
	return Double[T]{Hi: s, Lo: x.Hi - s + y + x.Lo}
}

// Add2 returns x + y with no magnitude precondition.
func Add2[T hwy.Floats](x, y Double[T]) Double[T] {
	r := TwoSum(x.Hi, y.Hi)
	r.Lo += x.Lo + y.Lo
	return r
}

// Add2Float returns x + y with no magnitude precondition.
func Add2Float[T hwy.Floats](x Double[T], y T) Double[T] {
	r := TwoSum(x.Hi, y)
	r.Lo += x.Lo
	return r
}

// Sub returns x - y for |x| >= |y|.
func Sub[T hwy.Floats](x, y Double[T]) Double[T] {
	s := x.Hi - y.Hi
	return Double[T]{Hi: s, Lo: x.Hi - s - y.Hi + x.Lo - y.Lo}
}

// TwoProd returns a*b exactly as a rounded product and its error.
func TwoProd[T hwy.Floats](a, b T) Double[T] {
	p := a * b
	return Double[T]{Hi: p, Lo: hwy.FusedMulAdd(a, b, -p)}
}

// Mul returns x*y.
func Mul[T hwy.Floats](x, y Double[T]) Double[T] {
	p := x.Hi * y.Hi
	lo := hwy.FusedMulAdd(x.Hi, y.Lo, hwy.FusedMulAdd(x.Lo, y.Hi, hwy.FusedMulAdd(x.Hi, y.Hi, -p)))
	return Double[T]{Hi: p, Lo: lo}
}

// MulFloat returns x*y.
func MulFloat[T hwy.Floats](x Double[T], y T) Double[T] {
	p := x.Hi * y
	return Double[T]{Hi: p, Lo: hwy.FusedMulAdd(x.Lo, y, hwy.FusedMulAdd(x.Hi, y, -p))}
}

// Square returns x*x.
func Square[T hwy.Floats](x Double[T]) Double[T] {
	p := x.Hi * x.Hi
	return Double[T]{Hi: p, Lo: hwy.FusedMulAdd(x.Hi+x.Hi, x.Lo, hwy.FusedMulAdd(x.Hi, x.Hi, -p))}
}

// Div returns n/d.
func Div[T hwy.Floats](n, d Double[T]) Double[T] {
	t := 1 / d.Hi
	q := n.Hi * t
	u := hwy.FusedMulAdd(t, n.Hi, -q)
	// w = 1 - d*t, the residual of the reciprocal.
	w := hwy.FusedMulAdd(-d.Lo, t, hwy.FusedMulAdd(-d.Hi, t, 1))
	return Double[T]{Hi: q, Lo: hwy.FusedMulAdd(q, w, hwy.FusedMulAdd(n.Lo, t, u))}
}

// Rec returns 1/d.
func Rec[T hwy.Floats](d T) Double[T] {
	t := 1 / d
	return Double[T]{Hi: t, Lo: t * hwy.FusedMulAdd(-d, t, 1)}
}
