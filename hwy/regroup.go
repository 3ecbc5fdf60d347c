package hwy

// Concat joins vectors lane-wise into one vector whose lane count is the
// sum of theirs. Together with Split it regroups an unrolled set of vectors
// into the single wide operand a kernel evaluates in one call.
func Concat[T Lanes](vs ...Vec[T]) Vec[T] {
	n := 0
	for _, v := range vs {
		n += len(v.data)
	}
	data := make([]T, 0, n)
	for _, v := range vs {
		data = append(data, v.data...)
	}
	return Vec[T]{data: data}
}

// Split cuts v into consecutive vectors with the given lane counts, the
// inverse of Concat. It panics if the counts do not add up to NumLanes.
func Split[T Lanes](v Vec[T], lanes ...int) []Vec[T] {
	total := 0
	for _, n := range lanes {
		total += n
	}
	if total != len(v.data) {
		panic("hwy: Split lane counts do not match vector width")
	}
	out := make([]Vec[T], len(lanes))
	offset := 0
	for i, n := range lanes {
		data := make([]T, n)
		copy(data, v.data[offset:offset+n])
		out[i] = Vec[T]{data: data}
		offset += n
	}
	return out
}

// FromSlice returns a vector holding a copy of all of src, however long.
// Unlike Load it does not cap the lane count at MaxLanes.
func FromSlice[T Lanes](src []T) Vec[T] {
	data := make([]T, len(src))
	copy(data, src)
	return Vec[T]{data: data}
}

// RebindMask reinterprets a mask for a vector of another lane type with the
// same lane count, such as the int32 exponents of a float64 vector.
func RebindMask[U, T Lanes](m Mask[T]) Mask[U] {
	bits := make([]bool, len(m.bits))
	copy(bits, m.bits)
	return Mask[U]{bits: bits}
}
