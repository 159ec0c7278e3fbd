package random

import (
	"math"
	"unsafe"
)

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Integer is the set of integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

const (
	twoPow24 = 1 << 24
	twoPow32 = 1 << 32
)

// unit maps the draw at index to [0, 1). float32 targets keep 24 bits so
// the conversion can never round up to 1.
func unit[T Float](g *Generator, index int64) float64 {
	u := g.RelativeInt(index)
	if isFloat32[T]() {
		return float64(u>>8) / twoPow24
	}
	return float64(u) / twoPow32
}

// RelativeFloat returns a value in [from, to) for the element at index.
// When from >= to the result is from.
func RelativeFloat[T Float](g *Generator, index int64, from, to T) T {
	if !(from < to) {
		return from
	}

	r := unit[T](g, index)
	lo, hi := float64(from), float64(to)
	span := hi - lo
	var v float64
	if math.IsInf(span, 0) {
		v = lo*(1-r) + hi*r
	} else {
		v = lo + r*span
	}

	out := T(v)
	if out < from {
		return from
	}
	if out >= to {
		return below(to)
	}
	return out
}

// RelativeInteger returns a value in [from, to) for the element at index,
// computed as from + draw mod (to - from). Spans wider than 32 bits draw from
// RelativeLong. When from >= to the result is from.
func RelativeInteger[T Integer](g *Generator, index int64, from, to T) T {
	if from >= to {
		return from
	}

	// Two's complement wrap-around keeps this exact for signed types.
	span := uint64(to) - uint64(from)
	var draw uint64
	if span <= twoPow32 {
		draw = uint64(g.RelativeInt(index))
	} else {
		draw = g.RelativeLong(index)
	}
	return T(uint64(from) + draw%span)
}

// FullFloat returns a value in [0, max(T)) for the element at index.
func FullFloat[T Float](g *Generator, index int64) T {
	limit := math.MaxFloat64
	if isFloat32[T]() {
		limit = math.MaxFloat32
	}
	return RelativeFloat(g, index, 0, T(limit))
}

// FullInteger returns a value in [0, max(T)) for the element at index.
func FullInteger[T Integer](g *Generator, index int64) T {
	return RelativeInteger(g, index, 0, maxInteger[T]())
}

func isFloat32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// below returns the largest T strictly less than x.
func below[T Float](x T) T {
	if isFloat32[T]() {
		return T(math.Nextafter32(float32(x), float32(math.Inf(-1))))
	}
	return T(math.Nextafter(float64(x), math.Inf(-1)))
}

func maxInteger[T Integer]() T {
	var zero T
	size := uint64(unsafe.Sizeof(zero)) * 8
	if ^zero < 0 {
		return T(uint64(1)<<(size-1) - 1)
	}
	return ^zero
}
