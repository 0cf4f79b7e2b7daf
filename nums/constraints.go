// Package nums: compile-time numeric type sets and the small generic
// helpers shared by the other numkit packages. These replace any runtime
// "is this a number" inspection: if it satisfies Number, it is one.

package nums

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point types.
type Float interface {
	~float32 | ~float64
}

type (
	// Integer is the union of all integer types.
	Integer interface{ Signed | Unsigned }

	// Number is the union of every numeric type numkit operates on.
	Number interface{ Integer | Float }
)

// Abs returns the absolute value of v.
// Note: for the minimum signed value (e.g. math.MinInt64) the result wraps;
// checked paths must guard that case before calling (see rational).
func Abs[T Signed | Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Clamp clamps v into [lo, hi]. If lo > hi they are swapped first.
func Clamp[T Number](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
