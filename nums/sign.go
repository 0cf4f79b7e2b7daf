// Package nums: sign and signed-zero classification.
//
// The zero probes below rely on IEEE-754 division semantics:
// 1/(+0.0) == +Inf and 1/(-0.0) == -Inf. Division by zero on floats is
// defined behavior in Go, so no guard is needed — and replacing the probe
// with a sign-bit branch would change nothing observable (see math.Signbit),
// so the numerically transparent form is kept.

package nums

import "math"

// IsFinite reports whether x is neither NaN nor ±Inf.
// Complexity: O(1).
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsNegativeZero reports whether x is exactly -0.0.
// Complexity: O(1).
func IsNegativeZero(x float64) bool {
	return x == 0 && 1/x == math.Inf(-1)
}

// IsPositiveZero reports whether x is exactly +0.0.
// Complexity: O(1).
func IsPositiveZero(x float64) bool {
	return x == 0 && 1/x == math.Inf(1)
}

// IsNegative reports whether x is negative, counting -0.0 and -Inf as
// negative. False for NaN.
func IsNegative(x float64) bool {
	return x < 0 || IsNegativeZero(x)
}

// IsPositive reports whether x is positive, counting +0.0 and +Inf as
// positive. False for NaN.
func IsPositive(x float64) bool {
	return x > 0 || IsPositiveZero(x)
}

// IsUnsignedInt reports whether x is a finite, non-negative whole number.
// -0.0 qualifies: its value is zero.
func IsUnsignedInt(x float64) bool {
	return IsFinite(x) && x >= 0 && x == math.Trunc(x)
}

// Sign returns -1, 0 or 1 for negative, zero and positive x.
// Both zeros map to 0; NaN maps to 0 as well (it has no order).
func Sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// SignNonZero returns -1 or 1, never 0: zero (and NaN) resolve by the sign
// bit. Use this when the result feeds a multiplication that must not
// annihilate a value.
func SignNonZero(x float64) int {
	if math.Signbit(x) {
		return -1
	}

	return 1
}

// CopySign returns |mag| carrying the sign of sign.
// Returns ErrNaN when either argument is NaN: NaN has a sign bit but no
// meaningful sign, and silently using it hides caller bugs.
func CopySign(mag, sign float64) (float64, error) {
	if math.IsNaN(mag) || math.IsNaN(sign) {
		return 0, ErrNaN
	}

	return math.Copysign(mag, sign), nil
}
