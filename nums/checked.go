// Package nums: checked int64 arithmetic.
//
// Each intrinsic returns the exact mathematical result or ErrOverflow; no
// operation wraps, saturates or promotes to float. rational builds all of
// its fraction arithmetic on these so that any intermediate overflow is
// surfaced to the caller instead of corrupting a value.

package nums

import "math"

// Add returns a+b, or ErrOverflow when the sum leaves the int64 range.
// Complexity: O(1).
func Add(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, ErrOverflow
	}

	return a + b, nil
}

// Sub returns a-b, or ErrOverflow when the difference leaves the int64 range.
// Complexity: O(1).
func Sub(a, b int64) (int64, error) {
	if b < 0 && a > math.MaxInt64+b {
		return 0, ErrOverflow
	}
	if b > 0 && a < math.MinInt64+b {
		return 0, ErrOverflow
	}

	return a - b, nil
}

// Mul returns a*b, or ErrOverflow when the product leaves the int64 range.
// Detection divides the tentative product back: exact iff p/b == a, with the
// two MinInt64*-1 corners handled up front (their division would trap).
// Complexity: O(1).
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a == math.MinInt64 && b == -1 || b == math.MinInt64 && a == -1 {
		return 0, ErrOverflow
	}
	p := a * b
	if p/b != a {
		return 0, ErrOverflow
	}

	return p, nil
}

// Pow returns base**exp for exp >= 0 using exponentiation by squaring,
// with every intermediate product checked.
//
// Errors: ErrNegativeExponent when exp < 0; ErrOverflow when any
// intermediate square or product leaves the int64 range.
// Complexity: O(log exp) checked multiplications.
func Pow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, ErrNegativeExponent
	}

	var (
		result int64 = 1
		sq           = base
		err    error
	)
	for exp > 0 {
		if exp&1 == 1 {
			if result, err = Mul(result, sq); err != nil {
				return 0, err
			}
		}
		exp >>= 1
		if exp == 0 {
			break // skip the final square; it may overflow spuriously
		}
		if sq, err = Mul(sq, sq); err != nil {
			return 0, err
		}
	}

	return result, nil
}

// GCD returns the greatest common divisor of |a| and |b| via Euclid's
// algorithm; GCD(a, 0) == |a| and GCD(0, 0) == 0.
//
// Magnitudes are taken in uint64 so MinInt64 inputs are handled exactly.
// The one unrepresentable answer — a gcd of 2^63, possible only when both
// inputs are 0 or MinInt64 — returns ErrOverflow.
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int64) (int64, error) {
	g := gcdUint64(magnitude(a), magnitude(b))
	if g > math.MaxInt64 {
		return 0, ErrOverflow
	}

	return int64(g), nil
}

// magnitude returns |v| as uint64; exact for every int64 including MinInt64.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}

	return uint64(v)
}

// gcdUint64 is Euclid's algorithm on non-negative magnitudes.
func gcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
