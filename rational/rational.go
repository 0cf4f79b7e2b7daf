// Package rational: the Rational value type, canonicalizing constructor and
// plain views (accessors, Float64, String).

package rational

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numkit/nums"
)

// Rational is an exact fraction num/den in canonical form:
// den > 0, gcd(|num|, den) == 1, zero is 0/1.
// The zero value of the type is NOT valid (0/0); construct via New,
// FromFloat64 or Parse. Values are immutable.
type Rational struct {
	num int64
	den int64
}

// Zero is the canonical zero fraction 0/1.
var Zero = Rational{num: 0, den: 1}

// One is the canonical unit fraction 1/1.
var One = Rational{num: 1, den: 1}

// New builds the canonical Rational num/den.
//
// Canonicalization: zero maps to 0/1; otherwise both components are divided
// by gcd(|num|, den) and, if the denominator is negative, both are negated.
//
// The minimum int64 needs care because |MinInt64| is unrepresentable. The
// gcd step works on uint64 magnitudes, so a shared factor of 2 (or more)
// reduces MinInt64 below the boundary; when no shared factor exists and the
// sign fix would need -MinInt64, New returns ErrRange.
//
// Errors: ErrZeroDenominator, ErrRange.
// Complexity: O(log min(|num|, den)) for the gcd.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	if num == 0 {
		return Zero, nil
	}
	// MinInt64/MinInt64 is the one pair whose gcd (2^63) is unrepresentable;
	// its value is exactly 1.
	if num == math.MinInt64 && den == math.MinInt64 {
		return One, nil
	}

	g, _ := nums.GCD(num, den) // cannot fail: the 2^63 case is handled above
	num /= g
	den /= g

	if den < 0 {
		// Negating MinInt64 overflows; a shared factor of 2 was already
		// consumed by the gcd, so there is nothing left to halve.
		if num == math.MinInt64 || den == math.MinInt64 {
			return Rational{}, ErrRange
		}
		num, den = -num, -den
	}

	return Rational{num: num, den: den}, nil
}

// Num returns the canonical numerator (carries the sign).
func (r Rational) Num() int64 { return r.num }

// Den returns the canonical denominator (always > 0).
func (r Rational) Den() int64 { return r.den }

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool { return r.num == 0 }

// Float64 returns the nearest float64 image of r.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// Equal reports exact equality. Canonical form makes structural comparison
// sufficient: equal values have identical components.
func (r Rational) Equal(o Rational) bool {
	return r.num == o.num && r.den == o.den
}

// String renders "num/den", eliding a denominator of 1 to plain "num".
func (r Rational) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}

	return fmt.Sprintf("%d/%d", r.num, r.den)
}
