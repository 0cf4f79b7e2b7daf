// Package rational: ordering.
//
// Exact ordering cross-multiplies num₁·den₂ against num₂·den₁ with checked
// multiplication. When either cross-product overflows int64 the comparison
// falls back to the float64 images of the two values. That fallback is a
// documented precision compromise: two distinct rationals whose
// cross-products overflow and whose float images round to the same float64
// compare as equal. Resolving it would require arbitrary precision, which
// is an explicit non-goal.

package rational

import "github.com/katalvlaran/numkit/nums"

// Cmp returns -1, 0 or +1 as r is less than, equal to or greater than o.
func (r Rational) Cmp(o Rational) int {
	lhs, errL := nums.Mul(r.num, o.den)
	rhs, errR := nums.Mul(o.num, r.den)
	if errL == nil && errR == nil {
		switch {
		case lhs < rhs:
			return -1
		case lhs > rhs:
			return 1
		default:
			return 0
		}
	}

	// Documented fallback: float comparison on cross-product overflow.
	lf, rf := r.Float64(), o.Float64()
	switch {
	case lf < rf:
		return -1
	case lf > rf:
		return 1
	default:
		return 0
	}
}

// Less reports r < o.
func (r Rational) Less(o Rational) bool { return r.Cmp(o) < 0 }

// Greater reports r > o.
func (r Rational) Greater(o Rational) bool { return r.Cmp(o) > 0 }

// LessEq reports r <= o.
func (r Rational) LessEq(o Rational) bool { return r.Cmp(o) <= 0 }

// GreaterEq reports r >= o.
func (r Rational) GreaterEq(o Rational) bool { return r.Cmp(o) >= 0 }
