// Package rational: fraction arithmetic on checked int64 intrinsics.
//
// Formula notes:
//   - Add/Sub use the standard cross products; every product and the final
//     sum run through nums, so overflow is reported, never wrapped.
//   - Mul/Div cross-cancel gcd(num₁,den₂) and gcd(den₁,num₂) BEFORE
//     multiplying. The products of the reduced parts are the smallest
//     integers that can represent the result, so this minimizes (but cannot
//     eliminate) overflow.
//   - Pow handles negative exponents by inverting first; 0⁰ is 1 by
//     convention and 0 to a negative power is a division by zero.

package rational

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numkit/nums"
)

// opErrorf attaches the operation tag to an underlying sentinel, preserving
// errors.Is matching.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// addSub computes r + sign*o for sign ∈ {+1, -1}.
func (r Rational) addSub(o Rational, sign int64, op string) (Rational, error) {
	ad, err := nums.Mul(r.num, o.den)
	if err != nil {
		return Rational{}, opErrorf(op, err)
	}
	cb, err := nums.Mul(o.num, r.den)
	if err != nil {
		return Rational{}, opErrorf(op, err)
	}
	// Subtract directly rather than negate-then-add: negating cb would
	// spuriously overflow at cb == MinInt64 even when ad - cb fits.
	var num int64
	if sign < 0 {
		num, err = nums.Sub(ad, cb)
	} else {
		num, err = nums.Add(ad, cb)
	}
	if err != nil {
		return Rational{}, opErrorf(op, err)
	}
	den, err := nums.Mul(r.den, o.den)
	if err != nil {
		return Rational{}, opErrorf(op, err)
	}

	res, err := New(num, den)
	if err != nil {
		return Rational{}, opErrorf(op, err)
	}

	return res, nil
}

// Add returns r + o. Errors: nums.ErrOverflow.
func (r Rational) Add(o Rational) (Rational, error) { return r.addSub(o, +1, "Add") }

// Sub returns r - o. Errors: nums.ErrOverflow.
func (r Rational) Sub(o Rational) (Rational, error) { return r.addSub(o, -1, "Sub") }

// Mul returns r * o with cross-cancellation before multiplying.
// Errors: nums.ErrOverflow, ErrRange.
func (r Rational) Mul(o Rational) (Rational, error) {
	// Cross-cancel: gcd(num₁,den₂) and gcd(den₁,num₂). Denominators are
	// always >= 1, so these gcds are representable.
	g1, _ := nums.GCD(r.num, o.den)
	g2, _ := nums.GCD(o.num, r.den)

	num, err := nums.Mul(r.num/g1, o.num/g2)
	if err != nil {
		return Rational{}, opErrorf("Mul", err)
	}
	den, err := nums.Mul(r.den/g2, o.den/g1)
	if err != nil {
		return Rational{}, opErrorf("Mul", err)
	}

	res, err := New(num, den)
	if err != nil {
		return Rational{}, opErrorf("Mul", err)
	}

	return res, nil
}

// Div returns r / o, i.e. r * o⁻¹ with the same cross-cancellation as Mul.
// Errors: ErrDivisionByZero when o is zero; nums.ErrOverflow, ErrRange.
func (r Rational) Div(o Rational) (Rational, error) {
	inv, err := o.Inv()
	if err != nil {
		return Rational{}, opErrorf("Div", err)
	}

	return r.Mul(inv)
}

// Inv returns the reciprocal den/num.
// Errors: ErrDivisionByZero for zero; ErrRange when num is MinInt64 (the
// reciprocal's denominator would be 2^63).
func (r Rational) Inv() (Rational, error) {
	if r.num == 0 {
		return Rational{}, ErrDivisionByZero
	}

	return New(r.den, r.num)
}

// Neg returns -r. Errors: nums.ErrOverflow when num is MinInt64.
func (r Rational) Neg() (Rational, error) {
	num, err := nums.Sub(0, r.num)
	if err != nil {
		return Rational{}, opErrorf("Neg", err)
	}

	return Rational{num: num, den: r.den}, nil
}

// Abs returns |r|. Errors: nums.ErrOverflow when num is MinInt64.
func (r Rational) Abs() (Rational, error) {
	if r.num >= 0 {
		return r, nil
	}

	return r.Neg()
}

// Pow returns r**exp for any integer exponent.
//
// Rules: exp == 0 yields 1 for every base including zero (0⁰ = 1 by
// convention); a negative exponent inverts first and then raises to the
// positive power, so zero to a negative power is ErrDivisionByZero.
// Numerator and denominator are raised independently — canonical form is
// preserved by powers, so no re-reduction is needed, but New is still used
// to normalize the MinInt64 edge.
//
// Errors: ErrDivisionByZero, nums.ErrOverflow, ErrRange.
// Complexity: O(log |exp|) checked multiplications.
func (r Rational) Pow(exp int64) (Rational, error) {
	if exp == 0 {
		return One, nil
	}

	base := r
	if exp < 0 {
		inv, err := r.Inv()
		if err != nil {
			return Rational{}, opErrorf("Pow", err)
		}
		base = inv
		if exp == math.MinInt64 {
			// -exp is unrepresentable. |base| must be 1 for the power to fit
			// int64 at all; 2^63 is even, so both ±1 raise to exactly 1.
			if base.den == 1 && (base.num == 1 || base.num == -1) {
				return One, nil
			}

			return Rational{}, opErrorf("Pow", nums.ErrOverflow)
		}
		exp = -exp
	}

	num, err := nums.Pow(base.num, exp)
	if err != nil {
		return Rational{}, opErrorf("Pow", err)
	}
	den, err := nums.Pow(base.den, exp)
	if err != nil {
		return Rational{}, opErrorf("Pow", err)
	}

	res, err := New(num, den)
	if err != nil {
		return Rational{}, opErrorf("Pow", err)
	}

	return res, nil
}

// Floor returns the largest integer <= r.
// Go's integer division truncates toward zero, so a negative non-exact
// quotient needs one step down.
func (r Rational) Floor() int64 {
	q, rem := r.num/r.den, r.num%r.den
	if rem != 0 && r.num < 0 {
		q--
	}

	return q
}

// Ceil returns the smallest integer >= r.
func (r Rational) Ceil() int64 {
	q, rem := r.num/r.den, r.num%r.den
	if rem != 0 && r.num > 0 {
		q++
	}

	return q
}

// Round returns the nearest integer, rounding halves away from zero.
// The halfway test compares 2|rem| against den in uint64 so it cannot
// overflow for any canonical value.
func (r Rational) Round() int64 {
	q, rem := r.num/r.den, r.num%r.den
	if rem == 0 {
		return q
	}

	var mag uint64
	if rem < 0 {
		mag = uint64(-(rem + 1)) + 1
	} else {
		mag = uint64(rem)
	}
	if 2*mag >= uint64(r.den) {
		if r.num < 0 {
			q--
		} else {
			q++
		}
	}

	return q
}
