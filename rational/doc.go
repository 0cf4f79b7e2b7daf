// Package rational implements exact fractions over int64 with
// overflow-checked arithmetic.
//
// Every Rational is held in canonical form: the denominator is positive,
// gcd(|num|, den) == 1, and zero is always 0/1. Values are immutable —
// operations return a new Rational and never mutate the receiver.
//
// All fraction arithmetic runs on the checked intrinsics from numkit/nums,
// so an intermediate product or sum that leaves the int64 range surfaces as
// nums.ErrOverflow instead of silently corrupting the value. Mul and Div
// cross-cancel common factors before multiplying, which keeps many products
// representable that naive cross-multiplication would overflow.
//
// One documented compromise: ordering comparisons (Cmp and friends) fall
// back to comparing float64 images when the exact cross-products overflow.
// Two distinct rationals whose cross-products overflow and whose float
// images coincide therefore compare as equal — this is an accepted
// approximation, not arbitrary-precision arithmetic (a non-goal).
//
// FromFloat64 recovers the best rational approximation of a float under a
// denominator bound using the continued-fraction convergent recurrence;
// see its docs for the exact stopping rules.
package rational
