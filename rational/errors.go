// Package rational: sentinel error set. Overflow from the checked integer
// layer propagates as nums.ErrOverflow; everything rational-specific is one
// of the sentinels below. Tests match with errors.Is.

package rational

import "errors"

var (
	// ErrZeroDenominator is returned by New when den == 0.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is returned by Div, Inv and negative-exponent Pow on
	// a zero operand.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrRange is returned when a value cannot be put into canonical form
	// within int64 — canonicalizing around math.MinInt64 — or when a float
	// magnitude lies outside (1/MaxInt64, MaxInt64) in FromFloat64.
	ErrRange = errors.New("rational: value out of int64 range")

	// ErrNonFinite is returned by FromFloat64 for NaN or ±Inf input.
	ErrNonFinite = errors.New("rational: non-finite value")

	// ErrBadMaxDenominator is returned by FromFloat64 when maxDen < 1.
	ErrBadMaxDenominator = errors.New("rational: max denominator must be >= 1")

	// ErrParse is returned by Parse for input matching neither the plain
	// number nor the "integer/integer" grammar.
	ErrParse = errors.New("rational: unparseable input")
)
