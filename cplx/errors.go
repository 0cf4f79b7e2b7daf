// Package cplx: sentinel error set, matched by callers with errors.Is.

package cplx

import "errors"

var (
	// ErrNonFinite is returned when a component would be NaN or ±Inf —
	// on construction, mutation, or as an arithmetic result.
	ErrNonFinite = errors.New("cplx: non-finite component")

	// ErrDivisionByZero is returned by Div when the divisor is numerically
	// zero (|d|² == 0 in float64).
	ErrDivisionByZero = errors.New("cplx: division by zero")

	// ErrLogOfZero is returned by Ln (and Log via Ln) for a zero input.
	ErrLogOfZero = errors.New("cplx: logarithm of zero")

	// ErrLogBase is returned by Log when the base is 0 or 1.
	ErrLogBase = errors.New("cplx: invalid logarithm base")

	// ErrZeroBase is returned by Pow for zero raised to a complex or to a
	// negative real power.
	ErrZeroBase = errors.New("cplx: zero base with non-positive-real exponent")

	// ErrBadRootOrder is returned by Roots when n <= 0.
	ErrBadRootOrder = errors.New("cplx: root order must be positive")

	// ErrParse is returned by Parse for input matching no accepted grammar.
	ErrParse = errors.New("cplx: unparseable input")
)
