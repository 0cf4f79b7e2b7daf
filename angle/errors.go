// Package angle: sentinel error set, matched via errors.Is.

package angle

import "errors"

var (
	// ErrBadDivisor is returned by Div for a zero, NaN or infinite divisor.
	ErrBadDivisor = errors.New("angle: divisor must be finite and non-zero")

	// ErrNegativeEpsilon is returned by Compare for eps < 0.
	ErrNegativeEpsilon = errors.New("angle: negative epsilon")

	// ErrInvalidAngle is returned by FromString for input matching neither
	// the CSS token grammar nor the DMS glyph grammar.
	ErrInvalidAngle = errors.New("angle: invalid angle")

	// ErrBadUnit is returned by Format for an unknown unit selector and by
	// ToDMS for a smallest-unit index outside 0..2.
	ErrBadUnit = errors.New("angle: unknown unit")

	// ErrBadPrecision is returned when a decimals argument is negative.
	ErrBadPrecision = errors.New("angle: negative decimals")
)
