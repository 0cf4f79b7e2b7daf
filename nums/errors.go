// Package nums: sentinel error set.
// All failures in this package surface as one of these sentinels; callers
// match them with errors.Is. Wrapping with operation context happens at the
// caller, never here.

package nums

import "errors"

var (
	// ErrOverflow is returned when the true mathematical result of a checked
	// integer operation does not fit the int64 range.
	ErrOverflow = errors.New("nums: integer overflow")

	// ErrNegativeExponent is returned by Pow when the exponent is negative;
	// integer exponentiation is defined here for exp >= 0 only.
	ErrNegativeExponent = errors.New("nums: negative exponent")

	// ErrNaN is returned when NaN is passed where a sign is required
	// (CopySign). NaN carries a sign bit but no usable sign.
	ErrNaN = errors.New("nums: NaN argument")
)
