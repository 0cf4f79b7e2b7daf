// Package angle provides a unit-aware angular value type.
//
// What:
//
//   - Angle stores a single radian float64; degrees, gradians, turns and
//     DMS (degree/arcminute/arcsecond) are derived views, never state.
//   - Factories per unit: FromRadians, FromDegrees, FromDMS, FromGradians,
//     FromTurns.
//   - Arithmetic (Add, Sub, Mul, Div, Abs) on the underlying radian value.
//   - Wrapping into [0, 2π) or the signed [-π, π), built on the exported
//     general Reduce(x, period, signed) routine, which works equally for
//     degree (360) and gradian (400) periods.
//   - Comparison via the signed-wrapped minimal angular difference, so
//     359.999° and 0.001° compare as near-equal rather than far apart.
//   - Format/FromString/TryParse over two grammars: CSS angle tokens
//     ("1.2rad", "12.5deg", "100grad", "0.25turn") and the DMS glyph form
//     ("12° 34′ 56.7″").
//
// Numeric policy: reciprocal trig (Sec, Csc, Cot and the hyperbolic
// analogues) substitutes a signed zero for an epsilon-near-zero denominator
// before dividing, producing a correctly signed infinity under IEEE rules
// instead of an error; Tan does the same, taking the infinity's sign from
// the sine. Division of an Angle by a zero, NaN or infinite scalar is
// ErrBadDivisor.
//
// Angle is a small value type: methods take value receivers and return new
// values; the one in-place exception is WrapInPlace.
package angle
