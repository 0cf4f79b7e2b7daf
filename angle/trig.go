// Package angle: trigonometry with the signed-infinity reciprocal policy.
//
// A reciprocal function evaluated where its denominator crosses zero is a
// pole, not an error. When the denominator is merely epsilon-close to zero
// it is replaced with a signed zero (CopySign) before dividing, so IEEE
// division yields an infinity whose sign matches the approach direction
// instead of an arbitrary huge value or a failure.

package angle

import "math"

// trigEps is the denominator threshold below which a reciprocal function
// treats the value as a signed zero.
const trigEps = 1e-15

// clampDenom substitutes a signed zero for an epsilon-near-zero denominator.
func clampDenom(d float64) float64 {
	if math.Abs(d) < trigEps {
		return math.Copysign(0, d)
	}

	return d
}

// Sin returns the sine.
func (a Angle) Sin() float64 { return math.Sin(a.rad) }

// Cos returns the cosine.
func (a Angle) Cos() float64 { return math.Cos(a.rad) }

// Tan returns the tangent. At a pole (cosine epsilon-near zero) it returns
// an infinity signed by the sine.
func (a Angle) Tan() float64 {
	s, c := math.Sincos(a.rad)
	if math.Abs(c) < trigEps {
		return math.Copysign(math.Inf(1), s)
	}

	return s / c
}

// Sec returns the secant, 1/cos.
func (a Angle) Sec() float64 { return 1 / clampDenom(math.Cos(a.rad)) }

// Csc returns the cosecant, 1/sin.
func (a Angle) Csc() float64 { return 1 / clampDenom(math.Sin(a.rad)) }

// Cot returns the cotangent, cos/sin.
func (a Angle) Cot() float64 {
	s, c := math.Sincos(a.rad)

	return c / clampDenom(s)
}

// Sinh returns the hyperbolic sine.
func (a Angle) Sinh() float64 { return math.Sinh(a.rad) }

// Cosh returns the hyperbolic cosine.
func (a Angle) Cosh() float64 { return math.Cosh(a.rad) }

// Tanh returns the hyperbolic tangent.
func (a Angle) Tanh() float64 { return math.Tanh(a.rad) }

// Sech returns the hyperbolic secant, 1/cosh. cosh >= 1, so no pole.
func (a Angle) Sech() float64 { return 1 / math.Cosh(a.rad) }

// Csch returns the hyperbolic cosecant, 1/sinh, with the pole at zero.
func (a Angle) Csch() float64 { return 1 / clampDenom(math.Sinh(a.rad)) }

// Coth returns the hyperbolic cotangent, cosh/sinh, with the pole at zero.
func (a Angle) Coth() float64 { return math.Cosh(a.rad) / clampDenom(math.Sinh(a.rad)) }
