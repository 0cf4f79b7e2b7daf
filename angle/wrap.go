package angle

import (
	"math"

	"github.com/katalvlaran/numkit/nums"
)

// Reduce maps x into one period's half-open interval: [0, period) by
// default, or the signed [-period/2, period/2). It is unit-agnostic; pass
// Tau for radians, DegPerTurn for degrees, GradPerTurn for gradians.
// A non-positive or non-finite period, or a non-finite x, yields NaN.
func Reduce(x, period float64, signed bool) float64 {
	if period <= 0 || !nums.IsFinite(period) || !nums.IsFinite(x) {
		return math.NaN()
	}

	shift := 0.0
	if signed {
		shift = period / 2
	}
	r := math.Mod(x+shift, period)
	if r < 0 {
		r += period
	}
	// math.Mod keeps |r| < period, but the += above can land exactly on the
	// boundary when r was a tiny negative; fold it back in.
	if r >= period {
		r -= period
	}

	return r - shift
}

// Wrap returns the angle reduced into [0, 2π).
func (a Angle) Wrap() Angle {
	return Angle{rad: Reduce(a.rad, Tau, false)}
}

// WrapSigned returns the angle reduced into [-π, π).
func (a Angle) WrapSigned() Angle {
	return Angle{rad: Reduce(a.rad, Tau, true)}
}

// WrapInPlace reduces the receiver itself, into [-π, π) when signed,
// else [0, 2π).
func (a *Angle) WrapInPlace(signed bool) {
	a.rad = Reduce(a.rad, Tau, signed)
}
