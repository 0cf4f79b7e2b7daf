package angle

import (
	"math"

	"github.com/katalvlaran/numkit/nums"
)

// Full-turn periods per unit. Definitionally equal quantities; Reduce
// accepts any of them as its period.
const (
	Tau          = 2 * math.Pi // radians per turn
	DegPerTurn   = 360.0
	GradPerTurn  = 400.0
	degPerRadian = 180 / math.Pi
)

// DefaultEpsilon is the tolerance Equal uses for the wrapped angular
// difference, in radians.
const DefaultEpsilon = 1e-12

// DMS unit indices for ToDMS: the smallest component to decompose into.
const (
	UnitDegrees = 0
	UnitMinutes = 1
	UnitSeconds = 2
)

// Angle is an angular value stored as radians. All unit views are computed,
// never stored. The zero value is a zero angle.
type Angle struct {
	rad float64
}

// FromRadians wraps a radian value.
func FromRadians(rad float64) Angle { return Angle{rad: rad} }

// FromDegrees converts degrees to an Angle.
func FromDegrees(deg float64) Angle { return Angle{rad: deg / degPerRadian} }

// FromGradians converts gradians (400 per turn) to an Angle.
func FromGradians(grad float64) Angle { return Angle{rad: grad / GradPerTurn * Tau} }

// FromTurns converts whole turns to an Angle.
func FromTurns(turns float64) Angle { return Angle{rad: turns * Tau} }

// FromDMS combines degree/arcminute/arcsecond parts into an Angle.
//
// The overall sign comes from the first non-zero part; magnitudes are taken
// from the absolute values, so FromDMS(-12, 34, 56) and FromDMS(-12, -34, -56)
// both mean -(12 + 34/60 + 56/3600) degrees. Parts need not lie in canonical
// ranges: seconds may exceed 60.
func FromDMS(deg, min, sec float64) Angle {
	sign := 1.0
	switch {
	case deg != 0:
		sign = math.Copysign(1, deg)
	case min != 0:
		sign = math.Copysign(1, min)
	case sec != 0:
		sign = math.Copysign(1, sec)
	}
	mag := math.Abs(deg) + math.Abs(min)/60 + math.Abs(sec)/3600

	return FromDegrees(sign * mag)
}

// Radians returns the stored radian value.
func (a Angle) Radians() float64 { return a.rad }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return a.rad * degPerRadian }

// Gradians returns the angle in gradians.
func (a Angle) Gradians() float64 { return a.rad / Tau * GradPerTurn }

// Turns returns the angle in whole turns.
func (a Angle) Turns() float64 { return a.rad / Tau }

// Add returns a + o.
func (a Angle) Add(o Angle) Angle { return Angle{rad: a.rad + o.rad} }

// Sub returns a - o.
func (a Angle) Sub(o Angle) Angle { return Angle{rad: a.rad - o.rad} }

// Mul returns the angle scaled by f.
func (a Angle) Mul(f float64) Angle { return Angle{rad: a.rad * f} }

// Div returns the angle divided by f.
// Errors: ErrBadDivisor for a zero, NaN or infinite f.
func (a Angle) Div(f float64) (Angle, error) {
	if f == 0 || !nums.IsFinite(f) {
		return Angle{}, ErrBadDivisor
	}

	return Angle{rad: a.rad / f}, nil
}

// Abs returns the magnitude angle.
func (a Angle) Abs() Angle { return Angle{rad: math.Abs(a.rad)} }

// Neg returns the opposite angle.
func (a Angle) Neg() Angle { return Angle{rad: -a.rad} }

// Compare orders a against o by the signed-wrapped minimal angular
// difference, not raw subtraction, so values straddling the wrap boundary
// compare correctly. Returns -1, 0 or +1; differences within eps are 0.
//
// Antipodal tie: angles exactly half a turn apart have a wrapped difference
// of -π in either direction (the half-open [-π, π) convention), so Compare
// returns -1 both ways. Widen eps past π to treat such pairs as equal.
//
// Errors: ErrNegativeEpsilon.
func (a Angle) Compare(o Angle, eps float64) (int, error) {
	if eps < 0 {
		return 0, ErrNegativeEpsilon
	}
	d := Reduce(a.rad-o.rad, Tau, true)
	switch {
	case math.Abs(d) <= eps:
		return 0, nil
	case d < 0:
		return -1, nil
	default:
		return 1, nil
	}
}

// Equal reports whether the wrapped difference to o is within
// DefaultEpsilon.
func (a Angle) Equal(o Angle) bool {
	c, err := a.Compare(o, DefaultEpsilon)

	return err == nil && c == 0
}
