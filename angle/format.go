package angle

import (
	"math"
	"strconv"
	"strings"
)

// Unit selects the textual form Format emits and names the CSS angle tokens
// FromString accepts.
type Unit string

const (
	Rad  Unit = "rad"
	Deg  Unit = "deg"
	Grad Unit = "grad"
	Turn Unit = "turn"
	// DMS is the glyph form "12° 34′ 56.7″"; it is a Format target only,
	// not a CSS token.
	DMS Unit = "dms"
)

// DMS glyphs: degree sign, prime, double prime.
const (
	glyphDeg = "°"
	glyphMin = "′"
	glyphSec = "″"
)

// Format renders the angle in the requested unit with a fixed number of
// decimals. CSS units glue the token to the numeral ("12.5deg"); DMS emits
// the glyph form with integral degrees and minutes and decimals applied to
// the seconds.
// Errors: ErrBadUnit; ErrBadPrecision for negative decimals.
func (a Angle) Format(unit Unit, decimals int) (string, error) {
	if decimals < 0 {
		return "", ErrBadPrecision
	}

	var v float64
	switch unit {
	case Rad:
		v = a.Radians()
	case Deg:
		v = a.Degrees()
	case Grad:
		v = a.Gradians()
	case Turn:
		v = a.Turns()
	case DMS:
		return a.formatDMS(decimals)
	default:
		return "", ErrBadUnit
	}

	return strconv.FormatFloat(v, 'f', decimals, 64) + string(unit), nil
}

// formatDMS renders "D° M′ S″" with an optional leading sign.
func (a Angle) formatDMS(decimals int) (string, error) {
	parts, err := a.ToDMS(UnitSeconds, decimals)
	if err != nil {
		return "", err
	}

	sign := ""
	if parts[0] < 0 || parts[1] < 0 || parts[2] < 0 {
		sign = "-"
	}
	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(strconv.FormatFloat(math.Abs(parts[0]), 'f', 0, 64))
	b.WriteString(glyphDeg)
	b.WriteString(" ")
	b.WriteString(strconv.FormatFloat(math.Abs(parts[1]), 'f', 0, 64))
	b.WriteString(glyphMin)
	b.WriteString(" ")
	b.WriteString(strconv.FormatFloat(math.Abs(parts[2]), 'f', decimals, 64))
	b.WriteString(glyphSec)

	return b.String(), nil
}

// String renders the angle as radians with full precision, "1.5707963rad"
// style. Implements fmt.Stringer.
func (a Angle) String() string {
	return strconv.FormatFloat(a.rad, 'g', -1, 64) + string(Rad)
}
