package angle

import "math"

// ToDMS decomposes the angle into degree/arcminute/arcsecond components.
//
// smallest selects the finest component (UnitDegrees, UnitMinutes or
// UnitSeconds); the result has smallest+1 entries. decimals controls the
// rounding of the finest component; coarser components are integral.
// Rounding carries upward: 59.6″ at zero decimals becomes 0″ with the
// minute incremented, and so on into degrees, so FromDegrees(10.9999999)
// decomposes to [11, 0, 0], never [10, 59, 60].
//
// Components carry the overall sign uniformly, with negative zeros
// canonicalized to positive zero for display stability.
//
// Errors: ErrBadUnit for smallest outside 0..2; ErrBadPrecision for
// negative decimals.
func (a Angle) ToDMS(smallest, decimals int) ([]float64, error) {
	if smallest < UnitDegrees || smallest > UnitSeconds {
		return nil, ErrBadUnit
	}
	if decimals < 0 {
		return nil, ErrBadPrecision
	}

	var (
		sign = 1.0
		abs  = a.Degrees()
	)
	if abs < 0 {
		sign, abs = -1, -abs
	}

	var parts []float64
	switch smallest {
	case UnitDegrees:
		parts = []float64{roundTo(abs, decimals)}
	case UnitMinutes:
		deg := math.Floor(abs)
		min := roundTo((abs-deg)*60, decimals)
		if min >= 60 {
			min -= 60
			deg++
		}
		parts = []float64{deg, min}
	default: // UnitSeconds
		deg := math.Floor(abs)
		remMin := (abs - deg) * 60
		min := math.Floor(remMin)
		sec := roundTo((remMin-min)*60, decimals)
		if sec >= 60 {
			sec -= 60
			min++
		}
		if min >= 60 {
			min -= 60
			deg++
		}
		parts = []float64{deg, min, sec}
	}

	for i, p := range parts {
		p *= sign
		if p == 0 {
			p = 0 // canonicalize -0 for display
		}
		parts[i] = p
	}

	return parts, nil
}

// roundTo rounds v half away from zero at the given decimal place.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))

	return math.Round(v*scale) / scale
}
