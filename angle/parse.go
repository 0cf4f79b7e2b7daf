// Package angle: string grammars.
//
// Two forms are accepted:
//
//	CSS angle tokens  "1.2rad", "12.5deg", "-100grad", "0.25turn"
//	                  numeral glued to the token, no internal space
//	DMS glyph form    "12° 34′ 56.7″", "-45°", "12° 30′"
//	                  optional leading sign, spaces allowed between
//	                  components but never between a number and its glyph

package angle

import (
	"strconv"
	"strings"
)

// FromString parses either grammar.
// Errors: ErrInvalidAngle for anything matching neither.
func FromString(s string) (Angle, error) {
	if a, ok := TryParse(s); ok {
		return a, nil
	}

	return Angle{}, ErrInvalidAngle
}

// TryParse never fails: it reports success through the flag instead.
func TryParse(s string) (Angle, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Angle{}, false
	}
	if a, ok := parseCSS(s); ok {
		return a, true
	}

	return parseDMS(s)
}

// parseCSS reads "<number><token>" for token in rad|deg|grad|turn.
// Grad is matched before Rad since "grad" ends in "rad".
func parseCSS(s string) (Angle, bool) {
	for _, u := range []Unit{Grad, Rad, Deg, Turn} {
		if !strings.HasSuffix(s, string(u)) {
			continue
		}
		num := strings.TrimSuffix(s, string(u))
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Angle{}, false
		}
		switch u {
		case Rad:
			return FromRadians(f), true
		case Deg:
			return FromDegrees(f), true
		case Grad:
			return FromGradians(f), true
		default:
			return FromTurns(f), true
		}
	}

	return Angle{}, false
}

// parseDMS reads "D° [M′ [S″]]" with an optional leading sign applied to
// the whole value.
func parseDMS(s string) (Angle, bool) {
	sign := 1.0
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = strings.TrimLeft(s[1:], " ")
	case strings.HasPrefix(s, "+"):
		s = strings.TrimLeft(s[1:], " ")
	}

	var (
		glyphs = []string{glyphDeg, glyphMin, glyphSec}
		vals   [3]float64
		seen   int
	)
	for k := 0; k < 3 && s != ""; k++ {
		n := dmsNumberLen(s)
		if n == 0 || !strings.HasPrefix(s[n:], glyphs[k]) {
			return Angle{}, false
		}
		f, err := strconv.ParseFloat(s[:n], 64)
		if err != nil {
			return Angle{}, false
		}
		vals[k] = f
		seen++
		s = strings.TrimLeft(s[n+len(glyphs[k]):], " ")
	}
	if s != "" || seen == 0 {
		return Angle{}, false
	}

	return FromDegrees(sign * (vals[0] + vals[1]/60 + vals[2]/3600)), true
}

// dmsNumberLen counts the leading unsigned decimal numeral of s; zero means
// no numeral (components inside a DMS string carry no individual signs).
func dmsNumberLen(s string) int {
	n := 0
	digits := false
	for n < len(s) {
		c := s[n]
		if c >= '0' && c <= '9' {
			digits = true
			n++
			continue
		}
		if c == '.' {
			n++
			continue
		}
		break
	}
	if !digits {
		return 0
	}

	return n
}
