// Package cplx: string grammar.
//
// Accepted forms (whitespace allowed between tokens, never between a
// numeral and its unit):
//
//	"3.5"            pure real
//	"i", "-i", "2i"  pure imaginary, unit i or j, any case
//	"3 + 4i"         combined, either order: "4i + 3", "-2.5j - 1e2"
//
// Everything else is ErrParse.

package cplx

import (
	"errors"
	"strconv"
	"strings"
)

// Parse reads a Complex from s.
// Errors: ErrParse on grammar violations; ErrNonFinite when a numeral
// parses but overflows float64.
func Parse(s string) (*Complex, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrParse
	}

	if pos := operatorIndex(s); pos > 0 {
		lv, lImag, err := parseTerm(s[:pos])
		if err != nil {
			return nil, err
		}
		rv, rImag, err := parseTerm(s[pos+1:])
		if err != nil {
			return nil, err
		}
		if s[pos] == '-' {
			rv = -rv
		}
		// Exactly one real and one imaginary term, in either order.
		switch {
		case !lImag && rImag:
			return New(lv, rv)
		case lImag && !rImag:
			return New(rv, lv)
		default:
			return nil, ErrParse
		}
	}

	v, imag, err := parseTerm(s)
	if err != nil {
		return nil, err
	}
	if imag {
		return New(0, v)
	}

	return New(v, 0)
}

// operatorIndex finds the first '+' or '-' joining two terms: not at the
// start and not the sign of an exponent ("1e-3"). Returns -1 when s is a
// single term.
func operatorIndex(s string) int {
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c != '+' && c != '-' {
			continue
		}
		// Preceding non-space byte decides: an 'e'/'E' right after a digit
		// or '.' means this sign belongs to an exponent.
		j := i - 1
		for j > 0 && s[j] == ' ' {
			j--
		}
		p := s[j]
		if (p == 'e' || p == 'E') && j > 0 && (isDigit(s[j-1]) || s[j-1] == '.') {
			continue
		}

		return i
	}

	return -1
}

// parseTerm reads one token: a real numeral, or a numeral glued to an
// imaginary unit (i/j, any case) with an optional bare sign as coefficient.
func parseTerm(s string) (v float64, imag bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, ErrParse
	}

	last := s[len(s)-1]
	if last == 'i' || last == 'I' || last == 'j' || last == 'J' {
		coef := s[:len(s)-1]
		// The unit must be glued to its numeral: "4 i" is invalid.
		if coef != "" && coef[len(coef)-1] == ' ' {
			return 0, false, ErrParse
		}
		switch coef {
		case "", "+":
			return 1, true, nil
		case "-":
			return -1, true, nil
		}
		f, perr := parseFloat(coef)
		if perr != nil {
			return 0, false, perr
		}

		return f, true, nil
	}

	f, perr := parseFloat(s)
	if perr != nil {
		return 0, false, perr
	}

	return f, false, nil
}

// parseFloat wraps strconv: syntax errors become ErrParse, while range
// overflow passes the ±Inf through so New reports ErrNonFinite.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrParse
	}

	return f, nil
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
