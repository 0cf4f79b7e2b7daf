// Package rational: float conversion and string parsing.
//
// FromFloat64 implements best-rational approximation by continued
// fractions: for target x, convergents are produced by the standard
// recurrence h_k = a_k·h_{k-1} + h_{k-2}, k_k = a_k·k_{k-1} + k_{k-2},
// where a_k are the continued-fraction digits of x. Iteration stops when a
// candidate denominator would exceed the bound (best-so-far wins), when the
// residual error reaches zero (exact hit), or when an integer step would
// overflow (best-so-far wins).

package rational

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numkit/nums"
)

// DefaultMaxDenominator bounds the denominator used by Parse when it
// delegates a non-integer numeral to FromFloat64. 10^9 resolves every
// decimal with up to nine fractional digits exactly and keeps cross
// products comfortably inside int64.
const DefaultMaxDenominator = 1_000_000_000

// maxExactFloat is the smallest float64 not less than every int64; values
// at or above it cannot be converted back to int64.
const maxExactFloat = float64(1 << 63)

// FromFloat64 returns the best rational approximation of v whose
// denominator does not exceed maxDen.
//
// Exact integers short-circuit to n/1. Otherwise convergents are produced
// until one reproduces v exactly (returned immediately) or the next
// denominator would exceed maxDen; the lowest-error convergent seen is
// returned.
//
// Errors: ErrNonFinite for NaN/±Inf; ErrBadMaxDenominator when maxDen < 1;
// ErrRange when the magnitude of v lies outside [1/MaxInt64, MaxInt64].
// Zero is not a range violation: it returns 0/1.
func FromFloat64(v float64, maxDen int64) (Rational, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rational{}, ErrNonFinite
	}
	if maxDen < 1 {
		return Rational{}, ErrBadMaxDenominator
	}
	if v == 0 {
		return Zero, nil
	}

	neg := v < 0
	if neg {
		v = -v
	}
	if v >= maxExactFloat || v < 1/float64(math.MaxInt64) {
		return Rational{}, ErrRange
	}

	// Exact integer shortcut.
	if v == math.Trunc(v) {
		n := int64(v)
		if neg {
			n = -n
		}

		return New(n, 1)
	}

	var (
		target = v
		x      = v
		a      = int64(math.Floor(x))

		// Convergent state: (h1/k1) is the current convergent, (h0/k0) the
		// previous one.
		h1, h0 int64 = a, 1
		k1, k0 int64 = 1, 0

		bestNum, bestDen = h1, int64(1)
		bestErr          = math.Abs(float64(h1) - target)
		err              error
	)

	frac := x - float64(a)
	for {
		cur := math.Abs(float64(h1)/float64(k1) - target)
		if cur < bestErr {
			bestNum, bestDen, bestErr = h1, k1, cur
		}
		if cur == 0 {
			break // exact convergent
		}
		if frac == 0 {
			break // expansion terminated without an exact float image
		}

		x = 1 / frac
		if x >= maxExactFloat {
			break // next digit unrepresentable; best-so-far stands
		}
		a = int64(math.Floor(x))
		frac = x - float64(a)

		var h2, k2 int64
		if h2, err = convergentStep(a, h1, h0); err != nil {
			break
		}
		if k2, err = convergentStep(a, k1, k0); err != nil {
			break
		}
		if k2 > maxDen {
			break // denominator bound reached; best-so-far stands
		}
		h1, h0 = h2, h1
		k1, k0 = k2, k1
	}

	if neg {
		bestNum = -bestNum
	}

	return New(bestNum, bestDen)
}

// convergentStep computes a*cur + prev with checked arithmetic.
func convergentStep(a, cur, prev int64) (int64, error) {
	p, err := nums.Mul(a, cur)
	if err != nil {
		return 0, err
	}

	return nums.Add(p, prev)
}

// Parse reads a Rational from s: an integer ("42"), a fraction of two
// integers ("-6/8", canonicalized to -3/4), or a floating numeral ("0.125",
// delegated to FromFloat64 with DefaultMaxDenominator).
//
// Errors: ErrParse for anything else; ErrZeroDenominator for "n/0"; the
// FromFloat64 errors for out-of-range numerals.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, ErrParse
	}

	if slash := strings.IndexByte(s, '/'); slash >= 0 {
		numPart := strings.TrimSpace(s[:slash])
		denPart := strings.TrimSpace(s[slash+1:])
		num, errN := strconv.ParseInt(numPart, 10, 64)
		den, errD := strconv.ParseInt(denPart, 10, 64)
		if errN != nil || errD != nil {
			return Rational{}, ErrParse
		}

		return New(num, den)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return New(n, 1)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FromFloat64(f, DefaultMaxDenominator)
	}

	return Rational{}, ErrParse
}

// Lcm returns the least common multiple of |a| and |b|; zero when either
// operand is zero. Computed as |a|/gcd·|b| with a checked product.
// Errors: nums.ErrOverflow when the lcm leaves int64.
func Lcm(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	// lcm(|a|,|b|) >= max(|a|,|b|), so a MinInt64 operand (magnitude 2^63)
	// makes the result unrepresentable unconditionally.
	if a == math.MinInt64 || b == math.MinInt64 {
		return 0, nums.ErrOverflow
	}
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	g, _ := nums.GCD(a, b) // cannot fail: both magnitudes < 2^63

	return nums.Mul(a/g, b)
}

// Approx collects classic rational approximations of irrational constants,
// handy in tests and as parse/round-trip fixtures.
var Approx = struct {
	Pi        Rational // 355/113, error ~8.5e-8 (Zu Chongzhi)
	PiCoarse  Rational // 22/7, error ~4e-4 (Archimedes)
	Sqrt2     Rational // 1393/985, accurate to 6 decimals
	E         Rational // 2721/1001, accurate to ~7 decimals
	GoldenPhi Rational // 987/610, consecutive Fibonacci numbers
}{
	Pi:        Rational{num: 355, den: 113},
	PiCoarse:  Rational{num: 22, den: 7},
	Sqrt2:     Rational{num: 1393, den: 985},
	E:         Rational{num: 2721, den: 1001},
	GoldenPhi: Rational{num: 987, den: 610},
}
