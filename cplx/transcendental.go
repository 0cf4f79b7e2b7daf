// Package cplx: transcendental functions, principal branch only.
//
// Branch policy: Ln returns ln|z| + i·arg(z) with arg in (-π, π]; Pow and
// the root/power wrappers derive from it, so they inherit the principal
// branch. Roots(n) is the one multi-valued surface: it enumerates all n
// branches explicitly.
//
// Exact shortcuts: a handful of landmark inputs (1, 2, e, π, 10 and
// Euler's iπ) bypass the float pipeline and return the known constant, so
// identities like exp(iπ) = -1 hold with zero error.

package cplx

import (
	"fmt"
	"math"
)

// lnPi is ln(π); the stdlib has Ln2/Ln10 but not this one.
var lnPi = math.Log(math.Pi)

// Ln returns the principal natural logarithm ln|z| + i·arg(z).
// Errors: ErrLogOfZero for zero input; ErrNonFinite cannot occur for valid
// receivers (|z| > 0 finite ⇒ both components finite).
func (z *Complex) Ln() (*Complex, error) {
	if z.IsZero() {
		return nil, ErrLogOfZero
	}
	if z.im == 0 {
		switch z.re {
		case 1:
			return New(0, 0)
		case 2:
			return New(math.Ln2, 0)
		case math.E:
			return New(1, 0)
		case math.Pi:
			return New(lnPi, 0)
		case 10:
			return New(math.Ln10, 0)
		}
	}

	return New(math.Log(z.Abs()), z.Phase())
}

// Log returns the base-b logarithm via change of base: ln(z)/ln(b).
// Shortcuts: base e delegates to Ln; log₂(e) and log₁₀(e) return the exact
// stdlib constants.
// Errors: ErrLogBase for base 0 or 1; ErrLogOfZero for zero z.
func (z *Complex) Log(base *Complex) (*Complex, error) {
	if base.IsZero() || (base.im == 0 && base.re == 1) {
		return nil, ErrLogBase
	}
	if base.im == 0 && base.re == math.E {
		return z.Ln()
	}
	if z.im == 0 && z.re == math.E && base.im == 0 {
		switch base.re {
		case 2:
			return New(math.Log2E, 0)
		case 10:
			return New(math.Log10E, 0)
		}
	}

	num, err := z.Ln()
	if err != nil {
		return nil, err
	}
	den, err := base.Ln()
	if err != nil {
		return nil, fmt.Errorf("Log: %w", err)
	}

	return num.Div(den)
}

// Exp returns e^z = e^a·(cos b + i·sin b).
// Shortcuts: 0→1, ln2→2, 1→e, lnπ→π, ln10→10, iπ→-1 (Euler's identity).
// Errors: ErrNonFinite when e^a overflows float64.
func (z *Complex) Exp() (*Complex, error) {
	if z.im == 0 {
		switch z.re {
		case 0:
			return New(1, 0)
		case math.Ln2:
			return New(2, 0)
		case 1:
			return New(math.E, 0)
		case lnPi:
			return New(math.Pi, 0)
		case math.Ln10:
			return New(10, 0)
		}
	}
	if z.re == 0 && z.im == math.Pi {
		return New(-1, 0) // Euler's identity, exactly
	}

	ea := math.Exp(z.re)

	return New(ea*math.Cos(z.im), ea*math.Sin(z.im))
}

// Pow returns the principal value of z^w = exp(w·ln z).
//
// Special cases, in order: 0⁰ = 1 (convention); zero base with a complex or
// negative real exponent is ErrZeroBase; zero base otherwise yields 0;
// z⁰ = 1; z¹ = z (copy); i² = -1 exactly; base e delegates to Exp.
func (z *Complex) Pow(w *Complex) (*Complex, error) {
	if z.IsZero() {
		switch {
		case w.IsZero():
			return New(1, 0)
		case w.im != 0 || w.re < 0:
			return nil, ErrZeroBase
		default:
			return New(0, 0)
		}
	}
	if w.IsZero() {
		return New(1, 0)
	}
	if w.im == 0 && w.re == 1 {
		return z.Clone(), nil
	}
	if z.re == 0 && z.im == 1 && w.im == 0 && w.re == 2 {
		return New(-1, 0) // i², exactly
	}
	if z.im == 0 && z.re == math.E {
		return w.Exp()
	}

	ln, err := z.Ln()
	if err != nil {
		return nil, fmt.Errorf("Pow: %w", err)
	}
	prod, err := w.Mul(ln)
	if err != nil {
		return nil, fmt.Errorf("Pow: %w", err)
	}

	return prod.Exp()
}

// Roots returns all n complex n-th roots of z by De Moivre's theorem:
// |z|^(1/n) at phases (arg(z) + 2πk)/n for k = 0..n-1, in that order.
// Zero has the single root zero.
// Errors: ErrBadRootOrder when n <= 0.
func (z *Complex) Roots(n int) ([]*Complex, error) {
	if n <= 0 {
		return nil, ErrBadRootOrder
	}
	if z.IsZero() {
		return []*Complex{{re: 0, im: 0}}, nil
	}

	var (
		r     = math.Pow(z.Abs(), 1/float64(n))
		ph    = z.Phase()
		roots = make([]*Complex, n)
		err   error
	)
	for k := 0; k < n; k++ {
		theta := (ph + 2*math.Pi*float64(k)) / float64(n)
		if roots[k], err = FromPolar(r, theta); err != nil {
			return nil, fmt.Errorf("Roots: %w", err)
		}
	}

	return roots, nil
}

// powReal raises z to a real exponent through Pow.
func (z *Complex) powReal(x float64) (*Complex, error) {
	return z.Pow(&Complex{re: x})
}

// Sqr returns z² (principal path through Pow; i² is exact).
func (z *Complex) Sqr() (*Complex, error) { return z.powReal(2) }

// Sqrt returns the principal square root; use Roots(2) for both branches.
func (z *Complex) Sqrt() (*Complex, error) { return z.powReal(0.5) }

// Cube returns z³.
func (z *Complex) Cube() (*Complex, error) { return z.powReal(3) }

// Cbrt returns the principal cube root; use Roots(3) for all three.
func (z *Complex) Cbrt() (*Complex, error) { return z.powReal(1.0 / 3.0) }
