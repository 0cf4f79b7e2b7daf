// Package cplx: the Complex type, construction, the cached polar form and
// its invalidation discipline, equality and rendering.

package cplx

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/numkit/nums"
)

// DefaultEpsilon is the per-component tolerance used by Equal: one machine
// epsilon (2⁻⁵²) of float64.
const DefaultEpsilon = 0x1p-52

// Complex is a complex number with guaranteed-finite components and a
// lazily cached polar form.
//
// The polar cache (abs, phase) is valid only while polarOK is set; the flag
// is cleared exclusively by setParts, which is the single path through
// which re/im ever change. Adding another mutator without routing it
// through setParts would break the invalidation invariant — don't.
//
// Complex values are not safe for concurrent use: even read paths (Abs,
// Phase) may fill the cache.
type Complex struct {
	re, im  float64
	abs     float64
	phase   float64
	polarOK bool
}

// New returns the complex number re + im·i.
// Errors: ErrNonFinite when either component is NaN or ±Inf.
func New(re, im float64) (*Complex, error) {
	z := &Complex{}
	if err := z.setParts(re, im); err != nil {
		return nil, err
	}

	return z, nil
}

// I returns the imaginary unit.
func I() *Complex {
	return &Complex{re: 0, im: 1}
}

// FromPolar returns mag·(cos phase + i·sin phase).
// Errors: ErrNonFinite when mag or phase is non-finite (or the components
// overflow, which for finite inputs they cannot).
func FromPolar(mag, phase float64) (*Complex, error) {
	if !nums.IsFinite(mag) || !nums.IsFinite(phase) {
		return nil, ErrNonFinite
	}

	return New(mag*math.Cos(phase), mag*math.Sin(phase))
}

// setParts is the single mutation path: it validates both components and
// invalidates the polar cache.
func (z *Complex) setParts(re, im float64) error {
	if !nums.IsFinite(re) || !nums.IsFinite(im) {
		return ErrNonFinite
	}
	z.re, z.im = re, im
	z.polarOK = false

	return nil
}

// Real returns the real component.
func (z *Complex) Real() float64 { return z.re }

// Imag returns the imaginary component.
func (z *Complex) Imag() float64 { return z.im }

// SetReal replaces the real component, invalidating the polar cache.
// Errors: ErrNonFinite.
func (z *Complex) SetReal(v float64) error { return z.setParts(v, z.im) }

// SetImag replaces the imaginary component, invalidating the polar cache.
// Errors: ErrNonFinite.
func (z *Complex) SetImag(v float64) error { return z.setParts(z.re, v) }

// fillPolar computes and caches magnitude and phase on first demand.
func (z *Complex) fillPolar() {
	if z.polarOK {
		return
	}
	z.abs = math.Hypot(z.re, z.im)
	z.phase = math.Atan2(z.im, z.re)
	z.polarOK = true
}

// Abs returns |z|, computing and caching it on first access.
func (z *Complex) Abs() float64 {
	z.fillPolar()

	return z.abs
}

// Phase returns arg(z) in (-π, π], computing and caching it on first access.
func (z *Complex) Phase() float64 {
	z.fillPolar()

	return z.phase
}

// IsZero reports whether both components are exactly zero.
func (z *Complex) IsZero() bool { return z.re == 0 && z.im == 0 }

// Clone returns an independent copy of z (the polar cache travels along).
func (z *Complex) Clone() *Complex {
	c := *z

	return &c
}

// Equal reports component-wise equality within DefaultEpsilon.
func (z *Complex) Equal(o *Complex) bool {
	return z.EqualTol(o, DefaultEpsilon)
}

// EqualTol reports component-wise equality within eps:
// |Δre| < eps ∧ |Δim| < eps.
func (z *Complex) EqualTol(o *Complex, eps float64) bool {
	return math.Abs(z.re-o.re) < eps && math.Abs(z.im-o.im) < eps
}

// String renders z as "a", "bi", "a + bi" or "a - bi"; unit coefficients
// elide to "i"/"-i". Zero renders as "0".
func (z *Complex) String() string {
	switch {
	case z.im == 0:
		return formatFloat(z.re)
	case z.re == 0:
		return imagToken(z.im)
	}

	op := "+"
	im := z.im
	if im < 0 {
		op = "-"
		im = -im
	}

	return fmt.Sprintf("%s %s %s", formatFloat(z.re), op, imagToken(im))
}

// imagToken renders the imaginary part with coefficient elision.
func imagToken(im float64) string {
	switch im {
	case 1:
		return "i"
	case -1:
		return "-i"
	}

	return formatFloat(im) + "i"
}

// formatFloat renders a float64 in the shortest exact decimal form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
