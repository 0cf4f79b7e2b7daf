// Package cplx: field arithmetic. Every result is routed through New so a
// float overflow in a component is reported as ErrNonFinite rather than
// leaking ±Inf into later computations.

package cplx

import "fmt"

// Add returns z + o. Errors: ErrNonFinite on component overflow.
func (z *Complex) Add(o *Complex) (*Complex, error) {
	return New(z.re+o.re, z.im+o.im)
}

// Sub returns z - o. Errors: ErrNonFinite on component overflow.
func (z *Complex) Sub(o *Complex) (*Complex, error) {
	return New(z.re-o.re, z.im-o.im)
}

// Mul returns z·o via (a+bi)(c+di) = (ac-bd) + (bc+ad)i.
// Errors: ErrNonFinite on component overflow.
func (z *Complex) Mul(o *Complex) (*Complex, error) {
	return New(z.re*o.re-z.im*o.im, z.im*o.re+z.re*o.im)
}

// Div returns z/o via multiplication by the conjugate:
// (a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c²+d²).
// Errors: ErrDivisionByZero when |o|² is numerically zero (this also
// catches non-zero divisors whose squared magnitude underflows — dividing
// by them would be meaningless anyway); ErrNonFinite on overflow.
func (z *Complex) Div(o *Complex) (*Complex, error) {
	denom := o.re*o.re + o.im*o.im
	if denom == 0 {
		return nil, ErrDivisionByZero
	}

	res, err := New((z.re*o.re+z.im*o.im)/denom, (z.im*o.re-z.re*o.im)/denom)
	if err != nil {
		return nil, fmt.Errorf("Div: %w", err)
	}

	return res, nil
}

// Conj returns the conjugate a - bi. Cannot fail: negation preserves
// finiteness.
func (z *Complex) Conj() *Complex {
	return &Complex{re: z.re, im: -z.im}
}

// Neg returns -z. Cannot fail.
func (z *Complex) Neg() *Complex {
	return &Complex{re: -z.re, im: -z.im}
}
