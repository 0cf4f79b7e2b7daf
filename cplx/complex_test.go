package cplx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds a Complex or fails the test immediately.
func mustNew(t *testing.T, re, im float64) *Complex {
	t.Helper()
	z, err := New(re, im)
	require.NoError(t, err)
	return z
}

func TestNew_RejectsNonFinite(t *testing.T) {
	cases := []struct {
		name   string
		re, im float64
	}{
		{"nan real", math.NaN(), 0},
		{"nan imag", 0, math.NaN()},
		{"+inf real", math.Inf(1), 1},
		{"-inf imag", 1, math.Inf(-1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.re, tc.im)
			assert.ErrorIs(t, err, ErrNonFinite)
		})
	}
}

func TestFromPolar(t *testing.T) {
	z, err := FromPolar(2, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 0, z.Real(), 1e-15)
	assert.InDelta(t, 2, z.Imag(), 1e-15)

	_, err = FromPolar(math.Inf(1), 0)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestI(t *testing.T) {
	z := I()
	assert.Equal(t, 0.0, z.Real())
	assert.Equal(t, 1.0, z.Imag())
}

func TestPolarCache_InvalidatedOnMutation(t *testing.T) {
	z := mustNew(t, 3, 4)
	require.Equal(t, 5.0, z.Abs()) // fills the cache

	require.NoError(t, z.SetReal(0))
	assert.Equal(t, 4.0, z.Abs())
	assert.InDelta(t, math.Pi/2, z.Phase(), 1e-15)

	require.NoError(t, z.SetImag(-4))
	assert.Equal(t, 4.0, z.Abs())
	assert.InDelta(t, -math.Pi/2, z.Phase(), 1e-15)
}

func TestSetters_RejectNonFinite(t *testing.T) {
	z := mustNew(t, 1, 1)
	assert.ErrorIs(t, z.SetReal(math.NaN()), ErrNonFinite)
	assert.ErrorIs(t, z.SetImag(math.Inf(1)), ErrNonFinite)
	// Failed mutation leaves the value untouched.
	assert.Equal(t, 1.0, z.Real())
	assert.Equal(t, 1.0, z.Imag())
}

func TestAbsPhase(t *testing.T) {
	cases := []struct {
		name     string
		re, im   float64
		abs, arg float64
	}{
		{"origin", 0, 0, 0, 0},
		{"positive real", 3, 0, 3, 0},
		{"negative real", -3, 0, 3, math.Pi},
		{"positive imag", 0, 2, 2, math.Pi / 2},
		{"negative imag", 0, -2, 2, -math.Pi / 2},
		{"3-4-5", 3, 4, 5, math.Atan2(4, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			z := mustNew(t, tc.re, tc.im)
			assert.Equal(t, tc.abs, z.Abs())
			assert.Equal(t, tc.arg, z.Phase())
		})
	}
}

func TestClone_Independent(t *testing.T) {
	z := mustNew(t, 1, 2)
	c := z.Clone()
	require.NoError(t, c.SetReal(9))
	assert.Equal(t, 1.0, z.Real())
	assert.Equal(t, 9.0, c.Real())
}

func TestEqual(t *testing.T) {
	a := mustNew(t, 1, 2)
	b := mustNew(t, 1, 2)
	assert.True(t, a.Equal(b))

	c := mustNew(t, 1, 2+0x1p-50)
	assert.False(t, a.Equal(c))
	assert.True(t, a.EqualTol(c, 1e-10))
}

func TestString(t *testing.T) {
	cases := []struct {
		name   string
		re, im float64
		want   string
	}{
		{"zero", 0, 0, "0"},
		{"pure real", 3.5, 0, "3.5"},
		{"unit imag", 0, 1, "i"},
		{"neg unit imag", 0, -1, "-i"},
		{"pure imag", 0, 2.5, "2.5i"},
		{"combined plus", 3, 4, "3 + 4i"},
		{"combined minus", 3, -4, "3 - 4i"},
		{"unit coefficient", 1, 1, "1 + i"},
		{"negative real", -2, -1, "-2 - i"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mustNew(t, tc.re, tc.im).String())
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := mustNew(t, 1, 2)
	b := mustNew(t, 3, -4)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 4.0, sum.Real())
	assert.Equal(t, -2.0, sum.Imag())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, -2.0, diff.Real())
	assert.Equal(t, 6.0, diff.Imag())

	// (1+2i)(3-4i) = 3 - 4i + 6i + 8 = 11 + 2i.
	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, 11.0, prod.Real())
	assert.Equal(t, 2.0, prod.Imag())

	// Division undoes multiplication.
	back, err := prod.Div(b)
	require.NoError(t, err)
	assert.InDelta(t, a.Real(), back.Real(), 1e-15)
	assert.InDelta(t, a.Imag(), back.Imag(), 1e-15)
}

func TestDiv_ByZero(t *testing.T) {
	a := mustNew(t, 1, 2)
	zero := mustNew(t, 0, 0)
	_, err := a.Div(zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestArithmetic_OverflowToNonFinite(t *testing.T) {
	big := mustNew(t, math.MaxFloat64, 0)
	_, err := big.Add(big)
	assert.ErrorIs(t, err, ErrNonFinite)

	_, err = big.Mul(big)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestConjNeg(t *testing.T) {
	z := mustNew(t, 2, -3)
	c := z.Conj()
	assert.Equal(t, 2.0, c.Real())
	assert.Equal(t, 3.0, c.Imag())

	n := z.Neg()
	assert.Equal(t, -2.0, n.Real())
	assert.Equal(t, 3.0, n.Imag())

	// z is untouched.
	assert.Equal(t, 2.0, z.Real())
	assert.Equal(t, -3.0, z.Imag())
}

func TestIsZero(t *testing.T) {
	assert.True(t, mustNew(t, 0, 0).IsZero())
	assert.True(t, mustNew(t, math.Copysign(0, -1), 0).IsZero())
	assert.False(t, mustNew(t, 0, 1e-300).IsZero())
}
