package cplx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLn(t *testing.T) {
	cases := []struct {
		name           string
		re, im         float64
		wantRe, wantIm float64
	}{
		{"one", 1, 0, 0, 0},
		{"two", 2, 0, math.Ln2, 0},
		{"e", math.E, 0, 1, 0},
		{"pi", math.Pi, 0, lnPi, 0},
		{"ten", 10, 0, math.Ln10, 0},
		{"i", 0, 1, 0, math.Pi / 2},
		{"negative real", -1, 0, 0, math.Pi},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			z := mustNew(t, tc.re, tc.im)
			got, err := z.Ln()
			require.NoError(t, err)
			assert.Equal(t, tc.wantRe, got.Real())
			assert.Equal(t, tc.wantIm, got.Imag())
		})
	}
}

func TestLn_Zero(t *testing.T) {
	_, err := mustNew(t, 0, 0).Ln()
	assert.ErrorIs(t, err, ErrLogOfZero)
}

func TestLn_GeneralBranch(t *testing.T) {
	z := mustNew(t, -3, -4)
	got, err := z.Ln()
	require.NoError(t, err)
	assert.InDelta(t, math.Log(5), got.Real(), 1e-15)
	assert.InDelta(t, math.Atan2(-4, -3), got.Imag(), 1e-15)
	// Principal branch keeps arg in (-π, π].
	assert.LessOrEqual(t, got.Imag(), math.Pi)
	assert.Greater(t, got.Imag(), -math.Pi)
}

func TestLog(t *testing.T) {
	e := mustNew(t, math.E, 0)

	two, err := e.Log(mustNew(t, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, math.Log2E, two.Real())

	ten, err := e.Log(mustNew(t, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, math.Log10E, ten.Real())

	// Base e is plain Ln.
	same, err := mustNew(t, 7, 0).Log(e)
	require.NoError(t, err)
	assert.Equal(t, math.Log(7), same.Real())

	// General change of base: log₂(8) = 3.
	eight, err := mustNew(t, 8, 0).Log(mustNew(t, 2, 0))
	require.NoError(t, err)
	assert.InDelta(t, 3, eight.Real(), 1e-15)
	assert.InDelta(t, 0, eight.Imag(), 1e-15)
}

func TestLog_BadBase(t *testing.T) {
	z := mustNew(t, 5, 0)
	_, err := z.Log(mustNew(t, 0, 0))
	assert.ErrorIs(t, err, ErrLogBase)
	_, err = z.Log(mustNew(t, 1, 0))
	assert.ErrorIs(t, err, ErrLogBase)
}

func TestExp(t *testing.T) {
	cases := []struct {
		name           string
		re, im         float64
		wantRe, wantIm float64
	}{
		{"zero", 0, 0, 1, 0},
		{"ln2", math.Ln2, 0, 2, 0},
		{"one", 1, 0, math.E, 0},
		{"ln10", math.Ln10, 0, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mustNew(t, tc.re, tc.im).Exp()
			require.NoError(t, err)
			assert.Equal(t, tc.wantRe, got.Real())
			assert.Equal(t, tc.wantIm, got.Imag())
		})
	}
}

// exp(iπ) = -1 exactly, not merely within epsilon.
func TestExp_EulerIdentity(t *testing.T) {
	got, err := mustNew(t, 0, math.Pi).Exp()
	require.NoError(t, err)
	assert.Equal(t, -1.0, got.Real())
	assert.Equal(t, 0.0, got.Imag())
}

func TestExp_General(t *testing.T) {
	got, err := mustNew(t, 1, math.Pi/2).Exp()
	require.NoError(t, err)
	assert.InDelta(t, 0, got.Real(), 1e-15)
	assert.InDelta(t, math.E, got.Imag(), 1e-15)
}

func TestExp_Overflow(t *testing.T) {
	_, err := mustNew(t, 1e6, 1).Exp()
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestPow(t *testing.T) {
	t.Run("zero to zero is one", func(t *testing.T) {
		got, err := mustNew(t, 0, 0).Pow(mustNew(t, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.Real())
	})

	t.Run("zero base negative exponent", func(t *testing.T) {
		_, err := mustNew(t, 0, 0).Pow(mustNew(t, -2, 0))
		assert.ErrorIs(t, err, ErrZeroBase)
	})

	t.Run("zero base complex exponent", func(t *testing.T) {
		_, err := mustNew(t, 0, 0).Pow(mustNew(t, 1, 1))
		assert.ErrorIs(t, err, ErrZeroBase)
	})

	t.Run("zero base positive exponent", func(t *testing.T) {
		got, err := mustNew(t, 0, 0).Pow(mustNew(t, 3, 0))
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("exponent one copies", func(t *testing.T) {
		z := mustNew(t, 2, 3)
		got, err := z.Pow(mustNew(t, 1, 0))
		require.NoError(t, err)
		assert.True(t, got.Equal(z))
		assert.NotSame(t, z, got)
	})

	t.Run("i squared is exactly minus one", func(t *testing.T) {
		got, err := I().Pow(mustNew(t, 2, 0))
		require.NoError(t, err)
		assert.Equal(t, -1.0, got.Real())
		assert.Equal(t, 0.0, got.Imag())
	})

	t.Run("real power", func(t *testing.T) {
		got, err := mustNew(t, 2, 0).Pow(mustNew(t, 10, 0))
		require.NoError(t, err)
		assert.InDelta(t, 1024, got.Real(), 1e-11)
	})

	t.Run("i to the i is real", func(t *testing.T) {
		got, err := I().Pow(I())
		require.NoError(t, err)
		assert.InDelta(t, math.Exp(-math.Pi/2), got.Real(), 1e-15)
		assert.InDelta(t, 0, got.Imag(), 1e-15)
	})
}

func TestRoots(t *testing.T) {
	// Cube roots of -8: principal 1 + i√3, then -2, then 1 - i√3.
	z := mustNew(t, -8, 0)
	roots, err := z.Roots(3)
	require.NoError(t, err)
	require.Len(t, roots, 3)

	assert.InDelta(t, 1, roots[0].Real(), 1e-14)
	assert.InDelta(t, math.Sqrt(3), roots[0].Imag(), 1e-14)
	assert.InDelta(t, -2, roots[1].Real(), 1e-14)
	assert.InDelta(t, 0, roots[1].Imag(), 1e-14)
	assert.InDelta(t, 1, roots[2].Real(), 1e-14)
	assert.InDelta(t, -math.Sqrt(3), roots[2].Imag(), 1e-14)

	// Each root cubes back to z.
	for _, r := range roots {
		back, cerr := r.Cube()
		require.NoError(t, cerr)
		assert.InDelta(t, -8, back.Real(), 1e-12)
		assert.InDelta(t, 0, back.Imag(), 1e-12)
	}
}

func TestRoots_Errors(t *testing.T) {
	z := mustNew(t, 1, 0)
	_, err := z.Roots(0)
	assert.ErrorIs(t, err, ErrBadRootOrder)
	_, err = z.Roots(-2)
	assert.ErrorIs(t, err, ErrBadRootOrder)
}

func TestRoots_Zero(t *testing.T) {
	roots, err := mustNew(t, 0, 0).Roots(5)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.True(t, roots[0].IsZero())
}

func TestSqrtSqr(t *testing.T) {
	z := mustNew(t, 3, 4)
	s, err := z.Sqrt()
	require.NoError(t, err)
	// sqrt(3+4i) = 2+i.
	assert.InDelta(t, 2, s.Real(), 1e-14)
	assert.InDelta(t, 1, s.Imag(), 1e-14)

	back, err := s.Sqr()
	require.NoError(t, err)
	assert.InDelta(t, 3, back.Real(), 1e-13)
	assert.InDelta(t, 4, back.Imag(), 1e-13)
}

func TestCbrtCube(t *testing.T) {
	z := mustNew(t, 27, 0)
	c, err := z.Cbrt()
	require.NoError(t, err)
	assert.InDelta(t, 3, c.Real(), 1e-13)
	assert.InDelta(t, 0, c.Imag(), 1e-13)
}

// Ln and Exp are mutual inverses on the principal strip.
func TestExpLn_RoundTrip(t *testing.T) {
	points := []*Complex{
		mustNew(t, 1, 1),
		mustNew(t, -2, 3),
		mustNew(t, 0.5, -0.25),
	}
	for _, z := range points {
		ln, err := z.Ln()
		require.NoError(t, err)
		back, err := ln.Exp()
		require.NoError(t, err)
		assert.True(t, z.EqualTol(back, 1e-12), "round trip for %s gave %s", z, back)
	}
}
