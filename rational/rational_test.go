// Package rational_test: canonical-form and constructor behavior.
package rational_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/nums"
	"github.com/katalvlaran/numkit/rational"
)

// mustNew fails the test on a constructor error.
func mustNew(t *testing.T, num, den int64) rational.Rational {
	t.Helper()
	r, err := rational.New(num, den)
	require.NoError(t, err, "New(%d, %d)", num, den)

	return r
}

func TestNew_CanonicalForm(t *testing.T) {
	for _, tc := range []struct {
		name             string
		num, den         int64
		wantNum, wantDen int64
	}{
		{"already reduced", 3, 4, 3, 4},
		{"reduce", 6, 8, 3, 4},
		{"negative denominator", 6, -8, -3, 4},
		{"both negative", -6, -8, 3, 4},
		{"zero collapses to 0/1", 0, -17, 0, 1},
		{"integer keeps den 1", -12, 3, -4, 1},
		{"min over min is one", math.MinInt64, math.MinInt64, 1, 1},
		{"min numerator reducible", math.MinInt64, 6, -(int64(1) << 62), 3},
		{"min numerator odd den stays", math.MinInt64, 3, math.MinInt64, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := mustNew(t, tc.num, tc.den)
			assert.Equal(t, tc.wantNum, r.Num())
			assert.Equal(t, tc.wantDen, r.Den())
		})
	}
}

func TestNew_Invariants(t *testing.T) {
	// den > 0 and gcd(|num|, den) == 1 for a spread of constructible inputs.
	inputs := []struct{ num, den int64 }{
		{6, -8}, {-3, 4}, {100, 250}, {7, 7}, {0, 9}, {-9, -12}, {1, math.MaxInt64},
	}
	for _, in := range inputs {
		r := mustNew(t, in.num, in.den)
		assert.Positive(t, r.Den())
		g, err := nums.GCD(r.Num(), r.Den())
		require.NoError(t, err)
		if r.Num() != 0 {
			assert.Equal(t, int64(1), g, "gcd(|%d|, %d)", r.Num(), r.Den())
		}
	}

	// Rational(6,-8) must equal Rational(-3,4).
	assert.True(t, mustNew(t, 6, -8).Equal(mustNew(t, -3, 4)))
}

func TestNew_Errors(t *testing.T) {
	_, err := rational.New(1, 0)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)

	// 5/MinInt64 would need denominator 2^63 after the sign fix.
	_, err = rational.New(5, math.MinInt64)
	assert.ErrorIs(t, err, rational.ErrRange)

	// MinInt64/-3 would need numerator 2^63.
	_, err = rational.New(math.MinInt64, -3)
	assert.ErrorIs(t, err, rational.ErrRange)

	// A shared factor of two rescues the same magnitudes.
	r, err := rational.New(math.MinInt64, -2)
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, r.Num())
	assert.Equal(t, int64(1), r.Den())
}

func TestStringAndFloat64(t *testing.T) {
	assert.Equal(t, "3/4", mustNew(t, 6, 8).String())
	assert.Equal(t, "-3/4", mustNew(t, 6, -8).String())
	assert.Equal(t, "5", mustNew(t, 5, 1).String())
	assert.Equal(t, "0", rational.Zero.String())
	assert.InDelta(t, 0.75, mustNew(t, 3, 4).Float64(), 0)
	assert.InDelta(t, -1.5, mustNew(t, -3, 2).Float64(), 0)
}
