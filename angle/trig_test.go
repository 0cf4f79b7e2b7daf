package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrig_Basics(t *testing.T) {
	a := FromDegrees(30)
	assert.InDelta(t, 0.5, a.Sin(), 1e-15)
	assert.InDelta(t, math.Sqrt(3)/2, a.Cos(), 1e-15)
	assert.InDelta(t, 1/math.Sqrt(3), a.Tan(), 1e-15)

	assert.InDelta(t, 2/math.Sqrt(3), a.Sec(), 1e-15)
	assert.InDelta(t, 2, a.Csc(), 1e-14)
	assert.InDelta(t, math.Sqrt(3), a.Cot(), 1e-14)
}

// At π/2 the cosine is not exactly zero in floats but epsilon-near it; the
// pole policy yields a signed infinity keyed to the sine, never an error or
// a huge finite value.
func TestTan_PoleSignedInfinity(t *testing.T) {
	up := FromRadians(math.Pi / 2)
	assert.True(t, math.IsInf(up.Tan(), 1), "tan(π/2) = %v", up.Tan())

	down := FromRadians(-math.Pi / 2)
	assert.True(t, math.IsInf(down.Tan(), -1), "tan(-π/2) = %v", down.Tan())
}

func TestSecCscCot_Poles(t *testing.T) {
	// sec(π/2): cosine epsilon-near zero from the positive side.
	assert.True(t, math.IsInf(FromRadians(math.Pi/2).Sec(), 1))

	// csc(0): sine is exactly +0.
	assert.True(t, math.IsInf(FromRadians(0).Csc(), 1))

	// csc(-0): IEEE signed zero flips the pole's side.
	assert.True(t, math.IsInf(FromRadians(math.Copysign(0, -1)).Csc(), -1))

	// cot(0) follows the sine's zero sign with the cosine's sign on top.
	assert.True(t, math.IsInf(FromRadians(0).Cot(), 1))
	assert.True(t, math.IsInf(FromRadians(math.Copysign(0, -1)).Cot(), -1))

	// cot(π): sin(π) is a tiny positive number under eps, cos(π) is -1.
	assert.True(t, math.IsInf(FromRadians(math.Pi).Cot(), -1))
}

func TestHyperbolic(t *testing.T) {
	a := FromRadians(1)
	assert.InDelta(t, math.Sinh(1), a.Sinh(), 1e-15)
	assert.InDelta(t, math.Cosh(1), a.Cosh(), 1e-15)
	assert.InDelta(t, math.Tanh(1), a.Tanh(), 1e-15)
	assert.InDelta(t, 1/math.Cosh(1), a.Sech(), 1e-15)
	assert.InDelta(t, 1/math.Sinh(1), a.Csch(), 1e-15)
	assert.InDelta(t, math.Cosh(1)/math.Sinh(1), a.Coth(), 1e-15)

	// Poles at zero for the odd reciprocals.
	assert.True(t, math.IsInf(FromRadians(0).Csch(), 1))
	assert.True(t, math.IsInf(FromRadians(0).Coth(), 1))
	assert.True(t, math.IsInf(FromRadians(math.Copysign(0, -1)).Csch(), -1))

	// Sech has no pole: cosh >= 1 everywhere.
	assert.Equal(t, 1.0, FromRadians(0).Sech())
}
