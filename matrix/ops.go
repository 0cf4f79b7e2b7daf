// Package matrix: elementwise and product kernels.
// All kernels validate fail-fast, allocate exactly one result matrix, keep
// deterministic i→j loop order, and never mutate their operands.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/numkit/nums"
)

// Operation tags for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opDiv       = "Div"
	opDivScalar = "DivScalar"
	opHadamard  = "Hadamard"
	opTrace     = "Trace"
	opDet       = "Det"
	opInverse   = "Inverse"
	opPow       = "Pow"
)

// opErrorf wraps a non-nil err with an operation tag, preserving errors.Is.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sameShape validates a binary elementwise pair.
func (m *Matrix) sameShape(o *Matrix) error {
	if o == nil {
		return ErrNilMatrix
	}
	if m.r != o.r || m.c != o.c {
		return fmt.Errorf("%dx%d vs %dx%d: %w", m.r, m.c, o.r, o.c, ErrDimensionMismatch)
	}

	return nil
}

// addSub computes out = m + sign*o over the flat backing slices.
func (m *Matrix) addSub(o *Matrix, sign float64, tag string) (*Matrix, error) {
	if err := m.sameShape(o); err != nil {
		return nil, opErrorf(tag, err)
	}
	out := &Matrix{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] + sign*o.data[i]
	}

	return out, nil
}

// Add returns m + o. Shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) { return m.addSub(o, 1, opAdd) }

// Sub returns m - o. Shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) { return m.addSub(o, -1, opSub) }

// Mul returns the matrix product m·o by the standard triple loop.
//
// Inputs: o with o.Rows() == m.Cols().
// Returns: a fresh m.Rows()×o.Cols() matrix.
// Errors: ErrNilMatrix; ErrDimensionMismatch on an inner-dimension mismatch.
// Complexity: O(rows·cols·inner).
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if o == nil {
		return nil, opErrorf(opMul, ErrNilMatrix)
	}
	if m.c != o.r {
		return nil, opErrorf(opMul,
			fmt.Errorf("%dx%d · %dx%d: %w", m.r, m.c, o.r, o.c, ErrDimensionMismatch))
	}
	out := &Matrix{r: m.r, c: o.c, data: make([]float64, m.r*o.c)}
	for i := 0; i < m.r; i++ {
		for j := 0; j < o.c; j++ {
			var sum float64
			for k := 0; k < m.c; k++ {
				sum += m.data[i*m.c+k] * o.data[k*o.c+j]
			}
			out.data[i*o.c+j] = sum
		}
	}

	return out, nil
}

// Scale returns m with every element multiplied by s.
// Errors: ErrNaNInf for a non-finite s.
func (m *Matrix) Scale(s float64) (*Matrix, error) {
	if !nums.IsFinite(s) {
		return nil, opErrorf(opScale, ErrNaNInf)
	}
	out := &Matrix{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] * s
	}

	return out, nil
}

// DivScalar returns m scaled by 1/s.
// Errors: ErrDivisionByZero for s == 0; ErrNaNInf for a non-finite s.
func (m *Matrix) DivScalar(s float64) (*Matrix, error) {
	if s == 0 {
		return nil, opErrorf(opDivScalar, ErrDivisionByZero)
	}
	if !nums.IsFinite(s) {
		return nil, opErrorf(opDivScalar, ErrNaNInf)
	}

	return m.Scale(1 / s)
}

// Div returns m·o⁻¹, the matrix analogue of division.
// Errors: ErrNilMatrix; ErrNonSquare or ErrSingular from the inversion;
// ErrDimensionMismatch when m.Cols() != o.Rows().
func (m *Matrix) Div(o *Matrix) (*Matrix, error) {
	if o == nil {
		return nil, opErrorf(opDiv, ErrNilMatrix)
	}
	inv, err := o.Inverse()
	if err != nil {
		return nil, opErrorf(opDiv, err)
	}

	return m.Mul(inv)
}

// Transpose returns mᵀ. Always succeeds.
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Hadamard returns the elementwise product m ∘ o. Shapes must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Hadamard(o *Matrix) (*Matrix, error) {
	if err := m.sameShape(o); err != nil {
		return nil, opErrorf(opHadamard, err)
	}
	out := &Matrix{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] * o.data[i]
	}

	return out, nil
}

// Trace returns the sum of the main diagonal.
// Errors: ErrNonSquare.
func (m *Matrix) Trace() (float64, error) {
	if !m.IsSquare() {
		return 0, opErrorf(opTrace, ErrNonSquare)
	}
	var sum float64
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}
