// Package matrix: determinant, inverse, and integer powers.
// Det uses recursive cofactor (Laplace) expansion along the first row with
// closed-form 1×1 and 2×2 base cases. It is O(n!) and intended for the
// small matrices this package targets; Inverse builds the adjugate from the
// same cofactors and divides by the determinant.

package matrix

import "math"

// Det returns the determinant.
//
// Implementation: Laplace expansion along row 0, recursing on first-row
// minors. Base cases n=1 and n=2 are closed-form.
//
// Errors: ErrNonSquare for a non-square receiver.
// Complexity: O(n!) time, O(n²) space for minors.
func (m *Matrix) Det() (float64, error) {
	if !m.IsSquare() {
		return 0, opErrorf(opDet, ErrNonSquare)
	}

	return m.det(), nil
}

// det computes the determinant of a square receiver, no validation.
func (m *Matrix) det() float64 {
	n := m.r
	switch n {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	var (
		sum  float64
		sign = 1.0
	)
	for j := 0; j < n; j++ {
		if a := m.data[j]; a != 0 {
			sum += sign * a * m.minor(0, j).det()
		}
		sign = -sign
	}

	return sum
}

// minor returns the (n-1)×(n-1) submatrix with row i and column j removed.
func (m *Matrix) minor(i, j int) *Matrix {
	n := m.r
	sub := &Matrix{r: n - 1, c: n - 1, data: make([]float64, (n-1)*(n-1))}
	idx := 0
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		for c := 0; c < n; c++ {
			if c == j {
				continue
			}
			sub.data[idx] = m.data[r*n+c]
			idx++
		}
	}

	return sub
}

// Inverse returns m⁻¹ via the adjugate: adj(m)/det(m).
//
// The determinant is computed first; a magnitude below SingularEps is
// treated as singular and refused, so the result never silently explodes
// into huge near-nonsense values.
//
// Errors: ErrNonSquare; ErrSingular when |det| < SingularEps.
// Complexity: O(n²·(n-1)!) cofactor evaluations.
func (m *Matrix) Inverse() (*Matrix, error) {
	if !m.IsSquare() {
		return nil, opErrorf(opInverse, ErrNonSquare)
	}
	d := m.det()
	if math.Abs(d) < SingularEps {
		return nil, opErrorf(opInverse, ErrSingular)
	}

	n := m.r
	if n == 1 {
		return &Matrix{r: 1, c: 1, data: []float64{1 / d}}, nil
	}

	// Adjugate: transposed cofactor matrix, i.e. out[j][i] = C(i,j).
	out := &Matrix{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cof := m.minor(i, j).det()
			if (i+j)%2 == 1 {
				cof = -cof
			}
			out.data[j*n+i] = cof / d
		}
	}

	return out, nil
}

// Pow returns the k-th matrix power.
//
// k == 0 yields the identity; k < 0 inverts first and raises the inverse to
// -k; k > 0 uses exponentiation by squaring, O(log k) multiplications.
//
// Errors: ErrNonSquare; ErrNonSquare/ErrSingular from Inverse for k < 0.
func (m *Matrix) Pow(k int) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, opErrorf(opPow, ErrNonSquare)
	}
	if k < 0 {
		inv, err := m.Inverse()
		if err != nil {
			return nil, opErrorf(opPow, err)
		}
		if k == math.MinInt {
			// -k is unrepresentable; peel one factor and square-raise the rest.
			p, err := inv.Pow(-(k + 1))
			if err != nil {
				return nil, err
			}

			return inv.Mul(p)
		}

		return inv.Pow(-k)
	}

	result, err := Identity(m.r)
	if err != nil {
		return nil, opErrorf(opPow, err)
	}
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return nil, opErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = base.Mul(base); err != nil {
				return nil, opErrorf(opPow, err)
			}
		}
	}

	return result, nil
}
