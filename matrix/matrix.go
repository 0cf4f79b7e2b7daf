package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numkit/nums"
)

// SingularEps is the near-singularity threshold: Inverse refuses any matrix
// whose determinant magnitude falls below it.
const SingularEps = 1e-10

// Matrix is a rectangular row-major array of float64 values.
// The shape is fixed at construction; data holds r*c elements.
type Matrix struct {
	r, c int
	data []float64
}

// New creates an r×c zero matrix.
// Errors: ErrInvalidDimensions when rows <= 0 or cols <= 0.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a matrix from nested row slices, copying the input.
//
// Inputs:
//   - rows: at least one row, every row the same non-zero length, all
//     elements finite.
//
// Errors:
//   - ErrInvalidDimensions: no rows, or the first row is empty.
//   - ErrRagged: a later row differs in length from the first.
//   - ErrNaNInf: any element is NaN or ±Inf.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	var (
		r = len(rows)
		c = len(rows[0])
	)
	m := &Matrix{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d: %w", i, ErrRagged)
		}
		for j := 0; j < c; j++ {
			v := rows[i][j]
			if !nums.IsFinite(v) {
				return nil, fmt.Errorf("FromRows: (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// IsSquare reports whether the matrix has equal row and column counts.
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// indexOf converts (row, col) to a flat offset, bounds-checked.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v at (row, col).
// Errors: ErrOutOfRange; ErrNaNInf for a non-finite v.
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if !nums.IsFinite(v) {
		return ErrNaNInf
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// ToRows exports the elements as nested row slices, copying the data.
// FromRows(m.ToRows()) reproduces m.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Equal reports exact elementwise equality of shape and values.
func (m *Matrix) Equal(o *Matrix) bool {
	return m.EqualTol(o, 0)
}

// EqualTol reports elementwise equality within eps. Shapes must match.
func (m *Matrix) EqualTol(o *Matrix, eps float64) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if math.Abs(m.data[i]-o.data[i]) > eps {
			return false
		}
	}

	return true
}

// String renders a fixed-width, right-aligned bracketed grid:
//
//	[  1    2.5 ]
//	[ -3   10   ]
//
// Column widths are padded to the widest cell so rows line up.
func (m *Matrix) String() string {
	cells := make([]string, len(m.data))
	width := 0
	for i, v := range m.data {
		cells[i] = fmt.Sprintf("%g", v)
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}

	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf(" %*s", width, cells[i*m.c+j]))
		}
		b.WriteString(" ]")
		if i < m.r-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
