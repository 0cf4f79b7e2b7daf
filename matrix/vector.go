package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numkit/nums"
)

// Vector is a 1-D companion to Matrix: a fixed-length slice of finite
// float64 values with the vector-only operations (dot, cross, norm).
// Row() and Column() expose it as a degenerate 1×n or n×1 Matrix.
type Vector struct {
	data []float64
}

// NewVector creates a zero vector of length n.
// Errors: ErrInvalidDimensions when n <= 0.
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]float64, n)}, nil
}

// VectorOf builds a vector from the given elements, copying the input.
// Errors: ErrInvalidDimensions for an empty input; ErrNaNInf for any
// non-finite element.
func VectorOf(elems ...float64) (*Vector, error) {
	if len(elems) == 0 {
		return nil, ErrInvalidDimensions
	}
	for i, v := range elems {
		if !nums.IsFinite(v) {
			return nil, fmt.Errorf("VectorOf: element %d: %w", i, ErrNaNInf)
		}
	}
	data := make([]float64, len(elems))
	copy(data, elems)

	return &Vector{data: data}, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// At returns the element at index i.
// Errors: ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set writes x at index i.
// Errors: ErrOutOfRange; ErrNaNInf for a non-finite x.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("index %d of %d: %w", i, len(v.data), ErrOutOfRange)
	}
	if !nums.IsFinite(x) {
		return ErrNaNInf
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp}
}

// ToSlice exports the elements, copying the data.
func (v *Vector) ToSlice() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Dot returns the inner product Σ vᵢ·oᵢ. Lengths must match.
// Errors: ErrNilMatrix for a nil operand; ErrDimensionMismatch.
func (v *Vector) Dot(o *Vector) (float64, error) {
	if o == nil {
		return 0, ErrNilMatrix
	}
	if len(v.data) != len(o.data) {
		return 0, fmt.Errorf("Dot: %d vs %d: %w", len(v.data), len(o.data), ErrDimensionMismatch)
	}
	var sum float64
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}

// Cross returns the standard 3-D cross product v × o.
// Errors: ErrNilMatrix; ErrCrossDimension unless both vectors have length 3.
func (v *Vector) Cross(o *Vector) (*Vector, error) {
	if o == nil {
		return nil, ErrNilMatrix
	}
	if len(v.data) != 3 || len(o.data) != 3 {
		return nil, ErrCrossDimension
	}
	a, b := v.data, o.data

	return &Vector{data: []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// Mag returns the Euclidean norm, defined for any length.
func (v *Vector) Mag() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Equal reports elementwise equality within eps; lengths must match.
func (v *Vector) Equal(o *Vector, eps float64) bool {
	if o == nil || len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if math.Abs(v.data[i]-o.data[i]) > eps {
			return false
		}
	}

	return true
}

// Row returns the vector as a 1×n matrix view (copied, not aliased).
func (v *Vector) Row() *Matrix {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Matrix{r: 1, c: len(v.data), data: cp}
}

// Column returns the vector as an n×1 matrix view (copied, not aliased).
func (v *Vector) Column() *Matrix {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Matrix{r: len(v.data), c: 1, data: cp}
}

// String renders "[v0, v1, ...]" with %g formatting.
func (v *Vector) String() string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = fmt.Sprintf("%g", x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
