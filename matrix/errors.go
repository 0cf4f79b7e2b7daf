// Package matrix: sentinel error set.
// Every message carries the "matrix: ..." prefix; algorithms return these
// sentinels (optionally wrapped with an operation tag via opErrorf) and
// callers match them with errors.Is. No function panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates a requested shape with rows <= 0 or cols <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged indicates FromRows input whose rows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates a row or column index outside the matrix shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse (and operations built on it) when
	// |det| < SingularEps.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value at an ingestion point (New,
	// FromRows, Set, scalar operands). Matrices hold only finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDivisionByZero is returned by DivScalar for a zero divisor.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrCrossDimension is returned by Cross when either vector is not length 3.
	ErrCrossDimension = errors.New("matrix: cross product requires length-3 vectors")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
