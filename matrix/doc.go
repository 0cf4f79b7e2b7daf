// Package matrix implements small dense matrices and vectors over float64.
//
// What:
//
//   - Matrix: a rectangular row-major array, shape fixed at construction.
//   - Vector: a 1-D companion type with dot/cross/norm, convertible to a
//     single-row or single-column Matrix view.
//   - Elementwise Add/Sub/Hadamard, scalar Scale/DivScalar, the standard
//     triple-loop product Mul, Transpose and Trace.
//   - Det by recursive cofactor expansion, Inverse via the adjugate, and
//     integer Pow by exponentiation by squaring.
//
// Why cofactors and not LU: the intended inputs are tiny (2×2 .. 5×5 or so,
// transformation and test matrices), where the closed-form base cases and
// the exact adjugate path are simpler and plenty fast. Det is O(n!) and the
// package makes no attempt to scale past small n.
//
// Numeric policy:
//
//   - Every ingestion path (New, FromRows, Set, Scale, ...) rejects NaN and
//     ±Inf with ErrNaNInf; a constructed Matrix holds only finite values.
//   - Inverse computes the determinant first and refuses near-singular
//     input: |det| < SingularEps is ErrSingular, not a huge-valued result.
//   - Operations return new matrices; operands are never mutated. Only
//     Set and Vector.Set write in place.
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has rows <= 0 or cols <= 0.
//   - ErrRagged: FromRows input rows have differing lengths.
//   - ErrOutOfRange: At/Set index outside the shape.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrNonSquare: Det/Inverse/Pow/Trace on a non-square matrix.
//   - ErrSingular: Inverse/Div/negative Pow on a (near-)singular matrix.
//   - ErrCrossDimension: Cross on vectors that are not length 3.
//
// All failures are returned as errors matched via errors.Is; nothing panics
// on user input.
package matrix
