// Package nums provides the scalar primitives the rest of numkit is built
// on: sign and signed-zero classification, checked int64 arithmetic, and a
// greatest-common-divisor helper.
//
// Two design rules hold everywhere:
//
//   - Overflow is an error, never a silent wrap. Add/Sub/Mul/Pow return
//     the exact mathematical result or ErrOverflow — there is no float
//     promotion and no truncation.
//   - IEEE-754 signed zero is a first-class citizen. IsNegativeZero and
//     friends probe the sign of zero via 1/x division (−0 → −Inf), which is
//     intentional, well-defined float behavior — not a division error.
//
// The generic type sets (Signed, Unsigned, Integer, Float, Number) resolve
// "is this a number?" questions at compile time; no runtime type inspection
// exists anywhere in numkit.
package nums
