// Package cplx implements a complex value type with finite components,
// cached polar form, branch-correct transcendental functions and a
// forgiving string grammar.
//
// Why not complex128? Three behaviors the builtin cannot carry:
//
//   - Components are guaranteed finite. Construction and every mutation
//     reject NaN/±Inf, and arithmetic re-validates results, so a float
//     overflow surfaces as ErrNonFinite instead of propagating silently.
//   - Magnitude and phase are computed once and cached. The cache sits
//     behind a single dirty flag cleared only by the one mutation path
//     (SetReal/SetImag), so the invalidation discipline cannot be bypassed.
//   - Equality is tolerance-based (per-component epsilon, defaulting to one
//     machine epsilon), never bitwise.
//
// Transcendentals return the principal value only; use Roots(n) when all
// branches are needed. Well-known inputs (1, 2, e, π, 10; Euler's iπ) take
// exact shortcuts so that, e.g., Exp of iπ is -1 with no trigonometric
// noise at all.
package cplx
