// Package numkit is a small numeric kernel: exact rationals, complex
// numbers with cached polar form, dense matrix/vector linear algebra,
// and unit-aware angles — all plain value types with explicit errors.
//
// 🚀 What is numkit?
//
//	A modern, zero-surprise library that brings together:
//		• nums     — sign/zero classification & checked int64 arithmetic
//		• rational — canonical fractions with overflow-checked operations
//		• cplx     — complex values, branch-correct ln/exp/pow, all n-th roots
//		• matrix   — small dense matrices & vectors (det, inverse, powers)
//		• angle    — radians under the hood, any unit on the surface
//
// ✨ Why choose numkit?
//
//   - Exact where it can be – rationals never silently lose precision;
//     integer overflow is an error, not a wrap
//   - Honest where it can't – documented float fallbacks and epsilon policies
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, no global state, no randomness
//
// Everything is organized under five subpackages:
//
//	nums/     — scalar predicates, Sign/CopySign, checked Add/Sub/Mul/Pow, GCD
//	rational/ — Rational value type, continued-fraction FromFloat64, Parse
//	cplx/     — Complex value type, Ln/Log/Exp/Pow/Roots, Parse/String
//	matrix/   — Matrix & Vector, Det/Inverse/Pow, Dot/Cross/Mag
//	angle/    — Angle factories per unit, Wrap/Compare, trig, CSS & DMS forms
//
// Quick taste:
//
//	r, _ := rational.New(1, 3)
//	s, _ := rational.New(1, 6)
//	sum, _ := r.Add(s)            // 1/2, exactly
//
//	z, _ := cplx.New(0, math.Pi)
//	w, _ := z.Exp()               // -1 (Euler), exactly by shortcut
//
// Every operation that can fail returns a sentinel error matched with
// errors.Is; nothing panics on user input and nothing logs.
//
//	go get github.com/katalvlaran/numkit
package numkit
