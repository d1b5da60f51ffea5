// Package numerix is your in-memory playground for textbook numerical
// approximations: iterative root-finding and finite-difference derivatives
// over algebraic expressions in one variable.
//
// 🚀 What is numerix?
//
//	A small, pure-computation library that brings together:
//		• Expression engine: parse, evaluate & symbolically differentiate
//		  elementary expressions (expr)
//		• Root-finding: Fixed-Point Iteration, Newton-Raphson, Secant (rootfind)
//		• Derivative approximation: forward, backward & centered finite
//		  differences with a symbolic reference (finitediff)
//		• Shared rounding, relative-error & severity helpers (roundof)
//
// ✨ Why choose numerix?
//
//   - Deterministic – every function is pure; identical inputs, identical output
//   - Honest failure modes – parse, domain and validation errors are
//     distinguishable sentinels; degeneracies terminate gracefully
//   - Bounded – iteration counts and precision are validated at the boundary
//   - Pure Go – no cgo, no hidden deps in the library packages
//
// Everything is organized under four subpackages plus one binary:
//
//	expr/       — expression parsing, evaluation, symbolic differentiation
//	rootfind/   — FixedPoint, NewtonRaphson, Secant
//	finitediff/ — Approximate (three stencils + symbolic reference)
//	roundof/    — Round, RelativeError, Classify
//	cmd/numerix — CLI: severity-colored tables and CSV export
//
// Quick example:
//
//	f, _ := expr.Parse("ln(x) - 1")
//	recs, _ := rootfind.NewtonRaphson(f, "x", 2, nil)
//	// the root of ln(x)-1 is e: recs converge toward 2.718282
//
// See each subpackage's doc.go and example_test.go for details.
package numerix
