// Package finitediff approximates the derivative of an expression at a
// point with the three classic difference stencils, and compares each
// against the exact symbolic derivative when one can be evaluated.
//
//	forward  = (f(x+h) − f(x)) / h
//	backward = (f(x) − f(x−h)) / h
//	centered = (f(x+h) − f(x−h)) / 2h
//
// ✨ Key guarantees:
//   - A failure to evaluate f at x, x+h or x−h fails the whole call;
//     partial difference sets are never returned.
//   - The symbolic reference is best-effort: when the derivative cannot
//     be evaluated at x, Result.Symbolic and all three error fields are
//     nil and the call still succeeds.
//   - Result.Symbolic == nil always implies all three error fields are nil.
//   - Every numeric output is rounded to Options.Precision digits.
//
// ⚙️ Usage:
//
//	f, _ := expr.Parse("x^2 + 3*x + 2")
//	opts := finitediff.DefaultOptions()
//	res, err := finitediff.Approximate(f, "x", 1, &opts)
//	// res.Centered ≈ 5, res.Symbolic → 5
//
// See examples in example_test.go.
package finitediff
