// Package expr parses, evaluates and symbolically differentiates
// single-variable algebraic expressions.
//
// 🚀 What is expr?
//
//	A small, deterministic expression engine covering the elementary
//	functions used in numerical analysis:
//	  • Arithmetic: + - * / and right-associative ^
//	  • Functions: sin, cos, tan, asin, acos, atan, exp, ln, log, log10, sqrt, abs
//	  • Constants: e, pi
//	  • Exact symbolic differentiation via the standard rule set
//	    (linearity, product, quotient, chain, generalized power rule)
//
// ✨ Key guarantees:
//   - Parse errors and evaluation (domain) errors are distinguishable:
//     ErrSyntax / ErrUnknownFunction vs ErrDomain / ErrUnboundVariable.
//   - Evaluation never returns NaN or ±Inf; such results surface as ErrDomain.
//   - Diff is total: every parseable expression has a derivative expression.
//   - Expressions are immutable; Eval and Diff are pure.
//
// ⚙️ Usage:
//
//	f, err := expr.Parse("ln(x) - 1")
//	if err != nil { ... }
//
//	y, err := f.Eval(map[string]float64{"x": 2})   // ≈ -0.306853
//	df := f.Diff("x")                              // 1/x
//	slope, err := df.Eval(map[string]float64{"x": 2})
//
// See examples in example_test.go.
package expr
