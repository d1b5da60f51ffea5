// Package rootfind implements the classic iterative root-finding methods:
// Fixed-Point Iteration, Newton-Raphson and the Secant method.
//
// 🚀 What is rootfind?
//
//	Three free functions sharing one output shape. Each runs a bounded
//	number of steps over an expr.Expr and records every iterate:
//	  • FixedPoint    — x_{k+1} = g(x_k)
//	  • NewtonRaphson — x_{k+1} = x_k − f(x_k)/f′(x_k), f′ obtained symbolically
//	  • Secant        — x_{k+1} = x_k − f(x_k)·(x_k−x_{k−1})/(f(x_k)−f(x_{k−1}))
//
// ✨ Key guarantees:
//   - Deterministic and pure: identical inputs yield identical records.
//   - Iteration continues at full float64 precision; only the stored
//     Approximation and RelativeError are rounded to Options.Precision.
//   - Newton-Raphson and Secant stop gracefully when their denominator
//     magnitude drops below 1e-10 and return the partial run as success.
//   - An evaluation failure (domain error in g or f, or in Newton's f′)
//     fails the whole call; no silently truncated record list.
//
// Behavioral note: FixedPoint leaves the first record's RelativeError nil
// (there is no previous iterate to compare against), while NewtonRaphson
// and Secant compute an error on every record, the first included, using
// the initial guess as the comparison point.
//
// ⚙️ Usage:
//
//	f, _ := expr.Parse("ln(x) - 1")
//	opts := rootfind.DefaultOptions()
//	recs, err := rootfind.NewtonRaphson(f, "x", 2, &opts)
//	// recs[len(recs)-1].Approximation ≈ 2.718282
//
// See examples in example_test.go.
package rootfind
