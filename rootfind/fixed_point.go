package rootfind

import (
	"fmt"

	"github.com/katalvlaran/numerix/expr"
	"github.com/katalvlaran/numerix/roundof"
)

// FixedPoint — Fixed-Point Iteration
//
// Description:
//
//	Iterates x_{k+1} = g(x_k) from the initial guess x0 and records every
//	iterate. For a g constructed so that its fixed points coincide with the
//	roots of f, the sequence approximates a root of f.
//
// Algorithm Outline:
//  1. Validate expression, options and x0 (sentinel errors, no evaluation yet).
//  2. For k = 1..Iterations:
//     x = g(x)                        // full float64 precision
//     stored = round(x, Precision)    // what the record carries
//     error  = |stored_k − stored_{k−1}| / |stored_k| · 100, rounded;
//     nil on the first record (no previous iterate) and when the
//     denominator is degenerate.
//  3. Return all Iterations records.
//
// There is no convergence cutoff: the loop always runs the full iteration
// count, however close consecutive iterates are.
//
// Complexity:
//
//	Time   = O(Iterations) evaluations of g
//	Memory = O(Iterations) records
//
// Errors:
//   - ErrNilExpression, ErrNonFiniteGuess, ErrIterationsRange, ErrPrecisionRange.
//   - Any evaluation failure of g fails the whole call; no partial record
//     list is returned.
func FixedPoint(g expr.Expr, variable string, x0 float64, opts *Options) ([]IterationRecord, error) {
	o, err := validate(g, opts, x0)
	if err != nil {
		return nil, err
	}

	records := make([]IterationRecord, 0, o.Iterations)
	vars := map[string]float64{variable: x0}
	x := x0
	var prevStored float64

	for k := 1; k <= o.Iterations; k++ {
		vars[variable] = x
		next, err := g.Eval(vars)
		if err != nil {
			return nil, fmt.Errorf("rootfind: fixed-point iteration %d at x=%v: %w", k, x, err)
		}

		stored := roundof.Round(next, o.Precision)
		rec := IterationRecord{Iteration: k, Approximation: stored}
		if k > 1 {
			if pct, ok := roundof.RelativeError(stored, prevStored); ok {
				rounded := roundof.Round(pct, o.Precision)
				rec.RelativeError = &rounded
			}
		}
		records = append(records, rec)

		prevStored = stored
		x = next
	}
	return records, nil
}
