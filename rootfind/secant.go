package rootfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerix/expr"
	"github.com/katalvlaran/numerix/roundof"
)

// Secant — Secant method
//
// Description:
//
//	Newton-like iteration replacing the derivative with the finite slope
//	through the two most recent iterates:
//
//	  x_{k+1} = x_k − f(x_k)·(x_k − x_{k−1}) / (f(x_k) − f(x_{k−1}))
//
//	starting from two initial guesses x0 and x1.
//
// Algorithm Outline:
//  1. Validate inputs (both guesses must be finite).
//  2. For k = 1..Iterations:
//     fa = f(x0);  fb = f(x1)         // either failure fails the call
//     if |fb − fa| < SecantEpsilon: stop — partial run returned as success
//     next = x1 − fb·(x1 − x0)/(fb − fa)
//     x0, x1 = x1, next
//     record round(next, Precision) with its relative error (computed on
//     every record, the first included, against the previous stored
//     value — initially round(x1, Precision)).
//  3. Return the accumulated records.
//
// Complexity:
//
//	Time   = O(Iterations), two evaluations of f per step
//	Memory = O(Iterations) records
//
// Errors:
//   - ErrNilExpression, ErrNonFiniteGuess, ErrIterationsRange, ErrPrecisionRange.
//   - Any evaluation failure of f fails the whole call.
//   - A near-equal pair f(x0) ≈ f(x1) is NOT an error; it ends the run
//     early with however many records were produced (possibly none).
func Secant(f expr.Expr, variable string, x0, x1 float64, opts *Options) ([]IterationRecord, error) {
	o, err := validate(f, opts, x0, x1)
	if err != nil {
		return nil, err
	}

	records := make([]IterationRecord, 0, o.Iterations)
	vars := map[string]float64{}
	a, b := x0, x1
	prevStored := roundof.Round(x1, o.Precision)

	for k := 1; k <= o.Iterations; k++ {
		vars[variable] = a
		fa, err := f.Eval(vars)
		if err != nil {
			return nil, fmt.Errorf("rootfind: secant iteration %d, f(%v): %w", k, a, err)
		}
		vars[variable] = b
		fb, err := f.Eval(vars)
		if err != nil {
			return nil, fmt.Errorf("rootfind: secant iteration %d, f(%v): %w", k, b, err)
		}
		if math.Abs(fb-fa) < SecantEpsilon {
			break
		}

		next := b - fb*(b-a)/(fb-fa)
		stored := roundof.Round(next, o.Precision)
		rec := IterationRecord{Iteration: k, Approximation: stored}
		if pct, ok := roundof.RelativeError(stored, prevStored); ok {
			rounded := roundof.Round(pct, o.Precision)
			rec.RelativeError = &rounded
		}
		records = append(records, rec)

		a, b = b, next
		prevStored = stored
	}
	return records, nil
}
