package rootfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerix/expr"
	"github.com/katalvlaran/numerix/roundof"
)

// NewtonRaphson — Newton-Raphson method
//
// Description:
//
//	Iterates x_{k+1} = x_k − f(x_k)/f′(x_k) from the initial guess x0.
//	The derivative is obtained symbolically (expr.Expr.Diff) once per call
//	and evaluated at each iterate; it is never approximated numerically.
//
// Algorithm Outline:
//  1. Validate inputs, then differentiate f with respect to variable.
//  2. For k = 1..Iterations:
//     fx  = f(x);  dfx = f′(x)        // either failure fails the call
//     if |dfx| < DerivativeEpsilon: stop — partial run returned as success
//     x = x − fx/dfx
//     record round(x, Precision) with its relative error (computed on
//     every record, the first included, against the previous stored
//     value — initially round(x0, Precision)).
//  3. Return the accumulated records.
//
// Complexity:
//
//	Time   = O(Iterations) evaluations of f and f′
//	Memory = O(Iterations) records
//
// Errors:
//   - ErrNilExpression, ErrNonFiniteGuess, ErrIterationsRange, ErrPrecisionRange.
//   - Failure to evaluate f or f′ anywhere is fatal to the whole call:
//     there is no Newton step without a derivative.
//   - A near-zero derivative is NOT an error; it ends the run early with
//     however many records were produced (possibly none).
func NewtonRaphson(f expr.Expr, variable string, x0 float64, opts *Options) ([]IterationRecord, error) {
	o, err := validate(f, opts, x0)
	if err != nil {
		return nil, err
	}
	df := f.Diff(variable)

	records := make([]IterationRecord, 0, o.Iterations)
	vars := map[string]float64{variable: x0}
	x := x0
	prevStored := roundof.Round(x0, o.Precision)

	for k := 1; k <= o.Iterations; k++ {
		vars[variable] = x
		fx, err := f.Eval(vars)
		if err != nil {
			return nil, fmt.Errorf("rootfind: newton iteration %d, f(%v): %w", k, x, err)
		}
		dfx, err := df.Eval(vars)
		if err != nil {
			return nil, fmt.Errorf("rootfind: newton iteration %d, f'(%v): %w", k, x, err)
		}
		if math.Abs(dfx) < DerivativeEpsilon {
			break
		}

		x = x - fx/dfx
		stored := roundof.Round(x, o.Precision)
		rec := IterationRecord{Iteration: k, Approximation: stored}
		if pct, ok := roundof.RelativeError(stored, prevStored); ok {
			rounded := roundof.Round(pct, o.Precision)
			rec.RelativeError = &rounded
		}
		records = append(records, rec)
		prevStored = stored
	}
	return records, nil
}
