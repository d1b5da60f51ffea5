// Package rootfind - input validation shared by the three methods.
//
// All checks run before the first expression evaluation, so a rejected call
// performs no numerical work at all. Deterministic, side-effect free, no
// panics on user input - only sentinel errors from types.go.
package rootfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerix/expr"
)

// validate checks the expression, options and every initial guess.
// A nil opts selects DefaultOptions; the resolved options are returned.
func validate(e expr.Expr, opts *Options, guesses ...float64) (Options, error) {
	if e == nil {
		return Options{}, ErrNilExpression
	}
	resolved := DefaultOptions()
	if opts != nil {
		resolved = *opts
	}
	if resolved.Iterations < 1 || resolved.Iterations > MaxIterations {
		return Options{}, fmt.Errorf("%w: got %d, want 1..%d", ErrIterationsRange, resolved.Iterations, MaxIterations)
	}
	if resolved.Precision < 1 || resolved.Precision > MaxPrecision {
		return Options{}, fmt.Errorf("%w: got %d, want 1..%d", ErrPrecisionRange, resolved.Precision, MaxPrecision)
	}
	for _, g := range guesses {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return Options{}, ErrNonFiniteGuess
		}
	}
	return resolved, nil
}
