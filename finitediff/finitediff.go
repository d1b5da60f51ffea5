package finitediff

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numerix/expr"
	"github.com/katalvlaran/numerix/roundof"
)

// Approximate — finite-difference derivative estimation
//
// Description:
//
//	Evaluates f at x, x+h and x−h, forms the forward, backward and
//	centered difference quotients, and (best-effort) the exact symbolic
//	derivative at x for per-stencil error percentages.
//
// Algorithm Outline:
//  1. Validate expression, point and options (sentinel errors from types.go).
//  2. Evaluate f(x), f(x+h), f(x−h) — any failure fails the call.
//  3. forward = (f(x+h)−f(x))/h; backward = (f(x)−f(x−h))/h;
//     centered = (f(x+h)−f(x−h))/(2h).
//  4. Differentiate f symbolically and evaluate at x. On failure the
//     Symbolic and error fields stay nil and the call still succeeds.
//  5. With a reference: error_s = |stencil − symbolic|/|symbolic|·100 per
//     stencil, skipped (nil) when |symbolic| < 1e-10.
//  6. Round every output to Precision digits.
//
// Complexity:
//
//	Time   = 3 evaluations of f + 1 of f′
//	Memory = O(1)
//
// Errors:
//   - ErrNilExpression, ErrNonFinitePoint, ErrStepTooSmall, ErrPrecisionRange.
//   - Evaluation failure of f at any of the three stencil points, wrapped
//     with the failing point. Symbolic failure is NOT an error.
func Approximate(f expr.Expr, variable string, x float64, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if f == nil {
		return Result{}, ErrNilExpression
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Result{}, ErrNonFinitePoint
	}
	if o.Step <= MinStep {
		return Result{}, fmt.Errorf("%w: got %v, want > %v", ErrStepTooSmall, o.Step, MinStep)
	}
	if o.Precision < 1 || o.Precision > MaxPrecision {
		return Result{}, fmt.Errorf("%w: got %d, want 1..%d", ErrPrecisionRange, o.Precision, MaxPrecision)
	}

	h := o.Step
	vars := map[string]float64{variable: x}
	fx, err := f.Eval(vars)
	if err != nil {
		return Result{}, fmt.Errorf("finitediff: f(%v): %w", x, err)
	}
	vars[variable] = x + h
	fxPlus, err := f.Eval(vars)
	if err != nil {
		return Result{}, fmt.Errorf("finitediff: f(%v): %w", x+h, err)
	}
	vars[variable] = x - h
	fxMinus, err := f.Eval(vars)
	if err != nil {
		return Result{}, fmt.Errorf("finitediff: f(%v): %w", x-h, err)
	}

	res := Result{
		Forward:  roundof.Round((fxPlus-fx)/h, o.Precision),
		Backward: roundof.Round((fx-fxMinus)/h, o.Precision),
		Centered: roundof.Round((fxPlus-fxMinus)/(2*h), o.Precision),
	}

	// Best-effort symbolic reference; a failure here only degrades the result.
	vars[variable] = x
	sym, err := f.Diff(variable).Eval(vars)
	if err != nil {
		return res, nil
	}
	rounded := roundof.Round(sym, o.Precision)
	res.Symbolic = &rounded

	if math.Abs(sym) >= referenceEpsilon {
		res.ForwardError = errAgainst(res.Forward, rounded, o.Precision)
		res.BackwardError = errAgainst(res.Backward, rounded, o.Precision)
		res.CenteredError = errAgainst(res.Centered, rounded, o.Precision)
	}
	return res, nil
}

// errAgainst computes a rounded percentage error pointer, nil when the
// reference is degenerate.
func errAgainst(approx, reference float64, precision int) *float64 {
	pct, ok := roundof.RelativeTo(approx, reference)
	if !ok {
		return nil
	}
	rounded := roundof.Round(pct, precision)
	return &rounded
}
