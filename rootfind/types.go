package rootfind

import "errors"

var (
	// ErrNilExpression indicates the expression argument was nil.
	ErrNilExpression = errors.New("rootfind: expression must not be nil")

	// ErrNonFiniteGuess indicates an initial guess was NaN or ±Inf.
	ErrNonFiniteGuess = errors.New("rootfind: initial guess must be finite")

	// ErrIterationsRange indicates Options.Iterations is outside 1..MaxIterations.
	ErrIterationsRange = errors.New("rootfind: iterations out of range")

	// ErrPrecisionRange indicates Options.Precision is outside 1..MaxPrecision.
	ErrPrecisionRange = errors.New("rootfind: precision out of range")
)

const (
	// MaxIterations caps a single run; it bounds both runtime and output size.
	MaxIterations = 1000

	// MaxPrecision caps the rounding digit count at the limit of a float64.
	MaxPrecision = 15

	// DerivativeEpsilon is Newton-Raphson's degeneracy threshold: when
	// |f′(x)| falls below it, iteration stops rather than divide by a
	// near-zero derivative.
	DerivativeEpsilon = 1e-10

	// SecantEpsilon is the Secant method's degeneracy threshold on
	// |f(x_k) − f(x_{k−1})|.
	SecantEpsilon = 1e-10
)

// IterationRecord is one step of a root-finding run.
//
// Iteration is 1-based and strictly increasing within a run. Approximation
// is the iterate rounded to Options.Precision digits. RelativeError is the
// percentage change from the previous stored approximation; it is nil when
// there is nothing to compare against or when the denominator is degenerate.
type IterationRecord struct {
	Iteration     int
	Approximation float64
	RelativeError *float64
}

// Options configures a root-finding run.
//
// Fields:
//   - Iterations — number of steps to run, 1..MaxIterations. There is no
//     convergence cutoff: FixedPoint always runs all steps, NewtonRaphson
//     and Secant run all steps unless their degeneracy guard fires.
//   - Precision  — decimal digits, 1..MaxPrecision, applied to every stored
//     Approximation and RelativeError.
type Options struct {
	Iterations int
	Precision  int
}

// DefaultOptions returns the defaults: 50 iterations at 6 digits.
func DefaultOptions() Options {
	return Options{Iterations: 50, Precision: 6}
}
