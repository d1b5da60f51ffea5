package finitediff

import "errors"

var (
	// ErrNilExpression indicates the expression argument was nil.
	ErrNilExpression = errors.New("finitediff: expression must not be nil")

	// ErrNonFinitePoint indicates the evaluation point was NaN or ±Inf.
	ErrNonFinitePoint = errors.New("finitediff: evaluation point must be finite")

	// ErrStepTooSmall indicates Options.Step is not strictly above MinStep.
	// Steps that small put the stencils inside catastrophic-cancellation
	// territory where every digit of the difference is noise.
	ErrStepTooSmall = errors.New("finitediff: step size too small")

	// ErrPrecisionRange indicates Options.Precision is outside 1..MaxPrecision.
	ErrPrecisionRange = errors.New("finitediff: precision out of range")
)

const (
	// MinStep is the exclusive lower bound on Options.Step.
	MinStep = 1e-10

	// MaxPrecision caps the rounding digit count at the limit of a float64.
	MaxPrecision = 15

	// referenceEpsilon is the smallest |symbolic| magnitude against which a
	// percentage error is still computed.
	referenceEpsilon = 1e-10
)

// Result is the outcome of one derivative approximation.
//
// Forward, Backward and Centered are always present. Symbolic is the exact
// derivative evaluated at the point, nil when it could not be computed; in
// that case the three error fields are nil too (there is no basis for
// comparison). Each error field is the percentage deviation of its stencil
// from Symbolic, nil also when |Symbolic| is too small to divide by.
type Result struct {
	Forward  float64
	Backward float64
	Centered float64

	Symbolic *float64

	ForwardError  *float64
	BackwardError *float64
	CenteredError *float64
}

// Options configures a derivative approximation.
//
// Fields:
//   - Step      — the stencil width h, strictly greater than MinStep.
//   - Precision — decimal digits, 1..MaxPrecision, applied to every output.
type Options struct {
	Step      float64
	Precision int
}

// DefaultOptions returns the defaults: h = 0.01 at 6 digits.
func DefaultOptions() Options {
	return Options{Step: 0.01, Precision: 6}
}
