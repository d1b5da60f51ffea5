package finitediff_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerix/expr"
	"github.com/katalvlaran/numerix/finitediff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse is a test helper wrapping expr.Parse with require.
func parse(t *testing.T, src string) expr.Expr {
	t.Helper()
	e, err := expr.Parse(src)
	require.NoError(t, err, "parse %q", src)
	return e
}

// TestApproximate_Quadratic is the x²+3x+2 scenario: the symbolic
// derivative at x=1 is exactly 5, the centered stencil hits it, and the
// one-sided stencils miss by an amount proportional to h.
func TestApproximate_Quadratic(t *testing.T) {
	f := parse(t, "x^2 + 3*x + 2")
	opts := finitediff.Options{Step: 0.01, Precision: 6}

	res, err := finitediff.Approximate(f, "x", 1, &opts)
	require.NoError(t, err)

	require.NotNil(t, res.Symbolic)
	assert.Equal(t, 5.0, *res.Symbolic)

	assert.Equal(t, 5.0, res.Centered, "second-order stencil is exact on a quadratic")
	assert.InDelta(t, 5.01, res.Forward, 1e-9, "forward error is h·f''/2 = 0.01")
	assert.InDelta(t, 4.99, res.Backward, 1e-9)

	require.NotNil(t, res.CenteredError)
	assert.Equal(t, 0.0, *res.CenteredError)
	require.NotNil(t, res.ForwardError)
	assert.InDelta(t, 0.2, *res.ForwardError, 1e-9)
	require.NotNil(t, res.BackwardError)
	assert.InDelta(t, 0.2, *res.BackwardError, 1e-9)
}

// TestApproximate_DomainFailureIsFatal is the sqrt scenario: f cannot be
// evaluated at x−h, so the whole call fails instead of returning NaN.
func TestApproximate_DomainFailureIsFatal(t *testing.T) {
	f := parse(t, "sqrt(x)")
	opts := finitediff.Options{Step: 0.01, Precision: 6}

	_, err := finitediff.Approximate(f, "x", 0.005, &opts)
	assert.ErrorIs(t, err, expr.ErrDomain, "x−h = −0.005 is outside sqrt's domain")
}

// TestApproximate_SymbolicFailureDegrades: |x| at 0 has finite stencils but
// no evaluable symbolic derivative; the call succeeds with nil reference
// and, per the invariant, nil error fields.
func TestApproximate_SymbolicFailureDegrades(t *testing.T) {
	f := parse(t, "abs(x)")
	opts := finitediff.Options{Step: 0.01, Precision: 6}

	res, err := finitediff.Approximate(f, "x", 0, &opts)
	require.NoError(t, err, "symbolic failure must not fail the call")

	assert.Equal(t, 1.0, res.Forward)
	assert.Equal(t, -1.0, res.Backward)
	assert.Equal(t, 0.0, res.Centered)

	assert.Nil(t, res.Symbolic)
	assert.Nil(t, res.ForwardError)
	assert.Nil(t, res.BackwardError)
	assert.Nil(t, res.CenteredError)
}

// TestApproximate_ZeroDerivativeReference: cos(x) at 0 has symbolic
// derivative −sin(0) = 0, below the division guard, so the reference is
// reported but the error percentages are nil.
func TestApproximate_ZeroDerivativeReference(t *testing.T) {
	f := parse(t, "cos(x)")
	opts := finitediff.Options{Step: 0.01, Precision: 6}

	res, err := finitediff.Approximate(f, "x", 0, &opts)
	require.NoError(t, err)

	require.NotNil(t, res.Symbolic)
	assert.Equal(t, 0.0, *res.Symbolic)
	assert.Nil(t, res.ForwardError, "no percentage against a zero reference")
	assert.Nil(t, res.BackwardError)
	assert.Nil(t, res.CenteredError)
}

// TestApproximate_Validation covers the sentinel rejections.
func TestApproximate_Validation(t *testing.T) {
	f := parse(t, "x^2")

	_, err := finitediff.Approximate(nil, "x", 1, nil)
	assert.ErrorIs(t, err, finitediff.ErrNilExpression)

	_, err = finitediff.Approximate(f, "x", math.NaN(), nil)
	assert.ErrorIs(t, err, finitediff.ErrNonFinitePoint)

	bad := finitediff.Options{Step: 1e-11, Precision: 6}
	_, err = finitediff.Approximate(f, "x", 1, &bad)
	assert.ErrorIs(t, err, finitediff.ErrStepTooSmall)

	bad = finitediff.Options{Step: 0, Precision: 6}
	_, err = finitediff.Approximate(f, "x", 1, &bad)
	assert.ErrorIs(t, err, finitediff.ErrStepTooSmall, "zero step is rejected by the same bound")

	bad = finitediff.Options{Step: 0.01, Precision: 16}
	_, err = finitediff.Approximate(f, "x", 1, &bad)
	assert.ErrorIs(t, err, finitediff.ErrPrecisionRange)
}

// TestApproximate_Idempotence pins purity of the call.
func TestApproximate_Idempotence(t *testing.T) {
	f := parse(t, "sin(x) * exp(x)")
	opts := finitediff.Options{Step: 0.001, Precision: 9}

	a, err := finitediff.Approximate(f, "x", 0.7, &opts)
	require.NoError(t, err)
	b, err := finitediff.Approximate(f, "x", 0.7, &opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestApproximate_PrecisionBound verifies all outputs respect the digit cap.
func TestApproximate_PrecisionBound(t *testing.T) {
	f := parse(t, "exp(x)")
	for _, p := range []int{2, 4, 6} {
		opts := finitediff.Options{Step: 0.01, Precision: p}
		res, err := finitediff.Approximate(f, "x", 1, &opts)
		require.NoError(t, err)

		scale := math.Pow(10, float64(p))
		for _, v := range []float64{res.Forward, res.Backward, res.Centered, *res.Symbolic} {
			assert.InDelta(t, math.Round(v*scale), v*scale, 1e-3, "precision %d", p)
		}
	}
}

// TestApproximate_CenteredBeatsOneSided: on exp(x) the centered stencil's
// error is an order of magnitude below the one-sided stencils'.
func TestApproximate_CenteredBeatsOneSided(t *testing.T) {
	f := parse(t, "exp(x)")
	opts := finitediff.Options{Step: 0.01, Precision: 10}

	res, err := finitediff.Approximate(f, "x", 1, &opts)
	require.NoError(t, err)
	require.NotNil(t, res.CenteredError)
	require.NotNil(t, res.ForwardError)
	require.NotNil(t, res.BackwardError)

	assert.Less(t, *res.CenteredError, *res.ForwardError)
	assert.Less(t, *res.CenteredError, *res.BackwardError)
}
