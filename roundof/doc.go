// Package roundof provides the shared rounding, relative-error and
// severity-classification helpers used by the rootfind and finitediff
// packages.
//
// All helpers are tiny pure functions over float64:
//   - Round       — fixed number of decimal digits, half away from zero
//   - RelativeError / RelativeTo — percentage error with a guarded denominator
//   - Classify    — bucket a nullable percentage into Low/Medium/High/Unknown
//
// The denominator guard rejects references smaller than DenominatorEpsilon
// in magnitude, so callers never divide by a (near-)zero value.
package roundof
