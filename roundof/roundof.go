package roundof

import "math"

// DenominatorEpsilon is the smallest reference magnitude accepted by the
// relative-error helpers. Below it the percentage is undefined rather than
// allowed to blow up.
const DenominatorEpsilon = 1e-10

// Severity buckets a relative-error percentage for presentation.
type Severity int

const (
	// Unknown means no error value exists (nil percentage).
	Unknown Severity = iota

	// Low is an error below 1%.
	Low

	// Medium is an error from 1% up to (but excluding) 10%.
	Medium

	// High is an error of 10% or more.
	High
)

// String returns the lowercase bucket name.
func (s Severity) String() string {
	switch s {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Round rounds x to the given number of decimal digits, half away from zero.
// NaN and ±Inf pass through unchanged.
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow(10, float64(digits))
	return math.Round(x*scale) / scale
}

// RelativeError returns |current-previous|/|current|·100, the percentage
// change between consecutive iterates. The second return is false when
// |current| is below DenominatorEpsilon and the percentage is undefined.
func RelativeError(current, previous float64) (float64, bool) {
	return RelativeTo(previous, current)
}

// RelativeTo returns |approx-reference|/|reference|·100, the percentage
// error of an approximation against a reference value. The second return is
// false when |reference| is below DenominatorEpsilon.
func RelativeTo(approx, reference float64) (float64, bool) {
	if math.Abs(reference) < DenominatorEpsilon {
		return 0, false
	}
	return math.Abs(approx-reference) / math.Abs(reference) * 100, true
}

// Classify maps a nullable error percentage onto a Severity bucket:
// nil ⇒ Unknown, <1 ⇒ Low, <10 ⇒ Medium, otherwise High.
func Classify(errPct *float64) Severity {
	switch {
	case errPct == nil:
		return Unknown
	case *errPct < 1:
		return Low
	case *errPct < 10:
		return Medium
	default:
		return High
	}
}
