package finitediff_test

import (
	"fmt"

	"github.com/katalvlaran/numerix/expr"
	"github.com/katalvlaran/numerix/finitediff"
)

// ExampleApproximate estimates d/dx (x² + 3x + 2) at x = 1, where the
// exact derivative is 5.
func ExampleApproximate() {
	f, _ := expr.Parse("x^2 + 3*x + 2")
	opts := finitediff.Options{Step: 0.01, Precision: 6}

	res, _ := finitediff.Approximate(f, "x", 1, &opts)
	fmt.Printf("forward   %.6f  (%.6f%%)\n", res.Forward, *res.ForwardError)
	fmt.Printf("backward  %.6f  (%.6f%%)\n", res.Backward, *res.BackwardError)
	fmt.Printf("centered  %.6f  (%.6f%%)\n", res.Centered, *res.CenteredError)
	fmt.Printf("symbolic  %.6f\n", *res.Symbolic)
	// Output:
	// forward   5.010000  (0.200000%)
	// backward  4.990000  (0.200000%)
	// centered  5.000000  (0.000000%)
	// symbolic  5.000000
}
