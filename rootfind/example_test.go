package rootfind_test

import (
	"fmt"

	"github.com/katalvlaran/numerix/expr"
	"github.com/katalvlaran/numerix/rootfind"
)

// ExampleFixedPoint iterates g(x) = x/2 + 1 toward its fixed point 2.
func ExampleFixedPoint() {
	g, _ := expr.Parse("x/2 + 1")
	opts := rootfind.Options{Iterations: 3, Precision: 6}

	recs, _ := rootfind.FixedPoint(g, "x", 0, &opts)
	for _, r := range recs {
		if r.RelativeError == nil {
			fmt.Printf("%d  %.6f  -\n", r.Iteration, r.Approximation)
			continue
		}
		fmt.Printf("%d  %.6f  %.6f%%\n", r.Iteration, r.Approximation, *r.RelativeError)
	}
	// Output:
	// 1  1.000000  -
	// 2  1.500000  33.333333%
	// 3  1.750000  14.285714%
}

// ExampleNewtonRaphson finds the positive root of x² − 4.
func ExampleNewtonRaphson() {
	f, _ := expr.Parse("x^2 - 4")
	opts := rootfind.Options{Iterations: 2, Precision: 6}

	recs, _ := rootfind.NewtonRaphson(f, "x", 4, &opts)
	for _, r := range recs {
		fmt.Printf("%d  %.6f  %.6f%%\n", r.Iteration, r.Approximation, *r.RelativeError)
	}
	// Output:
	// 1  2.500000  60.000000%
	// 2  2.050000  21.951220%
}

// ExampleSecant approximates e as the root of ln(x) − 1.
func ExampleSecant() {
	f, _ := expr.Parse("ln(x) - 1")
	opts := rootfind.Options{Iterations: 10, Precision: 6}

	recs, _ := rootfind.Secant(f, "x", 2, 3, &opts)
	fmt.Printf("%.6f\n", recs[len(recs)-1].Approximation)
	// Output:
	// 2.718282
}
