package expr_test

import (
	"fmt"

	"github.com/katalvlaran/numerix/expr"
)

// ExampleParse evaluates a quadratic at a point.
func ExampleParse() {
	f, _ := expr.Parse("x^2 + 3*x + 2")
	y, _ := expr.EvalAt(f, "x", 1)
	fmt.Println(y)
	// Output:
	// 6
}

// ExampleExpr_Diff differentiates symbolically, then evaluates the slope.
func ExampleExpr_Diff() {
	f, _ := expr.Parse("ln(x) - 1")
	df := f.Diff("x")
	slope, _ := expr.EvalAt(df, "x", 2)
	fmt.Println(slope)
	// Output:
	// 0.5
}
