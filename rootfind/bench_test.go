package rootfind_test

import (
	"testing"

	"github.com/katalvlaran/numerix/expr"
	"github.com/katalvlaran/numerix/rootfind"
)

// BenchmarkNewtonRaphson measures a full-length run on ln(x)-1.
func BenchmarkNewtonRaphson(b *testing.B) {
	f, err := expr.Parse("ln(x) - 1")
	if err != nil {
		b.Fatal(err)
	}
	opts := rootfind.Options{Iterations: rootfind.MaxIterations, Precision: 6}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.NewtonRaphson(f, "x", 2, &opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFixedPoint measures a full-length run on a contracting map.
func BenchmarkFixedPoint(b *testing.B) {
	g, err := expr.Parse("x/2 + 1")
	if err != nil {
		b.Fatal(err)
	}
	opts := rootfind.Options{Iterations: rootfind.MaxIterations, Precision: 6}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.FixedPoint(g, "x", 0, &opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSecant measures the two-evaluation-per-step variant.
func BenchmarkSecant(b *testing.B) {
	f, err := expr.Parse("x^2 - 4")
	if err != nil {
		b.Fatal(err)
	}
	opts := rootfind.Options{Iterations: 100, Precision: 6}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rootfind.Secant(f, "x", 1, 3, &opts); err != nil {
			b.Fatal(err)
		}
	}
}
