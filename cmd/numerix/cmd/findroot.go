package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numerix/expr"
	"github.com/katalvlaran/numerix/rootfind"
)

var (
	findRootMethod     string
	findRootExpr       string
	findRootG          string
	findRootX0         float64
	findRootX1         float64
	findRootIterations int
	findRootPrecision  int
	findRootCSV        string
)

var findRootCmd = &cobra.Command{
	Use:   "root",
	Short: "Approximate a root of f(x) = 0",
	Long: `Approximate a root of f(x) = 0 with one of three iterative methods.

Methods:
  fixed-point  - iterate x = g(x); requires --g, the iteration function
  newton       - Newton-Raphson with a symbolically computed derivative
  secant       - secant iteration; requires a second guess --x1

Each iteration is printed with its approximation, relative error and a
severity bucket (low < 1%, medium < 10%, high otherwise).`,
	Example: `  numerix root --method newton --expr "ln(x) - 1" --x0 2
  numerix root --method secant --expr "ln(x) - 1" --x0 2 --x1 3
  numerix root --method fixed-point --g "x/2 + 1" --x0 0 --iterations 20`,
	RunE: runFindRoot,
}

func init() {
	rootCmd.AddCommand(findRootCmd)

	findRootCmd.Flags().StringVar(&findRootMethod, "method", "newton", "fixed-point | newton | secant")
	findRootCmd.Flags().StringVar(&findRootExpr, "expr", "", "target function f(x) (newton, secant)")
	findRootCmd.Flags().StringVar(&findRootG, "g", "", "iteration function g(x) (fixed-point)")
	findRootCmd.Flags().Float64Var(&findRootX0, "x0", 0, "initial guess")
	findRootCmd.Flags().Float64Var(&findRootX1, "x1", 0, "second guess (secant)")
	findRootCmd.Flags().IntVar(&findRootIterations, "iterations", 50, "iteration count, 1..1000")
	findRootCmd.Flags().IntVar(&findRootPrecision, "precision", 6, "decimal digits, 1..15")
	findRootCmd.Flags().StringVar(&findRootCSV, "csv", "", "also write the table to this CSV file")
}

func runFindRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		printError("loading config", err)
		return err
	}
	opts := rootfind.Options{
		Iterations: resolveInt(cmd, "iterations", findRootIterations, cfg.Iterations),
		Precision:  resolveInt(cmd, "precision", findRootPrecision, cfg.Precision),
	}

	var recs []rootfind.IterationRecord
	switch findRootMethod {
	case "fixed-point":
		if findRootG == "" {
			return fmt.Errorf("fixed-point needs --g, the iteration function")
		}
		g, err := expr.Parse(findRootG)
		if err != nil {
			printError("parsing g", err)
			return err
		}
		recs, err = rootfind.FixedPoint(g, "x", findRootX0, &opts)
		if err != nil {
			printError("fixed-point iteration", err)
			return err
		}
	case "newton":
		f, err := parseTarget()
		if err != nil {
			return err
		}
		recs, err = rootfind.NewtonRaphson(f, "x", findRootX0, &opts)
		if err != nil {
			printError("newton iteration", err)
			return err
		}
	case "secant":
		if !cmd.Flags().Changed("x1") {
			return fmt.Errorf("secant needs a second guess --x1")
		}
		f, err := parseTarget()
		if err != nil {
			return err
		}
		recs, err = rootfind.Secant(f, "x", findRootX0, findRootX1, &opts)
		if err != nil {
			printError("secant iteration", err)
			return err
		}
	default:
		return fmt.Errorf("unknown method %q, want fixed-point, newton or secant", findRootMethod)
	}

	if len(recs) == 0 {
		fmt.Println("no iterations produced (degenerate at the initial guess)")
		return nil
	}

	headers, rows := iterationTable(recs, opts.Precision)
	renderTable(os.Stdout, headers, rows, 3)
	if findRootCSV != "" {
		if err := writeCSV(findRootCSV, headers, rows); err != nil {
			printError("writing csv", err)
			return err
		}
	}
	return nil
}

// parseTarget parses --expr, required by newton and secant.
func parseTarget() (expr.Expr, error) {
	if findRootExpr == "" {
		return nil, fmt.Errorf("missing --expr, the target function f(x)")
	}
	f, err := expr.Parse(findRootExpr)
	if err != nil {
		printError("parsing f", err)
		return nil, err
	}
	return f, nil
}
