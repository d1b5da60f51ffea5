package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numerix/expr"
	"github.com/katalvlaran/numerix/finitediff"
)

var (
	derivExpr      string
	derivPoint     float64
	derivStep      float64
	derivPrecision int
	derivCSV       string
)

var derivativeCmd = &cobra.Command{
	Use:   "derivative",
	Short: "Approximate f'(x) with finite differences",
	Long: `Approximate the derivative of f at a point with the forward, backward
and centered difference stencils, compared against the exact symbolic
derivative whenever it can be evaluated there.`,
	Example: `  numerix derivative --expr "x^2 + 3*x + 2" --point 1
  numerix derivative --expr "sin(x)" --point 0.5 --step 0.001 --precision 8`,
	RunE: runDerivative,
}

func init() {
	rootCmd.AddCommand(derivativeCmd)

	derivativeCmd.Flags().StringVar(&derivExpr, "expr", "", "function f(x)")
	derivativeCmd.Flags().Float64Var(&derivPoint, "point", 0, "evaluation point")
	derivativeCmd.Flags().Float64Var(&derivStep, "step", 0.01, "stencil width h, > 1e-10")
	derivativeCmd.Flags().IntVar(&derivPrecision, "precision", 6, "decimal digits, 1..15")
	derivativeCmd.Flags().StringVar(&derivCSV, "csv", "", "also write the table to this CSV file")
}

func runDerivative(cmd *cobra.Command, args []string) error {
	if derivExpr == "" {
		return fmt.Errorf("missing --expr, the function f(x)")
	}
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		printError("loading config", err)
		return err
	}
	opts := finitediff.Options{
		Step:      resolveFloat(cmd, "step", derivStep, cfg.Step),
		Precision: resolveInt(cmd, "precision", derivPrecision, cfg.Precision),
	}

	f, err := expr.Parse(derivExpr)
	if err != nil {
		printError("parsing f", err)
		return err
	}

	res, err := finitediff.Approximate(f, "x", derivPoint, &opts)
	if err != nil {
		printError("approximating derivative", err)
		return err
	}

	fmt.Printf("f(x)  = %s\n", derivExpr)
	fmt.Printf("f'(x) = %s\n\n", f.Diff("x"))

	headers, rows := derivativeTable(res, opts.Precision)
	renderTable(os.Stdout, headers, rows, 3)
	if derivCSV != "" {
		if err := writeCSV(derivCSV, headers, rows); err != nil {
			printError("writing csv", err)
			return err
		}
	}
	return nil
}
