package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "numerix",
	Short: "numerix - textbook numerical approximations",
	Long: `numerix computes textbook numerical approximations over algebraic
expressions in one variable.

Commands:
  root        - approximate a root with fixed-point, newton or secant iteration
  derivative  - approximate a derivative with finite differences

Expressions support + - * / ^, parentheses, the constants e and pi, and
sin, cos, tan, asin, acos, atan, exp, ln, log10, sqrt, abs.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML file with default iterations/precision/step")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
