package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig holds the defaults a user keeps in a TOML file next to their
// worksheets. Zero values mean "not set" and leave the flag default alone.
//
// Example file:
//
//	iterations = 20
//	precision  = 8
//	step       = 0.001
type fileConfig struct {
	Iterations int     `toml:"iterations"`
	Precision  int     `toml:"precision"`
	Step       float64 `toml:"step"`
}

// loadConfig reads the --config file when one was given.
func loadConfig(path string) (fileConfig, error) {
	var c fileConfig
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return fileConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// resolveInt prefers an explicitly set flag, then the config file, then the
// flag's default.
func resolveInt(cmd *cobra.Command, name string, flagValue, configValue int) int {
	if !cmd.Flags().Changed(name) && configValue != 0 {
		return configValue
	}
	return flagValue
}

// resolveFloat is resolveInt for float flags.
func resolveFloat(cmd *cobra.Command, name string, flagValue, configValue float64) float64 {
	if !cmd.Flags().Changed(name) && configValue != 0 {
		return configValue
	}
	return flagValue
}
