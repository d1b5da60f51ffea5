package main

import (
	"os"

	"github.com/katalvlaran/numerix/cmd/numerix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
