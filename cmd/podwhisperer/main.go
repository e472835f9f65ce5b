package main

import (
	"os"

	"github.com/fourTheorem/podwhisperer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
