package main

import (
	"fmt"
	"os"

	"smart-task-tracker/internal/cli"
)

// Set by ldflags at build time.
var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
