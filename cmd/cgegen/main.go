// Package main provides the CLI for the cgegen equation generator.
package main

import (
	"os"

	"github.com/opencge/cgegen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
