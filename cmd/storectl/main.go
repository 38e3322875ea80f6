// Package main is the entry point for the storectl CLI.
package main

import (
	"os"

	"github.com/freshcart/store-console/cmd/storectl/cmd"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
