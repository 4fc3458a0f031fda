// Package main is the entry point for the hangul CLI.
package main

import (
	"os"

	"github.com/hodu-dev/hangul/cmd/hangul/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
