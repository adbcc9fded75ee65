// Package main is the entry point for the hw CLI.
package main

import (
	"os"

	"github.com/runger/hwcli/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
