// Package main is the entry point for the tubedeck CLI.
//
// Without arguments it starts the TUI. The settings subcommands edit the same
// Main UI preferences from the shell, and `tubedeck mcp` serves them to an
// assistant over the Model Context Protocol.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	a := &app{}
	defer a.teardown()
	return newRootCmd(a).Execute()
}
