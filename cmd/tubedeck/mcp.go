package main

import (
	"os"

	"tubedeck/internal/mcp"

	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the Main UI settings over MCP on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcp.NewServer(a.prefs, a.strings, a.logger).Serve(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}
