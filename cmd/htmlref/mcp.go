package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/htmlref/internal/app"
)

func newMCPCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  `Serve the reference over the Model Context Protocol on stdio for AI agent integration.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ServeMCP(cmd.Context(), flags.options(), cmd.ErrOrStderr())
		},
	}
}
