package cmd

import (
	"github.com/spf13/cobra"

	"botstats/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the botstats MCP server",
	Long:  `Launch an MCP server that allows AI agents to query the imported bot commit data via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean in MCP mode; stdio carries the protocol.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, dataStore)
	},
}
