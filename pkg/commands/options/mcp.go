package options

import (
	"github.com/spf13/cobra"
)

// MCPOptions
type MCPOptions struct {
	HTTP string
	Path string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.HTTP, "http", "",
		"Serve the streamable HTTP transport on this address instead of stdio.")
	cmd.Flags().StringVar(&o.Path, "endpoint", "/mcp",
		"HTTP path of the MCP endpoint.")
}
