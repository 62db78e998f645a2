package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/commands/options"
	"tableflip.dev/diario/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Expose the journal to assistants over the Model Context Protocol.",
		Example: `
diario mcp
diario mcp --http 127.0.0.1:8081
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			// stdout belongs to the protocol, so the log always goes to the file.
			a, err := openJournal()
			if err != nil {
				return err
			}
			defer a.Close()

			r := mcp.Runner{
				App:              a,
				Name:             "diario",
				Version:          buildVersion(),
				Transport:        mcp.TransportStdio,
				HTTPEndpointPath: mo.Path,
			}
			if mo.HTTP != "" {
				r.Transport = mcp.TransportHTTP
				r.HTTPListenAddr = mo.HTTP
				r.OnHTTPListening = func(addr net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on http://%s%s\n", addr, r.HTTPEndpointPath)
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return r.Do(ctx)
		},
	}

	options.AddMCPArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
