package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/commands/options"
	"tableflip.dev/diario/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command) {
	so := &options.ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the journal as a JSON API for a browser front end.",
		Example: `
diario serve
diario serve --addr :8080 --origin http://localhost:3000
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openApp(app.Options{})
			if err != nil {
				return err
			}
			defer a.Close()

			s := serve.Serve{
				App:     a,
				Addr:    a.Config.Serve.Addr,
				Origins: a.Config.Serve.Origins,
			}
			if so.Addr != "" {
				s.Addr = so.Addr
			}
			if len(so.Origins) > 0 {
				s.Origins = so.Origins
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.Do(ctx)
		},
	}

	options.AddServeArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
