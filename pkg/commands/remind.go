package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	var now bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print the daily reminder at the configured time until interrupted.",
		Example: `
diario remind
DIARIO_REMINDER_HOUR=21 diario remind --now
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openJournal()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := remind.Remind{App: a, Now: now, Out: cmd.OutOrStdout()}
			return r.Do(ctx)
		},
	}

	cmd.Flags().BoolVar(&now, "now", false, "Also print the reminder right away.")
	topLevel.AddCommand(cmd)
}
