package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/commands/options"
	"tableflip.dev/diario/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump tasks, events and emotions as JSON or YAML.",
		Example: `
diario export
diario export --format yaml --file backup.yaml
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := fo.GetFormat()
			if err != nil {
				return err
			}
			a, err := openJournal()
			if err != nil {
				return err
			}
			defer a.Close()

			e := export.Export{
				App:    a,
				Format: format,
				File:   fo.File,
				Out:    cmd.OutOrStdout(),
			}
			return e.Do(context.Background())
		},
	}

	options.AddFormatArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}
