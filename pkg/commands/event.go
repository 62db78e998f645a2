package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/commands/options"
	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/runner/add"
	"tableflip.dev/diario/pkg/runner/get"
)

func addEvent(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"events", "evento"},
		Short:   "Add and list events.",
	}

	addEventAdd(cmd)
	addEventList(cmd)

	topLevel.AddCommand(cmd)
}

func addEventAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an event",
		Example: `
diario event add --on 2024-3-7 --start 09:00 --end 10:00 dentist
diario event add --on 3/7 dinner with friends
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openJournal()
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.Close()

			date, err := on.GetOn(a.Journal.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			if date == "" {
				date = daykey.Today(a.Journal.Now())
			}
			s := add.Event{
				App:       a,
				Title:     title,
				Date:      string(date),
				StartTime: eo.Start,
				EndTime:   eo.End,
				ShowID:    io.ShowID,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addEventList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List upcoming and past events.",
		Example: `
diario event list
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openJournal()
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.Close()

			g := get.Get{
				App:    a,
				Target: get.Events,
				ShowID: io.ShowID,
				JSON:   oo.JSON,
				Out:    cmd.OutOrStdout(),
			}
			err = g.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
