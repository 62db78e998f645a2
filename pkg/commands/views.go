package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/commands/options"
	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/runner/get"
)

func addViews(topLevel *cobra.Command) {
	addView(topLevel, get.Home, "home", "Show the dashboard: pending tasks, upcoming events, today's mood and a quote.", `
diario home
diario home --json
`)
	addCalendar(topLevel)
	addDay(topLevel)
	addView(topLevel, get.Stats, "stats", "Show totals, the emotion distribution and the last seven days of completed tasks.", `
diario stats
`)
}

func addView(topLevel *cobra.Command, target get.Target, use, short, example string) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:       use,
		Short:     base.Wrap80(short),
		Example:   example,
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
				Target: target,
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

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month with the days that have tasks or events marked.",
		Example: `
diario calendar
diario calendar --month 2024-2
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openJournal()
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.Close()

			month, err := mo.GetMonth(a.Journal.Now().Location())
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				App:    a,
				Target: get.Calendar,
				Month:  month,
				JSON:   oo.JSON,
				Out:    cmd.OutOrStdout(),
			}
			err = g.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, mo)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addDay(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var day string

	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show the tasks and events of one day, today by default.",
		Example: `
diario day
diario day 2024-3-5
diario day 2024-03-05 --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 1 {
				return errors.New("accepts at most one date")
			}
			day = ""
			if len(args) == 1 {
				day = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var key daykey.Key
			if day != "" {
				var err error
				if key, err = daykey.Parse(day); err != nil {
					return oo.HandleError(err)
				}
			}
			a, err := openJournal()
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.Close()

			g := get.Get{
				App:    a,
				Target: get.Day,
				Day:    key,
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
