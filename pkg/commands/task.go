package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/commands/options"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/runner/add"
	"tableflip.dev/diario/pkg/runner/cleanup"
	"tableflip.dev/diario/pkg/runner/complete"
	"tableflip.dev/diario/pkg/runner/get"
	"tableflip.dev/diario/pkg/runner/migrate"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "tarea"},
		Short:   "Add, complete, migrate and list tasks.",
	}

	addTaskAdd(cmd)
	addTaskDone(cmd)
	addTaskMigrate(cmd)
	addTaskClear(cmd)
	addTaskList(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	so := &options.SymbolOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}
	var content string

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Add a task",
		Example: `
diario task add buy milk
diario task add --on 2024-3-6 call mom
diario task add -s note the train was late
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			content = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			sym, err := so.Symbol()
			if err != nil {
				return oo.HandleError(err)
			}
			a, err := openJournal()
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.Close()

			date, err := on.GetOn(a.Journal.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Task{
				App:     a,
				Symbol:  sym,
				Content: content,
				Date:    string(date),
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSymbolArgs(cmd, so)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "done id [id...]",
		Short: base.Wrap80("Toggle tasks between pending and completed. Any unique id prefix works, see --show-id on task list."),
		Example: `
diario task done 0191f2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return taskCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openJournal()
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.Close()

			c := complete.Complete{
				App:  a,
				IDs:  args,
				JSON: oo.JSON,
				Out:  cmd.OutOrStdout(),
			}
			err = c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskMigrate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move today's open tasks to tomorrow.",
		Example: `
diario task migrate
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openJournal()
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.Close()

			m := migrate.Migrate{App: a, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			err = m.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: base.Wrap80("Delete every completed task. Asks first on a terminal, otherwise requires --yes."),
		Example: `
diario task clear
diario task clear --yes
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := openJournal()
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.Close()

			c := cleanup.Clear{
				App:       a,
				Confirmer: clearConfirmer(co, i),
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
			}
			err = c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.InteractiveArgs(cmd, i)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

// clearConfirmer answers yes for --yes, asks with huh on a terminal and
// declines otherwise.
func clearConfirmer(co *options.ConfirmOptions, i *options.InteractiveOptions) journal.Confirmer {
	switch {
	case co.Yes:
		return journal.Always
	case i.Interactive():
		return journal.ConfirmFunc(func(prompt string) bool {
			confirmed := false
			err := huh.NewConfirm().
				Title(prompt).
				Affirmative("Sí").
				Negative("No").
				Value(&confirmed).
				Run()
			return err == nil && confirmed
		})
	}
	return nil
}

func addTaskList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List pending and completed tasks.",
		Example: `
diario task list
diario task list --show-id
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
				Target: get.Tasks,
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
