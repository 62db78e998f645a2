package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/commands/options"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/runner/add"
	"tableflip.dev/diario/pkg/runner/get"
)

func addMood(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "mood",
		Aliases: []string{"moods", "emocion"},
		Short:   "Log and list emotions.",
	}

	addMoodAdd(cmd)
	addMoodList(cmd)

	topLevel.AddCommand(cmd)
}

func addMoodAdd(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	i := &options.InteractiveOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [emotion]",
		Short: base.Wrap80("Log how you feel. Without an emotion a picker opens on a terminal."),
		Example: `
diario mood add feliz
diario mood add cansado --intensity 2 --note "long day"
diario mood add
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 1 {
				return errors.New("accepts one emotion")
			}
			mo.Emotion = ""
			if len(args) == 1 {
				mo.Emotion = args[0]
			}
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return emotionCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if mo.Emotion != "" || !i.Interactive() {
				return nil
			}
			return pickEmotion(mo)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openJournal()
			if err != nil {
				return oo.HandleError(err)
			}
			defer a.Close()

			s := add.Mood{
				App:       a,
				Emotion:   mo.Emotion,
				Note:      mo.Note,
				Intensity: mo.Intensity,
				ShowID:    io.ShowID,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMoodArgs(cmd, mo)
	options.InteractiveArgs(cmd, i)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

// pickEmotion asks for the emotion, and for a note when none was given.
func pickEmotion(mo *options.MoodOptions) error {
	opts := make([]huh.Option[string], 0, len(entry.Emotions()))
	for _, e := range entry.Emotions() {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %s", entry.Emoji(e), e), e))
	}

	fields := []huh.Field{
		huh.NewSelect[string]().
			Title("¿Cómo te sientes?").
			Options(opts...).
			Value(&mo.Emotion),
	}
	if mo.Note == "" {
		fields = append(fields, huh.NewInput().
			Title("Nota").
			Placeholder("opcional").
			Value(&mo.Note))
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func addMoodList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List logged emotions, newest first.",
		Example: `
diario mood list
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
				Target: get.Moods,
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
