package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/entry"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(diario completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(diario completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// taskCompletions offers the ids of pending tasks, with the content as the
// description.
func taskCompletions(toComplete string) []string {
	a, err := openJournal()
	if err != nil {
		return nil
	}
	defer a.Close()

	var out []string
	for _, t := range a.Journal.State().Tasks {
		if strings.HasPrefix(t.ID, toComplete) {
			out = append(out, t.ID+"\t"+t.Content)
		}
	}
	return out
}

func emotionCompletions(toComplete string) []string {
	var out []string
	for _, e := range entry.Emotions() {
		if strings.HasPrefix(e, toComplete) {
			out = append(out, e+"\t"+entry.Emoji(e))
		}
	}
	return out
}
