package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/config"
)

var (
	oo = &base.OutputOptions{}
	vo = config.New()
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "diario",
		Short: base.Wrap80("A bullet journal for tasks, events and moods, on the command line, in the terminal and over HTTP."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddGlobalArgs(cmd, vo)
	AddCommands(cmd)
	return cmd
}

// AddGlobalArgs binds the settings that every command honours to v.
func AddGlobalArgs(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.String("path", config.DefaultPath, "Directory the journal is stored in.")
	flags.String("driver", "diskv", "Storage backend, one of 'diskv' or 'sqlite'.")
	flags.Bool("debug", false, "Log at debug level.")
	for _, name := range []string{"path", "driver", "debug"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addViews(topLevel)
	addTask(topLevel)
	addEvent(topLevel)
	addMood(topLevel)
	addExport(topLevel)
	addRemind(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// openApp loads the configuration bound to the root flags and opens the
// journal with it.
func openApp(opts app.Options) (*app.App, error) {
	cfg, err := config.Load(vo)
	if err != nil {
		return nil, err
	}
	opts.Config = cfg
	return app.Open(opts)
}

// openJournal opens the journal for a one shot command. The log goes to the
// journal's log file so it does not mix with the command output.
func openJournal() (*app.App, error) {
	return openApp(app.Options{LogToFile: true})
}
