package options

import (
	"github.com/spf13/cobra"
)

// EventOptions
type EventOptions struct {
	Start string
	End   string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.Start, "start", "",
		`Start time, example: --start=09:30.`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`End time, example: --end=10:00.`)
}
