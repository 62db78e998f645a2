package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/entry"
)

// MoodOptions
type MoodOptions struct {
	Emotion   string
	Note      string
	Intensity int
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Attach a note to the entry.")
	cmd.Flags().IntVarP(&o.Intensity, "intensity", "i", entry.DefaultIntensity,
		"Intensity from 0 to 5.")
}
