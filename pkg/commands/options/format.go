package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/printers"
)

// FormatOptions
type FormatOptions struct {
	Format string
	File   string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", string(printers.FormatJSON),
		"Output format. One of 'json' or 'yaml'.")
	cmd.Flags().StringVarP(&o.File, "file", "o", "",
		"Write to a file instead of stdout.")
}

func (o *FormatOptions) GetFormat() (printers.Format, error) {
	return printers.ParseFormat(o.Format)
}
