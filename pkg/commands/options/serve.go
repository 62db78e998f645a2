package options

import (
	"github.com/spf13/cobra"
)

// ServeOptions
type ServeOptions struct {
	Addr    string
	Origins []string
}

func AddServeArgs(cmd *cobra.Command, o *ServeOptions) {
	cmd.Flags().StringVar(&o.Addr, "addr", "",
		"Listen address, defaults to serve.addr from the config.")
	cmd.Flags().StringSliceVar(&o.Origins, "origin", nil,
		"Allowed CORS origin, repeatable. Defaults to serve.origins from the config.")
}
