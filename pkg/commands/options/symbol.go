package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diario/pkg/glyph"
)

// SymbolOptions
type SymbolOptions struct {
	Raw string
}

func AddSymbolArgs(cmd *cobra.Command, o *SymbolOptions) {
	names := make([]string, 0, len(glyph.Pickable()))
	for _, s := range glyph.Pickable() {
		names = append(names, fmt.Sprintf("%s (%s)", s.Glyph().Noun, s))
	}
	cmd.Flags().StringVarP(&o.Raw, "symbol", "s", "",
		"Line symbol, one of "+strings.Join(names, ", ")+". Defaults to task.")
	_ = cmd.RegisterFlagCompletionFunc("symbol", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, len(glyph.Pickable()))
		for _, s := range glyph.Pickable() {
			out = append(out, s.Glyph().Noun)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}

// Symbol resolves --symbol from a symbol, noun or alias.
func (o *SymbolOptions) Symbol() (glyph.Symbol, error) {
	return glyph.Parse(o.Raw)
}
