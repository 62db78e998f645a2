// Package key provides CLI helpers to display the journaling legend.
package key

import (
	"context"
	"io"

	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/glyph"
	"tableflip.dev/diario/pkg/printers"
)

// Key prints the symbol legend and the emotions a mood accepts.
type Key struct {
	Out io.Writer
}

// Do renders both tables.
func (k *Key) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{Out: k.Out}
	pp.NewLine()
	pp.Key(glyph.DefaultGlyphs())
	pp.NewLine()
	pp.EmotionKey(entry.Emotions())
	pp.NewLine()
	return nil
}
