package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/glyph"
)

// Key prints the symbol legend.
func (pp *PrettyPrint) Key(glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Símbolo"), bold.Sprint("Nombre"), bold.Sprint("Significado"))
	for _, g := range glyfs {
		tbl.AddRow(string(g.Symbol), g.Noun, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// EmotionKey prints the emotions a mood entry accepts.
func (pp *PrettyPrint) EmotionKey(emotions []string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(""), bold.Sprint("Emoción"), bold.Sprint("Frase"))
	for _, e := range emotions {
		tbl.AddRow(entry.Emoji(e), e, entry.Phrase(e))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}
