package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/diario/pkg/view"
)

const barCells = 20

// Statistics prints the summary counts and both charts.
func (pp *PrettyPrint) Statistics(s view.Statistics) {
	pp.Title("Estadísticas")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Tareas totales", s.TotalTasks)
	tbl.AddRow("Tareas completadas", s.CompletedTasks)
	tbl.AddRow("Eventos", s.TotalEvents)
	tbl.AddRow("Emociones registradas", s.TotalEmotions)
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	pp.Pie(s.Emotions)
	pp.Productivity(s.Productivity)
}

// Pie prints the emotion chart as a legend of colored chips.
func (pp *PrettyPrint) Pie(p view.Pie) {
	pp.Title("Emociones")
	if p.Placeholder != "" {
		pp.Empty(p.Placeholder)
		return
	}
	out := termenv.NewOutput(pp.out())
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, w := range p.Wedges {
		chip := out.String(" " + w.Text + " ").
			Background(out.Color(w.Color.Hex)).
			Foreground(out.Color(w.Color.Ink)).
			String()
		tbl.AddRow(chip, fmt.Sprintf("%.0f%%", w.Share()*100))
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Productivity prints one horizontal bar per day, oldest first.
func (pp *PrettyPrint) Productivity(p view.Productivity) {
	pp.Title(p.Title)
	out := termenv.NewOutput(pp.out())
	faint := color.New(color.Faint)

	for _, b := range p.Bars {
		n := b.Value * barCells / p.Max
		bar := out.String(strings.Repeat("█", n)).Foreground(out.Color(b.Fill.Hex)).String()
		_, _ = fmt.Fprintf(pp.out(), "%-4s %s%s %s\n", b.Label, bar, strings.Repeat(" ", barCells-n), faint.Sprint(b.ValueText))
	}
	pp.NewLine()
}
