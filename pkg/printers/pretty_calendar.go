package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/diario/pkg/view"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a month grid. Days with open tasks are bold, days with
// events are cyan, today is underlined and the selected day is inverted.
func (pp *PrettyPrint) Calendar(cal view.Calendar) {
	tf := color.New(color.FgWhite, color.Italic)

	mid := (width - len([]rune(cal.Title))) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), cal.Title)

	head := color.New(color.Faint)
	for i, w := range cal.Weekdays {
		if i > 0 {
			_, _ = fmt.Fprint(pp.out(), " ")
		}
		_, _ = head.Fprint(pp.out(), string([]rune(w)[:2]))
	}
	_, _ = fmt.Fprintln(pp.out())

	for _, row := range cal.Rows() {
		for i, c := range row {
			if i > 0 {
				_, _ = fmt.Fprint(pp.out(), " ")
			}
			if c.Empty() {
				_, _ = fmt.Fprint(pp.out(), "  ")
				continue
			}
			_, _ = cellColor(c).Fprintf(pp.out(), "%2d", c.Day)
		}
		_, _ = fmt.Fprintln(pp.out())
	}
	_, _ = fmt.Fprintln(pp.out())
}

func cellColor(c view.Cell) *color.Color {
	attrs := []color.Attribute{}
	switch {
	case c.HasEvents:
		attrs = append(attrs, color.FgCyan)
	case c.HasTasks:
		attrs = append(attrs, color.FgHiWhite)
	default:
		attrs = append(attrs, color.Faint, color.FgWhite)
	}
	if c.HasTasks {
		attrs = append(attrs, color.Bold)
	}
	if c.IsToday {
		attrs = append(attrs, color.Underline)
	}
	if c.IsSelected {
		attrs = append(attrs, color.ReverseVideo)
	}
	return color.New(attrs...)
}
