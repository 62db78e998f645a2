package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/view"
)

// renderCalendar draws a month grid. highlight marks the cell the keyboard
// cursor is on; it replaces the grid's own selection.
func renderCalendar(cal view.Calendar, highlight daykey.Key, th CalendarTheme) string {
	headers := make([]string, 0, len(cal.Weekdays))
	for _, w := range cal.Weekdays {
		r := []rune(w)
		if len(r) > 2 {
			r = r[:2]
		}
		headers = append(headers, fmt.Sprintf("%-2s", string(r)))
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(cal.Title),
		th.Header.Render(strings.Join(headers, " ")),
	}
	for _, row := range cal.Rows() {
		cells := make([]string, 0, 7)
		for _, c := range row {
			if c.Empty() {
				cells = append(cells, th.Empty.Render("  "))
				continue
			}
			c.IsSelected = highlight != "" && c.Key == highlight
			cells = append(cells, renderCell(c, th))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c view.Cell, th CalendarTheme) string {
	text := fmt.Sprintf("%2d", c.Day)

	style := th.Empty
	switch {
	case c.HasTasks:
		style = th.Tasks
	case c.HasEvents:
		style = th.Events
	}
	if c.IsToday {
		style = style.Inherit(th.Today)
	}
	if c.IsSelected {
		style = style.Inherit(th.Selected)
	}
	return style.Render(text)
}

// calendarLegend explains the cell styles.
func calendarLegend(th CalendarTheme) string {
	return strings.Join([]string{
		th.Tasks.Render("■") + " tareas",
		th.Events.Render("■") + " eventos",
		th.Today.Render("hoy"),
	}, "  ")
}
