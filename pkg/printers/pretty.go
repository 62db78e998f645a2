package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/diario/pkg/view"
)

// PrettyPrint writes render models as colored text.
type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

const idWidth = len("01912f6e-8a5b-7cc4-9d2e-1c2b3a4d5e6f  ")

var spacing = strings.Repeat(" ", idWidth)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d\n", count)
}

// Empty prints an empty state line.
func (pp *PrettyPrint) Empty(text string) {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprintf(pp.out(), " %s\n\n", text)
}

func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	pad := idWidth - len(id)
	if pad < 1 {
		pad = 1
	}
	_, _ = y.Fprint(pp.out(), id+strings.Repeat(" ", pad))
}

// TaskRows prints task rows, or empty when there are none.
func (pp *PrettyPrint) TaskRows(items []view.TaskItem, empty string) {
	if len(items) == 0 {
		pp.Empty(empty)
		return
	}
	done := color.New(color.Faint, color.CrossedOut)
	date := color.New(color.Faint)
	for _, it := range items {
		pp.id(it.ID)
		content := it.Content
		if it.Completed {
			content = done.Sprint(content)
		}
		_, _ = fmt.Fprintf(pp.out(), "%s %s %s\n", it.Symbol, content, date.Sprint(it.DateLabel))
	}
	pp.NewLine()
}

// Tasks prints the pending and completed lists.
func (pp *PrettyPrint) Tasks(l view.TaskLists) {
	pp.TitleWithCount("Pendientes", len(l.Pending))
	pp.TaskRows(l.Pending, view.NoPendingTasks)
	pp.TitleWithCount("Completadas", len(l.Completed))
	pp.TaskRows(l.Completed, view.NoCompletedTasks)
}

// EventRows prints event rows, or empty when there are none.
func (pp *PrettyPrint) EventRows(items []view.EventItem, empty string) {
	if len(items) == 0 {
		pp.Empty(empty)
		return
	}
	date := color.New(color.FgCyan)
	faint := color.New(color.Faint)
	for _, it := range items {
		pp.id(it.ID)
		_, _ = fmt.Fprintf(pp.out(), "%s %s %s\n", date.Sprint(it.DateLabel), faint.Sprint(it.TimeLabel), it.Title)
	}
	pp.NewLine()
}

// Events prints the upcoming and past lists.
func (pp *PrettyPrint) Events(l view.EventLists) {
	pp.TitleWithCount("Próximos", len(l.Upcoming))
	pp.EventRows(l.Upcoming, view.NoUpcomingEvents)
	pp.TitleWithCount("Pasados", len(l.Past))
	pp.EventRows(l.Past, view.NoPastEvents)
}

// Emotions prints the mood log.
func (pp *PrettyPrint) Emotions(l view.EmotionLog) {
	pp.TitleWithCount("Emociones", len(l.Entries))
	if len(l.Entries) == 0 {
		pp.Empty(view.NoEmotions)
		return
	}
	stars := color.New(color.FgYellow)
	faint := color.New(color.Faint)
	for _, it := range l.Entries {
		pp.id(it.ID)
		_, _ = fmt.Fprintf(pp.out(), "%s %s %s %s\n", it.Emoji, faint.Sprint(it.DateLabel), stars.Sprint(it.Stars), it.Note)
	}
	pp.NewLine()
}

// Day prints the detail of one day.
func (pp *PrettyPrint) Day(d view.Day) {
	pp.Title(d.Title)
	pp.NewLine()
	pp.TitleWithCount("Tareas", len(d.Tasks))
	pp.TaskRows(d.Tasks, view.NoDayTasks)
	pp.TitleWithCount("Eventos", len(d.Events))
	pp.EventRows(d.Events, view.NoDayEvents)
}

// Dashboard prints the home summary.
func (pp *PrettyPrint) Dashboard(d view.Dashboard) {
	b := color.New(color.Bold)
	i := color.New(color.Italic, color.Faint)

	pp.Title("Inicio")
	_, _ = fmt.Fprintf(pp.out(), "Tareas pendientes: %s\n", b.Sprint(d.PendingTasks))
	_, _ = fmt.Fprintf(pp.out(), "Eventos próximos:  %s\n", b.Sprint(d.UpcomingEvents))
	if d.HasMood {
		_, _ = fmt.Fprintf(pp.out(), "Ánimo:             %s %s\n", d.MoodEmoji, d.MoodPhrase)
	}
	pp.NewLine()
	_, _ = i.Fprintf(pp.out(), "\"%s\"\n", d.Quote)
}
