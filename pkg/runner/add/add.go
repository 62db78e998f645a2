// Package add files new tasks, events and mood entries.
package add

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/glyph"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/printers"
	"tableflip.dev/diario/pkg/view"
)

var errNoJournal = errors.New("can not add, no journal")

func output(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

// report prints the journal's messages unless the output is JSON.
func report(a *app.App, out io.Writer, json bool) error {
	if json {
		return a.Report(nil)
	}
	return a.Report(out)
}

// Task adds a task.
type Task struct {
	App     *app.App
	Symbol  glyph.Symbol
	Content string
	// Date is a day key or ISO date, empty for today.
	Date   string
	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (n *Task) Do(ctx context.Context) error {
	if n.App == nil {
		return errNoJournal
	}
	out := output(n.Out)
	t, ok := n.App.Journal.CreateTask(journal.TaskInput{Symbol: n.Symbol, Content: n.Content, Date: n.Date})
	if err := report(n.App, out, n.JSON); err != nil || !ok {
		return err
	}
	if n.JSON {
		return printers.JSON(out, view.Task(t))
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.TaskRows([]view.TaskItem{view.Task(t)}, "")
	return nil
}

// Event adds an event.
type Event struct {
	App       *app.App
	Title     string
	Date      string
	StartTime string
	EndTime   string
	ShowID    bool
	JSON      bool
	Out       io.Writer
}

func (n *Event) Do(ctx context.Context) error {
	if n.App == nil {
		return errNoJournal
	}
	out := output(n.Out)
	ev, ok := n.App.Journal.CreateEvent(journal.EventInput{
		Title:     n.Title,
		Date:      n.Date,
		StartTime: n.StartTime,
		EndTime:   n.EndTime,
	})
	if err := report(n.App, out, n.JSON); err != nil || !ok {
		return err
	}
	item := view.Event(ev.Event, ev.Date)
	if n.JSON {
		return printers.JSON(out, item)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.EventRows([]view.EventItem{item}, "")
	return nil
}

// Mood logs an emotion. The emotion is matched case insensitively.
type Mood struct {
	App       *app.App
	Emotion   string
	Note      string
	Intensity int
	ShowID    bool
	JSON      bool
	Out       io.Writer
}

func (n *Mood) Do(ctx context.Context) error {
	if n.App == nil {
		return errNoJournal
	}
	out := output(n.Out)
	svc := n.App.Journal
	e, ok := svc.CreateEmotion(journal.EmotionInput{
		Emotion:   strings.ToLower(n.Emotion),
		Note:      n.Note,
		Intensity: n.Intensity,
	})
	if err := report(n.App, out, n.JSON); err != nil || !ok {
		return err
	}
	item := view.Emotion(e, svc.Now().Location())
	if n.JSON {
		return printers.JSON(out, item)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.Emotions(view.EmotionLog{Entries: []view.EmotionItem{item}})
	if !entry.Known(e.Emotion) {
		_, _ = color.New(color.Faint).Fprintf(out, UnknownEmotionHint+"\n", e.Emotion)
	}
	return nil
}

// UnknownEmotionHint follows a mood entry whose label has no emoji.
const UnknownEmotionHint = "%q no es una emoción conocida; `diario key` lista las conocidas"
