// Package get prints the journal's render models.
package get

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/printers"
	"tableflip.dev/diario/pkg/view"
)

// Target is what Get prints.
type Target string

const (
	Home     Target = "home"
	Tasks    Target = "tasks"
	Events   Target = "events"
	Moods    Target = "moods"
	Calendar Target = "calendar"
	Day      Target = "day"
	Stats    Target = "stats"
)

// Get prints one view of the journal, as text or JSON.
type Get struct {
	App    *app.App
	Target Target
	// Month picks the calendar month; zero means the current one.
	Month time.Time
	// Day is the day key for Target Day; empty means today.
	Day    daykey.Key
	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	model, err := n.model()
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(out, model)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	pp.NewLine()
	switch m := model.(type) {
	case view.Dashboard:
		pp.Dashboard(m)
	case view.TaskLists:
		pp.Tasks(m)
	case view.EventLists:
		pp.Events(m)
	case view.EmotionLog:
		pp.Emotions(m)
	case view.Calendar:
		pp.Calendar(m)
	case view.Day:
		pp.Day(m)
	case view.Statistics:
		pp.Statistics(m)
	}
	return nil
}

func (n *Get) model() (any, error) {
	svc := n.App.Journal
	st, now := svc.State(), svc.Now()

	switch n.Target {
	case Home, "":
		return view.Home(st, now), nil
	case Tasks:
		return view.Tasks(st), nil
	case Events:
		return view.Events(st, now), nil
	case Moods:
		return view.Emotions(st, now), nil
	case Calendar:
		if n.Month.IsZero() {
			return view.CalendarPage(st, now), nil
		}
		return view.MonthGrid(st, n.Month.Year(), n.Month.Month(), now), nil
	case Day:
		key := n.Day
		if key == "" {
			key = daykey.Today(now)
		}
		return view.DayDetail(st, key), nil
	case Stats:
		return view.Stats(st, now), nil
	}
	return nil, fmt.Errorf("unknown view %q", n.Target)
}
