// Package remind runs the daily reminder in the foreground.
package remind

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/notify"
	"tableflip.dev/diario/pkg/reminder"
)

// ErrDisabled is returned when the configuration turns reminders off.
var ErrDisabled = errors.New("reminders are disabled, set reminder.enabled to true")

// Remind prints the daily reminder until ctx is done.
type Remind struct {
	App *app.App
	// Now also fires once right away.
	Now bool
	Out io.Writer
}

func (n *Remind) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not remind, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	fire := reminder.Notifier(&notify.Printer{Out: out}, n.App.Clock)
	s := n.App.Reminder(fire)
	if s == nil {
		return ErrDisabled
	}
	if n.Now {
		fire()
	}
	s.Start()
	defer s.Stop()

	faint := color.New(color.Faint)
	_, _ = faint.Fprintf(out, "próximo recordatorio: %s\n", s.NextFire().Format("2006-01-02 15:04"))
	<-ctx.Done()
	return nil
}
