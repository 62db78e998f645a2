// Package ui runs the full screen terminal interface.
package ui

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/tui"
)

type UI struct {
	App *app.App
}

// Do blocks until the user quits or ctx is done.
func (d *UI) Do(ctx context.Context) error {
	if d.App == nil {
		return errors.New("can not open the ui, no journal")
	}
	a := d.App

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reminders := make(chan struct{}, 1)
	opts := tui.Options{Reminders: reminders, Log: a.Log}

	if r := a.Reminder(tui.ReminderFunc(reminders)); r != nil {
		r.Start()
		defer r.Stop()
	}

	changes, err := a.Journal.Watch(ctx)
	if err != nil {
		a.Log.Warn("not watching the store", zap.Error(err))
	} else {
		opts.Changes = changes
	}

	return tui.Run(ctx, a.Journal, a.Toasts, opts)
}
