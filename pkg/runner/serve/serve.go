// Package serve runs the HTTP API in the foreground.
package serve

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/reminder"
	"tableflip.dev/diario/pkg/server"
)

// Serve listens on Addr until ctx is done. Changes written by other
// processes are reloaded, and the daily reminder is queued into the next
// response envelope.
type Serve struct {
	App     *app.App
	Addr    string
	Origins []string
}

func (n *Serve) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not serve, no journal")
	}
	a := n.App

	s, err := server.New(a.Journal, a.Toasts, server.Options{Origins: n.Origins, Log: a.Log})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes, err := a.Journal.Watch(ctx)
	if err != nil {
		a.Log.Warn("not watching the store", zap.Error(err))
	} else {
		go func() {
			for ev := range changes {
				a.Log.Debug("store changed", zap.String("key", ev.Key))
				s.Reload()
			}
		}()
	}

	if r := a.Reminder(reminder.Notifier(a.Toasts, a.Clock)); r != nil {
		r.Start()
		defer r.Stop()
	}

	return s.ListenAndServe(ctx, n.Addr)
}
