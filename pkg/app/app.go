// Package app opens a journal from the resolved configuration so the
// command line, the terminal UI and the HTTP server share one setup path.
package app

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/config"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/logging"
	"tableflip.dev/diario/pkg/notify"
	"tableflip.dev/diario/pkg/reminder"
	"tableflip.dev/diario/pkg/store"
)

// Options configure Open. Nil fields get defaults.
type Options struct {
	// Config is loaded from viper when nil.
	Config *config.Config
	// Notifier receives every journal notification next to Toasts.
	Notifier notify.Notifier
	// Confirmer answers the clear completed prompt.
	Confirmer journal.Confirmer
	Clock     clockwork.Clock
	// LogToFile sends the log to Config.LogFile instead of stderr.
	LogToFile bool
	// Log replaces the logger Open would build.
	Log *zap.Logger
}

// App is an opened journal with its collaborators.
type App struct {
	Config      *config.Config
	Log         *zap.Logger
	Clock       clockwork.Clock
	Persistence store.Persistence
	Journal     *journal.Service
	// Toasts queues the notifications for adapters that show them later.
	Toasts *notify.Recorder
}

// Open resolves the configuration, builds the logger, opens the store and
// loads the journal from it.
func Open(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(config.New()); err != nil {
			return nil, err
		}
	}

	log := opts.Log
	if log == nil {
		lo := logging.Options{Debug: cfg.Debug}
		if opts.LogToFile {
			lo.File = cfg.LogFile()
			lo.JSON = true
		}
		var err error
		if log, err = logging.New(lo); err != nil {
			return nil, fmt.Errorf("app: building logger: %w", err)
		}
	}

	c := opts.Clock
	if c == nil {
		c = clockwork.NewRealClock()
	}

	so := cfg.StoreOptions()
	so.Logger = log
	p, err := store.Load(so)
	if err != nil {
		return nil, fmt.Errorf("app: opening store: %w", err)
	}

	toasts := &notify.Recorder{}
	notifiers := []notify.Notifier{toasts, &notify.Logger{Log: log.Named("notify")}}
	if opts.Notifier != nil {
		notifiers = append(notifiers, opts.Notifier)
	}

	svc, err := journal.New(p, journal.Options{
		Notifier:  notify.Multi(notifiers...),
		Confirmer: opts.Confirmer,
		Clock:     c,
		Log:       log,
	})
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	log.Debug("journal opened",
		zap.String("path", cfg.Path),
		zap.String("driver", string(cfg.Driver)),
		zap.String("config", cfg.File),
	)

	return &App{
		Config:      cfg,
		Log:         log,
		Clock:       c,
		Persistence: p,
		Journal:     svc,
		Toasts:      toasts,
	}, nil
}

// Reminder returns a stopped scheduler set to the configured time of day.
// It is nil when reminders are disabled.
func (a *App) Reminder(fire func()) *reminder.Scheduler {
	if !a.Config.Reminder.Enabled {
		return nil
	}
	return reminder.New(a.Clock, a.Config.Reminder.Hour, a.Config.Reminder.Minute, fire, a.Log)
}

// Close releases the store and flushes the log. Sync errors are ignored,
// zap reports them for stderr on most terminals.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	_ = logging.Sync(a.Log)
	if a.Persistence == nil {
		return nil
	}
	return a.Persistence.Close()
}
