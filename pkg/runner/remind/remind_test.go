package remind

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/config"
	"tableflip.dev/diario/pkg/reminder"
	"tableflip.dev/diario/pkg/store"
)

func newApp(t *testing.T, enabled bool) *app.App {
	t.Helper()
	color.NoColor = true
	a, err := app.Open(app.Options{
		Config: &config.Config{
			Path:     t.TempDir(),
			Driver:   store.DriverDiskv,
			Reminder: config.Reminder{Enabled: enabled, Hour: 9},
		},
		Clock: clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)),
		Log:   zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("app.Open: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestRemindNowThenWaits(t *testing.T) {
	a := newApp(t, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := (&Remind{App: a, Now: true, Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{reminder.Message, "2024-03-06 09:00"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in %q", want, buf.String())
		}
	}
}

func TestRemindDisabled(t *testing.T) {
	a := newApp(t, false)
	err := (&Remind{App: a, Out: &bytes.Buffer{}}).Do(context.Background())
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}
