package info

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/config"
	"tableflip.dev/diario/pkg/store"
)

func TestInfo(t *testing.T) {
	color.NoColor = true
	cfg := &config.Config{
		Path:     t.TempDir(),
		Driver:   store.DriverSQLite,
		Reminder: config.Reminder{Enabled: true, Hour: 21, Minute: 5},
	}
	a, err := app.Open(app.Options{Config: cfg, Log: zap.NewNop()})
	if err != nil {
		t.Fatalf("app.Open: %v", err)
	}
	defer a.Close()
	a.Journal.AddTask("", "uno")

	var buf bytes.Buffer
	if err := (&Info{App: a, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{"(defaults)", "sqlite", "21:05"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in %q", want, buf.String())
		}
	}

	buf.Reset()
	if err := (&Info{App: a, JSON: true, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var s Summary
	if err := json.Unmarshal(buf.Bytes(), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Tasks != 1 || s.Path != cfg.Path {
		t.Fatalf("unexpected summary %+v", s)
	}
}
