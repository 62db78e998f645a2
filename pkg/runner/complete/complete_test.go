package complete

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/config"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/store"
)

func newApp(t *testing.T) *app.App {
	t.Helper()
	color.NoColor = true
	a, err := app.Open(app.Options{
		Config: &config.Config{Path: t.TempDir(), Driver: store.DriverDiskv},
		Clock:  clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)),
		Log:    zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("app.Open: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestResolve(t *testing.T) {
	st := journal.NewState(time.Now())
	st.Tasks = []*entry.Task{{ID: "abc123"}, {ID: "abd456"}, {ID: "x"}}

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "abc123", want: "abc123"},
		{in: "abc", want: "abc123"},
		{in: "x", want: "x"},
		{in: "ab", wantErr: true},
		{in: "zzz", wantErr: true},
		{in: " ", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Resolve(st, tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompleteTogglesByPrefix(t *testing.T) {
	a := newApp(t)
	a.Journal.AddTask("", "regar plantas")
	id := a.Journal.State().Tasks[0].ID

	var buf bytes.Buffer
	c := Complete{App: a, IDs: []string{id[:12]}, Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !a.Journal.State().Tasks[0].Completed {
		t.Fatalf("expected the task completed")
	}
	if !strings.Contains(buf.String(), "Completadas - 1") {
		t.Fatalf("expected the completed list, got %q", buf.String())
	}

	c = Complete{App: a, IDs: []string{"nope"}, Out: &buf}
	if err := c.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for an unknown id")
	}
}
