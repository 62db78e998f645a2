package get

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/config"
	"tableflip.dev/diario/pkg/daykey"
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

func TestGetText(t *testing.T) {
	a := newApp(t)
	a.Journal.AddTask("", "Comprar pan")
	a.Journal.AddEvent("Dentista", "2024-03-07", "09:00", "")
	a.Journal.AddEmotion("feliz", "sol", 4)

	tests := []struct {
		target Target
		day    string
		want   []string
	}{
		{Home, "", []string{"Tareas pendientes:", "Eventos próximos:"}},
		{Tasks, "", []string{"Pendientes", "Comprar pan"}},
		{Events, "", []string{"Próximos", "Dentista"}},
		{Moods, "", []string{"Emociones", "sol"}},
		{Calendar, "", []string{"marzo de 2024"}},
		{Day, "2024-3-7", []string{"Dentista", "Tareas"}},
		{Stats, "", []string{"Tareas"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			var buf bytes.Buffer
			g := Get{App: a, Target: tt.target, Day: daykey.Key(tt.day), Out: &buf}
			if err := g.Do(context.Background()); err != nil {
				t.Fatalf("Do: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Fatalf("expected %q in %q", want, buf.String())
				}
			}
		})
	}
}

func TestGetCalendarMonthAsJSON(t *testing.T) {
	a := newApp(t)
	var buf bytes.Buffer
	g := Get{
		App:    a,
		Target: Calendar,
		Month:  time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		JSON:   true,
		Out:    &buf,
	}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var cal struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(buf.Bytes(), &cal); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if cal.Title != "febrero de 2024" {
		t.Fatalf("unexpected title %q", cal.Title)
	}
}

func TestGetUnknownTarget(t *testing.T) {
	g := Get{App: newApp(t), Target: "notes", Out: &bytes.Buffer{}}
	if err := g.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for an unknown view")
	}
}
