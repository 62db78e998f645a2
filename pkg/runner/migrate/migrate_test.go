package migrate

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/app"
	"tableflip.dev/diario/pkg/config"
	"tableflip.dev/diario/pkg/glyph"
	"tableflip.dev/diario/pkg/store"
)

func TestMigrateJSON(t *testing.T) {
	a, err := app.Open(app.Options{
		Config: &config.Config{Path: t.TempDir(), Driver: store.DriverDiskv},
		Clock:  clockwork.NewFakeClockAt(time.Date(2024, time.March, 31, 10, 0, 0, 0, time.UTC)),
		Log:    zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("app.Open: %v", err)
	}
	defer a.Close()

	a.Journal.AddTask("", "hoy")
	a.Journal.AddTaskOn("", "otro día", "2024-03-30")

	var buf bytes.Buffer
	if err := (&Migrate{App: a, JSON: true, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var out map[string]int
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if out["migrated"] != 1 {
		t.Fatalf("expected 1 migrated, got %v", out)
	}
	moved := a.Journal.State().Tasks[0]
	if moved.Date != "2024-4-1" || moved.Symbol != glyph.Migrated {
		t.Fatalf("unexpected migrated task %+v", moved)
	}
}
