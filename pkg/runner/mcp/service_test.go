package mcp

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mark3labs/mcp-go/mcp"

	"tableflip.dev/diario/pkg/glyph"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/notify"
	"tableflip.dev/diario/pkg/store"
	"tableflip.dev/diario/pkg/view"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	p, err := store.Load(store.Options{Driver: store.DriverDiskv, BasePath: t.TempDir()})
	if err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })

	rec := &notify.Recorder{}
	n := 0
	svc, err := journal.New(p, journal.Options{
		Notifier: rec,
		Clock:    clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)),
		NewID: func() string {
			n++
			return fmt.Sprintf("mcp-%d", n)
		},
	})
	if err != nil {
		t.Fatalf("journal.New: %v", err)
	}
	return NewService(svc, rec)
}

func TestServiceAddTaskDefaults(t *testing.T) {
	svc := newTestService(t)
	r := svc.AddTask(AddTaskOptions{Content: "Regar las plantas"})
	if !r.OK {
		t.Fatalf("expected task added, got %+v", r)
	}
	task, ok := r.Data.(view.TaskItem)
	if !ok {
		t.Fatalf("expected a task item, got %T", r.Data)
	}
	if task.Symbol != glyph.Task.String() || task.Date != "2024-3-5" {
		t.Fatalf("unexpected task %+v", task)
	}
	if len(r.Notifications) != 1 || r.Notifications[0].Message != journal.MsgTaskAdded {
		t.Fatalf("expected the added toast, got %+v", r.Notifications)
	}
}

func TestServiceAddTaskRejects(t *testing.T) {
	svc := newTestService(t)
	tests := map[string]struct {
		opts     AddTaskOptions
		wantErr  bool
		wantNote string
	}{
		"blank content": {
			opts:     AddTaskOptions{Content: "  "},
			wantNote: journal.MsgTaskEmpty,
		},
		"bad date": {
			opts:     AddTaskOptions{Content: "x", Date: "mañana"},
			wantNote: journal.MsgBadDate,
		},
		"unknown symbol": {
			opts:    AddTaskOptions{Content: "x", Symbol: "estrella"},
			wantErr: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := svc.AddTask(tc.opts)
			if r.OK {
				t.Fatalf("expected rejection")
			}
			if tc.wantErr && r.Error == "" {
				t.Fatalf("expected an error message")
			}
			if tc.wantNote != "" && (len(r.Notifications) != 1 || r.Notifications[0].Message != tc.wantNote) {
				t.Fatalf("expected toast %q, got %+v", tc.wantNote, r.Notifications)
			}
		})
	}
}

func TestServiceToggleAndClear(t *testing.T) {
	svc := newTestService(t)
	svc.AddTask(AddTaskOptions{Content: "uno"})
	svc.AddTask(AddTaskOptions{Content: "dos"})

	if r := svc.ToggleTask("mcp-2"); !r.OK {
		t.Fatalf("toggle: %+v", r)
	}
	if r := svc.ToggleTask("nada"); r.OK || r.Error == "" {
		t.Fatalf("expected an unknown id to fail, got %+v", r)
	}

	if r := svc.ClearCompleted(false); r.OK {
		t.Fatalf("expected nothing cleared without confirm")
	}
	r := svc.ClearCompleted(true)
	if !r.OK {
		t.Fatalf("expected a clear, got %+v", r)
	}
	if got := r.Data.(map[string]int)["cleared"]; got != 1 {
		t.Fatalf("expected 1 cleared, got %d", got)
	}
	lists := svc.Tasks().Data.(view.TaskLists)
	if len(lists.Pending) != 1 || len(lists.Completed) != 0 {
		t.Fatalf("unexpected lists %+v", lists)
	}
}

func TestServiceEventsDefaultToToday(t *testing.T) {
	svc := newTestService(t)
	if r := svc.AddEvent(journal.EventInput{Title: "Yoga", StartTime: "08:00"}); !r.OK {
		t.Fatalf("add event: %+v", r)
	}
	day := svc.Day("").Data.(view.Day)
	if len(day.Events) != 1 || day.Events[0].Title != "Yoga" {
		t.Fatalf("expected the event today, got %+v", day)
	}
	if r := svc.Day("ayer"); r.OK || r.Error == "" {
		t.Fatalf("expected a bad key to fail")
	}
}

func TestServiceLogEmotionIntensity(t *testing.T) {
	svc := newTestService(t)
	if r := svc.LogEmotion("feliz", "", nil); !r.OK || r.Data.(view.EmotionItem).Intensity != 5 {
		t.Fatalf("expected default intensity, got %+v", r)
	}
	three := 3
	if r := svc.LogEmotion("cansado", "poco sueño", &three); !r.OK || r.Data.(view.EmotionItem).Intensity != 3 {
		t.Fatalf("expected intensity 3, got %+v", r)
	}
	nine := 9
	if r := svc.LogEmotion("feliz", "", &nine); r.OK {
		t.Fatalf("expected intensity 9 rejected")
	}
	if got := len(svc.Emotions().Data.(view.EmotionLog).Entries); got != 2 {
		t.Fatalf("expected 2 emotions, got %d", got)
	}
}

func TestServiceCalendar(t *testing.T) {
	svc := newTestService(t)
	if cal := svc.Calendar(0, 0).Data.(view.Calendar); cal.Title != "marzo de 2024" {
		t.Fatalf("expected the current month, got %q", cal.Title)
	}
	if cal := svc.Calendar(2024, 2).Data.(view.Calendar); cal.Title != "febrero de 2024" {
		t.Fatalf("expected February, got %q", cal.Title)
	}
	if r := svc.Calendar(2024, 13); r.OK {
		t.Fatalf("expected month 13 rejected")
	}
}

func TestToJSONResult(t *testing.T) {
	res, err := toJSONResult(failed("invalid day %q", "x"))
	if err != nil {
		t.Fatalf("toJSONResult: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected a tool error")
	}
	text, isText := res.Content[0].(mcp.TextContent)
	if !isText {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	var r Reply
	if err := json.Unmarshal([]byte(text.Text), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Error != `invalid day "x"` {
		t.Fatalf("unexpected reply %+v", r)
	}

	res, _ = toJSONResult(ok(nil))
	if res.IsError {
		t.Fatalf("expected success")
	}
}
