package mcp

import (
	"fmt"
	"sync"
	"time"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/glyph"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/notify"
	"tableflip.dev/diario/pkg/runner/complete"
	"tableflip.dev/diario/pkg/view"
)

// Reply is the JSON payload of every tool call and resource read. It
// carries the notifications the journal emitted while handling the call.
type Reply struct {
	OK            bool                  `json:"ok"`
	Data          any                   `json:"data,omitempty"`
	Error         string                `json:"error,omitempty"`
	Notifications []notify.Notification `json:"notifications"`
}

// Service serializes MCP access to a journal.Service.
type Service struct {
	mu     sync.Mutex
	svc    *journal.Service
	toasts *notify.Recorder
}

// NewService wraps svc. toasts must be a notifier of svc.
func NewService(svc *journal.Service, toasts *notify.Recorder) *Service {
	return &Service{svc: svc, toasts: toasts}
}

func (s *Service) do(fn func(j *journal.Service) Reply) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := fn(s.svc)
	r.Notifications = s.toasts.Drain()
	return r
}

func ok(data any) Reply {
	return Reply{OK: true, Data: data}
}

func failed(format string, args ...any) Reply {
	return Reply{Error: fmt.Sprintf(format, args...)}
}

// Reload re-reads the store after another process changed it.
func (s *Service) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.svc.Reload()
}

func (s *Service) Dashboard() Reply {
	return s.do(func(j *journal.Service) Reply {
		return ok(view.Home(j.State(), j.Now()))
	})
}

func (s *Service) Tasks() Reply {
	return s.do(func(j *journal.Service) Reply {
		return ok(view.Tasks(j.State()))
	})
}

// AddTaskOptions are the arguments of add_task.
type AddTaskOptions struct {
	Content string `json:"content"`
	Date    string `json:"date"`
	Symbol  string `json:"symbol"`
}

func (s *Service) AddTask(opts AddTaskOptions) Reply {
	sym, err := ParseSymbol(opts.Symbol, glyph.Task)
	if err != nil {
		return failed("%v", err)
	}
	return s.do(func(j *journal.Service) Reply {
		t, added := j.CreateTask(journal.TaskInput{Symbol: sym, Content: opts.Content, Date: opts.Date})
		if !added {
			return Reply{}
		}
		return ok(view.Task(t))
	})
}

// ToggleTask flips the task with the given id or unique id prefix.
func (s *Service) ToggleTask(id string) Reply {
	return s.do(func(j *journal.Service) Reply {
		full, err := complete.Resolve(j.State(), id)
		if err != nil {
			return failed("%v", err)
		}
		j.ToggleCompletion(full)
		t, _ := j.State().Task(full)
		return ok(view.Task(t))
	})
}

func (s *Service) MigrateTasks() Reply {
	return s.do(func(j *journal.Service) Reply {
		return ok(map[string]int{"migrated": j.MigrateTasks()})
	})
}

// ClearCompleted removes completed tasks when confirm is set. Without it
// nothing changes.
func (s *Service) ClearCompleted(confirm bool) Reply {
	return s.do(func(j *journal.Service) Reply {
		j.SetConfirmer(journal.ConfirmFunc(func(string) bool { return confirm }))
		defer j.SetConfirmer(nil)
		n := j.ClearCompletedTasks()
		return Reply{OK: n > 0, Data: map[string]int{"cleared": n}}
	})
}

func (s *Service) Events() Reply {
	return s.do(func(j *journal.Service) Reply {
		return ok(view.Events(j.State(), j.Now()))
	})
}

func (s *Service) AddEvent(in journal.EventInput) Reply {
	return s.do(func(j *journal.Service) Reply {
		if in.Date == "" {
			in.Date = daykey.Today(j.Now()).String()
		}
		ev, added := j.CreateEvent(in)
		if !added {
			return Reply{}
		}
		return ok(view.Event(ev.Event, ev.Date))
	})
}

func (s *Service) Emotions() Reply {
	return s.do(func(j *journal.Service) Reply {
		return ok(view.Emotions(j.State(), j.Now()))
	})
}

// LogEmotion records an emotion. A nil intensity means the default.
func (s *Service) LogEmotion(emotion, note string, intensity *int) Reply {
	in := journal.EmotionInput{Emotion: emotion, Note: note, Intensity: entry.DefaultIntensity}
	if intensity != nil {
		in.Intensity = *intensity
	}
	return s.do(func(j *journal.Service) Reply {
		e, added := j.CreateEmotion(in)
		if !added {
			return Reply{}
		}
		return ok(view.Emotion(e, j.Now().Location()))
	})
}

// Day describes the tasks and events of the day key raw. An empty key means
// today.
func (s *Service) Day(raw string) Reply {
	return s.do(func(j *journal.Service) Reply {
		key := daykey.Today(j.Now())
		if raw != "" {
			var err error
			if key, err = daykey.Parse(raw); err != nil {
				return failed("invalid day %q", raw)
			}
		}
		return ok(view.DayDetail(j.State(), key))
	})
}

// Calendar builds the month grid. Zero year and month mean the current month.
func (s *Service) Calendar(year, month int) Reply {
	return s.do(func(j *journal.Service) Reply {
		now := j.Now()
		if year == 0 && month == 0 {
			return ok(view.MonthGrid(j.State(), now.Year(), now.Month(), now))
		}
		if year < 1 {
			return failed("invalid year %d", year)
		}
		if month < 1 || month > 12 {
			return failed("invalid month %d", month)
		}
		return ok(view.MonthGrid(j.State(), year, time.Month(month), now))
	})
}

func (s *Service) Statistics() Reply {
	return s.do(func(j *journal.Service) Reply {
		return ok(view.Stats(j.State(), j.Now()))
	})
}

// ParseSymbol reads a task symbol by glyph or name, returning fallback for
// an empty input.
func ParseSymbol(input string, fallback glyph.Symbol) (glyph.Symbol, error) {
	if input == "" {
		return fallback, nil
	}
	sym, err := glyph.Parse(input)
	if err != nil {
		return "", fmt.Errorf("unknown symbol %q", input)
	}
	return sym, nil
}
