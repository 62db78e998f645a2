package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/glyph"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/notify"
	"tableflip.dev/diario/pkg/view"
)

// Envelope wraps every API response.
type Envelope struct {
	OK            bool                  `json:"ok"`
	Data          any                   `json:"data,omitempty"`
	Error         string                `json:"error,omitempty"`
	Notifications []notify.Notification `json:"notifications"`
}

// result is what a handler body produces.
type result struct {
	status int
	ok     bool
	data   any
	err    string
}

func success(data any) result {
	return result{status: http.StatusOK, ok: true, data: data}
}

func failure(status int, format string, args ...any) result {
	return result{status: status, err: fmt.Sprintf(format, args...)}
}

// serve runs fn with the journal locked and writes the envelope, including
// every notification queued since the previous response.
func (s *Server) serve(w http.ResponseWriter, fn func(svc *journal.Service) result) {
	s.mu.Lock()
	res := fn(s.svc)
	toasts := s.toasts.Drain()
	s.mu.Unlock()

	if res.status == 0 {
		res.status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.status)
	env := Envelope{OK: res.ok, Data: res.data, Error: res.err, Notifications: toasts}
	if err := json.NewEncoder(w).Encode(env); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	s.serve(w, func(*journal.Service) result {
		return success(map[string]string{"status": "ok"})
	})
}

func (s *Server) dashboard(w http.ResponseWriter, _ *http.Request) {
	s.serve(w, func(svc *journal.Service) result {
		return success(view.Home(svc.State(), svc.Now()))
	})
}

// calendar serves the month in ?year=&month=, or the cursor's month when
// both are absent.
func (s *Server) calendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawYear, rawMonth := q.Get("year"), q.Get("month")
	s.serve(w, func(svc *journal.Service) result {
		if rawYear == "" && rawMonth == "" {
			return success(view.CalendarPage(svc.State(), svc.Now()))
		}
		year, err := strconv.Atoi(rawYear)
		if err != nil || year < 1 {
			return failure(http.StatusBadRequest, "invalid year %q", rawYear)
		}
		month, err := strconv.Atoi(rawMonth)
		if err != nil || month < 1 || month > 12 {
			return failure(http.StatusBadRequest, "invalid month %q", rawMonth)
		}
		return success(view.MonthGrid(svc.State(), year, time.Month(month), svc.Now()))
	})
}

func (s *Server) day(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["key"]
	s.serve(w, func(svc *journal.Service) result {
		key, err := daykey.Parse(raw)
		if err != nil {
			return failure(http.StatusBadRequest, "invalid day %q", raw)
		}
		return success(view.DayDetail(svc.State(), key))
	})
}

func (s *Server) listTasks(w http.ResponseWriter, _ *http.Request) {
	s.serve(w, func(svc *journal.Service) result {
		return success(view.Tasks(svc.State()))
	})
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var in journal.TaskInput
	if err := decode(w, r, &in); err != nil {
		s.serve(w, func(*journal.Service) result { return failure(http.StatusBadRequest, "%v", err) })
		return
	}
	if sym, err := glyph.Parse(string(in.Symbol)); err == nil {
		in.Symbol = sym
	}
	s.serve(w, func(svc *journal.Service) result {
		t, ok := svc.CreateTask(in)
		if !ok {
			return result{status: http.StatusUnprocessableEntity}
		}
		return result{status: http.StatusCreated, ok: true, data: view.Task(t)}
	})
}

func (s *Server) toggleTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.serve(w, func(svc *journal.Service) result {
		if !svc.ToggleCompletion(id) {
			return failure(http.StatusNotFound, "task %q not found", id)
		}
		t, _ := svc.State().Task(id)
		return success(view.Task(t))
	})
}

func (s *Server) migrateTasks(w http.ResponseWriter, _ *http.Request) {
	s.serve(w, func(svc *journal.Service) result {
		return success(map[string]int{"migrated": svc.MigrateTasks()})
	})
}

// ClearRequest confirms clearing completed tasks.
type ClearRequest struct {
	Confirm bool `json:"confirm"`
}

func (s *Server) clearCompleted(w http.ResponseWriter, r *http.Request) {
	var in ClearRequest
	if err := decode(w, r, &in); err != nil {
		s.serve(w, func(*journal.Service) result { return failure(http.StatusBadRequest, "%v", err) })
		return
	}
	s.serve(w, func(svc *journal.Service) result {
		svc.SetConfirmer(journal.ConfirmFunc(func(string) bool { return in.Confirm }))
		defer svc.SetConfirmer(nil)
		n := svc.ClearCompletedTasks()
		return result{status: http.StatusOK, ok: n > 0, data: map[string]int{"cleared": n}}
	})
}

func (s *Server) listEvents(w http.ResponseWriter, _ *http.Request) {
	s.serve(w, func(svc *journal.Service) result {
		return success(view.Events(svc.State(), svc.Now()))
	})
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var in journal.EventInput
	if err := decode(w, r, &in); err != nil {
		s.serve(w, func(*journal.Service) result { return failure(http.StatusBadRequest, "%v", err) })
		return
	}
	s.serve(w, func(svc *journal.Service) result {
		ev, ok := svc.CreateEvent(in)
		if !ok {
			return result{status: http.StatusUnprocessableEntity}
		}
		return result{status: http.StatusCreated, ok: true, data: view.Event(ev.Event, ev.Date)}
	})
}

func (s *Server) listEmotions(w http.ResponseWriter, _ *http.Request) {
	s.serve(w, func(svc *journal.Service) result {
		return success(view.Emotions(svc.State(), svc.Now()))
	})
}

// EmotionRequest is the body of POST /api/emotions. A missing intensity
// means the default.
type EmotionRequest struct {
	Emotion   string `json:"emotion"`
	Note      string `json:"note"`
	Intensity *int   `json:"intensity"`
}

func (s *Server) createEmotion(w http.ResponseWriter, r *http.Request) {
	var in EmotionRequest
	if err := decode(w, r, &in); err != nil {
		s.serve(w, func(*journal.Service) result { return failure(http.StatusBadRequest, "%v", err) })
		return
	}
	intensity := entry.DefaultIntensity
	if in.Intensity != nil {
		intensity = *in.Intensity
	}
	s.serve(w, func(svc *journal.Service) result {
		e, ok := svc.CreateEmotion(journal.EmotionInput{Emotion: in.Emotion, Note: in.Note, Intensity: intensity})
		if !ok {
			return result{status: http.StatusUnprocessableEntity}
		}
		return result{status: http.StatusCreated, ok: true, data: view.Emotion(e, svc.Now().Location())}
	})
}

func (s *Server) statistics(w http.ResponseWriter, _ *http.Request) {
	s.serve(w, func(svc *journal.Service) result {
		return success(view.Stats(svc.State(), svc.Now()))
	})
}
