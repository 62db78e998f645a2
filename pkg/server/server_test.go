package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/notify"
	"tableflip.dev/diario/pkg/store"
)

type response struct {
	OK            bool                  `json:"ok"`
	Data          json.RawMessage       `json:"data"`
	Error         string                `json:"error"`
	Notifications []notify.Notification `json:"notifications"`
}

func newTestServer(t *testing.T) (*httptest.Server, *Server) {
	t.Helper()
	p, err := store.Load(store.Options{Driver: store.DriverSQLite, BasePath: t.TempDir()})
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
			return fmt.Sprintf("id-%d", n)
		},
	})
	if err != nil {
		t.Fatalf("journal.New: %v", err)
	}
	s, err := New(svc, rec, Options{Origins: []string{"http://localhost:3000"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, s
}

// locked runs fn with the server's journal lock held, as handlers do.
func locked(s *Server, fn func(svc *journal.Service)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.svc)
}

func taskCount(s *Server) int {
	n := 0
	locked(s, func(svc *journal.Service) { n = len(svc.State().Tasks) })
	return n
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) (int, response) {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func TestHealthz(t *testing.T) {
	ts, _ := newTestServer(t)
	status, out := do(t, ts, http.MethodGet, "/healthz", "")
	if status != http.StatusOK || !out.OK {
		t.Fatalf("expected healthy, got %d %+v", status, out)
	}
	if out.Notifications == nil {
		t.Fatalf("expected an empty notifications list, not null")
	}
}

func TestCreateTaskReturnsNotification(t *testing.T) {
	ts, s := newTestServer(t)
	status, out := do(t, ts, http.MethodPost, "/api/tasks", `{"content":"Llamar a mamá","date":"2024-03-06"}`)
	if status != http.StatusCreated || !out.OK {
		t.Fatalf("expected 201 ok, got %d %+v", status, out)
	}
	if len(out.Notifications) != 1 || out.Notifications[0].Message != journal.MsgTaskAdded {
		t.Fatalf("expected task added toast, got %+v", out.Notifications)
	}
	var task struct {
		ID     string `json:"id"`
		Symbol string `json:"symbol"`
		Date   string `json:"date"`
	}
	if err := json.Unmarshal(out.Data, &task); err != nil {
		t.Fatalf("unmarshal task: %v", err)
	}
	if task.Date != "2024-3-6" || task.Symbol != "•" {
		t.Fatalf("unexpected task %+v", task)
	}
	if taskCount(s) != 1 {
		t.Fatalf("expected the task in state")
	}
}

func TestCreateTaskValidation(t *testing.T) {
	ts, _ := newTestServer(t)
	status, out := do(t, ts, http.MethodPost, "/api/tasks", `{"content":"   "}`)
	if status != http.StatusUnprocessableEntity || out.OK {
		t.Fatalf("expected 422, got %d %+v", status, out)
	}
	if len(out.Notifications) != 1 || out.Notifications[0].Severity != notify.Error {
		t.Fatalf("expected an error toast, got %+v", out.Notifications)
	}

	status, out = do(t, ts, http.MethodPost, "/api/tasks", `{"content":`)
	if status != http.StatusBadRequest || out.Error == "" {
		t.Fatalf("expected 400 on bad json, got %d %+v", status, out)
	}
}

func TestToggleMigrateAndClear(t *testing.T) {
	ts, s := newTestServer(t)
	var id string
	locked(s, func(svc *journal.Service) {
		svc.AddTask("", "hoy")
		svc.AddTask("", "hecha")
		id = svc.State().Tasks[1].ID
	})

	if status, _ := do(t, ts, http.MethodPost, "/api/tasks/"+id+"/toggle", ""); status != http.StatusOK {
		t.Fatalf("toggle: got %d", status)
	}
	if status, _ := do(t, ts, http.MethodPost, "/api/tasks/missing/toggle", ""); status != http.StatusNotFound {
		t.Fatalf("toggle missing: got %d", status)
	}

	_, out := do(t, ts, http.MethodPost, "/api/tasks/migrate", "")
	var migrated map[string]int
	if err := json.Unmarshal(out.Data, &migrated); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if migrated["migrated"] != 1 {
		t.Fatalf("expected 1 migrated, got %v", migrated)
	}

	_, out = do(t, ts, http.MethodPost, "/api/tasks/clear-completed", `{"confirm":false}`)
	if out.OK || taskCount(s) != 2 {
		t.Fatalf("expected nothing cleared without confirmation")
	}
	_, out = do(t, ts, http.MethodPost, "/api/tasks/clear-completed", `{"confirm":true}`)
	if !out.OK || taskCount(s) != 1 {
		t.Fatalf("expected one task cleared, got %+v", out)
	}
	if len(out.Notifications) != 1 || out.Notifications[0].Message != journal.ClearedMessage(1) {
		t.Fatalf("unexpected notifications %+v", out.Notifications)
	}
}

func TestEventsAndDays(t *testing.T) {
	ts, _ := newTestServer(t)
	status, _ := do(t, ts, http.MethodPost, "/api/events", `{"title":"Dentista","date":"2024-03-07","startTime":"09:00","endTime":"10:00"}`)
	if status != http.StatusCreated {
		t.Fatalf("create event: got %d", status)
	}

	_, out := do(t, ts, http.MethodGet, "/api/events", "")
	var lists struct {
		Upcoming []struct{ Title string } `json:"upcoming"`
	}
	if err := json.Unmarshal(out.Data, &lists); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(lists.Upcoming) != 1 || lists.Upcoming[0].Title != "Dentista" {
		t.Fatalf("unexpected events %+v", lists)
	}

	_, out = do(t, ts, http.MethodGet, "/api/days/2024-3-7", "")
	var day struct {
		Events []struct{ TimeLabel string } `json:"events"`
	}
	if err := json.Unmarshal(out.Data, &day); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(day.Events) != 1 || day.Events[0].TimeLabel != "09:00 - 10:00" {
		t.Fatalf("unexpected day %+v", day)
	}

	if status, _ := do(t, ts, http.MethodGet, "/api/days/tomorrow", ""); status != http.StatusBadRequest {
		t.Fatalf("expected 400 for a bad key, got %d", status)
	}
}

func TestCalendarQuery(t *testing.T) {
	ts, _ := newTestServer(t)
	_, out := do(t, ts, http.MethodGet, "/api/calendar?year=2024&month=2", "")
	var cal struct {
		Title string            `json:"title"`
		Cells []json.RawMessage `json:"cells"`
	}
	if err := json.Unmarshal(out.Data, &cal); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// February 2024 starts on a Thursday: 4 padding cells and 29 days.
	if cal.Title != "febrero de 2024" || len(cal.Cells) != 33 {
		t.Fatalf("unexpected calendar %q with %d cells", cal.Title, len(cal.Cells))
	}

	if status, _ := do(t, ts, http.MethodGet, "/api/calendar?year=2024&month=13", ""); status != http.StatusBadRequest {
		t.Fatalf("expected 400 for month 13, got %d", status)
	}
}

func TestEmotionsDefaultIntensity(t *testing.T) {
	ts, _ := newTestServer(t)
	_, out := do(t, ts, http.MethodPost, "/api/emotions", `{"emotion":"agradecido"}`)
	var e struct {
		Intensity int    `json:"intensity"`
		Emoji     string `json:"emoji"`
	}
	if err := json.Unmarshal(out.Data, &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Intensity != 5 || e.Emoji != "🙏" {
		t.Fatalf("unexpected emotion %+v", e)
	}

	status, out := do(t, ts, http.MethodPost, "/api/emotions", `{"emotion":"feliz","intensity":9}`)
	if status != http.StatusUnprocessableEntity || out.Notifications[0].Message != journal.MsgBadIntensity {
		t.Fatalf("expected intensity rejection, got %d %+v", status, out)
	}

	_, out = do(t, ts, http.MethodGet, "/api/statistics", "")
	var stats struct {
		TotalEmotions int `json:"totalEmotions"`
	}
	if err := json.Unmarshal(out.Data, &stats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if stats.TotalEmotions != 1 {
		t.Fatalf("expected 1 emotion, got %d", stats.TotalEmotions)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts, _ := newTestServer(t)
	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin, got %q", got)
	}
}
