package notify

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorderDrain(t *testing.T) {
	r := &Recorder{}
	if got := r.Drain(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil drain, got %#v", got)
	}
	r.Notify(Notification{Message: "Tarea añadida", Severity: Success})
	r.Notify(Notification{Message: "La tarea no puede estar vacía", Severity: Error})

	last, ok := r.Last()
	if !ok || last.Severity != Error {
		t.Fatalf("unexpected last %+v", last)
	}
	got := r.Drain()
	if len(got) != 2 || got[0].Message != "Tarea añadida" {
		t.Fatalf("unexpected drain %+v", got)
	}
	if len(r.All()) != 0 {
		t.Fatalf("expected queue empty after drain")
	}
}

func TestVisible(t *testing.T) {
	at := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	n := Notification{Message: "x", At: at}
	if !n.Visible(at.Add(2 * time.Second)) {
		t.Fatalf("expected toast visible after 2s")
	}
	if n.Visible(at.Add(ToastDuration)) {
		t.Fatalf("expected toast hidden after %s", ToastDuration)
	}
}

func TestPrinter(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	p := &Printer{Out: &buf}
	p.Notify(Notification{Message: "Evento añadido", Severity: Success})
	p.Notify(Notification{Message: "Selecciona una emoción", Severity: Error})
	want := "✓ Evento añadido\n✗ Selecciona una emoción\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestMultiAndLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := &Recorder{}
	n := Multi(r, nil, &Logger{Log: zap.New(core)})
	n.Notify(Notification{Message: "Emoción registrada", Severity: Success})

	if len(r.All()) != 1 {
		t.Fatalf("expected recorder to receive the notification")
	}
	entries := logs.All()
	if len(entries) != 1 || !strings.Contains(entries[0].Message, "Emoción registrada") {
		t.Fatalf("unexpected log entries %+v", entries)
	}
}
