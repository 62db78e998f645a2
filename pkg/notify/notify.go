// Package notify carries the short status messages ("toasts") produced by
// journal operations to whatever surface is showing them.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 3 * time.Second

// Severity classifies a notification.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// Notification is a single user facing message.
type Notification struct {
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	At       time.Time `json:"at"`
}

// Visible reports whether n is still on screen at now.
func (n Notification) Visible(now time.Time) bool {
	return !n.At.IsZero() && now.Sub(n.At) < ToastDuration
}

// Notifier receives notifications.
type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to Notifier.
type Func func(n Notification)

func (f Func) Notify(n Notification) { f(n) }

// Discard drops everything.
var Discard Notifier = Func(func(Notification) {})

// Multi fans a notification out to every non-nil notifier.
func Multi(ns ...Notifier) Notifier {
	var list []Notifier
	for _, n := range ns {
		if n != nil {
			list = append(list, n)
		}
	}
	return Func(func(n Notification) {
		for _, target := range list {
			target.Notify(n)
		}
	})
}

// Printer writes one colored line per notification.
type Printer struct {
	Out io.Writer
}

func (p *Printer) Notify(n Notification) {
	c, mark := style(n.Severity)
	_, _ = c.Fprintf(p.Out, "%s %s\n", mark, n.Message)
}

func style(s Severity) (*color.Color, string) {
	switch s {
	case Success:
		return color.New(color.FgGreen), "✓"
	case Error:
		return color.New(color.FgRed, color.Bold), "✗"
	case Warning:
		return color.New(color.FgYellow), "!"
	default:
		return color.New(color.FgCyan), "i"
	}
}

// Recorder queues notifications in memory. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Drain returns the queued notifications and empties the queue.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.items
	r.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

// All returns a copy of the queue without draining it.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Last returns the newest notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Logger mirrors notifications into a zap logger.
type Logger struct {
	Log *zap.Logger
}

func (l *Logger) Notify(n Notification) {
	if l.Log == nil {
		return
	}
	fields := []zap.Field{zap.String("severity", string(n.Severity))}
	switch n.Severity {
	case Error:
		l.Log.Warn(n.Message, fields...)
	default:
		l.Log.Info(n.Message, fields...)
	}
}

// String renders n as "[severity] message".
func (n Notification) String() string {
	return fmt.Sprintf("[%s] %s", n.Severity, n.Message)
}
