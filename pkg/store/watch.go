package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Event is emitted by Persistence.Watch when the backing files change.
type Event struct {
	// Key names the changed collection. Empty means every key should be
	// reloaded.
	Key string
}

// All reports whether the event invalidates every key.
func (e Event) All() bool {
	return e.Key == ""
}

const watchDelay = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Writes made through
// this Persistence are reported too, so callers reload idempotently. The
// channel is closed once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	dir := p.b.Dir()
	if dir == "" {
		return nil, errors.New("store: backend has no directory to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				p.log.Debug("watcher close", zap.Error(err))
			}
		}()

		var sendMu sync.Mutex
		closed := false
		send := func(ev Event) {
			sendMu.Lock()
			defer sendMu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// The consumer is behind; its next reload picks this up.
			}
		}

		throttle := newEventThrottle(watchDelay)
		defer func() {
			throttle.Stop()
			sendMu.Lock()
			closed = true
			sendMu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Debug("watcher error, reloading everything", zap.Error(err))
				throttle.Enqueue(Event{}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op == fsnotify.Chmod {
					continue
				}
				key, relevant := keyForPath(evt.Name)
				if !relevant {
					continue
				}
				throttle.Enqueue(Event{Key: key}, send)
			}
		}
	}()

	return events, nil
}

// keyForPath maps a changed file to the key it stores. sqlite files hold
// every key.
func keyForPath(path string) (string, bool) {
	name := filepath.Base(path)
	for _, k := range Keys() {
		if name == k {
			return k, true
		}
	}
	if strings.HasPrefix(name, DatabaseFile) {
		return "", true
	}
	return "", false
}

// eventThrottle coalesces bursts of writes so listeners reload once per
// burst instead of once per file operation.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	if _, all := pending[""]; all {
		send(Event{})
		return
	}
	for _, k := range Keys() {
		if _, ok := pending[k]; ok {
			send(Event{Key: k})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
