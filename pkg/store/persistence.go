package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
)

// Keys under which the three collections are stored.
const (
	KeyTasks    = "tasks"
	KeyEvents   = "events"
	KeyEmotions = "emotions"
)

// Keys lists every stored key.
func Keys() []string {
	return []string{KeyTasks, KeyEvents, KeyEmotions}
}

// Persistence defines the persistence contract for journal collections.
// Loads never fail: absent or unreadable data yields the empty default.
type Persistence interface {
	Tasks() []*entry.Task
	SaveTasks(tasks []*entry.Task) error
	Events() map[daykey.Key][]*entry.Event
	SaveEvents(events map[daykey.Key][]*entry.Event) error
	Emotions() []*entry.Emotion
	SaveEmotions(emotions []*entry.Emotion) error
	Watch(ctx context.Context) (<-chan Event, error)
	Close() error
}

// Options configure Load.
type Options struct {
	Driver   Driver
	BasePath string
	Logger   *zap.Logger
}

// Load opens the configured backend and wraps it in a Persistence.
func Load(opts Options) (Persistence, error) {
	b, err := Open(opts.Driver, opts.BasePath)
	if err != nil {
		return nil, err
	}
	return New(b, opts.Logger), nil
}

// New wraps an already opened backend.
func New(b Backend, log *zap.Logger) Persistence {
	if log == nil {
		log = zap.NewNop()
	}
	return &persistence{b: b, log: log.Named("store")}
}

type persistence struct {
	b   Backend
	log *zap.Logger
}

// load decodes the value stored under key. Any failure yields the zero T and
// is only logged.
func load[T any](p *persistence, key string) T {
	var zero T
	val, err := p.b.Read(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			p.log.Debug("key not stored yet, using default", zap.String("key", key))
			return zero
		}
		p.log.Debug("read failed, using default", zap.String("key", key), zap.Error(err))
		return zero
	}
	var v T
	if err := json.Unmarshal(val, &v); err != nil {
		p.log.Debug("stored value unparseable, using default", zap.String("key", key), zap.Error(err))
		return zero
	}
	return v
}

func (p *persistence) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return p.b.Write(key, data)
}

func (p *persistence) Tasks() []*entry.Task {
	return compact(load[[]*entry.Task](p, KeyTasks))
}

func (p *persistence) SaveTasks(tasks []*entry.Task) error {
	if tasks == nil {
		tasks = []*entry.Task{}
	}
	return p.save(KeyTasks, tasks)
}

func (p *persistence) Events() map[daykey.Key][]*entry.Event {
	events := load[map[daykey.Key][]*entry.Event](p, KeyEvents)
	if events == nil {
		return map[daykey.Key][]*entry.Event{}
	}
	for k, evs := range events {
		events[k] = compact(evs)
	}
	return events
}

func (p *persistence) SaveEvents(events map[daykey.Key][]*entry.Event) error {
	if events == nil {
		events = map[daykey.Key][]*entry.Event{}
	}
	return p.save(KeyEvents, events)
}

func (p *persistence) Emotions() []*entry.Emotion {
	return compact(load[[]*entry.Emotion](p, KeyEmotions))
}

func (p *persistence) SaveEmotions(emotions []*entry.Emotion) error {
	if emotions == nil {
		emotions = []*entry.Emotion{}
	}
	return p.save(KeyEmotions, emotions)
}

func (p *persistence) Close() error {
	return p.b.Close()
}

// compact drops null elements a hand edited file may contain and never
// returns nil.
func compact[T any](in []*T) []*T {
	out := make([]*T, 0, len(in))
	for _, v := range in {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}
