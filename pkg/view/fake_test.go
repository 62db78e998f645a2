package view

import (
	"context"
	"errors"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/store"
)

type fakeStore struct{}

func newFakeStore() store.Persistence { return fakeStore{} }

func (fakeStore) Tasks() []*entry.Task                           { return []*entry.Task{} }
func (fakeStore) SaveTasks([]*entry.Task) error                  { return nil }
func (fakeStore) Events() map[daykey.Key][]*entry.Event          { return map[daykey.Key][]*entry.Event{} }
func (fakeStore) SaveEvents(map[daykey.Key][]*entry.Event) error { return nil }
func (fakeStore) Emotions() []*entry.Emotion                     { return []*entry.Emotion{} }
func (fakeStore) SaveEmotions([]*entry.Emotion) error            { return nil }
func (fakeStore) Close() error                                   { return nil }
func (fakeStore) Watch(context.Context) (<-chan store.Event, error) {
	return nil, errors.New("fake store: watch unsupported")
}
