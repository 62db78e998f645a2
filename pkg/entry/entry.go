// Package entry defines the records kept by the journal: tasks, events and
// mood entries.
package entry

import (
	"github.com/google/uuid"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/glyph"
)

// Task is a journal line filed under a day.
type Task struct {
	ID        string       `json:"id"`
	Symbol    glyph.Symbol `json:"symbol"`
	Content   string       `json:"content"`
	Date      daykey.Key   `json:"date"`
	Completed bool         `json:"completed"`
	CreatedAt Timestamp    `json:"createdAt"`
}

// Toggle flips the completion flag.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}

// Migrate rolls the task forward to the given day.
func (t *Task) Migrate(to daykey.Key) {
	t.Symbol = glyph.Migrated
	t.Date = to
}

// Event is a calendar appointment. Its day is the key it is filed under.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	CreatedAt Timestamp `json:"createdAt"`
}

// DatedEvent pairs an event with the day it is filed under.
type DatedEvent struct {
	*Event
	Date daykey.Key `json:"date"`
}

// Emotion is a mood log entry.
type Emotion struct {
	ID        string    `json:"id"`
	Emotion   string    `json:"emotion"`
	Note      string    `json:"note"`
	Intensity int       `json:"intensity"`
	Date      Timestamp `json:"date"`
}

// NewID returns a unique, time-ordered identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// FlattenEvents lists every event in m with the day it is filed under.
// The order follows keys as given, then insertion order within a day.
func FlattenEvents(m map[daykey.Key][]*Event, keys []daykey.Key) []DatedEvent {
	var out []DatedEvent
	for _, k := range keys {
		for _, ev := range m[k] {
			if ev == nil {
				continue
			}
			out = append(out, DatedEvent{Event: ev, Date: k})
		}
	}
	return out
}

// CountEvents returns the number of events across all days.
func CountEvents(m map[daykey.Key][]*Event) int {
	n := 0
	for _, evs := range m {
		n += len(evs)
	}
	return n
}
