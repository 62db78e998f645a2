package view

import (
	"sort"
	"time"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/journal"
)

// TaskLists splits tasks into pending and completed, each in stored order.
type TaskLists struct {
	Pending   []TaskItem `json:"pending"`
	Completed []TaskItem `json:"completed"`
}

// PendingEmpty is the line shown instead of an empty pending list.
func (l TaskLists) PendingEmpty() string {
	if len(l.Pending) == 0 {
		return NoPendingTasks
	}
	return ""
}

// CompletedEmpty is the line shown instead of an empty completed list.
func (l TaskLists) CompletedEmpty() string {
	if len(l.Completed) == 0 {
		return NoCompletedTasks
	}
	return ""
}

// Tasks builds the task lists.
func Tasks(st *journal.State) TaskLists {
	l := TaskLists{Pending: []TaskItem{}, Completed: []TaskItem{}}
	for _, t := range st.Tasks {
		if t.Completed {
			l.Completed = append(l.Completed, Task(t))
		} else {
			l.Pending = append(l.Pending, Task(t))
		}
	}
	return l
}

// EventLists partitions every event by its day relative to today.
type EventLists struct {
	// Upcoming holds days from today on, earliest first.
	Upcoming []EventItem `json:"upcoming"`
	// Past holds earlier days, latest first, then days that are not dates.
	Past []EventItem `json:"past"`
}

// UpcomingEmpty is the line shown instead of an empty upcoming list.
func (l EventLists) UpcomingEmpty() string {
	if len(l.Upcoming) == 0 {
		return NoUpcomingEvents
	}
	return ""
}

// PastEmpty is the line shown instead of an empty past list.
func (l EventLists) PastEmpty() string {
	if len(l.Past) == 0 {
		return NoPastEvents
	}
	return ""
}

// upcoming reports whether day is today or later. Keys that are not dates
// are never upcoming.
func upcoming(day, today daykey.Key) bool {
	return day.Valid() && !day.Before(today)
}

// Events builds the partitioned event lists.
func Events(st *journal.State, now time.Time) EventLists {
	today := daykey.Today(now)

	var upKeys, pastKeys []daykey.Key
	for k, evs := range st.Events {
		if len(evs) == 0 {
			continue
		}
		if upcoming(k, today) {
			upKeys = append(upKeys, k)
		} else {
			pastKeys = append(pastKeys, k)
		}
	}
	sort.Slice(upKeys, func(i, j int) bool { return daykey.Compare(upKeys[i], upKeys[j]) < 0 })
	sort.Slice(pastKeys, func(i, j int) bool {
		a, b := pastKeys[i], pastKeys[j]
		// Latest first, with keys that are not dates at the end.
		switch {
		case a.Valid() != b.Valid():
			return a.Valid()
		case !a.Valid():
			return a < b
		default:
			return daykey.Compare(a, b) > 0
		}
	})

	l := EventLists{Upcoming: []EventItem{}, Past: []EventItem{}}
	for _, de := range entry.FlattenEvents(st.Events, upKeys) {
		l.Upcoming = append(l.Upcoming, Event(de.Event, de.Date))
	}
	for _, de := range entry.FlattenEvents(st.Events, pastKeys) {
		l.Past = append(l.Past, Event(de.Event, de.Date))
	}
	return l
}

// EmotionLog is the mood log, most recent first.
type EmotionLog struct {
	Entries []EmotionItem `json:"entries"`
}

// EmptyText is the line shown instead of an empty emotion log.
func (l EmotionLog) EmptyText() string {
	if len(l.Entries) == 0 {
		return NoEmotions
	}
	return ""
}

// Emotions builds the mood log with dates shown in now's location.
func Emotions(st *journal.State, now time.Time) EmotionLog {
	l := EmotionLog{Entries: make([]EmotionItem, 0, len(st.Emotions))}
	for i := len(st.Emotions) - 1; i >= 0; i-- {
		l.Entries = append(l.Entries, Emotion(st.Emotions[i], now.Location()))
	}
	return l
}
