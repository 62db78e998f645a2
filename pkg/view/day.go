package view

import (
	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/journal"
)

// Day is the detail of a single day.
type Day struct {
	Key    daykey.Key  `json:"key"`
	Title  string      `json:"title"`
	Tasks  []TaskItem  `json:"tasks"`
	Events []EventItem `json:"events"`
}

// TasksEmpty is the line shown when the day has no tasks.
func (d Day) TasksEmpty() string {
	if len(d.Tasks) == 0 {
		return NoDayTasks
	}
	return ""
}

// EventsEmpty is the line shown when the day has no events.
func (d Day) EventsEmpty() string {
	if len(d.Events) == 0 {
		return NoDayEvents
	}
	return ""
}

// DayDetail lists every task dated key, done or not, and every event filed
// under key.
func DayDetail(st *journal.State, key daykey.Key) Day {
	d := Day{Key: key, Title: KeyLongDate(key), Tasks: []TaskItem{}, Events: []EventItem{}}
	for _, t := range st.Tasks {
		if t.Date == key {
			d.Tasks = append(d.Tasks, Task(t))
		}
	}
	for _, ev := range st.Events[key] {
		d.Events = append(d.Events, Event(ev, key))
	}
	return d
}
