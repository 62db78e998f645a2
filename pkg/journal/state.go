// Package journal owns the journal state and every operation that changes it.
// Operations validate their input, mutate State, persist the affected
// collection, notify the user and ask the Renderer to redraw the regions that
// changed.
package journal

import (
	"strings"
	"time"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
)

// Section is a top level view.
type Section string

const (
	SectionHome       Section = "home"
	SectionCalendar   Section = "calendar"
	SectionTasks      Section = "tasks"
	SectionEvents     Section = "events"
	SectionEmotions   Section = "emotions"
	SectionStatistics Section = "statistics"
)

// Sections lists the sections in navigation order.
func Sections() []Section {
	return []Section{SectionHome, SectionCalendar, SectionTasks, SectionEvents, SectionEmotions, SectionStatistics}
}

var sectionAliases = map[string]Section{
	"inicio":       SectionHome,
	"calendario":   SectionCalendar,
	"tareas":       SectionTasks,
	"eventos":      SectionEvents,
	"emociones":    SectionEmotions,
	"estadisticas": SectionStatistics,
	"estadísticas": SectionStatistics,
}

// ParseSection accepts a section name or its Spanish alias.
func ParseSection(raw string) (Section, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, s := range Sections() {
		if string(s) == raw {
			return s, true
		}
	}
	s, ok := sectionAliases[raw]
	return s, ok
}

// Title is the Spanish heading of the section.
func (s Section) Title() string {
	switch s {
	case SectionHome:
		return "Inicio"
	case SectionCalendar:
		return "Calendario"
	case SectionTasks:
		return "Tareas"
	case SectionEvents:
		return "Eventos"
	case SectionEmotions:
		return "Emociones"
	case SectionStatistics:
		return "Estadísticas"
	}
	return string(s)
}

// Region is a redrawable part of the interface.
type Region string

const (
	RegionDashboard  Region = "dashboard"
	RegionCalendar   Region = "calendar"
	RegionTasks      Region = "tasks"
	RegionEvents     Region = "events"
	RegionEmotions   Region = "emotions"
	RegionStatistics Region = "statistics"
	RegionDay        Region = "day"
	RegionNav        Region = "nav"
)

// Region returns the region that draws section s.
func (s Section) Region() Region {
	switch s {
	case SectionCalendar:
		return RegionCalendar
	case SectionTasks:
		return RegionTasks
	case SectionEvents:
		return RegionEvents
	case SectionEmotions:
		return RegionEmotions
	case SectionStatistics:
		return RegionStatistics
	}
	return RegionDashboard
}

// Cursor is the navigation state. It is never persisted.
type Cursor struct {
	SelectedDate daykey.Key
	Section      Section
	// Month is the first day of the month shown by the calendar.
	Month time.Time
	// DayOpen is set while the day detail overlay is showing SelectedDate.
	DayOpen bool
}

// State is everything the journal knows.
type State struct {
	Tasks    []*entry.Task
	Events   map[daykey.Key][]*entry.Event
	Emotions []*entry.Emotion
	Cursor   Cursor
}

// NewState returns an empty state with the cursor on today.
func NewState(now time.Time) *State {
	return &State{
		Tasks:    []*entry.Task{},
		Events:   map[daykey.Key][]*entry.Event{},
		Emotions: []*entry.Emotion{},
		Cursor: Cursor{
			SelectedDate: daykey.Today(now),
			Section:      SectionHome,
			Month:        firstOfMonth(now),
		},
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Task returns the task with id.
func (s *State) Task(id string) (*entry.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// CompletedCount is the number of completed tasks.
func (s *State) CompletedCount() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
