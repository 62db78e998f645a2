// Package view turns journal state into render models: plain values that
// describe what to draw without drawing it. The terminal UI, the command line
// printers and the HTTP API all draw from these models.
package view

import (
	"time"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
)

// Empty state lines.
const (
	NoPendingTasks   = "No hay tareas pendientes"
	NoCompletedTasks = "No hay tareas completadas"
	NoUpcomingEvents = "No hay eventos próximos"
	NoPastEvents     = "No hay eventos pasados"
	NoEmotions       = "No hay emociones registradas"
	NoDayTasks       = "No hay tareas para este día"
	NoDayEvents      = "No hay eventos para este día"
	NoNote           = "Sin notas"
)

// Toggle labels on a task row.
const (
	ToggleComplete = "✓"
	ToggleReopen   = "↩"
)

// TaskItem is one task row.
type TaskItem struct {
	ID          string     `json:"id"`
	Symbol      string     `json:"symbol"`
	Content     string     `json:"content"`
	Date        daykey.Key `json:"date"`
	DateLabel   string     `json:"dateLabel"`
	Completed   bool       `json:"completed"`
	ToggleLabel string     `json:"toggleLabel"`
}

// EventItem is one event row.
type EventItem struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Date      daykey.Key `json:"date"`
	DateLabel string     `json:"dateLabel"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	TimeLabel string     `json:"timeLabel"`
}

// EmotionItem is one mood log row.
type EmotionItem struct {
	ID        string `json:"id"`
	Emotion   string `json:"emotion"`
	Emoji     string `json:"emoji"`
	DateLabel string `json:"dateLabel"`
	Intensity int    `json:"intensity"`
	Stars     string `json:"stars"`
	Note      string `json:"note"`
}

// Task builds the row for t.
func Task(t *entry.Task) TaskItem {
	toggle := ToggleComplete
	if t.Completed {
		toggle = ToggleReopen
	}
	return TaskItem{
		ID:          t.ID,
		Symbol:      string(t.Symbol),
		Content:     t.Content,
		Date:        t.Date,
		DateLabel:   KeyDate(t.Date),
		Completed:   t.Completed,
		ToggleLabel: toggle,
	}
}

// Event builds the row for an event filed under day.
func Event(ev *entry.Event, day daykey.Key) EventItem {
	return EventItem{
		ID:        ev.ID,
		Title:     ev.Title,
		Date:      day,
		DateLabel: KeyDate(day),
		StartTime: ev.StartTime,
		EndTime:   ev.EndTime,
		TimeLabel: ev.StartTime + " - " + ev.EndTime,
	}
}

// Emotion builds the row for e, with its date shown in loc.
func Emotion(e *entry.Emotion, loc *time.Location) EmotionItem {
	note := e.Note
	if note == "" {
		note = NoNote
	}
	label := ""
	if !e.Date.IsZero() {
		label = ShortDate(e.Date.In(loc))
	}
	return EmotionItem{
		ID:        e.ID,
		Emotion:   e.Emotion,
		Emoji:     entry.Emoji(e.Emotion),
		DateLabel: label,
		Intensity: e.Intensity,
		Stars:     entry.Stars(e.Intensity),
		Note:      note,
	}
}
