package view

import (
	"math/rand/v2"
	"sync"
	"time"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/journal"
)

var quotes = []string{
	"La organización es el camino hacia la productividad.",
	"Cada día es una nueva oportunidad para ser mejor.",
	"Pequeños pasos llevan a grandes logros.",
	"La disciplina es la clave del éxito.",
	"El tiempo es el recurso más valioso, úsalo sabiamente.",
}

var (
	quoteOnce sync.Once
	quote     string
)

// DailyQuote picks a quote once per process.
func DailyQuote() string {
	quoteOnce.Do(func() {
		quote = quotes[rand.IntN(len(quotes))]
	})
	return quote
}

// Dashboard is the home summary.
type Dashboard struct {
	PendingTasks   int    `json:"pendingTasks"`
	UpcomingEvents int    `json:"upcomingEvents"`
	HasMood        bool   `json:"hasMood"`
	MoodEmoji      string `json:"moodEmoji"`
	MoodPhrase     string `json:"moodPhrase"`
	Quote          string `json:"quote"`
}

// Home builds the dashboard. The mood comes from the most recently logged
// entry.
func Home(st *journal.State, now time.Time) Dashboard {
	d := Dashboard{Quote: DailyQuote()}
	for _, t := range st.Tasks {
		if !t.Completed {
			d.PendingTasks++
		}
	}
	today := daykey.Today(now)
	for k, evs := range st.Events {
		if upcoming(k, today) {
			d.UpcomingEvents += len(evs)
		}
	}
	if n := len(st.Emotions); n > 0 {
		last := st.Emotions[n-1]
		d.HasMood = true
		d.MoodEmoji = entry.Emoji(last.Emotion)
		d.MoodPhrase = entry.Phrase(last.Emotion)
	}
	return d
}
