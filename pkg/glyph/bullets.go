package glyph

import (
	"fmt"
	"strings"
)

// Symbol is the single-character marker that classifies a journal line.
type Symbol string

const (
	Task      Symbol = "•"
	Event     Symbol = "○"
	Note      Symbol = "-"
	Migrated  Symbol = ">"
	Completed Symbol = "x"
)

// Glyph describes a symbol for help output and pickers.
type Glyph struct {
	Symbol  Symbol
	Noun    string
	Meaning string
	Aliases []string
}

// DefaultGlyphs returns the symbol set in the order pickers show it.
func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Symbol:  Task,
		Noun:    "task",
		Meaning: "tarea",
		Aliases: []string{"t", "tasks", "tarea"},
	}, {
		Symbol:  Event,
		Noun:    "event",
		Meaning: "evento",
		Aliases: []string{"e", "o", "events", "evento"},
	}, {
		Symbol:  Note,
		Noun:    "note",
		Meaning: "nota",
		Aliases: []string{"n", "notes", "nota"},
	}, {
		Symbol:  Migrated,
		Noun:    "migrated",
		Meaning: "migrada",
		Aliases: []string{"m", "moved", "migrada"},
	}, {
		Symbol:  Completed,
		Noun:    "completed",
		Meaning: "completada",
		Aliases: []string{"c", "done", "completada"},
	}}
}

// Pickable lists the symbols a user chooses from when writing a new line.
// Migrated and completed markers are assigned by the journal itself.
func Pickable() []Symbol {
	return []Symbol{Task, Event, Note}
}

// Glyph returns the description for s. Unknown symbols describe themselves.
func (s Symbol) Glyph() Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Symbol == s {
			return g
		}
	}
	return Glyph{Symbol: s, Noun: string(s), Meaning: string(s)}
}

func (s Symbol) String() string {
	return string(s)
}

func (g Glyph) String() string {
	return string(g.Symbol)
}

// Parse resolves a symbol from the symbol itself, its noun or an alias.
func Parse(raw string) (Symbol, error) {
	in := strings.ToLower(strings.TrimSpace(raw))
	if in == "" {
		return Task, nil
	}
	for _, g := range DefaultGlyphs() {
		if in == string(g.Symbol) || in == g.Noun {
			return g.Symbol, nil
		}
		for _, a := range g.Aliases {
			if in == a {
				return g.Symbol, nil
			}
		}
	}
	return "", fmt.Errorf("glyph: unknown symbol %q", raw)
}
