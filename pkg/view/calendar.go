package view

import (
	"time"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/journal"
)

// Cell is one calendar square. Leading padding cells have Day 0.
type Cell struct {
	Day        int        `json:"day"`
	Key        daykey.Key `json:"key,omitempty"`
	HasEvents  bool       `json:"hasEvents"`
	HasTasks   bool       `json:"hasTasks"`
	IsToday    bool       `json:"isToday"`
	IsSelected bool       `json:"isSelected"`
}

// Empty reports whether c is padding before day 1.
func (c Cell) Empty() bool {
	return c.Day == 0
}

// Calendar is a month grid, Sunday first.
type Calendar struct {
	Title    string     `json:"title"`
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Weekdays []string   `json:"weekdays"`
	Cells    []Cell     `json:"cells"`
}

// Rows splits the cells into weeks. The last week may be short.
func (c Calendar) Rows() [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(c.Cells); i += 7 {
		end := i + 7
		if end > len(c.Cells) {
			end = len(c.Cells)
		}
		rows = append(rows, c.Cells[i:end])
	}
	return rows
}

// DaysIn returns the number of days in month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid builds the grid for year and month.
func MonthGrid(st *journal.State, year int, month time.Month, now time.Time) Calendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := int(first.Weekday())
	days := DaysIn(year, month)
	today := daykey.Today(now)

	open := make(map[daykey.Key]bool)
	for _, t := range st.Tasks {
		if !t.Completed {
			open[t.Date] = true
		}
	}

	cells := make([]Cell, lead, lead+days)
	for d := 1; d <= days; d++ {
		k := daykey.For(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
		cells = append(cells, Cell{
			Day:        d,
			Key:        k,
			HasEvents:  len(st.Events[k]) > 0,
			HasTasks:   open[k],
			IsToday:    k == today,
			IsSelected: k == st.Cursor.SelectedDate,
		})
	}
	return Calendar{
		Title:    MonthTitle(year, month),
		Year:     year,
		Month:    month,
		Weekdays: WeekdayHeaders(),
		Cells:    cells,
	}
}

// CalendarPage builds the grid for the month the cursor is on.
func CalendarPage(st *journal.State, now time.Time) Calendar {
	m := st.Cursor.Month
	if m.IsZero() {
		m = now
	}
	return MonthGrid(st, m.Year(), m.Month(), now)
}
