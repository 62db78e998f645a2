package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/view"
)

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}

	switch m.mode {
	case modeHelp:
		if key == "esc" || key == "q" || key == "?" {
			m.mode = modeNormal
		}
		return nil
	case modeConfirm:
		return m.handleConfirmKey(key)
	case modeForm:
		return m.handleFormKey(msg)
	}

	if m.svc.State().Cursor.DayOpen {
		if cmd, ok := m.handleDayKey(key); ok {
			return cmd
		}
	}

	switch key {
	case "q":
		return tea.Quit
	case "?":
		m.mode = modeHelp
		return nil
	case "tab":
		m.cycleSection(1)
		return nil
	case "shift+tab":
		m.cycleSection(-1)
		return nil
	case "r":
		m.svc.Reload()
		m.clampCursors()
		return nil
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(journal.Sections()) {
		m.svc.ShowSection(string(journal.Sections()[n-1]))
		return nil
	}

	switch m.svc.State().Cursor.Section {
	case journal.SectionCalendar:
		return m.handleCalendarKey(key)
	case journal.SectionTasks:
		return m.handleTasksKey(key)
	case journal.SectionEvents:
		if key == "a" {
			return m.openForm(newEventForm(m.svc.State().Cursor.SelectedDate))
		}
	case journal.SectionEmotions:
		if key == "a" {
			return m.openForm(newEmotionForm())
		}
	case journal.SectionHome:
		if key == "a" {
			return m.openForm(newTaskForm(daykey.Today(m.svc.Now())))
		}
	}
	return nil
}

func (m *Model) cycleSection(delta int) {
	all := journal.Sections()
	cur := 0
	for i, s := range all {
		if s == m.svc.State().Cursor.Section {
			cur = i
		}
	}
	next := (cur + delta + len(all)) % len(all)
	m.svc.ShowSection(string(all[next]))
}

func (m *Model) openForm(f *form) tea.Cmd {
	m.form = f
	m.mode = modeForm
	return f.fields[f.focus].input.Focus()
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = modeNormal
}

func (m *Model) handleFormKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return nil
	case "enter":
		if m.form.submit(m.svc) {
			m.closeForm()
		}
		return nil
	case "tab", "down":
		return m.form.move(1)
	case "shift+tab", "up":
		return m.form.move(-1)
	}
	return m.form.update(msg)
}

// askClear starts the clear-completed flow. With nothing to clear the
// journal warns without asking.
func (m *Model) askClear() {
	n := m.svc.State().CompletedCount()
	if n == 0 {
		m.svc.ClearCompletedTasks()
		return
	}
	m.prompt = journal.ClearPrompt(n)
	m.mode = modeConfirm
}

func (m *Model) handleConfirmKey(key string) tea.Cmd {
	switch key {
	case "y", "Y", "s", "S", "enter":
		m.svc.SetConfirmer(journal.Always)
		m.svc.ClearCompletedTasks()
		m.svc.SetConfirmer(nil)
		m.clampCursors()
	case "n", "N", "esc", "q":
	default:
		return nil
	}
	m.prompt = ""
	m.mode = modeNormal
	return nil
}

// taskOrder lists task ids in the order the tasks section draws them.
func taskOrder(st *journal.State) []string {
	l := view.Tasks(st)
	ids := make([]string, 0, len(l.Pending)+len(l.Completed))
	for _, t := range l.Pending {
		ids = append(ids, t.ID)
	}
	for _, t := range l.Completed {
		ids = append(ids, t.ID)
	}
	return ids
}

func (m *Model) handleTasksKey(key string) tea.Cmd {
	ids := taskOrder(m.svc.State())
	switch key {
	case "j", "down":
		if m.taskIdx < len(ids)-1 {
			m.taskIdx++
			m.cache.Render(journal.RegionTasks)
		}
	case "k", "up":
		if m.taskIdx > 0 {
			m.taskIdx--
			m.cache.Render(journal.RegionTasks)
		}
	case "x", "space", " ":
		if m.taskIdx < len(ids) {
			m.svc.ToggleCompletion(ids[m.taskIdx])
		}
	case "a":
		return m.openForm(newTaskForm(m.svc.State().Cursor.SelectedDate))
	case "m":
		m.svc.MigrateTasks()
	case "C":
		m.askClear()
	}
	return nil
}

func (m *Model) handleCalendarKey(key string) tea.Cmd {
	switch key {
	case "h", "left":
		m.moveHighlight(-1)
	case "l", "right":
		m.moveHighlight(1)
	case "k", "up":
		m.moveHighlight(-7)
	case "j", "down":
		m.moveHighlight(7)
	case "[", "p":
		m.svc.PrevMonth()
		m.highlight = daykey.For(m.svc.State().Cursor.Month)
	case "]", "n":
		m.svc.NextMonth()
		m.highlight = daykey.For(m.svc.State().Cursor.Month)
	case "t":
		m.setHighlight(daykey.Today(m.svc.Now()))
	case "enter":
		if m.svc.SelectDay(m.highlight) {
			m.dayTab = dayTasks
			m.dayIdx = 0
		}
	case "a":
		return m.openForm(newTaskForm(m.highlight))
	}
	return nil
}

func (m *Model) moveHighlight(days int) {
	m.setHighlight(m.highlight.AddDays(days))
}

// setHighlight moves the calendar cursor to k, paging the calendar so the
// cursor stays on screen.
func (m *Model) setHighlight(k daykey.Key) {
	t, err := k.Time(time.UTC)
	if err != nil {
		return
	}
	m.highlight = k
	for {
		shown := m.svc.State().Cursor.Month
		diff := (t.Year()*12 + int(t.Month())) - (shown.Year()*12 + int(shown.Month()))
		switch {
		case diff < 0:
			m.svc.PrevMonth()
		case diff > 0:
			m.svc.NextMonth()
		default:
			m.cache.Render(journal.RegionCalendar)
			return
		}
	}
}

// handleDayKey handles keys while the day detail is open. It reports whether
// the key was consumed.
func (m *Model) handleDayKey(key string) (tea.Cmd, bool) {
	st := m.svc.State()
	day := view.DayDetail(st, st.Cursor.SelectedDate)
	switch key {
	case "esc":
		m.svc.CloseDay()
	case "tab", "left", "right", "h", "l":
		if m.dayTab == dayTasks {
			m.dayTab = dayEvents
		} else {
			m.dayTab = dayTasks
		}
		m.dayIdx = 0
		m.cache.Render(journal.RegionDay)
	case "j", "down":
		if m.dayTab == dayTasks && m.dayIdx < len(day.Tasks)-1 {
			m.dayIdx++
			m.cache.Render(journal.RegionDay)
		}
	case "k", "up":
		if m.dayIdx > 0 {
			m.dayIdx--
			m.cache.Render(journal.RegionDay)
		}
	case "x", "space", " ":
		if m.dayTab == dayTasks && m.dayIdx < len(day.Tasks) {
			m.svc.ToggleCompletion(day.Tasks[m.dayIdx].ID)
		}
	case "a":
		if m.dayTab == dayEvents {
			return m.openForm(newEventForm(day.Key)), true
		}
		return m.openForm(newTaskForm(day.Key)), true
	default:
		return nil, false
	}
	return nil, true
}
