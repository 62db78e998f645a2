package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/view"
)

const helpText = `Teclas
  1-6, tab        cambiar de sección
  a               añadir en la sección actual
  j/k             mover
  x, espacio      completar o reabrir tarea
  m               migrar tareas de hoy a mañana
  C               eliminar tareas completadas
  ←→↑↓, [ ]       mover por el calendario, cambiar de mes
  enter           abrir el día seleccionado
  esc             cerrar
  r               recargar
  q               salir`

// barCells is the width of a full productivity bar.
const barCells = 24

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) clip(s string) string {
	return truncate.StringWithTail(s, uint(m.contentWidth()), "…")
}

// View renders the tab bar, the active section or overlay, toasts and help.
func (m Model) View() string {
	if m.svc == nil {
		return ""
	}
	st := m.svc.State()

	header := m.cache.get(journal.RegionNav, m.tabs)

	var body string
	switch {
	case m.mode == modeHelp:
		body = m.theme.Panel.Frame.Render(helpText)
	case m.mode == modeForm && m.form != nil:
		body = m.form.view(m.theme)
	case st.Cursor.DayOpen:
		body = m.cache.get(journal.RegionDay, m.dayView)
	default:
		region := st.Cursor.Section.Region()
		body = m.cache.get(region, func() string { return m.section(region) })
	}
	if m.mode == modeConfirm {
		body += "\n\n" + m.theme.Footer.Prompt.Render(m.prompt+" (s/n)")
	}

	parts := []string{header, "", body, ""}
	if toast := m.toastLine(); toast != "" {
		parts = append(parts, toast)
	}
	parts = append(parts, m.theme.Footer.Help.Render(m.clip(m.footerHelp())))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) footerHelp() string {
	if m.svc.State().Cursor.DayOpen {
		return "tab tareas/eventos · j/k mover · x completar · a añadir · esc cerrar"
	}
	switch m.svc.State().Cursor.Section {
	case journal.SectionCalendar:
		return "←→↑↓ día · [ ] mes · t hoy · enter abrir · a tarea · ? ayuda · q salir"
	case journal.SectionTasks:
		return "j/k mover · x completar · a añadir · m migrar · C limpiar · ? ayuda · q salir"
	case journal.SectionEvents, journal.SectionEmotions, journal.SectionHome:
		return "a añadir · tab sección · ? ayuda · q salir"
	}
	return "tab sección · ? ayuda · q salir"
}

func (m Model) tabs() string {
	cur := m.svc.State().Cursor.Section
	tabs := make([]string, 0, len(journal.Sections()))
	for i, s := range journal.Sections() {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == cur {
			tabs = append(tabs, m.theme.Tabs.Active.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tabs.Inactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) toastLine() string {
	if len(m.shown) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.shown))
	for _, n := range m.shown {
		style, ok := m.theme.Toast[n.Severity]
		if !ok {
			style = lipgloss.NewStyle()
		}
		lines = append(lines, style.Render(m.clip(n.Message)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) section(r journal.Region) string {
	switch r {
	case journal.RegionCalendar:
		return m.calendarView()
	case journal.RegionTasks:
		return m.tasksView()
	case journal.RegionEvents:
		return m.eventsView()
	case journal.RegionEmotions:
		return m.emotionsView()
	case journal.RegionStatistics:
		return m.statsView()
	}
	return m.homeView()
}

func (m Model) heading(title string) string {
	return m.theme.Panel.Title.Render(title)
}

func (m Model) empty(text string) string {
	return m.theme.Panel.Empty.Render("  " + text)
}

func (m Model) homeView() string {
	d := view.Home(m.svc.State(), m.svc.Now())
	mood := "Sin registrar"
	if d.HasMood {
		mood = strings.TrimSpace(d.MoodEmoji + " " + d.MoodPhrase)
	}
	lines := []string{
		m.heading("Inicio"),
		fmt.Sprintf("  Tareas pendientes: %d", d.PendingTasks),
		fmt.Sprintf("  Eventos próximos:  %d", d.UpcomingEvents),
		"  Estado de ánimo:   " + mood,
		"",
		m.theme.Panel.Subtitle.Render(wordwrap.String("“"+d.Quote+"”", m.contentWidth())),
	}
	return strings.Join(lines, "\n")
}

func (m Model) calendarView() string {
	cal := view.CalendarPage(m.svc.State(), m.svc.Now())
	return renderCalendar(cal, m.highlight, m.theme.Calendar) + "\n\n" + calendarLegend(m.theme.Calendar)
}

func (m Model) taskRow(t view.TaskItem, selected bool) string {
	row := m.clip(fmt.Sprintf("%s %s %s  %s", t.ToggleLabel, t.Symbol, t.Content, t.DateLabel))
	switch {
	case selected:
		return m.theme.Panel.Selected.Render(row)
	case t.Completed:
		return m.theme.Panel.Done.Render(row)
	}
	return row
}

func (m Model) tasksView() string {
	l := view.Tasks(m.svc.State())
	lines := []string{m.heading(fmt.Sprintf("Pendientes (%d)", len(l.Pending)))}
	if e := l.PendingEmpty(); e != "" {
		lines = append(lines, m.empty(e))
	}
	i := 0
	for _, t := range l.Pending {
		lines = append(lines, m.taskRow(t, i == m.taskIdx))
		i++
	}
	lines = append(lines, "", m.heading(fmt.Sprintf("Completadas (%d)", len(l.Completed))))
	if e := l.CompletedEmpty(); e != "" {
		lines = append(lines, m.empty(e))
	}
	for _, t := range l.Completed {
		lines = append(lines, m.taskRow(t, i == m.taskIdx))
		i++
	}
	return strings.Join(lines, "\n")
}

func (m Model) eventRows(items []view.EventItem) []string {
	rows := make([]string, 0, len(items))
	for _, ev := range items {
		rows = append(rows, m.clip(fmt.Sprintf("○ %s  %s  %s", ev.Title, ev.TimeLabel, ev.DateLabel)))
	}
	return rows
}

func (m Model) eventsView() string {
	l := view.Events(m.svc.State(), m.svc.Now())
	lines := []string{m.heading("Próximos")}
	if e := l.UpcomingEmpty(); e != "" {
		lines = append(lines, m.empty(e))
	}
	lines = append(lines, m.eventRows(l.Upcoming)...)
	lines = append(lines, "", m.heading("Pasados"))
	if e := l.PastEmpty(); e != "" {
		lines = append(lines, m.empty(e))
	}
	lines = append(lines, m.eventRows(l.Past)...)
	return strings.Join(lines, "\n")
}

func (m Model) emotionsView() string {
	log := view.Emotions(m.svc.State(), m.svc.Now())
	lines := []string{m.heading("Registro de emociones")}
	if e := log.EmptyText(); e != "" {
		lines = append(lines, m.empty(e))
	}
	for _, e := range log.Entries {
		lines = append(lines,
			m.clip(fmt.Sprintf("%s %s  %s  %s", e.Emoji, e.Emotion, e.Stars, e.DateLabel)),
			m.theme.Panel.Subtitle.Render(m.clip("   "+e.Note)),
		)
	}
	return strings.Join(lines, "\n")
}

func (m Model) statsView() string {
	s := view.Stats(m.svc.State(), m.svc.Now())
	lines := []string{
		m.heading("Estadísticas"),
		fmt.Sprintf("  Tareas: %d (%d completadas)", s.TotalTasks, s.CompletedTasks),
		fmt.Sprintf("  Eventos: %d", s.TotalEvents),
		fmt.Sprintf("  Emociones: %d", s.TotalEmotions),
		"",
		m.heading("Emociones"),
	}
	if s.Emotions.Placeholder != "" {
		lines = append(lines, m.empty(s.Emotions.Placeholder))
	}
	for _, w := range s.Emotions.Wedges {
		chip := lipgloss.NewStyle().
			Background(lipgloss.Color(w.Color.Hex)).
			Foreground(lipgloss.Color(w.Color.Ink)).
			Render(" " + w.Text + " ")
		lines = append(lines, fmt.Sprintf("  %s %3.0f%%", chip, w.Share()*100))
	}

	p := s.Productivity
	lines = append(lines, "", m.heading(p.Title))
	for _, b := range p.Bars {
		n := b.Value * barCells / p.Max
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Fill.Hex))
		lines = append(lines, fmt.Sprintf("  %-4s %s %s", b.Label, bar.Render(strings.Repeat("█", n)), b.ValueText))
	}
	return strings.Join(lines, "\n")
}

func (m Model) dayView() string {
	st := m.svc.State()
	d := view.DayDetail(st, st.Cursor.SelectedDate)

	tab := func(label string, on bool) string {
		if on {
			return m.theme.Tabs.Active.Render(label)
		}
		return m.theme.Tabs.Inactive.Render(label)
	}
	lines := []string{
		m.heading(d.Title),
		lipgloss.JoinHorizontal(lipgloss.Top,
			tab(fmt.Sprintf("Tareas (%d)", len(d.Tasks)), m.dayTab == dayTasks),
			tab(fmt.Sprintf("Eventos (%d)", len(d.Events)), m.dayTab == dayEvents),
		),
		"",
	}
	if m.dayTab == dayTasks {
		if e := d.TasksEmpty(); e != "" {
			lines = append(lines, m.empty(e))
		}
		for i, t := range d.Tasks {
			lines = append(lines, m.taskRow(t, i == m.dayIdx))
		}
	} else {
		if e := d.EventsEmpty(); e != "" {
			lines = append(lines, m.empty(e))
		}
		lines = append(lines, m.eventRows(d.Events)...)
	}
	return m.theme.Panel.Frame.Render(strings.Join(lines, "\n"))
}
