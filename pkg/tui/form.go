package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/glyph"
	"tableflip.dev/diario/pkg/journal"
)

type formKind int

const (
	formTask formKind = iota
	formEvent
	formEmotion
)

func (k formKind) title() string {
	switch k {
	case formEvent:
		return "Nuevo evento"
	case formEmotion:
		return "Registrar emoción"
	}
	return "Nueva tarea"
}

type field struct {
	label string
	input textinput.Model
}

// form is a small multi field editor. Tab moves between fields, enter
// submits, esc cancels.
type form struct {
	kind   formKind
	fields []field
	focus  int
}

func newInput(placeholder, value string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	ti.SetValue(value)
	return ti
}

// newTaskForm opens a task editor filed under day.
func newTaskForm(day daykey.Key) *form {
	return newForm(formTask, []field{
		{label: "Tarea", input: newInput("¿Qué hay que hacer?", "", 256)},
		{label: "Símbolo", input: newInput("task, event, note (•)", "", 16)},
		{label: "Fecha", input: newInput("AAAA-M-D", string(day), 10)},
	})
}

// newEventForm opens an event editor for day.
func newEventForm(day daykey.Key) *form {
	return newForm(formEvent, []field{
		{label: "Título", input: newInput("Reunión, cumpleaños...", "", 256)},
		{label: "Fecha", input: newInput("AAAA-M-D", string(day), 10)},
		{label: "Inicio", input: newInput("HH:MM", "", 32)},
		{label: "Fin", input: newInput("HH:MM", "", 32)},
	})
}

func newEmotionForm() *form {
	return newForm(formEmotion, []field{
		{label: "Emoción", input: newInput(strings.Join(entry.Emotions(), ", "), "", 32)},
		{label: "Nota", input: newInput("Opcional", "", 256)},
		{label: "Intensidad", input: newInput("0-5", strconv.Itoa(entry.DefaultIntensity), 1)},
	})
}

func newForm(kind formKind, fields []field) *form {
	f := &form{kind: kind, fields: fields}
	f.fields[0].input.Focus()
	return f
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) move(delta int) tea.Cmd {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].input.Focus()
}

// update routes a key to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

// submit runs the operation the form edits. It reports whether the service
// accepted the input; the service notifies either way.
func (f *form) submit(svc *journal.Service) bool {
	switch f.kind {
	case formEvent:
		_, ok := svc.CreateEvent(journal.EventInput{
			Title:     f.value(0),
			Date:      f.value(1),
			StartTime: f.value(2),
			EndTime:   f.value(3),
		})
		return ok
	case formEmotion:
		_, ok := svc.CreateEmotion(journal.EmotionInput{
			Emotion:   strings.ToLower(f.value(0)),
			Note:      f.value(1),
			Intensity: parseIntensity(f.value(2)),
		})
		return ok
	}
	symbol := glyph.Symbol(f.value(1))
	if s, err := glyph.Parse(f.value(1)); err == nil {
		symbol = s
	}
	_, ok := svc.CreateTask(journal.TaskInput{Symbol: symbol, Content: f.value(0), Date: f.value(2)})
	return ok
}

// parseIntensity maps a blank field to the default and garbage to a value
// the validator rejects.
func parseIntensity(raw string) int {
	if raw == "" {
		return entry.DefaultIntensity
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}

func (f *form) view(th Theme) string {
	lines := []string{th.Panel.Title.Render(f.kind.title()), ""}
	for i, fl := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = "› "
		}
		lines = append(lines, marker+th.Panel.Subtitle.Render(fl.label+": ")+fl.input.View())
	}
	lines = append(lines, "", th.Footer.Help.Render("tab siguiente · enter guardar · esc cancelar"))
	return th.Panel.Frame.Render(strings.Join(lines, "\n"))
}
