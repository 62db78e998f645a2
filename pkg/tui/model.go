// Package tui is the Bubble Tea front end of the journal. Every journal
// operation runs inside the update loop; reminders and external store changes
// arrive as messages.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/daykey"
	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/notify"
	"tableflip.dev/diario/pkg/reminder"
	"tableflip.dev/diario/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeForm
	modeConfirm
	modeHelp
)

type dayTab int

const (
	dayTasks dayTab = iota
	dayEvents
)

// maxToasts bounds the toasts kept on screen at once.
const maxToasts = 3

const defaultWidth = 80

// Options connect the UI to the process around it.
type Options struct {
	// Reminders delivers a value each time the daily reminder fires.
	Reminders <-chan struct{}
	// Changes delivers store change events from Persistence.Watch.
	Changes <-chan store.Event
	Log     *zap.Logger
	Theme   *Theme
}

type reminderMsg struct{}

type storeChangedMsg struct{ ev store.Event }

type toastExpiredMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	svc    *journal.Service
	toasts *notify.Recorder
	opts   Options
	log    *zap.Logger
	theme  Theme
	cache  *regions

	mode   mode
	form   *form
	prompt string

	shown []notify.Notification

	taskIdx   int
	dayTab    dayTab
	dayIdx    int
	highlight daykey.Key

	width  int
	height int
}

// New builds the UI over svc. toasts must be a notifier of svc so the UI can
// show what operations report.
func New(svc *journal.Service, toasts *notify.Recorder, opts Options) Model {
	th := DefaultTheme()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	if toasts == nil {
		toasts = &notify.Recorder{}
	}
	m := Model{
		svc:    svc,
		toasts: toasts,
		opts:   opts,
		log:    log.Named("tui"),
		theme:  th,
		cache:  newRegions(),
		width:  defaultWidth,
	}
	if svc != nil {
		svc.SetRenderer(m.cache)
		m.highlight = svc.State().Cursor.SelectedDate
	}
	return m
}

// ReminderFunc returns a reminder fire func that signals ch without
// blocking. A pending signal absorbs further fires.
func ReminderFunc(ch chan<- struct{}) func() {
	return func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func waitReminder(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return reminderMsg{}
	}
}

func waitChange(ch <-chan store.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeChangedMsg{ev: ev}
	}
}

func expireToasts() tea.Cmd {
	return tea.Tick(notify.ToastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{} })
}

// Init starts listening for reminders and store changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitReminder(m.opts.Reminders), waitChange(m.opts.Changes))
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cache.invalidate()
	case reminderMsg:
		m.svc.Notify(notify.Info, reminder.Message)
		cmds = append(cmds, waitReminder(m.opts.Reminders))
	case storeChangedMsg:
		m.log.Debug("store changed", zap.String("key", msg.ev.Key))
		m.svc.Reload()
		m.clampCursors()
		cmds = append(cmds, waitChange(m.opts.Changes))
	case toastExpiredMsg:
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))
	default:
		if m.mode == modeForm && m.form != nil {
			cmds = append(cmds, m.form.update(msg))
		}
	}

	cmds = append(cmds, m.collectToasts())
	return m, tea.Batch(cmds...)
}

// collectToasts moves new notifications on screen and drops expired ones.
func (m *Model) collectToasts() tea.Cmd {
	now := m.svc.Now()
	fresh := m.toasts.Drain()

	all := append(m.shown, fresh...)
	kept := make([]notify.Notification, 0, len(all))
	for _, n := range all {
		if n.Visible(now) {
			kept = append(kept, n)
		}
	}
	if len(kept) > maxToasts {
		kept = kept[len(kept)-maxToasts:]
	}
	m.shown = kept

	if len(fresh) == 0 {
		return nil
	}
	return expireToasts()
}

// clampCursors keeps list cursors inside lists that shrank.
func (m *Model) clampCursors() {
	if n := len(m.svc.State().Tasks); m.taskIdx >= n {
		m.taskIdx = max(n-1, 0)
	}
	m.dayIdx = 0
}

// Run launches the UI on the alternate screen until the user quits or ctx is
// done.
func Run(ctx context.Context, svc *journal.Service, toasts *notify.Recorder, opts Options) error {
	p := tea.NewProgram(New(svc, toasts, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
