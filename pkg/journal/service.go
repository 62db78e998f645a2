package journal

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/entry"
	"tableflip.dev/diario/pkg/notify"
	"tableflip.dev/diario/pkg/store"
)

// Renderer redraws regions after State changed.
type Renderer interface {
	Render(regions ...Region)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(regions ...Region)

func (f RenderFunc) Render(regions ...Region) { f(regions...) }

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always answers yes, for --yes style flags and explicit API confirmation.
var Always Confirmer = ConfirmFunc(func(string) bool { return true })

// Options wire a Service to its collaborators. Nil fields get inert
// defaults.
type Options struct {
	Notifier  notify.Notifier
	Renderer  Renderer
	Confirmer Confirmer
	Clock     clockwork.Clock
	Log       *zap.Logger
	// NewID generates entry ids, entry.NewID by default.
	NewID func() string
}

// Service provides the journal operations shared by the terminal UI, the
// command line and the HTTP API. It is not safe for concurrent use.
type Service struct {
	Persistence store.Persistence

	notifier  notify.Notifier
	renderer  Renderer
	confirmer Confirmer
	clock     clockwork.Clock
	log       *zap.Logger
	newID     func() string

	state *State
}

// New loads the journal from p.
func New(p store.Persistence, opts Options) (*Service, error) {
	if p == nil {
		return nil, errors.New("journal: no persistence configured")
	}
	s := &Service{
		Persistence: p,
		notifier:    opts.Notifier,
		renderer:    opts.Renderer,
		confirmer:   opts.Confirmer,
		clock:       opts.Clock,
		log:         opts.Log,
		newID:       opts.NewID,
	}
	if s.notifier == nil {
		s.notifier = notify.Discard
	}
	if s.renderer == nil {
		s.renderer = RenderFunc(func(...Region) {})
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.newID == nil {
		s.newID = entry.NewID
	}
	s.state = NewState(s.clock.Now())
	s.load()
	return s, nil
}

func (s *Service) load() {
	s.state.Tasks = s.Persistence.Tasks()
	s.state.Events = s.Persistence.Events()
	s.state.Emotions = s.Persistence.Emotions()
}

// State exposes the current state to renderers. Callers must not mutate it.
func (s *Service) State() *State {
	return s.state
}

// Now reads the service clock.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// SetRenderer replaces the renderer, for adapters created after the service.
func (s *Service) SetRenderer(r Renderer) {
	if r == nil {
		r = RenderFunc(func(...Region) {})
	}
	s.renderer = r
}

// SetConfirmer replaces the confirmer.
func (s *Service) SetConfirmer(c Confirmer) {
	s.confirmer = c
}

// Reload re-reads every collection from persistence, keeping the cursor. It
// is used after another process changed the store.
func (s *Service) Reload() {
	s.load()
	s.render(RegionDashboard, RegionCalendar, RegionTasks, RegionEvents, RegionEmotions, RegionStatistics, RegionDay)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.Persistence.Watch(ctx)
}

// Notify emits a notification stamped with the service clock.
func (s *Service) Notify(sev notify.Severity, msg string) {
	s.notifier.Notify(notify.Notification{Message: msg, Severity: sev, At: s.clock.Now()})
}

func (s *Service) render(regions ...Region) {
	s.renderer.Render(regions...)
}

// persisted reports a failed write. The in-memory change is kept.
func (s *Service) persisted(what string, err error) {
	if err == nil {
		return
	}
	s.log.Error("persist failed", zap.String("collection", what), zap.Error(err))
	s.Notify(notify.Error, MsgSaveFailed)
}
