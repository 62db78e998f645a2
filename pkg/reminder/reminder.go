// Package reminder nudges the user once a day to fill in the journal.
package reminder

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/notify"
)

// Message is the daily nudge.
const Message = "¿Has registrado tus tareas y emociones de hoy?"

// Scheduler calls Fire every day at Hour:Minute local time until stopped.
type Scheduler struct {
	clock  clockwork.Clock
	hour   int
	minute int
	fire   func()
	log    *zap.Logger

	mu      sync.Mutex
	timer   clockwork.Timer
	next    time.Time
	running bool
	// gen invalidates callbacks of timers that were stopped while firing.
	gen int
	// firing is held while fire runs so Stop can wait it out.
	firing sync.Mutex
}

// New returns a stopped scheduler. fire must not call Stop.
func New(c clockwork.Clock, hour, minute int, fire func(), log *zap.Logger) *Scheduler {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{clock: c, hour: hour, minute: minute, fire: fire, log: log.Named("reminder")}
}

// Notifier returns a fire func that sends Message to n as an info toast.
func Notifier(n notify.Notifier, c clockwork.Clock) func() {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	return func() {
		n.Notify(notify.Notification{Message: Message, Severity: notify.Info, At: c.Now()})
	}
}

// Next returns the first Hour:Minute strictly after now, in now's location.
func (s *Scheduler) Next(now time.Time) time.Time {
	at := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, now.Location())
	if !at.After(now) {
		at = time.Date(now.Year(), now.Month(), now.Day()+1, s.hour, s.minute, 0, 0, now.Location())
	}
	return at
}

// Start schedules the next reminder. Starting a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.scheduleLocked()
}

// NextFire reports when the reminder fires next, zero when stopped.
func (s *Scheduler) NextFire() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return time.Time{}
	}
	return s.next
}

func (s *Scheduler) scheduleLocked() {
	now := s.clock.Now()
	s.next = s.Next(now)
	gen := s.gen
	s.timer = s.clock.AfterFunc(s.next.Sub(now), func() { s.tick(gen) })
	s.log.Debug("reminder scheduled", zap.Time("at", s.next))
}

func (s *Scheduler) tick(gen int) {
	s.firing.Lock()
	defer s.firing.Unlock()

	s.mu.Lock()
	if !s.running || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if s.fire != nil {
		s.fire()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running && gen == s.gen {
		s.scheduleLocked()
	}
}

// Stop cancels the pending reminder and waits for a running one to finish.
// It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.running {
		s.running = false
		s.gen++
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
	}
	s.mu.Unlock()

	s.firing.Lock()
	s.firing.Unlock() //nolint:staticcheck // waits for an in-flight fire
}
