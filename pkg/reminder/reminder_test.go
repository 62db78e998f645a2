package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"tableflip.dev/diario/pkg/notify"
)

func TestNext(t *testing.T) {
	s := New(clockwork.NewFakeClockAt(time.Time{}), 9, 0, nil, nil)
	tests := []struct {
		now  time.Time
		want time.Time
	}{
		{
			now:  time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			now:  time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.March, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			now:  time.Date(2024, time.March, 31, 21, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		if got := s.Next(tt.now); !got.Equal(tt.want) {
			t.Fatalf("Next(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

// fired records each fire time on a channel; the fake clock runs the
// callback on its own goroutine.
func fired(c clockwork.Clock) (chan time.Time, func()) {
	ch := make(chan time.Time, 8)
	return ch, func() { ch <- c.Now() }
}

func waitFire(t *testing.T, ch <-chan time.Time) time.Time {
	t.Helper()
	select {
	case at := <-ch:
		return at
	case <-time.After(2 * time.Second):
		t.Fatalf("reminder did not fire")
	}
	return time.Time{}
}

func expectQuiet(t *testing.T, ch <-chan time.Time) {
	t.Helper()
	select {
	case at := <-ch:
		t.Fatalf("unexpected fire at %v", at)
	case <-time.After(50 * time.Millisecond):
	}
}

// waitScheduled blocks until the scheduler has armed its next timer.
func waitScheduled(t *testing.T, c *clockwork.FakeClock) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("reminder was not rescheduled: %v", err)
	}
}

func TestFiresDailyAndReschedules(t *testing.T) {
	start := time.Date(2024, time.March, 5, 8, 30, 0, 0, time.UTC)
	c := clockwork.NewFakeClockAt(start)
	ch, fire := fired(c)
	s := New(c, 9, 0, fire, nil)
	s.Start()
	s.Start()
	defer s.Stop()

	if got := s.NextFire(); !got.Equal(time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected first fire %v", got)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := c.BlockUntilContext(ctx, 2); err == nil {
		t.Fatalf("expected one pending timer after a double Start")
	}

	c.Advance(29 * time.Minute)
	expectQuiet(t, ch)
	c.Advance(time.Minute)
	waitFire(t, ch)
	waitScheduled(t, c)
	if got := s.NextFire(); !got.Equal(time.Date(2024, time.March, 6, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected reschedule 24h later, got %v", got)
	}

	for day := 6; day <= 7; day++ {
		c.Advance(24 * time.Hour)
		if at := waitFire(t, ch); at.Day() != day {
			t.Fatalf("expected a fire on March %d, got %v", day, at)
		}
		waitScheduled(t, c)
	}
	if got := s.NextFire(); !got.Equal(time.Date(2024, time.March, 8, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected next fire %v", got)
	}
}

func TestNeverFiresAfterStop(t *testing.T) {
	c := clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC))
	ch, fire := fired(c)
	s := New(c, 9, 0, fire, nil)
	s.Start()
	s.Stop()
	s.Stop()
	c.Advance(72 * time.Hour)
	expectQuiet(t, ch)
	if !s.NextFire().IsZero() {
		t.Fatalf("expected no next fire when stopped")
	}

	s.Start()
	defer s.Stop()
	c.Advance(24 * time.Hour)
	waitFire(t, ch)
	expectQuiet(t, ch)
}

func TestNotifierSendsInfo(t *testing.T) {
	c := clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC))
	r := &notify.Recorder{}
	ch := make(chan struct{}, 1)
	notifier := Notifier(r, c)
	s := New(c, 9, 0, func() {
		notifier()
		ch <- struct{}{}
	}, nil)
	s.Start()
	defer s.Stop()
	c.Advance(time.Hour)
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("reminder did not fire")
	}
	n, ok := r.Last()
	if !ok || n.Message != Message || n.Severity != notify.Info {
		t.Fatalf("unexpected notification %+v", n)
	}
}
