// Package daykey builds and compares the calendar-day keys used to file tasks
// and events. A key is "YEAR-MONTH-DAY" with 1-based month and day and no zero
// padding, e.g. "2024-3-5". Tasks and events are matched to calendar cells by
// string equality on keys, so every key in the journal must come from For.
package daykey

import (
	"fmt"
	"strings"
	"time"
)

// Key identifies a calendar day.
type Key string

const (
	layoutKey = "2006-1-2"
	layoutISO = "2006-01-02"
)

// For returns the key of the calendar day t falls on, in t's location.
func For(t time.Time) Key {
	return Key(fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day()))
}

// Today returns the key for the day of now.
func Today(now time.Time) Key {
	return For(now)
}

// Tomorrow returns the key for the day after now.
func Tomorrow(now time.Time) Key {
	return For(now.AddDate(0, 0, 1))
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// Time parses the key into midnight of that day in loc.
func (k Key) Time(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(layoutKey, string(k), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("daykey: invalid key %q: %w", string(k), err)
	}
	return t, nil
}

// Valid reports whether k parses as a calendar day.
func (k Key) Valid() bool {
	_, err := k.Time(time.UTC)
	return err == nil
}

// AddDays returns the key n days after k. Invalid keys are returned as is.
func (k Key) AddDays(n int) Key {
	t, err := k.Time(time.UTC)
	if err != nil {
		return k
	}
	return For(t.AddDate(0, 0, n))
}

// Parse accepts either a day key ("2024-3-5") or an ISO date ("2024-03-05")
// and returns the canonical key. Date inputs in forms and on the command line
// arrive zero padded, so both spellings normalise to the same key.
func Parse(raw string) (Key, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("daykey: empty date")
	}
	for _, layout := range []string{layoutKey, layoutISO} {
		if t, err := time.Parse(layout, raw); err == nil {
			return For(t), nil
		}
	}
	return "", fmt.Errorf("daykey: cannot parse %q, expected YYYY-M-D", raw)
}

// Compare orders a and b by calendar day. It returns -1, 0 or +1. Keys that do
// not parse sort after every valid key and among themselves by string.
func Compare(a, b Key) int {
	ta, errA := a.Time(time.UTC)
	tb, errB := b.Time(time.UTC)
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(string(a), string(b))
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	default:
		return 0
	}
}

// Before reports whether k falls on a calendar day strictly before other.
// An invalid k is never before anything, an invalid other is after everything.
func (k Key) Before(other Key) bool {
	tk, err := k.Time(time.UTC)
	if err != nil {
		return false
	}
	to, err := other.Time(time.UTC)
	if err != nil {
		return true
	}
	return tk.Before(to)
}

// LastDays returns the keys of the n days ending with the day of now, oldest
// first.
func LastDays(now time.Time, n int) []Key {
	if n <= 0 {
		return nil
	}
	keys := make([]Key, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, For(now.AddDate(0, 0, -i)))
	}
	return keys
}
