package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParseTime parses an RFC 3339 timestamp, with or without fractional seconds.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is a time that serialises as an RFC 3339 string, the format the
// journal has always stored ("2024-03-05T10:00:00.000Z").
type Timestamp struct {
	time.Time
}

// Now wraps t.
func Now(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", FormatTime(t.Time))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return FormatTime(t.Time)
}

// FormatTime renders v in UTC with millisecond precision.
func FormatTime(v time.Time) string {
	return v.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
