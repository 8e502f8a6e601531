package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
	TimestampLayout = "2006-01-02 15:04"
)

// ParseDate accepts a calendar date, or a full timestamp whose date part is used.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	formats := []string{
		DateLayout,
		TimestampLayout,
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, &time.ParseError{
		Layout:  DateLayout,
		Value:   s,
		Message: ": unable to parse date",
	}
}

// ParseClock returns the minute of day for an "HH:MM" string.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DaysBetween counts whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// Timestamp marshals as "2006-01-02 15:04".
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
