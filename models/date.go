package models

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical calendar-date form. Zero-padded so that
// lexicographic order equals chronological order.
const DateKeyLayout = "2006-01-02"

// DateKey identifies a calendar date as a canonical "YYYY-MM-DD" string.
// It never carries a time-of-day component.
type DateKey string

// DateKeyOf derives the DateKey for a moment in its own location.
func DateKeyOf(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

// ParseDateKey validates a raw string as a canonical DateKey.
func ParseDateKey(raw string) (DateKey, error) {
	t, err := time.Parse(DateKeyLayout, raw)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", raw, err)
	}
	if canonical := t.Format(DateKeyLayout); canonical != raw {
		return "", fmt.Errorf("non-canonical date %q (expected %q)", raw, canonical)
	}
	return DateKey(raw), nil
}

// Time returns the date at midnight in the given location.
func (d DateKey) Time(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, string(d), loc)
}

// Before reports strict chronological order; valid keys compare correctly
// as plain strings.
func (d DateKey) Before(other DateKey) bool { return d < other }

func (d DateKey) String() string { return string(d) }

// FormatLong renders the date for display, e.g. "Monday, June 2, 2025".
// Unparseable keys render as-is.
func (d DateKey) FormatLong() string {
	t, err := time.Parse(DateKeyLayout, string(d))
	if err != nil {
		return string(d)
	}
	return t.Format("Monday, January 2, 2006")
}
