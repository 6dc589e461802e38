package models

import "fmt"

// SlotStepMinutes is the spacing between consecutive time labels.
const SlotStepMinutes = 30

// SlotsPerDay is the number of time labels in a day at 30-minute spacing.
const SlotsPerDay = 24 * 60 / SlotStepMinutes

// TimeLabel is one of the 48 fixed 30-minute slot boundaries of a day.
// Display is the canonical 12-hour form (e.g. "9:00 AM"); MinuteOfDay is
// the explicit ordering key, so comparisons never depend on positions in
// a generated slice.
type TimeLabel struct {
	Display     string `json:"display"`
	MinuteOfDay int    `json:"minuteOfDay"`
}

// LabelFor builds the canonical label for an hour/minute of day.
func LabelFor(hour, minute int) TimeLabel {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour
	switch {
	case hour == 0:
		displayHour = 12
	case hour > 12:
		displayHour = hour - 12
	}
	return TimeLabel{
		Display:     fmt.Sprintf("%d:%02d %s", displayHour, minute, period),
		MinuteOfDay: hour*60 + minute,
	}
}

// ParseTimeLabel parses a canonical 12-hour display string. Input that does
// not round-trip against the generated slot universe (wrong padding, minutes
// off the 30-minute grid, unknown period) is a configuration error.
func ParseTimeLabel(display string) (TimeLabel, error) {
	var hour, minute int
	var period string
	if _, err := fmt.Sscanf(display, "%d:%d %s", &hour, &minute, &period); err != nil {
		return TimeLabel{}, fmt.Errorf("invalid time label %q: %w", display, err)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return TimeLabel{}, fmt.Errorf("invalid time label %q: out of range", display)
	}
	var h24 int
	switch period {
	case "AM":
		h24 = hour % 12
	case "PM":
		h24 = hour%12 + 12
	default:
		return TimeLabel{}, fmt.Errorf("invalid time label %q: unknown period %q", display, period)
	}
	label := LabelFor(h24, minute)
	if label.Display != display {
		return TimeLabel{}, fmt.Errorf("non-canonical time label %q (expected %q)", display, label.Display)
	}
	if minute%SlotStepMinutes != 0 {
		return TimeLabel{}, fmt.Errorf("time label %q is off the %d-minute grid", display, SlotStepMinutes)
	}
	return label, nil
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeLabel) Before(other TimeLabel) bool {
	return t.MinuteOfDay < other.MinuteOfDay
}

func (t TimeLabel) String() string { return t.Display }

// IsZero reports whether the label is unset.
func (t TimeLabel) IsZero() bool { return t.Display == "" }

// MinutesUntil returns the distance in minutes from t to other; negative
// when other precedes t.
func (t TimeLabel) MinutesUntil(other TimeLabel) int {
	return other.MinuteOfDay - t.MinuteOfDay
}
