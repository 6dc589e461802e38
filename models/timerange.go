package models

import "fmt"

// ErrRangeOrder rejects ranges whose end does not follow the start. The
// message doubles as the user-facing validation text.
var ErrRangeOrder = fmt.Errorf("end time must be after start time")

// TimeRange is a bookable window on a date plus the duration of each slot
// carved out of it.
type TimeRange struct {
	From         TimeLabel `json:"from"`
	To           TimeLabel `json:"to"`
	SlotDuration int       `json:"slotDuration"` // minutes
}

// DefaultRange covers the whole day in 30-minute slots. Dates without an
// explicit override book against this range.
func DefaultRange() TimeRange {
	return TimeRange{
		From:         LabelFor(0, 0),
		To:           LabelFor(23, 30),
		SlotDuration: SlotStepMinutes,
	}
}

// Validate enforces ordering and a sane duration.
func (r TimeRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return fmt.Errorf("time range is missing a boundary")
	}
	if r.From.MinuteOfDay >= r.To.MinuteOfDay {
		return ErrRangeOrder
	}
	if r.SlotDuration <= 0 {
		return fmt.Errorf("slot duration must be positive; got %d", r.SlotDuration)
	}
	return nil
}

// Minutes returns the total length of the range.
func (r TimeRange) Minutes() int {
	return r.To.MinuteOfDay - r.From.MinuteOfDay
}
