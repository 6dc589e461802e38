// Package schedule holds the pure calendar and time-slot calculations the
// availability and sync services are built on.
package schedule

import (
	"fmt"

	"smartslot/models"
)

// GenerateTimeSlots produces the fixed universe of 48 slot labels for a
// day, "12:00 AM" through "11:30 PM" in 30-minute steps. Deterministic;
// every call yields an equal, stably ordered sequence.
func GenerateTimeSlots() []models.TimeLabel {
	slots := make([]models.TimeLabel, 0, models.SlotsPerDay)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += models.SlotStepMinutes {
			slots = append(slots, models.LabelFor(hour, minute))
		}
	}
	return slots
}

// SlotsInRange lists the slot start labels a range yields at its configured
// duration, e.g. 9:00 AM-1:00 PM at 60 minutes gives 9:00, 10:00, 11:00,
// 12:00.
func SlotsInRange(r models.TimeRange) ([]models.TimeLabel, error) {
	count, err := ComputeSlotCount(r)
	if err != nil {
		return nil, err
	}
	labels := make([]models.TimeLabel, 0, count)
	for i := 0; i < count; i++ {
		minute := r.From.MinuteOfDay + i*r.SlotDuration
		labels = append(labels, models.LabelFor(minute/60, minute%60))
	}
	return labels, nil
}

// ValidateLabel checks that an externally supplied time string round-trips
// against the canonical slot universe. A mismatch breaks range validation
// and is treated as a configuration error.
func ValidateLabel(display string) (models.TimeLabel, error) {
	label, err := models.ParseTimeLabel(display)
	if err != nil {
		return models.TimeLabel{}, fmt.Errorf("time %q is not a valid slot label: %w", display, err)
	}
	return label, nil
}
