package schedule

import (
	"smartslot/models"
)

// candidateDurations are the slot lengths, in minutes, a range may be
// divided into.
var candidateDurations = []int{15, 30, 45, 60, 90, 120, 180, 240}

// ComputeSlotCount returns how many bookable slots a range yields at its
// slot duration: floor(rangeMinutes / slotDuration). The range must be
// valid per TimeRange.Validate.
func ComputeSlotCount(r models.TimeRange) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r.Minutes() / r.SlotDuration, nil
}

// CandidateDurations filters the fixed candidate set down to durations that
// fit the range, exact divisors of the range length first. When no
// candidate divides the range evenly, every duration that fits is offered
// as a fallback.
func CandidateDurations(from, to models.TimeLabel) ([]int, error) {
	probe := models.TimeRange{From: from, To: to, SlotDuration: models.SlotStepMinutes}
	if err := probe.Validate(); err != nil {
		return nil, err
	}
	total := probe.Minutes()

	var exact, fitting []int
	for _, d := range candidateDurations {
		if d > total {
			continue
		}
		fitting = append(fitting, d)
		if total%d == 0 {
			exact = append(exact, d)
		}
	}
	if len(exact) == 0 {
		return fitting, nil
	}

	// Exact divisors lead; the remaining fitting durations follow as
	// fallbacks.
	ordered := make([]int, 0, len(fitting))
	ordered = append(ordered, exact...)
	for _, d := range fitting {
		if total%d != 0 {
			ordered = append(ordered, d)
		}
	}
	return ordered, nil
}
