package utils

import (
	"fmt"

	"smartslot/models"
)

// To24Hour converts a canonical 12-hour label to the backend's 24-hour
// "HH:MM" form. PM with hour != 12 adds 12; 12 AM becomes hour 0; minutes
// pass through unchanged.
func To24Hour(label models.TimeLabel) string {
	return fmt.Sprintf("%02d:%02d", label.MinuteOfDay/60, label.MinuteOfDay%60)
}

// From24Hour converts a backend "HH:MM" string back to a canonical label.
func From24Hour(raw string) (models.TimeLabel, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(raw, "%d:%d", &hour, &minute); err != nil {
		return models.TimeLabel{}, fmt.Errorf("invalid 24-hour time %q: %w", raw, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return models.TimeLabel{}, fmt.Errorf("invalid 24-hour time %q: out of range", raw)
	}
	return models.LabelFor(hour, minute), nil
}
