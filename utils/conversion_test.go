package utils

import (
	"testing"

	"smartslot/models"
)

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		display string
		hour    int
		minute  int
		want    string
	}{
		{"12:00 AM", 0, 0, "00:00"},  // 12 AM maps to hour 0
		{"12:30 AM", 0, 30, "00:30"},
		{"9:00 AM", 9, 0, "09:00"},
		{"12:00 PM", 12, 0, "12:00"}, // 12 PM stays 12
		{"1:30 PM", 13, 30, "13:30"}, // PM adds 12
		{"11:30 PM", 23, 30, "23:30"},
	}
	for _, tt := range tests {
		label := models.LabelFor(tt.hour, tt.minute)
		if label.Display != tt.display {
			t.Fatalf("fixture mismatch: %q vs %q", label.Display, tt.display)
		}
		if got := To24Hour(label); got != tt.want {
			t.Errorf("To24Hour(%s) = %q, want %q", tt.display, got, tt.want)
		}
	}
}

func TestFrom24HourRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30} {
			want := models.LabelFor(hour, minute)
			got, err := From24Hour(To24Hour(want))
			if err != nil {
				t.Fatalf("From24Hour error: %v", err)
			}
			if got != want {
				t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
			}
		}
	}
}

func TestFrom24HourRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"24:00", "12:60", "-1:00", "noon", ""} {
		if _, err := From24Hour(raw); err == nil {
			t.Errorf("expected From24Hour(%q) to fail", raw)
		}
	}
}
