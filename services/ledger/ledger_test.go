package ledger

import (
	"errors"
	"testing"

	"smartslot/models"
)

func booking(id string, date models.DateKey, hour, minute int) models.Booking {
	return models.Booking{
		ID:     id,
		Date:   date,
		Time:   models.LabelFor(hour, minute),
		Status: "confirmed",
		Customer: models.Customer{
			Name:  "Jamie Doe",
			Email: "jamie@example.com",
		},
	}
}

func TestRecordAndLookup(t *testing.T) {
	l := NewDefaultLedgerService()
	if err := l.Record(booking("b-1", "2025-06-01", 9, 0)); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	if !l.IsBooked("2025-06-01", models.LabelFor(9, 0)) {
		t.Fatal("expected slot to be booked")
	}
	if l.IsBooked("2025-06-01", models.LabelFor(9, 30)) {
		t.Fatal("adjacent slot should be free")
	}
	if l.IsBooked("2025-06-02", models.LabelFor(9, 0)) {
		t.Fatal("other date should be free")
	}

	got, ok := l.Get("2025-06-01", models.LabelFor(9, 0))
	if !ok || got.ID != "b-1" {
		t.Fatalf("Get returned %+v, ok=%v", got, ok)
	}
}

func TestRecordRejectsDoubleBooking(t *testing.T) {
	l := NewDefaultLedgerService()
	if err := l.Record(booking("b-1", "2025-06-01", 9, 0)); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	err := l.Record(booking("b-2", "2025-06-01", 9, 0))
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// The original booking survives.
	got, _ := l.Get("2025-06-01", models.LabelFor(9, 0))
	if got.ID != "b-1" {
		t.Fatalf("original booking was replaced by %s", got.ID)
	}
}

func TestBookingsForDateSortedByTime(t *testing.T) {
	l := NewDefaultLedgerService()
	for _, b := range []models.Booking{
		booking("b-3", "2025-06-01", 15, 0),
		booking("b-1", "2025-06-01", 9, 0),
		booking("b-2", "2025-06-01", 11, 30),
	} {
		if err := l.Record(b); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	entries := l.BookingsForDate("2025-06-01")
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	wantOrder := []string{"9:00 AM", "11:30 AM", "3:00 PM"}
	for i, want := range wantOrder {
		if entries[i].Time.Display != want {
			t.Fatalf("entry %d: expected %s, got %s", i, want, entries[i].Time.Display)
		}
	}

	if entries := l.BookingsForDate("2025-06-02"); entries != nil {
		t.Fatalf("expected nil for an empty date, got %v", entries)
	}
}

func TestAggregates(t *testing.T) {
	l := NewDefaultLedgerService()
	l.Record(booking("b-1", "2025-06-01", 9, 0))
	l.Record(booking("b-2", "2025-06-01", 10, 0))
	l.Record(booking("b-3", "2025-06-03", 9, 0))

	if got := l.TotalBookings(); got != 3 {
		t.Fatalf("TotalBookings = %d", got)
	}
	if got := l.DatesWithBookings(); got != 2 {
		t.Fatalf("DatesWithBookings = %d", got)
	}
	dates := l.Dates()
	if len(dates) != 2 || dates[0] != "2025-06-01" || dates[1] != "2025-06-03" {
		t.Fatalf("Dates = %v", dates)
	}
}

func TestReplaceAll(t *testing.T) {
	l := NewDefaultLedgerService()
	l.Record(booking("old", "2025-06-01", 9, 0))

	l.ReplaceAll([]models.Booking{
		booking("new-1", "2025-06-05", 14, 0),
		booking("new-2", "2025-06-06", 9, 30),
	})

	if l.IsBooked("2025-06-01", models.LabelFor(9, 0)) {
		t.Fatal("stale booking survived ReplaceAll")
	}
	if l.TotalBookings() != 2 {
		t.Fatalf("TotalBookings = %d", l.TotalBookings())
	}

	// A conflicting snapshot keeps the first booking per slot.
	l.ReplaceAll([]models.Booking{
		booking("first", "2025-06-07", 9, 0),
		booking("second", "2025-06-07", 9, 0),
	})
	got, _ := l.Get("2025-06-07", models.LabelFor(9, 0))
	if got.ID != "first" {
		t.Fatalf("expected first booking to win, got %s", got.ID)
	}
}
