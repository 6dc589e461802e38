package ledger

import "smartslot/models"

// LedgerService is the per-date, per-time record of customer bookings. It
// mirrors backend state; the customer-facing flow creates bookings, the
// admin side reads them and replaces the mirror after each backend fetch.
type LedgerService interface {
	// Record inserts a booking at its (date, time) slot. A slot that is
	// already held is a conflict and the insert is rejected.
	Record(b models.Booking) error

	// IsBooked reports whether a (date, time) slot holds a booking.
	IsBooked(date models.DateKey, t models.TimeLabel) bool

	// Get returns the booking at a slot, if any.
	Get(date models.DateKey, t models.TimeLabel) (models.Booking, bool)

	// BookingsForDate lists a date's bookings ordered by time of day.
	BookingsForDate(date models.DateKey) []models.SlotEntry

	// TotalBookings counts bookings across all dates.
	TotalBookings() int

	// DatesWithBookings counts dates holding at least one booking.
	DatesWithBookings() int

	// Dates lists the dates holding bookings in chronological order.
	Dates() []models.DateKey

	// ReplaceAll swaps the entire mirror for a fresh backend snapshot.
	// Overlapping refreshes resolve last-write-wins.
	ReplaceAll(bookings []models.Booking)
}
