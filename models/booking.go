package models

// Customer is the person who made a booking. Phone and notes are optional.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Booking is one customer's hold on a (date, time) slot. Bookings are
// created by the customer-facing flow and only read or deleted here.
type Booking struct {
	ID       string    `json:"id"`
	Date     DateKey   `json:"date"`
	Time     TimeLabel `json:"time"`
	Status   string    `json:"status"` // confirmed, pending, cancelled
	Customer Customer  `json:"customer"`
}

// SlotEntry pairs a time label with its booking for sorted per-date views.
type SlotEntry struct {
	Time    TimeLabel `json:"time"`
	Booking Booking   `json:"booking"`
}
