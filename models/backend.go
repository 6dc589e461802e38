package models

// Wire types for the external booking backend. The backend owns the exact
// contract; these mirror what it reports at the boundary.

// CreatedDate is a date the backend has persisted as available. Start and
// end times cross the boundary in 24-hour "HH:MM" form.
type CreatedDate struct {
	ID           string  `json:"id"`
	Date         DateKey `json:"date"`
	SlotDuration int     `json:"slotDuration"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
}

// BulkDateEntry is one date in a bulk-create request.
type BulkDateEntry struct {
	Date         DateKey `json:"date"`
	StartTime    string  `json:"startTime"` // 24-hour "HH:MM"
	EndTime      string  `json:"endTime"`   // 24-hour "HH:MM"
	SlotDuration int     `json:"slotDuration"`
	Notes        string  `json:"notes,omitempty"`
}

// BulkCreateRequest submits newly confirmed dates to the backend.
type BulkCreateRequest struct {
	Dates        []BulkDateEntry `json:"dates"`
	SkipExisting bool            `json:"skipExisting"`
}

// BulkCreateResponse acknowledges a bulk-create call.
type BulkCreateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RemoteBooking is a booking as the backend reports it: the slot time comes
// across in 24-hour "HH:MM" form.
type RemoteBooking struct {
	ID       string   `json:"id"`
	TimeSlot string   `json:"timeSlot"`
	Status   string   `json:"status"`
	Customer Customer `json:"customer"`
}

// BookingsSummary groups the backend's bookings by date.
type BookingsSummary struct {
	TotalBookings int                         `json:"totalBookings"`
	ByDate        map[DateKey][]RemoteBooking `json:"byDate"`
}

// DeleteResponse acknowledges a created-date deletion. Existing bookings
// block deletion; the backend explains the refusal in Message.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
