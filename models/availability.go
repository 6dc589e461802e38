package models

// DateStatus is the lifecycle position of a date in the availability store.
type DateStatus string

const (
	// StatusNone means the date is not part of the available set.
	StatusNone DateStatus = "none"
	// StatusPending means the date is selected locally but not yet confirmed.
	StatusPending DateStatus = "pending"
	// StatusConfirmedLocal means the date is in the available set but has not
	// been submitted to the backend.
	StatusConfirmedLocal DateStatus = "confirmed-local"
	// StatusCreatedRemote means the backend has persisted the date; it is
	// immutable to local toggling and carries the backend's id.
	StatusCreatedRemote DateStatus = "created-remote"
)

// AvailableDate associates a calendar date with its lifecycle status, the
// backend id once created remotely, and an optional time-range override.
type AvailableDate struct {
	Date     DateKey    `json:"date"`
	Status   DateStatus `json:"status"`
	RemoteID string     `json:"remoteId,omitempty"`
	Range    *TimeRange `json:"range,omitempty"`
}

// EffectiveRange returns the attached range, or the full-day default when
// none was set.
func (a AvailableDate) EffectiveRange() TimeRange {
	if a.Range != nil {
		return *a.Range
	}
	return DefaultRange()
}
