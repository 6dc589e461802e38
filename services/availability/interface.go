package availability

import "smartslot/models"

// AvailabilityService owns the authoritative date -> AvailableDate mapping
// for the admin view. All mutations are discrete transitions; callers read
// through immutable snapshots.
type AvailabilityService interface {
	// Toggle cycles a date through selection: none -> pending,
	// pending -> none, confirmed-local -> removed. Past dates and
	// created-remote dates are no-ops. Returns the status after the call.
	Toggle(date models.DateKey) models.DateStatus

	// ConfirmPending moves every pending date to confirmed-local and
	// empties the pending set atomically, returning the moved dates.
	ConfirmPending() []models.DateKey

	// CancelPending empties the pending set without other side effects.
	CancelPending()

	// RemoveAll clears confirmed-local dates, their time ranges, and the
	// pending set. Created-remote dates are untouched; they only leave
	// through the explicit delete path.
	RemoveAll()

	// SetTimeRange attaches or overwrites the range on a confirmed-local
	// date. Invalid ranges and dates in any other status are rejected.
	SetTimeRange(date models.DateKey, r models.TimeRange) error

	// ReconcileRemote replaces the created-remote set wholesale with the
	// backend snapshot. Pending and confirmed-local dates not named by the
	// snapshot keep their status.
	ReconcileRemote(remote []models.CreatedDate)

	// StatusOf reports a date's current lifecycle status.
	StatusOf(date models.DateKey) models.DateStatus

	// Get returns the full record for a date, if it has one.
	Get(date models.DateKey) (models.AvailableDate, bool)

	// Pending lists the pending dates in chronological order.
	Pending() []models.DateKey

	// ConfirmedLocal lists confirmed-local records in chronological order.
	ConfirmedLocal() []models.AvailableDate

	// Snapshot lists every record (pending, confirmed-local and
	// created-remote) in chronological order.
	Snapshot() []models.AvailableDate
}
