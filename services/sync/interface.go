package sync

import (
	"context"

	"smartslot/models"
)

// SyncService is the boundary between local admin state and the backend's
// source of truth. Writes go through the backend and are followed by an
// awaited refetch; local state is never merged field-by-field with remote
// state.
type SyncService interface {
	// WarmStart loads the last cached snapshots, if any, then performs the
	// initial background fetch. Failures are logged, never surfaced.
	WarmStart(ctx context.Context)

	// RefreshCreatedDates refetches the backend's created dates and
	// reconciles the availability store against them.
	RefreshCreatedDates(ctx context.Context) error

	// RefreshBookings refetches the backend's bookings and replaces the
	// ledger mirror.
	RefreshBookings(ctx context.Context) error

	// SubmitDates submits every confirmed-local date with its effective
	// time range, then refetches created dates. Emits exactly one notice.
	SubmitDates(ctx context.Context) (models.Notice, error)

	// DeleteCreatedDate deletes a created date by backend id, then
	// refetches. The backend's refusal when bookings exist surfaces as the
	// notice. Emits exactly one notice.
	DeleteCreatedDate(ctx context.Context, remoteID string) (models.Notice, error)

	// InProgress reports whether a submission is outstanding, so the UI
	// can disable the triggering control.
	InProgress() bool
}
