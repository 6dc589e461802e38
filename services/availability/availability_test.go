package availability

import (
	"testing"
	"time"

	"smartslot/models"

	"github.com/stretchr/testify/require"
)

func newTestService() *DefaultAvailabilityService {
	s := NewDefaultAvailabilityService()
	// Pin "today" so the fixtures below are never past.
	s.Now = func() time.Time {
		return time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	}
	return s
}

func TestToggleCycle(t *testing.T) {
	s := newTestService()
	date := models.DateKey("2025-06-10")

	require.Equal(t, models.StatusPending, s.Toggle(date))
	require.Equal(t, models.StatusNone, s.Toggle(date))
	require.Equal(t, models.StatusPending, s.Toggle(date))

	// A confirmed date is removed by toggle, not cycled back to pending.
	s.ConfirmPending()
	require.Equal(t, models.StatusConfirmedLocal, s.StatusOf(date))
	require.Equal(t, models.StatusNone, s.Toggle(date))
	require.Equal(t, models.StatusNone, s.StatusOf(date))
}

func TestTogglePastDateIsNoop(t *testing.T) {
	s := newTestService()
	past := models.DateKey("2025-05-31")

	require.Equal(t, models.StatusNone, s.Toggle(past))
	require.Empty(t, s.Pending())
}

func TestToggleTodayIsSelectable(t *testing.T) {
	s := newTestService()
	require.Equal(t, models.StatusPending, s.Toggle("2025-06-01"))
}

func TestToggleCreatedRemoteIsImmune(t *testing.T) {
	s := newTestService()
	s.ReconcileRemote([]models.CreatedDate{
		{ID: "d-1", Date: "2025-06-02", SlotDuration: 30, StartTime: "09:00", EndTime: "17:00"},
	})

	require.Equal(t, models.StatusCreatedRemote, s.Toggle("2025-06-02"))

	entry, ok := s.Get("2025-06-02")
	require.True(t, ok)
	require.Equal(t, models.StatusCreatedRemote, entry.Status)
	require.Equal(t, "d-1", entry.RemoteID)
}

func TestConfirmPending(t *testing.T) {
	s := newTestService()
	s.Toggle("2025-06-11")
	s.Toggle("2025-06-10")

	confirmed := s.ConfirmPending()
	require.Equal(t, []models.DateKey{"2025-06-10", "2025-06-11"}, confirmed)
	require.Empty(t, s.Pending())
	require.Equal(t, models.StatusConfirmedLocal, s.StatusOf("2025-06-10"))
	require.Equal(t, models.StatusConfirmedLocal, s.StatusOf("2025-06-11"))

	// Nothing pending, nothing confirmed.
	require.Empty(t, s.ConfirmPending())
}

func TestCancelPending(t *testing.T) {
	s := newTestService()
	s.Toggle("2025-06-10")
	s.Toggle("2025-06-11")
	s.ConfirmPending()
	s.Toggle("2025-06-12")

	s.CancelPending()
	require.Empty(t, s.Pending())
	// Confirmed dates are untouched.
	require.Len(t, s.ConfirmedLocal(), 2)
}

func TestRemoveAllSparesCreatedRemote(t *testing.T) {
	s := newTestService()
	s.Toggle("2025-06-10")
	s.ConfirmPending()
	require.NoError(t, s.SetTimeRange("2025-06-10", models.TimeRange{
		From: models.LabelFor(9, 0), To: models.LabelFor(12, 0), SlotDuration: 60,
	}))
	s.Toggle("2025-06-11")
	s.ReconcileRemote([]models.CreatedDate{
		{ID: "d-2", Date: "2025-06-20", SlotDuration: 30, StartTime: "09:00", EndTime: "17:00"},
	})

	s.RemoveAll()

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 1)
	require.Equal(t, models.DateKey("2025-06-20"), snapshot[0].Date)
	require.Equal(t, models.StatusCreatedRemote, snapshot[0].Status)
}

func TestSetTimeRange(t *testing.T) {
	s := newTestService()
	s.Toggle("2025-06-10")
	s.ConfirmPending()

	valid := models.TimeRange{From: models.LabelFor(9, 0), To: models.LabelFor(13, 0), SlotDuration: 60}
	require.NoError(t, s.SetTimeRange("2025-06-10", valid))

	entry, ok := s.Get("2025-06-10")
	require.True(t, ok)
	require.NotNil(t, entry.Range)
	require.Equal(t, valid, *entry.Range)

	// Reversed range is rejected before any state change.
	reversed := models.TimeRange{From: models.LabelFor(13, 0), To: models.LabelFor(9, 0), SlotDuration: 60}
	require.ErrorIs(t, s.SetTimeRange("2025-06-10", reversed), models.ErrRangeOrder)
	entry, _ = s.Get("2025-06-10")
	require.Equal(t, valid, *entry.Range)

	// Only confirmed dates take ranges.
	s.Toggle("2025-06-11")
	require.ErrorIs(t, s.SetTimeRange("2025-06-11", valid), ErrNotConfirmed)
	require.ErrorIs(t, s.SetTimeRange("2025-07-01", valid), ErrNotConfirmed)
}

func TestDefaultRangeWhenUnset(t *testing.T) {
	s := newTestService()
	s.Toggle("2025-06-10")
	s.ConfirmPending()

	entry, _ := s.Get("2025-06-10")
	r := entry.EffectiveRange()
	require.Equal(t, "12:00 AM", r.From.Display)
	require.Equal(t, "11:30 PM", r.To.Display)
	require.Equal(t, 30, r.SlotDuration)
}

func TestReconcileRemoteReplacesWholesale(t *testing.T) {
	s := newTestService()
	s.Toggle("2025-06-10")
	s.ConfirmPending()
	s.Toggle("2025-06-11")

	s.ReconcileRemote([]models.CreatedDate{
		{ID: "d-1", Date: "2025-06-02", SlotDuration: 60, StartTime: "09:00", EndTime: "13:00"},
	})

	// Remote state is authoritative for created status only.
	require.Equal(t, models.StatusCreatedRemote, s.StatusOf("2025-06-02"))
	require.Equal(t, models.StatusConfirmedLocal, s.StatusOf("2025-06-10"))
	require.Equal(t, models.StatusPending, s.StatusOf("2025-06-11"))

	entry, _ := s.Get("2025-06-02")
	require.NotNil(t, entry.Range)
	require.Equal(t, "9:00 AM", entry.Range.From.Display)
	require.Equal(t, "1:00 PM", entry.Range.To.Display)
	require.Equal(t, 60, entry.Range.SlotDuration)

	// An empty snapshot clears every created flag, touching nothing else.
	s.ReconcileRemote(nil)
	require.Equal(t, models.StatusNone, s.StatusOf("2025-06-02"))
	require.Equal(t, models.StatusConfirmedLocal, s.StatusOf("2025-06-10"))
	require.Equal(t, models.StatusPending, s.StatusOf("2025-06-11"))
}

func TestReconcileRemoteUpgradesSubmittedDates(t *testing.T) {
	s := newTestService()
	s.Toggle("2025-06-10")
	s.ConfirmPending()

	// After a successful submit the refetch reports the date as created.
	s.ReconcileRemote([]models.CreatedDate{
		{ID: "d-9", Date: "2025-06-10", SlotDuration: 30, StartTime: "00:00", EndTime: "23:30"},
	})

	entry, ok := s.Get("2025-06-10")
	require.True(t, ok)
	require.Equal(t, models.StatusCreatedRemote, entry.Status)
	require.Equal(t, "d-9", entry.RemoteID)
}
