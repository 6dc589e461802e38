package sync

import (
	"context"
	"fmt"
	"sync/atomic"

	"smartslot/models"
	"smartslot/services/availability"
	"smartslot/services/ledger"
	"smartslot/services/notification"
	"smartslot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Backend is the slice of the HTTP client the sync layer consumes.
type Backend interface {
	FetchCreatedDates(ctx context.Context) ([]models.CreatedDate, error)
	FetchBookings(ctx context.Context) (models.BookingsSummary, error)
	CreateDates(ctx context.Context, req models.BulkCreateRequest) (models.BulkCreateResponse, error)
	DeleteDate(ctx context.Context, id string) (models.DeleteResponse, error)
}

// DefaultSyncService reconciles the availability store and booking ledger
// against the backend.
type DefaultSyncService struct {
	Backend      Backend
	Availability availability.AvailabilityService
	Ledger       ledger.LedgerService
	Notifier     notification.Notifier
	Cache        *utils.SnapshotCache

	submitting atomic.Bool
}

func (s *DefaultSyncService) WarmStart(ctx context.Context) {
	logger := utils.GetLogger()

	if cached, ok := s.Cache.LoadCreatedDates(ctx); ok {
		s.Availability.ReconcileRemote(cached)
		logger.Debug("Warmed availability from cached snapshot", zap.Int("dates", len(cached)))
	}
	if cached, ok := s.Cache.LoadBookings(ctx); ok {
		s.Ledger.ReplaceAll(flattenSummary(cached))
		logger.Debug("Warmed ledger from cached snapshot", zap.Int("bookings", cached.TotalBookings))
	}

	// Initial fetches are not user-initiated; failures leave prior state
	// intact and are logged only.
	if err := s.RefreshCreatedDates(ctx); err != nil {
		logger.Warn("Initial created-dates fetch failed", zap.Error(err))
	}
	if err := s.RefreshBookings(ctx); err != nil {
		logger.Warn("Initial bookings fetch failed", zap.Error(err))
	}
}

func (s *DefaultSyncService) RefreshCreatedDates(ctx context.Context) error {
	dates, err := s.Backend.FetchCreatedDates(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch created dates: %w", err)
	}
	s.Availability.ReconcileRemote(dates)
	s.Cache.StoreCreatedDates(ctx, dates)
	return nil
}

func (s *DefaultSyncService) RefreshBookings(ctx context.Context) error {
	summary, err := s.Backend.FetchBookings(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch bookings: %w", err)
	}
	s.Ledger.ReplaceAll(flattenSummary(summary))
	s.Cache.StoreBookings(ctx, summary)
	return nil
}

func (s *DefaultSyncService) SubmitDates(ctx context.Context) (models.Notice, error) {
	if !s.submitting.CompareAndSwap(false, true) {
		return s.Notifier.Notify(models.NoticeWarning, "A submission is already in progress."), ErrSubmitInFlight
	}
	defer s.submitting.Store(false)

	confirmed := s.Availability.ConfirmedLocal()
	if len(confirmed) == 0 {
		return s.Notifier.Notify(models.NoticeWarning, "No dates selected. Pick dates on the calendar first."), ErrNoDatesSelected
	}

	entries := make([]models.BulkDateEntry, 0, len(confirmed))
	for _, d := range confirmed {
		r := d.EffectiveRange()
		if err := r.Validate(); err != nil {
			notice := s.Notifier.Notify(models.NoticeError, fmt.Sprintf("Date %s has an invalid time range: %v", d.Date, err))
			return notice, fmt.Errorf("date %s: %w", d.Date, err)
		}
		entries = append(entries, models.BulkDateEntry{
			Date:         d.Date,
			StartTime:    utils.To24Hour(r.From),
			EndTime:      utils.To24Hour(r.To),
			SlotDuration: r.SlotDuration,
		})
	}

	requestID := uuid.NewString()
	logger := utils.GetLogger().With(zap.String("requestID", requestID))
	logger.Info("Submitting availability dates", zap.Int("count", len(entries)))

	resp, err := s.Backend.CreateDates(ctx, models.BulkCreateRequest{Dates: entries, SkipExisting: true})
	if err != nil {
		logger.Error("Bulk date creation failed", zap.Error(err))
		return s.Notifier.Notify(models.NoticeError, userMessage(err)), err
	}
	if !resp.Success {
		logger.Warn("Backend rejected bulk date creation", zap.String("message", resp.Message))
		return s.Notifier.Notify(models.NoticeError, messageOr(resp.Message, "The booking service rejected the dates.")),
			fmt.Errorf("backend rejected bulk creation: %s", resp.Message)
	}

	// The view is only consistent once the refetch lands.
	if err := s.RefreshCreatedDates(ctx); err != nil {
		logger.Warn("Refetch after submit failed", zap.Error(err))
		return s.Notifier.Notify(models.NoticeWarning, "Dates saved, but refreshing their status failed. Refresh manually."), nil
	}

	logger.Info("Availability dates created", zap.Int("count", len(entries)))
	return s.Notifier.Notify(models.NoticeSuccess, messageOr(resp.Message, fmt.Sprintf("%d date(s) are now open for booking.", len(entries)))), nil
}

func (s *DefaultSyncService) DeleteCreatedDate(ctx context.Context, remoteID string) (models.Notice, error) {
	logger := utils.GetLogger().With(zap.String("remoteID", remoteID))

	resp, err := s.Backend.DeleteDate(ctx, remoteID)
	if err != nil {
		logger.Error("Date deletion failed", zap.Error(err))
		return s.Notifier.Notify(models.NoticeError, userMessage(err)), err
	}
	if !resp.Success {
		// Typically: bookings exist for the date.
		logger.Warn("Backend refused date deletion", zap.String("message", resp.Message))
		return s.Notifier.Notify(models.NoticeError, messageOr(resp.Message, "This date cannot be deleted.")),
			fmt.Errorf("backend refused deletion of %s: %s", remoteID, resp.Message)
	}

	if err := s.RefreshCreatedDates(ctx); err != nil {
		logger.Warn("Refetch after delete failed", zap.Error(err))
		return s.Notifier.Notify(models.NoticeWarning, "Date deleted, but refreshing state failed. Refresh manually."), nil
	}
	if err := s.RefreshBookings(ctx); err != nil {
		logger.Warn("Bookings refetch after delete failed", zap.Error(err))
	}

	return s.Notifier.Notify(models.NoticeSuccess, "Date deleted."), nil
}

func (s *DefaultSyncService) InProgress() bool {
	return s.submitting.Load()
}

// flattenSummary turns the backend's grouped summary into ledger records,
// converting slot times from the wire's 24-hour form. Unparseable entries
// are dropped with a log line.
func flattenSummary(summary models.BookingsSummary) []models.Booking {
	var bookings []models.Booking
	for date, remote := range summary.ByDate {
		for _, rb := range remote {
			label, err := utils.From24Hour(rb.TimeSlot)
			if err != nil {
				utils.GetLogger().Warn("Backend reported a booking with an unusable time slot",
					zap.String("date", string(date)), zap.String("timeSlot", rb.TimeSlot), zap.Error(err))
				continue
			}
			bookings = append(bookings, models.Booking{
				ID:       rb.ID,
				Date:     date,
				Time:     label,
				Status:   rb.Status,
				Customer: rb.Customer,
			})
		}
	}
	return bookings
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
