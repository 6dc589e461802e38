package availability

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"smartslot/models"
	"smartslot/services/schedule"
	"smartslot/utils"

	"go.uber.org/zap"
)

// ErrNotConfirmed rejects a time-range assignment on a date outside the
// confirmed-local set.
var ErrNotConfirmed = fmt.Errorf("time ranges can only be set on confirmed dates")

// DefaultAvailabilityService is the in-memory implementation. State
// transitions are synchronous; the mutex only guards against the admin
// HTTP surface serving overlapping requests.
type DefaultAvailabilityService struct {
	mu    sync.Mutex
	dates map[models.DateKey]models.AvailableDate

	// Now supplies "today" for past-date checks; tests pin it.
	Now func() time.Time
}

// NewDefaultAvailabilityService returns an empty store on the real clock.
func NewDefaultAvailabilityService() *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		dates: make(map[models.DateKey]models.AvailableDate),
		Now:   time.Now,
	}
}

func (s *DefaultAvailabilityService) Toggle(date models.DateKey) models.DateStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if schedule.IsPastDate(s.Now(), date) {
		return s.statusLocked(date)
	}

	entry, ok := s.dates[date]
	if !ok {
		s.dates[date] = models.AvailableDate{Date: date, Status: models.StatusPending}
		return models.StatusPending
	}
	switch entry.Status {
	case models.StatusPending, models.StatusConfirmedLocal:
		delete(s.dates, date)
		return models.StatusNone
	default:
		// Created-remote dates are immutable to toggling.
		return entry.Status
	}
}

func (s *DefaultAvailabilityService) ConfirmPending() []models.DateKey {
	s.mu.Lock()
	defer s.mu.Unlock()

	var confirmed []models.DateKey
	for date, entry := range s.dates {
		if entry.Status != models.StatusPending {
			continue
		}
		entry.Status = models.StatusConfirmedLocal
		s.dates[date] = entry
		confirmed = append(confirmed, date)
	}
	sortDates(confirmed)
	return confirmed
}

func (s *DefaultAvailabilityService) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for date, entry := range s.dates {
		if entry.Status == models.StatusPending {
			delete(s.dates, date)
		}
	}
}

func (s *DefaultAvailabilityService) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for date, entry := range s.dates {
		if entry.Status == models.StatusPending || entry.Status == models.StatusConfirmedLocal {
			delete(s.dates, date)
		}
	}
}

func (s *DefaultAvailabilityService) SetTimeRange(date models.DateKey, r models.TimeRange) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.dates[date]
	if !ok || entry.Status != models.StatusConfirmedLocal {
		return fmt.Errorf("%w (date %s)", ErrNotConfirmed, date)
	}
	entry.Range = &r
	s.dates[date] = entry
	return nil
}

func (s *DefaultAvailabilityService) ReconcileRemote(remote []models.CreatedDate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for date, entry := range s.dates {
		if entry.Status == models.StatusCreatedRemote {
			delete(s.dates, date)
		}
	}
	for _, cd := range remote {
		entry := models.AvailableDate{
			Date:     cd.Date,
			Status:   models.StatusCreatedRemote,
			RemoteID: cd.ID,
		}
		if r, err := rangeFromCreated(cd); err == nil {
			entry.Range = &r
		} else {
			utils.GetLogger().Warn("Backend reported a created date with an unusable range",
				zap.String("date", string(cd.Date)), zap.Error(err))
		}
		s.dates[cd.Date] = entry
	}
}

func (s *DefaultAvailabilityService) StatusOf(date models.DateKey) models.DateStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked(date)
}

func (s *DefaultAvailabilityService) Get(date models.DateKey) (models.AvailableDate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.dates[date]
	return entry, ok
}

func (s *DefaultAvailabilityService) Pending() []models.DateKey {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []models.DateKey
	for date, entry := range s.dates {
		if entry.Status == models.StatusPending {
			pending = append(pending, date)
		}
	}
	sortDates(pending)
	return pending
}

func (s *DefaultAvailabilityService) ConfirmedLocal() []models.AvailableDate {
	return s.collect(func(e models.AvailableDate) bool {
		return e.Status == models.StatusConfirmedLocal
	})
}

func (s *DefaultAvailabilityService) Snapshot() []models.AvailableDate {
	return s.collect(func(models.AvailableDate) bool { return true })
}

func (s *DefaultAvailabilityService) collect(keep func(models.AvailableDate) bool) []models.AvailableDate {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []models.AvailableDate
	for _, entry := range s.dates {
		if keep(entry) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

func (s *DefaultAvailabilityService) statusLocked(date models.DateKey) models.DateStatus {
	if entry, ok := s.dates[date]; ok {
		return entry.Status
	}
	return models.StatusNone
}

func rangeFromCreated(cd models.CreatedDate) (models.TimeRange, error) {
	from, err := utils.From24Hour(cd.StartTime)
	if err != nil {
		return models.TimeRange{}, err
	}
	to, err := utils.From24Hour(cd.EndTime)
	if err != nil {
		return models.TimeRange{}, err
	}
	r := models.TimeRange{From: from, To: to, SlotDuration: cd.SlotDuration}
	if err := r.Validate(); err != nil {
		return models.TimeRange{}, err
	}
	return r, nil
}

func sortDates(dates []models.DateKey) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
}
