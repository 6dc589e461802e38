package ledger

import (
	"fmt"
	"sort"
	"sync"

	"smartslot/models"
	"smartslot/utils"

	"go.uber.org/zap"
)

// ErrSlotTaken rejects a booking for a (date, time) slot that already
// holds one. No slot is ever double-booked.
var ErrSlotTaken = fmt.Errorf("slot already holds a booking")

// DefaultLedgerService keeps the booking mirror in nested maps keyed by
// date, then by minute of day.
type DefaultLedgerService struct {
	mu    sync.Mutex
	dates map[models.DateKey]map[int]models.Booking
}

// NewDefaultLedgerService returns an empty ledger.
func NewDefaultLedgerService() *DefaultLedgerService {
	return &DefaultLedgerService{
		dates: make(map[models.DateKey]map[int]models.Booking),
	}
}

func (l *DefaultLedgerService) Record(b models.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recordLocked(b)
}

func (l *DefaultLedgerService) recordLocked(b models.Booking) error {
	slots, ok := l.dates[b.Date]
	if !ok {
		slots = make(map[int]models.Booking)
		l.dates[b.Date] = slots
	}
	if existing, taken := slots[b.Time.MinuteOfDay]; taken {
		return fmt.Errorf("%w: %s %s (booking %s)", ErrSlotTaken, b.Date, b.Time, existing.ID)
	}
	slots[b.Time.MinuteOfDay] = b
	return nil
}

func (l *DefaultLedgerService) IsBooked(date models.DateKey, t models.TimeLabel) bool {
	_, ok := l.Get(date, t)
	return ok
}

func (l *DefaultLedgerService) Get(date models.DateKey, t models.TimeLabel) (models.Booking, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slots, ok := l.dates[date]
	if !ok {
		return models.Booking{}, false
	}
	b, ok := slots[t.MinuteOfDay]
	return b, ok
}

func (l *DefaultLedgerService) BookingsForDate(date models.DateKey) []models.SlotEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	slots, ok := l.dates[date]
	if !ok {
		return nil
	}
	entries := make([]models.SlotEntry, 0, len(slots))
	for _, b := range slots {
		entries = append(entries, models.SlotEntry{Time: b.Time, Booking: b})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Time.MinuteOfDay < entries[j].Time.MinuteOfDay
	})
	return entries
}

func (l *DefaultLedgerService) TotalBookings() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, slots := range l.dates {
		total += len(slots)
	}
	return total
}

func (l *DefaultLedgerService) DatesWithBookings() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.dates)
}

func (l *DefaultLedgerService) Dates() []models.DateKey {
	l.mu.Lock()
	defer l.mu.Unlock()

	dates := make([]models.DateKey, 0, len(l.dates))
	for date := range l.dates {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (l *DefaultLedgerService) ReplaceAll(bookings []models.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.dates = make(map[models.DateKey]map[int]models.Booking)
	for _, b := range bookings {
		if err := l.recordLocked(b); err != nil {
			// The backend should never report two bookings on one slot;
			// keep the first and surface the anomaly in the logs.
			utils.GetLogger().Warn("Backend snapshot held a conflicting booking",
				zap.String("date", string(b.Date)),
				zap.String("time", b.Time.Display),
				zap.String("bookingID", b.ID))
		}
	}
}
