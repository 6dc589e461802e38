package schedule

import (
	"time"

	"smartslot/models"
)

// IsPastDate reports whether date falls strictly before now's calendar day.
// Both sides compare at day granularity; "today" is never past. The caller
// supplies now so the comparison stays deterministic under test.
func IsPastDate(now time.Time, date models.DateKey) bool {
	today := models.DateKeyOf(now)
	return date.Before(today)
}

// EnumerateMonth lists every date of the given month, day 1 through the
// last day inclusive.
func EnumerateMonth(year int, month time.Month) []models.DateKey {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	dates := make([]models.DateKey, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		dates = append(dates, models.DateKeyOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC)))
	}
	return dates
}

// CanNavigateBackward reports whether the viewed month may step back one
// month. Only months strictly after the current one can; the current month
// is a hard floor while forward navigation is unbounded.
func CanNavigateBackward(viewYear int, viewMonth time.Month, nowYear int, nowMonth time.Month) bool {
	if viewYear != nowYear {
		return viewYear > nowYear
	}
	return viewMonth > nowMonth
}

// Next30Days lists today plus the following 29 dates, the rolling window
// the customer-facing calendar shows.
func Next30Days(now time.Time) []models.DateKey {
	dates := make([]models.DateKey, 0, 30)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := 0; i < 30; i++ {
		dates = append(dates, models.DateKeyOf(day.AddDate(0, 0, i)))
	}
	return dates
}
