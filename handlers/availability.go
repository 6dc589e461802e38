package handlers

import (
	"net/http"
	"strconv"
	"time"

	"smartslot/models"
	"smartslot/services/availability"
	"smartslot/services/ledger"
	"smartslot/services/schedule"
	"smartslot/services/sync"
	"smartslot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the availability store and sync operations to
// the admin UI.
type AvailabilityHandler struct {
	Availability availability.AvailabilityService
	Ledger       ledger.LedgerService
	Sync         sync.SyncService

	// Now supplies "today" for past-date flags; tests pin it.
	Now func() time.Time
}

func NewAvailabilityHandler(avail availability.AvailabilityService, led ledger.LedgerService, syncSvc sync.SyncService) *AvailabilityHandler {
	return &AvailabilityHandler{
		Availability: avail,
		Ledger:       led,
		Sync:         syncSvc,
		Now:          time.Now,
	}
}

// GetSlotsHandler returns the fixed universe of 48 slot labels.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": schedule.GenerateTimeSlots()})
}

type calendarDate struct {
	Date   models.DateKey    `json:"date"`
	Status models.DateStatus `json:"status"`
	IsPast bool              `json:"isPast"`
}

// GetCalendarHandler returns one month of dates with their status and
// whether backward navigation from that month is allowed.
func (h *AvailabilityHandler) GetCalendarHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid year", c.Param("year"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid month", c.Param("month"))
		return
	}

	now := h.Now()
	dates := schedule.EnumerateMonth(year, time.Month(month))
	view := make([]calendarDate, 0, len(dates))
	for _, d := range dates {
		view = append(view, calendarDate{
			Date:   d,
			Status: h.Availability.StatusOf(d),
			IsPast: schedule.IsPastDate(now, d),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"year":            year,
		"month":           month,
		"dates":           view,
		"canNavigateBack": schedule.CanNavigateBackward(year, time.Month(month), now.Year(), now.Month()),
	})
}

// ToggleDateHandler cycles a date's selection state.
func (h *AvailabilityHandler) ToggleDateHandler(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid date in request body", err.Error())
		return
	}
	date, err := models.ParseDateKey(body.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	status := h.Availability.Toggle(date)
	c.JSON(http.StatusOK, gin.H{"date": date, "status": status})
}

// ConfirmPendingHandler moves every pending date into the available set.
func (h *AvailabilityHandler) ConfirmPendingHandler(c *gin.Context) {
	confirmed := h.Availability.ConfirmPending()
	c.JSON(http.StatusOK, gin.H{
		"confirmed": confirmed,
		"message":   "Dates confirmed. Set time ranges, then submit.",
	})
}

// CancelPendingHandler drops the pending selection.
func (h *AvailabilityHandler) CancelPendingHandler(c *gin.Context) {
	h.Availability.CancelPending()
	c.JSON(http.StatusOK, gin.H{"message": "Selection cancelled"})
}

// RemoveAllHandler clears all local (non-created) dates and their ranges.
func (h *AvailabilityHandler) RemoveAllHandler(c *gin.Context) {
	h.Availability.RemoveAll()
	c.JSON(http.StatusOK, gin.H{"message": "Local dates cleared"})
}

// SetTimeRangeHandler attaches a time range to a confirmed date. The
// response carries the resulting slot count and the candidate durations so
// the UI can keep its picker in step.
func (h *AvailabilityHandler) SetTimeRangeHandler(c *gin.Context) {
	date, err := models.ParseDateKey(c.Param("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	var body struct {
		From         string `json:"from" binding:"required"`
		To           string `json:"to" binding:"required"`
		SlotDuration int    `json:"slotDuration" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	from, err := schedule.ValidateLabel(body.From)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid start time", err.Error())
		return
	}
	to, err := schedule.ValidateLabel(body.To)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid end time", err.Error())
		return
	}

	r := models.TimeRange{From: from, To: to, SlotDuration: body.SlotDuration}
	if err := h.Availability.SetTimeRange(date, r); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not set time range", err.Error())
		return
	}

	count, _ := schedule.ComputeSlotCount(r)
	durations, _ := schedule.CandidateDurations(from, to)
	c.JSON(http.StatusOK, gin.H{
		"date":               date,
		"range":              r,
		"slotCount":          count,
		"candidateDurations": durations,
	})
}

// GetDurationsHandler previews the candidate durations and slot counts for
// a from/to pair before anything is saved.
func (h *AvailabilityHandler) GetDurationsHandler(c *gin.Context) {
	from, err := schedule.ValidateLabel(c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid start time", err.Error())
		return
	}
	to, err := schedule.ValidateLabel(c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid end time", err.Error())
		return
	}

	durations, err := schedule.CandidateDurations(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time range", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totalMinutes":       to.MinuteOfDay - from.MinuteOfDay,
		"candidateDurations": durations,
	})
}

type slotView struct {
	Time   models.TimeLabel `json:"time"`
	Status string           `json:"status"` // available, booked, past
}

// GetDateSlotsHandler lists each bookable slot on a date with its derived
// status, combining the date's range with the booking ledger.
func (h *AvailabilityHandler) GetDateSlotsHandler(c *gin.Context) {
	date, err := models.ParseDateKey(c.Param("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	entry, ok := h.Availability.Get(date)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Date is not available", string(date))
		return
	}

	labels, err := schedule.SlotsInRange(entry.EffectiveRange())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Date holds an invalid range", err.Error())
		return
	}

	past := schedule.IsPastDate(h.Now(), date)
	slots := make([]slotView, 0, len(labels))
	for _, label := range labels {
		status := "available"
		switch {
		case past:
			status = "past"
		case h.Ledger.IsBooked(date, label):
			status = "booked"
		}
		slots = append(slots, slotView{Time: label, Status: status})
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "status": entry.Status, "slots": slots})
}

// SubmitDatesHandler submits confirmed dates to the backend and refetches.
func (h *AvailabilityHandler) SubmitDatesHandler(c *gin.Context) {
	notice, err := h.Sync.SubmitDates(c.Request.Context())
	if err != nil {
		status := http.StatusBadGateway
		switch err {
		case sync.ErrNoDatesSelected:
			status = http.StatusBadRequest
		case sync.ErrSubmitInFlight:
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"notice": notice})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": notice, "dates": h.Availability.Snapshot()})
}

// DeleteCreatedDateHandler deletes a backend-created date by its id.
func (h *AvailabilityHandler) DeleteCreatedDateHandler(c *gin.Context) {
	remoteID := c.Param("id")
	if remoteID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date id", "")
		return
	}
	notice, err := h.Sync.DeleteCreatedDate(c.Request.Context(), remoteID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"notice": notice})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": notice})
}

// RefreshHandler refetches both backend snapshots on demand.
func (h *AvailabilityHandler) RefreshHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := c.Request.Context()

	if err := h.Sync.RefreshCreatedDates(ctx); err != nil {
		logger.Error("Manual created-dates refresh failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Could not refresh dates", err.Error())
		return
	}
	if err := h.Sync.RefreshBookings(ctx); err != nil {
		logger.Error("Manual bookings refresh failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Could not refresh bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dates":         h.Availability.Snapshot(),
		"totalBookings": h.Ledger.TotalBookings(),
	})
}
