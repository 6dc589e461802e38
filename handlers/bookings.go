package handlers

import (
	"net/http"

	"smartslot/models"
	"smartslot/services/ledger"
	"smartslot/services/schedule"
	"smartslot/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves read-only booking views off the ledger mirror.
type BookingHandler struct {
	Ledger ledger.LedgerService
}

func NewBookingHandler(led ledger.LedgerService) *BookingHandler {
	return &BookingHandler{Ledger: led}
}

type dateGroup struct {
	Date     models.DateKey     `json:"date"`
	Label    string             `json:"label"`
	Bookings []models.SlotEntry `json:"bookings"`
}

// ListBookingsHandler returns the admin stats plus every booking grouped by
// date, dates and times both in order.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	dates := h.Ledger.Dates()
	groups := make([]dateGroup, 0, len(dates))
	for _, d := range dates {
		groups = append(groups, dateGroup{
			Date:     d,
			Label:    d.FormatLong(),
			Bookings: h.Ledger.BookingsForDate(d),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"totalBookings":     h.Ledger.TotalBookings(),
		"datesWithBookings": h.Ledger.DatesWithBookings(),
		"byDate":            groups,
	})
}

// BookingsForDateHandler returns one date's bookings sorted by time.
func (h *BookingHandler) BookingsForDateHandler(c *gin.Context) {
	date, err := models.ParseDateKey(c.Param("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"label":    date.FormatLong(),
		"bookings": h.Ledger.BookingsForDate(date),
	})
}

// BookingDetailHandler returns the booking at one (date, time) slot, the
// read-only detail view behind a booking click.
func (h *BookingHandler) BookingDetailHandler(c *gin.Context) {
	date, err := models.ParseDateKey(c.Param("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	label, err := schedule.ValidateLabel(c.Query("time"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time", err.Error())
		return
	}

	booking, ok := h.Ledger.Get(date, label)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "No booking at this slot", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
