package routes

import (
	"net/http"

	"smartslot/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers the availability-management endpoints.
func RegisterAdminRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/admin")
	{
		api.GET("/slots", ah.GetSlotsHandler)
		api.GET("/calendar/:year/:month", ah.GetCalendarHandler)

		api.POST("/dates/toggle", ah.ToggleDateHandler)
		api.POST("/dates/confirm", ah.ConfirmPendingHandler)
		api.POST("/dates/cancel", ah.CancelPendingHandler)
		api.DELETE("/dates", ah.RemoveAllHandler)

		api.PUT("/dates/:date/range", ah.SetTimeRangeHandler)
		api.GET("/durations", ah.GetDurationsHandler)
		api.GET("/dates/:date/slots", ah.GetDateSlotsHandler)

		api.POST("/dates/submit", ah.SubmitDatesHandler)
		api.DELETE("/dates/id/:id", ah.DeleteCreatedDateHandler)
		api.POST("/refresh", ah.RefreshHandler)
	}
}

// RegisterBookingRoutes registers the read-only booking views.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/admin/bookings")
	{
		api.GET("", bh.ListBookingsHandler)
		api.GET("/:date", bh.BookingsForDateHandler)
		api.GET("/:date/slot", bh.BookingDetailHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SmartSlot"})
	})
}
