package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/services/bookingsvc"
)

// AvailabilityHandler exposes the slot and date queries.
type AvailabilityHandler struct {
	Booking bookingsvc.BookingService
}

func NewAvailabilityHandler(booking bookingsvc.BookingService) *AvailabilityHandler {
	return &AvailabilityHandler{Booking: booking}
}

// GetTimesHandler returns the bookable start times for a service on a
// date. staffID is optional; empty means any eligible staff.
func (h *AvailabilityHandler) GetTimesHandler(c *gin.Context) {
	companyID := c.Param("companyID")
	serviceID := c.Query("serviceID")
	date := c.Query("date")
	if serviceID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceID and date are required"})
		return
	}
	times, err := h.Booking.GetAvailableTimes(companyID, serviceID, c.Query("staffID"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "times": times})
}

// GetDatesHandler returns the dates in the rolling booking window with
// at least one bookable slot.
func (h *AvailabilityHandler) GetDatesHandler(c *gin.Context) {
	companyID := c.Param("companyID")
	serviceID := c.Query("serviceID")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceID is required"})
		return
	}
	dates, err := h.Booking.GetAvailableDates(companyID, serviceID, c.Query("staffID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetStaffHandler lists the active staff eligible for a service.
func (h *AvailabilityHandler) GetStaffHandler(c *gin.Context) {
	staff, err := h.Booking.GetAvailableStaff(c.Param("companyID"), c.Param("serviceID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}
