package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/services/bookingsvc"
)

// BookingHandler exposes the booking workflow endpoints.
type BookingHandler struct {
	Booking bookingsvc.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(booking bookingsvc.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Booking: booking, Logger: logger}
}

// CreateBookingHandler creates a booking for the company in the path.
// The delete code is returned once, here; the customer keeps it for
// cancellation.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input struct {
		ServiceID     string `json:"serviceId" binding:"required"`
		StaffID       string `json:"staffId"`
		Date          string `json:"date" binding:"required"`
		Start         string `json:"start" binding:"required"`
		CustomerName  string `json:"customerName" binding:"required"`
		CustomerPhone string `json:"customerPhone" binding:"required"`
		CustomerEmail string `json:"customerEmail"`
		ClientNotes   string `json:"clientNotes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Booking.CreateBooking(bookingsvc.CreateBookingRequest{
		CompanyID:     c.Param("companyID"),
		ServiceID:     input.ServiceID,
		StaffID:       input.StaffID,
		Date:          input.Date,
		Start:         input.Start,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		ClientNotes:   input.ClientNotes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.Logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("companyID", booking.CompanyID),
		zap.String("staffID", booking.StaffID),
		zap.String("date", booking.Date),
		zap.String("status", booking.Status))
	c.JSON(http.StatusCreated, gin.H{
		"booking":    booking,
		"deleteCode": booking.DeleteCode,
	})
}

// CancelBookingHandler is the customer cancellation path, authorized by
// the delete code issued at creation time.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if err := h.Booking.CancelByCode(bookingID, c.Query("code")); err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("booking cancelled by customer", zap.String("bookingID", bookingID))
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// UpdateStatusHandler applies an administrator status change.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	bookingID := c.Param("bookingID")
	if err := h.Booking.UpdateStatus(bookingID, input.Status); err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("booking status updated", zap.String("bookingID", bookingID), zap.String("status", input.Status))
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// ConfirmPreBookedHandler fixes the duration and price of a booking
// awaiting staff confirmation.
func (h *BookingHandler) ConfirmPreBookedHandler(c *gin.Context) {
	var input struct {
		DurationMinutes int     `json:"durationMinutes" binding:"required"`
		Price           float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	booking, err := h.Booking.ConfirmPreBooked(c.Param("bookingID"), input.DurationMinutes, input.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("prebooked booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.Int("durationMinutes", input.DurationMinutes))
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GetCalendarHandler returns the company's bookings grouped by date.
func (h *BookingHandler) GetCalendarHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to dates are required"})
		return
	}
	calendar, err := h.Booking.GetCalendar(c.Param("companyID"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendar": calendar})
}
