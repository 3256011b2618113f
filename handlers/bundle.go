package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	// Availability endpoints
	GetAvailableTimesHandler gin.HandlerFunc
	GetAvailableDatesHandler gin.HandlerFunc
	GetAvailableStaffHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler    gin.HandlerFunc
	CancelBookingHandler    gin.HandlerFunc
	UpdateStatusHandler     gin.HandlerFunc
	ConfirmPreBookedHandler gin.HandlerFunc
	GetCalendarHandler      gin.HandlerFunc

	// Company configuration endpoints
	RegisterCompanyHandler gin.HandlerFunc
	GetCompanyHandler      gin.HandlerFunc
	GetWorkingHoursHandler gin.HandlerFunc
	SetWorkingHoursHandler gin.HandlerFunc
	ListStaffHandler       gin.HandlerFunc
	AddStaffHandler        gin.HandlerFunc
	UpdateStaffHandler     gin.HandlerFunc
	RemoveStaffHandler     gin.HandlerFunc
	ListServicesHandler    gin.HandlerFunc
	AddServiceHandler      gin.HandlerFunc
	UpdateServiceHandler   gin.HandlerFunc
	RemoveServiceHandler   gin.HandlerFunc
}
