package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonbook/handlers"
	"salonbook/utils"
)

// RegisterCompanyRoutes registers the company configuration endpoints:
// profile, working hours, staff roster, and the service catalogue.
func RegisterCompanyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/companies")
	{
		api.POST("", hb.RegisterCompanyHandler)
		api.GET("/:companyID", hb.GetCompanyHandler)

		api.GET("/:companyID/working-hours", hb.GetWorkingHoursHandler)
		api.PUT("/:companyID/working-hours", hb.SetWorkingHoursHandler)

		api.GET("/:companyID/staff", hb.ListStaffHandler)
		api.POST("/:companyID/staff", hb.AddStaffHandler)
		api.PUT("/:companyID/staff/:staffID", hb.UpdateStaffHandler)
		api.DELETE("/:companyID/staff/:staffID", hb.RemoveStaffHandler)

		api.GET("/:companyID/services", hb.ListServicesHandler)
		api.POST("/:companyID/services", hb.AddServiceHandler)
		api.PUT("/:companyID/services/:serviceID", hb.UpdateServiceHandler)
		api.DELETE("/:companyID/services/:serviceID", hb.RemoveServiceHandler)
	}
}

// RegisterAvailabilityRoutes registers the customer-facing slot queries.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/companies/:companyID")
	{
		api.GET("/availability/times", hb.GetAvailableTimesHandler)
		api.GET("/availability/dates", hb.GetAvailableDatesHandler)
		api.GET("/services/:serviceID/staff", hb.GetAvailableStaffHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking workflow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/companies/:companyID/bookings", hb.CreateBookingHandler)
	r.GET("/api/companies/:companyID/calendar", hb.GetCalendarHandler)

	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.DELETE("/:bookingID", hb.CancelBookingHandler)
		bookingGroup.PATCH("/:bookingID/status", hb.UpdateStatusHandler)
		bookingGroup.POST("/:bookingID/confirm", hb.ConfirmPreBookedHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"mongo": status.Mongo, "redis": status.Redis})
	})
}

// RegisterRoutes centralizes registration of all endpoints and the CORS
// middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCompanyRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
