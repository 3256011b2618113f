package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/services/bookingsvc"
	"salonbook/services/companysvc"
	"salonbook/utils"
)

// respondError maps typed service errors to HTTP statuses. Anything
// untyped is a server fault and is logged, not leaked.
func respondError(c *gin.Context, err error) {
	var be *bookingsvc.BookingError
	if errors.As(err, &be) {
		c.JSON(bookingStatus(be.Code), gin.H{"error": be.Message, "code": be.Code})
		return
	}
	var ce *companysvc.ConfigError
	if errors.As(err, &ce) {
		status := http.StatusBadRequest
		if ce.Code == companysvc.CodeNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": ce.Message, "code": ce.Code})
		return
	}
	utils.GetLogger().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func bookingStatus(code string) int {
	switch code {
	case bookingsvc.CodeInvalidInput:
		return http.StatusBadRequest
	case bookingsvc.CodeNotFound:
		return http.StatusNotFound
	case bookingsvc.CodeSlotTaken:
		return http.StatusConflict
	case bookingsvc.CodeNoStaffAvailable:
		return http.StatusUnprocessableEntity
	case bookingsvc.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
