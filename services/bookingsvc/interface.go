package bookingsvc

import (
	"time"

	bookingRepo "salonbook/database/repository/booking"
	companyRepo "salonbook/database/repository/company"
	"salonbook/models"
	"salonbook/services/availability"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// CreateBookingRequest is the customer-facing booking input.
type CreateBookingRequest struct {
	CompanyID     string
	ServiceID     string
	StaffID       string // empty means auto-assign
	Date          string // DateLayout
	Start         string // "HH:MM"
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	ClientNotes   string
}

// BookingService drives the booking workflow around the availability
// engine: slot queries, booking creation with conflict-safe persistence,
// and the booking lifecycle.
type BookingService interface {
	GetAvailableTimes(companyID, serviceID, staffID, date string) ([]string, error)
	GetAvailableDates(companyID, serviceID, staffID string) ([]string, error)
	GetAvailableStaff(companyID, serviceID string) ([]models.Staff, error)
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	CancelByCode(bookingID, code string) error
	UpdateStatus(bookingID, status string) error
	ConfirmPreBooked(bookingID string, durationMinutes int, price float64) (*models.Booking, error)
	GetCalendar(companyID, from, to string) (map[string][]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	CompanyRepo companyRepo.CompanyRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       *redis.Client // optional; nil disables the dates cache
	Queue       *asynq.Client // optional; nil disables reminder scheduling

	Policy       availability.Policy
	WindowDays   int           // rolling available-dates horizon
	ReminderLead time.Duration // how long before start the reminder fires

	// Now is the clock; overridable in tests. Nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) windowDays() int {
	if s.WindowDays <= 0 {
		return 90
	}
	return s.WindowDays
}
