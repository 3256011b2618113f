package bookingsvc

import (
	"fmt"
	"time"

	"salonbook/models"
	"salonbook/services/availability"
)

// daySnapshot assembles the read-only view of one company day for the
// availability engine: the weekday's working interval, the staff roster,
// and the day's bookings, fetched once per computation.
func (s *DefaultBookingService) daySnapshot(companyID string, date time.Time) (availability.DaySnapshot, error) {
	working, err := s.CompanyRepo.GetWorkingInterval(companyID, models.WeekdayIndex(date))
	if err != nil {
		return availability.DaySnapshot{}, fmt.Errorf("fetching working interval: %w", err)
	}
	staff, err := s.CompanyRepo.ListStaff(companyID)
	if err != nil {
		return availability.DaySnapshot{}, fmt.Errorf("fetching staff roster: %w", err)
	}
	bookings, err := s.BookingRepo.ListForDate(companyID, date.Format(models.DateLayout))
	if err != nil {
		return availability.DaySnapshot{}, fmt.Errorf("fetching bookings: %w", err)
	}
	return availability.DaySnapshot{
		Date:     date,
		Working:  working,
		Staff:    staff,
		Bookings: bookings,
	}, nil
}
