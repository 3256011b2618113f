package bookingsvc

import (
	"fmt"

	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/utils"
)

// GetAvailableTimes returns the bookable start times ("HH:MM", ascending)
// for a service on a date. An empty staffID means any eligible staff.
// Missing configuration (closed day, nobody on duty) yields an empty
// list, never an error.
func (s *DefaultBookingService) GetAvailableTimes(companyID, serviceID, staffID, date string) ([]string, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, invalidInput("invalid date %q", date)
	}
	svc, err := s.CompanyRepo.GetServiceByID(companyID, serviceID)
	if err != nil {
		return nil, notFound("service %s not found", serviceID)
	}
	if !svc.Active {
		return []string{}, nil
	}

	scope := availability.AnyEligible()
	if staffID != "" {
		st, err := s.CompanyRepo.GetStaffByID(companyID, staffID)
		if err != nil {
			return nil, notFound("staff %s not found", staffID)
		}
		if !st.CanPerform(serviceID) {
			return []string{}, nil
		}
		scope = availability.Specific(staffID)
	}

	snap, err := s.daySnapshot(companyID, day)
	if err != nil {
		return nil, err
	}

	slots := availability.Slots(snap, *svc, scope, s.Policy)
	times := make([]string, 0, len(slots))
	for _, m := range slots {
		times = append(times, utils.FormatTimeOfDay(m))
	}
	return times, nil
}

// GetAvailableDates answers, for each date in the rolling window starting
// today, whether the calculator would return at least one slot. Results
// are cached briefly; any booking write bumps the company's cache epoch.
func (s *DefaultBookingService) GetAvailableDates(companyID, serviceID, staffID string) ([]string, error) {
	svc, err := s.CompanyRepo.GetServiceByID(companyID, serviceID)
	if err != nil {
		return nil, notFound("service %s not found", serviceID)
	}
	if !svc.Active {
		return []string{}, nil
	}

	if cached, ok := s.cachedDates(companyID, serviceID, staffID); ok {
		return cached, nil
	}

	scope := availability.AnyEligible()
	if staffID != "" {
		st, err := s.CompanyRepo.GetStaffByID(companyID, staffID)
		if err != nil {
			return nil, notFound("staff %s not found", staffID)
		}
		if !st.CanPerform(serviceID) {
			return []string{}, nil
		}
		scope = availability.Specific(staffID)
	}

	// One round of fetches for the whole window; per-date snapshots are
	// assembled in memory.
	hours, err := s.CompanyRepo.GetWorkingHours(companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching working hours: %w", err)
	}
	byDay := make(map[int]models.WorkingInterval, len(hours))
	for _, h := range hours {
		byDay[h.DayOfWeek] = h
	}
	staff, err := s.CompanyRepo.ListStaff(companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching staff roster: %w", err)
	}

	start := s.now()
	from := start.Format(models.DateLayout)
	to := start.AddDate(0, 0, s.windowDays()-1).Format(models.DateLayout)
	bookings, err := s.BookingRepo.ListRange(companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching bookings: %w", err)
	}
	byDate := make(map[string][]models.Booking)
	for _, b := range bookings {
		byDate[b.Date] = append(byDate[b.Date], b)
	}

	dates := make([]string, 0, s.windowDays())
	for i := 0; i < s.windowDays(); i++ {
		day := start.AddDate(0, 0, i)
		dateStr := day.Format(models.DateLayout)
		snap := availability.DaySnapshot{
			Date:     day,
			Staff:    staff,
			Bookings: byDate[dateStr],
		}
		if w, ok := byDay[models.WeekdayIndex(day)]; ok {
			working := w
			snap.Working = &working
		}
		if availability.HasSlots(snap, *svc, scope, s.Policy) {
			dates = append(dates, dateStr)
		}
	}

	s.storeDates(companyID, serviceID, staffID, dates)
	return dates, nil
}

// GetAvailableStaff lists the active staff members eligible for a
// service, the simple filter behind the staff picker.
func (s *DefaultBookingService) GetAvailableStaff(companyID, serviceID string) ([]models.Staff, error) {
	if _, err := s.CompanyRepo.GetServiceByID(companyID, serviceID); err != nil {
		return nil, notFound("service %s not found", serviceID)
	}
	staff, err := s.CompanyRepo.ListStaff(companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching staff roster: %w", err)
	}
	eligible := make([]models.Staff, 0, len(staff))
	for _, st := range staff {
		if st.Active && st.CanPerform(serviceID) {
			eligible = append(eligible, st)
		}
	}
	return eligible, nil
}
