package bookingsvc

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/services/tasks"
	"salonbook/utils"
)

// CreateBooking validates the requested window against working hours and
// existing bookings, auto-assigns a staff member when none was chosen,
// and persists the booking through the conflict-checked insert. The
// returned booking is Pending, or PreBooked when the service needs staff
// confirmation of duration and price.
func (s *DefaultBookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" {
		return nil, invalidInput("customer name and phone are required")
	}
	day, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, invalidInput("invalid date %q", req.Date)
	}
	start, err := utils.ParseTimeOfDay(req.Start)
	if err != nil {
		return nil, invalidInput("invalid start time %q", req.Start)
	}
	today := s.now().Format(models.DateLayout)
	if req.Date < today {
		return nil, invalidInput("cannot book in the past")
	}

	svc, err := s.CompanyRepo.GetServiceByID(req.CompanyID, req.ServiceID)
	if err != nil {
		return nil, notFound("service %s not found", req.ServiceID)
	}
	if !svc.Active {
		return nil, invalidInput("service %s is not bookable", req.ServiceID)
	}
	if svc.DurationMinutes <= 0 {
		return nil, invalidInput("service %s has no valid duration", req.ServiceID)
	}
	end := start + svc.DurationMinutes

	snap, err := s.daySnapshot(req.CompanyID, day)
	if err != nil {
		return nil, err
	}

	staffID := req.StaffID
	if staffID != "" {
		st, err := s.CompanyRepo.GetStaffByID(req.CompanyID, staffID)
		if err != nil {
			return nil, notFound("staff %s not found", staffID)
		}
		if !st.CanPerform(req.ServiceID) {
			return nil, invalidInput("staff %s cannot perform service %s", staffID, req.ServiceID)
		}
		if !availability.CanBook(snap, *svc, staffID, start, end, s.Policy, "") {
			return nil, newBookingError(CodeSlotTaken, "the requested time is not available, please choose a different slot")
		}
	} else {
		staffID, err = availability.Assign(snap, *svc, start, end, s.Policy, "")
		if errors.Is(err, availability.ErrNoStaffAvailable) {
			return nil, newBookingError(CodeNoStaffAvailable, "no staff available, please choose a different time")
		}
		if err != nil {
			return nil, err
		}
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		CompanyID:     req.CompanyID,
		StaffID:       staffID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Start:         start,
		Status:        models.StatusPending,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ClientNotes:   req.ClientNotes,
		DeleteCode:    uuid.New().String(),
		CreatedAt:     s.now(),
	}
	if svc.NeedsStaffConfirmation {
		// Duration and price come later from the staff; no end time yet.
		booking.Status = models.StatusPreBooked
	} else {
		booking.End = end
		booking.DurationMinutes = svc.DurationMinutes
		booking.Price = svc.Price
	}

	conflictEnd := end
	if s.Policy.BufferBlocksConflicts {
		conflictEnd += svc.BufferMinutes
	}
	if err := s.BookingRepo.CreateWithConflictCheck(booking, start, conflictEnd); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, newBookingError(CodeSlotTaken, "the slot was just taken, please choose a different time")
		}
		return nil, fmt.Errorf("persisting booking: %w", err)
	}

	s.bumpAvailabilityEpoch(req.CompanyID)
	s.scheduleReminder(booking, day)
	return booking, nil
}

// scheduleReminder enqueues the reminder task; failures are logged, not
// returned, since the booking itself already committed.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking, day time.Time) {
	if s.Queue == nil {
		return
	}
	lead := s.ReminderLead
	if lead <= 0 {
		lead = time.Hour
	}
	fireAt := day.Add(time.Duration(b.Start) * time.Minute).Add(-lead)
	if fireAt.Before(s.now()) {
		return
	}
	payload := tasks.ReminderPayload{
		BookingID: b.ID,
		CompanyID: b.CompanyID,
		Date:      b.Date,
		StartTime: utils.FormatTimeOfDay(b.Start),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Warn("failed to build reminder task", zap.String("bookingID", b.ID), zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder", zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// CancelByCode cancels a booking using the delete code issued at
// creation time. This is the customer-facing cancellation path.
func (s *DefaultBookingService) CancelByCode(bookingID, code string) error {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return notFound("booking %s not found", bookingID)
	}
	if code == "" || b.DeleteCode != code {
		return newBookingError(CodeForbidden, "invalid cancellation code")
	}
	if b.Status == models.StatusCancelled {
		return nil
	}
	if err := s.BookingRepo.UpdateStatus(bookingID, models.StatusCancelled); err != nil {
		return fmt.Errorf("cancelling booking: %w", err)
	}
	s.bumpAvailabilityEpoch(b.CompanyID)
	return nil
}

// UpdateStatus applies an administrator status change. PreBooked
// bookings are promoted through ConfirmPreBooked, not here.
func (s *DefaultBookingService) UpdateStatus(bookingID, status string) error {
	if status != models.StatusPending && status != models.StatusConfirmed && status != models.StatusCancelled {
		return invalidInput("invalid status %q", status)
	}
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return notFound("booking %s not found", bookingID)
	}
	if b.Status == models.StatusPreBooked && status == models.StatusConfirmed {
		return invalidInput("prebooked bookings are confirmed with a duration and price")
	}
	if err := s.BookingRepo.UpdateStatus(bookingID, status); err != nil {
		return fmt.Errorf("updating booking status: %w", err)
	}
	s.bumpAvailabilityEpoch(b.CompanyID)
	return nil
}

// ConfirmPreBooked fixes the duration and price of a PreBooked booking.
// The now-determined window is re-validated against the staff member's
// other bookings (excluding this one) before the promotion.
func (s *DefaultBookingService) ConfirmPreBooked(bookingID string, durationMinutes int, price float64) (*models.Booking, error) {
	if durationMinutes <= 0 {
		return nil, invalidInput("duration must be positive")
	}
	if price < 0 {
		return nil, invalidInput("price must not be negative")
	}
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, notFound("booking %s not found", bookingID)
	}
	if b.Status != models.StatusPreBooked {
		return nil, invalidInput("booking %s is not awaiting confirmation", bookingID)
	}
	svc, err := s.CompanyRepo.GetServiceByID(b.CompanyID, b.ServiceID)
	if err != nil {
		return nil, notFound("service %s not found", b.ServiceID)
	}
	day, err := utils.ParseDate(b.Date)
	if err != nil {
		return nil, fmt.Errorf("stored booking has invalid date %q: %w", b.Date, err)
	}

	end := b.Start + durationMinutes
	snap, err := s.daySnapshot(b.CompanyID, day)
	if err != nil {
		return nil, err
	}
	if !availability.CanBook(snap, *svc, b.StaffID, b.Start, end, s.Policy, b.ID) {
		return nil, newBookingError(CodeSlotTaken, "the confirmed duration conflicts with another booking")
	}

	confirmedAt := s.now()
	if err := s.BookingRepo.ConfirmPreBooked(bookingID, end, durationMinutes, price, confirmedAt); err != nil {
		return nil, fmt.Errorf("confirming booking: %w", err)
	}
	s.bumpAvailabilityEpoch(b.CompanyID)

	b.Status = models.StatusConfirmed
	b.End = end
	b.DurationMinutes = durationMinutes
	b.Price = price
	b.ConfirmedAt = &confirmedAt
	return b, nil
}

// GetCalendar returns the company's bookings between two dates grouped
// by date, for the staff calendar view.
func (s *DefaultBookingService) GetCalendar(companyID, from, to string) (map[string][]models.Booking, error) {
	if _, err := utils.ParseDate(from); err != nil {
		return nil, invalidInput("invalid from date %q", from)
	}
	if _, err := utils.ParseDate(to); err != nil {
		return nil, invalidInput("invalid to date %q", to)
	}
	if from > to {
		return nil, invalidInput("from date is after to date")
	}
	bookings, err := s.BookingRepo.ListRange(companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching calendar: %w", err)
	}
	byDate := make(map[string][]models.Booking)
	for _, b := range bookings {
		byDate[b.Date] = append(byDate[b.Date], b)
	}
	return byDate, nil
}
