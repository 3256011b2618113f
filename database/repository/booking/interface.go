package bookingRepo

import (
	"errors"
	"time"

	"salonbook/models"
)

// ErrSlotTaken reports that the transactional conflict re-check found a
// blocking booking in the requested window. The caller re-runs
// availability and prompts for a different slot.
var ErrSlotTaken = errors.New("time slot already taken")

// BookingRepository provides access to appointment records.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	// ListForDate returns every booking of the company on the date,
	// regardless of status; the availability engine filters blocking
	// statuses itself.
	ListForDate(companyID, date string) ([]models.Booking, error)
	// ListRange returns bookings with from <= date <= to (DateLayout).
	ListRange(companyID, from, to string) ([]models.Booking, error)

	// CreateWithConflictCheck inserts the booking inside a transaction
	// that first re-reads the staff member's blocking bookings for the
	// date and applies the overlap predicate over
	// [conflictStart, conflictEnd). Returns ErrSlotTaken when a
	// concurrent writer got there first.
	CreateWithConflictCheck(b *models.Booking, conflictStart, conflictEnd int) error

	UpdateStatus(id, status string) error
	// ConfirmPreBooked promotes a PreBooked booking with the staff-set
	// duration and price, fixing its end time.
	ConfirmPreBooked(id string, end, duration int, price float64, confirmedAt time.Time) error
	MarkReminderSent(id string) error
	// CancelStalePreBooked cancels PreBooked bookings created before
	// cutoff that were never confirmed. Returns the number cancelled.
	CancelStalePreBooked(cutoff time.Time) (int64, error)
}
