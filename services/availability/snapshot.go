package availability

import (
	"time"

	"salonbook/models"
)

// DaySnapshot is the read-only view of one company day that the engine
// computes over: the weekday's working interval, the staff roster, and
// the bookings already recorded for the date. The booking workflow
// fetches it once per computation; the engine performs no I/O.
type DaySnapshot struct {
	Date     time.Time
	Working  *models.WorkingInterval // nil when no interval is configured for the weekday
	Staff    []models.Staff
	Bookings []models.Booking // all bookings for the date, any status
}

// DateStr returns the snapshot date in models.DateLayout.
func (s DaySnapshot) DateStr() string {
	return s.Date.Format(models.DateLayout)
}

// Weekday returns the snapshot date's weekday index (0=Monday).
func (s DaySnapshot) Weekday() int {
	return models.WeekdayIndex(s.Date)
}

// staffByID returns the roster entry for id, or nil.
func (s DaySnapshot) staffByID(id string) *models.Staff {
	for i := range s.Staff {
		if s.Staff[i].ID == id {
			return &s.Staff[i]
		}
	}
	return nil
}

// blockingFor collects the busy intervals of one staff member: blocking
// bookings (Pending or Confirmed, excluding excludeBookingID) plus the
// staff's break interval as a pseudo-booking. PreBooked bookings carry
// no end time and never appear here.
func (s DaySnapshot) blockingFor(staffID, excludeBookingID string) []busyInterval {
	var busy []busyInterval
	for _, b := range s.Bookings {
		if b.StaffID != staffID || !b.Blocks() {
			continue
		}
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		busy = append(busy, busyInterval{start: b.Start, end: b.End})
	}
	if st := s.staffByID(staffID); st != nil && st.Break != nil {
		busy = append(busy, busyInterval{start: st.Break.Start, end: st.Break.End})
	}
	return busy
}

// Policy controls how candidate windows are matched against existing
// bookings. Stored booking end times never include the service buffer;
// whether the candidate's own buffer collides with them is configurable.
type Policy struct {
	// BufferBlocksConflicts extends the candidate's busy window to
	// [start, start+duration+buffer) when checking existing bookings.
	// Off by default: only the customer-facing duration is compared.
	BufferBlocksConflicts bool
}
