package availability

import "salonbook/models"

// CanBook reports whether the given staff member can take a booking of
// svc over [start, end) on the snapshot's date. It applies the same
// checks the auto-assigner applies to its candidates: working window
// containment, on-duty gates, break interval, and blocking bookings.
// The booking-creation workflow uses it to validate an explicitly
// chosen staff member; excludeBookingID supports edit re-validation.
func CanBook(snap DaySnapshot, svc models.Service, staffID string, start, end int, pol Policy, excludeBookingID string) bool {
	w := snap.Working
	if w == nil || w.IsDayOff || start < w.Start || end > w.End {
		return false
	}
	if !svc.AllowsDate(snap.DateStr()) {
		return false
	}
	st := snap.staffByID(staffID)
	if st == nil || !staffOnDuty(*st, snap) {
		return false
	}
	conflictEnd := end
	if pol.BufferBlocksConflicts {
		conflictEnd += svc.BufferMinutes
	}
	return !overlapsAny(start, conflictEnd, snap.blockingFor(staffID, excludeBookingID))
}
