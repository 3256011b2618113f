package availability

import "salonbook/models"

// SlotStepMinutes is the fixed granularity of offered start times.
const SlotStepMinutes = 30

// Slots computes the bookable start times (minutes from midnight, ascending)
// for a service on the snapshot's date, within the given scope.
//
// An empty result is the normal answer for closed days, days off, staff
// out-of-office or non-working days, dates outside a service's explicit
// allow-list, and durations that cannot fit the working window. Absent
// configuration is never an error.
func Slots(snap DaySnapshot, svc models.Service, scope Scope, pol Policy) []int {
	var slots []int
	forEachSlot(snap, svc, scope, pol, func(start int) bool {
		slots = append(slots, start)
		return true
	})
	return slots
}

// HasSlots reports whether at least one bookable start time exists. Used
// by the rolling available-dates query, which only needs existence.
func HasSlots(snap DaySnapshot, svc models.Service, scope Scope, pol Policy) bool {
	found := false
	forEachSlot(snap, svc, scope, pol, func(int) bool {
		found = true
		return false
	})
	return found
}

// forEachSlot walks candidate start times at SlotStepMinutes steps and
// yields each available one until the visitor returns false.
func forEachSlot(snap DaySnapshot, svc models.Service, scope Scope, pol Policy, visit func(start int) bool) {
	w := snap.Working
	if w == nil || w.IsDayOff {
		return
	}
	if !svc.AllowsDate(snap.DateStr()) {
		return
	}
	if svc.DurationMinutes <= 0 {
		return
	}

	var candidates []models.Staff
	if scope.isSpecific() {
		st := snap.staffByID(scope.staffID)
		if st == nil || !staffOnDuty(*st, snap) {
			return
		}
		candidates = []models.Staff{*st}
	} else {
		for _, st := range snap.Staff {
			if st.CanPerform(svc.ID) && staffOnDuty(st, snap) {
				candidates = append(candidates, st)
			}
		}
		if len(candidates) == 0 {
			return
		}
	}

	// A service that would run past closing is never offered. Only the
	// customer-facing duration is held against the window; the trailing
	// buffer may spill past it.
	for start := w.Start; start+svc.DurationMinutes <= w.End; start += SlotStepMinutes {
		for _, st := range candidates {
			if staffFreeAt(snap, svc, st.ID, start, pol, "") {
				if !visit(start) {
					return
				}
				break
			}
		}
	}
}

// staffOnDuty reports whether a staff member can take bookings at all on
// the snapshot date: active, working that weekday, and not out of office.
func staffOnDuty(st models.Staff, snap DaySnapshot) bool {
	return st.Active && st.WorksOn(snap.Weekday()) && !st.IsOutOfOffice(snap.DateStr())
}

// staffFreeAt reports whether the staff member is free for a booking of
// svc starting at start: no overlap with blocking bookings or the break
// interval. The candidate window against existing bookings is
// [start, start+duration), extended by the buffer when the policy says
// buffers collide. excludeBookingID is skipped, for re-validating edits.
func staffFreeAt(snap DaySnapshot, svc models.Service, staffID string, start int, pol Policy, excludeBookingID string) bool {
	end := start + svc.DurationMinutes
	if pol.BufferBlocksConflicts {
		end += svc.BufferMinutes
	}
	return !overlapsAny(start, end, snap.blockingFor(staffID, excludeBookingID))
}
