package availability

import (
	"errors"
	"sort"

	"salonbook/models"
)

// ErrNoStaffAvailable is returned when every eligible staff member is
// unavailable for the requested window. A "please pick another time"
// condition, not a failure.
var ErrNoStaffAvailable = errors.New("no staff available for the requested time")

// Assign selects one staff member for a booking of svc over [start, end)
// on the snapshot's date, when the customer did not pick one. Candidates
// are walked in ascending staff-ID order and the first fit wins, so the
// choice is stable across calls with identical inputs. This is a
// deliberately simple deterministic policy, not load balancing.
//
// excludeBookingID, when non-empty, is ignored during conflict checks;
// used when re-validating an edited booking.
func Assign(snap DaySnapshot, svc models.Service, start, end int, pol Policy, excludeBookingID string) (string, error) {
	w := snap.Working
	if w == nil || w.IsDayOff || start < w.Start || end > w.End {
		return "", ErrNoStaffAvailable
	}
	if !svc.AllowsDate(snap.DateStr()) {
		return "", ErrNoStaffAvailable
	}

	candidates := make([]models.Staff, 0, len(snap.Staff))
	for _, st := range snap.Staff {
		if st.CanPerform(svc.ID) && staffOnDuty(st, snap) {
			candidates = append(candidates, st)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

	conflictEnd := end
	if pol.BufferBlocksConflicts {
		conflictEnd += svc.BufferMinutes
	}

	for _, st := range candidates {
		if overlapsAny(start, conflictEnd, snap.blockingFor(st.ID, excludeBookingID)) {
			continue
		}
		return st.ID, nil
	}
	return "", ErrNoStaffAvailable
}
