package availability

// Scope selects the resource a computation runs against: one specific
// staff member, or any staff member eligible for the service. Both modes
// share a single code path so their overlap logic cannot diverge.
type Scope struct {
	staffID string
}

// Specific scopes the computation to a single staff member.
func Specific(staffID string) Scope {
	return Scope{staffID: staffID}
}

// AnyEligible scopes the computation to every active staff member
// eligible for the service; a time is bookable when at least one of
// them is individually free.
func AnyEligible() Scope {
	return Scope{}
}

func (s Scope) isSpecific() bool {
	return s.staffID != ""
}
