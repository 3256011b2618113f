package models

// BreakInterval is a daily pause during which a staff member takes no
// bookings. Treated as a pseudo-booking by availability checks.
type BreakInterval struct {
	Start int `bson:"start" json:"start"` // minutes from midnight
	End   int `bson:"end" json:"end"`     // minutes from midnight
}

// Staff represents one bookable staff member of a company.
type Staff struct {
	ID             string         `bson:"id" json:"id"`
	CompanyID      string         `bson:"company_id" json:"company_id"`
	Name           string         `bson:"name" json:"name"`
	Specialization string         `bson:"specialization,omitempty" json:"specialization,omitempty"`
	ServiceIDs     []string       `bson:"service_ids" json:"service_ids"` // services this staff can perform
	WorkingDays    []int          `bson:"working_days" json:"working_days"`
	Break          *BreakInterval `bson:"break,omitempty" json:"break,omitempty"`
	OutOfOffice    *DateRange     `bson:"out_of_office,omitempty" json:"out_of_office,omitempty"`
	Active         bool           `bson:"active" json:"active"`
}

// WorksOn reports whether the staff member works on the given weekday
// (0=Monday convention).
func (s Staff) WorksOn(day int) bool {
	for _, d := range s.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// CanPerform reports whether the staff member is eligible for the service.
func (s Staff) CanPerform(serviceID string) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// IsOutOfOffice reports whether the given date (DateLayout) falls inside
// the staff member's out-of-office range, endpoints included.
func (s Staff) IsOutOfOffice(date string) bool {
	return s.OutOfOffice != nil && s.OutOfOffice.Contains(date)
}
