package models

// MaxServiceDates caps the explicit date allow-list a service may carry.
const MaxServiceDates = 10

// Service represents a bookable service offered by a company.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	CompanyID       string  `bson:"company_id" json:"company_id"`
	Name            string  `bson:"name" json:"name"`
	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"` // customer-facing duration, > 0
	BufferMinutes   int     `bson:"buffer_minutes,omitempty" json:"buffer_minutes,omitempty"`
	Price           float64 `bson:"price" json:"price"`

	NeedsStaffConfirmation bool `bson:"needs_staff_confirmation,omitempty" json:"needs_staff_confirmation,omitempty"`
	// AvailableDates, when non-empty, restricts bookings to exactly these
	// calendar dates regardless of working hours. At most MaxServiceDates.
	AvailableDates []string `bson:"available_dates,omitempty" json:"available_dates,omitempty"`
	Active         bool     `bson:"active" json:"active"`
}

// AllowsDate reports whether the service may be booked on the given date.
// An empty allow-list means every date is allowed.
func (s Service) AllowsDate(date string) bool {
	if len(s.AvailableDates) == 0 {
		return true
	}
	for _, d := range s.AvailableDates {
		if d == date {
			return true
		}
	}
	return false
}
