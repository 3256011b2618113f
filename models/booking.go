package models

import "time"

// Booking status values.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusPreBooked = "PreBooked" // awaiting staff confirmation with price/duration
)

// Booking represents one appointment record.
type Booking struct {
	ID        string `bson:"id" json:"id"`
	CompanyID string `bson:"company_id" json:"company_id"`
	StaffID   string `bson:"staff_id" json:"staff_id"`
	ServiceID string `bson:"service_id" json:"service_id"`
	Date      string `bson:"date" json:"date"`   // DateLayout
	Start     int    `bson:"start" json:"start"` // minutes from midnight
	// End is zero for PreBooked bookings until the staff confirms a
	// duration. It never includes the service's buffer time.
	End             int     `bson:"end,omitempty" json:"end,omitempty"`
	DurationMinutes int     `bson:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	Price           float64 `bson:"price,omitempty" json:"price,omitempty"`
	Status          string  `bson:"status" json:"status"`

	CustomerName  string `bson:"customer_name" json:"customer_name"`
	CustomerPhone string `bson:"customer_phone" json:"customer_phone"`
	CustomerEmail string `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	ClientNotes   string `bson:"client_notes,omitempty" json:"client_notes,omitempty"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`

	DeleteCode   string     `bson:"delete_code,omitempty" json:"-"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	ConfirmedAt  *time.Time `bson:"confirmed_at,omitempty" json:"confirmed_at,omitempty"`
	ReminderSent bool       `bson:"reminder_sent" json:"reminder_sent"`
}

// Blocks reports whether the booking occupies its resource's time.
// Cancelled bookings never block; PreBooked bookings have no determined
// end time and are excluded from interval math.
func (b Booking) Blocks() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
