package models

import "time"

// Company represents a registered salon.
type Company struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Website     string    `bson:"website,omitempty" json:"website,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// WorkingInterval is the open-for-business window for one weekday.
// At most one interval exists per company per weekday. When IsDayOff is
// set, Start and End are ignored.
type WorkingInterval struct {
	CompanyID string `bson:"company_id" json:"company_id"`
	DayOfWeek int    `bson:"day_of_week" json:"day_of_week"` // 0=Monday .. 6=Sunday
	Start     int    `bson:"start" json:"start"`             // minutes from midnight
	End       int    `bson:"end" json:"end"`                 // minutes from midnight
	IsDayOff  bool   `bson:"is_day_off" json:"is_day_off"`
}
