package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// ReminderPayload identifies the booking a reminder refers to.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	CompanyID string `json:"companyId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"` // "HH:MM"
}

// NewReminderTask builds a reminder task scheduled for fireAt.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
