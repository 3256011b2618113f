package bookingsvc

import "fmt"

// Error codes surfaced to the HTTP layer.
const (
	CodeInvalidInput     = "invalidInput"
	CodeNotFound         = "notFound"
	CodeSlotTaken        = "slotTaken"
	CodeNoStaffAvailable = "noStaffAvailable"
	CodeForbidden        = "forbidden"
)

// BookingError carries a machine-readable code alongside the message so
// handlers can map it to a status without string matching.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newBookingError(code, msg string) error {
	return &BookingError{Code: code, Message: msg}
}

func invalidInput(format string, args ...interface{}) error {
	return newBookingError(CodeInvalidInput, fmt.Sprintf(format, args...))
}

func notFound(format string, args ...interface{}) error {
	return newBookingError(CodeNotFound, fmt.Sprintf(format, args...))
}
