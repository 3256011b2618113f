package availability

import (
	"testing"
	"time"

	"salonbook/models"
)

// Monday, 2 June 2025: the reference date used across the engine tests.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

const (
	nineAM  = 9 * 60
	fivePM  = 17 * 60
	allWeek = -1
)

func hours(day int, start, end int) *models.WorkingInterval {
	return &models.WorkingInterval{CompanyID: "c1", DayOfWeek: day, Start: start, End: end}
}

func dayOff(day int) *models.WorkingInterval {
	return &models.WorkingInterval{CompanyID: "c1", DayOfWeek: day, IsDayOff: true}
}

func staff(id string, serviceIDs []string, days ...int) models.Staff {
	if len(days) == 1 && days[0] == allWeek {
		days = []int{0, 1, 2, 3, 4, 5, 6}
	}
	return models.Staff{
		ID:          id,
		CompanyID:   "c1",
		Name:        "Staff " + id,
		ServiceIDs:  serviceIDs,
		WorkingDays: days,
		Active:      true,
	}
}

func service(id string, duration, buffer int) models.Service {
	return models.Service{
		ID:              id,
		CompanyID:       "c1",
		Name:            "Service " + id,
		DurationMinutes: duration,
		BufferMinutes:   buffer,
		Active:          true,
	}
}

func booking(id, staffID string, date string, start, end int, status string) models.Booking {
	return models.Booking{
		ID:        id,
		CompanyID: "c1",
		StaffID:   staffID,
		ServiceID: "svc",
		Date:      date,
		Start:     start,
		End:       end,
		Status:    status,
	}
}

func snapshotOn(date time.Time, working *models.WorkingInterval, roster []models.Staff, bookings []models.Booking) DaySnapshot {
	return DaySnapshot{Date: date, Working: working, Staff: roster, Bookings: bookings}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(models.DateLayout, s, time.UTC)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func minutesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func fullDaySlots(start, end, duration int) []int {
	var out []int
	for s := start; s+duration <= end; s += SlotStepMinutes {
		out = append(out, s)
	}
	return out
}
