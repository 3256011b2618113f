package bookingsvc

import (
	"testing"

	"salonbook/models"
)

func containsStr(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func TestGetAvailableTimes(t *testing.T) {
	svc, _, _ := newTestService(t)

	times, err := svc.GetAvailableTimes("c1", "svc-cut", "", "2025-06-02")
	if err != nil {
		t.Fatalf("GetAvailableTimes: %v", err)
	}
	if len(times) != 16 {
		t.Fatalf("got %d times, want 16 half-hour slots", len(times))
	}
	if times[0] != "09:00" || times[len(times)-1] != "16:30" {
		t.Errorf("boundary slots = %s..%s, want 09:00..16:30", times[0], times[len(times)-1])
	}

	// Booking staff-a at 10:00 removes that slot for staff-a only; the
	// any-staff view keeps it because staff-b is still free.
	if _, err := svc.CreateBooking(createReq("staff-a", "10:00")); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	forA, err := svc.GetAvailableTimes("c1", "svc-cut", "staff-a", "2025-06-02")
	if err != nil {
		t.Fatalf("GetAvailableTimes staff-a: %v", err)
	}
	if containsStr(forA, "10:00") {
		t.Error("10:00 still offered for booked staff")
	}
	anyStaff, err := svc.GetAvailableTimes("c1", "svc-cut", "", "2025-06-02")
	if err != nil {
		t.Fatalf("GetAvailableTimes any: %v", err)
	}
	if !containsStr(anyStaff, "10:00") {
		t.Error("10:00 dropped from any-staff view despite a free colleague")
	}
}

func TestGetAvailableTimesEdgeCases(t *testing.T) {
	svc, companies, _ := newTestService(t)

	// Closed day yields an empty list, not an error.
	times, err := svc.GetAvailableTimes("c1", "svc-cut", "", "2025-06-07")
	if err != nil {
		t.Fatalf("GetAvailableTimes closed day: %v", err)
	}
	if len(times) != 0 {
		t.Errorf("closed day offered %d slots", len(times))
	}

	// Staff member who cannot perform the service: empty list.
	times, err = svc.GetAvailableTimes("c1", "svc-color", "staff-b", "2025-06-02")
	if err != nil {
		t.Fatalf("GetAvailableTimes ineligible staff: %v", err)
	}
	if len(times) != 0 {
		t.Errorf("ineligible staff offered %d slots", len(times))
	}

	// Inactive service: empty list.
	services := companies.services["c1"]
	services[0].Active = false
	if times, err = svc.GetAvailableTimes("c1", "svc-cut", "", "2025-06-02"); err != nil {
		t.Fatalf("GetAvailableTimes inactive service: %v", err)
	}
	if len(times) != 0 {
		t.Errorf("inactive service offered %d slots", len(times))
	}
	services[0].Active = true

	_, err = svc.GetAvailableTimes("c1", "svc-cut", "", "june 2nd")
	wantCode(t, err, CodeInvalidInput)
	_, err = svc.GetAvailableTimes("c1", "svc-nope", "", "2025-06-02")
	wantCode(t, err, CodeNotFound)
}

func TestGetAvailableDatesWindow(t *testing.T) {
	svc, _, _ := newTestService(t)

	// Seven-day window from Sunday 2025-06-01; the salon is open Monday
	// through Friday.
	dates, err := svc.GetAvailableDates("c1", "svc-cut", "")
	if err != nil {
		t.Fatalf("GetAvailableDates: %v", err)
	}
	want := []string{"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06"}
	if len(dates) != len(want) {
		t.Fatalf("dates = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("dates = %v, want %v", dates, want)
		}
	}
}

func TestGetAvailableDatesPerStaff(t *testing.T) {
	svc, companies, _ := newTestService(t)

	// staff-b only works Mondays now.
	roster := companies.staff["c1"]
	for i := range roster {
		if roster[i].ID == "staff-b" {
			roster[i].WorkingDays = []int{models.Monday}
		}
	}

	dates, err := svc.GetAvailableDates("c1", "svc-cut", "staff-b")
	if err != nil {
		t.Fatalf("GetAvailableDates: %v", err)
	}
	if len(dates) != 1 || dates[0] != "2025-06-02" {
		t.Errorf("dates = %v, want just 2025-06-02", dates)
	}
}

func TestGetAvailableDatesRestrictedService(t *testing.T) {
	svc, companies, _ := newTestService(t)

	services := companies.services["c1"]
	services[0].AvailableDates = []string{"2025-06-03"}

	dates, err := svc.GetAvailableDates("c1", "svc-cut", "")
	if err != nil {
		t.Fatalf("GetAvailableDates: %v", err)
	}
	if len(dates) != 1 || dates[0] != "2025-06-03" {
		t.Errorf("dates = %v, want just the allow-listed 2025-06-03", dates)
	}
}

func TestGetAvailableStaff(t *testing.T) {
	svc, companies, _ := newTestService(t)

	staff, err := svc.GetAvailableStaff("c1", "svc-cut")
	if err != nil {
		t.Fatalf("GetAvailableStaff: %v", err)
	}
	if len(staff) != 2 {
		t.Fatalf("got %d staff, want 2", len(staff))
	}

	// Only staff-a can color; inactive staff are filtered too.
	staff, err = svc.GetAvailableStaff("c1", "svc-color")
	if err != nil {
		t.Fatalf("GetAvailableStaff: %v", err)
	}
	if len(staff) != 1 || staff[0].ID != "staff-a" {
		t.Errorf("eligible staff = %v, want just staff-a", staff)
	}

	roster := companies.staff["c1"]
	roster[0].Active = false
	staff, err = svc.GetAvailableStaff("c1", "svc-color")
	if err != nil {
		t.Fatalf("GetAvailableStaff: %v", err)
	}
	if len(staff) != 0 {
		t.Errorf("inactive staff still listed: %v", staff)
	}
}
