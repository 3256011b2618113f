package bookingsvc

import (
	"errors"
	"sort"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/services/availability"
)

var errFakeNotFound = errors.New("not found")

type fakeCompanyRepo struct {
	companies map[string]models.Company
	hours     map[string][]models.WorkingInterval
	staff     map[string][]models.Staff
	services  map[string][]models.Service
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies: map[string]models.Company{},
		hours:     map[string][]models.WorkingInterval{},
		staff:     map[string][]models.Staff{},
		services:  map[string][]models.Service{},
	}
}

func (f *fakeCompanyRepo) CreateCompany(c *models.Company) error {
	f.companies[c.ID] = *c
	return nil
}

func (f *fakeCompanyRepo) GetCompanyByID(id string) (*models.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return &c, nil
}

func (f *fakeCompanyRepo) UpdateCompany(c *models.Company) error {
	f.companies[c.ID] = *c
	return nil
}

func (f *fakeCompanyRepo) GetWorkingInterval(companyID string, dayOfWeek int) (*models.WorkingInterval, error) {
	for _, w := range f.hours[companyID] {
		if w.DayOfWeek == dayOfWeek {
			interval := w
			return &interval, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) GetWorkingHours(companyID string) ([]models.WorkingInterval, error) {
	return f.hours[companyID], nil
}

func (f *fakeCompanyRepo) ReplaceWorkingHours(companyID string, intervals []models.WorkingInterval) error {
	f.hours[companyID] = intervals
	return nil
}

func (f *fakeCompanyRepo) ListStaff(companyID string) ([]models.Staff, error) {
	out := append([]models.Staff(nil), f.staff[companyID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCompanyRepo) GetStaffByID(companyID, staffID string) (*models.Staff, error) {
	for _, st := range f.staff[companyID] {
		if st.ID == staffID {
			s := st
			return &s, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeCompanyRepo) CreateStaff(st *models.Staff) error {
	f.staff[st.CompanyID] = append(f.staff[st.CompanyID], *st)
	return nil
}

func (f *fakeCompanyRepo) UpdateStaff(st *models.Staff) error {
	for i, cur := range f.staff[st.CompanyID] {
		if cur.ID == st.ID {
			f.staff[st.CompanyID][i] = *st
			return nil
		}
	}
	return errFakeNotFound
}

func (f *fakeCompanyRepo) DeleteStaff(companyID, staffID string) error {
	roster := f.staff[companyID]
	for i, cur := range roster {
		if cur.ID == staffID {
			f.staff[companyID] = append(roster[:i], roster[i+1:]...)
			return nil
		}
	}
	return errFakeNotFound
}

func (f *fakeCompanyRepo) ListServices(companyID string) ([]models.Service, error) {
	return f.services[companyID], nil
}

func (f *fakeCompanyRepo) GetServiceByID(companyID, serviceID string) (*models.Service, error) {
	for _, svc := range f.services[companyID] {
		if svc.ID == serviceID {
			s := svc
			return &s, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeCompanyRepo) CreateService(svc *models.Service) error {
	f.services[svc.CompanyID] = append(f.services[svc.CompanyID], *svc)
	return nil
}

func (f *fakeCompanyRepo) UpdateService(svc *models.Service) error {
	for i, cur := range f.services[svc.CompanyID] {
		if cur.ID == svc.ID {
			f.services[svc.CompanyID][i] = *svc
			return nil
		}
	}
	return errFakeNotFound
}

func (f *fakeCompanyRepo) DeleteService(companyID, serviceID string) error {
	services := f.services[companyID]
	for i, cur := range services {
		if cur.ID == serviceID {
			f.services[companyID] = append(services[:i], services[i+1:]...)
			return nil
		}
	}
	return errFakeNotFound
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeBookingRepo) ListForDate(companyID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CompanyID == companyID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListRange(companyID, from, to string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CompanyID == companyID && b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CreateWithConflictCheck(b *models.Booking, conflictStart, conflictEnd int) error {
	for _, e := range f.bookings {
		if e.StaffID != b.StaffID || e.Date != b.Date || !e.Blocks() {
			continue
		}
		if availability.Overlaps(conflictStart, conflictEnd, e.Start, e.End) {
			return bookingRepo.ErrSlotTaken
		}
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(id, status string) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings[i].Status = status
			return nil
		}
	}
	return errFakeNotFound
}

func (f *fakeBookingRepo) ConfirmPreBooked(id string, end, duration int, price float64, confirmedAt time.Time) error {
	for i, b := range f.bookings {
		if b.ID == id && b.Status == models.StatusPreBooked {
			f.bookings[i].Status = models.StatusConfirmed
			f.bookings[i].End = end
			f.bookings[i].DurationMinutes = duration
			f.bookings[i].Price = price
			f.bookings[i].ConfirmedAt = &confirmedAt
			return nil
		}
	}
	return errFakeNotFound
}

func (f *fakeBookingRepo) MarkReminderSent(id string) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings[i].ReminderSent = true
			return nil
		}
	}
	return errFakeNotFound
}

func (f *fakeBookingRepo) CancelStalePreBooked(cutoff time.Time) (int64, error) {
	var n int64
	for i, b := range f.bookings {
		if b.Status == models.StatusPreBooked && b.CreatedAt.Before(cutoff) {
			f.bookings[i].Status = models.StatusCancelled
			n++
		}
	}
	return n, nil
}
