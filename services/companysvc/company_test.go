package companysvc

import (
	"errors"
	"testing"

	companyRepo "salonbook/database/repository/company"
	"salonbook/models"
)

// fakeRepo overrides only what the validations touch; the embedded nil
// interface panics if an unexpected method is hit.
type fakeRepo struct {
	companyRepo.CompanyRepository
	hours     []models.WorkingInterval
	companies []models.Company
	staff     []models.Staff
	services  []models.Service
}

func (f *fakeRepo) CreateCompany(c *models.Company) error {
	f.companies = append(f.companies, *c)
	return nil
}

func (f *fakeRepo) GetWorkingHours(companyID string) ([]models.WorkingInterval, error) {
	return f.hours, nil
}

func (f *fakeRepo) ReplaceWorkingHours(companyID string, intervals []models.WorkingInterval) error {
	f.hours = intervals
	return nil
}

func (f *fakeRepo) CreateStaff(st *models.Staff) error {
	f.staff = append(f.staff, *st)
	return nil
}

func (f *fakeRepo) CreateService(svc *models.Service) error {
	f.services = append(f.services, *svc)
	return nil
}

func wantConfigCode(t *testing.T, err error, code string) {
	t.Helper()
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ConfigError with code %s", err, code)
	}
	if ce.Code != code {
		t.Fatalf("error code = %s, want %s", ce.Code, code)
	}
}

func TestRegisterCompany(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultCompanyService{Repo: repo}

	c := &models.Company{Name: "Shear Genius"}
	if err := svc.RegisterCompany(c); err != nil {
		t.Fatalf("RegisterCompany: %v", err)
	}
	if c.ID == "" {
		t.Error("no id assigned")
	}
	if len(repo.companies) != 1 {
		t.Fatalf("persisted %d companies, want 1", len(repo.companies))
	}

	wantConfigCode(t, svc.RegisterCompany(&models.Company{}), CodeInvalidInput)
}

func TestSetWorkingHoursValidation(t *testing.T) {
	svc := &DefaultCompanyService{Repo: &fakeRepo{}}

	tests := []struct {
		name      string
		intervals []models.WorkingInterval
		ok        bool
	}{
		{"valid week", []models.WorkingInterval{
			{DayOfWeek: models.Monday, Start: 540, End: 1020},
			{DayOfWeek: models.Sunday, IsDayOff: true},
		}, true},
		{"day off ignores times", []models.WorkingInterval{
			{DayOfWeek: models.Saturday, IsDayOff: true, Start: 600, End: 600},
		}, true},
		{"invalid day", []models.WorkingInterval{
			{DayOfWeek: 7, Start: 540, End: 1020},
		}, false},
		{"duplicate day", []models.WorkingInterval{
			{DayOfWeek: models.Monday, Start: 540, End: 1020},
			{DayOfWeek: models.Monday, Start: 600, End: 1080},
		}, false},
		{"start after end", []models.WorkingInterval{
			{DayOfWeek: models.Tuesday, Start: 1020, End: 540},
		}, false},
		{"end past midnight", []models.WorkingInterval{
			{DayOfWeek: models.Tuesday, Start: 540, End: 1500},
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SetWorkingHours("c1", tt.intervals)
			if tt.ok && err != nil {
				t.Fatalf("SetWorkingHours: %v", err)
			}
			if !tt.ok {
				wantConfigCode(t, err, CodeInvalidInput)
			}
		})
	}
}

func TestAddStaffValidation(t *testing.T) {
	repo := &fakeRepo{hours: []models.WorkingInterval{
		{CompanyID: "c1", DayOfWeek: models.Monday, Start: 540, End: 1020},
		{CompanyID: "c1", DayOfWeek: models.Saturday, IsDayOff: true},
	}}
	svc := &DefaultCompanyService{Repo: repo}

	base := func() *models.Staff {
		return &models.Staff{
			CompanyID:   "c1",
			Name:        "Ada",
			WorkingDays: []int{models.Monday},
			Active:      true,
		}
	}

	if err := svc.AddStaff(base()); err != nil {
		t.Fatalf("AddStaff: %v", err)
	}
	if repo.staff[0].ID == "" {
		t.Error("no staff id assigned")
	}

	tests := []struct {
		name string
		mut  func(*models.Staff)
	}{
		{"missing name", func(st *models.Staff) { st.Name = "" }},
		{"invalid working day", func(st *models.Staff) { st.WorkingDays = []int{8} }},
		{"inverted break", func(st *models.Staff) { st.Break = &models.BreakInterval{Start: 800, End: 700} }},
		{"break before opening", func(st *models.Staff) { st.Break = &models.BreakInterval{Start: 480, End: 540} }},
		{"break past closing", func(st *models.Staff) { st.Break = &models.BreakInterval{Start: 1000, End: 1080} }},
		{"malformed leave start", func(st *models.Staff) {
			st.OutOfOffice = &models.DateRange{Start: "June 2", End: "2025-06-04"}
		}},
		{"inverted leave range", func(st *models.Staff) {
			st.OutOfOffice = &models.DateRange{Start: "2025-06-04", End: "2025-06-02"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := base()
			tt.mut(st)
			wantConfigCode(t, svc.AddStaff(st), CodeInvalidInput)
		})
	}

	// A break inside working hours on a day off is not checked against
	// that day.
	st := base()
	st.WorkingDays = []int{models.Saturday}
	st.Break = &models.BreakInterval{Start: 100, End: 200}
	if err := svc.AddStaff(st); err != nil {
		t.Fatalf("AddStaff with day-off break: %v", err)
	}
}

func TestAddServiceValidation(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultCompanyService{Repo: repo}

	base := func() *models.Service {
		return &models.Service{
			CompanyID:       "c1",
			Name:            "Haircut",
			DurationMinutes: 30,
			Price:           25,
			Active:          true,
		}
	}

	if err := svc.AddService(base()); err != nil {
		t.Fatalf("AddService: %v", err)
	}
	if repo.services[0].ID == "" {
		t.Error("no service id assigned")
	}

	tooMany := make([]string, models.MaxServiceDates+1)
	for i := range tooMany {
		tooMany[i] = "2025-06-02"
	}

	tests := []struct {
		name string
		mut  func(*models.Service)
	}{
		{"missing name", func(s *models.Service) { s.Name = "" }},
		{"zero duration", func(s *models.Service) { s.DurationMinutes = 0 }},
		{"negative buffer", func(s *models.Service) { s.BufferMinutes = -5 }},
		{"negative price", func(s *models.Service) { s.Price = -1 }},
		{"too many dates", func(s *models.Service) { s.AvailableDates = tooMany }},
		{"malformed date", func(s *models.Service) { s.AvailableDates = []string{"02-06-2025"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mut(s)
			wantConfigCode(t, svc.AddService(s), CodeInvalidInput)
		})
	}
}
