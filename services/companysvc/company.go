package companysvc

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"salonbook/models"
	"salonbook/utils"
)

func (s *DefaultCompanyService) RegisterCompany(c *models.Company) error {
	if c.Name == "" {
		return invalidInput("company name is required")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now()
	if err := s.Repo.CreateCompany(c); err != nil {
		return fmt.Errorf("registering company: %w", err)
	}
	return nil
}

func (s *DefaultCompanyService) GetCompany(companyID string) (*models.Company, error) {
	c, err := s.Repo.GetCompanyByID(companyID)
	if err != nil {
		return nil, notFound("company %s not found", companyID)
	}
	return c, nil
}

func (s *DefaultCompanyService) GetWorkingHours(companyID string) ([]models.WorkingInterval, error) {
	hours, err := s.Repo.GetWorkingHours(companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching working hours: %w", err)
	}
	return hours, nil
}

// SetWorkingHours replaces the company's weekly schedule. At most one
// interval per weekday; start must precede end unless the day is off.
func (s *DefaultCompanyService) SetWorkingHours(companyID string, intervals []models.WorkingInterval) error {
	seen := make(map[int]bool, len(intervals))
	for _, w := range intervals {
		if w.DayOfWeek < models.Monday || w.DayOfWeek > models.Sunday {
			return invalidInput("invalid day of week %d", w.DayOfWeek)
		}
		if seen[w.DayOfWeek] {
			return invalidInput("duplicate working interval for day %d", w.DayOfWeek)
		}
		seen[w.DayOfWeek] = true
		if w.IsDayOff {
			continue
		}
		if w.Start < 0 || w.End > 24*60 || w.Start >= w.End {
			return invalidInput("invalid working interval %s-%s for day %d",
				utils.FormatTimeOfDay(w.Start), utils.FormatTimeOfDay(w.End), w.DayOfWeek)
		}
	}
	if err := s.Repo.ReplaceWorkingHours(companyID, intervals); err != nil {
		return fmt.Errorf("replacing working hours: %w", err)
	}
	return nil
}

func (s *DefaultCompanyService) ListStaff(companyID string) ([]models.Staff, error) {
	staff, err := s.Repo.ListStaff(companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching staff: %w", err)
	}
	return staff, nil
}

func (s *DefaultCompanyService) AddStaff(st *models.Staff) error {
	if err := s.validateStaff(st); err != nil {
		return err
	}
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	if err := s.Repo.CreateStaff(st); err != nil {
		return fmt.Errorf("adding staff: %w", err)
	}
	return nil
}

func (s *DefaultCompanyService) UpdateStaff(st *models.Staff) error {
	if st.ID == "" {
		return invalidInput("staff id is required")
	}
	if err := s.validateStaff(st); err != nil {
		return err
	}
	if err := s.Repo.UpdateStaff(st); err != nil {
		return notFound("staff %s not found", st.ID)
	}
	return nil
}

func (s *DefaultCompanyService) RemoveStaff(companyID, staffID string) error {
	if err := s.Repo.DeleteStaff(companyID, staffID); err != nil {
		return notFound("staff %s not found", staffID)
	}
	return nil
}

// validateStaff enforces the roster invariants the availability engine
// assumes: valid working days, a break that lies inside the working
// hours of every day it applies to, and a well-formed out-of-office
// range.
func (s *DefaultCompanyService) validateStaff(st *models.Staff) error {
	if st.Name == "" {
		return invalidInput("staff name is required")
	}
	for _, d := range st.WorkingDays {
		if d < models.Monday || d > models.Sunday {
			return invalidInput("invalid working day %d", d)
		}
	}
	if st.Break != nil {
		if st.Break.Start >= st.Break.End {
			return invalidInput("break interval start must precede end")
		}
		hours, err := s.Repo.GetWorkingHours(st.CompanyID)
		if err != nil {
			return fmt.Errorf("fetching working hours: %w", err)
		}
		byDay := make(map[int]models.WorkingInterval, len(hours))
		for _, w := range hours {
			byDay[w.DayOfWeek] = w
		}
		for _, d := range st.WorkingDays {
			w, ok := byDay[d]
			if !ok || w.IsDayOff {
				continue
			}
			if st.Break.Start < w.Start || st.Break.End > w.End {
				return invalidInput("break interval must lie within working hours for day %d", d)
			}
		}
	}
	if st.OutOfOffice != nil {
		if _, err := utils.ParseDate(st.OutOfOffice.Start); err != nil {
			return invalidInput("invalid out-of-office start date %q", st.OutOfOffice.Start)
		}
		if _, err := utils.ParseDate(st.OutOfOffice.End); err != nil {
			return invalidInput("invalid out-of-office end date %q", st.OutOfOffice.End)
		}
		if st.OutOfOffice.Start > st.OutOfOffice.End {
			return invalidInput("out-of-office start date is after end date")
		}
	}
	return nil
}

func (s *DefaultCompanyService) ListServices(companyID string) ([]models.Service, error) {
	services, err := s.Repo.ListServices(companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching services: %w", err)
	}
	return services, nil
}

func (s *DefaultCompanyService) AddService(svc *models.Service) error {
	if err := validateService(svc); err != nil {
		return err
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if err := s.Repo.CreateService(svc); err != nil {
		return fmt.Errorf("adding service: %w", err)
	}
	return nil
}

func (s *DefaultCompanyService) UpdateService(svc *models.Service) error {
	if svc.ID == "" {
		return invalidInput("service id is required")
	}
	if err := validateService(svc); err != nil {
		return err
	}
	if err := s.Repo.UpdateService(svc); err != nil {
		return notFound("service %s not found", svc.ID)
	}
	return nil
}

func (s *DefaultCompanyService) RemoveService(companyID, serviceID string) error {
	if err := s.Repo.DeleteService(companyID, serviceID); err != nil {
		return notFound("service %s not found", serviceID)
	}
	return nil
}

func validateService(svc *models.Service) error {
	if svc.Name == "" {
		return invalidInput("service name is required")
	}
	if svc.DurationMinutes <= 0 {
		return invalidInput("service duration must be positive")
	}
	if svc.BufferMinutes < 0 {
		return invalidInput("service buffer must not be negative")
	}
	if svc.Price < 0 {
		return invalidInput("service price must not be negative")
	}
	if len(svc.AvailableDates) > models.MaxServiceDates {
		return invalidInput("at most %d explicit dates are allowed", models.MaxServiceDates)
	}
	for _, d := range svc.AvailableDates {
		if _, err := utils.ParseDate(d); err != nil {
			return invalidInput("invalid service date %q", d)
		}
	}
	return nil
}
