package companyRepo

import "salonbook/models"

// CompanyRepository provides access to companies and the configuration
// the availability engine reads: working hours, staff roster, services.
type CompanyRepository interface {
	CreateCompany(c *models.Company) error
	GetCompanyByID(id string) (*models.Company, error)
	UpdateCompany(c *models.Company) error

	// GetWorkingInterval returns (nil, nil) when no interval is
	// configured for the weekday; absence is not an error.
	GetWorkingInterval(companyID string, dayOfWeek int) (*models.WorkingInterval, error)
	GetWorkingHours(companyID string) ([]models.WorkingInterval, error)
	ReplaceWorkingHours(companyID string, intervals []models.WorkingInterval) error

	ListStaff(companyID string) ([]models.Staff, error)
	GetStaffByID(companyID, staffID string) (*models.Staff, error)
	CreateStaff(st *models.Staff) error
	UpdateStaff(st *models.Staff) error
	DeleteStaff(companyID, staffID string) error

	ListServices(companyID string) ([]models.Service, error)
	GetServiceByID(companyID, serviceID string) (*models.Service, error)
	CreateService(svc *models.Service) error
	UpdateService(svc *models.Service) error
	DeleteService(companyID, serviceID string) error
}
