package companysvc

import (
	"fmt"

	companyRepo "salonbook/database/repository/company"
	"salonbook/models"
)

// Error codes surfaced to the HTTP layer.
const (
	CodeInvalidInput = "invalidInput"
	CodeNotFound     = "notFound"
)

// ConfigError carries a machine-readable code for handler mapping.
type ConfigError struct {
	Code    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func invalidInput(format string, args ...interface{}) error {
	return &ConfigError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...interface{}) error {
	return &ConfigError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// CompanyService owns the configuration the availability engine reads:
// company profile, weekly working hours, staff roster, and the service
// catalogue. Writes enforce the invariants the engine relies on.
type CompanyService interface {
	RegisterCompany(c *models.Company) error
	GetCompany(companyID string) (*models.Company, error)

	GetWorkingHours(companyID string) ([]models.WorkingInterval, error)
	SetWorkingHours(companyID string, intervals []models.WorkingInterval) error

	ListStaff(companyID string) ([]models.Staff, error)
	AddStaff(st *models.Staff) error
	UpdateStaff(st *models.Staff) error
	RemoveStaff(companyID, staffID string) error

	ListServices(companyID string) ([]models.Service, error)
	AddService(svc *models.Service) error
	UpdateService(svc *models.Service) error
	RemoveService(companyID, serviceID string) error
}

// DefaultCompanyService implements CompanyService.
type DefaultCompanyService struct {
	Repo companyRepo.CompanyRepository
}
