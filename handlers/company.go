package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/models"
	"salonbook/services/companysvc"
)

// CompanyHandler exposes the company configuration endpoints: profile,
// weekly working hours, staff roster, and the service catalogue.
type CompanyHandler struct {
	Company companysvc.CompanyService
}

func NewCompanyHandler(company companysvc.CompanyService) *CompanyHandler {
	return &CompanyHandler{Company: company}
}

func (h *CompanyHandler) RegisterCompanyHandler(c *gin.Context) {
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Company.RegisterCompany(&company); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

func (h *CompanyHandler) GetCompanyHandler(c *gin.Context) {
	company, err := h.Company.GetCompany(c.Param("companyID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (h *CompanyHandler) GetWorkingHoursHandler(c *gin.Context) {
	hours, err := h.Company.GetWorkingHours(c.Param("companyID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workingHours": hours})
}

// SetWorkingHoursHandler replaces the whole weekly schedule in one call.
func (h *CompanyHandler) SetWorkingHoursHandler(c *gin.Context) {
	companyID := c.Param("companyID")
	var input struct {
		WorkingHours []models.WorkingInterval `json:"workingHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	for i := range input.WorkingHours {
		input.WorkingHours[i].CompanyID = companyID
	}
	if err := h.Company.SetWorkingHours(companyID, input.WorkingHours); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workingHours": input.WorkingHours})
}

func (h *CompanyHandler) ListStaffHandler(c *gin.Context) {
	staff, err := h.Company.ListStaff(c.Param("companyID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

func (h *CompanyHandler) AddStaffHandler(c *gin.Context) {
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	staff.CompanyID = c.Param("companyID")
	if err := h.Company.AddStaff(&staff); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"staff": staff})
}

func (h *CompanyHandler) UpdateStaffHandler(c *gin.Context) {
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	staff.CompanyID = c.Param("companyID")
	staff.ID = c.Param("staffID")
	if err := h.Company.UpdateStaff(&staff); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

func (h *CompanyHandler) RemoveStaffHandler(c *gin.Context) {
	if err := h.Company.RemoveStaff(c.Param("companyID"), c.Param("staffID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *CompanyHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Company.ListServices(c.Param("companyID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CompanyHandler) AddServiceHandler(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	service.CompanyID = c.Param("companyID")
	if err := h.Company.AddService(&service); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": service})
}

func (h *CompanyHandler) UpdateServiceHandler(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	service.CompanyID = c.Param("companyID")
	service.ID = c.Param("serviceID")
	if err := h.Company.UpdateService(&service); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service})
}

func (h *CompanyHandler) RemoveServiceHandler(c *gin.Context) {
	if err := h.Company.RemoveService(c.Param("companyID"), c.Param("serviceID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
