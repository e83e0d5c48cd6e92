package delivery

import (
	"net/http"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/company/domain"
	"lifeops-backend/internal/company/usecase"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles applied company HTTP requests
type CompanyHandler struct {
	companyUsecase usecase.CompanyUsecase
}

func NewCompanyHandler(companyUsecase usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{companyUsecase: companyUsecase}
}

// GetCompanies lists applications
// GET /api/companies?status=applied&q=kisa&refresh=1
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.companyUsecase.List(c.Request.Context(), userID, domain.Status(c.Query("status")), c.Query("refresh") != "")
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": domain.Search(items, c.Query("q")), "labels": domain.StatusLabels})
}

// GetStats counts applications by stage
// GET /api/companies/stats
func (h *CompanyHandler) GetStats(c *gin.Context) {
	stats, err := h.companyUsecase.Stats(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// CreateCompany records an application
// POST /api/companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req domain.AppliedCompany
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	company, err := h.companyUsecase.Create(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": company})
}

// UpdateCompany edits an application
// PUT /api/companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req domain.AppliedCompany
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	company, err := h.companyUsecase.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": company})
}

// ChangeStatus moves an application along the status graph
// PATCH /api/companies/:id/status
func (h *CompanyHandler) ChangeStatus(c *gin.Context) {
	var req struct {
		Status domain.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	company, err := h.companyUsecase.ChangeStatus(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Status)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": company, "next": company.Status.Next()})
}

// DeleteCompany removes an application
// DELETE /api/companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.companyUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
