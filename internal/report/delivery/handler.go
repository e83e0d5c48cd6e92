package delivery

import (
	"net/http"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/report/domain"
	"lifeops-backend/internal/report/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// GetDashboard returns the aggregated summary
// GET /api/dashboard?refresh=1
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	summary, err := h.reportUsecase.Dashboard(c.Request.Context(), c.GetString("userID"), c.Query("refresh") != "")
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

// Evaluate scores the posted summary, or the current one when the body has none
// POST /api/dashboard/evaluate
func (h *ReportHandler) Evaluate(c *gin.Context) {
	var req struct {
		Summary *domain.DashboardSummary `json:"summary"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
	}

	evaluation, err := h.reportUsecase.Evaluate(c.Request.Context(), c.GetString("userID"), req.Summary)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": evaluation})
}
