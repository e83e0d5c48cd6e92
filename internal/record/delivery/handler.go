package delivery

import (
	"net/http"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/record/domain"
	"lifeops-backend/internal/record/usecase"

	"github.com/gin-gonic/gin"
)

// RecordHandler serves the generic workbook tabs
type RecordHandler struct {
	recordUsecase usecase.RecordUsecase
}

func NewRecordHandler(recordUsecase usecase.RecordUsecase) *RecordHandler {
	return &RecordHandler{recordUsecase: recordUsecase}
}

// GET /api/records/:collection?q=&refresh=1
func (h *RecordHandler) GetRecords(c *gin.Context) {
	records, err := h.recordUsecase.List(c.Request.Context(), c.GetString("userID"), c.Param("collection"), c.Query("refresh") != "")
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": domain.Search(records, c.Query("q"))})
}

// POST /api/records/:collection
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var req domain.Record
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	rec, err := h.recordUsecase.Create(c.Request.Context(), c.GetString("userID"), c.Param("collection"), req)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": rec})
}

// PUT /api/records/:collection/:id
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	var req domain.Record
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	rec, err := h.recordUsecase.Update(c.Request.Context(), c.GetString("userID"), c.Param("collection"), c.Param("id"), req)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rec})
}

// DELETE /api/records/:collection/:id
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	if err := h.recordUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("collection"), c.Param("id")); err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
