package delivery

import (
	"net/http"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/weakpoint/domain"
	"lifeops-backend/internal/weakpoint/usecase"

	"github.com/gin-gonic/gin"
)

type WeakPointHandler struct {
	weakPointUsecase usecase.WeakPointUsecase
}

func NewWeakPointHandler(weakPointUsecase usecase.WeakPointUsecase) *WeakPointHandler {
	return &WeakPointHandler{weakPointUsecase: weakPointUsecase}
}

// GET /api/weakpoints?category=language&refresh=1
func (h *WeakPointHandler) GetWeakPoints(c *gin.Context) {
	items, err := h.weakPointUsecase.List(c.Request.Context(), c.GetString("userID"), domain.Category(c.Query("category")), c.Query("refresh") != "")
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "stats": domain.Summarize(items)})
}

// POST /api/weakpoints
func (h *WeakPointHandler) CreateWeakPoint(c *gin.Context) {
	var req domain.WeakPoint
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	w, err := h.weakPointUsecase.Create(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": w})
}

// PUT /api/weakpoints/:id
func (h *WeakPointHandler) UpdateWeakPoint(c *gin.Context) {
	var req domain.WeakPoint
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	w, err := h.weakPointUsecase.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": w})
}

// PATCH /api/weakpoints/:id/status
func (h *WeakPointHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status domain.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	w, err := h.weakPointUsecase.SetStatus(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Status)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": w})
}

// DELETE /api/weakpoints/:id
func (h *WeakPointHandler) DeleteWeakPoint(c *gin.Context) {
	if err := h.weakPointUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
