package delivery

import (
	"net/http"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/bucket/domain"
	"lifeops-backend/internal/bucket/usecase"

	"github.com/gin-gonic/gin"
)

// BucketHandler handles bucket list HTTP requests
type BucketHandler struct {
	bucketUsecase usecase.BucketUsecase
}

func NewBucketHandler(bucketUsecase usecase.BucketUsecase) *BucketHandler {
	return &BucketHandler{bucketUsecase: bucketUsecase}
}

// GetItems returns the bucket list
// GET /api/bucket?refresh=1
func (h *BucketHandler) GetItems(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.bucketUsecase.List(c.Request.Context(), userID, c.Query("refresh") != "")
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       items,
		"stats":      domain.Summarize(items),
		"categories": domain.Categories,
	})
}

// CreateItem adds an item
// POST /api/bucket
func (h *BucketHandler) CreateItem(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Title    string          `json:"title" binding:"required"`
		Category domain.Category `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	item, err := h.bucketUsecase.Create(c.Request.Context(), userID, req.Title, req.Category)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// UpdateStatus sets an item's status
// PATCH /api/bucket/:id/status
func (h *BucketHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Status domain.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.bucketUsecase.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status); err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteItem removes an item
// DELETE /api/bucket/:id
func (h *BucketHandler) DeleteItem(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.bucketUsecase.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
