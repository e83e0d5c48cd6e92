package delivery

import (
	"net/http"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/journal/usecase"

	"github.com/gin-gonic/gin"
)

// JournalHandler handles study journal HTTP requests
type JournalHandler struct {
	journalUsecase usecase.JournalUsecase
}

func NewJournalHandler(journalUsecase usecase.JournalUsecase) *JournalHandler {
	return &JournalHandler{journalUsecase: journalUsecase}
}

// GET /api/journal
func (h *JournalHandler) GetEntries(c *gin.Context) {
	entries, err := h.journalUsecase.List(c.Request.Context(), c.GetString("userID"), c.Query("refresh") != "")
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// POST /api/journal
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	var req struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	entry, err := h.journalUsecase.Create(c.Request.Context(), c.GetString("userID"), req.Title, req.Content)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entry})
}

// DELETE /api/journal/:id
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	if err := h.journalUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
