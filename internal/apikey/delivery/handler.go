package delivery

import (
	"net/http"

	"lifeops-backend/internal/apikey/domain"
	"lifeops-backend/internal/apikey/usecase"
	"lifeops-backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// ApiKeyHandler handles vault HTTP requests
type ApiKeyHandler struct {
	apiKeyUsecase usecase.ApiKeyUsecase
}

func NewApiKeyHandler(apiKeyUsecase usecase.ApiKeyUsecase) *ApiKeyHandler {
	return &ApiKeyHandler{apiKeyUsecase: apiKeyUsecase}
}

// CreateApiKeyRequest represents the request body for storing a key
type CreateApiKeyRequest struct {
	ServiceName string `json:"serviceName" binding:"required"`
	KeyName     string `json:"keyName"`
	APIKey      string `json:"apiKey" binding:"required"`
	Description string `json:"description"`
}

// GetApiKeys lists the vault with masked secrets
// GET /api/apikeys
func (h *ApiKeyHandler) GetApiKeys(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("userID")

	keys, err := h.apiKeyUsecase.List(ctx, userID, c.Query("refresh") != "")
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	hasPin, err := h.apiKeyUsecase.HasPin(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": keys, "pinProtected": hasPin})
}

// CreateApiKey stores a key
// POST /api/apikeys
func (h *ApiKeyHandler) CreateApiKey(c *gin.Context) {
	var req CreateApiKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	key, err := h.apiKeyUsecase.Create(c.Request.Context(), c.GetString("userID"), domain.ApiKey{
		ServiceName: req.ServiceName,
		KeyName:     req.KeyName,
		APIKey:      req.APIKey,
		Description: req.Description,
	})
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": key})
}

// UpdateApiKey merges the given fields into a key
// PUT /api/apikeys/:id
func (h *ApiKeyHandler) UpdateApiKey(c *gin.Context) {
	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	key, err := h.apiKeyUsecase.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), patch)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": key})
}

// DeleteApiKey removes a key
// DELETE /api/apikeys/:id
func (h *ApiKeyHandler) DeleteApiKey(c *gin.Context) {
	if err := h.apiKeyUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RevealApiKey returns a secret in clear
// POST /api/apikeys/:id/reveal
func (h *ApiKeyHandler) RevealApiKey(c *gin.Context) {
	var req struct {
		Pin string `json:"pin"`
	}
	// the body is optional when no PIN is set
	_ = c.ShouldBindJSON(&req)

	secret, err := h.apiKeyUsecase.Reveal(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Pin)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "apiKey": secret})
}

// SetPin sets, changes or clears the vault PIN
// PUT /api/apikeys/pin
func (h *ApiKeyHandler) SetPin(c *gin.Context) {
	var req struct {
		CurrentPin string `json:"currentPin"`
		Pin        string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.apiKeyUsecase.SetPin(c.Request.Context(), c.GetString("userID"), req.CurrentPin, req.Pin); err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "pinProtected": req.Pin != ""})
}
