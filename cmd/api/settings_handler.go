package api

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"lifeops-backend/internal/apperr"
	"lifeops-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

const ollamaProbeTimeout = 5 * time.Second

// RuntimeSettings is the Ollama endpoint the evaluator reads on every call.
// Changing it repoints evaluation for every user without a restart.
type RuntimeSettings struct {
	mu      sync.RWMutex
	baseURL string
	model   string
}

func NewRuntimeSettings(baseURL, model string) *RuntimeSettings {
	return &RuntimeSettings{baseURL: baseURL, model: model}
}

func (s *RuntimeSettings) OllamaBaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURL
}

func (s *RuntimeSettings) OllamaModel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

// Set replaces the base URL; an empty model keeps the current one
func (s *RuntimeSettings) Set(baseURL, model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = baseURL
	if model != "" {
		s.model = model
	}
}

func (s *RuntimeSettings) view() gin.H {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gin.H{"baseUrl": s.baseURL, "model": s.model}
}

type ollamaSettingsRequest struct {
	BaseURL string `json:"baseUrl" binding:"required"`
	Model   string `json:"model"`
}

// SettingsHandler serves the runtime AI settings
type SettingsHandler struct {
	settings *RuntimeSettings
}

func NewSettingsHandler(settings *RuntimeSettings) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetOllama returns the endpoint evaluation currently uses
// GET /api/settings/ollama
func (h *SettingsHandler) GetOllama(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.settings.view()})
}

// UpdateOllama repoints the evaluator
// PUT /api/settings/ollama
func (h *SettingsHandler) UpdateOllama(c *gin.Context) {
	var req ollamaSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	baseURL, err := normalizeOllamaURL(req.BaseURL)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
		return
	}

	h.settings.Set(baseURL, strings.TrimSpace(req.Model))
	log.Printf("[Settings] %s set Ollama endpoint to %s (model %s)", c.GetString("email"), baseURL, h.settings.OllamaModel())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.settings.view()})
}

// TestOllama lists the models of the given endpoint, or of the current one
// POST /api/settings/ollama/test
func (h *SettingsHandler) TestOllama(c *gin.Context) {
	var req struct {
		BaseURL string `json:"baseUrl"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
	}
	baseURL := h.settings.OllamaBaseURL()
	if req.BaseURL != "" {
		var err error
		if baseURL, err = normalizeOllamaURL(req.BaseURL); err != nil {
			c.JSON(apperr.Status(err), gin.H{"success": false, "error": apperr.Message(err)})
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ollamaProbeTimeout)
	defer cancel()
	models, err := ai.ListModels(ctx, nil, baseURL)
	if err != nil {
		log.Printf("[Settings] Ollama at %s unreachable: %v", baseURL, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Ollama 서버에 연결할 수 없습니다", "data": gin.H{"connected": false, "baseUrl": baseURL}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"connected": true, "baseUrl": baseURL, "models": models}})
}

// normalizeOllamaURL accepts absolute http(s) URLs and drops a trailing slash
func normalizeOllamaURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperr.Invalid("Ollama 주소는 http(s) URL이어야 합니다: %q", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}
