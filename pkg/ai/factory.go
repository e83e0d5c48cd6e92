package ai

import (
	"context"
	"fmt"
	"log"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config
	GeminiAPIKey string
	GeminiModel  string

	// Ollama config. The getters, when set, win over the fixed values so the
	// settings endpoint can repoint a running server.
	OllamaBaseURL   string // e.g., "http://localhost:11434"
	OllamaModel     string // e.g., "llama3", "mistral"
	OllamaBaseURLFn func() string
	OllamaModelFn   func() string
}

// NewEvaluator creates an Evaluator based on the config.
// Switch AI provider by changing cfg.Provider.
func NewEvaluator(ctx context.Context, cfg Config) (Evaluator, error) {
	switch cfg.Provider {
	case ProviderGemini:
		gemini, err := NewGeminiEvaluator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return gemini, nil

	case ProviderOllama:
		return newOllama(cfg), nil

	default:
		// Auto: Gemini with Ollama behind it when a key is configured
		ollama := newOllama(cfg)
		if cfg.GeminiAPIKey == "" {
			return NewFallbackEvaluator(nil, ollama), nil
		}
		gemini, err := NewGeminiEvaluator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("[AI] Gemini unavailable, using Ollama only: %v", err)
			return NewFallbackEvaluator(nil, ollama), nil
		}
		return NewFallbackEvaluator(gemini, ollama), nil
	}
}

func newOllama(cfg Config) *OllamaEvaluator {
	if cfg.OllamaBaseURLFn != nil && cfg.OllamaModelFn != nil {
		return NewOllamaEvaluatorWithGetters(cfg.OllamaBaseURLFn, cfg.OllamaModelFn)
	}
	return NewOllamaEvaluator(cfg.OllamaBaseURL, cfg.OllamaModel)
}

// ParseProvider maps a config string to a ProviderType, defaulting to auto
func ParseProvider(s string) (ProviderType, error) {
	switch ProviderType(s) {
	case ProviderGemini, ProviderOllama, ProviderAuto:
		return ProviderType(s), nil
	case "":
		return ProviderAuto, nil
	}
	return "", fmt.Errorf("unknown AI provider %q", s)
}
