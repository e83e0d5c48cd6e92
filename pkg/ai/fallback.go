package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"

	"google.golang.org/genai"
)

// FallbackEvaluator routes evaluation across providers: Gemini first for
// quality, Ollama when Gemini fails, and one more Gemini attempt when Ollama
// cannot be reached.
type FallbackEvaluator struct {
	gemini Evaluator
	ollama Evaluator
}

// NewFallbackEvaluator creates a fallback evaluator; either provider may be nil
func NewFallbackEvaluator(gemini, ollama Evaluator) *FallbackEvaluator {
	return &FallbackEvaluator{
		gemini: gemini,
		ollama: ollama,
	}
}

func (f *FallbackEvaluator) Name() string { return string(ProviderAuto) }

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return containsAny(err.Error(),
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"EOF",
	)
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return true
	}

	return containsAny(err.Error(),
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
		"RESOURCE_EXHAUSTED",
	)
}

func containsAny(s string, indicators ...string) bool {
	s = strings.ToLower(s)
	for _, indicator := range indicators {
		if strings.Contains(s, strings.ToLower(indicator)) {
			return true
		}
	}
	return false
}

// Evaluate implements Evaluator
func (f *FallbackEvaluator) Evaluate(ctx context.Context, summary []byte) (*Evaluation, error) {
	if f.gemini != nil {
		log.Println("[AI] Trying Gemini for evaluation...")
		result, err := f.gemini.Evaluate(ctx, summary)
		if err == nil {
			log.Println("[AI] Gemini evaluation successful")
			return result, nil
		}

		if isQuotaError(err) {
			log.Printf("[AI] Gemini quota exhausted: %v, falling back to Ollama", err)
		} else {
			log.Printf("[AI] Gemini error: %v, falling back to Ollama", err)
		}
		if f.ollama == nil {
			return nil, fmt.Errorf("gemini evaluation failed: %w", err)
		}
	}

	if f.ollama != nil {
		log.Println("[AI] Using Ollama for evaluation...")
		result, err := f.ollama.Evaluate(ctx, summary)
		if err == nil {
			log.Println("[AI] Ollama evaluation successful")
			return result, nil
		}

		// Gemini may have failed on a transient error
		if isConnectionError(err) && f.gemini != nil && ctx.Err() == nil {
			log.Printf("[AI] Ollama connection failed: %v, retrying Gemini", err)
			return f.gemini.Evaluate(ctx, summary)
		}

		return nil, fmt.Errorf("ollama evaluation failed: %w", err)
	}

	return nil, fmt.Errorf("no AI provider available for evaluation")
}
