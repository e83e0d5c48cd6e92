package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiEvaluator implements Evaluator using the Gemini API
type GeminiEvaluator struct {
	client *genai.Client
	model  string
}

// NewGeminiEvaluator creates a Gemini-backed evaluator
func NewGeminiEvaluator(ctx context.Context, apiKey, model string) (*GeminiEvaluator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiEvaluator{client: client, model: model}, nil
}

func (g *GeminiEvaluator) Name() string { return string(ProviderGemini) }

// Evaluate implements Evaluator
func (g *GeminiEvaluator) Evaluate(ctx context.Context, summary []byte) (*Evaluation, error) {
	result, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(evaluationPrompt(summary)),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.4)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, fmt.Errorf("gemini returned an empty evaluation")
	}
	e, err := ParseEvaluation(text)
	if err != nil {
		return nil, err
	}
	e.Provider = g.Name()
	return e, nil
}
