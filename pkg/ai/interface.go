package ai

import "context"

// CategoryScore is the evaluation of one area of the dashboard
type CategoryScore struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Analysis   string `json:"analysis"`
	Suggestion string `json:"suggestion"`
}

// Evaluation is the scored assessment returned for a dashboard summary
type Evaluation struct {
	OverallScore int             `json:"overallScore"`
	Label        string          `json:"label"`
	Categories   []CategoryScore `json:"categories"`
	Strengths    []string        `json:"strengths"`
	Improvements []string        `json:"improvements"`
	ActionItems  []string        `json:"actionItems"`
	Provider     string          `json:"provider,omitempty"`
}

// Evaluator is the interface for AI evaluation of a dashboard summary.
// Implement this interface to add new AI providers.
type Evaluator interface {
	// Evaluate scores summary, the JSON encoding of the dashboard summary
	Evaluate(ctx context.Context, summary []byte) (*Evaluation, error)
	Name() string
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
