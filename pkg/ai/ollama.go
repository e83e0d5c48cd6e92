package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OllamaEvaluator implements Evaluator using an Ollama server
type OllamaEvaluator struct {
	client     *resty.Client
	getBaseURL func() string // Dynamic getter for BaseURL
	getModel   func() string // Dynamic getter for Model
}

// NewOllamaEvaluator creates an evaluator with fixed settings
func NewOllamaEvaluator(baseURL, model string) *OllamaEvaluator {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return NewOllamaEvaluatorWithGetters(
		func() string { return baseURL },
		func() string { return model },
	)
}

// NewOllamaEvaluatorWithGetters reads the server and model on every call,
// so runtime settings changes apply to the next request
func NewOllamaEvaluatorWithGetters(getBaseURL, getModel func() string) *OllamaEvaluator {
	return &OllamaEvaluator{
		client:     resty.New(),
		getBaseURL: getBaseURL,
		getModel:   getModel,
	}
}

func (o *OllamaEvaluator) Name() string { return string(ProviderOllama) }

// Evaluate implements Evaluator
func (o *OllamaEvaluator) Evaluate(ctx context.Context, summary []byte) (*Evaluation, error) {
	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":  o.getModel(),
			"prompt": evaluationPrompt(summary),
			"stream": false,
			"format": "json",
			"options": map[string]any{
				"temperature": 0.4,
			},
		}).
		Post(strings.TrimRight(o.getBaseURL(), "/") + "/api/generate")
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ollama API error (%d): %s", resp.StatusCode(), resp.String())
	}

	text := gjson.Get(resp.String(), "response").String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("ollama returned an empty evaluation")
	}
	e, err := ParseEvaluation(text)
	if err != nil {
		return nil, err
	}
	e.Provider = o.Name()
	return e, nil
}

// ListModels calls /api/tags on baseURL and returns the installed model names
func ListModels(ctx context.Context, client *resty.Client, baseURL string) ([]string, error) {
	if client == nil {
		client = resty.New()
	}
	resp, err := client.R().SetContext(ctx).Get(strings.TrimRight(baseURL, "/") + "/api/tags")
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ollama API error (%d)", resp.StatusCode())
	}
	names := []string{}
	for _, n := range gjson.Get(resp.String(), "models.#.name").Array() {
		names = append(names, n.String())
	}
	return names, nil
}
