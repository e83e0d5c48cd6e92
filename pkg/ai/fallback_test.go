package ai

import (
	"context"
	"errors"
	"testing"
)

type stubEvaluator struct {
	name  string
	errs  []error
	calls int
}

func (s *stubEvaluator) Name() string { return s.name }

func (s *stubEvaluator) Evaluate(ctx context.Context, summary []byte) (*Evaluation, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	return &Evaluation{OverallScore: 50, Provider: s.name}, nil
}

func TestFallbackPrefersGemini(t *testing.T) {
	gemini := &stubEvaluator{name: "gemini"}
	ollama := &stubEvaluator{name: "ollama"}

	e, err := NewFallbackEvaluator(gemini, ollama).Evaluate(context.Background(), []byte(`{}`))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if e.Provider != "gemini" || ollama.calls != 0 {
		t.Fatalf("provider=%q ollama calls=%d, want gemini 0", e.Provider, ollama.calls)
	}
}

func TestFallbackUsesOllamaOnQuota(t *testing.T) {
	gemini := &stubEvaluator{name: "gemini", errs: []error{errors.New("Error 429, RESOURCE_EXHAUSTED")}}
	ollama := &stubEvaluator{name: "ollama"}

	e, err := NewFallbackEvaluator(gemini, ollama).Evaluate(context.Background(), []byte(`{}`))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if e.Provider != "ollama" {
		t.Fatalf("provider=%q, want ollama", e.Provider)
	}
}

func TestFallbackRetriesGeminiWhenOllamaUnreachable(t *testing.T) {
	gemini := &stubEvaluator{name: "gemini", errs: []error{errors.New("internal error")}}
	ollama := &stubEvaluator{name: "ollama", errs: []error{errors.New("dial tcp 127.0.0.1:11434: connection refused")}}

	e, err := NewFallbackEvaluator(gemini, ollama).Evaluate(context.Background(), []byte(`{}`))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if e.Provider != "gemini" || gemini.calls != 2 {
		t.Fatalf("provider=%q gemini calls=%d, want gemini 2", e.Provider, gemini.calls)
	}
}

func TestFallbackReportsOllamaFailure(t *testing.T) {
	ollama := &stubEvaluator{name: "ollama", errs: []error{errors.New("model not found")}}

	if _, err := NewFallbackEvaluator(nil, ollama).Evaluate(context.Background(), []byte(`{}`)); err == nil {
		t.Fatalf("Evaluate succeeded, want error")
	}
	if _, err := NewFallbackEvaluator(nil, nil).Evaluate(context.Background(), []byte(`{}`)); err == nil {
		t.Fatalf("Evaluate with no providers succeeded, want error")
	}
}

func TestErrorClassification(t *testing.T) {
	if !isQuotaError(errors.New("too many requests")) || isQuotaError(errors.New("bad request")) {
		t.Fatalf("isQuotaError misclassified")
	}
	if !isConnectionError(errors.New("read: connection reset by peer")) || isConnectionError(errors.New("invalid model")) {
		t.Fatalf("isConnectionError misclassified")
	}
	if isQuotaError(nil) || isConnectionError(nil) {
		t.Fatalf("nil error classified")
	}
}

func TestParseProvider(t *testing.T) {
	if p, err := ParseProvider(""); err != nil || p != ProviderAuto {
		t.Fatalf("ParseProvider(\"\")=%q, %v, want auto", p, err)
	}
	if p, err := ParseProvider("ollama"); err != nil || p != ProviderOllama {
		t.Fatalf("ParseProvider(ollama)=%q, %v", p, err)
	}
	if _, err := ParseProvider("openai"); err == nil {
		t.Fatalf("ParseProvider(openai) succeeded, want error")
	}
}
