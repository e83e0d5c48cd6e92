package ai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tidwall/gjson"
)

func TestOllamaEvaluate(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"model":"llama3","response":"{\"overallScore\": 91, \"strengths\": [\"루틴 유지\"]}","done":true}`)
	}))
	defer srv.Close()

	model := "llama3"
	o := NewOllamaEvaluatorWithGetters(func() string { return srv.URL + "/" }, func() string { return model })
	e, err := o.Evaluate(context.Background(), []byte(`{"routine":{"percentage":80}}`))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if e.OverallScore != 91 || e.Label != "우수" || e.Provider != "ollama" {
		t.Fatalf("evaluation=%+v", e)
	}
	if len(e.Strengths) != 1 || e.Strengths[0] != "루틴 유지" {
		t.Fatalf("strengths=%v", e.Strengths)
	}
	if gjson.Get(body, "model").String() != "llama3" || gjson.Get(body, "stream").Bool() {
		t.Fatalf("request body=%s", body)
	}

	model = "mistral"
	if _, err := o.Evaluate(context.Background(), []byte(`{}`)); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got := gjson.Get(body, "model").String(); got != "mistral" {
		t.Fatalf("model=%q, want mistral after runtime change", got)
	}
}

func TestOllamaEvaluateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewOllamaEvaluator(srv.URL, "nope").Evaluate(context.Background(), []byte(`{}`)); err == nil {
		t.Fatalf("Evaluate succeeded, want error")
	}
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, `{"models":[{"name":"llama3:latest"},{"name":"mistral:7b"}]}`)
	}))
	defer srv.Close()

	names, err := ListModels(context.Background(), nil, srv.URL)
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(names) != 2 || names[0] != "llama3:latest" || names[1] != "mistral:7b" {
		t.Fatalf("names=%v", names)
	}
}
