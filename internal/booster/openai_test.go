package booster

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIGenerateSendsPromptsAndParsesChoice(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("unexpected authorization header %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != DefaultOpenAIModel || len(req.Messages) != 2 || req.Messages[0].Content != systemPrompt || req.Messages[1].Content != userPrompt {
			t.Errorf("unexpected request %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Keep going, you're doing fine.\n"}}]}`))
	}))
	defer ts.Close()

	c := &OpenAI{APIKey: "sk-test", BaseURL: ts.URL, HTTPClient: ts.Client()}
	got, err := c.Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "Keep going, you're doing fine." {
		t.Fatalf("unexpected quote %q", got)
	}
}

func TestOpenAIGenerateReportsAPIError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer ts.Close()

	c := &OpenAI{APIKey: "sk-test", BaseURL: ts.URL, HTTPClient: ts.Client()}
	_, err := c.Generate(context.Background())
	if err == nil || !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected status error with message, got %v", err)
	}
}

func TestOpenAIGenerateRejectsEmptyChoices(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	c := &OpenAI{APIKey: "sk-test", BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, err := c.Generate(context.Background()); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestOpenAIGenerateRequiresKey(t *testing.T) {
	t.Parallel()

	if _, err := (&OpenAI{}).Generate(context.Background()); err == nil {
		t.Fatalf("expected missing key error")
	}
}
