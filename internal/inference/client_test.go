package inference

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("test-key", "sum-model", "sent-model", srv.URL)
	client.retryDelay = func(int) time.Duration { return 0 }
	return client
}

func TestSummarizeSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/sum-model" {
			t.Errorf("Expected path /sum-model, got %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Expected bearer auth header, got %q", auth)
		}

		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Inputs != "long text" {
			t.Errorf("Expected inputs 'long text', got %q", req.Inputs)
		}
		if req.Parameters["max_length"] != float64(150) {
			t.Errorf("Expected max_length 150, got %v", req.Parameters["max_length"])
		}

		w.Write([]byte(`[{"summary_text":"a short summary"}]`))
	}))

	got, err := client.Summarize(context.Background(), "long text")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if got != "a short summary" {
		t.Errorf("Expected 'a short summary', got %q", got)
	}
}

func TestSummarizeRetriesThenSucceeds(t *testing.T) {
	attempts := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"summary_text":"recovered"}]`))
	}))

	got, err := client.Summarize(context.Background(), "text")
	if err != nil {
		t.Fatalf("Summarize failed after retries: %v", err)
	}
	if got != "recovered" {
		t.Errorf("Expected 'recovered', got %q", got)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}

func TestSummarizeExhaustsRetryBudget(t *testing.T) {
	attempts := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("model overloaded"))
	}))

	_, err := client.Summarize(context.Background(), "text")
	if err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}

	var infErr *Error
	if !errors.As(err, &infErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if infErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", infErr.StatusCode)
	}
	if infErr.Body != "model overloaded" {
		t.Errorf("Expected last body in error, got %q", infErr.Body)
	}
}

func TestTranslateSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/opus-mt-hi-en" {
			t.Errorf("Expected path /opus-mt-hi-en, got %s", r.URL.Path)
		}
		w.Write([]byte(`[{"translation_text":"hello"}]`))
	}))

	got, err := client.Translate(context.Background(), "opus-mt-hi-en", "नमस्ते")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "hello" {
		t.Errorf("Expected 'hello', got %q", got)
	}
}

func TestTranslateSingleAttempt(t *testing.T) {
	attempts := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Translate(context.Background(), "opus-mt-hi-en", "text")
	if err == nil {
		t.Fatal("Expected error on failed translation")
	}
	if attempts != 1 {
		t.Errorf("Expected exactly 1 attempt, got %d", attempts)
	}
}

func TestTranslateRejectsUnexpectedShape(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"score":0.5}]`))
	}))

	_, err := client.Translate(context.Background(), "opus-mt-hi-en", "text")
	if err == nil {
		t.Fatal("Expected error for response without text payload")
	}
}

func TestSentimentNestedShape(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sent-model" {
			t.Errorf("Expected path /sent-model, got %s", r.URL.Path)
		}
		w.Write([]byte(`[[{"label":"positive","score":0.98},{"label":"negative","score":0.02}]]`))
	}))

	got := client.Sentiment(context.Background(), "great stuff")
	if got == nil {
		t.Fatal("Expected sentiment, got nil")
	}
	if got.Label != "positive" {
		t.Errorf("Expected label 'positive', got %q", got.Label)
	}
	if got.Score != 0.98 {
		t.Errorf("Expected score 0.98, got %v", got.Score)
	}
}

func TestSentimentFlatShape(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"label":"negative","score":0.7}]`))
	}))

	got := client.Sentiment(context.Background(), "bad stuff")
	if got == nil {
		t.Fatal("Expected sentiment, got nil")
	}
	if got.Label != "negative" {
		t.Errorf("Expected label 'negative', got %q", got.Label)
	}
}

func TestSentimentNilOnFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	if got := client.Sentiment(context.Background(), "text"); got != nil {
		t.Errorf("Expected nil on server error, got %v", got)
	}
}

func TestSentimentNilOnUnrecognizedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	}))

	if got := client.Sentiment(context.Background(), "text"); got != nil {
		t.Errorf("Expected nil on unrecognized body, got %v", got)
	}
}
