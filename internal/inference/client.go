package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Hugging Face Inference router prefix; the model
	// identifier is appended as the final path segment.
	DefaultBaseURL = "https://router.huggingface.co/hf-inference/models"

	// Summarize is retried; translate and sentiment get a single attempt.
	summarizeRetries = 2
)

// Error is a terminal failure from the inference service, carrying the last
// observed status and body for diagnostics.
type Error struct {
	Model      string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("inference request to %s failed with status %d: %s", e.Model, e.StatusCode, e.Body)
}

// Sentiment is a classification label with its confidence.
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Client handles Hugging Face Inference API operations
type Client struct {
	apiKey         string
	summaryModel   string
	sentimentModel string
	baseURL        string
	httpClient     *http.Client

	// retryDelay computes the pause before retry number attempt+1.
	// Overridable in tests to avoid real sleeps.
	retryDelay func(attempt int) time.Duration
}

// NewClient creates a new inference API client
func NewClient(apiKey, summaryModel, sentimentModel, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:         apiKey,
		summaryModel:   summaryModel,
		sentimentModel: sentimentModel,
		baseURL:        baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		retryDelay: func(attempt int) time.Duration {
			return time.Duration(1+attempt) * time.Second
		},
	}
}

// inferenceRequest is the request body shared by all task kinds.
type inferenceRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Summarize condenses text with the configured summary model. Non-200
// responses and transport errors are retried with linearly increasing backoff;
// once the budget is exhausted the last status and body come back as *Error.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	req := inferenceRequest{
		Inputs: text,
		Parameters: map[string]any{
			"max_length": 150,
			"min_length": 50,
			"do_sample":  false,
		},
	}

	lastErr := &Error{Model: c.summaryModel}
	for attempt := 0; attempt <= summarizeRetries; attempt++ {
		status, body, err := c.post(ctx, c.summaryModel, req)
		if err != nil {
			log.Printf("Summarize attempt %d request error: %v", attempt+1, err)
			lastErr.StatusCode = 0
			lastErr.Body = err.Error()
		} else if status == http.StatusOK {
			return parseGenerated(body, "summary_text"), nil
		} else {
			log.Printf("Summarize attempt %d failed status=%d", attempt+1, status)
			lastErr.StatusCode = status
			lastErr.Body = string(body)
		}
		if attempt < summarizeRetries {
			select {
			case <-time.After(c.retryDelay(attempt)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", lastErr
}

// Translate runs text through the given translation model. One attempt only:
// the translation step treats any failure as an abort of the whole translation.
func (c *Client) Translate(ctx context.Context, model, text string) (string, error) {
	status, body, err := c.post(ctx, model, inferenceRequest{Inputs: text})
	if err != nil {
		return "", fmt.Errorf("translation request: %w", err)
	}
	if status != http.StatusOK {
		return "", &Error{Model: model, StatusCode: status, Body: string(body)}
	}
	translated, ok := parseTranslated(body)
	if !ok {
		return "", &Error{Model: model, StatusCode: status, Body: "unexpected translation response shape: " + string(body)}
	}
	return translated, nil
}

// Sentiment classifies text with the configured sentiment model. It never
// fails the caller: any non-200 response, transport error, or unrecognized
// payload yields nil.
func (c *Client) Sentiment(ctx context.Context, text string) *Sentiment {
	status, body, err := c.post(ctx, c.sentimentModel, inferenceRequest{Inputs: text})
	if err != nil {
		log.Printf("Sentiment request error: %v", err)
		return nil
	}
	if status != http.StatusOK {
		log.Printf("Sentiment analysis failed status=%d body=%s", status, string(body))
		return nil
	}

	// Classifier output is either [[{label,score},...]] ranked, a flat list,
	// or a single object. Take the top-ranked entry.
	var nested [][]Sentiment
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		s := nested[0][0]
		return &s
	}
	var flat []Sentiment
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 && flat[0].Label != "" {
		s := flat[0]
		return &s
	}
	var one Sentiment
	if err := json.Unmarshal(body, &one); err == nil && one.Label != "" {
		return &one
	}
	log.Printf("Sentiment response had no recognizable shape: %s", string(body))
	return nil
}

// post sends one inference round trip and returns the raw status and body.
func (c *Client) post(ctx context.Context, model string, payload inferenceRequest) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response body: %w", err)
	}
	return resp.StatusCode, respBody, nil
}
