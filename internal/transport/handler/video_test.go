package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pep299/video-summarizer/internal/mocks"
	"github.com/pep299/video-summarizer/internal/model"
	"github.com/pep299/video-summarizer/internal/service"
	"github.com/pep299/video-summarizer/internal/transcript"
	"github.com/pep299/video-summarizer/internal/transport/response"
)

func newVideoHandler(inf *mocks.MockInferenceRepo, tr *mocks.MockTranscriptRepo) *Video {
	summarizer := service.NewSummarizer(inf)
	translator := service.NewTranslator(inf, "Helsinki-NLP/opus-mt-%s-en")
	mood := service.NewMoodAnalyzer(inf)
	return NewVideo(service.NewVideo(tr, summarizer, translator, mood))
}

func videoTranscript() any {
	return []any{
		map[string]any{"text": "Welcome back everyone", "start": 0.0, "duration": 3.0, "language_code": "en"},
		map[string]any{"text": "see you next time", "start": 40.0, "duration": 2.0, "language_code": "en"},
	}
}

func postVideo(h *Video, target, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", target, strings.NewReader(payload))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestVideoHandlerSuccess(t *testing.T) {
	h := newVideoHandler(&mocks.MockInferenceRepo{}, &mocks.MockTranscriptRepo{Result: videoTranscript()})

	w := postVideo(h, "/summarize/video", `{"video_url":"https://youtu.be/dQw4w9WgXcQ"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result model.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Summary == "" {
		t.Error("Expected a summary")
	}
	if result.SourceLanguage == nil || *result.SourceLanguage != "en" {
		t.Errorf("Expected transcript_language 'en', got %v", result.SourceLanguage)
	}
	if result.MoodIntervals != nil {
		t.Error("Expected no mood trace without the query flag")
	}
}

func TestVideoHandlerMoodFlag(t *testing.T) {
	h := newVideoHandler(
		&mocks.MockInferenceRepo{SentimentLabel: "positive", SentimentScore: 0.95},
		&mocks.MockTranscriptRepo{Result: videoTranscript()},
	)

	w := postVideo(h, "/summarize/video?mood=true", `{"video_url":"dQw4w9WgXcQ"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result model.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result.MoodIntervals) != 2 {
		t.Fatalf("Expected 2 mood intervals, got %d", len(result.MoodIntervals))
	}
	if result.MoodIntervals[0].Mood != "positive" {
		t.Errorf("Expected mood 'positive', got %q", result.MoodIntervals[0].Mood)
	}
}

func TestVideoHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		payload        string
		transcriptRepo *mocks.MockTranscriptRepo
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "invalid video URL",
			payload:        `{"video_url":"https://example.com/nope"}`,
			transcriptRepo: &mocks.MockTranscriptRepo{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid video URL / could not extract ID",
		},
		{
			name:           "missing video URL",
			payload:        `{}`,
			transcriptRepo: &mocks.MockTranscriptRepo{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "No video URL provided",
		},
		{
			name:           "transcripts disabled",
			payload:        `{"video_url":"dQw4w9WgXcQ"}`,
			transcriptRepo: &mocks.MockTranscriptRepo{Err: transcript.ErrTranscriptsDisabled},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Transcripts are disabled for this video",
		},
		{
			name:           "no transcript",
			payload:        `{"video_url":"dQw4w9WgXcQ"}`,
			transcriptRepo: &mocks.MockTranscriptRepo{Err: transcript.ErrNoTranscript},
			expectedStatus: http.StatusNotFound,
			expectedError:  "No transcript found for this video",
		},
		{
			name:           "video unavailable",
			payload:        `{"video_url":"dQw4w9WgXcQ"}`,
			transcriptRepo: &mocks.MockTranscriptRepo{Err: transcript.ErrVideoUnavailable},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Video is unavailable",
		},
		{
			name:           "generic fetch failure",
			payload:        `{"video_url":"dQw4w9WgXcQ"}`,
			transcriptRepo: &mocks.MockTranscriptRepo{ShouldFail: true},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Summarization failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newVideoHandler(&mocks.MockInferenceRepo{}, tt.transcriptRepo)

			w := postVideo(h, "/summarize/video", tt.payload)
			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			var body response.ErrorBody
			json.Unmarshal(w.Body.Bytes(), &body)
			if body.Error != tt.expectedError {
				t.Errorf("Expected error %q, got %q", tt.expectedError, body.Error)
			}
		})
	}
}

func TestVideoHandlerUnextractableTranscript(t *testing.T) {
	h := newVideoHandler(&mocks.MockInferenceRepo{}, &mocks.MockTranscriptRepo{Result: struct{}{}})

	w := postVideo(h, "/summarize/video", `{"video_url":"dQw4w9WgXcQ"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var body response.ErrorBody
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Error != "Transcript fetched but no text could be extracted" {
		t.Errorf("Expected extraction error, got %q", body.Error)
	}
	if !strings.Contains(body.Detail, "find_transcript") || !strings.Contains(body.Detail, "get_lines") {
		t.Errorf("Expected attempted strategies in detail, got %q", body.Detail)
	}
}

func TestVideoHandlerInvalidJSON(t *testing.T) {
	h := newVideoHandler(&mocks.MockInferenceRepo{}, &mocks.MockTranscriptRepo{})

	w := postVideo(h, "/summarize/video", `{{`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
