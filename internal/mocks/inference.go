package mocks

import (
	"context"
	"fmt"

	"github.com/pep299/video-summarizer/internal/repository"
)

// Mock Inference Repository
type MockInferenceRepo struct {
	ShouldFailSummarize bool
	ShouldFailTranslate bool
	ShouldFailSentiment bool

	SummarizeCalls []string
	TranslateCalls []string
	SentimentCalls []string

	SentimentLabel string
	SentimentScore float64
}

func (m *MockInferenceRepo) Summarize(ctx context.Context, text string) (string, error) {
	m.SummarizeCalls = append(m.SummarizeCalls, text)
	if m.ShouldFailSummarize {
		return "", fmt.Errorf("mock summarize error")
	}
	return fmt.Sprintf("summary %d", len(m.SummarizeCalls)), nil
}

func (m *MockInferenceRepo) Translate(ctx context.Context, model, text string) (string, error) {
	m.TranslateCalls = append(m.TranslateCalls, model)
	if m.ShouldFailTranslate {
		return "", fmt.Errorf("mock translate error")
	}
	return fmt.Sprintf("translated %d", len(m.TranslateCalls)), nil
}

func (m *MockInferenceRepo) Sentiment(ctx context.Context, text string) *repository.Sentiment {
	m.SentimentCalls = append(m.SentimentCalls, text)
	if m.ShouldFailSentiment {
		return nil
	}
	label, score := m.SentimentLabel, m.SentimentScore
	if label == "" {
		label = "neutral"
		score = 0.9
	}
	return &repository.Sentiment{Label: label, Score: score}
}
