package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/pep299/video-summarizer/internal/chunk"
	"github.com/pep299/video-summarizer/internal/repository"
)

// ErrEmptyText means there was no usable input after trimming.
var ErrEmptyText = errors.New("no text provided")

// Summarizer reduces arbitrarily long text to a single summary by
// map-reducing over bounded chunks.
type Summarizer struct {
	inference repository.InferenceRepository
}

func NewSummarizer(inference repository.InferenceRepository) *Summarizer {
	return &Summarizer{inference: inference}
}

// SummarizeLongText chunks text, summarizes each chunk in order, and when more
// than one chunk was needed runs one reduction pass over the joined per-chunk
// summaries. Any chunk failure aborts the whole operation; partial summaries
// are never returned.
func (s *Summarizer) SummarizeLongText(ctx context.Context, text string) (string, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)

	chunks := chunk.Split(text, chunk.SummaryMaxChars, chunk.SummaryOverlap)
	if len(chunks) == 0 {
		return "", ErrEmptyText
	}
	logger.Printf("Summarizing chunks=%d", len(chunks))

	summaries := make([]string, 0, len(chunks))
	for i, c := range chunks {
		summary, err := s.inference.Summarize(ctx, c)
		if err != nil {
			return "", fmt.Errorf("summarizing chunk %d/%d: %w", i+1, len(chunks), err)
		}
		summaries = append(summaries, summary)
	}

	if len(summaries) == 1 {
		return summaries[0], nil
	}

	final, err := s.inference.Summarize(ctx, strings.Join(summaries, "\n"))
	if err != nil {
		return "", fmt.Errorf("reducing %d chunk summaries: %w", len(summaries), err)
	}
	return final, nil
}
