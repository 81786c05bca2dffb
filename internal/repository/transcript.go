package repository

import (
	"context"

	"github.com/pep299/video-summarizer/internal/transcript"
)

// TranscriptRepository fetches an opaque transcript result for a video ID.
// The result's shape is untrusted; consumers normalize it.
type TranscriptRepository interface {
	Fetch(ctx context.Context, videoID string) (any, error)
}

type transcriptRepository struct {
	provider transcript.Provider
}

func NewTranscriptRepository(provider transcript.Provider) TranscriptRepository {
	return &transcriptRepository{provider: provider}
}

func (r *transcriptRepository) Fetch(ctx context.Context, videoID string) (any, error) {
	return r.provider.Fetch(ctx, videoID)
}
