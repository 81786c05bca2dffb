package repository

import (
	"context"

	"github.com/pep299/video-summarizer/internal/inference"
)

// Sentiment re-exported so services depend on repository types only.
type Sentiment = inference.Sentiment

// InferenceRepository is the contract with the external text-inference
// service. Sentiment is best-effort by signature: a nil result means the
// classification failed and the caller degrades.
type InferenceRepository interface {
	Summarize(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, model, text string) (string, error)
	Sentiment(ctx context.Context, text string) *Sentiment
}

type inferenceRepository struct {
	client *inference.Client
}

func NewInferenceRepository(client *inference.Client) InferenceRepository {
	return &inferenceRepository{client: client}
}

func (r *inferenceRepository) Summarize(ctx context.Context, text string) (string, error) {
	return r.client.Summarize(ctx, text)
}

func (r *inferenceRepository) Translate(ctx context.Context, model, text string) (string, error) {
	return r.client.Translate(ctx, model, text)
}

func (r *inferenceRepository) Sentiment(ctx context.Context, text string) *Sentiment {
	return r.client.Sentiment(ctx, text)
}
