package service

import (
	"context"
	"strings"

	"github.com/pep299/video-summarizer/internal/model"
)

// Text summarizes free text and pre-extracted document text. Translation is
// not attempted here: callers on this path supply text in the language they
// want summarized.
type Text struct {
	summarizer *Summarizer
}

func NewText(summarizer *Summarizer) *Text {
	return &Text{summarizer: summarizer}
}

func (t *Text) Process(ctx context.Context, text string) (*model.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	summary, err := t.summarizer.SummarizeLongText(ctx, text)
	if err != nil {
		return nil, err
	}
	return &model.Result{Summary: summary}, nil
}
