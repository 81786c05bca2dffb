package mocks

import (
	"context"
	"fmt"
)

// Mock Transcript Repository
type MockTranscriptRepo struct {
	Result     any
	Err        error
	FetchedIDs []string
	ShouldFail bool
}

func (m *MockTranscriptRepo) Fetch(ctx context.Context, videoID string) (any, error) {
	m.FetchedIDs = append(m.FetchedIDs, videoID)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.ShouldFail {
		return nil, fmt.Errorf("mock transcript fetch error")
	}
	return m.Result, nil
}
