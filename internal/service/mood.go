package service

import (
	"context"
	"strings"

	"github.com/pep299/video-summarizer/internal/model"
	"github.com/pep299/video-summarizer/internal/repository"
	"github.com/pep299/video-summarizer/internal/transcript"
)

// MoodIntervalSeconds is the fixed bucket width of the mood trace.
const MoodIntervalSeconds = 30

// MoodAnalyzer buckets a transcript into fixed time windows and classifies
// each window's sentiment.
type MoodAnalyzer struct {
	inference repository.InferenceRepository
}

func NewMoodAnalyzer(inference repository.InferenceRepository) *MoodAnalyzer {
	return &MoodAnalyzer{inference: inference}
}

// Trace walks time-ordered segments, accumulating text per interval-wide
// bucket. A bucket is flushed when a segment starts past its end, and the
// trailing bucket is flushed after the last segment. Buckets that gathered no
// text are never emitted; buckets whose sentiment call failed are emitted as
// UNKNOWN so the trace has one entry per non-empty window.
func (m *MoodAnalyzer) Trace(ctx context.Context, segments []transcript.Segment, intervalSeconds float64) []model.MoodInterval {
	var intervals []model.MoodInterval
	bucketStart := 0.0
	var parts []string

	flush := func() {
		if len(parts) == 0 {
			return
		}
		intervals = append(intervals, m.classify(ctx, bucketStart, bucketStart+intervalSeconds, strings.Join(parts, " ")))
		parts = nil
	}

	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		for seg.Start >= bucketStart+intervalSeconds {
			flush()
			bucketStart += intervalSeconds
		}
		parts = append(parts, text)
	}
	flush()

	return intervals
}

func (m *MoodAnalyzer) classify(ctx context.Context, start, end float64, text string) model.MoodInterval {
	if s := m.inference.Sentiment(ctx, text); s != nil {
		return model.MoodInterval{Start: start, End: end, Mood: s.Label, Score: s.Score}
	}
	return model.MoodInterval{Start: start, End: end, Mood: model.UnknownMood, Score: 0.0}
}
