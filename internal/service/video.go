package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/pep299/video-summarizer/internal/model"
	"github.com/pep299/video-summarizer/internal/repository"
	"github.com/pep299/video-summarizer/internal/transcript"
)

var (
	// ErrInvalidVideoURL means no video ID could be extracted from the input.
	ErrInvalidVideoURL = errors.New("invalid video URL / could not extract ID")
	// ErrEmptyTranscript means the transcript normalized to no usable text.
	ErrEmptyTranscript = errors.New("transcript empty after normalization")
)

// unknownNonEnglish marks a heuristic "probably not English" signal when the
// provider declared no language code.
const unknownNonEnglish = "unknown_non_en"

// Video runs the full video pipeline: fetch transcript, normalize, attempt
// translation, summarize, and optionally trace mood per interval.
type Video struct {
	transcripts repository.TranscriptRepository
	summarizer  *Summarizer
	translator  *Translator
	mood        *MoodAnalyzer
}

func NewVideo(
	transcripts repository.TranscriptRepository,
	summarizer *Summarizer,
	translator *Translator,
	mood *MoodAnalyzer,
) *Video {
	return &Video{
		transcripts: transcripts,
		summarizer:  summarizer,
		translator:  translator,
		mood:        mood,
	}
}

func (v *Video) Process(ctx context.Context, videoURL string, withMood bool) (*model.Result, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	startTime := time.Now()

	videoID := transcript.ExtractVideoID(videoURL)
	if videoID == "" {
		return nil, ErrInvalidVideoURL
	}
	logger.Printf("Video processing started video_id=%s mood=%t", videoID, withMood)

	raw, err := v.transcripts.Fetch(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetching transcript for %s: %w", videoID, err)
	}

	segments, declaredLang, err := transcript.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalizing transcript for %s: %w", videoID, err)
	}

	text := transcript.JoinText(segments)
	if text == "" {
		return nil, ErrEmptyTranscript
	}

	srcLang := strings.ToLower(declaredLang)
	if srcLang == "" {
		srcLang = detectLanguage(text)
	}
	logger.Printf("Transcript language detected lang=%s segments=%d chars=%d", srcLang, len(segments), len(text))

	// Translation is always attempted when a language signal exists, even a
	// heuristic one; failure falls back to the original transcript.
	translationStart := time.Now()
	finalText, note := text, fmt.Sprintf("(translation attempted but failed; original language: %s)", srcLang)
	if translated, ok := v.translator.ToEnglish(ctx, text, srcLang); ok {
		finalText = translated
		note = fmt.Sprintf("(translated from %s)", srcLang)
	}
	translationDuration := time.Since(translationStart)

	summaryStart := time.Now()
	summary, err := v.summarizer.SummarizeLongText(ctx, finalText)
	if err != nil {
		return nil, err
	}
	summaryDuration := time.Since(summaryStart)

	result := &model.Result{
		Summary:        summary,
		Note:           note,
		SourceLanguage: &srcLang,
	}

	if withMood {
		moodStart := time.Now()
		result.MoodIntervals = v.mood.Trace(ctx, segments, MoodIntervalSeconds)
		logger.Printf("Mood analysis completed intervals=%d duration_ms=%d",
			len(result.MoodIntervals), time.Since(moodStart).Milliseconds())
	}

	logger.Printf("Video processing completed video_id=%s total_duration_ms=%d translation_duration_ms=%d summary_duration_ms=%d",
		videoID, time.Since(startTime).Milliseconds(), translationDuration.Milliseconds(), summaryDuration.Milliseconds())
	return result, nil
}

// detectLanguage is the fallback heuristic when the provider declared no
// language: any non-ASCII byte in the leading sample means "probably not
// English". Unreliable, but only consulted when nothing better exists.
func detectLanguage(text string) string {
	sample := text
	if len(sample) > 200 {
		sample = sample[:200]
	}
	for i := 0; i < len(sample); i++ {
		if sample[i] > 0x7f {
			return unknownNonEnglish
		}
	}
	return "en"
}
