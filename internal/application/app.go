package application

import (
	"fmt"

	"github.com/pep299/video-summarizer/internal/inference"
	"github.com/pep299/video-summarizer/internal/repository"
	"github.com/pep299/video-summarizer/internal/service"
	"github.com/pep299/video-summarizer/internal/transcript"
	"github.com/pep299/video-summarizer/internal/transport/handler"
)

// Application represents the application with all business logic components
type Application struct {
	Config          *Config
	TextHandler     *handler.Text
	DocumentHandler *handler.Document
	VideoHandler    *handler.Video
}

// New creates a new application instance with all dependencies
func New() (*Application, error) {
	// Load configuration
	cfg, err := Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Create clients for the external collaborators
	inferenceClient := inference.NewClient(cfg.HFAPIKey, cfg.SummaryModel, cfg.SentimentModel, cfg.InferenceBaseURL)
	youtubeClient := transcript.NewYouTubeClient()

	// Create repositories
	inferenceRepo := repository.NewInferenceRepository(inferenceClient)
	transcriptRepo := repository.NewTranscriptRepository(youtubeClient)

	// Create services (business logic)
	summarizer := service.NewSummarizer(inferenceRepo)
	translator := service.NewTranslator(inferenceRepo, TranslationModelTemplate)
	mood := service.NewMoodAnalyzer(inferenceRepo)
	textService := service.NewText(summarizer)
	videoService := service.NewVideo(transcriptRepo, summarizer, translator, mood)

	// Create handlers (HTTP layer)
	return &Application{
		Config:          cfg,
		TextHandler:     handler.NewText(textService),
		DocumentHandler: handler.NewDocument(textService),
		VideoHandler:    handler.NewVideo(videoService),
	}, nil
}
