package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pep299/video-summarizer/internal/service"
	"github.com/pep299/video-summarizer/internal/transcript"
	"github.com/pep299/video-summarizer/internal/transport/response"
)

type Video struct {
	videoService *service.Video
}

func NewVideo(videoService *service.Video) *Video {
	return &Video{videoService: videoService}
}

type videoRequest struct {
	VideoURL string `json:"video_url"`
}

func (h *Video) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if req.VideoURL == "" {
		response.WriteBadRequest(w, "No video URL provided")
		return
	}

	withMood := strings.EqualFold(r.URL.Query().Get("mood"), "true")

	result, err := h.videoService.Process(r.Context(), req.VideoURL, withMood)
	if err != nil {
		writeVideoError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}

// writeVideoError maps pipeline failures onto the API's status codes:
// caller mistakes and disabled transcripts are 400, missing content is 404,
// everything downstream is 500.
func writeVideoError(w http.ResponseWriter, err error) {
	var normErr *transcript.NormalizationError

	switch {
	case errors.Is(err, service.ErrInvalidVideoURL):
		response.WriteBadRequest(w, "Invalid video URL / could not extract ID")
	case errors.Is(err, transcript.ErrTranscriptsDisabled):
		response.WriteBadRequest(w, "Transcripts are disabled for this video")
	case errors.Is(err, transcript.ErrNoTranscript):
		response.WriteNotFound(w, "No transcript found for this video")
	case errors.Is(err, transcript.ErrVideoUnavailable):
		response.WriteNotFound(w, "Video is unavailable")
	case errors.Is(err, service.ErrEmptyTranscript):
		response.WriteNotFound(w, "Transcript empty")
	case errors.As(err, &normErr):
		response.WriteErrorDetail(w, http.StatusInternalServerError,
			"Transcript fetched but no text could be extracted",
			"attempted strategies: "+strings.Join(normErr.Attempted, ", "))
	default:
		response.WriteErrorDetail(w, http.StatusInternalServerError, "Summarization failed", err.Error())
	}
}
