package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pep299/video-summarizer/internal/service"
	"github.com/pep299/video-summarizer/internal/transport/response"
)

type Text struct {
	textService *service.Text
}

func NewText(textService *service.Text) *Text {
	return &Text{textService: textService}
}

type textRequest struct {
	Text string `json:"text"`
}

func (h *Text) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		response.WriteBadRequest(w, "No text provided")
		return
	}

	result, err := h.textService.Process(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			response.WriteBadRequest(w, "No text provided")
			return
		}
		response.WriteErrorDetail(w, http.StatusInternalServerError, "Summarization failed", err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}
