package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/pep299/video-summarizer/internal/service"
	"github.com/pep299/video-summarizer/internal/transport/response"
)

// Document summarizes text extracted from an uploaded document. Extraction
// from the binary format happens upstream; this handler receives plain text.
type Document struct {
	textService *service.Text
}

func NewDocument(textService *service.Text) *Document {
	return &Document{textService: textService}
}

type documentRequest struct {
	Text     string `json:"text"`
	Filename string `json:"filename,omitempty"`
}

func (h *Document) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		response.WriteBadRequest(w, "Document contains no extractable text")
		return
	}

	if req.Filename != "" {
		log.Printf("Document summarization requested filename=%s chars=%d", req.Filename, len(req.Text))
	}

	result, err := h.textService.Process(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			response.WriteBadRequest(w, "Document contains no extractable text")
			return
		}
		response.WriteErrorDetail(w, http.StatusInternalServerError, "Document summarization failed", err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}
