package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error payload of the API. Error is the short
// human-readable message; Detail carries diagnostics (attempted strategies,
// upstream status/body) and is only populated for development-style responses.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// WriteJSON writes any payload with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(payload)
}

// WriteError writes an error response
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, ErrorBody{Error: message})
}

// WriteErrorDetail writes an error response with diagnostic detail
func WriteErrorDetail(w http.ResponseWriter, statusCode int, message, detail string) error {
	return WriteJSON(w, statusCode, ErrorBody{Error: message, Detail: detail})
}

// WriteBadRequest writes a 400 Bad Request error
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message)
}

// WriteNotFound writes a 404 Not Found error
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message)
}

// WriteInternalError writes a 500 Internal Server Error
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message)
}
