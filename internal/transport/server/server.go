package server

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/pep299/video-summarizer/internal/application"
	"github.com/pep299/video-summarizer/internal/transport/response"
)

// CreateHandler creates the main HTTP handler for the application
func CreateHandler() (http.Handler, error) {
	// Create application (handles all DI and business logic)
	app, err := application.New()
	if err != nil {
		log.Printf("Error creating application: %v\nStack:\n%s", err, debug.Stack())
		return nil, err
	}

	// Setup routes (pure HTTP routing)
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{"message": "API is running"})
	}).Methods("GET")
	router.Handle("/summarize/text", app.TextHandler).Methods("POST")
	router.Handle("/summarize/document", app.DocumentHandler).Methods("POST")
	router.Handle("/summarize/video", app.VideoHandler).Methods("POST")

	return router, nil
}

// HandleRequest handles a single HTTP request (for Cloud Functions)
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	handler, err := CreateHandler()
	if err != nil {
		log.Printf("Failed to create handler: %v\nStack:\n%s", err, debug.Stack())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	handler.ServeHTTP(w, r)
}
