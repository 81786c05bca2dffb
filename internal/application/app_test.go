package application

import (
	"os"
	"testing"
)

func TestNewWiresHandlers(t *testing.T) {
	os.Setenv("HF_API_KEY", "test-key")
	defer os.Unsetenv("HF_API_KEY")

	app, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if app.Config == nil {
		t.Error("Config should not be nil")
	}
	if app.TextHandler == nil {
		t.Error("TextHandler should not be nil")
	}
	if app.DocumentHandler == nil {
		t.Error("DocumentHandler should not be nil")
	}
	if app.VideoHandler == nil {
		t.Error("VideoHandler should not be nil")
	}
}

func TestNewFailsWithoutCredentials(t *testing.T) {
	original := os.Getenv("HF_API_KEY")
	os.Unsetenv("HF_API_KEY")
	defer func() {
		if original != "" {
			os.Setenv("HF_API_KEY", original)
		}
	}()

	if _, err := New(); err == nil {
		t.Error("Expected New to fail without credentials")
	}
}
