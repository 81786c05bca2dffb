package application

import (
	"os"

	"github.com/joho/godotenv"
)

// TranslationModelTemplate names the translation model for a source
// language's primary subtag.
const TranslationModelTemplate = "Helsinki-NLP/opus-mt-%s-en"

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Inference API settings
	HFAPIKey       string `json:"-"` // Don't expose in JSON
	SummaryModel   string `json:"summary_model"`
	SentimentModel string `json:"sentiment_model"`

	// InferenceBaseURL overrides the inference router endpoint (tests).
	InferenceBaseURL string `json:"-"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		Host:             getEnvOrDefault("HOST", "0.0.0.0"),
		HFAPIKey:         getEnvOrDefault("HF_API_KEY", ""),
		SummaryModel:     getEnvOrDefault("HF_SUMMARY_MODEL", "sshleifer/distilbart-cnn-12-6"),
		SentimentModel:   getEnvOrDefault("HF_SENTIMENT_MODEL", "cardiffnlp/twitter-roberta-base-sentiment-latest"),
		InferenceBaseURL: getEnvOrDefault("HF_API_BASE", ""),
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.HFAPIKey == "" {
		return &ConfigError{Field: "HF_API_KEY", Message: "inference API key is required"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
