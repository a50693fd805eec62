package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server    ServerConfig
	LLM       LLMConfig
	Firestore FirestoreConfig
	LogLevel  string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// LLMConfig selects and configures the generation backend.
type LLMConfig struct {
	Provider      string // "openai" or "gemini"
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string
	PromptPath    string // instruction template sent as the user message
}

type FirestoreConfig struct {
	ProjectID       string
	DatabaseID      string
	Collection      string
	CredentialsFile string // optional; ADC is used when empty
}

// Load reads configuration from environment variables.
// A .env file in the working directory is honored if present.
func Load() (*Config, error) {
	// Best effort: a missing .env file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 60),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		LLM: LLMConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			PromptPath:    getEnv("PROMPT_PATH", "prompt.txt"),
		},
		Firestore: FirestoreConfig{
			ProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
			DatabaseID:      getEnv("FIRESTORE_DATABASE_ID", "meal-plan-db"),
			Collection:      getEnv("FIRESTORE_COLLECTION", "meal-plans"),
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch strings.ToLower(c.LLM.Provider) {
	case "openai":
		if c.LLM.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER is openai")
		}
	case "gemini":
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER is gemini")
		}
	default:
		return fmt.Errorf("invalid LLM_PROVIDER: %s (must be openai or gemini)", c.LLM.Provider)
	}

	if c.Firestore.ProjectID == "" {
		return fmt.Errorf("FIRESTORE_PROJECT_ID is required")
	}

	if c.LLM.PromptPath == "" {
		return fmt.Errorf("PROMPT_PATH is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
