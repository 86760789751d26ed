// Package config provides configuration for the dialogue server.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Archive database (in-memory by default; sessions are volatile)
	DatabaseURL string

	// Gemini collaborator
	GeminiAPIKey string
	GeminiModel  string
	LLMTimeout   time.Duration

	// Dialogue defaults
	MaxRounds int

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	// Load .env if present; missing files are fine.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:     getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:  getEnv("DATABASE_URL", ":memory:"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		LLMTimeout:   time.Duration(getEnvInt("LLM_TIMEOUT_MS", 30000)) * time.Millisecond,
		MaxRounds:    getEnvInt("MAX_ROUNDS", 8),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
