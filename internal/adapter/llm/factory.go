package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "ONAIR_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewClient creates an LLM client based on the ONAIR_MODE environment
// variable. If ONAIR_MODE=MOCK, returns a MockClient; otherwise returns a
// real Gemini client.
func NewClient(model string, timeout time.Duration) Client {
	if os.Getenv(EnvMode) == ModeMock {
		log.Println("ONAIR_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}
	return NewGeminiClient(model, timeout)
}
