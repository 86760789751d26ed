// Package llm provides an abstraction for the language-model collaborator.
package llm

import (
	"context"

	"github.com/onair-app/onair-server/internal/domain"
)

// GenerateRequest carries one generation call: windowed history, system
// instruction, sampling parameters, and the credential to use.
type GenerateRequest struct {
	APIKey       string
	System       string
	Messages     []domain.Turn
	Temperature  float32
	TopP         float32
	MaxTokens    int32
	JSONResponse bool
}

// Client defines the interface for language-model operations. Generate and
// Probe make a single attempt each; callers decide what a failure means.
type Client interface {
	// Generate produces the model's next utterance for the request.
	Generate(ctx context.Context, req *GenerateRequest) (string, error)

	// Probe validates an API key with a lightweight call and returns the
	// active model identifier.
	Probe(ctx context.Context, apiKey string) (string, error)
}
