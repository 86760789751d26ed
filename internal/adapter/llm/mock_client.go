package llm

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of Client for testing and offline
// runs. Reply and Err override the canned behavior when set.
type MockClient struct {
	Reply string
	Model string
	Err   error
}

// NewMockClient creates a new mock LLM client.
func NewMockClient() *MockClient {
	return &MockClient{Model: "mock-gemini"}
}

var _ Client = (*MockClient)(nil)

// Generate returns a mock response based on the last user message.
func (m *MockClient) Generate(ctx context.Context, req *GenerateRequest) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}

	var lastUser string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			lastUser = req.Messages[i].Text
			break
		}
	}
	if lastUser == "" {
		return "[MOCK] This is a mock response from the LLM client.", nil
	}
	return fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(lastUser, 100)), nil
}

// Probe reports the mock model unless an error is configured.
func (m *MockClient) Probe(ctx context.Context, apiKey string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Model, nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
