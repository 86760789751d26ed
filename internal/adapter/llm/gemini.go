package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/onair-app/onair-server/internal/domain"
)

// GeminiClient calls the Gemini API through the official SDK.
type GeminiClient struct {
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini client for the given model.
func NewGeminiClient(model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		model:   model,
		timeout: timeout,
	}
}

var _ Client = (*GeminiClient)(nil)

// Generate sends one generation request. The client is constructed per call
// because the key can be swapped at runtime or overridden per request.
func (c *GeminiClient) Generate(ctx context.Context, req *GenerateRequest) (string, error) {
	if req.APIKey == "" {
		return "", fmt.Errorf("gemini api key is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  req.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create genai client: %w", err)
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := "user"
		if m.Role == domain.SpeakerAI {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Text}},
		})
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		TopP:            genai.Ptr(req.TopP),
		CandidateCount:  1,
		MaxOutputTokens: req.MaxTokens,
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.JSONResponse {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	text, err := firstCandidateText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

// Probe sends a tiny healthcheck request to validate a key.
func (c *GeminiClient) Probe(ctx context.Context, apiKey string) (string, error) {
	req := &GenerateRequest{
		APIKey:    apiKey,
		System:    "healthcheck",
		Messages:  []domain.Turn{{Role: domain.SpeakerUser, Text: "pong?"}},
		MaxTokens: 250,
	}
	if _, err := c.Generate(ctx, req); err != nil {
		return "", err
	}
	return c.model, nil
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("response has no candidates")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("candidate has no content parts")
	}
	return content.Parts[0].Text, nil
}
