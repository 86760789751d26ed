package service

import (
	"context"
	"log"

	"github.com/onair-app/onair-server/internal/adapter/llm"
	"github.com/onair-app/onair-server/internal/dialog"
	"github.com/onair-app/onair-server/internal/domain"
	"github.com/onair-app/onair-server/internal/scenario"
)

// modelReply asks the language-model collaborator for the next utterance.
// Every failure resolves to absent; the caller falls back to the rule
// engine. Single attempt, no retry.
func (s *Service) modelReply(ctx context.Context, session *domain.Session) (string, bool) {
	key, _ := s.credentials()

	req := &llm.GenerateRequest{
		APIKey:      key,
		System:      scenario.Instruction(session.Scenario, session.Modality),
		Messages:    dialog.Window(session.Messages, true),
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   4096,
	}

	text, err := s.llmClient.Generate(ctx, req)
	if err != nil {
		log.Printf("WARN: model call failed for session %s: %v", session.SessionID, err)
		return "", false
	}

	text = dialog.CleanText(text)
	if text == "" {
		return "", false
	}
	return text, true
}
