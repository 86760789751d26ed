package service

import (
	"context"

	"github.com/onair-app/onair-server/internal/domain"
)

// SetKey validates key material with a probe call and, on success, swaps
// the active credential. Returns the active model identifier.
func (s *Service) SetKey(ctx context.Context, key string) (string, error) {
	model, err := s.llmClient.Probe(ctx, key)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.key = key
	s.model = model
	s.mu.Unlock()

	return model, nil
}

// Status reports current collaborator availability.
func (s *Service) Status() *domain.ProviderStatus {
	key, model := s.credentials()
	st := &domain.ProviderStatus{GeminiSet: key != ""}
	if key != "" {
		st.OK = true
		st.Provider = "gemini"
		st.Model = model
	}
	return st
}
