// Package service implements the dialogue orchestrator: session lifecycle,
// the turn-taking protocol, model fallback, feedback, and credential state.
package service

import (
	"sync"

	"github.com/onair-app/onair-server/internal/adapter/llm"
	"github.com/onair-app/onair-server/internal/adapter/tts"
	"github.com/onair-app/onair-server/internal/config"
	store "github.com/onair-app/onair-server/internal/repository"
)

// Service owns the session table, the archive log, and the collaborator
// clients.
type Service struct {
	sessions  store.SessionStore
	archive   store.ArchiveStore
	llmClient llm.Client
	synth     tts.Synthesizer
	config    *config.Config

	// provider credential state, swappable at runtime via SetKey
	mu    sync.RWMutex
	key   string
	model string
}

// New creates the service. A key present in the config fixes the provider
// immediately, matching boot-time behavior.
func New(sessions store.SessionStore, archive store.ArchiveStore, llmClient llm.Client, synth tts.Synthesizer, cfg *config.Config) *Service {
	s := &Service{
		sessions:  sessions,
		archive:   archive,
		llmClient: llmClient,
		synth:     synth,
		config:    cfg,
	}
	if cfg.GeminiAPIKey != "" {
		s.key = cfg.GeminiAPIKey
		s.model = cfg.GeminiModel
	}
	return s
}

// credentials returns the current key and model under the read lock.
func (s *Service) credentials() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key, s.model
}
