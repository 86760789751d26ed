package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/onair-app/onair-server/internal/dialog"
	"github.com/onair-app/onair-server/internal/domain"
	"github.com/onair-app/onair-server/internal/scenario"
)

// Start allocates a new session and returns the AI counterpart's opening.
func (s *Service) Start(ctx context.Context, req *domain.StartRequest, modality domain.Modality) *domain.StartResponse {
	topic := req.Topic
	if topic == "" {
		if modality == domain.ModalityCall {
			topic = "전화 훈련"
		} else {
			topic = "채팅 훈련"
		}
	}

	scenarioID := req.Scenario
	if scenarioID == "" {
		scenarioID = scenario.DefaultScenario
	}

	userRole := req.UserRole
	if userRole == "" {
		userRole = domain.RoleCustomer
	}
	aiRole := userRole.Complement()

	maxRounds := req.Rounds
	if maxRounds <= 0 {
		maxRounds = s.config.MaxRounds
	}

	opening := scenario.Opening(scenarioID, aiRole)

	session := &domain.Session{
		SessionID: uuid.New().String(),
		Topic:     topic,
		Scenario:  scenarioID,
		UserRole:  userRole,
		AIRole:    aiRole,
		Modality:  modality,
		Messages:  []domain.Turn{{Role: domain.SpeakerAI, Text: opening}},
		MaxRounds: maxRounds,
	}
	s.sessions.Put(session)

	return &domain.StartResponse{
		SessionID: session.SessionID,
		Opening:   opening,
		AIRole:    aiRole,
	}
}

// Submit appends one trainee turn and produces the AI reply, or the ended
// signal on the terminating round. Termination is checked before any reply
// is generated, so a session sees exactly MaxRounds submissions no matter
// whether the model is reachable.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (*domain.SendResult, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	if session.Ended {
		return nil, domain.ErrSessionEnded
	}

	session.Messages = append(session.Messages, domain.Turn{Role: domain.SpeakerUser, Text: text})
	session.Rounds++

	if session.Rounds >= session.MaxRounds {
		session.Ended = true
		entry := &domain.ArchiveEntry{
			ID:        time.Now().UnixMilli(),
			SessionID: session.SessionID,
			Topic:     session.Topic,
			Messages:  dialog.Window(session.Messages, true),
			Rounds:    session.Rounds,
			Modality:  session.Modality,
		}
		if err := s.archive.Insert(ctx, entry); err != nil {
			log.Printf("WARN: failed to archive session %s: %v", session.SessionID, err)
		}
		return &domain.SendResult{Rounds: session.Rounds, Ended: true}, nil
	}

	reply, ok := s.modelReply(ctx, session)
	if !ok {
		reply, session.TurnCount = dialog.NextPrompt(&session.Slots, session.TurnCount, text)
	}

	session.Messages = append(session.Messages, domain.Turn{Role: domain.SpeakerAI, Text: reply})
	return &domain.SendResult{Reply: reply, Rounds: session.Rounds, Ended: false}, nil
}

// ArchiveLog returns completed-session snapshots, most recent first.
func (s *Service) ArchiveLog(ctx context.Context) ([]domain.ArchiveEntry, error) {
	return s.archive.List(ctx)
}
