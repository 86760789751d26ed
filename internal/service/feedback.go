package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/onair-app/onair-server/internal/adapter/llm"
	"github.com/onair-app/onair-server/internal/domain"
)

const feedbackSystemPrompt = `당신은 'ON:AIR' 콜포비아/채팅 연습 서비스의 대화 분석 AI입니다.
주어진 '상담원'(AI)과 '사용자'(훈련자) 간의 대화 내용을 분석하여,
사용자의 대화 수행 능력을 평가하고 조언을 제공해야 합니다.
평가 항목:
1.  **자연스러움**: 대화의 흐름이 자연스러웠는가?
2.  **목표 달성**: 사용자가 원래 의도했던 목표(예: 교환 문의, 예약)를 명확하게 전달하고 달성했는가?
3.  **개선점**: 더 나은 대화를 위해 사용자가 보완할 점은 무엇인가? (예: 정보 전달 순서, 명확성 등)
분석 후, 다음 JSON 형식에 맞춰서만 응답해 주세요.
피드백은 2~3문장으로 간결하고 친절하게 작성합니다.
{
  "feedback": "대화에 대한 종합적인 피드백 (자연스러움, 목표 달성 여부, 핵심 개선점 1가지 포함)",
  "score": 1에서 5 사이의 정수 (별점 5점 만점).
}`

// Feedback evaluates a completed transcript. Missing session or empty
// transcript are caller errors; collaborator failures degrade to a
// diagnostic summary with score 0 and never surface as errors.
func (s *Service) Feedback(ctx context.Context, sessionID, overrideKey string) (*domain.Feedback, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	session.Mu.Lock()
	messages := make([]domain.Turn, len(session.Messages))
	copy(messages, session.Messages)
	session.Mu.Unlock()

	if len(messages) == 0 {
		return nil, domain.ErrEmptyTranscript
	}

	key := overrideKey
	if key == "" {
		key, _ = s.credentials()
	}

	userPrompt := fmt.Sprintf(
		"다음은 사용자와 상담원 AI 간의 대화록입니다. 이 대화를 분석하여 JSON 형식으로 피드백을 제공해 주세요:\n\n%s",
		renderTranscript(messages),
	)

	text, err := s.llmClient.Generate(ctx, &llm.GenerateRequest{
		APIKey:       key,
		System:       feedbackSystemPrompt,
		Messages:     []domain.Turn{{Role: domain.SpeakerUser, Text: userPrompt}},
		Temperature:  0.5,
		TopP:         0.9,
		MaxTokens:    4096,
		JSONResponse: true,
	})
	if err != nil {
		log.Printf("WARN: feedback generation failed for session %s: %v", sessionID, err)
		return &domain.Feedback{Text: fmt.Sprintf("오류 발생: %v", err), Score: 0}, nil
	}

	var fb domain.Feedback
	if err := sonic.Unmarshal([]byte(text), &fb); err != nil {
		log.Printf("WARN: feedback response is not valid JSON for session %s: %v", sessionID, err)
		return &domain.Feedback{Text: fmt.Sprintf("오류 발생: %v", err), Score: 0}, nil
	}

	if fb.Score < 0 {
		fb.Score = 0
	} else if fb.Score > 5 {
		fb.Score = 5
	}
	return &fb, nil
}

// renderTranscript produces the speaker-labeled plain-text log the analysis
// prompt operates on. The leading AI turn is the counterpart's opening.
func renderTranscript(messages []domain.Turn) string {
	var b strings.Builder
	for _, m := range messages {
		label := "사용자"
		if m.Role == domain.SpeakerAI {
			label = "상담원"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, m.Text)
	}
	return b.String()
}
