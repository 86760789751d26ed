package dialog

import "github.com/onair-app/onair-server/internal/domain"

// MaxContextTurns bounds how many exchange rounds are kept when building
// model context; each round is two messages.
const MaxContextTurns = 8

// Window trims a message history for model consumption. With keepOpening,
// an AI-authored first message is always retained ahead of the last
// 2*MaxContextTurns messages of the remainder. The input is never mutated.
func Window(msgs []domain.Turn, keepOpening bool) []domain.Turn {
	limit := MaxContextTurns * 2

	if keepOpening && len(msgs) > 0 && msgs[0].Role == domain.SpeakerAI {
		rest := msgs[1:]
		if len(rest) > limit {
			rest = rest[len(rest)-limit:]
		}
		out := make([]domain.Turn, 0, 1+len(rest))
		out = append(out, msgs[0])
		return append(out, rest...)
	}

	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]domain.Turn, len(msgs))
	copy(out, msgs)
	return out
}
