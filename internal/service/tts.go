package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/onair-app/onair-server/internal/dialog"
)

// Synthesize turns final text into base64-encoded MP3 audio via the
// speech-synthesis collaborator.
func (s *Service) Synthesize(ctx context.Context, text string) (string, error) {
	audio, err := s.synth.Synthesize(ctx, dialog.CleanText(text))
	if err != nil {
		return "", fmt.Errorf("synthesis failed: %w", err)
	}
	return base64.StdEncoding.EncodeToString(audio), nil
}
