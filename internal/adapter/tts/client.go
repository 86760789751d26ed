// Package tts provides the speech-synthesis collaborator client.
package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://translate.google.com/translate_tts"

// Synthesizer turns final text into encoded audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// GoogleClient synthesizes speech through the Google Translate TTS
// endpoint and returns MP3 bytes.
type GoogleClient struct {
	baseURL    string
	lang       string
	httpClient *http.Client
}

// NewGoogleClient creates a synthesizer for the given language.
func NewGoogleClient(lang string) *GoogleClient {
	return &GoogleClient{
		baseURL: defaultBaseURL,
		lang:    lang,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewGoogleClientWithBaseURL creates a synthesizer pointed at a custom
// endpoint. Used in tests.
func NewGoogleClientWithBaseURL(baseURL, lang string) *GoogleClient {
	c := NewGoogleClient(lang)
	c.baseURL = baseURL
	return c
}

var _ Synthesizer = (*GoogleClient)(nil)

// Synthesize requests MP3 audio for the text.
func (c *GoogleClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", c.lang)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts error [%d]", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	return audio, nil
}
