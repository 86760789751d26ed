package tts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSynthesize(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	c := NewGoogleClientWithBaseURL(server.URL, "ko")
	audio, err := c.Synthesize(context.Background(), "안녕하세요")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio: %q", audio)
	}
	if gotQuery == "" {
		t.Fatalf("expected query parameters")
	}

	req, _ := http.NewRequest(http.MethodGet, server.URL+"?"+gotQuery, nil)
	q := req.URL.Query()
	if q.Get("tl") != "ko" || q.Get("client") != "tw-ob" || q.Get("q") != "안녕하세요" {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
}

func TestSynthesizeHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewGoogleClientWithBaseURL(server.URL, "ko")
	if _, err := c.Synthesize(context.Background(), "hi"); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}
