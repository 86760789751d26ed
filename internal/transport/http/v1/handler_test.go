package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onair-app/onair-server/internal/adapter/llm"
	"github.com/onair-app/onair-server/internal/config"
	"github.com/onair-app/onair-server/internal/domain"
	store "github.com/onair-app/onair-server/internal/repository"
	"github.com/onair-app/onair-server/internal/service"
)

type stubSynth struct {
	audio []byte
	err   error
}

func (s *stubSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return s.audio, s.err
}

func newTestHandler(t *testing.T, client llm.Client) *Handler {
	t.Helper()
	archive, err := store.NewSQLiteArchive(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { archive.Close() })

	cfg := &config.Config{
		GeminiModel: "gemini-2.5-flash",
		MaxRounds:   8,
	}
	svc := service.New(store.NewMemorySessionStore(), archive, client, &stubSynth{audio: []byte("mp3")}, cfg)
	return NewHandler(svc)
}

func doJSON(t *testing.T, e *echo.Echo, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestStartCallSession(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, llm.NewMockClient())

	rec := doJSON(t, e, h.StartSession(domain.ModalityCall), http.MethodPost,
		"/api/call/start", `{"scenario":"exchange","user_role":"customer"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, domain.RoleStaff, resp.AIRole)
	assert.Equal(t, "네, 교환 관련 상담 도와드리겠습니다. 상품명과 주문번호가 어떻게 되시나요?", resp.Opening)
}

func TestSendTurn(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &llm.MockClient{Reply: "네, 확인했습니다."})

	rec := doJSON(t, e, h.StartSession(domain.ModalityChat), http.MethodPost, "/api/chat/start", `{}`)
	var started domain.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))

	rec = doJSON(t, e, h.SendTurn, http.MethodPost, "/api/chat/send",
		`{"session_id":"`+started.SessionID+`","text":"교환하고 싶어요"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "네, 확인했습니다.", resp.Reply)
	assert.Equal(t, 1, resp.Rounds)
	assert.False(t, resp.Ended)
}

func TestSendTurnUnknownSession(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, llm.NewMockClient())

	rec := doJSON(t, e, h.SendTurn, http.MethodPost, "/api/call/send",
		`{"session_id":"no-such-id","text":"hi"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"session not found"}`, rec.Body.String())
}

func TestSendTurnEndedSession(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, llm.NewMockClient())

	rec := doJSON(t, e, h.StartSession(domain.ModalityCall), http.MethodPost, "/api/call/start", `{"rounds":1}`)
	var started domain.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))

	rec = doJSON(t, e, h.SendTurn, http.MethodPost, "/api/call/send",
		`{"session_id":"`+started.SessionID+`","text":"one"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Ended)
	assert.Equal(t, 1, resp.Rounds)
	assert.Empty(t, resp.Reply)

	rec = doJSON(t, e, h.SendTurn, http.MethodPost, "/api/call/send",
		`{"session_id":"`+started.SessionID+`","text":"two"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"session ended"}`, rec.Body.String())
}

func TestGetArchiveLog(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, llm.NewMockClient())

	rec := doJSON(t, e, h.StartSession(domain.ModalityCall), http.MethodPost, "/api/call/start", `{"rounds":1}`)
	var started domain.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))
	doJSON(t, e, h.SendTurn, http.MethodPost, "/api/call/send",
		`{"session_id":"`+started.SessionID+`","text":"마지막"}`)

	rec = doJSON(t, e, h.GetArchiveLog, http.MethodGet, "/api/logs", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var entries []domain.ArchiveEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, started.SessionID, entries[0].SessionID)
	assert.Equal(t, 1, entries[0].Rounds)
}

func TestGetFeedbackNotFound(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, llm.NewMockClient())

	req := httptest.NewRequest(http.MethodGet, "/api/feedback/no-such-id", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues("no-such-id")

	require.NoError(t, h.GetFeedback(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFeedback(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &llm.MockClient{Reply: `{"feedback": "좋았습니다.", "score": 5}`})

	rec := doJSON(t, e, h.StartSession(domain.ModalityCall), http.MethodPost, "/api/call/start", `{}`)
	var started domain.StartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &started))

	req := httptest.NewRequest(http.MethodGet, "/api/feedback/"+started.SessionID, nil)
	req.Header.Set("X-API-Key", "override-key")
	rec2 := httptest.NewRecorder()
	c := e.NewContext(req, rec2)
	c.SetParamNames("session_id")
	c.SetParamValues(started.SessionID)

	require.NoError(t, h.GetFeedback(c))
	assert.Equal(t, http.StatusOK, rec2.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "좋았습니다.", resp["feedback"])
	assert.Equal(t, float64(5), resp["score"])
}

func TestSetKeyEmpty(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, llm.NewMockClient())

	rec := doJSON(t, e, h.SetKey, http.MethodPost, "/api/key", `{"api_key":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"ok":false,"reason":"empty key"}`, rec.Body.String())
}

func TestSetKeyProbeFailure(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &llm.MockClient{Err: errors.New("invalid key")})

	rec := doJSON(t, e, h.SetKey, http.MethodPost, "/api/key", `{"api_key":"bad"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, "invalid key", resp["reason"])
}

func TestSetKeyAndStatus(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, llm.NewMockClient())

	rec := doJSON(t, e, h.GetStatus, http.MethodGet, "/api/status", "")
	var st domain.ProviderStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.False(t, st.OK)
	assert.False(t, st.GeminiSet)

	rec = doJSON(t, e, h.SetKey, http.MethodPost, "/api/key", `{"api_key":"test-key"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"provider":"gemini","model":"mock-gemini"}`, rec.Body.String())

	rec = doJSON(t, e, h.GetStatus, http.MethodGet, "/api/status", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.True(t, st.OK)
	assert.True(t, st.GeminiSet)
	assert.Equal(t, "gemini", st.Provider)
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, llm.NewMockClient())

	rec := doJSON(t, e, h.Health, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, false, resp["gemini_set"])
}

func TestSynthesizeEmptyText(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, llm.NewMockClient())

	rec := doJSON(t, e, h.Synthesize, http.MethodPost, "/api/tts", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"text required"}`, rec.Body.String())
}

func TestSynthesize(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, llm.NewMockClient())

	rec := doJSON(t, e, h.Synthesize, http.MethodPost, "/api/tts", `{"text":"안녕하세요"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mp3_base64":"bXAz"}`, rec.Body.String())
}
