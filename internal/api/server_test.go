package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g4brie11e/chatbot-backend/internal/chatbot"
	"github.com/g4brie11e/chatbot-backend/internal/config"
	"github.com/g4brie11e/chatbot-backend/internal/engine"
	"github.com/g4brie11e/chatbot-backend/internal/metrics"
	"github.com/g4brie11e/chatbot-backend/internal/session"
	"github.com/g4brie11e/chatbot-backend/internal/storage"
)

type noopReports struct{}

func (noopReports) Request(lead storage.Lead) string {
	return "/reports/" + lead.SessionID + ".pdf"
}

// fakeTranscripts serves canned transcripts and an injectable health error.
type fakeTranscripts struct {
	transcripts map[string][]*schema.Message
	healthErr   error
}

func (f *fakeTranscripts) Load(_ context.Context, sessionID string) ([]*schema.Message, error) {
	return f.transcripts[sessionID], nil
}

func (f *fakeTranscripts) HealthCheck(context.Context) error {
	return f.healthErr
}

const testAdminKey = "secret123"

func newTestServer(t *testing.T) *Server {
	return newTestServerWith(t, nil)
}

func newTestServerWith(t *testing.T, transcripts TranscriptStore) *Server {
	t.Helper()

	leads, err := storage.NewLeadLog(filepath.Join(t.TempDir(), "leads.jsonl"))
	require.NoError(t, err)

	registry := metrics.NewRegistry()
	eng := engine.New(
		chatbot.NewClassifier(nil),
		session.NewStore(time.Hour),
		registry,
		nil, // no fallback model in tests
		leads,
		noopReports{},
		nil,
	)

	cfg := config.ServerConfig{
		AdminKey:  testAdminKey,
		StaticDir: t.TempDir(),
	}
	return NewServer(cfg, eng, leads, registry, transcripts)
}

func postChat(t *testing.T, srv *Server, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := sonic.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestChatGeneratesSessionID(t *testing.T) {
	srv := newTestServer(t)

	rec := postChat(t, srv, ChatRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var reply engine.Reply
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &reply))
	assert.NotEmpty(t, reply.SessionID)
	assert.Equal(t, chatbot.Reply(chatbot.English, "reply.greeting"), reply.Text)
}

func TestChatKeepsSessionID(t *testing.T) {
	srv := newTestServer(t)

	rec := postChat(t, srv, ChatRequest{SessionID: "my-session", Message: "I need a website"})
	require.Equal(t, http.StatusOK, rec.Code)

	var reply engine.Reply
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "my-session", reply.SessionID)
	assert.Equal(t, chatbot.Reply(chatbot.English, "reply.ask_name"), reply.Text)
}

func TestChatReplacesUnsafeSessionID(t *testing.T) {
	srv := newTestServer(t)

	// Session ids become report file names; anything that could touch the
	// filesystem outside the report dir gets a server-generated id.
	for _, id := range []string{
		"../../escaped",
		"a/b",
		"has spaces",
		"dot.dot",
		strings.Repeat("x", 65),
	} {
		rec := postChat(t, srv, ChatRequest{SessionID: id, Message: "hello"})
		require.Equal(t, http.StatusOK, rec.Code)

		var reply engine.Reply
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &reply))
		assert.NotEqual(t, id, reply.SessionID)
		assert.Regexp(t, `^[A-Za-z0-9_-]+$`, reply.SessionID)
	}
}

func TestChatRejectsBadJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Error)
}

func TestAdminRoutesRequireKey(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/admin/leads", "/admin/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)

		req = httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("x-admin-key", "wrong")
		rec = httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)

		req = httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("x-admin-key", testAdminKey)
		rec = httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAdminLeadsAfterCompletedFlow(t *testing.T) {
	srv := newTestServer(t)
	const id = "flow-session"

	for _, msg := range []string{"I need a website", "Carol", "carol@example.com", "3000"} {
		rec := postChat(t, srv, ChatRequest{SessionID: id, Message: msg})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	req.Header.Set("x-admin-key", testAdminKey)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var leads []storage.Lead
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "Carol", leads[0].Name)
	assert.Equal(t, "carol@example.com", leads[0].Email)
	assert.Equal(t, id, leads[0].SessionID)
}

func TestAdminMetrics(t *testing.T) {
	srv := newTestServer(t)
	postChat(t, srv, ChatRequest{SessionID: "m", Message: "hello"})

	req := httptest.NewRequest(http.MethodGet, "/admin/metrics", nil)
	req.Header.Set("x-admin-key", testAdminKey)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var data metrics.Data
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &data))
	assert.Equal(t, uint64(1), data.IntentUsage["greeting"])
}

func TestAdminTranscript(t *testing.T) {
	store := &fakeTranscripts{transcripts: map[string][]*schema.Message{
		"done-session": {
			schema.UserMessage("hello"),
			schema.AssistantMessage("hi!", nil),
		},
	}}
	srv := newTestServerWith(t, store)

	// Same key gate as the other admin routes.
	req := httptest.NewRequest(http.MethodGet, "/admin/transcripts/done-session", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/transcripts/done-session", nil)
	req.Header.Set("x-admin-key", testAdminKey)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TranscriptResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "done-session", resp.SessionID)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "hello", resp.Messages[0].Content)

	req = httptest.NewRequest(http.MethodGet, "/admin/transcripts/nobody", nil)
	req.Header.Set("x-admin-key", testAdminKey)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminTranscriptWithoutArchive(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/transcripts/any", nil)
	req.Header.Set("x-admin-key", testAdminKey)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthDegradedWhenArchiveDown(t *testing.T) {
	srv := newTestServerWith(t, &fakeTranscripts{healthErr: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	panicky := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := chain(panicky, recoveryMiddleware)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
