package api

import (
	"io"
	"net/http"
	"regexp"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
)

// ChatRequest is the inbound chat payload. A blank session id starts a new
// conversation with a server-generated id.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// sessionIDPattern is the charset allowed for caller-supplied session ids.
// Ids end up as report file names, so anything outside it (path separators,
// dots, blanks) is replaced with a fresh id instead of reaching the
// filesystem.
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "failed to read request body")
		return
	}

	var req ChatRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "request body must be JSON with a message field")
		return
	}

	sessionID := req.SessionID
	if !sessionIDPattern.MatchString(sessionID) {
		sessionID = uuid.NewString()
	}

	reply := s.engine.HandleMessage(r.Context(), sessionID, req.Message)
	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := s.leads.All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to read leads")
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Snapshot())
}

// TranscriptResponse is the archived conversation for one session.
type TranscriptResponse struct {
	SessionID string            `json:"session_id"`
	Messages  []*schema.Message `json:"messages"`
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	if s.transcripts == nil {
		writeError(w, http.StatusNotFound, "not_found", "transcript archive is not configured")
		return
	}

	id := r.PathValue("id")
	messages, err := s.transcripts.Load(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to load transcript")
		return
	}
	if len(messages) == 0 {
		writeError(w, http.StatusNotFound, "not_found", "no transcript for this session")
		return
	}
	writeJSON(w, http.StatusOK, TranscriptResponse{SessionID: id, Messages: messages})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.transcripts != nil {
		if err := s.transcripts.HealthCheck(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "degraded", "transcript archive unreachable")
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
