// Package api exposes the conversation engine over HTTP.
//
// Routes:
//
//	POST /chat                    - talk to the bot
//	GET  /admin/leads             - collected leads (x-admin-key)
//	GET  /admin/metrics           - intent/language counters (x-admin-key)
//	GET  /admin/transcripts/{id}  - archived transcript (x-admin-key)
//	GET  /health                  - liveness probe (503 when the archive is down)
//	GET  /...                     - static assets (reports included)
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"github.com/g4brie11e/chatbot-backend/internal/config"
	"github.com/g4brie11e/chatbot-backend/internal/engine"
	"github.com/g4brie11e/chatbot-backend/internal/metrics"
	"github.com/g4brie11e/chatbot-backend/internal/storage"
)

// TranscriptStore serves archived conversation transcripts. Implemented by
// storage.RedisArchive; nil means no archive is configured.
type TranscriptStore interface {
	Load(ctx context.Context, sessionID string) ([]*schema.Message, error)
	HealthCheck(ctx context.Context) error
}

const (
	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	ShutdownTimeout = 10 * time.Second

	// ReadHeaderTimeout bounds header reads to keep slow clients from
	// pinning connections.
	ReadHeaderTimeout = 10 * time.Second

	// WriteTimeout must leave room for a fallback LLM call.
	WriteTimeout = 60 * time.Second

	IdleTimeout = 120 * time.Second
)

// Server is the HTTP server for the chatbot backend.
type Server struct {
	mux         *http.ServeMux
	engine      *engine.Engine
	leads       *storage.LeadLog
	registry    *metrics.Registry
	transcripts TranscriptStore
	adminKey    string
}

// NewServer registers all routes and returns the server. transcripts may be
// nil when no archive is configured.
func NewServer(cfg config.ServerConfig, eng *engine.Engine, leads *storage.LeadLog, registry *metrics.Registry, transcripts TranscriptStore) *Server {
	s := &Server{
		mux:         http.NewServeMux(),
		engine:      eng,
		leads:       leads,
		registry:    registry,
		transcripts: transcripts,
		adminKey:    cfg.AdminKey,
	}

	s.mux.HandleFunc("POST /chat", s.handleChat)
	s.mux.Handle("GET /admin/leads", s.adminAuth(http.HandlerFunc(s.handleLeads)))
	s.mux.Handle("GET /admin/metrics", s.adminAuth(http.HandlerFunc(s.handleMetrics)))
	s.mux.Handle("GET /admin/transcripts/{id}", s.adminAuth(http.HandlerFunc(s.handleTranscript)))
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	return s
}

// Handler returns the HTTP handler with middleware applied.
// Middleware order: recovery -> logging -> handler.
func (s *Server) Handler() http.Handler {
	return chain(s.mux, recoveryMiddleware, loggingMiddleware)
}

// Run starts the server and blocks until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting HTTP server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
