// Package engine composes the conversation core: per message it detects the
// language, classifies the intent, advances the state machine or calls the
// LLM fallback, mutates the session and returns the reply.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"github.com/g4brie11e/chatbot-backend/internal/chatbot"
	"github.com/g4brie11e/chatbot-backend/internal/metrics"
	"github.com/g4brie11e/chatbot-backend/internal/session"
	"github.com/g4brie11e/chatbot-backend/internal/storage"
)

// Fallback answers messages the classifier could not place. Implemented by
// llm.Client; mocked in tests.
type Fallback interface {
	Complete(ctx context.Context, history []*schema.Message, message string, lang chatbot.Language) (string, error)
}

// LeadSink persists completed leads. Implemented by storage.LeadLog.
type LeadSink interface {
	Append(ctx context.Context, lead storage.Lead) error
}

// ReportScheduler enqueues report rendering and returns the report URL.
// Implemented by report.Generator.
type ReportScheduler interface {
	Request(lead storage.Lead) string
}

// Archiver stores completed conversation transcripts. Implemented by
// storage.RedisArchive; nil disables archiving.
type Archiver interface {
	Archive(ctx context.Context, sessionID string, messages []*schema.Message) error
}

// Reply is what the caller gets back for one inbound message.
type Reply struct {
	SessionID string `json:"session_id"`
	Text      string `json:"reply"`
	ReportURL string `json:"report_url,omitempty"`
}

// Engine is safe for concurrent use: calls for different session ids run in
// parallel, calls for the same id are serialized by the session store.
type Engine struct {
	classifier *chatbot.Classifier
	store      *session.Store
	metrics    *metrics.Registry
	fallback   Fallback
	leads      LeadSink
	reports    ReportScheduler
	archive    Archiver
}

func New(classifier *chatbot.Classifier, store *session.Store, registry *metrics.Registry,
	fallback Fallback, leads LeadSink, reports ReportScheduler, archive Archiver) *Engine {
	return &Engine{
		classifier: classifier,
		store:      store,
		metrics:    registry,
		fallback:   fallback,
		leads:      leads,
		reports:    reports,
		archive:    archive,
	}
}

// HandleMessage processes one inbound message for the session. Every failure
// is recovered into a user-facing reply; nothing here is fatal.
func (e *Engine) HandleMessage(ctx context.Context, sessionID, text string) Reply {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		lang := chatbot.English
		e.store.With(sessionID, func(s *session.Session) {
			if s.Language != "" {
				lang = s.Language
			}
		})
		return Reply{SessionID: sessionID, Text: chatbot.Reply(lang, "reply.empty")}
	}

	var (
		tr         chatbot.Transition
		lang       chatbot.Language
		history    []*schema.Message
		lead       *storage.Lead
		transcript []*schema.Message
	)

	e.store.With(sessionID, func(s *session.Session) {
		// Language is sticky: only an unset session language is overwritten.
		if s.Language == "" {
			if detected, ok := chatbot.DetectLanguage(trimmed); ok {
				s.Language = detected
			}
		}
		lang = s.Language
		if lang == "" {
			lang = chatbot.English
		}

		intent := e.classifier.Classify(trimmed, lang)
		s.Topics = chatbot.MergeTopics(s.Topics, chatbot.ExtractTopics(trimmed))

		tr = chatbot.Advance(s.State, intent, trimmed, lang, s.Slots)
		s.State = tr.State
		s.Slots = tr.Slots

		history = s.Window.Snapshot()
		s.Window.PushUser(trimmed)
		if !tr.Fallback {
			s.Window.PushAssistant(tr.Reply)
		}

		if tr.EmitLead {
			lead = &storage.Lead{
				SessionID: s.ID,
				Name:      tr.Slots.Name,
				Email:     tr.Slots.Email,
				Budget:    tr.Slots.Budget,
				Language:  lang,
				Topics:    append([]string(nil), s.Topics...),
				CreatedAt: time.Now(),
			}
			transcript = s.Window.Snapshot()
		}
	})

	e.metrics.RecordIntent(tr.Intent)
	e.metrics.RecordLanguage(lang)

	replyText := tr.Reply
	if tr.Fallback {
		replyText = e.completeFallback(ctx, sessionID, history, trimmed, lang)
	}

	reply := Reply{SessionID: sessionID, Text: replyText}
	if lead != nil {
		reply = e.finishLead(ctx, reply, *lead, transcript, lang)
	}
	return reply
}

// completeFallback runs the LLM call outside the session lock and applies
// the bot turn only if the session still exists (a sweep may have removed it
// while the call was in flight).
func (e *Engine) completeFallback(ctx context.Context, sessionID string, history []*schema.Message, message string, lang chatbot.Language) string {
	replyText := chatbot.Reply(lang, "reply.apology")

	if e.fallback == nil {
		log.Debug().Str("session_id", sessionID).Msg("no fallback model configured")
	} else if text, err := e.fallback.Complete(ctx, history, message, lang); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("fallback call failed")
	} else {
		replyText = text
	}

	if !e.store.WithExisting(sessionID, func(s *session.Session) {
		s.Window.PushAssistant(replyText)
	}) {
		log.Debug().Str("session_id", sessionID).Msg("session gone before fallback reply, turn dropped")
	}
	return replyText
}

// finishLead persists the lead, schedules the report and decorates the
// reply. A persistence failure degrades to a soft warning; the conversation
// still completes.
func (e *Engine) finishLead(ctx context.Context, reply Reply, lead storage.Lead, transcript []*schema.Message, lang chatbot.Language) Reply {
	reply.ReportURL = e.reports.Request(lead)
	reply.Text += " " + chatbot.Replyf(lang, "reply.report_ready", reply.ReportURL)

	if err := e.leads.Append(ctx, lead); err != nil {
		log.Error().Err(err).Str("session_id", lead.SessionID).Msg("failed to persist lead")
		reply.Text += " " + chatbot.Reply(lang, "warn.lead_save")
	}

	if e.archive != nil {
		go func() {
			archiveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := e.archive.Archive(archiveCtx, lead.SessionID, transcript); err != nil {
				log.Warn().Err(err).Str("session_id", lead.SessionID).Msg("transcript archive failed")
			}
		}()
	}

	log.Info().
		Str("session_id", lead.SessionID).
		Str("language", string(lead.Language)).
		Str("budget", lead.Budget).
		Msg("lead completed")
	return reply
}
