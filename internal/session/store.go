// Package session owns all live conversation state. Nothing outside this
// package holds a *Session; callers get scoped access through With and
// WithExisting, which serialize work per session id without serializing
// unrelated sessions against each other.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/g4brie11e/chatbot-backend/internal/chatbot"
	"github.com/g4brie11e/chatbot-backend/internal/conversation"
)

// Session is the per-conversation state: FSM position, sticky language,
// collected slots and topics, and the bounded context window.
type Session struct {
	ID         string
	State      chatbot.State
	Language   chatbot.Language // empty until first keyword match, then sticky
	Slots      chatbot.Slots
	Topics     []string
	Window     *conversation.Window
	CreatedAt  time.Time
	LastActive time.Time
}

func newSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		State:      chatbot.StateIdle,
		Window:     conversation.NewWindow(),
		CreatedAt:  now,
		LastActive: now,
	}
}

// entry pairs a session with its lock. gone marks entries removed by the
// sweeper so a goroutine that raced the removal can detect it.
type entry struct {
	mu   sync.Mutex
	gone bool
	sess *Session
}

// Store is a concurrency-safe registry of session id -> session. The
// store-wide lock only guards the map structure and is held momentarily;
// per-session work runs under the session's own lock.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
}

// NewStore creates a store whose sweeper removes sessions idle longer than
// ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
	}
}

// With runs fn with exclusive access to the session for id, creating the
// session if it does not exist (including when it was just swept: an expired
// id transparently restarts a fresh conversation). Two concurrent calls for
// the same id are serialized; calls for different ids are not.
func (s *Store) With(id string, fn func(*Session)) {
	for {
		e := s.lookupOrCreate(id)
		e.mu.Lock()
		if e.gone {
			e.mu.Unlock()
			continue
		}
		e.sess.LastActive = time.Now()
		fn(e.sess)
		e.mu.Unlock()
		return
	}
}

// WithExisting is With without the create: it runs fn only if the session
// still exists and reports whether it did. Used as the stale-write guard
// when applying a fallback result that arrived after the LLM call.
func (s *Store) WithExisting(id string, fn func(*Session)) bool {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return false
	}
	e.sess.LastActive = time.Now()
	fn(e.sess)
	return true
}

func (s *Store) lookupOrCreate(id string) *entry {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.sessions[id]; ok {
		return e
	}
	e = &entry{sess: newSession(id)}
	s.sessions[id] = e
	return e
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Remove deletes the session for id and reports whether it existed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return false
	}
	e.mu.Lock()
	e.gone = true
	e.mu.Unlock()
	delete(s.sessions, id)
	return true
}

// SweepIdle removes sessions inactive beyond the store TTL and returns how
// many were removed. A session whose lock is currently held by an in-flight
// request is skipped; it gets another chance next interval.
func (s *Store) SweepIdle() int {
	now := time.Now()
	removed := 0

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.sessions {
		if !e.mu.TryLock() {
			continue
		}
		if now.Sub(e.sess.LastActive) >= s.ttl {
			e.gone = true
			delete(s.sessions, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// Run sweeps on a fixed interval until ctx is cancelled. Meant to be started
// once as a background goroutine for the lifetime of the process.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.SweepIdle(); removed > 0 {
				log.Info().Int("removed", removed).Msg("purged expired sessions")
			}
		}
	}
}
