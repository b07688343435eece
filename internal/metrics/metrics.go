// Package metrics keeps process-wide usage counters, keyed by intent and by
// language. Counters only ever go up; they reset when the process restarts.
package metrics

import (
	"sync"

	"github.com/g4brie11e/chatbot-backend/internal/chatbot"
)

// Data is a point-in-time copy of the counters, shaped for the admin
// endpoint.
type Data struct {
	IntentUsage   map[string]uint64 `json:"intent_usage"`
	LanguageUsage map[string]uint64 `json:"language_usage"`
}

// Registry counts intent and language usage. Safe for concurrent writers
// from independent sessions.
type Registry struct {
	mu        sync.Mutex
	intents   map[string]uint64
	languages map[string]uint64
}

func NewRegistry() *Registry {
	return &Registry{
		intents:   make(map[string]uint64),
		languages: make(map[string]uint64),
	}
}

func (r *Registry) RecordIntent(intent chatbot.Intent) {
	r.mu.Lock()
	r.intents[string(intent)]++
	r.mu.Unlock()
}

func (r *Registry) RecordLanguage(lang chatbot.Language) {
	r.mu.Lock()
	r.languages[string(lang)]++
	r.mu.Unlock()
}

// Snapshot returns a copy of the counters; the registry keeps counting
// while the caller serializes it.
func (r *Registry) Snapshot() Data {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := Data{
		IntentUsage:   make(map[string]uint64, len(r.intents)),
		LanguageUsage: make(map[string]uint64, len(r.languages)),
	}
	for k, v := range r.intents {
		data.IntentUsage[k] = v
	}
	for k, v := range r.languages {
		data.LanguageUsage[k] = v
	}
	return data
}
