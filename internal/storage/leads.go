// Package storage persists the business output of conversations: completed
// leads in an append-only log, and (optionally) full transcripts in Redis.
package storage

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/g4brie11e/chatbot-backend/internal/chatbot"
)

// Lead is the finalized record of a completed conversation. Created once,
// never mutated.
type Lead struct {
	SessionID string           `json:"session_id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Budget    string           `json:"budget"`
	Language  chatbot.Language `json:"language"`
	Topics    []string         `json:"topics,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// LeadLog appends leads to a JSONL file, one lead per line, in insertion
// order. Appends are serialized and synced to disk before they are
// acknowledged, so an acknowledged lead survives a process restart.
type LeadLog struct {
	mu   sync.Mutex
	path string
}

// NewLeadLog creates the log at path, creating parent directories as needed.
func NewLeadLog(path string) (*LeadLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create leads directory: %w", err)
		}
	}
	return &LeadLog{path: path}, nil
}

// Append writes lead to the log. One writer at a time; no interleaved
// partial writes.
func (l *LeadLog) Append(ctx context.Context, lead Lead) error {
	data, err := sonic.Marshal(lead)
	if err != nil {
		return fmt.Errorf("failed to marshal lead: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open leads log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append lead: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync leads log: %w", err)
	}
	return nil
}

// All returns every persisted lead in insertion order. A missing file means
// no leads yet.
func (l *LeadLog) All() ([]Lead, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Lead{}, nil
		}
		return nil, fmt.Errorf("failed to open leads log: %w", err)
	}
	defer f.Close()

	leads := []Lead{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var lead Lead
		if err := sonic.Unmarshal(line, &lead); err != nil {
			return nil, fmt.Errorf("failed to parse leads log: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leads log: %w", err)
	}
	return leads, nil
}
