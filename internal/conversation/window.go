package conversation

import (
	"strings"

	"github.com/cloudwego/eino/schema"
)

// MaxTurns is the fixed size of the sliding context window handed to the
// fallback model. Older turns are evicted FIFO; the window never grows past
// this.
const MaxTurns = 10

// Window is a bounded, ordered buffer of conversation turns. It is not safe
// for concurrent use on its own; the session store serializes access per
// session.
type Window struct {
	turns []*schema.Message
	max   int
}

// NewWindow returns an empty window bounded at MaxTurns.
func NewWindow() *Window {
	return &Window{max: MaxTurns}
}

// PushUser appends a user turn, evicting the oldest turn on overflow.
func (w *Window) PushUser(text string) {
	w.push(schema.UserMessage(text))
}

// PushAssistant appends a bot turn, evicting the oldest turn on overflow.
func (w *Window) PushAssistant(text string) {
	w.push(schema.AssistantMessage(text, nil))
}

func (w *Window) push(msg *schema.Message) {
	w.turns = append(w.turns, msg)
	if len(w.turns) > w.max {
		w.turns = w.turns[len(w.turns)-w.max:]
	}
}

// Len returns the number of turns currently held.
func (w *Window) Len() int {
	return len(w.turns)
}

// Snapshot returns an ordered copy of the current turns, safe to hand to the
// fallback client while the session keeps mutating.
func (w *Window) Snapshot() []*schema.Message {
	out := make([]*schema.Message, len(w.turns))
	copy(out, w.turns)
	return out
}

// Transcript renders messages as a readable transcript, one turn per line.
// Used when archiving completed conversations.
func Transcript(messages []*schema.Message) string {
	var b strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case schema.User:
			b.WriteString("user: " + msg.Content + "\n")
		case schema.Assistant:
			b.WriteString("assistant: " + msg.Content + "\n")
		}
	}
	return b.String()
}
