package conversation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
)

func TestWindowBoundedFIFO(t *testing.T) {
	w := NewWindow()
	for i := 0; i < MaxTurns+5; i++ {
		w.PushUser(fmt.Sprintf("message %d", i))
	}

	if w.Len() != MaxTurns {
		t.Fatalf("Len = %d, want %d", w.Len(), MaxTurns)
	}

	turns := w.Snapshot()
	// Oldest five turns were evicted; the first survivor is message 5.
	if turns[0].Content != "message 5" {
		t.Errorf("oldest turn = %q, want %q", turns[0].Content, "message 5")
	}
	if last := turns[len(turns)-1].Content; last != fmt.Sprintf("message %d", MaxTurns+4) {
		t.Errorf("newest turn = %q", last)
	}
}

func TestWindowOrderAndRoles(t *testing.T) {
	w := NewWindow()
	w.PushUser("hello")
	w.PushAssistant("hi there")
	w.PushUser("how much?")

	turns := w.Snapshot()
	if len(turns) != 3 {
		t.Fatalf("Len = %d, want 3", len(turns))
	}
	if turns[0].Role != schema.User || turns[1].Role != schema.Assistant || turns[2].Role != schema.User {
		t.Errorf("roles out of order: %v %v %v", turns[0].Role, turns[1].Role, turns[2].Role)
	}
	if turns[1].Content != "hi there" {
		t.Errorf("turn content = %q", turns[1].Content)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	w := NewWindow()
	w.PushUser("first")

	snap := w.Snapshot()
	w.PushUser("second")

	if len(snap) != 1 {
		t.Errorf("snapshot grew with the window: len = %d", len(snap))
	}
}

func TestTranscript(t *testing.T) {
	w := NewWindow()
	w.PushUser("hello")
	w.PushAssistant("hi, how can I help?")

	got := Transcript(w.Snapshot())
	want := "user: hello\nassistant: hi, how can I help?\n"
	if got != want {
		t.Errorf("Transcript = %q, want %q", got, want)
	}

	if !strings.HasSuffix(got, "\n") {
		t.Error("Transcript should end with a newline")
	}
}
