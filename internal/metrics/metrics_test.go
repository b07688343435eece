package metrics

import (
	"sync"
	"testing"

	"github.com/g4brie11e/chatbot-backend/internal/chatbot"
)

func TestRecordAndSnapshot(t *testing.T) {
	r := NewRegistry()

	r.RecordIntent(chatbot.IntentGreeting)
	r.RecordIntent(chatbot.IntentGreeting)
	r.RecordIntent(chatbot.IntentUnknown)
	r.RecordLanguage(chatbot.Spanish)

	data := r.Snapshot()
	if data.IntentUsage["greeting"] != 2 {
		t.Errorf("greeting count = %d, want 2", data.IntentUsage["greeting"])
	}
	if data.IntentUsage["unknown"] != 1 {
		t.Errorf("unknown count = %d, want 1", data.IntentUsage["unknown"])
	}
	if data.LanguageUsage["es"] != 1 {
		t.Errorf("es count = %d, want 1", data.LanguageUsage["es"])
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	r := NewRegistry()
	r.RecordIntent(chatbot.IntentHelp)

	data := r.Snapshot()
	r.RecordIntent(chatbot.IntentHelp)

	if data.IntentUsage["help"] != 1 {
		t.Errorf("snapshot mutated by later recording: %d", data.IntentUsage["help"])
	}
}

func TestConcurrentRecording(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.RecordIntent(chatbot.IntentPricing)
				r.RecordLanguage(chatbot.English)
			}
		}()
	}
	wg.Wait()

	data := r.Snapshot()
	if data.IntentUsage["pricing"] != 800 {
		t.Errorf("pricing count = %d, want 800", data.IntentUsage["pricing"])
	}
	if data.LanguageUsage["en"] != 800 {
		t.Errorf("en count = %d, want 800", data.LanguageUsage["en"])
	}
}
