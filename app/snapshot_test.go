package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avelys/blockplan/core/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadItems_LenientFields(t *testing.T) {
	path := writeFile(t, "items.json", `[
  {
    "id": "a",
    "title": "Draft report",
    "lane": "deep",
    "urgency": "high",
    "due": "2026-03-09",
    "deadline_type": "hard",
    "sensitivity_flags": ["legal"],
    "stakeholder_tier": "important",
    "meeting_linked": true
  },
  {
    "id": "b",
    "urgency": "not-a-level",
    "due": "whenever"
  }
]`)
	items, err := LoadItems(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Due == nil {
		t.Errorf("bare date should parse")
	}
	if !items[0].HasFlag(model.FlagLegal) {
		t.Errorf("sensitivity flag lost")
	}
	// Malformed fields survive as-is or nil; the scorer handles them.
	if items[1].Due != nil {
		t.Errorf("unparseable due should map to nil, got %v", items[1].Due)
	}
	if items[1].Urgency != "not-a-level" {
		t.Errorf("urgency should pass through for the scorer's fallback")
	}
}

func TestLoadItems_BadJSON(t *testing.T) {
	path := writeFile(t, "items.json", "{not json")
	if _, err := LoadItems(path); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestLoadEvents(t *testing.T) {
	path := writeFile(t, "events.json", `[
  {
    "id": "e1",
    "summary": "Standup",
    "start": "2026-03-09T10:00:00Z",
    "end": "2026-03-09T10:30:00Z",
    "is_system_owned": false
  }
]`)
	events, err := LoadEvents(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Duration().Minutes() != 30 {
		t.Errorf("duration = %v, want 30m", events[0].Duration())
	}
}

func TestLoadEvents_RejectsBadTimes(t *testing.T) {
	path := writeFile(t, "events.json", `[{"id": "e1", "start": "soon", "end": "later"}]`)
	if _, err := LoadEvents(path); err == nil {
		t.Fatalf("expected error for unparseable event times")
	}
}
