package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/avelys/blockplan/core/capacity"
	"github.com/avelys/blockplan/core/planner"
)

func sampleResult() planner.PlanResult {
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	return planner.PlanResult{
		Proposals: []planner.BlockProposal{{
			ID:              "id-1",
			ItemID:          "a",
			ItemTitle:       "Draft report",
			Lane:            "deep",
			Start:           start,
			End:             start.Add(time.Hour),
			DurationMinutes: 60,
			Confidence:      0.72,
			Reason:          "priority 0.72 (due today)",
		}},
		Infeasible: []planner.InfeasibilityRecord{{
			ItemID:  "b",
			Title:   "Review deck",
			Reason:  planner.ReasonNoSlot,
			Options: planner.RemediationMenu(),
		}},
		AECByDate: map[string]capacity.AECReport{
			"2026-03-09": {SEWMinutes: 630, MeetingMinutes: 80, AECMinutes: 550, EventCount: 1},
		},
	}
}

func TestWriteResultJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResultJSON(&buf, sampleResult()); err != nil {
		t.Fatalf("write: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"proposals", "infeasible", "aec_by_date"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if !strings.Contains(buf.String(), "No available slot within horizon") {
		t.Errorf("infeasibility reason missing from output")
	}
}

func TestWriteProposalsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteProposalsCSV(&buf, sampleResult().Proposals); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "item_id,") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "Draft report") {
		t.Errorf("row missing title: %s", lines[1])
	}
}

func TestWriteAECCSV_SortedByDate(t *testing.T) {
	reports := map[string]capacity.AECReport{
		"2026-03-11": {AECMinutes: 600},
		"2026-03-09": {AECMinutes: 550},
		"2026-03-10": {AECMinutes: 630},
	}
	var buf bytes.Buffer
	if err := WriteAECCSV(&buf, reports); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "2026-03-09") || !strings.HasPrefix(lines[3], "2026-03-11") {
		t.Errorf("rows not sorted by date: %v", lines[1:])
	}
}
