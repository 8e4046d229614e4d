package planner

import (
	"reflect"
	"testing"
	"time"

	"github.com/avelys/blockplan/core/capacity"
	"github.com/avelys/blockplan/core/model"
	"github.com/avelys/blockplan/core/scoring"
)

var passNow = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

// testProposer uses a zero-buffer calculator so slot math in the tests stays
// exact.
func testProposer(lanes []model.Lane) *Proposer {
	calc := capacity.Calculator{Windows: capacity.DefaultWindowSet(), Location: time.UTC}
	p := New(scoring.NewScorer(), calc, lanes, nil)
	p.Now = func() time.Time { return passNow }
	return p
}

func tp(t time.Time) *time.Time { return &t }

func dayEvent(d, startH, startM, endH, endM int) model.CalendarEvent {
	return model.CalendarEvent{
		ID:    "e",
		Start: time.Date(2026, 3, d, startH, startM, 0, 0, time.UTC),
		End:   time.Date(2026, 3, d, endH, endM, 0, 0, time.UTC),
	}
}

func TestProposeBlocks_ContestedSlotGoesToHigherPriority(t *testing.T) {
	lanes := []model.Lane{{
		ID:             "deep",
		Budget:         model.CapacityBudget{DailyMinutes: 300},
		BlockTemplates: []int{90},
	}}
	p := testProposer(lanes)

	// Day 1 has exactly one 90-minute gap between the meetings.
	events := []model.CalendarEvent{
		dayEvent(9, 10, 0, 14, 0),
		dayEvent(9, 15, 30, 20, 30),
	}
	items := []model.WorkItem{
		{ID: "low", Title: "Low", Lane: "deep", Urgency: model.LevelLow},
		{ID: "high", Title: "High", Lane: "deep", Urgency: model.LevelCritical, Due: tp(passNow.Add(8 * time.Hour))},
	}

	res := p.ProposeBlocks(items, events, 1)
	if len(res.Proposals) != 1 {
		t.Fatalf("expected one proposal, got %d", len(res.Proposals))
	}
	prop := res.Proposals[0]
	if prop.ItemID != "high" {
		t.Errorf("slot went to %s, want high", prop.ItemID)
	}
	wantStart := time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)
	if !prop.Start.Equal(wantStart) {
		t.Errorf("proposal starts %v, want %v", prop.Start, wantStart)
	}
	if prop.DurationMinutes != 90 {
		t.Errorf("duration = %d, want 90", prop.DurationMinutes)
	}

	if len(res.Infeasible) != 1 {
		t.Fatalf("expected one infeasible item, got %d", len(res.Infeasible))
	}
	inf := res.Infeasible[0]
	if inf.ItemID != "low" {
		t.Errorf("infeasible item = %s, want low", inf.ItemID)
	}
	if inf.Reason != ReasonNoSlot {
		t.Errorf("reason = %q, want %q", inf.Reason, ReasonNoSlot)
	}
	if !reflect.DeepEqual(inf.Options, RemediationMenu()) {
		t.Errorf("options = %v, want full remediation menu", inf.Options)
	}
}

func TestProposeBlocks_Deterministic(t *testing.T) {
	lanes := []model.Lane{{
		ID:             "deep",
		Budget:         model.CapacityBudget{DailyMinutes: 480},
		BlockTemplates: []int{30, 60, 90},
	}}
	events := []model.CalendarEvent{dayEvent(9, 11, 0, 12, 0), dayEvent(10, 14, 0, 16, 0)}
	items := []model.WorkItem{
		{ID: "a", Lane: "deep", Urgency: model.LevelHigh, Due: tp(passNow.AddDate(0, 0, 1))},
		{ID: "b", Lane: "deep", Urgency: model.LevelMedium},
		{ID: "c", Lane: "deep", Urgency: model.LevelLow, WaitingSince: tp(passNow.AddDate(0, 0, -6))},
	}

	first := testProposer(lanes).ProposeBlocks(items, events, 3)
	second := testProposer(lanes).ProposeBlocks(items, events, 3)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different outputs")
	}
}

func TestProposeBlocks_NoOverlappingProposals(t *testing.T) {
	lanes := []model.Lane{{
		ID:             "deep",
		Budget:         model.CapacityBudget{DailyMinutes: 480},
		BlockTemplates: []int{60},
	}}
	p := testProposer(lanes)
	items := make([]model.WorkItem, 5)
	for i := range items {
		items[i] = model.WorkItem{ID: string(rune('a' + i)), Lane: "deep", Urgency: model.LevelMedium}
	}

	res := p.ProposeBlocks(items, nil, 2)
	for i, a := range res.Proposals {
		for j, b := range res.Proposals {
			if i >= j {
				continue
			}
			sameDay := a.Start.Format(DateKey) == b.Start.Format(DateKey)
			if sameDay && a.Start.Before(b.End) && b.Start.Before(a.End) {
				t.Errorf("proposals %d and %d overlap: [%v,%v) vs [%v,%v)", i, j, a.Start, a.End, b.Start, b.End)
			}
		}
	}
}

func TestProposeBlocks_StableTieBreakKeepsInputOrder(t *testing.T) {
	lanes := []model.Lane{{
		ID:             "deep",
		Budget:         model.CapacityBudget{DailyMinutes: 480},
		BlockTemplates: []int{60},
	}}
	p := testProposer(lanes)
	items := []model.WorkItem{
		{ID: "first", Lane: "deep", Urgency: model.LevelMedium},
		{ID: "second", Lane: "deep", Urgency: model.LevelMedium},
	}

	res := p.ProposeBlocks(items, nil, 1)
	if len(res.Proposals) != 2 {
		t.Fatalf("expected both items placed, got %d", len(res.Proposals))
	}
	if res.Proposals[0].ItemID != "first" {
		t.Errorf("equal-score items reordered: got %s first", res.Proposals[0].ItemID)
	}
	if !res.Proposals[0].End.Equal(res.Proposals[1].Start) {
		t.Errorf("second block should start where the first ends: %v vs %v",
			res.Proposals[0].End, res.Proposals[1].Start)
	}
}

func TestProposeBlocks_MaxBlocksPerDaySpillsOver(t *testing.T) {
	lanes := []model.Lane{{
		ID:             "deep",
		Budget:         model.CapacityBudget{DailyMinutes: 480},
		BlockTemplates: []int{60},
	}}
	p := testProposer(lanes)
	p.MaxBlocksPerDay = 2
	items := []model.WorkItem{
		{ID: "a", Lane: "deep", Urgency: model.LevelMedium},
		{ID: "b", Lane: "deep", Urgency: model.LevelMedium},
		{ID: "c", Lane: "deep", Urgency: model.LevelMedium},
	}

	res := p.ProposeBlocks(items, nil, 2)
	if len(res.Proposals) != 3 {
		t.Fatalf("expected three proposals, got %d", len(res.Proposals))
	}
	byDay := map[string]int{}
	for _, prop := range res.Proposals {
		byDay[prop.Start.Format(DateKey)]++
	}
	if byDay["2026-03-09"] != 2 {
		t.Errorf("day one blocks = %d, want 2", byDay["2026-03-09"])
	}
	if byDay["2026-03-10"] != 1 {
		t.Errorf("day two blocks = %d, want 1 spillover", byDay["2026-03-10"])
	}
}

func TestProposeBlocks_UnknownLaneFallsBack(t *testing.T) {
	p := testProposer(nil)
	items := []model.WorkItem{{ID: "x", Lane: "nowhere", Urgency: model.LevelMedium}}

	res := p.ProposeBlocks(items, nil, 1)
	if len(res.Proposals) != 1 {
		t.Fatalf("expected the item placed via the default menu, got %d proposals", len(res.Proposals))
	}
	// Longest default template wins on an open day.
	if res.Proposals[0].DurationMinutes != 90 {
		t.Errorf("duration = %d, want 90", res.Proposals[0].DurationMinutes)
	}
}

func TestProposeBlocks_LongestTemplateThatFits(t *testing.T) {
	lanes := []model.Lane{{
		ID:             "deep",
		Budget:         model.CapacityBudget{DailyMinutes: 480},
		BlockTemplates: []int{30, 60, 90},
	}}
	p := testProposer(lanes)
	// Only a 75-minute gap: 90 does not fit, 60 must win over 30.
	events := []model.CalendarEvent{
		dayEvent(9, 10, 0, 12, 0),
		dayEvent(9, 13, 15, 20, 30),
	}
	items := []model.WorkItem{{ID: "x", Lane: "deep", Urgency: model.LevelMedium}}

	res := p.ProposeBlocks(items, events, 1)
	if len(res.Proposals) != 1 {
		t.Fatalf("expected one proposal, got %d", len(res.Proposals))
	}
	if res.Proposals[0].DurationMinutes != 60 {
		t.Errorf("duration = %d, want 60", res.Proposals[0].DurationMinutes)
	}
}

func TestProposeBlocks_AECReportPerHorizonDay(t *testing.T) {
	p := testProposer(nil)
	res := p.ProposeBlocks(nil, nil, 3)
	if len(res.AECByDate) != 3 {
		t.Fatalf("expected 3 capacity reports, got %d", len(res.AECByDate))
	}
	for _, key := range []string{"2026-03-09", "2026-03-10", "2026-03-11"} {
		if _, ok := res.AECByDate[key]; !ok {
			t.Errorf("missing capacity report for %s", key)
		}
	}
}

func TestProposeBlocks_EachItemExactlyOnce(t *testing.T) {
	lanes := []model.Lane{{
		ID:             "deep",
		Budget:         model.CapacityBudget{DailyMinutes: 120},
		BlockTemplates: []int{90},
	}}
	p := testProposer(lanes)
	events := []model.CalendarEvent{
		dayEvent(9, 10, 0, 14, 0),
		dayEvent(9, 15, 30, 20, 30),
	}
	items := []model.WorkItem{
		{ID: "a", Lane: "deep", Urgency: model.LevelHigh},
		{ID: "b", Lane: "deep", Urgency: model.LevelMedium},
		{ID: "c", Lane: "deep", Urgency: model.LevelLow},
	}

	res := p.ProposeBlocks(items, events, 1)
	seen := map[string]int{}
	for _, prop := range res.Proposals {
		seen[prop.ItemID]++
	}
	for _, inf := range res.Infeasible {
		seen[inf.ItemID]++
	}
	for _, it := range items {
		if seen[it.ID] != 1 {
			t.Errorf("item %s appeared %d times across proposals+infeasible, want exactly 1", it.ID, seen[it.ID])
		}
	}
}
