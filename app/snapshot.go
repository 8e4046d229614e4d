package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/avelys/blockplan/core/model"
)

// itemDoc is the wire form of a work item as produced by the upstream
// intake. Fields are loosely typed; anything malformed maps to the zero
// value and the scorer's neutral defaults take over.
type itemDoc struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Lane          string   `json:"lane"`
	Urgency       string   `json:"urgency"`
	Impact        string   `json:"impact"`
	Due           string   `json:"due"`
	DeadlineType  string   `json:"deadline_type"`
	EffortMin     int      `json:"effort_min"`
	EffortMax     int      `json:"effort_max"`
	Sensitivity   []string `json:"sensitivity_flags"`
	Stakeholder   string   `json:"stakeholder_tier"`
	WaitingSince  string   `json:"waiting_since"`
	MeetingLinked bool     `json:"meeting_linked"`
	MeetingStart  string   `json:"meeting_start"`
}

type eventDoc struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Start       string `json:"start"`
	End         string `json:"end"`
	SystemOwned bool   `json:"is_system_owned"`
	DedupeKey   string `json:"dedupe_key"`
}

// LoadItems reads a work item snapshot from a JSON file.
func LoadItems(path string) ([]model.WorkItem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var docs []itemDoc
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, fmt.Errorf("items snapshot: %w", err)
	}
	items := make([]model.WorkItem, len(docs))
	for i, d := range docs {
		items[i] = d.toModel()
	}
	return items, nil
}

// LoadEvents reads a calendar snapshot from a JSON file. Events whose times
// cannot be parsed are rejected: the calendar sync owns their shape.
func LoadEvents(path string) ([]model.CalendarEvent, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var docs []eventDoc
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, fmt.Errorf("events snapshot: %w", err)
	}
	events := make([]model.CalendarEvent, len(docs))
	for i, d := range docs {
		start, err := time.Parse(time.RFC3339, d.Start)
		if err != nil {
			return nil, fmt.Errorf("event %s: start: %w", d.ID, err)
		}
		end, err := time.Parse(time.RFC3339, d.End)
		if err != nil {
			return nil, fmt.Errorf("event %s: end: %w", d.ID, err)
		}
		events[i] = model.CalendarEvent{
			ID:          d.ID,
			Summary:     d.Summary,
			Start:       start,
			End:         end,
			SystemOwned: d.SystemOwned,
			DedupeKey:   d.DedupeKey,
		}
	}
	return events, nil
}

func (d itemDoc) toModel() model.WorkItem {
	flags := make([]model.SensitivityFlag, len(d.Sensitivity))
	for i, f := range d.Sensitivity {
		flags[i] = model.SensitivityFlag(f)
	}
	return model.WorkItem{
		ID:            d.ID,
		Title:         d.Title,
		Lane:          d.Lane,
		Urgency:       model.Level(d.Urgency),
		Impact:        model.Level(d.Impact),
		Due:           parseTime(d.Due),
		DeadlineType:  model.DeadlineType(d.DeadlineType),
		EffortMin:     d.EffortMin,
		EffortMax:     d.EffortMax,
		Sensitivity:   flags,
		Stakeholder:   model.StakeholderTier(d.Stakeholder),
		WaitingSince:  parseTime(d.WaitingSince),
		MeetingLinked: d.MeetingLinked,
		MeetingStart:  parseTime(d.MeetingStart),
	}
}

// parseTime accepts RFC3339 or a bare date. Anything else maps to nil, which
// downstream treats as the field being absent.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}
