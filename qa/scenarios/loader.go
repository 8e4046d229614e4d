// Package scenarios runs end-to-end planning scenarios described as YAML
// fixtures. Each scenario pins the clock, the calendar and the lane
// configuration, and states the expected planning outcome.
package scenarios

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/avelys/blockplan/core/model"
)

type ItemDef struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	Lane          string   `yaml:"lane"`
	Urgency       string   `yaml:"urgency"`
	Impact        string   `yaml:"impact"`
	Due           string   `yaml:"due"`
	DeadlineType  string   `yaml:"deadline_type"`
	Stakeholder   string   `yaml:"stakeholder_tier"`
	Flags         []string `yaml:"sensitivity_flags"`
	WaitingDays   int      `yaml:"waiting_days"`
	MeetingLinked bool     `yaml:"meeting_linked"`
}

func (d ItemDef) ToModel(now time.Time) model.WorkItem {
	flags := make([]model.SensitivityFlag, len(d.Flags))
	for i, f := range d.Flags {
		flags[i] = model.SensitivityFlag(f)
	}
	item := model.WorkItem{
		ID:            d.ID,
		Title:         d.Title,
		Lane:          d.Lane,
		Urgency:       model.Level(d.Urgency),
		Impact:        model.Level(d.Impact),
		DeadlineType:  model.DeadlineType(d.DeadlineType),
		Stakeholder:   model.StakeholderTier(d.Stakeholder),
		Sensitivity:   flags,
		MeetingLinked: d.MeetingLinked,
	}
	if d.Due != "" {
		if t, err := time.Parse(time.RFC3339, d.Due); err == nil {
			item.Due = &t
		}
	}
	if d.WaitingDays > 0 {
		since := now.AddDate(0, 0, -d.WaitingDays)
		item.WaitingSince = &since
	}
	return item
}

type EventDef struct {
	ID          string `yaml:"id"`
	Summary     string `yaml:"summary"`
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	SystemOwned bool   `yaml:"is_system_owned"`
}

func (d EventDef) ToModel() (model.CalendarEvent, error) {
	start, err := time.Parse(time.RFC3339, d.Start)
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("event %s: %w", d.ID, err)
	}
	end, err := time.Parse(time.RFC3339, d.End)
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("event %s: %w", d.ID, err)
	}
	return model.CalendarEvent{
		ID:          d.ID,
		Summary:     d.Summary,
		Start:       start,
		End:         end,
		SystemOwned: d.SystemOwned,
	}, nil
}

type LaneDef struct {
	ID           string  `yaml:"id"`
	DailyMinutes int     `yaml:"daily_minutes"`
	Templates    []int   `yaml:"block_templates"`
	Multiplier   float64 `yaml:"priority_multiplier"`
}

func (d LaneDef) ToModel() model.Lane {
	return model.Lane{
		ID:                 d.ID,
		PriorityMultiplier: d.Multiplier,
		Budget:             model.CapacityBudget{DailyMinutes: d.DailyMinutes},
		BlockTemplates:     d.Templates,
	}
}

type Expected struct {
	Placed        int            `yaml:"placed"`
	InfeasibleIDs []string       `yaml:"infeasible_ids"`
	AECByDate     map[string]int `yaml:"aec_by_date"`
}

type Scenario struct {
	Name            string     `yaml:"name"`
	Now             string     `yaml:"now"`
	HorizonDays     int        `yaml:"horizon_days"`
	MaxBlocksPerDay int        `yaml:"max_blocks_per_day"`
	BufferMinutes   int        `yaml:"buffer_minutes"`
	Lanes           []LaneDef  `yaml:"lanes"`
	Items           []ItemDef  `yaml:"items"`
	Events          []EventDef `yaml:"events"`
	Expected        Expected   `yaml:"expected"`
}

// Load reads one scenario fixture.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sc.Now == "" {
		return nil, fmt.Errorf("%s: scenario must pin now", path)
	}
	return &sc, nil
}
