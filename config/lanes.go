package config

import (
	"github.com/avelys/blockplan/core/model"
)

// LaneConfig declares one work lane.
type LaneConfig struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	PriorityMultiplier float64   `json:"priority_multiplier"`
	DailyMinutes       int       `json:"daily_minutes"`
	WeeklyMinutes      int       `json:"weekly_minutes"`
	Hours              ClockSpan `json:"hours"`
	Timezone           string    `json:"timezone"`
	BlockTemplates     []int     `json:"block_templates"`
}

// ToModel converts the lane declaration into the engine's lane record.
func (c LaneConfig) ToModel() model.Lane {
	return model.Lane{
		ID:                 c.ID,
		Name:               c.Name,
		PriorityMultiplier: c.PriorityMultiplier,
		Budget: model.CapacityBudget{
			DailyMinutes:  c.DailyMinutes,
			WeeklyMinutes: c.WeeklyMinutes,
		},
		Hours: model.SchedulingHours{
			Start:    c.Hours.Start,
			End:      c.Hours.End,
			Timezone: c.Timezone,
		},
		BlockTemplates: c.BlockTemplates,
	}
}

// Validate delegates to the model-level lane validation.
func (c LaneConfig) Validate() error {
	return c.ToModel().Validate()
}

// LaneModels converts every configured lane.
func (c Config) LaneModels() []model.Lane {
	lanes := make([]model.Lane, len(c.Lanes))
	for i, l := range c.Lanes {
		lanes[i] = l.ToModel()
	}
	return lanes
}
