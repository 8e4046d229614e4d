package model

import "fmt"

// DefaultBlockTemplates is the block-length menu used when an item references
// a lane the configuration does not know.
var DefaultBlockTemplates = []int{30, 60, 90}

// CapacityBudget bounds how much time a lane may claim.
type CapacityBudget struct {
	DailyMinutes  int
	WeeklyMinutes int
}

// SchedulingHours is the window a lane prefers, as wall-clock times.
type SchedulingHours struct {
	Start    string // HH:MM
	End      string // HH:MM
	Timezone string // IANA name
}

// Lane is a named work category with its own budget and priority weighting.
type Lane struct {
	ID                 string
	Name               string
	PriorityMultiplier float64
	Budget             CapacityBudget
	Hours              SchedulingHours

	// BlockTemplates lists allowed block lengths in minutes, longest first
	// preference is applied by the planner regardless of order here.
	BlockTemplates []int
}

// Templates returns the lane's block menu, falling back to the default menu
// when none is configured.
func (l Lane) Templates() []int {
	if len(l.BlockTemplates) == 0 {
		return DefaultBlockTemplates
	}
	return l.BlockTemplates
}

// Multiplier returns the lane's priority multiplier, treating the zero value
// as neutral.
func (l Lane) Multiplier() float64 {
	if l.PriorityMultiplier <= 0 {
		return 1
	}
	return l.PriorityMultiplier
}

// Validate checks that the lane configuration is sound.
func (l Lane) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("lane id is required")
	}
	if l.Budget.DailyMinutes < 0 {
		return fmt.Errorf("lane %s: daily_minutes must not be negative", l.ID)
	}
	if l.Budget.WeeklyMinutes < 0 {
		return fmt.Errorf("lane %s: weekly_minutes must not be negative", l.ID)
	}
	for _, t := range l.BlockTemplates {
		if t <= 0 {
			return fmt.Errorf("lane %s: block template %d must be positive", l.ID, t)
		}
	}
	return nil
}
