package config

import "fmt"

// PlannerConfig bounds a planning pass.
type PlannerConfig struct {
	// HorizonDays is the number of days, starting today, a pass may place
	// blocks into.
	HorizonDays int `json:"horizon_days"`
	// MaxBlocksPerDay caps how many blocks one day may receive, limiting
	// fragmentation.
	MaxBlocksPerDay int `json:"max_blocks_per_day"`
	// MinSlotMinutes is the smallest free gap worth reporting as a slot.
	MinSlotMinutes int `json:"min_slot_minutes"`
	// BeforeBufferMinutes and AfterBufferMinutes pad external meetings with
	// transition time.
	BeforeBufferMinutes int `json:"before_buffer_minutes"`
	AfterBufferMinutes  int `json:"after_buffer_minutes"`
}

// SetDefaults applies sane defaults.
func (c *PlannerConfig) SetDefaults() {
	if c.HorizonDays == 0 {
		c.HorizonDays = 7
	}
	if c.MaxBlocksPerDay == 0 {
		c.MaxBlocksPerDay = 6
	}
	if c.MinSlotMinutes == 0 {
		c.MinSlotMinutes = 30
	}
	if c.BeforeBufferMinutes == 0 {
		c.BeforeBufferMinutes = 10
	}
	if c.AfterBufferMinutes == 0 {
		c.AfterBufferMinutes = 10
	}
}

// Validate checks mandatory fields.
func (c PlannerConfig) Validate() error {
	if c.HorizonDays < 1 {
		return fmt.Errorf("horizon_days must be at least 1")
	}
	if c.MaxBlocksPerDay < 1 {
		return fmt.Errorf("max_blocks_per_day must be at least 1")
	}
	if c.MinSlotMinutes < 1 {
		return fmt.Errorf("min_slot_minutes must be at least 1")
	}
	if c.BeforeBufferMinutes < 0 || c.AfterBufferMinutes < 0 {
		return fmt.Errorf("buffers must not be negative")
	}
	return nil
}
