package config

import (
	"fmt"
	"math"

	"github.com/avelys/blockplan/core/scoring"
)

// ScoringConfig carries the weight set and action thresholds handed to the
// scorer. The scorer itself applies them as given; weight validation
// happens here.
type ScoringConfig struct {
	Weights    scoring.Weights          `json:"weights"`
	Thresholds scoring.ActionThresholds `json:"thresholds"`
}

// weightTolerance is how far the weight sum may drift from 1.0.
const weightTolerance = 0.01

// SetDefaults fills unset weights and thresholds with the stock values.
func (c *ScoringConfig) SetDefaults() {
	if c.Weights == (scoring.Weights{}) {
		c.Weights = scoring.DefaultWeights()
	}
	if c.Thresholds == (scoring.ActionThresholds{}) {
		c.Thresholds = scoring.DefaultActionThresholds()
	}
}

// Validate checks that the weights sum to approximately 1.0 and that the
// thresholds are ordered sanely inside [0,1].
func (c ScoringConfig) Validate() error {
	if sum := c.Weights.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("scoring weights must sum to 1.0, got %.3f", sum)
	}
	for name, v := range map[string]float64{
		"propose_task_create":    c.Thresholds.TaskCreate,
		"propose_delegation":     c.Thresholds.Delegation,
		"propose_calendar_block": c.Thresholds.CalendarBlock,
		"immediate_alert":        c.Thresholds.ImmediateAlert,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("threshold %s must be in [0,1], got %.3f", name, v)
		}
	}
	return nil
}
