// Package metrics records planning outcomes for observability. The planning
// core never imports this package; the app layer translates a pass result
// into records after the pass completes.
package metrics

import (
	"time"

	"github.com/avelys/blockplan/core/planner"
)

// PlanRecord is one per-item planning outcome to be recorded.
type PlanRecord struct {
	ItemID          string
	Lane            string
	Date            time.Time
	DurationMinutes int
	Score           float64
	Placed          bool
	Reason          string
	PassTime        time.Time
}

// PlanSink records planning outcomes for observability purposes.
type PlanSink interface {
	RecordPlanResult(records []PlanRecord) error
}

// PassRecorder is implemented by sinks that can record pass-level summaries.
type PassRecorder interface {
	RecordPassSummary(s planner.PassSummary) error
}

// NopSink implements PlanSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlanResult([]PlanRecord) error { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9402"
	}
}

// Records flattens a pass result into sink records.
func Records(res planner.PlanResult, passTime time.Time) []PlanRecord {
	scoreByItem := make(map[string]float64, len(res.Scores))
	for _, sc := range res.Scores {
		scoreByItem[sc.ItemID] = sc.TotalScore
	}
	out := make([]PlanRecord, 0, len(res.Proposals)+len(res.Infeasible))
	for _, p := range res.Proposals {
		out = append(out, PlanRecord{
			ItemID:          p.ItemID,
			Lane:            p.Lane,
			Date:            p.Start,
			DurationMinutes: p.DurationMinutes,
			Score:           scoreByItem[p.ItemID],
			Placed:          true,
			PassTime:        passTime,
		})
	}
	for _, inf := range res.Infeasible {
		out = append(out, PlanRecord{
			ItemID:   inf.ItemID,
			Score:    scoreByItem[inf.ItemID],
			Placed:   false,
			Reason:   inf.Reason,
			PassTime: passTime,
		})
	}
	return out
}
