package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/avelys/blockplan/core/planner"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	outcomes  *prometheus.CounterVec
	scores    prometheus.Histogram
	durations *prometheus.HistogramVec
	placement prometheus.Gauge
}

// NewPromSink registers planning metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. Already
// registered collectors are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_items_total",
		Help: "Total number of planned items by outcome",
	}, []string{"lane", "placed"})
	scores := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_priority_score",
		Help:    "Distribution of item priority scores",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "plan_block_minutes",
		Help:    "Distribution of proposed block lengths in minutes",
		Buckets: []float64{15, 30, 45, 60, 90, 120, 180},
	}, []string{"lane"})
	placement := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_placement_rate",
		Help: "Fraction of items placed in the last pass",
	})

	for _, c := range []prometheus.Collector{outcomes, scores, durations, placement} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	return &PromSink{outcomes: outcomes, scores: scores, durations: durations, placement: placement}, nil
}

// RecordPlanResult increments the outcome counters and observes scores and
// block lengths.
func (s *PromSink) RecordPlanResult(records []PlanRecord) error {
	for _, r := range records {
		s.outcomes.WithLabelValues(r.Lane, strconv.FormatBool(r.Placed)).Inc()
		s.scores.Observe(r.Score)
		if r.Placed {
			s.durations.WithLabelValues(r.Lane).Observe(float64(r.DurationMinutes))
		}
	}
	return nil
}

// RecordPassSummary publishes the pass placement rate.
func (s *PromSink) RecordPassSummary(sum planner.PassSummary) error {
	s.placement.Set(sum.PlacementRate)
	return nil
}
