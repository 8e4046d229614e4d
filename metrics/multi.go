package metrics

import "github.com/avelys/blockplan/core/planner"

// MultiSink fans planning records out to multiple sinks.
type MultiSink struct {
	Sinks []PlanSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...PlanSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlanResult forwards the records to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordPlanResult(records []PlanRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlanResult(records); err != nil {
			return err
		}
	}
	return nil
}

// RecordPassSummary forwards the summary to sinks that support it.
func (m *MultiSink) RecordPassSummary(sum planner.PassSummary) error {
	for _, s := range m.Sinks {
		if pr, ok := s.(PassRecorder); ok {
			if err := pr.RecordPassSummary(sum); err != nil {
				return err
			}
		}
	}
	return nil
}
