package planner

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// PassSummary aggregates one planning pass for logging and metrics.
type PassSummary struct {
	Items             int
	Placed            int
	Infeasible        int
	PlacementRate     float64
	MeanScore         float64
	StdDevScore       float64
	MedianScore       float64
	ProposedMin       int
	UtilizationByDate map[string]float64
}

// Summarize computes aggregate statistics over a pass result. Utilization is
// proposed minutes on a date divided by that date's available capacity.
func Summarize(res PlanResult) PassSummary {
	s := PassSummary{
		Items:             len(res.Scores),
		Placed:            len(res.Proposals),
		Infeasible:        len(res.Infeasible),
		UtilizationByDate: make(map[string]float64, len(res.AECByDate)),
	}
	if s.Items > 0 {
		s.PlacementRate = float64(s.Placed) / float64(s.Items)
	}

	if len(res.Scores) > 0 {
		vals := make([]float64, len(res.Scores))
		for i, sc := range res.Scores {
			vals[i] = sc.TotalScore
		}
		sort.Float64s(vals)
		s.MeanScore = stat.Mean(vals, nil)
		s.StdDevScore = stat.StdDev(vals, nil)
		s.MedianScore = stat.Quantile(0.5, stat.Empirical, vals, nil)
	}

	proposedByDate := make(map[string]int, len(res.AECByDate))
	for _, prop := range res.Proposals {
		s.ProposedMin += prop.DurationMinutes
		proposedByDate[prop.Start.Format(DateKey)] += prop.DurationMinutes
	}
	for key, rep := range res.AECByDate {
		if rep.AECMinutes > 0 {
			s.UtilizationByDate[key] = float64(proposedByDate[key]) / float64(rep.AECMinutes)
		} else {
			s.UtilizationByDate[key] = 0
		}
	}
	return s
}
