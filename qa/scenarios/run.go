package scenarios

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avelys/blockplan/core/capacity"
	"github.com/avelys/blockplan/core/model"
	"github.com/avelys/blockplan/core/planner"
	"github.com/avelys/blockplan/core/scoring"
)

// RunScenario executes one planning pass for the scenario and asserts the
// expected outcome plus the engine's structural invariants.
func RunScenario(t *testing.T, sc *Scenario) {
	now, err := time.Parse(time.RFC3339, sc.Now)
	require.NoError(t, err, "scenario now")

	calc := capacity.Calculator{
		Windows:      capacity.DefaultWindowSet(),
		Location:     time.UTC,
		BeforeBuffer: time.Duration(sc.BufferMinutes) * time.Minute,
		AfterBuffer:  time.Duration(sc.BufferMinutes) * time.Minute,
	}

	lanes := make([]model.Lane, len(sc.Lanes))
	for i, l := range sc.Lanes {
		lanes[i] = l.ToModel()
	}
	items := make([]model.WorkItem, len(sc.Items))
	for i, it := range sc.Items {
		items[i] = it.ToModel(now)
	}
	events := make([]model.CalendarEvent, len(sc.Events))
	for i, ev := range sc.Events {
		events[i], err = ev.ToModel()
		require.NoError(t, err)
	}

	p := planner.New(scoring.NewScorer(), calc, lanes, nil)
	p.Now = func() time.Time { return now }
	if sc.MaxBlocksPerDay > 0 {
		p.MaxBlocksPerDay = sc.MaxBlocksPerDay
	}

	res := p.ProposeBlocks(items, events, sc.HorizonDays)

	require.Len(t, res.Proposals, sc.Expected.Placed, "placed count")

	var infeasibleIDs []string
	for _, inf := range res.Infeasible {
		infeasibleIDs = append(infeasibleIDs, inf.ItemID)
	}
	require.ElementsMatch(t, sc.Expected.InfeasibleIDs, infeasibleIDs, "infeasible items")

	for date, want := range sc.Expected.AECByDate {
		rep, ok := res.AECByDate[date]
		require.True(t, ok, "missing capacity report for %s", date)
		require.Equal(t, want, rep.AECMinutes, "aec on %s", date)
	}

	// Structural invariants hold for every scenario.
	for i, a := range res.Proposals {
		for j, b := range res.Proposals {
			if i >= j || a.Start.Format(planner.DateKey) != b.Start.Format(planner.DateKey) {
				continue
			}
			require.False(t, a.Start.Before(b.End) && b.Start.Before(a.End),
				"proposals %s and %s overlap", a.ItemID, b.ItemID)
		}
	}
	seen := map[string]int{}
	for _, prop := range res.Proposals {
		seen[prop.ItemID]++
	}
	for _, inf := range res.Infeasible {
		seen[inf.ItemID]++
	}
	for id, n := range seen {
		require.Equal(t, 1, n, "item %s planned more than once", id)
	}
}
