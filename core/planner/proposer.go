package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/avelys/blockplan/core/budget"
	"github.com/avelys/blockplan/core/capacity"
	"github.com/avelys/blockplan/core/logger"
	"github.com/avelys/blockplan/core/model"
	"github.com/avelys/blockplan/core/scoring"
)

// RemediationOption is one entry of the fixed menu offered for items that
// could not be placed.
type RemediationOption string

const (
	RemediationDefer       RemediationOption = "defer"
	RemediationDelegate    RemediationOption = "delegate"
	RemediationReduceScope RemediationOption = "reduce_scope"
	RemediationDrop        RemediationOption = "drop"
	RemediationRenegotiate RemediationOption = "renegotiate"
)

// RemediationMenu returns the full option menu in its fixed order. The
// options are suggestions, not mutually exclusive.
func RemediationMenu() []RemediationOption {
	return []RemediationOption{
		RemediationDefer,
		RemediationDelegate,
		RemediationReduceScope,
		RemediationDrop,
		RemediationRenegotiate,
	}
}

// ReasonNoSlot is the reason attached to items that fit nowhere in the
// horizon.
const ReasonNoSlot = "No available slot within horizon"

// BlockProposal is one successfully placed item.
type BlockProposal struct {
	ID              string
	ItemID          string
	ItemTitle       string
	Lane            string
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Confidence      float64
	Reason          string

	// Alternatives lists other start times the chosen block length would
	// also have fit, for downstream negotiation.
	Alternatives []time.Time
}

// InfeasibilityRecord describes an item that could not be placed.
type InfeasibilityRecord struct {
	ItemID  string
	Title   string
	Reason  string
	Options []RemediationOption
}

// PlanResult is the outcome of one planning pass.
type PlanResult struct {
	Proposals  []BlockProposal
	Infeasible []InfeasibilityRecord
	AECByDate  map[string]capacity.AECReport
	Scores     []scoring.PriorityScore
}

// DateKey is the AECByDate map key format.
const DateKey = "2006-01-02"

// Defaults for planner limits.
const (
	DefaultMaxBlocksPerDay = 6
	DefaultMinSlotMinutes  = 30
)

// blockNamespace seeds deterministic proposal ids so identical passes
// produce identical output.
var blockNamespace = uuid.MustParse("9f2c1b6e-5a84-4c7d-9b1f-3e8a2d64c0aa")

// Proposer runs planning passes. One Proposer may be reused; each call to
// ProposeBlocks owns its slot state exclusively.
type Proposer struct {
	Scorer          scoring.Scorer
	Calc            capacity.Calculator
	Lanes           []model.Lane
	MaxBlocksPerDay int
	MinSlotMinutes  int
	Log             logger.Logger

	// Now supplies the pass reference time; tests pin it for determinism.
	Now func() time.Time
}

// New returns a Proposer with default limits.
func New(scorer scoring.Scorer, calc capacity.Calculator, lanes []model.Lane, log logger.Logger) *Proposer {
	return &Proposer{
		Scorer:          scorer,
		Calc:            calc,
		Lanes:           lanes,
		MaxBlocksPerDay: DefaultMaxBlocksPerDay,
		MinSlotMinutes:  DefaultMinSlotMinutes,
		Log:             log,
	}
}

// dayState is the mutable availability picture of one horizon day, owned by
// a single pass.
type dayState struct {
	date          time.Time
	report        capacity.AECReport
	slots         []capacity.TimeSlot
	blocks        int
	laneRemaining map[string]int
}

type rankedItem struct {
	item  model.WorkItem
	score scoring.PriorityScore
	rank  float64
}

// ProposeBlocks plans the given items over horizonDays starting today. Each
// item ends up in exactly one of Proposals or Infeasible. A single item with
// missing or malformed data never aborts the pass; the scorer degrades it to
// neutral defaults instead.
func (p *Proposer) ProposeBlocks(items []model.WorkItem, events []model.CalendarEvent, horizonDays int) PlanResult {
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}
	if p.Calc.Location != nil {
		now = now.In(p.Calc.Location)
	}

	res := PlanResult{AECByDate: make(map[string]capacity.AECReport, horizonDays)}
	lanes := p.laneIndex()

	days := make([]*dayState, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		date := now.AddDate(0, 0, i)
		rep := p.Calc.ComputeAEC(date, events)
		ds := &dayState{
			date:          date,
			report:        rep,
			slots:         p.Calc.FindAvailableSlots(date, events, p.minSlot()),
			laneRemaining: budget.Allocate(rep.AECMinutes, p.Lanes),
		}
		days = append(days, ds)
		res.AECByDate[rep.Date.Format(DateKey)] = rep
	}

	ranked := make([]rankedItem, len(items))
	for i, it := range items {
		sc := p.Scorer.Score(it, now)
		ranked[i] = rankedItem{item: it, score: sc, rank: sc.TotalScore * lanes.multiplier(it.Lane)}
	}
	// Stable sort: equal-rank items keep their input order. Upstream intake
	// supplies items in insertion order and downstream relies on it.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].rank > ranked[j].rank })

	res.Scores = make([]scoring.PriorityScore, len(ranked))
	for i, r := range ranked {
		res.Scores[i] = r.score
	}

	maxBlocks := p.MaxBlocksPerDay
	if maxBlocks <= 0 {
		maxBlocks = DefaultMaxBlocksPerDay
	}

	for _, r := range ranked {
		prop, ok := p.place(r, days, lanes, maxBlocks)
		if ok {
			res.Proposals = append(res.Proposals, prop)
			continue
		}
		res.Infeasible = append(res.Infeasible, InfeasibilityRecord{
			ItemID:  r.item.ID,
			Title:   r.item.Title,
			Reason:  ReasonNoSlot,
			Options: RemediationMenu(),
		})
	}

	if p.Log != nil {
		p.Log.Debugw("planning pass complete", map[string]any{
			"items":      len(items),
			"proposals":  len(res.Proposals),
			"infeasible": len(res.Infeasible),
			"horizon":    horizonDays,
		})
	}
	return res
}

// place tries every day, slot and block template for one item and carves the
// first fit out of its slot. It reports false when nothing in the horizon
// fits.
func (p *Proposer) place(r rankedItem, days []*dayState, lanes laneIndex, maxBlocks int) (BlockProposal, bool) {
	templates := lanes.templatesDesc(r.item.Lane)
	capped := lanes.known(r.item.Lane)

	for _, day := range days {
		if day.blocks >= maxBlocks {
			continue
		}
		for si := range day.slots {
			slot := &day.slots[si]
			remaining := slot.Minutes()
			for _, tmpl := range templates {
				if tmpl > remaining {
					continue
				}
				if capped && tmpl > day.laneRemaining[r.item.Lane] {
					continue
				}
				start := slot.Start
				end := start.Add(time.Duration(tmpl) * time.Minute)
				slot.Start = end
				day.blocks++
				if capped {
					day.laneRemaining[r.item.Lane] -= tmpl
				}
				return BlockProposal{
					ID:              proposalID(r.item.ID, start),
					ItemID:          r.item.ID,
					ItemTitle:       r.item.Title,
					Lane:            r.item.Lane,
					Start:           start,
					End:             end,
					DurationMinutes: tmpl,
					Confidence:      r.score.TotalScore,
					Reason:          placementReason(r.score),
					Alternatives:    alternatives(day.slots, si, tmpl),
				}, true
			}
		}
	}
	return BlockProposal{}, false
}

// alternatives collects up to two later slot starts on the same day that
// would also fit the chosen length.
func alternatives(slots []capacity.TimeSlot, placedIdx, tmpl int) []time.Time {
	var alts []time.Time
	for i := placedIdx + 1; i < len(slots) && len(alts) < 2; i++ {
		if slots[i].Minutes() >= tmpl {
			alts = append(alts, slots[i].Start)
		}
	}
	return alts
}

func placementReason(sc scoring.PriorityScore) string {
	reason := fmt.Sprintf("priority %.2f", sc.TotalScore)
	if len(sc.Attribution) > 2 {
		// Deadline proximity is the third attribution; it is the one users
		// ask about first.
		reason += " (" + sc.Attribution[2] + ")"
	}
	return reason
}

func proposalID(itemID string, start time.Time) string {
	return uuid.NewSHA1(blockNamespace, []byte(itemID+"|"+start.UTC().Format(time.RFC3339))).String()
}

func (p *Proposer) minSlot() int {
	if p.MinSlotMinutes > 0 {
		return p.MinSlotMinutes
	}
	return DefaultMinSlotMinutes
}

// laneIndex resolves lanes by id, falling back to an unconfigured lane with
// the default template menu, a neutral multiplier and no budget cap.
type laneIndex map[string]model.Lane

func (p *Proposer) laneIndex() laneIndex {
	idx := make(laneIndex, len(p.Lanes))
	for _, l := range p.Lanes {
		idx[l.ID] = l
	}
	return idx
}

func (idx laneIndex) known(id string) bool {
	_, ok := idx[id]
	return ok
}

func (idx laneIndex) multiplier(id string) float64 {
	if l, ok := idx[id]; ok {
		return l.Multiplier()
	}
	return 1
}

func (idx laneIndex) templatesDesc(id string) []int {
	src := model.DefaultBlockTemplates
	if l, ok := idx[id]; ok {
		src = l.Templates()
	}
	out := make([]int, len(src))
	copy(out, src)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
