package scoring

import (
	"fmt"
	"time"

	"github.com/avelys/blockplan/core/model"
)

// Action is a follow-up suggested for a scored item.
type Action string

const (
	ActionTaskCreate     Action = "propose_task_create"
	ActionDelegation     Action = "propose_delegation"
	ActionCalendarBlock  Action = "propose_calendar_block"
	ActionImmediateAlert Action = "immediate_alert"
)

// PriorityScore is the result of scoring one work item. It is computed fresh
// on every pass and never persisted by the engine.
type PriorityScore struct {
	ItemID      string
	TotalScore  float64
	Components  map[string]float64
	Weights     Weights
	Modifiers   []string
	Attribution []string
	Actions     []Action
}

// Component keys used in PriorityScore.Components.
const (
	CompUrgency     = "urgency"
	CompImpact      = "impact"
	CompDeadline    = "deadline_proximity"
	CompSensitivity = "sensitivity"
	CompStakeholder = "stakeholder"
	CompWaiting     = "waiting_aging"
	CompMeeting     = "meeting_linked"
)

const (
	hardDeadlineWindow = 72 * time.Hour
	hardDeadlineBonus  = 0.20
	regulatedBonus     = 0.15
)

// Scorer grades work items using a weighted multi-dimension score.
type Scorer struct {
	Weights    Weights
	Thresholds ActionThresholds
}

// NewScorer returns a scorer with default weights and thresholds.
func NewScorer() Scorer {
	return Scorer{Weights: DefaultWeights(), Thresholds: DefaultActionThresholds()}
}

var levelScores = map[model.Level]float64{
	model.LevelCritical: 1.0,
	model.LevelHigh:     0.8,
	model.LevelMedium:   0.5,
	model.LevelLow:      0.3,
	model.LevelNone:     0.0,
}

var sensitivityScores = map[model.SensitivityFlag]float64{
	model.FlagLegal:        1.0,
	model.FlagSecurity:     1.0,
	model.FlagFinancial:    0.9,
	model.FlagExecCritical: 0.9,
	model.FlagClientVIP:    0.8,
	model.FlagReputation:   0.7,
	model.FlagPrivacy:      0.6,
}

var tierScores = map[model.StakeholderTier]float64{
	model.TierAlwaysUrgent: 1.0,
	model.TierImportant:    0.7,
	model.TierSignificant:  0.5,
	model.TierNormal:       0.3,
}

// Score grades item at the given reference time. It never returns an error:
// every missing or malformed field degrades to a neutral default, recorded in
// the attribution list.
func (s Scorer) Score(item model.WorkItem, now time.Time) PriorityScore {
	ps := PriorityScore{
		ItemID:     item.ID,
		Components: make(map[string]float64, 7),
		Weights:    s.Weights,
	}

	var attr string
	ps.Components[CompUrgency], attr = levelScore(item.Urgency, "urgency")
	ps.Attribution = append(ps.Attribution, attr)
	ps.Components[CompImpact], attr = levelScore(item.Impact, "impact")
	ps.Attribution = append(ps.Attribution, attr)
	ps.Components[CompDeadline], attr = deadlineScore(item.Due, now)
	ps.Attribution = append(ps.Attribution, attr)
	ps.Components[CompSensitivity], attr = sensitivityScore(item.Sensitivity)
	ps.Attribution = append(ps.Attribution, attr)
	ps.Components[CompStakeholder], attr = tierScore(item.Stakeholder)
	ps.Attribution = append(ps.Attribution, attr)
	ps.Components[CompWaiting], attr = waitingScore(item, now)
	ps.Attribution = append(ps.Attribution, attr)
	ps.Components[CompMeeting], attr = meetingScore(item, now)
	ps.Attribution = append(ps.Attribution, attr)

	total := ps.Components[CompUrgency]*s.Weights.Urgency +
		ps.Components[CompImpact]*s.Weights.Impact +
		ps.Components[CompDeadline]*s.Weights.Deadline +
		ps.Components[CompSensitivity]*s.Weights.Sensitivity +
		ps.Components[CompStakeholder]*s.Weights.Stakeholder +
		ps.Components[CompWaiting]*s.Weights.WaitingAging +
		ps.Components[CompMeeting]*s.Weights.MeetingLink

	if item.HardDeadlineWithin(now, hardDeadlineWindow) {
		total += hardDeadlineBonus
		ps.Modifiers = append(ps.Modifiers, "hard_deadline_72h")
	}
	// The regulated bump applies once no matter how many flags match.
	if item.HasFlag(model.FlagFinancial) || item.HasFlag(model.FlagLegal) || item.HasFlag(model.FlagSecurity) {
		total += regulatedBonus
		ps.Modifiers = append(ps.Modifiers, "regulated_sensitivity")
	}

	ps.TotalScore = clamp01(total)
	ps.Actions = s.actions(ps.TotalScore)
	return ps
}

// actions evaluates every threshold independently and returns all that are
// met, in fixed order.
func (s Scorer) actions(score float64) []Action {
	var out []Action
	if score >= s.Thresholds.TaskCreate {
		out = append(out, ActionTaskCreate)
	}
	if score >= s.Thresholds.Delegation {
		out = append(out, ActionDelegation)
	}
	if score >= s.Thresholds.CalendarBlock {
		out = append(out, ActionCalendarBlock)
	}
	if score >= s.Thresholds.ImmediateAlert {
		out = append(out, ActionImmediateAlert)
	}
	return out
}

func levelScore(l model.Level, dim string) (float64, string) {
	if v, ok := levelScores[l]; ok {
		return v, fmt.Sprintf("%s %s", dim, l)
	}
	return 0.5, fmt.Sprintf("%s unknown, treated as medium", dim)
}

// deadlineScore maps distance to the due date onto [0,1]. The distance is
// measured in civil days so an item due at 23:59 today still counts as due
// today.
func deadlineScore(due *time.Time, now time.Time) (float64, string) {
	if due == nil || due.IsZero() {
		return 0.2, "no/invalid deadline"
	}
	days := civilDaysBetween(now, *due)
	switch {
	case days < 0:
		return 1.0, "overdue"
	case days == 0:
		return 0.95, "due today"
	case days == 1:
		return 0.85, "due tomorrow"
	case days <= 3:
		return 0.7, "due within 3 days"
	case days <= 7:
		return 0.5, "due within 7 days"
	default:
		return 0.3, "due later"
	}
}

func sensitivityScore(flags []model.SensitivityFlag) (float64, string) {
	best := 0.0
	var which model.SensitivityFlag
	for _, f := range flags {
		if v, ok := sensitivityScores[f]; ok && v > best {
			best = v
			which = f
		}
	}
	if best == 0 {
		return 0, "no sensitivity flags"
	}
	return best, fmt.Sprintf("sensitivity %s", which)
}

func tierScore(t model.StakeholderTier) (float64, string) {
	if v, ok := tierScores[t]; ok {
		return v, fmt.Sprintf("stakeholder %s", t)
	}
	return tierScores[model.TierNormal], "stakeholder unknown, treated as normal"
}

func waitingScore(item model.WorkItem, now time.Time) (float64, string) {
	if !item.IsWaiting() {
		return 0, "not waiting"
	}
	days := int(now.Sub(*item.WaitingSince).Hours() / 24)
	switch {
	case days >= 7:
		return 0.9, fmt.Sprintf("waiting %d days", days)
	case days >= 5:
		return 0.7, fmt.Sprintf("waiting %d days", days)
	case days >= 3:
		return 0.5, fmt.Sprintf("waiting %d days", days)
	default:
		return 0.3, fmt.Sprintf("waiting %d days", days)
	}
}

func meetingScore(item model.WorkItem, now time.Time) (float64, string) {
	if !item.MeetingLinked {
		return 0, "not meeting linked"
	}
	if item.MeetingStart != nil && item.MeetingStart.After(now) && item.MeetingStart.Before(now.Add(24*time.Hour)) {
		return 1.0, "linked meeting within 24h"
	}
	return 0.5, "meeting linked, timing unknown"
}

// civilDaysBetween returns the whole-day distance between the civil dates of
// a and b, evaluated in a's location. Negative when b is before a's date.
func civilDaysBetween(a, b time.Time) int {
	loc := a.Location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
