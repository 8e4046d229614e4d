package model

import "time"

// Level grades urgency or impact of a work item.
type Level string

const (
	LevelCritical Level = "critical"
	LevelHigh     Level = "high"
	LevelMedium   Level = "medium"
	LevelLow      Level = "low"
	LevelNone     Level = "none"
)

// DeadlineType distinguishes hard deadlines from soft targets.
type DeadlineType string

const (
	DeadlineHard DeadlineType = "hard"
	DeadlineSoft DeadlineType = "soft"
)

// StakeholderTier ranks the requester of an item.
type StakeholderTier string

const (
	TierAlwaysUrgent StakeholderTier = "alwaysUrgent"
	TierImportant    StakeholderTier = "important"
	TierSignificant  StakeholderTier = "significant"
	TierNormal       StakeholderTier = "normal"
)

// SensitivityFlag tags an item with a risk category.
type SensitivityFlag string

const (
	FlagLegal        SensitivityFlag = "legal"
	FlagSecurity     SensitivityFlag = "security"
	FlagFinancial    SensitivityFlag = "financial"
	FlagExecCritical SensitivityFlag = "execCritical"
	FlagClientVIP    SensitivityFlag = "clientVIP"
	FlagReputation   SensitivityFlag = "reputation"
	FlagPrivacy      SensitivityFlag = "privacy"
)

// WorkItem is a pending unit of work supplied by the upstream intake.
// It is read-only to the engine; missing or malformed fields are mapped
// to neutral defaults by the scorer rather than rejected.
type WorkItem struct {
	ID           string
	Title        string
	Lane         string
	Urgency      Level
	Impact       Level
	Due          *time.Time
	DeadlineType DeadlineType
	EffortMin    int // minutes
	EffortMax    int // minutes
	Sensitivity  []SensitivityFlag
	Stakeholder  StakeholderTier
	WaitingSince *time.Time

	// MeetingLinked marks an item tied to a meeting. MeetingStart carries
	// the meeting time when the upstream link resolver knows it.
	MeetingLinked bool
	MeetingStart  *time.Time
}

// HasFlag reports whether the item carries the given sensitivity flag.
func (w WorkItem) HasFlag(f SensitivityFlag) bool {
	for _, s := range w.Sensitivity {
		if s == f {
			return true
		}
	}
	return false
}

// IsWaiting reports whether the item is blocked on someone else.
func (w WorkItem) IsWaiting() bool {
	return w.WaitingSince != nil && !w.WaitingSince.IsZero()
}

// HardDeadlineWithin reports whether the item has a hard deadline due inside
// the window starting at now.
func (w WorkItem) HardDeadlineWithin(now time.Time, window time.Duration) bool {
	if w.DeadlineType != DeadlineHard || w.Due == nil || w.Due.IsZero() {
		return false
	}
	return !w.Due.After(now.Add(window))
}
