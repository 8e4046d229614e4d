package scoring

// Weights controls how much each scoring dimension contributes to the total.
// They are supplied by the configuration layer, which also validates that
// they sum to approximately 1.0; the scorer applies them as given.
type Weights struct {
	Urgency      float64 `json:"urgency"`
	Impact       float64 `json:"impact"`
	Deadline     float64 `json:"deadline_proximity"`
	Sensitivity  float64 `json:"sensitivity"`
	Stakeholder  float64 `json:"stakeholder"`
	WaitingAging float64 `json:"waiting_aging"`
	MeetingLink  float64 `json:"meeting_linked"`
}

// DefaultWeights returns the stock weight set. The values sum to 1.0.
func DefaultWeights() Weights {
	return Weights{
		Urgency:      0.20,
		Impact:       0.15,
		Deadline:     0.25,
		Sensitivity:  0.15,
		Stakeholder:  0.10,
		WaitingAging: 0.05,
		MeetingLink:  0.10,
	}
}

// Sum returns the total of all dimension weights.
func (w Weights) Sum() float64 {
	return w.Urgency + w.Impact + w.Deadline + w.Sensitivity +
		w.Stakeholder + w.WaitingAging + w.MeetingLink
}

// ActionThresholds are the score levels at which follow-up actions are
// suggested. The thresholds are independent: a score clearing several of
// them yields every cleared action.
type ActionThresholds struct {
	TaskCreate     float64 `json:"propose_task_create"`
	Delegation     float64 `json:"propose_delegation"`
	CalendarBlock  float64 `json:"propose_calendar_block"`
	ImmediateAlert float64 `json:"immediate_alert"`
}

// DefaultActionThresholds returns the stock action thresholds.
func DefaultActionThresholds() ActionThresholds {
	return ActionThresholds{
		TaskCreate:     0.45,
		Delegation:     0.55,
		CalendarBlock:  0.60,
		ImmediateAlert: 0.75,
	}
}
