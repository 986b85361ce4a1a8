package models

// SegmentAction is the client-side cue shown before a segment is delivered.
type SegmentAction string

const (
	// ActionTyping shows a typing indicator during the segment delay.
	ActionTyping SegmentAction = "typing"
	// ActionIdle delivers the segment with no indicator.
	ActionIdle SegmentAction = "idle"
)

// SegmentDraft is one planned message bubble before final validation.
type SegmentDraft struct {
	Content      string  `json:"content"`
	DelaySeconds float64 `json:"delay_seconds"`
}

// Segment is one deliverable message bubble.
type Segment struct {
	Content      string        `json:"content"`
	DelaySeconds float64       `json:"delay_seconds"`
	Action       SegmentAction `json:"action"`
}

// ReplyPlan is the search engine's output: the planned bubbles plus the task
// bookkeeping the evolver settles after the turn commits.
type ReplyPlan struct {
	Messages         []SegmentDraft `json:"messages"`
	AttemptedTaskIDs []string       `json:"attempted_task_ids,omitempty"`
	CompletedTaskIDs []string       `json:"completed_task_ids,omitempty"`
	Thought          string         `json:"thought,omitempty"`
	// Degenerate marks a fallback plan produced without search; task
	// attempt-marking treats it differently.
	Degenerate bool `json:"degenerate,omitempty"`
}

// TotalLength sums the rune length of all planned messages.
func (p ReplyPlan) TotalLength() int {
	n := 0
	for _, m := range p.Messages {
		n += len([]rune(m.Content))
	}
	return n
}

// Empty reports whether the plan carries no content.
func (p ReplyPlan) Empty() bool {
	for _, m := range p.Messages {
		if m.Content != "" {
			return false
		}
	}
	return true
}

// ScoreBreakdown is the soft scorer's verdict on one candidate plan.
// All values live in [0,1]; higher overall is better, higher assistantiness
// and immersion break are worse.
type ScoreBreakdown struct {
	Assistantiness     float64 `json:"assistantiness"`
	ImmersionBreak     float64 `json:"immersion_break"`
	PersonaConsistency float64 `json:"persona_consistency"`
	RelationshipFit    float64 `json:"relationship_fit"`
	ModeBehaviorFit    float64 `json:"mode_behavior_fit"`
	OverallScore       float64 `json:"overall_score"`
}

// Complete reports whether every component was actually populated. Early
// exit is only allowed on complete breakdowns.
func (b ScoreBreakdown) Complete() bool {
	return b.OverallScore > 0 &&
		b.PersonaConsistency > 0 &&
		b.RelationshipFit > 0 &&
		b.ModeBehaviorFit > 0
}
