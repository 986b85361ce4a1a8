package models

import "time"

// TaskSource names where a task entered the pool.
type TaskSource string

const (
	TaskSourceDetection TaskSource = "detection"
	TaskSourceOperator  TaskSource = "operator"
	TaskSourceProbe     TaskSource = "probe"
	TaskSourceDaily     TaskSource = "daily"
	TaskSourceBacklog   TaskSource = "backlog"
)

// Task kinds that the planner and settlement logic treat specially. Other
// kinds (clarify, ask_scope, ...) flow through untouched.
const (
	KindBacklog   = "backlog"
	KindImmediate = "immediate"
	KindUrgent    = "urgent"
	KindDaily     = "daily"
)

// Task is one conversational goal the bot may pursue. Immediate tasks carry a
// TTL in turns and expire; backlog tasks age and decay in sampling weight.
type Task struct {
	ID           string     `json:"id"`
	Description  string     `json:"description"`
	Importance   float64    `json:"importance"`
	Source       TaskSource `json:"source,omitempty"`
	Kind         string     `json:"kind,omitempty"`
	TTLTurns     int        `json:"ttl_turns,omitempty"`
	Urgent       bool       `json:"urgent,omitempty"`
	AttemptCount int        `json:"attempt_count,omitempty"`
	CreatedAt    time.Time  `json:"created_at,omitempty"`
	LastAttempt  time.Time  `json:"last_attempt_at,omitempty"`
}

// Immediate reports whether the task expires by TTL at settlement.
func (t Task) Immediate() bool {
	return t.Kind == KindImmediate
}

// TaskList is the per-user pool persisted between turns: the working session
// slice plus the long-lived backlog.
type TaskList struct {
	Session []Task `json:"session,omitempty"`
	Backlog []Task `json:"backlog,omitempty"`
}

// TaskBudget is the planner verdict for the turn.
type TaskBudget struct {
	WordBudget    int `json:"word_budget"`     // 0..60; 0 with no urgent tasks means no reply
	TaskBudgetMax int `json:"task_budget_max"` // 0..2 tasks the reply may pursue
}
