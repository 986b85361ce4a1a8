package models

import "time"

// ChatMessage is one entry in the rolling chat buffer.
type ChatMessage struct {
	Role      string    `json:"role"` // "user" | "ai" | "system"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// MemoryItem is one retrieved memory surfaced to prompt builders.
type MemoryItem struct {
	Content    string  `json:"content"`
	Importance float64 `json:"importance"`
}

// ErrorKind classifies an absorbed or propagated turn error.
type ErrorKind string

const (
	ErrKindInvokerTimeout   ErrorKind = "invoker_timeout"
	ErrKindInvokerParse     ErrorKind = "invoker_parse_error"
	ErrKindStageFallback    ErrorKind = "stage_fallback"
	ErrKindSearchDegenerate ErrorKind = "search_degenerate"
	ErrKindValidationFail   ErrorKind = "validation_fail"
	ErrKindPersist          ErrorKind = "persist_error"
	ErrKindSuperseded       ErrorKind = "superseded"
	ErrKindFatal            ErrorKind = "fatal"
)

// TurnError is the recorded form of an absorbed error. The list rides the
// turn and is committed into the ai message metadata at persist.
type TurnError struct {
	Kind   ErrorKind `json:"kind"`
	Stage  string    `json:"stage,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

// TurnState is the single mutable value threaded through every stage of a
// turn. Stages read what earlier stages wrote; all mutations are in-memory
// and disposable until the persist stage commits them in one transaction.
type TurnState struct {
	// Identity
	TurnID       string `json:"turn_id"`
	ParentTurnID string `json:"parent_turn_id,omitempty"`
	BotID        string `json:"bot_id"`
	UserID       string `json:"user_id"`     // row id, resolved at load
	ExternalID   string `json:"external_id"` // caller-supplied user identity

	// Bot identity layers (read-only after load)
	BotBasicInfo BotBasicInfo `json:"bot_basic_info"`
	BotBigFive   BotBigFive   `json:"bot_big_five"`
	BotPersona   BotPersona   `json:"bot_persona"`

	// Perception of the user
	UserBasicInfo       UserBasicInfo     `json:"user_basic_info"`
	UserInferredProfile map[string]string `json:"user_inferred_profile,omitempty"`

	// Relationship physics
	Relationship RelationshipState `json:"relationship"`
	Mood         MoodState         `json:"mood"`
	CurrentStage RelationshipStage `json:"current_stage"`
	SPT          SPTInfo           `json:"spt_info"`

	// Memory
	ChatBuffer          []ChatMessage `json:"chat_buffer,omitempty"`
	ConversationSummary string        `json:"conversation_summary,omitempty"`
	RetrievedMemories   []MemoryItem  `json:"retrieved_memories,omitempty"`

	// Turn input
	UserInput  string    `json:"user_input"`
	ReceivedAt time.Time `json:"received_at"`

	// Security path
	Security         SecurityFlags     `json:"security_flags"`
	SecurityResponse *SecurityResponse `json:"security_response,omitempty"`

	// Comprehension
	Detection           Detection `json:"detection"`
	InnerMonologue      string    `json:"inner_monologue,omitempty"`
	SelectedProfileKeys []string  `json:"selected_profile_keys,omitempty"`

	// Expression style for this turn
	Style StyleVector `json:"style"`

	// Task planning
	Tasks          TaskList   `json:"tasks"`
	UrgentTasks    []Task     `json:"urgent_tasks,omitempty"`
	Budget         TaskBudget `json:"budget"`
	TasksForSearch []Task     `json:"tasks_for_search,omitempty"`
	NoReply        bool       `json:"no_reply,omitempty"`

	// Reply
	ReplyPlan     ReplyPlan `json:"reply_plan"`
	FinalSegments []Segment `json:"final_segments"`
	FinalResponse string    `json:"final_response,omitempty"`

	// Macro delay
	IsMacroDelay      bool    `json:"is_macro_delay,omitempty"`
	MacroDelaySeconds float64 `json:"macro_delay_seconds,omitempty"`

	// Stage decision for this turn
	Transition StageTransition `json:"transition"`

	// Bookkeeping
	TurnIndex int         `json:"turn_index"`
	Errors    []TurnError `json:"errors,omitempty"`
}

// RecordError appends an absorbed error to the turn.
func (t *TurnState) RecordError(kind ErrorKind, stage, detail string) {
	t.Errors = append(t.Errors, TurnError{Kind: kind, Stage: stage, Detail: detail})
}

// AppendUser appends the current user input to the chat buffer.
func (t *TurnState) AppendUser(now time.Time) {
	t.ChatBuffer = append(t.ChatBuffer, ChatMessage{Role: "user", Content: t.UserInput, CreatedAt: now})
}

// AppendAI appends the final response to the chat buffer.
func (t *TurnState) AppendAI(now time.Time) {
	if t.FinalResponse == "" {
		return
	}
	t.ChatBuffer = append(t.ChatBuffer, ChatMessage{Role: "ai", Content: t.FinalResponse, CreatedAt: now})
}

// TruncateBuffer keeps only the newest max entries of the chat buffer.
func (t *TurnState) TruncateBuffer(max int) {
	if max > 0 && len(t.ChatBuffer) > max {
		t.ChatBuffer = t.ChatBuffer[len(t.ChatBuffer)-max:]
	}
}

// UserTurnCount counts user messages currently in the buffer.
func (t *TurnState) UserTurnCount() int {
	n := 0
	for _, m := range t.ChatBuffer {
		if m.Role == "user" {
			n++
		}
	}
	return n
}

// TurnStatus is the caller-visible outcome of a submitted turn.
type TurnStatus string

const (
	TurnStatusSuccess    TurnStatus = "success"
	TurnStatusSuperseded TurnStatus = "superseded"
	TurnStatusError      TurnStatus = "error"
)

// TurnResult is what the session controller hands back to the caller.
type TurnResult struct {
	Status            TurnStatus  `json:"status"`
	Segments          []Segment   `json:"segments,omitempty"`
	MacroDelaySeconds float64     `json:"macro_delay_seconds,omitempty"`
	UserCreatedAt     time.Time   `json:"user_created_at,omitempty"`
	AICreatedAt       time.Time   `json:"ai_created_at,omitempty"`
	Errors            []TurnError `json:"errors,omitempty"`
}
