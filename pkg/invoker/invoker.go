package invoker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rapport-chat/rapport/pkg/models"
)

// Role selects the model tier and deadline for a call. Stage executors pick
// the cheapest role that can do the job.
type Role string

const (
	// RoleMain handles reply generation and the heavy structured calls:
	// detection and monologue.
	RoleMain Role = "main"
	// RoleFast handles cheap structured calls: security, task planning,
	// evolve, memory extraction.
	RoleFast Role = "fast"
	// RoleJudge handles gate and scoring calls during search.
	RoleJudge Role = "judge"
	// RoleProcessor handles segmentation reshaping.
	RoleProcessor Role = "processor"
)

// IsValid checks if the role is one of the known tiers.
func (r Role) IsValid() bool {
	switch r {
	case RoleMain, RoleFast, RoleJudge, RoleProcessor:
		return true
	}
	return false
}

// Prompt is one LLM call's input. System carries the persona and stage
// instructions, Messages the conversation window, User the trailing turn.
type Prompt struct {
	System   string
	Messages []models.ChatMessage
	User     string

	// TurnID tags the call for tracing on the invoker side.
	TurnID string
}

// Invoker is the single seam between the turn graph and LLM primitives.
//
// With a nil schema the raw completion text is returned unparsed. With a
// schema the completion is reduced to its JSON document first; whether the
// document is additionally validated against the schema is an implementation
// choice. Implementations must respect ctx cancellation.
type Invoker interface {
	Invoke(ctx context.Context, role Role, prompt Prompt, schema json.RawMessage) (json.RawMessage, error)
}

// Call failure classes. Stage executors map these onto their fallbacks.
var (
	// ErrTimeout means the per-role deadline elapsed, after any retry.
	ErrTimeout = errors.New("invoker call timed out")
	// ErrNoJSON means no JSON document could be extracted from the completion.
	ErrNoJSON = errors.New("no JSON document in completion")
	// ErrSchemaViolation means the extracted document failed schema validation.
	ErrSchemaViolation = errors.New("completion violates response schema")
	// ErrUnavailable means the invoker service could not be reached.
	ErrUnavailable = errors.New("invoker service unavailable")
)
