// Package graph runs the fixed per-turn stage pipeline. The pipeline is a
// DAG with exactly one conditional edge: a flagged security screen routes
// the turn through a short deflection reply and straight to the closing
// stages. Cancellation is checked before every stage; once Persist begins
// it always completes.
package graph

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/invoker"
	"github.com/rapport-chat/rapport/pkg/knapp"
	"github.com/rapport-chat/rapport/pkg/memory"
	"github.com/rapport-chat/rapport/pkg/models"
	"github.com/rapport-chat/rapport/pkg/prompt"
	"github.com/rapport-chat/rapport/pkg/search"
)

// Stage names one pipeline stage. Values are ordered; the dispatcher uses
// Interruptible to decide between merge-and-restart and enqueue.
type Stage int

const (
	StageLoad Stage = iota
	StageSecurity
	StageSecurityReply
	StageDetection
	StageMonologue
	StageMemoryRetrieve
	StageStyle
	StageTaskPlan
	StageSearch
	StageProcess
	StageFinalValidate
	StageEvolve
	StageStageManage
	StagePersist
	stageDone
)

var stageNames = map[Stage]string{
	StageLoad:           "load",
	StageSecurity:       "security",
	StageSecurityReply:  "security_reply",
	StageDetection:      "detection",
	StageMonologue:      "monologue",
	StageMemoryRetrieve: "memory_retrieve",
	StageStyle:          "style",
	StageTaskPlan:       "task_plan",
	StageSearch:         "search",
	StageProcess:        "process",
	StageFinalValidate:  "final_validate",
	StageEvolve:         "evolve",
	StageStageManage:    "stage_manage",
	StagePersist:        "persist",
}

func (s Stage) String() string { return stageNames[s] }

// Interruptible reports whether a turn in this stage may be canceled for a
// merge-and-restart. Everything up to and including Search is disposable;
// from Process on, the reply is being delivered and the turn must close.
func (s Stage) Interruptible() bool { return s < StageProcess }

// ErrCanceled is returned when the turn was canceled between stages. The
// dispatcher treats it as supersession, not failure.
var ErrCanceled = errors.New("turn canceled")

// StateStore loads and commits turn state. Implemented by
// services.StateService; tests plug fakes.
type StateStore interface {
	// Load resolves (botID, externalID) into a fresh TurnState, creating
	// the user row on first contact.
	Load(ctx context.Context, botID, externalID string) (*models.TurnState, error)
	// Persist commits the finished turn in one transaction.
	Persist(ctx context.Context, state *models.TurnState, ext memory.Extraction) error
}

// MemoryRetriever surfaces stored history relevant to the current input.
type MemoryRetriever interface {
	Retrieve(ctx context.Context, userID, input string, topK int) ([]models.MemoryItem, error)
}

// Input describes one turn to run.
type Input struct {
	TurnID       string
	ParentTurnID string
	BotID        string
	ExternalID   string
	UserInput    string
	ReceivedAt   time.Time

	// OnStage, when set, is called as each stage begins. The dispatcher
	// uses it to track interruptibility.
	OnStage func(Stage)
}

// Executor owns the pipeline and its dependencies.
type Executor struct {
	inv     invoker.Invoker
	prompts *prompt.Builder
	cfg     *config.Config
	search  *search.Engine
	store   StateStore
	mem     MemoryRetriever
	stages  *knapp.Manager
	logger  *slog.Logger

	// newRng builds the per-turn RNG; overridable in tests.
	newRng func() *rand.Rand
	// now is the clock; overridable in tests.
	now func() time.Time
}

// NewExecutor wires an executor. Panics on nil dependencies.
func NewExecutor(inv invoker.Invoker, cfg *config.Config, eng *search.Engine, store StateStore, mem MemoryRetriever, logger *slog.Logger) *Executor {
	if inv == nil || cfg == nil || eng == nil || store == nil || mem == nil {
		panic("graph: all executor dependencies are required")
	}
	return &Executor{
		inv:     inv,
		prompts: prompt.NewBuilder(),
		cfg:     cfg,
		search:  eng,
		store:   store,
		mem:     mem,
		stages:  knapp.NewManager(cfg.StageRegistry),
		logger:  logger.With("component", "graph"),
		newRng: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		now: time.Now,
	}
}

// run carries the per-turn working set that does not belong on TurnState.
type run struct {
	e     *Executor
	state *models.TurnState
	ext   memory.Extraction
	evo   relationshipOutcome
	rng   *rand.Rand
}

// relationshipOutcome is the evolve stage's result handed to stage_manage.
type relationshipOutcome struct {
	applied map[string]float64
}

// Run executes the pipeline for one turn. On cancellation before Persist it
// returns ErrCanceled and the partial state is discarded by the caller. A
// Persist failure is the only other error; everything upstream degrades to
// fallbacks recorded on the state.
func (e *Executor) Run(ctx context.Context, in Input) (*models.TurnState, error) {
	r := &run{e: e, rng: e.newRng()}

	cur := StageLoad
	for cur != stageDone {
		if cur != StagePersist {
			if err := ctx.Err(); err != nil {
				return r.state, ErrCanceled
			}
		}
		if in.OnStage != nil {
			in.OnStage(cur)
		}

		start := e.now()
		err := r.exec(ctx, cur, in)
		e.logger.Debug("stage complete",
			"stage", cur.String(), "turn_id", in.TurnID,
			"duration_ms", e.now().Sub(start).Milliseconds())
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return r.state, ErrCanceled
			}
			return r.state, err
		}
		cur = r.next(cur)
	}
	return r.state, nil
}

// exec dispatches one stage.
func (r *run) exec(ctx context.Context, s Stage, in Input) error {
	switch s {
	case StageLoad:
		return r.load(ctx, in)
	case StageSecurity:
		return r.security(ctx)
	case StageSecurityReply:
		return r.securityReply(ctx)
	case StageDetection:
		return r.detection(ctx)
	case StageMonologue:
		return r.monologue(ctx)
	case StageMemoryRetrieve:
		return r.memoryRetrieve(ctx)
	case StageStyle:
		return r.style(ctx)
	case StageTaskPlan:
		return r.taskPlan(ctx)
	case StageSearch:
		return r.runSearch(ctx)
	case StageProcess:
		return r.process(ctx)
	case StageFinalValidate:
		return r.finalValidate(ctx)
	case StageEvolve:
		return r.evolve(ctx)
	case StageStageManage:
		return r.stageManage(ctx)
	case StagePersist:
		return r.persist(ctx)
	}
	return nil
}

// next encodes the edges. The security branch is the only deviation from
// the straight line; a no-reply verdict empties the plan inside the search
// stage instead of adding a second branch.
func (r *run) next(s Stage) Stage {
	switch s {
	case StageSecurity:
		if r.state.Security.NeedsSecurityResponse() {
			return StageSecurityReply
		}
		return StageDetection
	case StageSecurityReply:
		return StageEvolve
	default:
		return s + 1
	}
}
