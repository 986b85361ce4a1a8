package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rapport-chat/rapport/pkg/invoker"
	"github.com/rapport-chat/rapport/pkg/knapp"
	"github.com/rapport-chat/rapport/pkg/memory"
	"github.com/rapport-chat/rapport/pkg/models"
	"github.com/rapport-chat/rapport/pkg/prompt"
	"github.com/rapport-chat/rapport/pkg/relationship"
	"github.com/rapport-chat/rapport/pkg/segment"
	"github.com/rapport-chat/rapport/pkg/style"
	"github.com/rapport-chat/rapport/pkg/tasks"
)

// monologueFallback stands in when the monologue call fails; a bland inner
// voice beats an empty one in downstream prompts.
const monologueFallback = "按常理接话即可。"

// securityReplyFallback is the static deflection when even the reply call
// fails on a flagged turn.
const securityReplyFallback = "嗯？怎么突然说这个。"

func (r *run) load(ctx context.Context, in Input) error {
	state, err := r.e.store.Load(ctx, in.BotID, in.ExternalID)
	if err != nil {
		return fmt.Errorf("load turn state: %w", err)
	}
	state.TurnID = in.TurnID
	state.ParentTurnID = in.ParentTurnID
	state.UserInput = in.UserInput
	state.ReceivedAt = in.ReceivedAt
	r.state = state
	return nil
}

func (r *run) security(ctx context.Context) error {
	raw, err := r.e.inv.Invoke(ctx, invoker.RoleFast, r.e.prompts.Security(r.state), prompt.SecuritySchema)
	if err != nil {
		// Fail open: an unreachable screen must not block normal chat.
		r.absorb(err, StageSecurity)
		r.state.Security = models.SecurityFlags{}
		return ctx.Err()
	}
	var flags models.SecurityFlags
	if err := json.Unmarshal(raw, &flags); err != nil {
		r.absorbParse(err, StageSecurity)
		flags = models.SecurityFlags{}
	}
	r.state.Security = flags
	return nil
}

func (r *run) securityReply(ctx context.Context) error {
	resp := &models.SecurityResponse{Strategy: models.StrategyNeutral, Reply: securityReplyFallback}
	raw, err := r.e.inv.Invoke(ctx, invoker.RoleFast, r.e.prompts.SecurityReply(r.state), prompt.SecurityReplySchema)
	if err != nil {
		r.absorb(err, StageSecurityReply)
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
	} else {
		var parsed models.SecurityResponse
		if jerr := json.Unmarshal(raw, &parsed); jerr != nil || strings.TrimSpace(parsed.Reply) == "" {
			r.absorbParse(jerr, StageSecurityReply)
		} else {
			resp = &parsed
		}
	}

	r.state.SecurityResponse = resp
	r.state.ReplyPlan = models.ReplyPlan{Messages: []models.SegmentDraft{{Content: resp.Reply}}}
	r.state.FinalSegments = []models.Segment{{Content: resp.Reply, Action: models.ActionIdle}}
	r.state.FinalResponse = resp.Reply
	return nil
}

func (r *run) detection(ctx context.Context) error {
	var det models.Detection
	raw, err := r.e.inv.Invoke(ctx, invoker.RoleMain, r.e.prompts.Detection(r.state), prompt.DetectionSchema)
	if err != nil {
		r.absorb(err, StageDetection)
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
	} else if jerr := json.Unmarshal(raw, &det); jerr != nil {
		r.absorbParse(jerr, StageDetection)
		det = models.Detection{}
	}

	det.Scores.Clamp()
	if !det.StageJudge.Direction.IsValid() {
		det.StageJudge.Direction = models.DirectionNone
	}
	det.DeriveComposite()
	r.state.Detection = det
	return nil
}

func (r *run) monologue(ctx context.Context) error {
	r.state.InnerMonologue = monologueFallback
	raw, err := r.e.inv.Invoke(ctx, invoker.RoleMain, r.e.prompts.Monologue(r.state), prompt.MonologueSchema)
	if err != nil {
		r.absorb(err, StageMonologue)
		return ctx.Err()
	}
	var resp struct {
		Monologue           string   `json:"monologue"`
		SelectedProfileKeys []string `json:"selected_profile_keys"`
	}
	if jerr := json.Unmarshal(raw, &resp); jerr != nil || strings.TrimSpace(resp.Monologue) == "" {
		r.absorbParse(jerr, StageMonologue)
		return nil
	}
	r.state.InnerMonologue = resp.Monologue
	if len(resp.SelectedProfileKeys) > 5 {
		resp.SelectedProfileKeys = resp.SelectedProfileKeys[:5]
	}
	r.state.SelectedProfileKeys = resp.SelectedProfileKeys
	return nil
}

func (r *run) memoryRetrieve(ctx context.Context) error {
	items, err := r.e.mem.Retrieve(ctx, r.state.UserID, r.state.UserInput, r.e.cfg.Memory.RetrieveTopK)
	if err != nil {
		// Retrieval is a garnish; the turn proceeds without it.
		r.absorb(err, StageMemoryRetrieve)
		return ctx.Err()
	}
	r.state.RetrievedMemories = items
	return nil
}

func (r *run) style(ctx context.Context) error {
	profile, err := r.e.cfg.GetStageProfile(string(r.state.CurrentStage))
	params := style.Params{
		Relationship: r.state.Relationship,
		Mood:         r.state.Mood,
		Composite:    r.state.Detection.Composite,
		StageCtx:     r.state.Detection.StageCtx,
		Confusion:    r.state.Detection.Scores.Confusion,
		Stage:        r.state.CurrentStage,
	}
	if err == nil {
		params.Invest = profile.Invest
		params.Ctx = profile.Ctx
	}
	vec, _ := style.Compute(params)
	r.state.Style = vec
	return nil
}

func (r *run) taskPlan(ctx context.Context) error {
	state := r.state

	var urgentLists [][]models.Task
	urgentLists = append(urgentLists, state.UrgentTasks)
	if probe := tasks.BasicInfoProbe(state.UserBasicInfo); probe != nil {
		urgentLists = append(urgentLists, []models.Task{*probe})
	}
	urgent := tasks.MergeUrgent(urgentLists...)

	candidates := tasks.Assemble(
		state.Tasks.Session, state.Tasks.Backlog,
		state.Detection.ImmediateTasks, r.e.cfg.DailyTasks,
		r.e.now(), r.rng)
	state.Tasks.Session = candidates.Session
	all := candidates.All()

	var budget models.TaskBudget
	var selected []int
	raw, err := r.e.inv.Invoke(ctx, invoker.RoleFast, r.e.prompts.TaskPlan(state, all), prompt.TaskPlanSchema)
	if err != nil {
		r.absorb(err, StageTaskPlan)
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		budget, selected = tasks.FallbackSelection(len(all))
	} else {
		budget, selected = tasks.ParseSelection(raw, len(all))
	}

	budget = tasks.ApplyUrgentFloor(budget, urgent)
	state.UrgentTasks = urgent
	state.Budget = budget
	state.NoReply = tasks.NoReply(budget, urgent)
	if !state.NoReply {
		state.TasksForSearch = tasks.PickSearchTasks(urgent, all, selected)
	}
	return nil
}

func (r *run) runSearch(ctx context.Context) error {
	if r.state.NoReply {
		// The planner withheld the turn; no candidate search happens.
		r.state.ReplyPlan = models.ReplyPlan{}
		return ctx.Err()
	}
	r.state.ReplyPlan = r.e.search.Run(ctx, r.state)
	return ctx.Err()
}

func (r *run) process(ctx context.Context) error {
	state := r.state
	cfg := r.e.cfg.Process

	if state.NoReply {
		state.FinalSegments = nil
		return nil
	}

	profile, perr := r.e.cfg.GetStageProfile(string(state.CurrentStage))
	var macroP, delayFactor float64 = 0, 1
	if perr == nil {
		macroP = profile.MacroDelayP
		if profile.DelayFactor > 0 {
			delayFactor = profile.DelayFactor
		}
	}

	if on, secs := segment.MacroDelayDecision(macroP, state.Mood.Busyness,
		cfg.MacroDelayMinSeconds, cfg.MacroDelayMaxSeconds, r.rng); on {
		state.IsMacroDelay = true
		state.MacroDelaySeconds = secs
		state.FinalSegments = nil
		return nil
	}

	// Structured multi-bubble plans pass through untouched; reshaping a
	// plan that already carries pacing would only flatten it.
	if planBubbles(state.ReplyPlan) >= 2 {
		state.FinalSegments = segment.ClampDrafts(state.ReplyPlan.Messages)
		return nil
	}

	text := joinPlan(state.ReplyPlan)
	if cfg.UseProcessorRole {
		if segs, ok := r.processorSplit(ctx, text); ok {
			state.FinalSegments = segs
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
	}

	tendency := segment.FragmentationTendency(
		state.BotBigFive.Extraversion, state.Relationship.Closeness, state.Mood.Arousal)
	bubbles := segment.RuleSplit(text, segment.SplitThreshold(tendency), cfg.MinBubbleLength)
	state.FinalSegments = segment.AssignDelays(bubbles, state.Mood.Busyness, delayFactor)
	return nil
}

// processorSplit asks the processor role to reshape the reply into bubbles.
// Any trouble falls back to the rule splitter.
func (r *run) processorSplit(ctx context.Context, text string) ([]models.Segment, bool) {
	raw, err := r.e.inv.Invoke(ctx, invoker.RoleProcessor, r.e.prompts.Processor(r.state, text), prompt.ProcessorSchema)
	if err != nil {
		r.absorb(err, StageProcess)
		return nil, false
	}
	var resp struct {
		Messages []models.SegmentDraft `json:"messages"`
	}
	if jerr := json.Unmarshal(raw, &resp); jerr != nil || len(resp.Messages) == 0 {
		r.absorbParse(jerr, StageProcess)
		return nil, false
	}
	return segment.ClampDrafts(resp.Messages), true
}

func (r *run) finalValidate(_ context.Context) error {
	state := r.state
	if state.IsMacroDelay || state.NoReply {
		state.FinalSegments = []models.Segment{}
		state.FinalResponse = ""
		return nil
	}
	cfg := r.e.cfg.Process
	v := segment.Validator{
		MaxMessages:   cfg.MaxMessages,
		MinFirstLen:   cfg.MinFirstLen,
		MaxMessageLen: cfg.MaxMessageLen,
	}
	before := len(state.FinalSegments)
	state.FinalSegments = v.Validate(state.FinalSegments)
	if len(state.FinalSegments) == 1 && state.FinalSegments[0].Content == segment.Apology && before > 0 {
		state.RecordError(models.ErrKindValidationFail, StageFinalValidate.String(), "no deliverable segments after validation")
	}

	var parts []string
	for _, s := range state.FinalSegments {
		parts = append(parts, s.Content)
	}
	state.FinalResponse = strings.Join(parts, "\n")
	return nil
}

func (r *run) evolve(ctx context.Context) error {
	state := r.state

	analysis := relationship.NeutralAnalysis()
	raw, err := r.e.inv.Invoke(ctx, invoker.RoleFast, r.e.prompts.Evolve(state), prompt.EvolveSchema)
	if err != nil {
		r.absorb(err, StageEvolve)
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
	} else {
		var parsed relationship.Analysis
		if jerr := json.Unmarshal(raw, &parsed); jerr != nil || parsed.Deltas == nil {
			r.absorbParse(jerr, StageEvolve)
		} else {
			analysis = parsed
		}
	}

	evolution := relationship.Apply(state.Relationship, analysis.Deltas, state.UserInput, len(state.ChatBuffer))
	state.Relationship = evolution.State
	r.evo.applied = evolution.Applied

	// Basic info fills in missing fields only; inferred entries append.
	for field, val := range analysis.BasicInfoUpdates {
		if existing, ok := state.UserBasicInfo.Field(field); ok && strings.TrimSpace(existing) == "" {
			state.UserBasicInfo.SetField(field, val)
		}
	}
	if len(analysis.NewInferredEntries) > 0 {
		if state.UserInferredProfile == nil {
			state.UserInferredProfile = make(map[string]string, len(analysis.NewInferredEntries))
		}
		for k, v := range analysis.NewInferredEntries {
			if _, exists := state.UserInferredProfile[k]; !exists {
				state.UserInferredProfile[k] = v
			}
		}
	}

	return r.extractMemory(ctx)
}

// extractMemory runs the post-turn summary/transcript/notes call. The
// extraction is defensive end to end: failure keeps the prior summary.
func (r *run) extractMemory(ctx context.Context) error {
	state := r.state
	raw, err := r.e.inv.Invoke(ctx, invoker.RoleFast, r.e.prompts.Memory(state), prompt.MemorySchema)
	if err != nil {
		r.absorb(err, StageEvolve)
		r.ext = memory.ParseExtraction(nil, state.ConversationSummary)
		return ctx.Err()
	}
	r.ext = memory.ParseExtraction(raw, state.ConversationSummary)
	state.ConversationSummary = r.ext.NewSummary
	state.SPT = memory.ApplySPT(state.SPT, r.ext.SPT)
	return nil
}

func (r *run) stageManage(_ context.Context) error {
	state := r.state
	transition := r.e.stages.Evaluate(knapp.Input{
		Stage:         state.CurrentStage,
		Relationship:  state.Relationship,
		AppliedDeltas: r.evo.applied,
		SPT:           state.SPT,
		UserTurns:     state.UserTurnCount() + 1,
		ImpliedStage:  state.Detection.StageJudge.ImpliedStage,
	})
	state.Transition = transition
	if transition.To.IsValid() {
		state.CurrentStage = transition.To
	}
	if transition.Kind != models.TransitionStay {
		r.e.logger.Info("relationship stage transition",
			"turn_id", state.TurnID, "kind", string(transition.Kind),
			"from", string(transition.From), "to", string(transition.To),
			"reason", transition.Reason)
	}
	return nil
}

// persist commits the turn. It runs on a cancel-immune context: once
// entered it finishes even if the session dispatcher already moved on.
func (r *run) persist(ctx context.Context) error {
	pctx := context.WithoutCancel(ctx)
	state := r.state

	settle := tasks.Settle(tasks.SettleInput{
		Session:                 state.Tasks.Session,
		BotBacklog:              state.Tasks.Backlog,
		Plan:                    state.ReplyPlan,
		Searched:                state.TasksForSearch,
		MarkAttemptedOnFallback: r.e.cfg.Evolve.MarkAttemptedOnFallback,
		Now:                     r.e.now(),
		Rng:                     r.rng,
	})
	state.Tasks.Session = settle.Session
	state.Tasks.Backlog = settle.BotBacklog
	state.UrgentTasks = nil

	now := r.e.now()
	state.AppendUser(now)
	state.AppendAI(now)
	state.TruncateBuffer(r.e.cfg.Memory.BufferWindow)
	state.TurnIndex++

	if err := r.e.store.Persist(pctx, state, r.ext); err != nil {
		state.RecordError(models.ErrKindPersist, StagePersist.String(), err.Error())
		return fmt.Errorf("persist turn: %w", err)
	}
	return nil
}

// absorb records a stage fallback caused by an invoker failure.
func (r *run) absorb(err error, s Stage) {
	kind := models.ErrKindStageFallback
	if errors.Is(err, invoker.ErrTimeout) {
		kind = models.ErrKindInvokerTimeout
	}
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	r.state.RecordError(kind, s.String(), detail)
	r.e.logger.Warn("stage degraded to fallback", "stage", s.String(), "turn_id", r.state.TurnID, "error", err)
}

// absorbParse records a fallback caused by an unparseable response.
func (r *run) absorbParse(err error, s Stage) {
	detail := "unparseable response"
	if err != nil {
		detail = err.Error()
	}
	r.state.RecordError(models.ErrKindInvokerParse, s.String(), detail)
	r.e.logger.Warn("stage response unparseable, using fallback", "stage", s.String(), "turn_id", r.state.TurnID)
}

func planBubbles(plan models.ReplyPlan) int {
	n := 0
	for _, m := range plan.Messages {
		if strings.TrimSpace(m.Content) != "" {
			n++
		}
	}
	return n
}

func joinPlan(plan models.ReplyPlan) string {
	var parts []string
	for _, m := range plan.Messages {
		if s := strings.TrimSpace(m.Content); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
