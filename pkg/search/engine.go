// Package search picks the reply plan for a turn by growing a small tree of
// candidate plans: the main role proposes, cheap structural gates and a
// batch judge screen, a soft judge scores survivors, and UCB selection
// decides where to expand next. Budgets scale with the relationship stage.
package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/invoker"
	"github.com/rapport-chat/rapport/pkg/models"
	"github.com/rapport-chat/rapport/pkg/prompt"
)

// Engine runs the candidate search. One engine serves all sessions; the
// judge semaphore is the process-wide cap on concurrent judge calls.
type Engine struct {
	inv      invoker.Invoker
	prompts  *prompt.Builder
	cfg      *config.Config
	judgeSem *semaphore.Weighted
	logger   *slog.Logger
}

// NewEngine creates a search engine. Panics on nil dependencies — these are
// construction-time wiring mistakes, not runtime conditions.
func NewEngine(inv invoker.Invoker, cfg *config.Config, logger *slog.Logger) *Engine {
	if inv == nil {
		panic("search: invoker is required")
	}
	if cfg == nil {
		panic("search: config is required")
	}
	maxJudge := int64(4)
	if cfg.LATS.Soft != nil && cfg.LATS.Soft.MaxConcurrency > 0 {
		maxJudge = int64(cfg.LATS.Soft.MaxConcurrency)
	}
	return &Engine{
		inv:      inv,
		prompts:  prompt.NewBuilder(),
		cfg:      cfg,
		judgeSem: semaphore.NewWeighted(maxJudge),
		logger:   logger.With("component", "search"),
	}
}

// Run produces the reply plan for the turn. It never fails outright: any
// unrecoverable model trouble degrades to a plain fallback plan, recorded on
// the turn as a degenerate search.
func (e *Engine) Run(ctx context.Context, state *models.TurnState) models.ReplyPlan {
	req := prompt.Requirements{
		MaxMessages: e.cfg.Process.MaxMessages,
		MinFirstLen: e.cfg.Process.MinFirstLen,
		WordBudget:  state.Budget.WordBudget,
	}

	rootPlan, err := e.rootPlan(ctx, state, req)
	if err != nil {
		return e.degenerate(ctx, state, err)
	}

	budget := e.budgetFor(state.CurrentStage)
	tree := newTree(rootPlan)

	// Root evaluation and the first expansion overlap; the expansion is
	// almost always needed and hides a full main-role round trip.
	var rootScore models.ScoreBreakdown
	var rootScored bool
	var prefetched []models.ReplyPlan
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := e.softScore(gctx, state, rootPlan)
		if err != nil {
			e.logger.Debug("root evaluation failed", slogTurn(state), "error", err)
			return nil
		}
		rootScore, rootScored = b, true
		return nil
	})
	g.Go(func() error {
		variants, err := e.expand(gctx, state, req, rootPlan, budget.ExpandK)
		if err != nil {
			e.logger.Debug("prefetch expansion failed", slogTurn(state), "error", err)
			return nil
		}
		prefetched = variants
		return nil
	})
	_ = g.Wait()
	if ctx.Err() != nil {
		return rootPlan
	}

	if rootScored {
		tree.root.breakdown = rootScore
		tree.root.scored = true
		propagate(tree.root, rootScore.OverallScore)
		if budget.MinRollouts == 0 && e.earlyExit(rootScore) {
			e.logger.Debug("early exit on root", slogTurn(state), "score", rootScore.OverallScore)
			return rootPlan
		}
	}

	rolloutsDone := 0
	for r := 0; r < budget.Rollouts; r++ {
		if ctx.Err() != nil {
			break
		}
		leaf := tree.selectLeaf(e.cfg.LATS.ExplorationC)

		var variants []models.ReplyPlan
		if r == 0 && leaf == tree.root && prefetched != nil {
			variants = prefetched
		} else {
			var err error
			variants, err = e.expand(ctx, state, req, leaf.plan, budget.ExpandK)
			if err != nil {
				e.logger.Debug("expansion failed, rollout discarded", slogTurn(state), "error", err)
				continue
			}
		}

		scoredAny := e.evaluate(ctx, state, tree, leaf, variants)
		rolloutsDone++

		if scoredAny && rolloutsDone >= budget.MinRollouts {
			if best := tree.best(); best.scored && e.earlyExit(best.breakdown) {
				e.logger.Debug("early exit after rollout",
					slogTurn(state), "rollouts", rolloutsDone, "score", best.value())
				return best.plan
			}
		}
	}

	best := tree.best()
	e.finalReEval(ctx, state, best)
	return best.plan
}

// evaluate gates and scores one batch of variants under a leaf, attaching
// survivors to the tree. Returns whether any candidate got a score.
func (e *Engine) evaluate(ctx context.Context, state *models.TurnState, tree *tree, leaf *node, variants []models.ReplyPlan) bool {
	var candidates []models.ReplyPlan
	for _, v := range variants {
		gate := hardGate(v, e.cfg.Process.MaxMessages, e.cfg.Process.MinFirstLen,
			e.cfg.Process.MaxMessageLen, state.Budget.WordBudget, state.Budget.TaskBudgetMax)
		if !gate.ok {
			e.logger.Debug("hard gate rejected candidate", slogTurn(state), "reason", gate.reason)
			continue
		}
		candidates = append(candidates, v)
	}
	if len(candidates) == 0 {
		return false
	}

	pass, err := e.batchGate(ctx, state, candidates)
	if err != nil {
		e.logger.Debug("batch gate failed, rollout discarded", slogTurn(state), "error", err)
		return false
	}
	var gated []models.ReplyPlan
	for i, ok := range pass {
		if ok {
			gated = append(gated, candidates[i])
		}
	}
	if len(gated) == 0 {
		return false
	}

	topN := len(gated)
	if e.cfg.LATS.Soft != nil && e.cfg.LATS.Soft.TopN > 0 && e.cfg.LATS.Soft.TopN < topN {
		topN = e.cfg.LATS.Soft.TopN
	}
	breakdowns, ok := e.softScoreBatch(ctx, state, gated, topN)

	scoredAny := false
	for i, plan := range gated {
		if !ok[i] {
			continue
		}
		child := tree.addChild(leaf, plan)
		child.breakdown = breakdowns[i]
		child.scored = true
		propagate(child, breakdowns[i].OverallScore)
		scoredAny = true
	}
	return scoredAny
}

// rootPlan asks the main role for the first full plan of the turn.
func (e *Engine) rootPlan(ctx context.Context, state *models.TurnState, req prompt.Requirements) (models.ReplyPlan, error) {
	raw, err := e.inv.Invoke(ctx, invoker.RoleMain, e.prompts.RootPlan(state, req), prompt.PlanSchema)
	if err != nil {
		return models.ReplyPlan{}, err
	}
	var plan models.ReplyPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return models.ReplyPlan{}, err
	}
	if plan.Empty() {
		return models.ReplyPlan{}, invoker.ErrNoJSON
	}
	return plan, nil
}

// expand asks the main role for k variants of a plan.
func (e *Engine) expand(ctx context.Context, state *models.TurnState, req prompt.Requirements, base models.ReplyPlan, k int) ([]models.ReplyPlan, error) {
	if k <= 0 {
		k = 1
	}
	raw, err := e.inv.Invoke(ctx, invoker.RoleMain, e.prompts.Expand(state, req, base, k), prompt.ExpandSchema)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Variants []models.ReplyPlan `json:"variants"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	if len(resp.Variants) > k {
		resp.Variants = resp.Variants[:k]
	}
	return resp.Variants, nil
}

// degenerate produces the no-search fallback plan: one plain completion
// from the main role with a reduced prompt, or the static apology if even
// that fails.
func (e *Engine) degenerate(ctx context.Context, state *models.TurnState, cause error) models.ReplyPlan {
	state.RecordError(models.ErrKindSearchDegenerate, "search", cause.Error())
	e.logger.Warn("root plan failed, degenerate fallback", slogTurn(state), "error", cause)

	plan := models.ReplyPlan{Degenerate: true}
	raw, err := e.inv.Invoke(ctx, invoker.RoleMain, e.prompts.Fallback(state), nil)
	if err == nil {
		if text := strings.TrimSpace(string(raw)); text != "" {
			plan.Messages = []models.SegmentDraft{{Content: strings.Trim(text, `"`)}}
			return plan
		}
	}
	plan.Messages = []models.SegmentDraft{{Content: "抱歉，我刚才走神了。"}}
	return plan
}

// earlyExit checks whether a breakdown clears every early-termination bar.
// Incomplete breakdowns never qualify; a missing component means the judge
// response was partial and the aggregate is not trustworthy.
func (e *Engine) earlyExit(b models.ScoreBreakdown) bool {
	ee := e.cfg.LATS.EarlyExit
	if ee == nil || !b.Complete() {
		return false
	}
	alignment := b.PersonaConsistency
	if b.RelationshipFit < alignment {
		alignment = b.RelationshipFit
	}
	return b.OverallScore >= ee.RootScore &&
		alignment >= ee.PlanAlignmentMin &&
		b.Assistantiness <= ee.AssistantinessMax &&
		b.ModeBehaviorFit >= ee.ModeFitMin
}

// finalReEval scores the winner one last time to stabilize its value. A
// result under the threshold is returned anyway; this is a warning line,
// not a rejection.
func (e *Engine) finalReEval(ctx context.Context, state *models.TurnState, best *node) {
	if ctx.Err() != nil {
		return
	}
	b, err := e.softScore(ctx, state, best.plan)
	if err != nil {
		e.logger.Debug("final re-evaluation failed", slogTurn(state), "error", err)
		return
	}
	best.breakdown = b
	propagate(best, b.OverallScore)
	if b.OverallScore < e.cfg.LATS.FinalScoreThreshold {
		e.logger.Warn("best plan below final score threshold",
			slogTurn(state), "score", b.OverallScore, "threshold", e.cfg.LATS.FinalScoreThreshold)
	}
}

// budgetFor resolves the stage-class budget, with config overrides applied.
func (e *Engine) budgetFor(stage models.RelationshipStage) config.StageBudget {
	budget := e.cfg.StageBudgetFor(string(stage.SearchClass()))
	if e.cfg.LATS.Rollouts > 0 {
		budget.Rollouts = e.cfg.LATS.Rollouts
	}
	if e.cfg.LATS.ExpandK > 0 {
		budget.ExpandK = e.cfg.LATS.ExpandK
	}
	return budget
}

func slogTurn(state *models.TurnState) slog.Attr {
	return slog.String("turn_id", state.TurnID)
}
