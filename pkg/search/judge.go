package search

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/rapport-chat/rapport/pkg/invoker"
	"github.com/rapport-chat/rapport/pkg/models"
	"github.com/rapport-chat/rapport/pkg/prompt"
)

// gateVerdict is one entry of the batch judge response.
type gateVerdict struct {
	Idx              int  `json:"idx"`
	AssistantinessOK bool `json:"assistantiness_ok"`
	IdentityOK       bool `json:"identity_ok"`
	ImmersionOK      bool `json:"immersion_ok"`
}

// batchGate screens a batch of candidates with one judge call and returns
// pass/fail per input index. The gate fails closed: a candidate the judge
// did not cover, or a call that errors entirely, passes nobody.
func (e *Engine) batchGate(ctx context.Context, state *models.TurnState, plans []models.ReplyPlan) ([]bool, error) {
	raw, err := e.inv.Invoke(ctx, invoker.RoleJudge, e.prompts.BatchGate(state, plans), prompt.BatchGateSchema)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Verdicts []gateVerdict `json:"verdicts"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	pass := make([]bool, len(plans))
	for _, v := range resp.Verdicts {
		if v.Idx < 0 || v.Idx >= len(plans) {
			continue
		}
		pass[v.Idx] = v.AssistantinessOK && v.IdentityOK && v.ImmersionOK
	}
	return pass, nil
}

// softScore runs one detailed judge evaluation of a plan. Judge concurrency
// is capped process-wide by the engine's semaphore.
func (e *Engine) softScore(ctx context.Context, state *models.TurnState, plan models.ReplyPlan) (models.ScoreBreakdown, error) {
	if err := e.judgeSem.Acquire(ctx, 1); err != nil {
		return models.ScoreBreakdown{}, err
	}
	defer e.judgeSem.Release(1)

	raw, err := e.inv.Invoke(ctx, invoker.RoleJudge, e.prompts.SoftScore(state, plan), prompt.SoftScoreSchema)
	if err != nil {
		return models.ScoreBreakdown{}, err
	}
	var b models.ScoreBreakdown
	if err := json.Unmarshal(raw, &b); err != nil {
		return models.ScoreBreakdown{}, err
	}
	return clampBreakdown(b), nil
}

// softScoreBatch scores up to topN plans concurrently and returns the
// breakdowns aligned with the input, with ok flags for the calls that
// succeeded. Individual failures only lose that candidate.
func (e *Engine) softScoreBatch(ctx context.Context, state *models.TurnState, plans []models.ReplyPlan, topN int) ([]models.ScoreBreakdown, []bool) {
	if topN <= 0 || topN > len(plans) {
		topN = len(plans)
	}
	breakdowns := make([]models.ScoreBreakdown, len(plans))
	ok := make([]bool, len(plans))

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < topN; i++ {
		g.Go(func() error {
			b, err := e.softScore(gctx, state, plans[i])
			if err != nil {
				e.logger.Debug("soft score failed, candidate dropped",
					slogTurn(state), "error", err)
				return nil
			}
			breakdowns[i] = b
			ok[i] = true
			return nil
		})
	}
	_ = g.Wait()
	return breakdowns, ok
}
