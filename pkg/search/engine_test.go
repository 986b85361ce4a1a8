package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/invoker"
	"github.com/rapport-chat/rapport/pkg/models"
)

// scriptedInvoker routes calls by role and prompt content to canned
// responses, counting calls per role.
type scriptedInvoker struct {
	invoke func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error)
	calls  map[invoker.Role]*atomic.Int32
}

func newScripted(fn func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error)) *scriptedInvoker {
	return &scriptedInvoker{
		invoke: fn,
		calls: map[invoker.Role]*atomic.Int32{
			invoker.RoleMain: {}, invoker.RoleFast: {}, invoker.RoleJudge: {}, invoker.RoleProcessor: {},
		},
	}
}

func (s *scriptedInvoker) Invoke(ctx context.Context, role invoker.Role, p invoker.Prompt, _ json.RawMessage) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.calls[role].Add(1)
	return s.invoke(role, p)
}

func isExpand(p invoker.Prompt) bool   { return strings.Contains(p.System, "已有一版回复草稿") }
func isFallback(p invoker.Prompt) bool { return strings.Contains(p.System, "只输出回复文本") }
func isBatchGate(p invoker.Prompt) bool {
	return strings.Contains(p.System, "审核聊天回复候选")
}

func testConfig() *config.Config {
	return &config.Config{
		LATS:    config.DefaultLATSConfig(),
		Process: config.DefaultProcessConfig(),
	}
}

func testState(stage models.RelationshipStage) *models.TurnState {
	return &models.TurnState{
		TurnID:       "t1",
		CurrentStage: stage,
		UserInput:    "你好",
		Budget:       models.TaskBudget{WordBudget: 60, TaskBudgetMax: 2},
		BotBasicInfo: models.BotBasicInfo{Name: "小雨"},
	}
}

func planJSON(contents ...string) json.RawMessage {
	plan := models.ReplyPlan{}
	for _, c := range contents {
		plan.Messages = append(plan.Messages, models.SegmentDraft{Content: c})
	}
	b, _ := json.Marshal(plan)
	return b
}

func variantsJSON(contents ...string) json.RawMessage {
	var variants []models.ReplyPlan
	for _, c := range contents {
		variants = append(variants, models.ReplyPlan{Messages: []models.SegmentDraft{{Content: c}}})
	}
	b, _ := json.Marshal(map[string]any{"variants": variants})
	return b
}

func scoreJSON(b models.ScoreBreakdown) json.RawMessage {
	raw, _ := json.Marshal(b)
	return raw
}

func gatePassJSON(n int) json.RawMessage {
	verdicts := make([]map[string]any, n)
	for i := range verdicts {
		verdicts[i] = map[string]any{
			"idx": i, "assistantiness_ok": true, "identity_ok": true, "immersion_ok": true,
		}
	}
	b, _ := json.Marshal(map[string]any{"verdicts": verdicts})
	return b
}

func goodScore() models.ScoreBreakdown {
	return models.ScoreBreakdown{
		Assistantiness: 0.1, ImmersionBreak: 0.05,
		PersonaConsistency: 0.9, RelationshipFit: 0.9, ModeBehaviorFit: 0.9,
		OverallScore: 0.9,
	}
}

func TestRunHappyPathDeepStageEarlyExitsOnRoot(t *testing.T) {
	inv := newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		switch role {
		case invoker.RoleMain:
			if isExpand(p) {
				return variantsJSON("改一版"), nil
			}
			return planJSON("你好呀～"), nil
		case invoker.RoleJudge:
			if isBatchGate(p) {
				return gatePassJSON(2), nil
			}
			return scoreJSON(goodScore()), nil
		}
		return nil, fmt.Errorf("unexpected role %s", role)
	})
	e := NewEngine(inv, testConfig(), slog.Default())

	// Deep stage has min_rollouts 0: a complete high root score returns the
	// root without expansions being consumed.
	plan := e.Run(context.Background(), testState(models.StageIntensifying))
	require.Len(t, plan.Messages, 1)
	assert.Equal(t, "你好呀～", plan.Messages[0].Content)
}

func TestRunEarlyStageRequiresOneRollout(t *testing.T) {
	var judgeScores atomic.Int32
	inv := newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		switch role {
		case invoker.RoleMain:
			if isExpand(p) {
				return variantsJSON("变体一", "变体二"), nil
			}
			return planJSON("根方案"), nil
		case invoker.RoleJudge:
			if isBatchGate(p) {
				return gatePassJSON(2), nil
			}
			judgeScores.Add(1)
			return scoreJSON(goodScore()), nil
		}
		return nil, fmt.Errorf("unexpected role %s", role)
	})
	e := NewEngine(inv, testConfig(), slog.Default())

	// Initiating is an early stage: even a 0.9 root must survive one rollout
	// before early exit, so variants get judged too.
	plan := e.Run(context.Background(), testState(models.StageInitiating))
	require.NotEmpty(t, plan.Messages)
	assert.GreaterOrEqual(t, judgeScores.Load(), int32(2), "root and at least one variant must be scored")
}

func TestClampLawCapsOverallScore(t *testing.T) {
	clamped := clampBreakdown(models.ScoreBreakdown{
		Assistantiness: 0.7, OverallScore: 0.9,
		PersonaConsistency: 0.9, RelationshipFit: 0.9, ModeBehaviorFit: 0.9,
	})
	assert.Less(t, clamped.OverallScore, 0.3)

	clamped = clampBreakdown(models.ScoreBreakdown{
		ImmersionBreak: 0.3, OverallScore: 0.85,
		PersonaConsistency: 0.9, RelationshipFit: 0.9, ModeBehaviorFit: 0.9,
	})
	assert.Less(t, clamped.OverallScore, 0.3)

	// Clean candidates keep their score.
	clean := clampBreakdown(goodScore())
	assert.Equal(t, 0.9, clean.OverallScore)
}

func TestRunDegenerateFallbackOnRootFailure(t *testing.T) {
	inv := newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		if role == invoker.RoleMain {
			if isFallback(p) {
				return json.RawMessage("按常理接一句就好。"), nil
			}
			return nil, errors.New("model unavailable")
		}
		return nil, fmt.Errorf("unexpected role %s", role)
	})
	e := NewEngine(inv, testConfig(), slog.Default())

	state := testState(models.StageExperimenting)
	plan := e.Run(context.Background(), state)
	require.True(t, plan.Degenerate)
	require.Len(t, plan.Messages, 1)
	assert.Equal(t, "按常理接一句就好。", plan.Messages[0].Content)
	require.Len(t, state.Errors, 1)
	assert.Equal(t, models.ErrKindSearchDegenerate, state.Errors[0].Kind)
	// No judge calls are spent on a degenerate turn.
	assert.Equal(t, int32(0), inv.calls[invoker.RoleJudge].Load())
}

func TestRunSurvivesJudgeOutage(t *testing.T) {
	inv := newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		switch role {
		case invoker.RoleMain:
			if isExpand(p) {
				return variantsJSON("变体"), nil
			}
			return planJSON("根方案"), nil
		case invoker.RoleJudge:
			return nil, errors.New("judge down")
		}
		return nil, fmt.Errorf("unexpected role %s", role)
	})
	e := NewEngine(inv, testConfig(), slog.Default())

	// With every judge call failing, the engine still returns the root plan.
	plan := e.Run(context.Background(), testState(models.StageBonding))
	require.Len(t, plan.Messages, 1)
	assert.Equal(t, "根方案", plan.Messages[0].Content)
}

func TestHardGateRejections(t *testing.T) {
	tests := []struct {
		name string
		plan models.ReplyPlan
	}{
		{"empty", models.ReplyPlan{}},
		{"assistant register zh", models.ReplyPlan{Messages: []models.SegmentDraft{{Content: "作为AI助手，我来帮您"}}}},
		{"assistant register en", models.ReplyPlan{Messages: []models.SegmentDraft{{Content: "As an AI assistant I can help"}}}},
		{"advice list", models.ReplyPlan{Messages: []models.SegmentDraft{{Content: "1. 先休息\n2. 多喝水"}}}},
		{"too many messages", models.ReplyPlan{Messages: []models.SegmentDraft{
			{Content: "一一一一一"}, {Content: "二二二二二"}, {Content: "三三三三三"},
			{Content: "四四四四四"}, {Content: "五五五五五"}, {Content: "六六六六六"},
		}}},
		// 96 runes against a budget of 60 with 1.5x slack (cap 90).
		{"over budget", models.ReplyPlan{Messages: []models.SegmentDraft{
			{Content: "这一条实在太长了这一条实在太长了这一条实在太长了这一条实在太长了这一条实在太长了这一条实在太长了这一条实在太长了这一条实在太长了这一条实在太长了这一条实在太长了这一条实在太长了这一条实在太长了"},
		}}},
		{"first message too short", models.ReplyPlan{Messages: []models.SegmentDraft{
			{Content: "嗯"}, {Content: "今天过得怎么样呀，想听你说说"},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := hardGate(tt.plan, 5, 2, 200, 60, 2)
			assert.False(t, res.ok, res.reason)
		})
	}

	ok := hardGate(models.ReplyPlan{Messages: []models.SegmentDraft{{Content: "今天过得怎么样？"}}}, 5, 2, 200, 60, 2)
	assert.True(t, ok.ok)

	// A single-message plan is exempt from the first-message floor.
	ok = hardGate(models.ReplyPlan{Messages: []models.SegmentDraft{{Content: "嗯"}}}, 5, 2, 200, 60, 2)
	assert.True(t, ok.ok)
}

func TestBatchGateMissingIndexFailsClosed(t *testing.T) {
	inv := newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		// Verdict only covers idx 0; idx 1 must fail.
		return json.RawMessage(`{"verdicts":[{"idx":0,"assistantiness_ok":true,"identity_ok":true,"immersion_ok":true}]}`), nil
	})
	e := NewEngine(inv, testConfig(), slog.Default())
	pass, err := e.batchGate(context.Background(), testState(models.StageInitiating), []models.ReplyPlan{
		{Messages: []models.SegmentDraft{{Content: "候选一"}}},
		{Messages: []models.SegmentDraft{{Content: "候选二"}}},
	})
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, pass)
}

func TestSelectLeafTieBreaksToNewest(t *testing.T) {
	tr := newTree(models.ReplyPlan{Messages: []models.SegmentDraft{{Content: "root"}}})
	a := tr.addChild(tr.root, models.ReplyPlan{Messages: []models.SegmentDraft{{Content: "a"}}})
	b := tr.addChild(tr.root, models.ReplyPlan{Messages: []models.SegmentDraft{{Content: "b"}}})

	// Both unvisited (+Inf): the newer insertion wins.
	leaf := tr.selectLeaf(1.41421356)
	assert.Same(t, b, leaf)

	propagate(b, 0.5)
	leaf = tr.selectLeaf(1.41421356)
	assert.Same(t, a, leaf, "remaining unvisited child is selected next")
}
