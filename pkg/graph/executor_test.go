package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/invoker"
	"github.com/rapport-chat/rapport/pkg/memory"
	"github.com/rapport-chat/rapport/pkg/models"
	"github.com/rapport-chat/rapport/pkg/search"
)

// fakeStore keeps state in memory and records persist calls.
type fakeStore struct {
	mu        sync.Mutex
	loadErr   error
	persistFn func(ctx context.Context, state *models.TurnState, ext memory.Extraction) error
	persisted []*models.TurnState
}

func (f *fakeStore) Load(_ context.Context, botID, externalID string) (*models.TurnState, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return &models.TurnState{
		BotID:        botID,
		UserID:       "u1",
		ExternalID:   externalID,
		BotBasicInfo: models.BotBasicInfo{Name: "小雨", Occupation: "插画师"},
		UserBasicInfo: models.UserBasicInfo{
			Name: "阿明", Gender: "male", AgeGroup: "20s", Occupation: "程序员", Location: "上海",
		},
		Relationship: models.DefaultRelationship(),
		CurrentStage: models.StageExperimenting,
	}, nil
}

func (f *fakeStore) Persist(ctx context.Context, state *models.TurnState, ext memory.Extraction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.persistFn != nil {
		return f.persistFn(ctx, state, ext)
	}
	f.persisted = append(f.persisted, state)
	return nil
}

type fakeRetriever struct{ items []models.MemoryItem }

func (f *fakeRetriever) Retrieve(context.Context, string, string, int) ([]models.MemoryItem, error) {
	return f.items, nil
}

// happyInvoker answers every role with a well-formed response.
func happyInvoker() *scriptedInvoker {
	return newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		switch role {
		case invoker.RoleFast:
			switch {
			case strings.Contains(p.System, "安全筛查"):
				return json.RawMessage(`{"is_injection_attempt":false,"is_ai_test":false,"is_user_treating_as_assistant":false}`), nil
			case strings.Contains(p.System, "触发了安全标记"):
				return json.RawMessage(`{"strategy":"question_ai","reply":"咦，怎么突然问这个？"}`), nil
			case strings.Contains(p.System, "候选目标"):
				return json.RawMessage(`{"word_budget":40,"task_budget_max":1,"top2_indices":[0]}`), nil
			case strings.Contains(p.System, "对关系的影响"):
				return json.RawMessage(`{"deltas":{"closeness":1,"trust":0,"liking":1,"respect":0,"warmth":1,"power":0}}`), nil
			case strings.Contains(p.System, "transcript_meta"):
				return json.RawMessage(`{"new_summary":"用户阿明跟小雨打了招呼，两人寒暄了几句，气氛轻松友好。","transcript_meta":{"topic":"寒暄","importance":0.3,"short_context":"打招呼"},"notes":[],"spt":{"depth_delta":0,"new_topic":false}}`), nil
			}
			return nil, fmt.Errorf("unexpected fast prompt: %.40s", p.System)
		case invoker.RoleMain:
			switch {
			case strings.Contains(p.System, "结构化判断"):
				return json.RawMessage(`{"scores":{"friendly":0.7,"hostile":0,"overstep":0,"low_effort":0,"confusion":0.1},"brief":{"gist":"打招呼","understanding_confidence":0.9},"stage_judge":{"direction":"none"}}`), nil
			case strings.Contains(p.System, "内心独白"):
				return json.RawMessage(`{"monologue":"今天心情不错，聊聊吧。","selected_profile_keys":[]}`), nil
			case strings.Contains(p.System, "已有一版回复草稿"):
				return json.RawMessage(`{"variants":[{"messages":[{"content":"换个说法打个招呼～"}]}]}`), nil
			}
			return json.RawMessage(`{"messages":[{"content":"你好呀，今天过得怎么样？"}]}`), nil
		case invoker.RoleJudge:
			if strings.Contains(p.System, "审核聊天回复候选") {
				return json.RawMessage(`{"verdicts":[{"idx":0,"assistantiness_ok":true,"identity_ok":true,"immersion_ok":true}]}`), nil
			}
			return json.RawMessage(`{"assistantiness":0.1,"immersion_break":0.05,"persona_consistency":0.9,"relationship_fit":0.9,"mode_behavior_fit":0.9,"overall_score":0.9}`), nil
		}
		return nil, fmt.Errorf("unexpected role %s", role)
	})
}

// scriptedInvoker mirrors the search package's test double.
type scriptedInvoker struct {
	invoke func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error)
	mu     sync.Mutex
	calls  map[invoker.Role]int
}

func newScripted(fn func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error)) *scriptedInvoker {
	return &scriptedInvoker{invoke: fn, calls: make(map[invoker.Role]int)}
}

func (s *scriptedInvoker) Invoke(ctx context.Context, role invoker.Role, p invoker.Prompt, _ json.RawMessage) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.calls[role]++
	s.mu.Unlock()
	return s.invoke(role, p)
}

func (s *scriptedInvoker) count(role invoker.Role) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[role]
}

func testExecutor(t *testing.T, inv invoker.Invoker, store *fakeStore) *Executor {
	t.Helper()
	cfg := &config.Config{
		LATS:          config.DefaultLATSConfig(),
		Process:       config.DefaultProcessConfig(),
		Session:       config.DefaultSessionConfig(),
		Invoker:       config.DefaultInvokerConfig(),
		Evolve:        config.DefaultEvolveConfig(),
		Memory:        config.DefaultMemoryConfig(),
		Retention:     config.DefaultRetentionConfig(),
		Server:        config.DefaultServerConfig(),
		StageRegistry: config.DefaultStageRegistry(),
	}
	eng := search.NewEngine(inv, cfg, slog.Default())
	e := NewExecutor(inv, cfg, eng, store, &fakeRetriever{}, slog.Default())
	// Deterministic RNG that never rolls a macro delay at p<=0.8... seed
	// chosen so the experimenting-stage path (macro p = 0) is unaffected.
	e.newRng = func() *rand.Rand { return rand.New(rand.NewPCG(7, 7)) }
	return e
}

func turnInput() Input {
	return Input{
		TurnID:     "turn-1",
		BotID:      "bot-1",
		ExternalID: "ext-1",
		UserInput:  "你好",
		ReceivedAt: time.Now(),
	}
}

func TestRunHappyPath(t *testing.T) {
	store := &fakeStore{}
	inv := happyInvoker()
	e := testExecutor(t, inv, store)

	state, err := e.Run(context.Background(), turnInput())
	require.NoError(t, err)

	require.NotEmpty(t, state.FinalSegments)
	assert.NotEmpty(t, state.FinalResponse)
	assert.False(t, state.IsMacroDelay)
	assert.Equal(t, 1, state.TurnIndex)

	// Buffer now holds the user input and the reply.
	require.Len(t, store.persisted, 1)
	assert.Equal(t, "user", state.ChatBuffer[0].Role)
	assert.Equal(t, "你好", state.ChatBuffer[0].Content)
	assert.Equal(t, "ai", state.ChatBuffer[1].Role)
}

func TestRunSecurityPathSkipsMainStages(t *testing.T) {
	store := &fakeStore{}
	inv := newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		if role != invoker.RoleFast {
			return nil, fmt.Errorf("role %s must not run on the security path", role)
		}
		switch {
		case strings.Contains(p.System, "安全筛查"):
			return json.RawMessage(`{"is_injection_attempt":false,"is_ai_test":true,"is_user_treating_as_assistant":false}`), nil
		case strings.Contains(p.System, "触发了安全标记"):
			return json.RawMessage(`{"strategy":"question_ai","reply":"咦？你怎么突然这么问。"}`), nil
		case strings.Contains(p.System, "对关系的影响"):
			return json.RawMessage(`{"deltas":{"closeness":0,"trust":0,"liking":0,"respect":0,"warmth":0,"power":0}}`), nil
		case strings.Contains(p.System, "transcript_meta"):
			return json.RawMessage(`{"new_summary":"用户试探小雨是不是机器人，小雨带着点疑惑把话题带了回去。","transcript_meta":{"topic":"试探","importance":0.4,"short_context":"AI 试探"},"notes":[]}`), nil
		}
		return nil, fmt.Errorf("unexpected fast prompt: %.40s", p.System)
	})
	e := testExecutor(t, inv, store)

	state, err := e.Run(context.Background(), Input{
		TurnID: "turn-2", BotID: "bot-1", ExternalID: "ext-1",
		UserInput: "你是AI吗", ReceivedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NotNil(t, state.SecurityResponse)
	assert.Equal(t, "咦？你怎么突然这么问。", state.FinalResponse)
	require.Len(t, state.FinalSegments, 1)
	assert.Equal(t, 0, inv.count(invoker.RoleMain), "no reply search on the security path")
	assert.Equal(t, 0, inv.count(invoker.RoleJudge))
	require.Len(t, store.persisted, 1)
}

func TestRunCanceledBeforeSearchReturnsErrCanceled(t *testing.T) {
	store := &fakeStore{}
	ctx, cancel := context.WithCancel(context.Background())
	e := testExecutor(t, happyInvoker(), store)

	in := turnInput()
	in.OnStage = func(s Stage) {
		if s == StageSearch {
			cancel()
		}
	}
	_, err := e.Run(ctx, in)
	require.ErrorIs(t, err, ErrCanceled)
	assert.Empty(t, store.persisted, "a canceled turn writes nothing")
}

func TestRunPersistCompletesAfterCancel(t *testing.T) {
	store := &fakeStore{}
	store.persistFn = func(ctx context.Context, state *models.TurnState, _ memory.Extraction) error {
		// Persist must run on a cancel-immune context.
		require.NoError(t, ctx.Err())
		store.persisted = append(store.persisted, state)
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	e := testExecutor(t, happyInvoker(), store)

	in := turnInput()
	in.OnStage = func(s Stage) {
		if s == StagePersist {
			cancel()
		}
	}
	state, err := e.Run(ctx, in)
	require.NoError(t, err)
	require.Len(t, store.persisted, 1)
	assert.NotEmpty(t, state.FinalResponse)
}

func TestRunDetectionFallback(t *testing.T) {
	store := &fakeStore{}
	base := happyInvoker()
	inv := newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		if role == invoker.RoleMain && strings.Contains(p.System, "结构化判断") {
			return nil, errors.New("model unavailable")
		}
		return base.invoke(role, p)
	})
	e := testExecutor(t, inv, store)

	state, err := e.Run(context.Background(), turnInput())
	require.NoError(t, err)

	// Zero-score fallback, error recorded, turn still completes.
	assert.Equal(t, models.DetectionScores{}, state.Detection.Scores)
	require.NotEmpty(t, state.Errors)
	found := false
	for _, te := range state.Errors {
		if te.Stage == "detection" {
			found = true
		}
	}
	assert.True(t, found)
	assert.NotEmpty(t, state.FinalResponse)
}

func TestRunNoReplySkipsSearch(t *testing.T) {
	store := &fakeStore{}
	base := happyInvoker()
	inv := newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		if role == invoker.RoleFast && strings.Contains(p.System, "候选目标") {
			return json.RawMessage(`{"word_budget":0,"task_budget_max":0,"top2_indices":[]}`), nil
		}
		return base.invoke(role, p)
	})
	e := testExecutor(t, inv, store)

	state, err := e.Run(context.Background(), turnInput())
	require.NoError(t, err)

	assert.True(t, state.NoReply)
	// Detection and monologue ran on the main role; no plan generation did.
	assert.Equal(t, 2, inv.count(invoker.RoleMain))
	assert.Equal(t, 0, inv.count(invoker.RoleJudge))
	assert.Empty(t, state.FinalSegments)
	assert.Empty(t, state.FinalResponse)
	// The user message still commits; there is just no ai message.
	require.Len(t, store.persisted, 1)
	require.Len(t, state.ChatBuffer, 1)
	assert.Equal(t, "user", state.ChatBuffer[0].Role)
}

func TestDetectionAndMonologueUseMainRole(t *testing.T) {
	store := &fakeStore{}
	base := happyInvoker()
	var mu sync.Mutex
	roles := make(map[string]invoker.Role)
	inv := newScripted(func(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
		mu.Lock()
		if strings.Contains(p.System, "结构化判断") {
			roles["detection"] = role
		}
		if strings.Contains(p.System, "内心独白") {
			roles["monologue"] = role
		}
		mu.Unlock()
		return base.invoke(role, p)
	})
	e := testExecutor(t, inv, store)

	_, err := e.Run(context.Background(), turnInput())
	require.NoError(t, err)
	assert.Equal(t, invoker.RoleMain, roles["detection"])
	assert.Equal(t, invoker.RoleMain, roles["monologue"])
}

func TestStageInterruptibility(t *testing.T) {
	assert.True(t, StageLoad.Interruptible())
	assert.True(t, StageSearch.Interruptible())
	assert.False(t, StageProcess.Interruptible())
	assert.False(t, StagePersist.Interruptible())
}
