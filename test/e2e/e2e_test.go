// Package e2e exercises the full turn pipeline against a real PostgreSQL:
// HTTP-free, straight through the session manager, graph executor, and
// ent-backed persistence, with only the LLM invoker scripted.
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/database"
	"github.com/rapport-chat/rapport/pkg/events"
	"github.com/rapport-chat/rapport/pkg/graph"
	"github.com/rapport-chat/rapport/pkg/invoker"
	"github.com/rapport-chat/rapport/pkg/search"
	"github.com/rapport-chat/rapport/pkg/services"
	"github.com/rapport-chat/rapport/pkg/session"
	testdb "github.com/rapport-chat/rapport/test/database"
)

const (
	testBotID      = "xiaoyu"
	testExternalID = "ext-e2e"
)

// app wires the production components over a per-test database schema.
type app struct {
	client   *database.Client
	cfg      *config.Config
	store    *services.StateService
	bus      *events.Bus
	sessions *session.Manager
}

func newApp(t *testing.T, inv invoker.Invoker) *app {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := services.NewStateService(client.Client, cfg, logger)
	mem := services.NewMemoryService(client.Client, cfg, logger)
	eng := search.NewEngine(inv, cfg, logger)
	exec := graph.NewExecutor(inv, cfg, eng, store, mem, logger)
	bus := events.NewBus(nil)
	sessions := session.NewManager(exec, bus, cfg, logger)
	t.Cleanup(func() { _ = sessions.Stop(context.Background()) })

	require.NoError(t, store.SeedBots(context.Background(), []config.BotSeed{testBotSeed()}))

	return &app{client: client, cfg: cfg, store: store, bus: bus, sessions: sessions}
}

func testConfig() *config.Config {
	return &config.Config{
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
}

// testBotSeed keeps busyness well below the forced macro-delay cutoff so a
// fresh user (initiating stage, macro p = 0) always gets a reply.
func testBotSeed() config.BotSeed {
	return config.BotSeed{
		ID:   testBotID,
		Name: "小雨",
		BasicInfo: map[string]interface{}{
			"name": "小雨", "gender": "female", "age": 24, "occupation": "插画师",
		},
		BigFive: map[string]float64{
			"openness": 0.6, "conscientiousness": 0.1, "extraversion": 0.4,
			"agreeableness": 0.5, "neuroticism": -0.2,
		},
		Mood: map[string]interface{}{
			"pleasure": 0.2, "arousal": 0.0, "dominance": 0.0, "busyness": 0.3,
		},
	}
}

// scriptedInvoker mirrors the graph package's test double.
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

// happyInvoker answers every role with a well-formed response.
func happyInvoker() *scriptedInvoker {
	return newScripted(happyRoute)
}

func happyRoute(role invoker.Role, p invoker.Prompt) (json.RawMessage, error) {
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
			return json.RawMessage(`{"new_summary":"用户跟小雨打了招呼，两人寒暄了几句，气氛轻松友好。","transcript_meta":{"topic":"寒暄","importance":0.3,"short_context":"打招呼","entities":["问候"]},"notes":[{"note_type":"fact","content":"用户刚下班","importance":0.4}],"spt":{"depth_delta":0,"new_topic":true}}`), nil
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
}
