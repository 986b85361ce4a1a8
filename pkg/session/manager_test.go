package session

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/events"
	"github.com/rapport-chat/rapport/pkg/graph"
	"github.com/rapport-chat/rapport/pkg/models"
)

// fakeRunner scripts turn execution. Each call records its input; the script
// decides when and how the turn ends.
type fakeRunner struct {
	mu     sync.Mutex
	calls  []graph.Input
	script func(ctx context.Context, in graph.Input) (*models.TurnState, error)
}

func (f *fakeRunner) Run(ctx context.Context, in graph.Input) (*models.TurnState, error) {
	f.mu.Lock()
	f.calls = append(f.calls, in)
	f.mu.Unlock()
	return f.script(ctx, in)
}

func (f *fakeRunner) inputs() []graph.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]graph.Input, len(f.calls))
	copy(out, f.calls)
	return out
}

func successState(in graph.Input) *models.TurnState {
	return &models.TurnState{
		TurnID:        in.TurnID,
		BotID:         in.BotID,
		ExternalID:    in.ExternalID,
		UserInput:     in.UserInput,
		ReceivedAt:    in.ReceivedAt,
		FinalResponse: "好呀",
		FinalSegments: []models.Segment{{Content: "好呀", DelaySeconds: 0}},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			QueueDepth:              2,
			TurnTimeout:             5 * time.Second,
			GracefulShutdownTimeout: 5 * time.Second,
		},
	}
}

func newTestManager(t *testing.T, runner Runner) (*Manager, *events.Bus) {
	t.Helper()
	bus := events.NewBus(nil)
	m := NewManager(runner, bus, testConfig(), discardLogger())
	t.Cleanup(func() { _ = m.Stop(context.Background()) })
	return m, bus
}

func TestSubmitHappyPath(t *testing.T) {
	runner := &fakeRunner{script: func(_ context.Context, in graph.Input) (*models.TurnState, error) {
		return successState(in), nil
	}}
	m, _ := newTestManager(t, runner)

	res, err := m.Submit(context.Background(), "b1", "u1", "你好")
	require.NoError(t, err)
	assert.Equal(t, models.TurnStatusSuccess, res.Status)
	require.Len(t, res.Segments, 1)
	assert.Equal(t, "好呀", res.Segments[0].Content)
	assert.Equal(t, 1, m.ActiveSessions())
}

func TestMergeAndRestartWhileInterruptible(t *testing.T) {
	entered := make(chan struct{})
	runner := &fakeRunner{}
	runner.script = func(ctx context.Context, in graph.Input) (*models.TurnState, error) {
		in.OnStage(graph.StageDetection)
		if len(runner.inputs()) == 1 {
			// First turn parks at an interruptible stage until canceled.
			select {
			case entered <- struct{}{}:
			default:
			}
			<-ctx.Done()
			return nil, graph.ErrCanceled
		}
		return successState(in), nil
	}
	m, _ := newTestManager(t, runner)

	firstRes := make(chan models.TurnResult, 1)
	go func() {
		res, err := m.Submit(context.Background(), "b1", "u1", "第一句")
		require.NoError(t, err)
		firstRes <- res
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first turn never started")
	}

	res, err := m.Submit(context.Background(), "b1", "u1", "第二句")
	require.NoError(t, err)
	assert.Equal(t, models.TurnStatusSuccess, res.Status)

	select {
	case first := <-firstRes:
		assert.Equal(t, models.TurnStatusSuperseded, first.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("first submitter never resolved")
	}

	calls := runner.inputs()
	require.Len(t, calls, 2)
	assert.Equal(t, "第一句\n第二句", calls[1].UserInput)
	assert.Equal(t, calls[0].TurnID, calls[1].ParentTurnID)
}

func TestEnqueueWhileNotInterruptible(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	runner := &fakeRunner{}
	runner.script = func(_ context.Context, in graph.Input) (*models.TurnState, error) {
		if len(runner.inputs()) == 1 {
			in.OnStage(graph.StageProcess)
			select {
			case entered <- struct{}{}:
			default:
			}
			<-release
		}
		return successState(in), nil
	}
	m, _ := newTestManager(t, runner)

	firstRes := make(chan models.TurnResult, 1)
	go func() {
		res, _ := m.Submit(context.Background(), "b1", "u1", "先来的")
		firstRes <- res
	}()
	<-entered

	secondRes := make(chan models.TurnResult, 1)
	go func() {
		res, _ := m.Submit(context.Background(), "b1", "u1", "后来的")
		secondRes <- res
	}()

	// Give the dispatcher a beat to pull the second submission and decide.
	time.Sleep(50 * time.Millisecond)
	close(release)

	first := <-firstRes
	second := <-secondRes
	assert.Equal(t, models.TurnStatusSuccess, first.Status)
	assert.Equal(t, models.TurnStatusSuccess, second.Status)

	// Two separate turns, no merge.
	calls := runner.inputs()
	require.Len(t, calls, 2)
	assert.Equal(t, "先来的", calls[0].UserInput)
	assert.Equal(t, "后来的", calls[1].UserInput)
}

func TestQueueOverflowCoalescesIntoTail(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	runner := &fakeRunner{}
	runner.script = func(_ context.Context, in graph.Input) (*models.TurnState, error) {
		if len(runner.inputs()) == 1 {
			in.OnStage(graph.StageProcess)
			select {
			case entered <- struct{}{}:
			default:
			}
			<-release
		}
		return successState(in), nil
	}
	m, _ := newTestManager(t, runner)

	var wg sync.WaitGroup
	results := make(chan models.TurnResult, 8)
	submit := func(text string) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := m.Submit(context.Background(), "b1", "u1", text)
			require.NoError(t, err)
			results <- res
		}()
	}

	submit("m1")
	<-entered
	// QueueDepth is 2: m2 and m3 queue, m4 and m5 fold into m3.
	for _, text := range []string{"m2", "m3", "m4", "m5"} {
		submit(text)
		time.Sleep(30 * time.Millisecond)
	}
	close(release)
	wg.Wait()
	close(results)

	var statuses []models.TurnStatus
	for res := range results {
		statuses = append(statuses, res.Status)
	}
	assert.Len(t, statuses, 5)
	for _, st := range statuses {
		assert.Equal(t, models.TurnStatusSuccess, st)
	}

	// m1, m2, and the coalesced m3+m4+m5 — three turns total.
	calls := runner.inputs()
	require.Len(t, calls, 3)
	assert.True(t, strings.Contains(calls[2].UserInput, "m3"))
	assert.True(t, strings.Contains(calls[2].UserInput, "m5"))
}

func TestSubmitValidation(t *testing.T) {
	runner := &fakeRunner{script: func(_ context.Context, in graph.Input) (*models.TurnState, error) {
		return successState(in), nil
	}}
	m, _ := newTestManager(t, runner)

	_, err := m.Submit(context.Background(), "", "u1", "hi")
	assert.Error(t, err)
	_, err = m.Submit(context.Background(), "b1", "u1", "")
	assert.Error(t, err)
}

func TestStopRefusesNewSubmissions(t *testing.T) {
	runner := &fakeRunner{script: func(_ context.Context, in graph.Input) (*models.TurnState, error) {
		return successState(in), nil
	}}
	bus := events.NewBus(nil)
	m := NewManager(runner, bus, testConfig(), discardLogger())

	_, err := m.Submit(context.Background(), "b1", "u1", "你好")
	require.NoError(t, err)
	require.NoError(t, m.Stop(context.Background()))

	_, err = m.Submit(context.Background(), "b1", "u1", "又来")
	assert.ErrorIs(t, err, ErrShuttingDown)

	// Stop is idempotent.
	require.NoError(t, m.Stop(context.Background()))
}

func TestSeparateConversationsRunIndependently(t *testing.T) {
	runner := &fakeRunner{script: func(_ context.Context, in graph.Input) (*models.TurnState, error) {
		return successState(in), nil
	}}
	m, _ := newTestManager(t, runner)

	_, err := m.Submit(context.Background(), "b1", "u1", "一")
	require.NoError(t, err)
	_, err = m.Submit(context.Background(), "b1", "u2", "二")
	require.NoError(t, err)
	assert.Equal(t, 2, m.ActiveSessions())
}
