package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/events"
	"github.com/rapport-chat/rapport/pkg/graph"
	"github.com/rapport-chat/rapport/pkg/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func collectSegments(t *testing.T, ch <-chan events.Event, want int) []events.Event {
	t.Helper()
	var got []events.Event
	deadline := time.After(3 * time.Second)
	for len(got) < want {
		select {
		case ev := <-ch:
			if ev.Type == events.EventTypeSegment {
				got = append(got, ev)
			}
		case <-deadline:
			t.Fatalf("expected %d segment events, got %d", want, len(got))
		}
	}
	return got
}

func TestEmitterDeliversSegmentsInOrder(t *testing.T) {
	runner := &fakeRunner{script: func(_ context.Context, in graph.Input) (*models.TurnState, error) {
		st := successState(in)
		st.FinalSegments = []models.Segment{
			{Content: "嗯。", DelaySeconds: 0},
			{Content: "今天有点累。", DelaySeconds: 1.2, Action: models.ActionTyping},
			{Content: "你还好吗？", DelaySeconds: 1.0, Action: models.ActionTyping},
		}
		st.FinalResponse = "嗯。今天有点累。你还好吗？"
		return st, nil
	}}

	bus := events.NewBus(nil)
	m := NewManager(runner, bus, testConfig(), discardLogger())
	t.Cleanup(func() { _ = m.Stop(context.Background()) })

	ch, cancel := bus.Subscribe(32)
	defer cancel()

	// Shrink real-time delays for the test.
	d, err := m.dispatcher("b1", "u1")
	require.NoError(t, err)
	d.delayUnit = time.Millisecond

	res, err := m.Submit(context.Background(), "b1", "u1", "在吗")
	require.NoError(t, err)
	require.Equal(t, models.TurnStatusSuccess, res.Status)

	got := collectSegments(t, ch, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{got[0].Seq, got[1].Seq, got[2].Seq})
	assert.Equal(t, "嗯。", got[0].Content)
	assert.Equal(t, "typing", got[1].Action)
}

func TestNewTurnDiscardsUnsentSegments(t *testing.T) {
	runner := &fakeRunner{}
	runner.script = func(_ context.Context, in graph.Input) (*models.TurnState, error) {
		st := successState(in)
		if len(runner.inputs()) == 1 {
			// Long tail the next turn should cut off.
			st.FinalSegments = []models.Segment{
				{Content: "先发这条", DelaySeconds: 0},
				{Content: "这条永远到不了", DelaySeconds: 600},
			}
		} else {
			st.FinalSegments = []models.Segment{{Content: "新回复", DelaySeconds: 0}}
		}
		return st, nil
	}

	bus := events.NewBus(nil)
	m := NewManager(runner, bus, testConfig(), discardLogger())
	t.Cleanup(func() { _ = m.Stop(context.Background()) })

	ch, cancel := bus.Subscribe(32)
	defer cancel()

	_, err := m.Submit(context.Background(), "b1", "u1", "第一轮")
	require.NoError(t, err)
	_, err = m.Submit(context.Background(), "b1", "u1", "第二轮")
	require.NoError(t, err)

	got := collectSegments(t, ch, 2)
	assert.Equal(t, "先发这条", got[0].Content)
	assert.Equal(t, "新回复", got[1].Content)

	// The delayed tail of turn one must never arrive.
	select {
	case ev := <-ch:
		if ev.Type == events.EventTypeSegment {
			t.Fatalf("unexpected segment after supersession: %q", ev.Content)
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTurnErrorSurfacesToWaiter(t *testing.T) {
	runner := &fakeRunner{script: func(_ context.Context, _ graph.Input) (*models.TurnState, error) {
		return nil, assert.AnError
	}}
	m, _ := newTestManager(t, runner)

	res, err := m.Submit(context.Background(), "b1", "u1", "在吗")
	require.NoError(t, err)
	assert.Equal(t, models.TurnStatusError, res.Status)
	require.NotEmpty(t, res.Errors)
	assert.Equal(t, models.ErrKindFatal, res.Errors[0].Kind)
}

func TestLifecycleEventsPublished(t *testing.T) {
	runner := &fakeRunner{script: func(_ context.Context, in graph.Input) (*models.TurnState, error) {
		return successState(in), nil
	}}
	bus := events.NewBus(nil)
	m := NewManager(runner, bus, testConfig(), discardLogger())
	t.Cleanup(func() { _ = m.Stop(context.Background()) })

	ch, cancel := bus.Subscribe(32)
	defer cancel()

	_, err := m.Submit(context.Background(), "b1", "u1", "你好")
	require.NoError(t, err)

	var types []string
	deadline := time.After(2 * time.Second)
	for len(types) < 2 {
		select {
		case ev := <-ch:
			if ev.Type == events.EventTypeTurnStarted || ev.Type == events.EventTypeTurnCompleted {
				types = append(types, ev.Type)
			}
		case <-deadline:
			t.Fatal("lifecycle events not delivered")
		}
	}
	assert.Equal(t, []string{events.EventTypeTurnStarted, events.EventTypeTurnCompleted}, types)
}
