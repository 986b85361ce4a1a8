package relationship

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/models"
)

func TestNormalizeDelta(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"grade one", 1, 0.1},
		{"grade minus one", -1, -0.1},
		{"grade max", 3, 0.3},
		{"grade min", -3, -0.3},
		{"fractional grade", 0.5, 0.05},
		{"fractional grade high", 2.5, 0.25},
		{"percentage", 50, 0.5},
		{"negative percentage", -80, -0.8},
		{"percentage limit", 100, 1},
		{"beyond percentage", 101, 1},
		{"far out of range", -500, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeDelta(tt.in), 1e-9)
		})
	}
}

func TestDampedDelta(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		delta float64
		want  float64
	}{
		{"gain at low score passes through", 0.3, 0.1, 0.1},
		{"gain above 0.6 halves", 0.7, 0.1, 0.05},
		{"gain above 0.9 crawls", 0.95, 0.1, 0.01},
		{"gain at exactly 0.6", 0.6, 0.1, 0.05},
		{"gain at exactly 0.9", 0.9, 0.1, 0.01},
		{"loss at low score passes through", 0.5, -0.1, -0.1},
		{"loss above 0.8 amplifies", 0.85, -0.1, -0.15},
		{"loss at exactly 0.8", 0.8, -0.1, -0.15},
		{"zero delta", 0.9, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DampedDelta(tt.score, tt.delta), 1e-9)
		})
	}
}

func TestIsLowInfoGreeting(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"chinese hello", "你好", true},
		{"polite hello", "您好", true},
		{"english hello", "hello", true},
		{"uppercase", "HELLO", true},
		{"hey with punctuation", " Hey!! ", true},
		{"hello with pleasantry", "你好，很高兴认识你！", true},
		{"morning", "早上好。", true},
		{"good night", "晚安", true},
		{"greeting plus content", "hello world", false},
		{"greeting plus question", "你好吗", false},
		{"real message", "今天过得怎么样", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"hi with trailing words", "hi there", false},
		{"at length limit", "你好" + strings.Repeat("！", 30), true},
		{"over length limit", "你好" + strings.Repeat("！", 31), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLowInfoGreeting(tt.text))
		})
	}
}

func TestApplyNeutralTurn(t *testing.T) {
	state := models.DefaultRelationship()
	deltas := map[string]float64{
		"closeness": 1,
		"trust":     -1,
		"liking":    2,
		"warmth":    3,
		"power":     -2,
	}

	ev := Apply(state, deltas, "今天有点累", 5)

	require.False(t, ev.GreetingGate)
	assert.InDelta(t, 0.4, ev.State.Closeness, 1e-9)
	assert.InDelta(t, 0.2, ev.State.Trust, 1e-9)
	assert.InDelta(t, 0.5, ev.State.Liking, 1e-9)
	assert.InDelta(t, 0.6, ev.State.Warmth, 1e-9)
	assert.InDelta(t, 0.3, ev.State.Power, 1e-9)
	assert.InDelta(t, 0.3, ev.State.Respect, 1e-9)
	assert.InDelta(t, 0.1, ev.Applied["closeness"], 1e-9)
	assert.InDelta(t, -0.1, ev.Applied["trust"], 1e-9)
	assert.InDelta(t, 0, ev.Applied["respect"], 1e-9)
}

func TestApplyDampsHighScores(t *testing.T) {
	state := models.DefaultRelationship()
	state.Closeness = 0.92
	state.Trust = 0.65

	ev := Apply(state, map[string]float64{"closeness": 3, "trust": 3}, "那我们聊聊", 10)

	assert.InDelta(t, 0.95, ev.State.Closeness, 1e-9)
	assert.InDelta(t, 0.8, ev.State.Trust, 1e-9)
	assert.InDelta(t, 0.03, ev.Applied["closeness"], 1e-9)
	assert.InDelta(t, 0.15, ev.Applied["trust"], 1e-9)
}

func TestApplyCapsBetrayalLoss(t *testing.T) {
	state := models.DefaultRelationship()
	state.Trust = 0.9

	ev := Apply(state, map[string]float64{"trust": -3}, "你居然骗我", 10)

	// Amplified loss would be -0.45; one turn may move a dimension by 0.30
	// at most.
	assert.InDelta(t, 0.6, ev.State.Trust, 1e-9)
	assert.InDelta(t, -0.3, ev.Applied["trust"], 1e-9)
}

func TestApplyGreetingGate(t *testing.T) {
	state := models.DefaultRelationship()
	deltas := map[string]float64{"liking": 3, "warmth": 3, "respect": 1}

	ev := Apply(state, deltas, "你好", 1)

	require.True(t, ev.GreetingGate)
	// Warm gains are attenuated and capped.
	assert.InDelta(t, 0.36, ev.State.Liking, 1e-9)
	assert.InDelta(t, 0.36, ev.State.Warmth, 1e-9)
	assert.InDelta(t, 0.06, ev.Applied["liking"], 1e-9)
	assert.InDelta(t, 0.335, ev.State.Respect, 1e-9)
	// Familiarity gets its small floor even with zero deltas.
	assert.InDelta(t, 0.32, ev.State.Closeness, 1e-9)
	assert.InDelta(t, 0.32, ev.State.Trust, 1e-9)
	assert.InDelta(t, 0.02, ev.Applied["closeness"], 1e-9)
	// Power is untouched by the gate.
	assert.InDelta(t, 0.5, ev.State.Power, 1e-9)
	assert.InDelta(t, 0, ev.Applied["power"], 1e-9)
}

func TestApplyGreetingGateNeedsShortBuffer(t *testing.T) {
	state := models.DefaultRelationship()

	ev := Apply(state, map[string]float64{"liking": 3}, "你好", 3)

	require.False(t, ev.GreetingGate)
	assert.InDelta(t, 0.6, ev.State.Liking, 1e-9)
	assert.InDelta(t, 0.3, ev.Applied["liking"], 1e-9)
	assert.InDelta(t, 0.3, ev.State.Closeness, 1e-9)
}

func TestNeutralAnalysis(t *testing.T) {
	a := NeutralAnalysis()

	require.Len(t, a.Deltas, len(models.RelationshipDimensions))
	for _, dim := range models.RelationshipDimensions {
		assert.Zero(t, a.Deltas[dim])
	}
	assert.Empty(t, a.DetectedSignals)
	assert.NotEmpty(t, a.ThoughtProcess)
}
