package segment

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/models"
)

func TestAssignDelaysFirstIsImmediate(t *testing.T) {
	segs := AssignDelays([]string{"嗯。今天有点累。", "你还好吗？"}, 0, 1)
	require.Len(t, segs, 2)

	assert.Equal(t, 0.0, segs[0].DelaySeconds)
	assert.Equal(t, models.ActionIdle, segs[0].Action)

	// 5 runes at 0.2 s/rune floors at 1.0s.
	assert.Equal(t, 1.0, segs[1].DelaySeconds)
	assert.Equal(t, models.ActionTyping, segs[1].Action)
}

func TestAssignDelaysBusynessShortens(t *testing.T) {
	text := []string{"第一条", "这一条很长很长很长很长很长很长很长很长很长很长"}
	idle := AssignDelays(text, 0, 1)
	busy := AssignDelays(text, 0.5, 1)
	assert.InDelta(t, idle[1].DelaySeconds*0.5, busy[1].DelaySeconds, 1e-9)
}

func TestAssignDelaysStageFactorScales(t *testing.T) {
	text := []string{"第一条", "第二条慢慢来"}
	base := AssignDelays(text, 0, 1)
	slow := AssignDelays(text, 0, 2.5)
	assert.InDelta(t, base[1].DelaySeconds*2.5, slow[1].DelaySeconds, 1e-9)
}

func TestAssignDelaysFullBusynessGoesIdle(t *testing.T) {
	segs := AssignDelays([]string{"一", "二二二二二二"}, 1, 1)
	assert.Equal(t, 0.0, segs[1].DelaySeconds)
	assert.Equal(t, models.ActionIdle, segs[1].Action)
}

func TestClampDrafts(t *testing.T) {
	segs := ClampDrafts([]models.SegmentDraft{
		{Content: "先说这个", DelaySeconds: 3},
		{Content: "再说这个", DelaySeconds: -1},
		{Content: "最后", DelaySeconds: 2},
	})
	require.Len(t, segs, 3)
	assert.Equal(t, 0.0, segs[0].DelaySeconds)
	assert.Equal(t, 0.0, segs[1].DelaySeconds)
	assert.Equal(t, models.ActionIdle, segs[1].Action)
	assert.Equal(t, 2.0, segs[2].DelaySeconds)
	assert.Equal(t, models.ActionTyping, segs[2].Action)
}

func TestMacroDelayByStageProbability(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	hits := 0
	for i := 0; i < 1000; i++ {
		on, secs := MacroDelayDecision(0.8, 0, 1800, 7200, rng)
		if on {
			hits++
			assert.GreaterOrEqual(t, secs, 1800.0)
			assert.LessOrEqual(t, secs, 7200.0)
		}
	}
	// Around 800 of 1000 at p=0.8.
	assert.Greater(t, hits, 700)
	assert.Less(t, hits, 900)
}

func TestMacroDelayForcedByBusyness(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	on, secs := MacroDelayDecision(0, 0.9, 1800, 7200, rng)
	require.True(t, on)
	assert.GreaterOrEqual(t, secs, 1800.0)
	assert.LessOrEqual(t, secs, 7200.0)
}

func TestMacroDelayOffInWarmStage(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	for i := 0; i < 100; i++ {
		on, _ := MacroDelayDecision(0, 0.3, 1800, 7200, rng)
		assert.False(t, on)
	}
}
