package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentationTendency(t *testing.T) {
	assert.InDelta(t, 0.64, FragmentationTendency(0.8, 0.6, 0.4), 1e-9)
	assert.Equal(t, 0.0, FragmentationTendency(-1, -1, -1))
	assert.Equal(t, 1.0, FragmentationTendency(1, 1, 1))
}

func TestSplitThreshold(t *testing.T) {
	assert.Equal(t, 19, SplitThreshold(0.64))
	assert.Equal(t, 45, SplitThreshold(0))
	// Extremes clamp to the legal range.
	assert.Equal(t, 5, SplitThreshold(1))
	assert.Equal(t, 60, SplitThreshold(-10))
}

func TestRuleSplitSentenceEnders(t *testing.T) {
	got := RuleSplit("嗯。今天有点累。你还好吗？", 19, 5)
	require.Equal(t, []string{"嗯。今天有点累。", "你还好吗？"}, got)
}

func TestRuleSplitNewlinesAlwaysBreak(t *testing.T) {
	got := RuleSplit("今天天气不错\n要不要出来走走", 60, 5)
	require.Equal(t, []string{"今天天气不错", "要不要出来走走"}, got)
}

func TestRuleSplitSoftBreakAtThreshold(t *testing.T) {
	// No sentence ender until the very end; the comma past the threshold
	// becomes the break point.
	text := "我跟你说今天发生了一件特别离谱的事情，你绝对想不到。"
	got := RuleSplit(text, 10, 5)
	require.Len(t, got, 2)
	assert.True(t, strings.HasSuffix(got[0], "，"))
	assert.Equal(t, "你绝对想不到。", got[1])
}

func TestRuleSplitShortTailMergesBackward(t *testing.T) {
	got := RuleSplit("今天真的好累啊。嗯。", 19, 5)
	require.Equal(t, []string{"今天真的好累啊。嗯。"}, got)
}

func TestRuleSplitAllShortKeepsWhole(t *testing.T) {
	got := RuleSplit("嗯。", 19, 5)
	require.Equal(t, []string{"嗯。"}, got)
}

func TestRuleSplitEmpty(t *testing.T) {
	assert.Nil(t, RuleSplit("   \n  ", 19, 5))
}
