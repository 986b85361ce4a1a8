package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/models"
)

func seg(content string, delay float64) models.Segment {
	action := models.ActionIdle
	if delay > 0 {
		action = models.ActionTyping
	}
	return models.Segment{Content: content, DelaySeconds: delay, Action: action}
}

func TestValidatePassThrough(t *testing.T) {
	v := Validator{MaxMessages: 5, MinFirstLen: 2, MaxMessageLen: 200}
	in := []models.Segment{seg("今天过得怎么样？", 0), seg("我这边刚忙完。", 2)}
	assert.Equal(t, in, v.Validate(in))
}

func TestValidateTailMergesIntoLastAllowed(t *testing.T) {
	v := Validator{MaxMessages: 3, MinFirstLen: 2, MaxMessageLen: 200}
	got := v.Validate([]models.Segment{
		seg("一一一一", 0), seg("二二二二", 1), seg("三三", 1), seg("四四", 1), seg("五五", 1),
	})
	require.Len(t, got, 3)
	assert.Equal(t, "三三四四五五", got[2].Content)
	assert.Equal(t, 1.0, got[2].DelaySeconds)
}

func TestValidateShortFirstMergesWithSecond(t *testing.T) {
	v := Validator{MaxMessages: 5, MinFirstLen: 8, MaxMessageLen: 200}
	got := v.Validate([]models.Segment{seg("嗯。", 0), seg("今天有点累。", 2), seg("你呢？", 1)})
	require.Len(t, got, 2)
	assert.Equal(t, "嗯。今天有点累。", got[0].Content)
	// The merged bubble is still the first one and sends immediately.
	assert.Equal(t, 0.0, got[0].DelaySeconds)
	assert.Equal(t, models.ActionIdle, got[0].Action)
	assert.Equal(t, "你呢？", got[1].Content)
}

func TestValidateMergedFirstSegmentSendsImmediately(t *testing.T) {
	v := Validator{MaxMessages: 5, MinFirstLen: 8, MaxMessageLen: 200}
	got := v.Validate(AssignDelays([]string{"嗯，好吧。", "那我们明天下午再去公园散步吧。"}, 0, 1))
	require.Len(t, got, 1)
	assert.Equal(t, "嗯，好吧。那我们明天下午再去公园散步吧。", got[0].Content)
	assert.Equal(t, 0.0, got[0].DelaySeconds)
	assert.Equal(t, models.ActionIdle, got[0].Action)
}

func TestValidateDropsEmptyAndTruncatesLong(t *testing.T) {
	v := Validator{MaxMessages: 5, MinFirstLen: 2, MaxMessageLen: 4}
	got := v.Validate([]models.Segment{seg("  ", 0), seg("一二三四五六", 1)})
	require.Len(t, got, 1)
	assert.Equal(t, "一二三四", got[0].Content)
}

func TestValidateEmptyFallsBackToApology(t *testing.T) {
	v := Validator{MaxMessages: 5, MinFirstLen: 2, MaxMessageLen: 200}
	got := v.Validate(nil)
	require.Len(t, got, 1)
	assert.Equal(t, Apology, got[0].Content)
	assert.Equal(t, models.ActionIdle, got[0].Action)
}
