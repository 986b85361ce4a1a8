package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/models"
)

func TestRankPrefersEntityMatches(t *testing.T) {
	candidates := []Candidate{
		{Content: "聊过天气", Importance: 0.9, Recency: 1},
		{Content: "用户养了一只猫", Entities: []string{"团子", "橘猫"}, Importance: 0.4, Recency: 0.2},
	}

	items := Rank("团子今天乖吗", candidates, 5)
	require.NotEmpty(t, items)
	assert.Equal(t, "用户养了一只猫", items[0].Content, "entity hit outranks an unrelated high-importance record")
}

func TestRankDropsZeroOverlap(t *testing.T) {
	candidates := []Candidate{
		{Content: "完全无关的记录", Importance: 1, Recency: 1},
	}
	assert.Empty(t, Rank("hello world", candidates, 3))
}

func TestRankTopKAndEmptyQuery(t *testing.T) {
	candidates := []Candidate{
		{Content: "喜欢喝咖啡", Importance: 0.5},
		{Content: "咖啡馆常客", Importance: 0.5},
		{Content: "早上必须来一杯咖啡", Importance: 0.5},
	}
	assert.Len(t, Rank("咖啡", candidates, 2), 2)
	assert.Nil(t, Rank("", candidates, 2))
	assert.Nil(t, Rank("咖啡", candidates, 0))
}

func TestBigramsMixedScript(t *testing.T) {
	grams := bigrams("学go语言2年")
	assert.True(t, grams["go"])
	assert.True(t, grams["语言"])
	// Single CJK runs survive only when the whole run is one character.
	assert.True(t, grams["学"])
	assert.False(t, grams["语"])
}

func TestParseExtractionDefensive(t *testing.T) {
	prior := "之前的对话摘要，记录了两个人聊过的一些日常话题。"

	ext := ParseExtraction(nil, prior)
	assert.Equal(t, prior, ext.NewSummary)
	assert.Equal(t, "chat", ext.TranscriptMeta.Topic)

	// Too-short summary falls back; junk note types coerce; notes cap at 5.
	raw := []byte(`{
		"new_summary": "太短",
		"transcript_meta": {"topic": "  ", "importance": 3.2, "short_context": "` + strings.Repeat("长", 60) + `"},
		"notes": [
			{"note_type": "secret", "content": "用户怕黑", "importance": -1},
			{"note_type": "fact", "content": "   "},
			{"note_type": "fact", "content": "a"}, {"note_type": "fact", "content": "b"},
			{"note_type": "fact", "content": "c"}, {"note_type": "fact", "content": "d"},
			{"note_type": "fact", "content": "e"}
		],
		"spt": {"depth_delta": 4}
	}`)
	ext = ParseExtraction(raw, prior)
	assert.Equal(t, prior, ext.NewSummary)
	assert.Equal(t, "chat", ext.TranscriptMeta.Topic)
	assert.Equal(t, 1.0, ext.TranscriptMeta.Importance)
	assert.Len(t, []rune(ext.TranscriptMeta.ShortContext), 40)
	require.Len(t, ext.Notes, 5)
	assert.Equal(t, "other", ext.Notes[0].NoteType)
	assert.Equal(t, 0.5, ext.Notes[1].Importance)
	assert.Equal(t, 1, ext.SPT.DepthDelta)
}

func TestApplySPT(t *testing.T) {
	spt := models.SPTInfo{Depth: 5, Breadth: 2}
	out := ApplySPT(spt, SPTDelta{DepthDelta: 1, NewTopic: true, Signals: []string{"自我暴露"}})
	assert.Equal(t, 5, out.Depth, "depth saturates at 5")
	assert.Equal(t, 3, out.Breadth)
	assert.Equal(t, "increasing", out.DepthTrend)
	assert.Equal(t, []string{"自我暴露"}, out.RecentSignals)

	out = ApplySPT(out, SPTDelta{DepthDelta: -1})
	assert.Equal(t, 4, out.Depth)
	assert.Equal(t, "decreasing", out.DepthTrend)
}
