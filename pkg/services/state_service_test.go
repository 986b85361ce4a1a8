package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/models"
)

func TestTaskListDocRoundTrip(t *testing.T) {
	list := models.TaskList{
		Session: []models.Task{
			{ID: "t1", Description: "问问周末计划", Importance: 0.6, Kind: models.KindImmediate, TTLTurns: 3},
		},
		Backlog: []models.Task{
			{ID: "t2", Description: "提到过想学吉他", Importance: 0.4, Source: models.TaskSourceBacklog},
			{ID: "t3", Description: "生日快到了", Importance: 0.8, CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	docs := taskListDoc(list)
	require.Len(t, docs, 3)
	assert.Equal(t, "session", docs[0]["pool"])
	assert.Equal(t, "backlog", docs[1]["pool"])

	// Through the generic slice form, as ent stores it.
	decoded := decodeTaskList(toJSONSlice(docs))
	require.Len(t, decoded.Session, 1)
	require.Len(t, decoded.Backlog, 2)
	assert.Equal(t, "t1", decoded.Session[0].ID)
	assert.Equal(t, 3, decoded.Session[0].TTLTurns)
	assert.Equal(t, "t3", decoded.Backlog[1].ID)
	assert.InDelta(t, 0.8, decoded.Backlog[1].Importance, 1e-9)
}

func TestDecodeTaskListTolerance(t *testing.T) {
	docs := []interface{}{
		"not a map",
		map[string]interface{}{"pool": "session"}, // no description
		map[string]interface{}{"id": "x", "description": "漂流任务"},
	}
	decoded := decodeTaskList(docs)
	assert.Empty(t, decoded.Session)
	require.Len(t, decoded.Backlog, 1)
	assert.Equal(t, "漂流任务", decoded.Backlog[0].Description)
}

func TestJSONCodecRoundTrip(t *testing.T) {
	mood := models.MoodState{Pleasure: 0.2, Arousal: -0.1, Dominance: 0.3, Busyness: 0.7}
	m := toJSONMap(mood)
	assert.InDelta(t, 0.7, m["busyness"], 1e-9)

	var back models.MoodState
	require.NoError(t, fromJSON(m, &back))
	assert.Equal(t, mood, back)
}

func TestRecency(t *testing.T) {
	assert.Equal(t, 1.0, recency(0, 1))
	assert.Equal(t, 1.0, recency(0, 4))
	assert.Equal(t, 0.25, recency(3, 4))
}

func TestPersistBackoffGrows(t *testing.T) {
	assert.Less(t, persistBackoff(0), persistBackoff(1))
}
