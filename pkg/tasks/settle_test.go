package tasks

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/models"
)

func TestBacklogWeight(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("never attempted keeps full importance", func(t *testing.T) {
		w := BacklogWeight(models.Task{Importance: 0.8}, now)
		assert.InDelta(t, 0.8, w, 1e-9)
	})

	t.Run("zero importance defaults to half", func(t *testing.T) {
		w := BacklogWeight(models.Task{}, now)
		assert.InDelta(t, 0.5, w, 1e-9)
	})

	t.Run("age and attempts decay", func(t *testing.T) {
		task := models.Task{
			Importance:   0.8,
			AttemptCount: 2,
			LastAttempt:  now.Add(-72 * time.Hour),
		}
		// 0.8 * 0.5^(3/3) * 0.75^2
		assert.InDelta(t, 0.225, BacklogWeight(task, now), 1e-9)
	})

	t.Run("bounds clamp", func(t *testing.T) {
		task := models.Task{Importance: 5, AttemptCount: 50}
		// importance caps at 1, attempts at 10
		assert.InDelta(t, 0.0563135147095, BacklogWeight(task, now), 1e-9)
	})

	t.Run("weight floor", func(t *testing.T) {
		task := models.Task{
			Importance:   0.01,
			AttemptCount: 10,
			LastAttempt:  now.Add(-30 * 24 * time.Hour),
		}
		assert.InDelta(t, 1e-4, BacklogWeight(task, now), 1e-12)
	})
}

func TestSampleBacklog(t *testing.T) {
	now := time.Now()
	backlog := []models.Task{mkTask("x", models.KindBacklog), mkTask("y", models.KindBacklog), mkTask("z", models.KindBacklog)}

	t.Run("draws distinct tasks", func(t *testing.T) {
		out := SampleBacklog(backlog, nil, 3, now, testRng())

		require.Len(t, out, 3)
		assert.ElementsMatch(t, []string{"x", "y", "z"}, []string{out[0].ID, out[1].ID, out[2].ID})
	})

	t.Run("exclusion and short supply", func(t *testing.T) {
		out := SampleBacklog(backlog, map[string]bool{"y": true}, 5, now, testRng())

		require.Len(t, out, 2)
		for _, task := range out {
			assert.NotEqual(t, "y", task.ID)
		}
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Nil(t, SampleBacklog(nil, nil, 3, now, testRng()))
		assert.Nil(t, SampleBacklog(backlog, nil, 0, now, testRng()))
	})
}

func TestSettleCompletedAndAttempted(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m1 := mkTask("m1", models.KindImmediate)
	m1.TTLTurns = 2

	res := Settle(SettleInput{
		Session:    []models.Task{mkTask("b1", models.KindBacklog), m1},
		BotBacklog: []models.Task{mkTask("b1", models.KindBacklog), mkTask("b2", models.KindBacklog)},
		Plan: models.ReplyPlan{
			CompletedTaskIDs: []string{"b1"},
			AttemptedTaskIDs: []string{"m1"},
		},
		Now: now,
		Rng: testRng(),
	})

	require.Len(t, res.Session, 2)
	assert.Equal(t, "m1", res.Session[0].ID)
	assert.Equal(t, 1, res.Session[0].AttemptCount)
	assert.Equal(t, 1, res.Session[0].TTLTurns)
	assert.Equal(t, now, res.Session[0].LastAttempt)
	// b1 completed its backlog task for good; b2 was sampled back in.
	assert.Equal(t, "b2", res.Session[1].ID)
	require.Len(t, res.BotBacklog, 1)
	assert.Equal(t, "b2", res.BotBacklog[0].ID)
	assert.Equal(t, 1, res.Completed)
	assert.Equal(t, 1, res.Attempted)
	assert.Equal(t, 1, res.Bumped)
	assert.Equal(t, 1, res.AddedBacklog)
}

func TestSettleDegenerateFallbackMarksSearched(t *testing.T) {
	now := time.Now()
	searched := []models.Task{mkTask("b1", models.KindBacklog)}

	t.Run("enabled", func(t *testing.T) {
		res := Settle(SettleInput{
			Session:                 []models.Task{mkTask("b1", models.KindBacklog)},
			BotBacklog:              []models.Task{mkTask("b1", models.KindBacklog)},
			Plan:                    models.ReplyPlan{Degenerate: true},
			Searched:                searched,
			MarkAttemptedOnFallback: true,
			Now:                     now,
			Rng:                     testRng(),
		})

		require.Len(t, res.Session, 1)
		assert.Equal(t, 1, res.Session[0].AttemptCount)
		assert.Equal(t, 1, res.BotBacklog[0].AttemptCount)
		assert.Equal(t, 1, res.Bumped)
	})

	t.Run("disabled", func(t *testing.T) {
		res := Settle(SettleInput{
			Session:    []models.Task{mkTask("b1", models.KindBacklog)},
			BotBacklog: []models.Task{mkTask("b1", models.KindBacklog)},
			Plan:       models.ReplyPlan{Degenerate: true},
			Searched:   searched,
			Now:        now,
			Rng:        testRng(),
		})

		assert.Zero(t, res.Session[0].AttemptCount)
		assert.Zero(t, res.Bumped)
	})

	t.Run("structured plan without ids marks nothing", func(t *testing.T) {
		res := Settle(SettleInput{
			Session:                 []models.Task{mkTask("b1", models.KindBacklog)},
			BotBacklog:              []models.Task{mkTask("b1", models.KindBacklog)},
			Plan:                    models.ReplyPlan{Messages: []models.SegmentDraft{{Content: "嗯嗯"}}},
			Searched:                searched,
			MarkAttemptedOnFallback: true,
			Now:                     now,
			Rng:                     testRng(),
		})

		assert.Zero(t, res.Session[0].AttemptCount)
	})
}

func TestSettleTTLDecay(t *testing.T) {
	m0 := mkTask("m0", models.KindImmediate) // no TTL set: lives one settlement
	m1 := mkTask("m1", models.KindImmediate)
	m1.TTLTurns = 1
	m3 := mkTask("m3", models.KindImmediate)
	m3.TTLTurns = 3

	res := Settle(SettleInput{
		Session: []models.Task{m0, m1, m3},
		Now:     time.Now(),
		Rng:     testRng(),
	})

	require.Len(t, res.Session, 1)
	assert.Equal(t, "m3", res.Session[0].ID)
	assert.Equal(t, 2, res.Session[0].TTLTurns)
}

func TestSettleDropsNonResidentKinds(t *testing.T) {
	res := Settle(SettleInput{
		Session: []models.Task{
			mkTask("d1", models.KindDaily),
			mkTask("c1", "clarify"),
			mkTask("b1", models.KindBacklog),
		},
		Now: time.Now(),
		Rng: testRng(),
	})

	require.Len(t, res.Session, 1)
	assert.Equal(t, "b1", res.Session[0].ID)
}

func TestSettleBacklogTrimsToTarget(t *testing.T) {
	session := []models.Task{
		mkTask("b1", models.KindBacklog),
		mkTask("b2", models.KindBacklog),
		mkTask("b3", models.KindBacklog),
		mkTask("b4", models.KindBacklog),
		mkTask("b5", models.KindBacklog),
	}
	m1 := mkTask("m1", models.KindImmediate)
	m1.TTLTurns = 5
	session = append(session, m1)

	res := Settle(SettleInput{Session: session, Now: time.Now(), Rng: testRng()})

	require.Len(t, res.Session, 4)
	// Earliest backlog residents survive; immediates follow.
	assert.Equal(t, "b1", res.Session[0].ID)
	assert.Equal(t, "b2", res.Session[1].ID)
	assert.Equal(t, "b3", res.Session[2].ID)
	assert.Equal(t, "m1", res.Session[3].ID)
	assert.Equal(t, 4, res.Session[3].TTLTurns)
}

func TestSettleCapPrefersImmediate(t *testing.T) {
	session := []models.Task{
		mkTask("b1", models.KindBacklog),
		mkTask("b2", models.KindBacklog),
		mkTask("b3", models.KindBacklog),
	}
	for i := 1; i <= 19; i++ {
		task := mkTask(fmt.Sprintf("i%d", i), models.KindImmediate)
		task.TTLTurns = 5
		session = append(session, task)
	}

	res := Settle(SettleInput{Session: session, Now: time.Now(), Rng: testRng()})

	require.Len(t, res.Session, SessionCap)
	// All 19 immediates survive; the newest backlog task wins the tiebreak
	// and keeps its original position.
	assert.Equal(t, "b3", res.Session[0].ID)
	assert.Equal(t, "i1", res.Session[1].ID)
	assert.Equal(t, "i19", res.Session[SessionCap-1].ID)
}
