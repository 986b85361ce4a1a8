package tasks

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapport-chat/rapport/pkg/models"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func mkTask(id, kind string) models.Task {
	return models.Task{ID: id, Description: "任务 " + id, Kind: kind}
}

func TestBasicInfoProbe(t *testing.T) {
	t.Run("empty profile asks for name first", func(t *testing.T) {
		probe := BasicInfoProbe(models.UserBasicInfo{})

		require.NotNil(t, probe)
		assert.Equal(t, "ask_user_name", probe.ID)
		assert.Equal(t, models.KindUrgent, probe.Kind)
		assert.True(t, probe.Urgent)
		assert.InDelta(t, 0.85, probe.Importance, 1e-9)
		assert.Equal(t, models.TaskSourceProbe, probe.Source)
	})

	t.Run("blank name counts as missing", func(t *testing.T) {
		probe := BasicInfoProbe(models.UserBasicInfo{Name: "   "})

		require.NotNil(t, probe)
		assert.Equal(t, "ask_user_name", probe.ID)
	})

	t.Run("next missing field", func(t *testing.T) {
		probe := BasicInfoProbe(models.UserBasicInfo{Name: "小明"})

		require.NotNil(t, probe)
		assert.Equal(t, "ask_user_age", probe.ID)
	})

	t.Run("complete profile", func(t *testing.T) {
		probe := BasicInfoProbe(models.UserBasicInfo{
			Name:       "小明",
			AgeGroup:   "25",
			Gender:     "male",
			Occupation: "工程师",
			Location:   "上海",
		})

		assert.Nil(t, probe)
	})
}

func TestMergeUrgent(t *testing.T) {
	bot := []models.Task{
		{Description: "提醒他明天降温"},
		{Description: "   "},
	}
	detection := []models.Task{
		{ID: "det_1", Description: " 问问考试结果 ", Importance: 0.7},
	}

	out := MergeUrgent(bot, detection)

	require.Len(t, out, 2)
	assert.Equal(t, "urgent_0", out[0].ID)
	assert.Equal(t, models.KindUrgent, out[0].Kind)
	assert.True(t, out[0].Urgent)
	assert.InDelta(t, 0.9, out[0].Importance, 1e-9)
	assert.Equal(t, "det_1", out[1].ID)
	assert.Equal(t, "问问考试结果", out[1].Description)
	assert.InDelta(t, 0.7, out[1].Importance, 1e-9)
}

func TestAssembleSeedsBacklogWhenNoneResident(t *testing.T) {
	botBacklog := []models.Task{mkTask("b1", models.KindBacklog), mkTask("b2", models.KindBacklog), mkTask("b3", models.KindBacklog)}
	daily := []models.Task{mkTask("d1", models.KindDaily), mkTask("d2", models.KindDaily)}

	c := Assemble(nil, botBacklog, nil, daily, time.Now(), testRng())

	require.Len(t, c.Session, 3)
	ids := []string{c.Session[0].ID, c.Session[1].ID, c.Session[2].ID}
	assert.ElementsMatch(t, []string{"b1", "b2", "b3"}, ids)
	for _, task := range c.Session {
		assert.Equal(t, models.KindBacklog, task.Kind)
	}
	require.Len(t, c.Daily, 2)
	assert.ElementsMatch(t, []string{"d1", "d2"}, []string{c.Daily[0].ID, c.Daily[1].ID})
	assert.Len(t, c.All(), 5)
}

func TestAssembleKeepsResidentBacklog(t *testing.T) {
	session := []models.Task{mkTask("b1", models.KindBacklog)}
	botBacklog := []models.Task{mkTask("b2", models.KindBacklog), mkTask("b3", models.KindBacklog)}

	c := Assemble(session, botBacklog, nil, nil, time.Now(), testRng())

	require.Len(t, c.Session, 1)
	assert.Equal(t, "b1", c.Session[0].ID)
	assert.Empty(t, c.Daily)
}

func TestAssembleImmediates(t *testing.T) {
	immediates := []models.Task{
		{Description: ""},
		{Description: "今晚问他睡得怎么样"},
		{ID: "m2", Description: "确认他说的展览是哪场", Kind: "clarify"},
		{ID: "m2", Description: "重复的任务"},
	}

	c := Assemble(nil, nil, immediates, nil, time.Now(), testRng())

	require.Len(t, c.Session, 2)
	assert.Equal(t, "immediate_0", c.Session[0].ID)
	assert.Equal(t, models.KindImmediate, c.Session[0].Kind)
	assert.Equal(t, 4, c.Session[0].TTLTurns)
	assert.Equal(t, "m2", c.Session[1].ID)
	assert.Equal(t, "clarify", c.Session[1].Kind)
	assert.Equal(t, 4, c.Session[1].TTLTurns)
}

func TestAssembleCapKeepsNewest(t *testing.T) {
	session := make([]models.Task, 0, SessionCap)
	for i := 0; i < SessionCap; i++ {
		task := mkTask(fmt.Sprintf("s%d", i), models.KindImmediate)
		task.TTLTurns = 5
		session = append(session, task)
	}
	immediates := []models.Task{mkTask("i0", models.KindImmediate), mkTask("i1", models.KindImmediate), mkTask("i2", models.KindImmediate)}

	c := Assemble(session, nil, immediates, nil, time.Now(), testRng())

	require.Len(t, c.Session, SessionCap)
	assert.Equal(t, "s3", c.Session[0].ID)
	assert.Equal(t, "i2", c.Session[SessionCap-1].ID)
}

func TestParseSelection(t *testing.T) {
	t.Run("full verdict", func(t *testing.T) {
		budget, selected := ParseSelection([]byte(`{"word_budget": 30, "task_budget_max": 1, "top2_indices": [2, 0], "random_index": 4}`), 5)

		assert.Equal(t, models.TaskBudget{WordBudget: 30, TaskBudgetMax: 1}, budget)
		assert.Equal(t, []int{2, 0, 4}, selected)
	})

	t.Run("missing budgets default to full", func(t *testing.T) {
		budget, selected := ParseSelection([]byte(`{"top2_indices": [0]}`), 3)

		assert.Equal(t, models.TaskBudget{WordBudget: 60, TaskBudgetMax: 2}, budget)
		assert.Equal(t, []int{0}, selected)
	})

	t.Run("explicit zero word budget survives", func(t *testing.T) {
		budget, _ := ParseSelection([]byte(`{"word_budget": 0, "task_budget_max": 0}`), 3)

		assert.Zero(t, budget.WordBudget)
		assert.Zero(t, budget.TaskBudgetMax)
	})

	t.Run("budgets clamp", func(t *testing.T) {
		budget, _ := ParseSelection([]byte(`{"word_budget": 120, "task_budget_max": -1}`), 3)

		assert.Equal(t, 60, budget.WordBudget)
		assert.Zero(t, budget.TaskBudgetMax)
	})

	t.Run("out of range and duplicate indices drop", func(t *testing.T) {
		_, selected := ParseSelection([]byte(`{"top2_indices": [9, 1, 1], "random_index": 1}`), 3)

		assert.Equal(t, []int{1}, selected)
	})

	t.Run("unparseable falls back", func(t *testing.T) {
		budget, selected := ParseSelection([]byte(`预算全开`), 4)

		assert.Equal(t, models.TaskBudget{WordBudget: 60, TaskBudgetMax: 2}, budget)
		assert.Equal(t, []int{0, 1, 2}, selected)
	})
}

func TestPickSearchTasks(t *testing.T) {
	t.Run("urgent fills slots first", func(t *testing.T) {
		urgent := []models.Task{mkTask("u1", models.KindUrgent), mkTask("u2", models.KindUrgent)}
		candidates := []models.Task{mkTask("c0", models.KindBacklog), mkTask("c1", models.KindDaily)}

		out := PickSearchTasks(urgent, candidates, []int{0, 1})

		require.Len(t, out, 3)
		assert.Equal(t, "u1", out[0].ID)
		assert.Equal(t, "u2", out[1].ID)
		assert.Equal(t, "c0", out[2].ID)
	})

	t.Run("all urgent when three or more", func(t *testing.T) {
		urgent := []models.Task{mkTask("u1", models.KindUrgent), mkTask("u2", models.KindUrgent), mkTask("u3", models.KindUrgent), mkTask("u4", models.KindUrgent)}

		out := PickSearchTasks(urgent, []models.Task{mkTask("c0", models.KindDaily)}, []int{0})

		assert.Len(t, out, 4)
	})

	t.Run("single understanding task survives, moved last", func(t *testing.T) {
		candidates := []models.Task{
			mkTask("d", models.KindDaily),
			mkTask("c1", "clarify"),
			mkTask("b", models.KindBacklog),
			mkTask("c2", "ask_example"),
		}

		out := PickSearchTasks(nil, candidates, []int{1, 0, 3})

		require.Len(t, out, 2)
		assert.Equal(t, "d", out[0].ID)
		assert.Equal(t, "c1", out[1].ID)
	})
}

func TestNoReplyVerdict(t *testing.T) {
	urgent := []models.Task{mkTask("u1", models.KindUrgent)}

	assert.True(t, NoReply(models.TaskBudget{WordBudget: 0}, nil))
	assert.False(t, NoReply(models.TaskBudget{WordBudget: 0}, urgent))
	assert.False(t, NoReply(models.TaskBudget{WordBudget: 20}, nil))
}

func TestApplyUrgentFloor(t *testing.T) {
	urgent := []models.Task{mkTask("u1", models.KindUrgent)}

	floored := ApplyUrgentFloor(models.TaskBudget{WordBudget: 0, TaskBudgetMax: 2}, urgent)
	assert.Equal(t, 60, floored.WordBudget)

	kept := ApplyUrgentFloor(models.TaskBudget{WordBudget: 25}, urgent)
	assert.Equal(t, 25, kept.WordBudget)

	silent := ApplyUrgentFloor(models.TaskBudget{WordBudget: 0}, nil)
	assert.Zero(t, silent.WordBudget)
}
