// Package tasks owns the conversational task pools: weighted backlog
// sampling, per-turn candidate assembly for the planner, and post-turn
// settlement of attempted and completed tasks.
package tasks

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rapport-chat/rapport/pkg/models"
)

// understandingKinds keep at most one slot in the searched task list; two
// clarifying questions in one reply reads like an interrogation.
var understandingKinds = map[string]bool{
	"clarify":     true,
	"ask_scope":   true,
	"ask_example": true,
	"confirm_gap": true,
}

var basicInfoProbes = map[string]models.Task{
	"name":       {ID: "ask_user_name", Description: "在合适的时机自然地询问对方的姓名或称呼"},
	"age":        {ID: "ask_user_age", Description: "在合适的时机自然地了解对方的年龄"},
	"gender":     {ID: "ask_user_gender", Description: "在合适的时机自然地了解对方的性别"},
	"occupation": {ID: "ask_user_occupation", Description: "在合适的时机自然地了解对方的职业"},
	"location":   {ID: "ask_user_location", Description: "在合适的时机自然地了解对方是哪里人"},
}

// BasicInfoProbe returns one urgent ask-the-user task for the first missing
// basic-info field, or nil when the profile is complete.
func BasicInfoProbe(info models.UserBasicInfo) *models.Task {
	for _, field := range models.BasicInfoFields {
		val, _ := info.Field(field)
		if strings.TrimSpace(val) != "" {
			continue
		}
		t := basicInfoProbes[field]
		t.Kind = models.KindUrgent
		t.Urgent = true
		t.Importance = 0.85
		t.Source = models.TaskSourceProbe
		return &t
	}
	return nil
}

// MergeUrgent flattens urgent task lists (bot row, detection, probe) into
// one, forcing the urgent kind and a high default importance. Tasks without
// a description are dropped.
func MergeUrgent(lists ...[]models.Task) []models.Task {
	var out []models.Task
	idx := 0
	for _, list := range lists {
		for _, t := range list {
			desc := strings.TrimSpace(t.Description)
			if desc == "" {
				continue
			}
			t.Description = desc
			if t.ID == "" {
				t.ID = fmt.Sprintf("urgent_%d", idx)
			}
			t.Kind = models.KindUrgent
			t.Urgent = true
			if t.Importance == 0 {
				t.Importance = 0.9
			}
			out = append(out, t)
			idx++
		}
	}
	return out
}

// Candidates is the planner working set for one turn: the session pool that
// persists across turns and the daily extras that do not.
type Candidates struct {
	Session []models.Task
	Daily   []models.Task
}

// All returns session then daily tasks, the index space the planner model
// selects from.
func (c Candidates) All() []models.Task {
	all := make([]models.Task, 0, len(c.Session)+len(c.Daily))
	all = append(all, c.Session...)
	return append(all, c.Daily...)
}

// Assemble carries the session pool forward, seeds backlog tasks when none
// are resident, folds in this turn's immediate tasks and samples two daily
// tasks.
func Assemble(session, botBacklog, immediates, dailyPool []models.Task, now time.Time, rng *rand.Rand) Candidates {
	pool := make([]models.Task, 0, len(session))
	existing := make(map[string]bool, len(session))
	backlogResident := 0
	for _, t := range session {
		if strings.TrimSpace(t.Description) == "" {
			continue
		}
		pool = append(pool, t)
		if t.ID != "" {
			existing[t.ID] = true
		}
		if t.Kind == models.KindBacklog {
			backlogResident++
		}
	}

	if backlogResident == 0 && len(botBacklog) > 0 {
		for _, t := range SampleBacklog(botBacklog, existing, BacklogTarget, now, rng) {
			t.Kind = models.KindBacklog
			if t.ID == "" {
				t.ID = fmt.Sprintf("backlog_%d", len(pool))
			}
			if existing[t.ID] {
				continue
			}
			pool = append(pool, t)
			existing[t.ID] = true
		}
	}

	for _, t := range immediates {
		if strings.TrimSpace(t.Description) == "" {
			continue
		}
		if t.ID == "" {
			t.ID = fmt.Sprintf("immediate_%d", len(pool))
		}
		if existing[t.ID] {
			continue
		}
		if t.Kind == "" {
			t.Kind = models.KindImmediate
		}
		if t.TTLTurns <= 0 {
			t.TTLTurns = 4
		}
		pool = append(pool, t)
		existing[t.ID] = true
	}

	if len(pool) > SessionCap {
		pool = pool[len(pool)-SessionCap:]
	}

	var daily []models.Task
	if len(dailyPool) > 0 {
		perm := rng.Perm(len(dailyPool))
		for _, i := range perm[:min(2, len(dailyPool))] {
			daily = append(daily, dailyPool[i])
		}
	}

	return Candidates{Session: pool, Daily: daily}
}

// Selection is the raw planner verdict. Pointer fields distinguish absent
// from zero, since a zero word budget means silence.
type Selection struct {
	WordBudget    *int  `json:"word_budget"`
	TaskBudgetMax *int  `json:"task_budget_max"`
	Top2          []int `json:"top2_indices"`
	RandomIndex   *int  `json:"random_index"`
}

// FallbackSelection is the verdict when the planner call failed: full
// budgets over the first candidates.
func FallbackSelection(candidateCount int) (models.TaskBudget, []int) {
	indices := make([]int, 0, 3)
	for i := 0; i < candidateCount && i < 3; i++ {
		indices = append(indices, i)
	}
	return models.TaskBudget{WordBudget: 60, TaskBudgetMax: 2}, indices
}

// ParseSelection interprets the planner response, clamping budgets and
// dropping out-of-range indices. Unparseable input falls back to full
// budgets over the first candidates.
func ParseSelection(raw []byte, candidateCount int) (models.TaskBudget, []int) {
	var sel Selection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return FallbackSelection(candidateCount)
	}

	budget := models.TaskBudget{WordBudget: 60, TaskBudgetMax: 2}
	if sel.WordBudget != nil {
		budget.WordBudget = models.ClampInt(*sel.WordBudget, 0, 60)
	}
	if sel.TaskBudgetMax != nil {
		budget.TaskBudgetMax = models.ClampInt(*sel.TaskBudgetMax, 0, 2)
	}

	var selected []int
	seen := make(map[int]bool, 3)
	for _, idx := range sel.Top2 {
		if len(selected) == 2 {
			break
		}
		if idx >= 0 && idx < candidateCount && !seen[idx] {
			selected = append(selected, idx)
			seen[idx] = true
		}
	}
	if ri := sel.RandomIndex; ri != nil && *ri >= 0 && *ri < candidateCount && !seen[*ri] {
		selected = append(selected, *ri)
	}
	return budget, selected
}

// PickSearchTasks merges urgent tasks with the model-selected candidates.
// At most three tasks go to search and at most one understanding kind
// survives.
func PickSearchTasks(urgent []models.Task, candidates []models.Task, selected []int) []models.Task {
	out := make([]models.Task, 0, max(3, len(urgent)))
	out = append(out, urgent...)

	slots := 3 - len(urgent)
	if slots <= 0 || len(candidates) == 0 {
		return out
	}

	var normal []models.Task
	for _, idx := range selected {
		if len(normal) >= slots {
			break
		}
		if idx >= 0 && idx < len(candidates) {
			normal = append(normal, candidates[idx])
		}
	}
	return append(out, dedupeUnderstanding(normal)...)
}

// dedupeUnderstanding keeps only the first understanding-kind task, moved
// after the others.
func dedupeUnderstanding(list []models.Task) []models.Task {
	var understanding, others []models.Task
	for _, t := range list {
		if understandingKinds[t.Kind] {
			understanding = append(understanding, t)
		} else {
			others = append(others, t)
		}
	}
	if len(understanding) <= 1 {
		return list
	}
	return append(others, understanding[0])
}

// NoReply reports whether the planner verdict silences the turn. Urgent
// tasks override a zero budget.
func NoReply(budget models.TaskBudget, urgent []models.Task) bool {
	return budget.WordBudget == 0 && len(urgent) == 0
}

// ApplyUrgentFloor raises a zero word budget back to the maximum when
// urgent tasks are present; silence never outranks an urgent goal.
func ApplyUrgentFloor(budget models.TaskBudget, urgent []models.Task) models.TaskBudget {
	if budget.WordBudget == 0 && len(urgent) > 0 {
		budget.WordBudget = 60
	}
	return budget
}
