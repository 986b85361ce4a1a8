package tasks

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/rapport-chat/rapport/pkg/models"
)

// Pool limits.
const (
	// SessionCap is the hard ceiling on tasks carried across turns.
	SessionCap = 20
	// BacklogTarget is how many backlog tasks stay resident in the session
	// pool.
	BacklogTarget = 3
)

// BacklogWeight scores a backlog task for sampling: importance, scaled down
// as the last attempt ages (halving every 3 days) and for every prior
// attempt. Never-attempted tasks keep their full importance.
func BacklogWeight(t models.Task, now time.Time) float64 {
	imp := t.Importance
	if imp == 0 {
		imp = 0.5
	}
	imp = models.ClampRange(imp, 0.01, 1)

	attempts := models.ClampInt(t.AttemptCount, 0, 10)

	ageDays := 0.0
	if !t.LastAttempt.IsZero() {
		ageDays = math.Max(0, now.Sub(t.LastAttempt).Hours()/24)
	}
	recency := 1.0
	if ageDays > 0 {
		recency = math.Pow(0.5, ageDays/3)
	}

	w := imp * recency * math.Pow(0.75, float64(attempts))
	return math.Max(1e-4, w)
}

// SampleBacklog draws up to k distinct tasks from the backlog by weight,
// skipping excluded ids.
func SampleBacklog(backlog []models.Task, exclude map[string]bool, k int, now time.Time, rng *rand.Rand) []models.Task {
	var available []models.Task
	for _, t := range backlog {
		if exclude[t.ID] {
			continue
		}
		available = append(available, t)
	}
	if len(available) == 0 || k <= 0 {
		return nil
	}

	weights := make([]float64, len(available))
	for i, t := range available {
		weights[i] = BacklogWeight(t, now)
	}
	remaining := make([]int, len(available))
	for i := range remaining {
		remaining[i] = i
	}

	draws := min(k, len(available))
	chosen := make([]models.Task, 0, draws)
	for n := 0; n < draws; n++ {
		total := 0.0
		for _, i := range remaining {
			total += weights[i]
		}
		r := rng.Float64() * total
		picked := len(remaining) - 1 // float drift can land past the end
		for pos, i := range remaining {
			if r <= weights[i] {
				picked = pos
				break
			}
			r -= weights[i]
		}
		chosen = append(chosen, available[remaining[picked]])
		remaining = append(remaining[:picked], remaining[picked+1:]...)
	}
	return chosen
}
