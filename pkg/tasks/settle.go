package tasks

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/rapport-chat/rapport/pkg/models"
)

// SettleInput bundles what settlement needs from a finished turn.
type SettleInput struct {
	Session    []models.Task
	BotBacklog []models.Task
	Plan       models.ReplyPlan
	Searched   []models.Task
	// MarkAttemptedOnFallback counts the searched tasks as attempted when a
	// degenerate plan names none.
	MarkAttemptedOnFallback bool
	Now                     time.Time
	Rng                     *rand.Rand
}

// SettleResult carries the converged pools to persist plus counters for
// logging.
type SettleResult struct {
	Session      []models.Task
	BotBacklog   []models.Task
	Completed    int
	Attempted    int
	Bumped       int
	AddedBacklog int
}

// Settle applies the plan's task bookkeeping after a turn: completed tasks
// leave every pool, attempted-but-unfinished ones get their attempt count
// bumped, immediate tasks burn TTL, and the resident backlog re-converges
// to its target size.
func Settle(in SettleInput) SettleResult {
	completed := idSet(in.Plan.CompletedTaskIDs)
	attempted := idSet(in.Plan.AttemptedTaskIDs)
	if len(attempted) == 0 && in.Plan.Degenerate && in.MarkAttemptedOnFallback {
		for _, t := range in.Searched {
			if t.ID != "" {
				attempted[t.ID] = true
			}
		}
	}

	// Only backlog and immediate kinds stay resident between turns.
	session := make([]models.Task, 0, len(in.Session))
	for _, t := range in.Session {
		if completed[t.ID] {
			continue
		}
		if t.Kind != models.KindBacklog && t.Kind != models.KindImmediate {
			continue
		}
		session = append(session, t)
	}

	bumped := 0
	bump := func(t *models.Task) bool {
		if t.ID == "" || completed[t.ID] || !attempted[t.ID] {
			return false
		}
		t.AttemptCount++
		t.LastAttempt = in.Now
		return true
	}
	for i := range session {
		if bump(&session[i]) {
			bumped++
		}
	}
	backlogList := make([]models.Task, len(in.BotBacklog))
	copy(backlogList, in.BotBacklog)
	for i := range backlogList {
		bump(&backlogList[i])
	}

	session = decayTTL(session)

	// Completed backlog tasks leave the bot list for good.
	for id := range completed {
		for i, t := range backlogList {
			if t.ID == id && t.Kind == models.KindBacklog {
				backlogList = append(backlogList[:i], backlogList[i+1:]...)
				break
			}
		}
	}

	// Converge the resident backlog to its target: keep the earliest when
	// over, replenish by weighted sampling when under.
	var backlogItems, immediateItems []models.Task
	for _, t := range session {
		if t.Kind == models.KindBacklog {
			backlogItems = append(backlogItems, t)
		} else {
			immediateItems = append(immediateItems, t)
		}
	}
	if len(backlogItems) > BacklogTarget {
		backlogItems = backlogItems[:BacklogTarget]
		session = append(append([]models.Task{}, backlogItems...), immediateItems...)
	}

	added := 0
	if need := BacklogTarget - len(backlogItems); need > 0 {
		existing := make(map[string]bool, len(session))
		for _, t := range session {
			if t.ID != "" {
				existing[t.ID] = true
			}
		}
		for _, t := range SampleBacklog(backlogList, existing, need, in.Now, in.Rng) {
			t.Kind = models.KindBacklog
			if t.ID == "" {
				t.ID = fmt.Sprintf("backlog_%d", len(session))
			}
			session = append(session, t)
			added++
		}
	}

	session = capSession(session)

	return SettleResult{
		Session:      session,
		BotBacklog:   backlogList,
		Completed:    len(completed),
		Attempted:    len(attempted),
		Bumped:       bumped,
		AddedBacklog: added,
	}
}

// decayTTL burns one turn of immediate-task TTL and drops expired tasks.
// An immediate task without a TTL lives exactly one settlement.
func decayTTL(list []models.Task) []models.Task {
	out := make([]models.Task, 0, len(list))
	for _, t := range list {
		if t.Kind != models.KindImmediate {
			out = append(out, t)
			continue
		}
		ttl := t.TTLTurns
		if ttl <= 0 {
			ttl = 1
		}
		ttl--
		if ttl <= 0 {
			continue
		}
		t.TTLTurns = ttl
		out = append(out, t)
	}
	return out
}

// capSession enforces the hard pool ceiling, preferring immediate tasks,
// then frequently attempted and important ones, newest winning ties.
// Survivors keep their original order.
func capSession(list []models.Task) []models.Task {
	if len(list) <= SessionCap {
		return list
	}

	type rank struct {
		immediate  int
		attempts   int
		importance float64
		idx        int
	}
	ranks := make([]rank, len(list))
	for i, t := range list {
		r := rank{attempts: min(10, t.AttemptCount), importance: t.Importance, idx: i}
		if t.Kind == models.KindImmediate {
			r.immediate = 1
		}
		if r.importance == 0 {
			r.importance = 0.5
		}
		ranks[i] = r
	}

	order := make([]int, len(list))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ra, rb := ranks[order[a]], ranks[order[b]]
		if ra.immediate != rb.immediate {
			return ra.immediate > rb.immediate
		}
		if ra.attempts != rb.attempts {
			return ra.attempts > rb.attempts
		}
		if ra.importance != rb.importance {
			return ra.importance > rb.importance
		}
		return ra.idx > rb.idx
	})

	keep := make(map[int]bool, SessionCap)
	for _, i := range order[:SessionCap] {
		keep[i] = true
	}
	out := make([]models.Task, 0, SessionCap)
	for i, t := range list {
		if keep[i] {
			out = append(out, t)
		}
	}
	return out
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		if s := strings.TrimSpace(id); s != "" {
			set[s] = true
		}
	}
	return set
}
