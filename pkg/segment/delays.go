package segment

import (
	"math/rand/v2"

	"github.com/rapport-chat/rapport/pkg/models"
)

// typingRate is the simulated typing speed in seconds per rune.
const typingRate = 0.2

// busynessMacroCutoff forces a macro delay regardless of stage when the bot
// is effectively unavailable.
const busynessMacroCutoff = 0.85

// AssignDelays turns bubble texts into segments with send delays. The first
// bubble goes out immediately; each later bubble waits for its simulated
// typing time, shortened when the bot is busy and scaled by the stage's
// delay factor. Action is typing exactly when there is a wait to show it in.
func AssignDelays(bubbles []string, busyness, stageDelayFactor float64) []models.Segment {
	if stageDelayFactor <= 0 {
		stageDelayFactor = 1
	}
	busyness = models.Clamp01(busyness)

	out := make([]models.Segment, 0, len(bubbles))
	for i, content := range bubbles {
		seg := models.Segment{Content: content, Action: models.ActionIdle}
		if i > 0 {
			d := float64(len([]rune(content))) * typingRate
			if d < 1.0 {
				d = 1.0
			}
			seg.DelaySeconds = d * (1 - busyness) * stageDelayFactor
		}
		if seg.DelaySeconds > 0 {
			seg.Action = models.ActionTyping
		}
		out = append(out, seg)
	}
	return out
}

// ClampDrafts normalizes search-produced drafts on the pass-through path:
// delays are floored at zero, the first segment always sends immediately,
// and actions are derived the same way AssignDelays derives them.
func ClampDrafts(drafts []models.SegmentDraft) []models.Segment {
	out := make([]models.Segment, 0, len(drafts))
	for i, d := range drafts {
		seg := models.Segment{Content: d.Content, DelaySeconds: d.DelaySeconds, Action: models.ActionIdle}
		if i == 0 || seg.DelaySeconds < 0 {
			seg.DelaySeconds = 0
		}
		if seg.DelaySeconds > 0 {
			seg.Action = models.ActionTyping
		}
		out = append(out, seg)
	}
	return out
}

// MacroDelayDecision decides whether the turn is replaced by one long
// silence window, and for how long. stageP is the stage's macro-delay
// probability; busyness above the cutoff forces the delay regardless of
// stage.
func MacroDelayDecision(stageP, busyness, minSeconds, maxSeconds float64, rng *rand.Rand) (bool, float64) {
	forced := busyness > busynessMacroCutoff
	if !forced && (stageP <= 0 || rng.Float64() >= stageP) {
		return false, 0
	}
	if maxSeconds <= minSeconds {
		return true, minSeconds
	}
	return true, minSeconds + rng.Float64()*(maxSeconds-minSeconds)
}
