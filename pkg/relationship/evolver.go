// Package relationship applies the per-turn relationship evolution math.
// Analyzer deltas are normalized onto [-1,1], damped against the current
// score and clamped, with a greeting gate that keeps polite openers from
// spiking the warm dimensions in the first exchanges.
package relationship

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rapport-chat/rapport/pkg/models"
)

// MaxTurnDelta bounds how far a single turn may move one dimension.
const MaxTurnDelta = 0.30

// Analysis is the analyzer verdict for one turn. Deltas are graded -3..+3
// per dimension; profile updates are additive.
type Analysis struct {
	ThoughtProcess     string             `json:"thought_process"`
	DetectedSignals    []string           `json:"detected_signals"`
	Deltas             map[string]float64 `json:"deltas"`
	BasicInfoUpdates   map[string]string  `json:"basic_info_updates,omitempty"`
	NewInferredEntries map[string]string  `json:"new_inferred_entries,omitempty"`
}

// NeutralAnalysis is the fallback when the analyzer response cannot be
// parsed: zero deltas, no signals, no profile writes.
func NeutralAnalysis() Analysis {
	deltas := make(map[string]float64, len(models.RelationshipDimensions))
	for _, dim := range models.RelationshipDimensions {
		deltas[dim] = 0
	}
	return Analysis{
		ThoughtProcess:  "Fallback: analyzer output unparseable, assuming a neutral turn.",
		DetectedSignals: []string{},
		Deltas:          deltas,
	}
}

// NormalizeDelta maps an analyzer delta onto [-1,1]. The analyzer speaks in
// -3..+3 grades which land on ±0.3; larger magnitudes are read as
// percentages.
func NormalizeDelta(v float64) float64 {
	if v >= -3 && v <= 3 {
		return v / 10
	}
	if v >= -100 && v <= 100 {
		return v / 100
	}
	return models.ClampSigned(v)
}

// DampedDelta applies diminishing returns near the top of the scale and
// amplified losses once a dimension is high enough to be betrayed.
func DampedDelta(score, delta float64) float64 {
	switch {
	case delta > 0:
		if score >= 0.9 {
			return delta * 0.1
		}
		if score >= 0.6 {
			return delta * 0.5
		}
		return delta
	case delta < 0:
		if score >= 0.8 {
			return delta * 1.5
		}
		return delta
	default:
		return 0
	}
}

var greetingPattern = regexp.MustCompile(
	`(?i)^\s*(hi|hello|hey|你好|您好|嗨|哈喽|早上好|中午好|晚上好|晚安)` +
		`([\s,，!！。．]*(很高兴认识你|认识你很高兴|见到你很高兴|见到你真好|很高兴见到你))?` +
		`[\s,，!！。．]*$`)

// IsLowInfoGreeting reports whether the text is a short polite opener
// carrying no real content. Anything longer than 32 runes is assumed to say
// something.
func IsLowInfoGreeting(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" || utf8.RuneCountInString(t) > 32 {
		return false
	}
	return greetingPattern.MatchString(t)
}

// Evolution is the updater output: the new state plus the change actually
// written per dimension. Zero-delta dimensions record an explicit 0.
type Evolution struct {
	State        models.RelationshipState
	Applied      map[string]float64
	GreetingGate bool
}

// Apply runs the damping pipeline over the analyzer deltas and returns the
// updated state. bufferLen is the chat-buffer length before this turn was
// appended; the greeting gate only fires within the first two exchanges.
func Apply(state models.RelationshipState, deltas map[string]float64, userText string, bufferLen int) Evolution {
	gate := IsLowInfoGreeting(userText) && bufferLen <= 2
	applied := make(map[string]float64, len(models.RelationshipDimensions))

	for _, dim := range models.RelationshipDimensions {
		score, _ := state.Dimension(dim)
		delta := NormalizeDelta(deltas[dim])

		if gate {
			// A polite hello is not strong admiration; it does earn a
			// sliver of familiarity.
			if warmDimension(dim) && delta > 0 {
				delta *= 0.35
			}
			if (dim == "closeness" || dim == "trust") && math.Abs(delta) < 1e-6 {
				delta = 0.02
			}
		}

		if delta == 0 {
			applied[dim] = 0
			continue
		}

		change := DampedDelta(score, delta)
		if gate && warmDimension(dim) && change > 0 {
			change = min(change, 0.06)
		}
		change = models.ClampRange(change, -MaxTurnDelta, MaxTurnDelta)

		state.SetDimension(dim, round4(score+change))
		applied[dim] = round4(change)
	}

	return Evolution{State: state, Applied: applied, GreetingGate: gate}
}

func warmDimension(dim string) bool {
	return dim == "liking" || dim == "warmth" || dim == "respect"
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
