// Package knapp decides stage transitions over the ten-stage relationship
// model. Evaluation order is fixed: jump, then decay, then growth, then
// stay; the first rule that fires wins the turn.
package knapp

import (
	"fmt"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/models"
)

// Manager evaluates stage transitions against the configured stage profiles.
type Manager struct {
	registry *config.StageRegistry
}

// NewManager creates a stage manager over the given profile registry.
func NewManager(registry *config.StageRegistry) *Manager {
	return &Manager{registry: registry}
}

// Input is the per-turn evidence the transition rules read.
type Input struct {
	Stage        models.RelationshipStage
	Relationship models.RelationshipState

	// AppliedDeltas are this turn's per-dimension relationship changes
	// after damping and capping. Jump rules read their magnitude.
	AppliedDeltas map[string]float64

	SPT models.SPTInfo

	// UserTurns counts user messages in the buffer, including the current
	// input. Gates the very first growth step.
	UserTurns int

	// ImpliedStage is detection's independent read of where the user is
	// steering. A jump fires only when it agrees with the jump target.
	ImpliedStage models.RelationshipStage
}

// Evaluate returns the transition verdict for one turn. A missing profile
// keeps the current stage; transitions are never worth failing a turn over.
func (m *Manager) Evaluate(in Input) models.StageTransition {
	stay := models.StageTransition{
		Kind:   models.TransitionStay,
		From:   in.Stage,
		To:     in.Stage,
		Reason: "Stable state.",
	}

	profile, err := m.registry.Get(string(in.Stage))
	if err != nil {
		stay.Reason = "No profile for stage."
		return stay
	}

	if t, ok := m.checkJump(in); ok {
		return t
	}
	if t, ok := m.checkDecay(in, profile); ok {
		return t
	}
	if t, ok := m.checkGrowth(in, profile); ok {
		return t
	}
	return stay
}

// checkJump looks for rupture-scale events. Each candidate additionally
// requires detection to have implied the same target stage, so a single
// noisy delta cannot teleport the relationship on its own.
func (m *Manager) checkJump(in Input) (models.StageTransition, bool) {
	threshold := models.Clamp01(m.registry.Settings().JumpDeltaThreshold)

	trustDelta := normalizeDelta(in.AppliedDeltas["trust"])
	respectDelta := normalizeDelta(in.AppliedDeltas["respect"])

	if trustDelta <= -threshold && in.ImpliedStage == models.StageTerminating {
		return models.StageTransition{
			Kind:   models.TransitionJump,
			From:   in.Stage,
			To:     models.StageTerminating,
			Reason: fmt.Sprintf("Catastrophic trust failure. trust_delta=%.3f", trustDelta),
		}, true
	}
	if respectDelta <= -threshold && in.ImpliedStage == models.StageDifferentiating {
		return models.StageTransition{
			Kind:   models.TransitionJump,
			From:   in.Stage,
			To:     models.StageDifferentiating,
			Reason: fmt.Sprintf("Sudden loss of respect. respect_delta=%.3f", respectDelta),
		}, true
	}

	if in.Stage == models.StageInitiating && sptDepth(in.SPT) >= 3 {
		liking := models.Clamp01(in.Relationship.Liking)
		if liking > 0.4 && in.ImpliedStage == models.StageIntensifying {
			return models.StageTransition{
				Kind:   models.TransitionJump,
				From:   in.Stage,
				To:     models.StageIntensifying,
				Reason: fmt.Sprintf("Rapid intimacy acceleration. depth=%d liking=%.3f", sptDepth(in.SPT), liking),
			}, true
		}
	}

	return models.StageTransition{}, false
}

func (m *Manager) checkDecay(in Input, profile *config.StageProfile) (models.StageTransition, bool) {
	if profile.NextDown == "" || profile.DecayTriggers == nil {
		return models.StageTransition{}, false
	}
	next := models.RelationshipStage(profile.NextDown)
	triggers := profile.DecayTriggers

	for dim, limit := range triggers.MaxScores {
		limitVal := models.Clamp01(limit)
		score, ok := in.Relationship.Dimension(dim)
		if !ok {
			continue
		}
		if models.Clamp01(score) <= limitVal {
			return models.StageTransition{
				Kind:   models.TransitionDecay,
				From:   in.Stage,
				To:     next,
				Reason: fmt.Sprintf("Score %s dropped to %.3f (limit %.2f).", dim, score, limitVal),
			}, true
		}
	}

	if cd := triggers.ConditionalDrop; cd != nil {
		closeness := in.Relationship.Closeness
		if checkCondition(cd.Condition, closeness) {
			for dim, limit := range cd.Triggers {
				limitVal := models.Clamp01(limit)
				score, ok := in.Relationship.Dimension(dim)
				if !ok {
					continue
				}
				if models.Clamp01(score) < limitVal {
					return models.StageTransition{
						Kind:   models.TransitionDecay,
						From:   in.Stage,
						To:     next,
						Reason: fmt.Sprintf("High intimacy but low %s. closeness=%.3f %s=%.3f", dim, closeness, dim, score),
					}, true
				}
			}
		}
	}

	switch triggers.SPTBehavior {
	case config.SPTBehaviorDepthReduction:
		trend := in.SPT.DepthTrend
		if trend == "" {
			trend = "stable"
		}
		if trend == "decreasing" {
			return models.StageTransition{
				Kind:   models.TransitionDecay,
				From:   in.Stage,
				To:     next,
				Reason: "User is withdrawing. depth_trend=decreasing",
			}, true
		}
	case config.SPTBehaviorBreadthReduction:
		if in.SPT.Breadth <= 1 {
			return models.StageTransition{
				Kind:   models.TransitionDecay,
				From:   in.Stage,
				To:     next,
				Reason: fmt.Sprintf("Topic breadth collapsed. breadth=%d", in.SPT.Breadth),
			}, true
		}
	}

	return models.StageTransition{}, false
}

func (m *Manager) checkGrowth(in Input, profile *config.StageProfile) (models.StageTransition, bool) {
	if profile.NextUp == "" || profile.UpEntry == nil {
		return models.StageTransition{}, false
	}
	next := models.RelationshipStage(profile.NextUp)
	entry := profile.UpEntry

	// The very first step needs several real user turns so one enthusiastic
	// message cannot advance the stage.
	if in.Stage == models.StageInitiating && next == models.StageExperimenting {
		if in.UserTurns < m.registry.Settings().MinUserTurnsFirstGrowth {
			return models.StageTransition{}, false
		}
	}

	for dim, minVal := range entry.MinScores {
		score, ok := in.Relationship.Dimension(dim)
		if !ok {
			return models.StageTransition{}, false
		}
		if models.Clamp01(score) < models.Clamp01(minVal) {
			return models.StageTransition{}, false
		}
	}

	if sptDepth(in.SPT) < entry.MinSPTDepth {
		return models.StageTransition{}, false
	}
	if in.SPT.Breadth < entry.MinTopicBreadth {
		return models.StageTransition{}, false
	}

	recent := make(map[string]bool, len(in.SPT.RecentSignals))
	for _, s := range in.SPT.RecentSignals {
		recent[s] = true
	}
	for _, sig := range entry.RequiredSignals {
		if !recent[sig] {
			return models.StageTransition{}, false
		}
	}

	if veto := profile.UpVeto; veto != nil {
		for dim, minVal := range veto.MinScores {
			score, ok := in.Relationship.Dimension(dim)
			if !ok {
				continue
			}
			if models.Clamp01(score) < models.Clamp01(minVal) {
				return models.StageTransition{}, false
			}
		}
		if veto.CheckPowerBalance {
			power := models.Clamp01(in.Relationship.Power)
			imbalance := abs(power-0.5) * 2
			if imbalance > models.Clamp01(m.registry.Settings().PowerBalanceThreshold) {
				return models.StageTransition{}, false
			}
		}
	}

	return models.StageTransition{
		Kind:   models.TransitionGrowth,
		From:   in.Stage,
		To:     next,
		Reason: "All entry criteria met.",
	}, true
}

// normalizeDelta maps the mixed delta scales that reach the stage manager
// onto [-1,1]: unit-scale values pass through, intensity grades (|v| <= 5)
// divide by 10, legacy point scores (|v| <= 100) divide by 100, anything
// wilder clamps.
func normalizeDelta(v float64) float64 {
	switch {
	case abs(v) <= 1:
		return v
	case abs(v) <= 5:
		return v / 10
	case abs(v) <= 100:
		return v / 100
	default:
		return models.ClampSigned(v)
	}
}

// sptDepth applies the depth floor: an unset depth reads as 1.
func sptDepth(spt models.SPTInfo) int {
	if spt.Depth <= 0 {
		return 1
	}
	return spt.Depth
}
