package knapp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/models"
)

func testRegistry() *config.StageRegistry {
	settings := &config.StageSettings{
		JumpDeltaThreshold:      0.25,
		PowerBalanceThreshold:   0.3,
		MinUserTurnsFirstGrowth: 3,
	}
	profiles := map[string]*config.StageProfile{
		"initiating": {
			NextUp: "experimenting",
			UpEntry: &config.GrowthEntry{
				MinScores:       map[string]float64{"closeness": 0.35, "liking": 0.35},
				MinSPTDepth:     1,
				MinTopicBreadth: 2,
			},
			UpVeto: &config.GrowthVeto{
				MinScores: map[string]float64{"trust": 0.2},
			},
		},
		"experimenting": {
			NextUp:   "intensifying",
			NextDown: "initiating",
			UpEntry: &config.GrowthEntry{
				MinScores:       map[string]float64{"closeness": 0.45, "trust": 0.45, "liking": 0.5},
				MinSPTDepth:     2,
				MinTopicBreadth: 3,
				RequiredSignals: []string{"mutual_disclosure"},
			},
			UpVeto: &config.GrowthVeto{
				MinScores:         map[string]float64{"respect": 0.3},
				CheckPowerBalance: true,
			},
			DecayTriggers: &config.DecayTriggers{
				MaxScores: map[string]float64{"liking": 0.15, "closeness": 0.1},
			},
		},
		"intensifying": {
			NextUp:   "integrating",
			NextDown: "experimenting",
			UpEntry: &config.GrowthEntry{
				MinScores: map[string]float64{"closeness": 0.6, "trust": 0.6},
			},
			DecayTriggers: &config.DecayTriggers{
				MaxScores: map[string]float64{"trust": 0.3},
				ConditionalDrop: &config.ConditionalDrop{
					Condition: "closeness > 0.7",
					Triggers:  map[string]float64{"trust": 0.4},
				},
			},
		},
		"integrating": {
			NextDown: "differentiating",
			DecayTriggers: &config.DecayTriggers{
				MaxScores:   map[string]float64{"trust": 0.05},
				SPTBehavior: config.SPTBehaviorDepthReduction,
			},
		},
		"circumscribing": {
			NextDown: "stagnating",
			DecayTriggers: &config.DecayTriggers{
				MaxScores:   map[string]float64{"liking": 0.05},
				SPTBehavior: config.SPTBehaviorBreadthReduction,
			},
		},
		"bonding":     {},
		"terminating": {},
	}
	return config.NewStageRegistry(settings, profiles)
}

func healthySPT() models.SPTInfo {
	return models.SPTInfo{Depth: 3, Breadth: 4, DepthTrend: "stable"}
}

func TestEvaluateStayByDefault(t *testing.T) {
	m := NewManager(testRegistry())

	got := m.Evaluate(Input{
		Stage:        models.StageBonding,
		Relationship: models.RelationshipState{Closeness: 0.8, Trust: 0.8, Liking: 0.8, Respect: 0.7, Warmth: 0.8, Power: 0.5},
		SPT:          healthySPT(),
	})

	assert.Equal(t, models.TransitionStay, got.Kind)
	assert.Equal(t, models.StageBonding, got.To)
}

func TestEvaluateMissingProfileStays(t *testing.T) {
	m := NewManager(testRegistry())

	got := m.Evaluate(Input{Stage: models.StageAvoiding})

	assert.Equal(t, models.TransitionStay, got.Kind)
	assert.Equal(t, models.StageAvoiding, got.To)
}

func TestJumpTrustCollapse(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:         models.StageIntensifying,
		Relationship:  models.RelationshipState{Closeness: 0.6, Trust: 0.6, Liking: 0.6, Respect: 0.6, Warmth: 0.6, Power: 0.5},
		AppliedDeltas: map[string]float64{"trust": -0.3},
		SPT:           healthySPT(),
		ImpliedStage:  models.StageTerminating,
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionJump, got.Kind)
	assert.Equal(t, models.StageTerminating, got.To)
}

func TestJumpNeedsDetectionAgreement(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:         models.StageIntensifying,
		Relationship:  models.RelationshipState{Closeness: 0.6, Trust: 0.6, Liking: 0.6, Respect: 0.6, Warmth: 0.6, Power: 0.5},
		AppliedDeltas: map[string]float64{"trust": -0.3},
		SPT:           healthySPT(),
		ImpliedStage:  models.StageIntensifying,
	}

	got := m.Evaluate(in)
	assert.NotEqual(t, models.TransitionJump, got.Kind)
}

func TestJumpRespectLoss(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:         models.StageBonding,
		Relationship:  models.RelationshipState{Closeness: 0.8, Trust: 0.8, Liking: 0.8, Respect: 0.5, Warmth: 0.8, Power: 0.5},
		AppliedDeltas: map[string]float64{"respect": -0.26},
		SPT:           healthySPT(),
		ImpliedStage:  models.StageDifferentiating,
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionJump, got.Kind)
	assert.Equal(t, models.StageDifferentiating, got.To)
}

func TestJumpRapidIntimacy(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:        models.StageInitiating,
		Relationship: models.RelationshipState{Closeness: 0.3, Trust: 0.3, Liking: 0.5, Respect: 0.3, Warmth: 0.3, Power: 0.5},
		SPT:          models.SPTInfo{Depth: 3, Breadth: 1},
		ImpliedStage: models.StageIntensifying,
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionJump, got.Kind)
	assert.Equal(t, models.StageIntensifying, got.To)
}

func TestJumpIntensityGradeDeltas(t *testing.T) {
	// A delta reported on the -5..5 intensity scale still trips the jump.
	m := NewManager(testRegistry())

	in := Input{
		Stage:         models.StageIntensifying,
		Relationship:  models.RelationshipState{Closeness: 0.6, Trust: 0.6, Liking: 0.6, Respect: 0.6, Warmth: 0.6, Power: 0.5},
		AppliedDeltas: map[string]float64{"trust": -3},
		SPT:           healthySPT(),
		ImpliedStage:  models.StageTerminating,
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionJump, got.Kind)
}

func TestDecayMaxScore(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:        models.StageExperimenting,
		Relationship: models.RelationshipState{Closeness: 0.4, Trust: 0.4, Liking: 0.15, Respect: 0.4, Warmth: 0.4, Power: 0.5},
		SPT:          healthySPT(),
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionDecay, got.Kind)
	assert.Equal(t, models.StageInitiating, got.To)
}

func TestDecayConditionalDrop(t *testing.T) {
	m := NewManager(testRegistry())

	// High closeness with collapsed trust is the toxic pattern.
	in := Input{
		Stage:        models.StageIntensifying,
		Relationship: models.RelationshipState{Closeness: 0.8, Trust: 0.35, Liking: 0.6, Respect: 0.6, Warmth: 0.6, Power: 0.5},
		SPT:          healthySPT(),
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionDecay, got.Kind)
	assert.Equal(t, models.StageExperimenting, got.To)
}

func TestDecayConditionalDropNotMet(t *testing.T) {
	m := NewManager(testRegistry())

	// Same trust level but closeness below the condition: no decay.
	in := Input{
		Stage:        models.StageIntensifying,
		Relationship: models.RelationshipState{Closeness: 0.6, Trust: 0.35, Liking: 0.6, Respect: 0.6, Warmth: 0.6, Power: 0.5},
		SPT:          healthySPT(),
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionStay, got.Kind)
}

func TestDecayDepthReduction(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:        models.StageIntegrating,
		Relationship: models.RelationshipState{Closeness: 0.7, Trust: 0.7, Liking: 0.7, Respect: 0.7, Warmth: 0.7, Power: 0.5},
		SPT:          models.SPTInfo{Depth: 3, Breadth: 4, DepthTrend: "decreasing"},
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionDecay, got.Kind)
	assert.Equal(t, models.StageDifferentiating, got.To)
}

func TestDecayBreadthReduction(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:        models.StageCircumscribing,
		Relationship: models.RelationshipState{Closeness: 0.5, Trust: 0.5, Liking: 0.5, Respect: 0.5, Warmth: 0.5, Power: 0.5},
		SPT:          models.SPTInfo{Depth: 2, Breadth: 1},
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionDecay, got.Kind)
	assert.Equal(t, models.StageStagnating, got.To)
}

func TestGrowthFirstStepNeedsUserTurns(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:        models.StageInitiating,
		Relationship: models.RelationshipState{Closeness: 0.4, Trust: 0.3, Liking: 0.4, Respect: 0.3, Warmth: 0.3, Power: 0.5},
		SPT:          models.SPTInfo{Depth: 1, Breadth: 2},
		UserTurns:    2,
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionStay, got.Kind)

	in.UserTurns = 3
	got = m.Evaluate(in)
	assert.Equal(t, models.TransitionGrowth, got.Kind)
	assert.Equal(t, models.StageExperimenting, got.To)
}

func TestGrowthRequiresSignals(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:        models.StageExperimenting,
		Relationship: models.RelationshipState{Closeness: 0.5, Trust: 0.5, Liking: 0.55, Respect: 0.5, Warmth: 0.5, Power: 0.5},
		SPT:          models.SPTInfo{Depth: 2, Breadth: 3},
		UserTurns:    10,
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionStay, got.Kind)

	in.SPT.RecentSignals = []string{"mutual_disclosure"}
	got = m.Evaluate(in)
	assert.Equal(t, models.TransitionGrowth, got.Kind)
	assert.Equal(t, models.StageIntensifying, got.To)
}

func TestGrowthPowerImbalanceVeto(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:        models.StageExperimenting,
		Relationship: models.RelationshipState{Closeness: 0.5, Trust: 0.5, Liking: 0.55, Respect: 0.5, Warmth: 0.5, Power: 0.9},
		SPT:          models.SPTInfo{Depth: 2, Breadth: 3, RecentSignals: []string{"mutual_disclosure"}},
		UserTurns:    10,
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionStay, got.Kind)
}

func TestGrowthVetoMinScores(t *testing.T) {
	m := NewManager(testRegistry())

	in := Input{
		Stage:        models.StageExperimenting,
		Relationship: models.RelationshipState{Closeness: 0.5, Trust: 0.5, Liking: 0.55, Respect: 0.2, Warmth: 0.5, Power: 0.5},
		SPT:          models.SPTInfo{Depth: 2, Breadth: 3, RecentSignals: []string{"mutual_disclosure"}},
		UserTurns:    10,
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionStay, got.Kind)
}

func TestDecayWinsOverGrowth(t *testing.T) {
	// Closeness at its decay limit while every growth criterion also holds:
	// the decay check runs first.
	settings := &config.StageSettings{JumpDeltaThreshold: 0.25, PowerBalanceThreshold: 0.3, MinUserTurnsFirstGrowth: 3}
	profiles := map[string]*config.StageProfile{
		"experimenting": {
			NextUp:   "intensifying",
			NextDown: "initiating",
			UpEntry: &config.GrowthEntry{
				MinScores: map[string]float64{"liking": 0.4},
			},
			DecayTriggers: &config.DecayTriggers{
				MaxScores: map[string]float64{"closeness": 0.5},
			},
		},
	}
	m := NewManager(config.NewStageRegistry(settings, profiles))

	in := Input{
		Stage:        models.StageExperimenting,
		Relationship: models.RelationshipState{Closeness: 0.5, Trust: 0.5, Liking: 0.5, Respect: 0.5, Warmth: 0.5, Power: 0.5},
		SPT:          healthySPT(),
		UserTurns:    10,
	}

	got := m.Evaluate(in)
	assert.Equal(t, models.TransitionDecay, got.Kind)
	assert.Equal(t, models.StageInitiating, got.To)
}
