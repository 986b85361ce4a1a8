package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rapport-chat/rapport/pkg/models"
)

func neutralParams() Params {
	return Params{
		Relationship: models.DefaultRelationship(),
		Mood:         models.MoodState{},
		Stage:        models.StageInitiating,
		Invest:       0.15,
		Ctx:          0.10,
	}
}

func TestComputeNeutralBaseline(t *testing.T) {
	sv, d := Compute(neutralParams())

	// Hand-computed from default relationship (0.3 across, power 0.5),
	// neutral mood (PAD 0 maps to 0.5) and no detection signals.
	assert.InDelta(t, 0.155, sv.SelfDisclosure, 1e-9)
	assert.InDelta(t, 0.482, sv.TopicAdherence, 1e-9)
	assert.InDelta(t, 0.492, sv.Initiative, 1e-9)
	assert.InDelta(t, 0.305, sv.MemoryHook, 1e-9)
	assert.InDelta(t, 0.49, sv.SocialDistance, 1e-9)
	assert.InDelta(t, 0.03, sv.ColdnessGate, 1e-9)
	assert.InDelta(t, 0.105, sv.BoundaryGate, 1e-9)

	assert.InDelta(t, 0.30, d.Safety, 1e-9)
	assert.Zero(t, d.BreakN)
	assert.Zero(t, d.BoundaryNeed)
}

func TestComputeAllInRange(t *testing.T) {
	extremes := []Params{
		neutralParams(),
		{
			Relationship: models.RelationshipState{Closeness: 1, Trust: 1, Liking: 1, Respect: 1, Warmth: 1, Power: 1},
			Mood:         models.MoodState{Pleasure: 1, Arousal: 1, Dominance: 1, Busyness: 1},
			Composite:    models.CompositeSignals{ConflictEff: 1, Goodwill: 1, Provocation: 1, Pressure: 1},
			StageCtx:     models.StageCtx{TooCloseTooFast: 0.8, TooDistantTooCold: 0.8, BetrayalViolation: 0.8, ControlOrBinding: 0.8},
			Confusion:    1,
			Stage:        models.StageTerminating,
			Invest:       1,
			Ctx:          1,
		},
		{
			Relationship: models.RelationshipState{},
			Mood:         models.MoodState{Pleasure: -1, Arousal: -1, Dominance: -1},
			Stage:        models.StageAvoiding,
		},
	}

	for _, p := range extremes {
		sv, _ := Compute(p)
		for name, v := range map[string]float64{
			"self_disclosure":   sv.SelfDisclosure,
			"topic_adherence":   sv.TopicAdherence,
			"initiative":        sv.Initiative,
			"advice_style":      sv.AdviceStyle,
			"subjectivity":      sv.Subjectivity,
			"memory_hook":       sv.MemoryHook,
			"verbal_length":     sv.VerbalLength,
			"social_distance":   sv.SocialDistance,
			"tone_temperature":  sv.ToneTemperature,
			"emotional_display": sv.EmotionalDisplay,
			"wit_and_humor":     sv.WitAndHumor,
			"non_verbal_cues":   sv.NonVerbalCues,
			"coldness_gate":     sv.ColdnessGate,
			"boundary_gate":     sv.BoundaryGate,
		} {
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
		}
	}
}

func TestBetrayalRaisesBoundaryGate(t *testing.T) {
	calm := neutralParams()
	hostile := neutralParams()
	hostile.StageCtx.BetrayalViolation = 0.8
	hostile.Composite.Provocation = 0.7
	hostile.Composite.Pressure = 0.5

	calmStyle, _ := Compute(calm)
	hostileStyle, calcDerived := Compute(hostile)

	assert.Greater(t, hostileStyle.BoundaryGate, calmStyle.BoundaryGate)
	assert.InDelta(t, 0.36, calcDerived.BoundaryNeed, 1e-9)
}

func TestBusynessColdAndTerse(t *testing.T) {
	idle := neutralParams()
	swamped := neutralParams()
	swamped.Mood.Busyness = 0.9

	idleStyle, _ := Compute(idle)
	busyStyle, _ := Compute(swamped)

	assert.Greater(t, busyStyle.ColdnessGate, idleStyle.ColdnessGate)
	assert.Less(t, busyStyle.VerbalLength, idleStyle.VerbalLength)
	assert.Less(t, busyStyle.Initiative, idleStyle.Initiative)
}

func TestComingApartStagesWithdraw(t *testing.T) {
	early := neutralParams()

	late := neutralParams()
	late.Stage = models.StageAvoiding
	late.Invest = 0.25
	late.Ctx = 0.30

	earlyStyle, earlyDerived := Compute(early)
	lateStyle, lateDerived := Compute(late)

	assert.Zero(t, earlyDerived.BreakN)
	assert.InDelta(t, 0.8, lateDerived.BreakN, 1e-9)
	assert.Greater(t, lateStyle.ColdnessGate, earlyStyle.ColdnessGate)
	assert.Greater(t, lateStyle.SocialDistance, earlyStyle.SocialDistance)
	assert.Less(t, lateStyle.WitAndHumor, earlyStyle.WitAndHumor)
}

func TestUnknownStageFallsBackToFirst(t *testing.T) {
	p := neutralParams()
	p.Stage = models.RelationshipStage("unheard_of")

	_, d := Compute(p)
	assert.Zero(t, d.BreakN)
}
