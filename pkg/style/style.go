// Package style computes the per-turn expression style: twelve dimensions
// plus the coldness and boundary gates. Pure arithmetic over relationship,
// mood, detection signals and the stage profile; no LLM calls.
package style

import (
	"github.com/rapport-chat/rapport/pkg/models"
)

// Params bundles the turn inputs the style computation reads.
type Params struct {
	Relationship models.RelationshipState
	Mood         models.MoodState
	Composite    models.CompositeSignals
	StageCtx     models.StageCtx
	// Confusion is the detection confusion score.
	Confusion float64

	Stage models.RelationshipStage
	// Invest and Ctx come from the stage profile.
	Invest float64
	Ctx    float64
}

// Derived exposes the intermediate axes for logging and tests.
type Derived struct {
	Affinity     float64 `json:"affinity"`
	Safety       float64 `json:"safety"`
	BoundaryNeed float64 `json:"boundary_need"`
	Unease       float64 `json:"unease"`
	Invest       float64 `json:"invest"`
	Ctx          float64 `json:"ctx"`
	BreakN       float64 `json:"break_n"`
}

// Compute derives the style vector. Every dimension is clamped to [0,1] as
// it is produced; social distance feeds two later dimensions, so ordering
// inside the function matters.
func Compute(p Params) (models.StyleVector, Derived) {
	rel := p.Relationship
	rel.Clamp()

	pleasure := models.Unit(p.Mood.Pleasure)
	arousal := models.Unit(p.Mood.Arousal)
	dominance := models.Unit(p.Mood.Dominance)
	busy := models.Clamp01(p.Mood.Busyness)

	pos := p.Composite.Goodwill
	neg := p.Composite.ConflictEff
	prov := p.Composite.Provocation
	press := p.Composite.Pressure
	uncert := models.Clamp01(p.Confusion)

	tooClose := p.StageCtx.TooCloseTooFast
	tooDistant := p.StageCtx.TooDistantTooCold
	betrayal := p.StageCtx.BetrayalViolation
	control := p.StageCtx.ControlOrBinding

	idx := p.Stage.Index()
	if idx == 0 {
		idx = 1
	}
	breakN := 0.0
	if idx > 5 {
		breakN = float64(idx-5) / 5
	}

	d := Derived{
		Affinity:     models.Clamp01(0.55*rel.Liking + 0.25*rel.Warmth + 0.20*rel.Closeness),
		Safety:       models.Clamp01(0.50*rel.Trust + 0.35*rel.Respect + 0.15*rel.Closeness),
		BoundaryNeed: models.Clamp01(0.45*betrayal + 0.35*control + 0.20*tooDistant),
		Unease:       models.Clamp01(0.35*tooClose + 0.25*control),
		Invest:       p.Invest,
		Ctx:          p.Ctx,
		BreakN:       breakN,
	}

	invest := p.Invest
	ctx := p.Ctx

	selfDisclosure := models.Clamp01(0.10 +
		0.55*avg2(rel.Trust, rel.Closeness) -
		0.25*arousal +
		0.15*pos +
		0.10*invest)

	topicAdherence := models.Clamp01(0.20 +
		0.70*rel.Respect -
		0.25*uncert -
		0.15*prov +
		0.08*(1-ctx))

	initiative := models.Clamp01(0.15 +
		0.45*rel.Power +
		0.35*rel.Liking -
		0.35*busy +
		0.10*neg +
		0.08*invest)

	adviceStyle := models.Clamp01(0.10 +
		0.45*rel.Power +
		0.35*rel.Liking +
		0.20*d.BoundaryNeed -
		0.20*busy +
		0.06*invest)

	subjectivity := models.Clamp01(0.35 +
		0.55*rel.Power -
		0.45*rel.Respect +
		0.30*dominance +
		0.25*d.BoundaryNeed +
		0.10*breakN)

	memoryHook := models.Clamp01(0.05 +
		0.80*rel.Closeness +
		0.10*pos -
		0.25*busy +
		0.15*ctx)

	verbalLength := models.Clamp01(0.20 +
		0.45*avg2(rel.Warmth, rel.Closeness) -
		0.55*busy -
		0.20*neg -
		0.15*d.BoundaryNeed +
		0.10*invest -
		0.20*breakN)

	// Social distance feeds emotional display and non-verbal cues below.
	socialDistance := models.Clamp01(0.40 +
		0.40*rel.Power +
		0.25*rel.Respect -
		0.55*rel.Closeness +
		0.20*neg +
		0.25*d.BoundaryNeed -
		0.20*ctx +
		0.30*breakN)

	toneTemperature := models.Clamp01(0.20 +
		0.45*avg2(rel.Warmth, rel.Liking) +
		0.25*pleasure -
		0.25*neg -
		0.20*d.Unease +
		0.10*invest -
		0.25*breakN)

	emotionalDisplay := models.Clamp01(0.10 +
		0.45*avg2(rel.Trust, rel.Closeness) +
		0.35*arousal -
		0.25*socialDistance +
		0.08*invest -
		0.12*breakN)

	witAndHumor := models.Clamp01(0.05 +
		0.45*avg2(rel.Liking, rel.Closeness) +
		0.20*pos -
		0.30*d.BoundaryNeed -
		0.20*neg +
		0.15*ctx -
		0.25*breakN)

	nonVerbalCues := models.Clamp01(0.05 +
		0.65*rel.Closeness +
		0.10*pos -
		0.45*busy -
		0.20*socialDistance +
		0.10*ctx -
		0.15*breakN)

	coldnessGate := models.Clamp01(0.10 +
		0.25*tooDistant +
		0.25*neg +
		0.25*busy -
		0.20*avg2(rel.Closeness, rel.Warmth) +
		0.35*breakN -
		0.10*ctx)

	boundaryGate := models.Clamp01(0.10 +
		0.45*betrayal +
		0.25*control +
		0.20*press +
		0.15*prov +
		0.10*dominance -
		0.20*d.Safety +
		0.20*breakN +
		0.10*invest)

	return models.StyleVector{
		SelfDisclosure:   selfDisclosure,
		TopicAdherence:   topicAdherence,
		Initiative:       initiative,
		AdviceStyle:      adviceStyle,
		Subjectivity:     subjectivity,
		MemoryHook:       memoryHook,
		VerbalLength:     verbalLength,
		SocialDistance:   socialDistance,
		ToneTemperature:  toneTemperature,
		EmotionalDisplay: emotionalDisplay,
		WitAndHumor:      witAndHumor,
		NonVerbalCues:    nonVerbalCues,
		ColdnessGate:     coldnessGate,
		BoundaryGate:     boundaryGate,
	}, d
}

func avg2(a, b float64) float64 {
	return (a + b) / 2
}
