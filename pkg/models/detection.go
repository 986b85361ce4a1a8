package models

// StageDirection is the detection verdict on where the user is pushing the
// relationship relative to its current stage.
type StageDirection string

const (
	DirectionNone             StageDirection = "none"
	DirectionTooFast          StageDirection = "too_fast"
	DirectionTooDistant       StageDirection = "too_distant"
	DirectionControlOrBinding StageDirection = "control_or_binding"
	DirectionBetrayalOrAttack StageDirection = "betrayal_or_attack"
)

// IsValid checks if the direction is a known value.
func (d StageDirection) IsValid() bool {
	switch d {
	case DirectionNone, DirectionTooFast, DirectionTooDistant,
		DirectionControlOrBinding, DirectionBetrayalOrAttack:
		return true
	default:
		return false
	}
}

// DetectionScores are the five base intent scores, each in [0,1].
type DetectionScores struct {
	Friendly  float64 `json:"friendly"`
	Hostile   float64 `json:"hostile"`
	Overstep  float64 `json:"overstep"`
	LowEffort float64 `json:"low_effort"`
	Confusion float64 `json:"confusion"`
}

// Clamp bounds every score to [0,1].
func (s *DetectionScores) Clamp() {
	s.Friendly = Clamp01(s.Friendly)
	s.Hostile = Clamp01(s.Hostile)
	s.Overstep = Clamp01(s.Overstep)
	s.LowEffort = Clamp01(s.LowEffort)
	s.Confusion = Clamp01(s.Confusion)
}

// DetectionMeta carries addressing facts about the user message.
type DetectionMeta struct {
	TargetIsAssistant      bool `json:"target_is_assistant"`
	QuotedOrReportedSpeech bool `json:"quoted_or_reported_speech"`
}

// Reference is one resolved (or unresolved) pointer in the user message.
type Reference struct {
	Ref        string  `json:"ref"`
	Resolution string  `json:"resolution"`
	Confidence float64 `json:"confidence"`
}

// Unknown is a detail the model could not resolve, with its impact on the reply.
type Unknown struct {
	Item   string `json:"item"`
	Impact string `json:"impact"`
}

// DetectionBrief is the comprehension summary of the user message.
type DetectionBrief struct {
	Gist                    string      `json:"gist"`
	References              []Reference `json:"references,omitempty"`
	Unknowns                []Unknown   `json:"unknowns,omitempty"`
	Subtext                 string      `json:"subtext,omitempty"`
	UnderstandingConfidence float64     `json:"understanding_confidence"`
	ReactionSeed            string      `json:"reaction_seed,omitempty"`
}

// StageJudge is detection's independent read on stage pressure. A jump
// transition later requires ImpliedStage to match the proposed target.
type StageJudge struct {
	CurrentStage  RelationshipStage `json:"current_stage"`
	ImpliedStage  RelationshipStage `json:"implied_stage"`
	Delta         float64           `json:"delta"`
	Direction     StageDirection    `json:"direction"`
	EvidenceSpans []string          `json:"evidence_spans,omitempty"`
}

// CompositeSignals are derived from the base scores for downstream gates.
type CompositeSignals struct {
	ConflictEff float64 `json:"conflict_eff"`
	Goodwill    float64 `json:"goodwill"`
	Provocation float64 `json:"provocation"`
	Pressure    float64 `json:"pressure"`
}

// StageCtx flags the judged direction for the style and search layers.
// Exactly one flag is 0.8 when a direction was judged, all zero otherwise.
type StageCtx struct {
	TooCloseTooFast   float64 `json:"too_close_too_fast"`
	TooDistantTooCold float64 `json:"too_distant_too_cold"`
	BetrayalViolation float64 `json:"betrayal_violation"`
	ControlOrBinding  float64 `json:"control_or_binding"`
}

// Detection bundles everything the detection stage produced for one turn.
type Detection struct {
	Scores         DetectionScores  `json:"scores"`
	Meta           DetectionMeta    `json:"meta"`
	Brief          DetectionBrief   `json:"brief"`
	StageJudge     StageJudge       `json:"stage_judge"`
	Composite      CompositeSignals `json:"composite"`
	StageCtx       StageCtx         `json:"stage_ctx"`
	ImmediateTasks []Task           `json:"immediate_tasks,omitempty"`
}

// DeriveComposite recomputes the composite signals and stage context flags
// from the base scores and the stage judge.
func (d *Detection) DeriveComposite() {
	d.Composite = CompositeSignals{
		ConflictEff: Clamp01(d.Scores.Hostile + 0.5*d.Scores.Overstep - 0.7*d.Scores.Friendly),
		Goodwill:    d.Scores.Friendly,
		Provocation: d.Scores.Hostile,
		Pressure:    d.Scores.Overstep,
	}
	d.StageCtx = StageCtx{}
	switch d.StageJudge.Direction {
	case DirectionTooFast:
		d.StageCtx.TooCloseTooFast = 0.8
	case DirectionTooDistant:
		d.StageCtx.TooDistantTooCold = 0.8
	case DirectionBetrayalOrAttack:
		d.StageCtx.BetrayalViolation = 0.8
	case DirectionControlOrBinding:
		d.StageCtx.ControlOrBinding = 0.8
	}
}

// SecurityFlags is the fast security screen. Any true flag routes the turn
// through the short security-reply path.
type SecurityFlags struct {
	IsInjectionAttempt    bool   `json:"is_injection_attempt"`
	IsAITest              bool   `json:"is_ai_test"`
	IsTreatingAsAssistant bool   `json:"is_user_treating_as_assistant"`
	Reasoning             string `json:"reasoning,omitempty"`
}

// NeedsSecurityResponse reports whether any flag fired.
func (f SecurityFlags) NeedsSecurityResponse() bool {
	return f.IsInjectionAttempt || f.IsAITest || f.IsTreatingAsAssistant
}

// SecurityStrategy names the deflection move used by the security reply.
type SecurityStrategy string

const (
	StrategyQuestionMarks SecurityStrategy = "question_marks"
	StrategyQuestionAI    SecurityStrategy = "question_ai"
	StrategyQuestionUser  SecurityStrategy = "question_user"
	StrategyQuestionRole  SecurityStrategy = "question_role"
	StrategyNeutral       SecurityStrategy = "neutral"
)

// SecurityResponse is the short in-character deflection for flagged turns.
type SecurityResponse struct {
	Strategy SecurityStrategy `json:"strategy"`
	Reply    string           `json:"reply"`
}
