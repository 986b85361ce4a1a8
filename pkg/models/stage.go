package models

// RelationshipStage identifies one of the ten Knapp stages, five coming
// together and five coming apart. The order is meaningful: stage profiles,
// style math and search budgets all key off the 1-based index.
type RelationshipStage string

const (
	StageInitiating      RelationshipStage = "initiating"
	StageExperimenting   RelationshipStage = "experimenting"
	StageIntensifying    RelationshipStage = "intensifying"
	StageIntegrating     RelationshipStage = "integrating"
	StageBonding         RelationshipStage = "bonding"
	StageDifferentiating RelationshipStage = "differentiating"
	StageCircumscribing  RelationshipStage = "circumscribing"
	StageStagnating      RelationshipStage = "stagnating"
	StageAvoiding        RelationshipStage = "avoiding"
	StageTerminating     RelationshipStage = "terminating"
)

// AllStages lists the stages in canonical order.
var AllStages = []RelationshipStage{
	StageInitiating,
	StageExperimenting,
	StageIntensifying,
	StageIntegrating,
	StageBonding,
	StageDifferentiating,
	StageCircumscribing,
	StageStagnating,
	StageAvoiding,
	StageTerminating,
}

// IsValid checks if the stage is one of the ten known stages.
func (s RelationshipStage) IsValid() bool {
	return s.Index() != 0
}

// Index returns the 1-based canonical position, or 0 for an unknown stage.
func (s RelationshipStage) Index() int {
	for i, st := range AllStages {
		if st == s {
			return i + 1
		}
	}
	return 0
}

// ComingApart reports whether the stage is in the dissolution half.
func (s RelationshipStage) ComingApart() bool {
	return s.Index() >= 6
}

// SearchClass groups stages into candidate-search budget classes.
type SearchClass string

const (
	// SearchClassEarly covers initiating and experimenting, where replies are
	// cheap to generate and worth exploring widely.
	SearchClassEarly SearchClass = "early"
	// SearchClassDeep covers intensifying and integrating, where a good root
	// plan usually survives.
	SearchClassDeep SearchClass = "deep"
	// SearchClassLate covers bonding and all coming-apart stages.
	SearchClassLate SearchClass = "late"
)

// IsValid checks if the class is one of the known budget classes.
func (c SearchClass) IsValid() bool {
	switch c {
	case SearchClassEarly, SearchClassDeep, SearchClassLate:
		return true
	}
	return false
}

// SearchClass returns the search budget class for the stage.
func (s RelationshipStage) SearchClass() SearchClass {
	switch s {
	case StageInitiating, StageExperimenting:
		return SearchClassEarly
	case StageIntensifying, StageIntegrating:
		return SearchClassDeep
	default:
		return SearchClassLate
	}
}

// TransitionKind classifies a stage-manager decision.
type TransitionKind string

const (
	// TransitionStay keeps the current stage.
	TransitionStay TransitionKind = "stay"
	// TransitionGrowth advances one stage toward bonding.
	TransitionGrowth TransitionKind = "growth"
	// TransitionDecay slips one stage toward terminating.
	TransitionDecay TransitionKind = "decay"
	// TransitionJump moves directly to a non-adjacent stage on a rupture
	// signal, and only when detection independently implied the same target.
	TransitionJump TransitionKind = "jump"
)

// StageTransition records the stage manager's verdict for one turn.
type StageTransition struct {
	Kind   TransitionKind    `json:"kind"`
	From   RelationshipStage `json:"from"`
	To     RelationshipStage `json:"to"`
	Reason string            `json:"reason,omitempty"`
}
