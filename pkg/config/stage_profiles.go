package config

// StageSettings are knobs shared by all stage transitions.
type StageSettings struct {
	// JumpDeltaThreshold is the per-turn applied-delta magnitude that
	// triggers a rupture jump.
	JumpDeltaThreshold float64 `yaml:"jump_delta_threshold"`
	// PowerBalanceThreshold vetoes growth when |power-0.5|*2 exceeds it.
	PowerBalanceThreshold float64 `yaml:"power_balance_threshold"`
	// MinUserTurnsFirstGrowth gates the very first growth step so a single
	// enthusiastic message cannot advance the stage.
	MinUserTurnsFirstGrowth int `yaml:"min_user_turns_first_growth"`
}

// GrowthEntry lists the requirements to advance to the next stage.
type GrowthEntry struct {
	MinScores       map[string]float64 `yaml:"min_scores"`
	MinSPTDepth     int                `yaml:"min_spt_depth"`
	MinTopicBreadth int                `yaml:"min_topic_breadth"`
	RequiredSignals []string           `yaml:"required_signals"`
}

// GrowthVeto blocks an otherwise-qualified growth step.
type GrowthVeto struct {
	MinScores         map[string]float64 `yaml:"min_scores"`
	CheckPowerBalance bool               `yaml:"check_power_balance"`
}

// ConditionalDrop fires decay sub-triggers only when the condition holds.
// The condition is a single comparison on closeness, e.g. "closeness > 0.7".
type ConditionalDrop struct {
	Condition string             `yaml:"condition"`
	Triggers  map[string]float64 `yaml:"triggers"`
}

// SPT behaviors recognized in decay_triggers.spt_behavior.
const (
	SPTBehaviorDepthReduction   = "depth_reduction"
	SPTBehaviorBreadthReduction = "breadth_reduction"
)

// DecayTriggers lists the ways a stage slips to its next_down.
type DecayTriggers struct {
	// MaxScores decays when any named dimension is at or below its limit.
	MaxScores map[string]float64 `yaml:"max_scores"`
	// ConditionalDrop catches high-intimacy low-trust ruptures.
	ConditionalDrop *ConditionalDrop `yaml:"conditional_drop"`
	// SPTBehavior is "depth_reduction" or "breadth_reduction".
	SPTBehavior string `yaml:"spt_behavior"`
}

// StageProfile is the full per-stage configuration: transition topology,
// expression weights and pacing.
type StageProfile struct {
	// NextUp / NextDown name the adjacent stages; empty means terminal in
	// that direction.
	NextUp   string `yaml:"next_up"`
	NextDown string `yaml:"next_down"`

	UpEntry       *GrowthEntry   `yaml:"up_entry"`
	UpVeto        *GrowthVeto    `yaml:"up_veto"`
	DecayTriggers *DecayTriggers `yaml:"decay_triggers"`

	// Invest and Ctx weigh investment and context sensitivity in style math.
	Invest float64 `yaml:"invest"`
	Ctx    float64 `yaml:"ctx"`

	// DelayFactor scales inter-segment delays for this stage.
	DelayFactor float64 `yaml:"delay_factor"`
	// MacroDelayP is the probability of replacing the reply with a long
	// silence window.
	MacroDelayP float64 `yaml:"macro_delay_p"`
}

// StagesYAML is the stages.yaml file structure.
type StagesYAML struct {
	Settings *StageSettings           `yaml:"settings"`
	Stages   map[string]*StageProfile `yaml:"stages"`
}

// StageRegistry provides lookup access to stage profiles.
type StageRegistry struct {
	settings *StageSettings
	profiles map[string]*StageProfile
}

// NewStageRegistry creates a registry from merged profiles.
func NewStageRegistry(settings *StageSettings, profiles map[string]*StageProfile) *StageRegistry {
	return &StageRegistry{settings: settings, profiles: profiles}
}

// DefaultStageRegistry returns a registry over the built-in settings and
// profiles, as if no stages.yaml were present.
func DefaultStageRegistry() *StageRegistry {
	return NewStageRegistry(builtinStageSettings(), builtinStageProfiles())
}

// Settings returns the shared transition settings.
func (r *StageRegistry) Settings() *StageSettings {
	return r.settings
}

// Get retrieves a stage profile by stage name.
func (r *StageRegistry) Get(stage string) (*StageProfile, error) {
	p, ok := r.profiles[stage]
	if !ok {
		return nil, NewValidationError("stage_profile", stage, "", ErrStageNotFound)
	}
	return p, nil
}

// GetAll returns all registered stage profiles.
func (r *StageRegistry) GetAll() map[string]*StageProfile {
	return r.profiles
}

// Len returns the number of registered profiles.
func (r *StageRegistry) Len() int {
	return len(r.profiles)
}

// mergeStageProfiles merges built-in and user-defined stage profiles.
// A user profile replaces the built-in profile for the same stage whole:
// partial per-stage overrides are not supported, which keeps transition
// topology edits explicit.
func mergeStageProfiles(builtin, user map[string]*StageProfile) map[string]*StageProfile {
	result := make(map[string]*StageProfile, len(builtin))
	for name, p := range builtin {
		cp := *p
		result[name] = &cp
	}
	for name, p := range user {
		cp := *p
		result[name] = &cp
	}
	return result
}

// builtinStageSettings returns the default transition settings.
func builtinStageSettings() *StageSettings {
	return &StageSettings{
		JumpDeltaThreshold:      0.25,
		PowerBalanceThreshold:   0.3,
		MinUserTurnsFirstGrowth: 3,
	}
}

// builtinStageProfiles returns the default profile for each of the ten
// stages. The invest/ctx curve rises to bonding and falls through the
// coming-apart stages; delay factors stretch as the relationship withdraws.
func builtinStageProfiles() map[string]*StageProfile {
	return map[string]*StageProfile{
		"initiating": {
			NextUp: "experimenting",
			UpEntry: &GrowthEntry{
				MinScores:       map[string]float64{"closeness": 0.35, "liking": 0.35},
				MinSPTDepth:     1,
				MinTopicBreadth: 2,
			},
			UpVeto: &GrowthVeto{
				MinScores: map[string]float64{"trust": 0.2},
			},
			Invest: 0.15, Ctx: 0.10,
			DelayFactor: 1.2,
		},
		"experimenting": {
			NextUp:   "intensifying",
			NextDown: "initiating",
			UpEntry: &GrowthEntry{
				MinScores:       map[string]float64{"closeness": 0.45, "trust": 0.45, "liking": 0.5},
				MinSPTDepth:     2,
				MinTopicBreadth: 3,
				RequiredSignals: []string{"mutual_disclosure"},
			},
			UpVeto: &GrowthVeto{
				MinScores:         map[string]float64{"respect": 0.3},
				CheckPowerBalance: true,
			},
			DecayTriggers: &DecayTriggers{
				MaxScores: map[string]float64{"liking": 0.15, "closeness": 0.1},
			},
			Invest: 0.25, Ctx: 0.20,
			DelayFactor: 1.0,
		},
		"intensifying": {
			NextUp:   "integrating",
			NextDown: "experimenting",
			UpEntry: &GrowthEntry{
				MinScores:       map[string]float64{"closeness": 0.6, "trust": 0.6, "liking": 0.6, "warmth": 0.55},
				MinSPTDepth:     3,
				MinTopicBreadth: 4,
				RequiredSignals: []string{"deep_disclosure"},
			},
			UpVeto: &GrowthVeto{
				MinScores:         map[string]float64{"respect": 0.4},
				CheckPowerBalance: true,
			},
			DecayTriggers: &DecayTriggers{
				MaxScores: map[string]float64{"trust": 0.3, "liking": 0.25},
				ConditionalDrop: &ConditionalDrop{
					Condition: "closeness > 0.7",
					Triggers:  map[string]float64{"trust": 0.4},
				},
			},
			Invest: 0.45, Ctx: 0.40,
			DelayFactor: 0.6,
		},
		"integrating": {
			NextUp:   "bonding",
			NextDown: "differentiating",
			UpEntry: &GrowthEntry{
				MinScores:       map[string]float64{"closeness": 0.75, "trust": 0.75, "liking": 0.7, "warmth": 0.65, "respect": 0.6},
				MinSPTDepth:     4,
				MinTopicBreadth: 5,
				RequiredSignals: []string{"commitment_language"},
			},
			UpVeto: &GrowthVeto{
				CheckPowerBalance: true,
			},
			DecayTriggers: &DecayTriggers{
				MaxScores: map[string]float64{"trust": 0.35},
				ConditionalDrop: &ConditionalDrop{
					Condition: "closeness > 0.75",
					Triggers:  map[string]float64{"trust": 0.45, "respect": 0.4},
				},
				SPTBehavior: "depth_reduction",
			},
			Invest: 0.60, Ctx: 0.55,
			DelayFactor: 0.8,
		},
		"bonding": {
			NextDown: "differentiating",
			DecayTriggers: &DecayTriggers{
				MaxScores: map[string]float64{"trust": 0.4, "warmth": 0.3},
				ConditionalDrop: &ConditionalDrop{
					Condition: "closeness > 0.8",
					Triggers:  map[string]float64{"trust": 0.5},
				},
				SPTBehavior: "depth_reduction",
			},
			Invest: 0.75, Ctx: 0.70,
			DelayFactor: 0.9,
		},
		"differentiating": {
			NextUp:   "integrating",
			NextDown: "circumscribing",
			UpEntry: &GrowthEntry{
				MinScores:       map[string]float64{"trust": 0.6, "closeness": 0.6, "warmth": 0.5},
				RequiredSignals: []string{"repair_attempt"},
			},
			UpVeto: &GrowthVeto{
				CheckPowerBalance: true,
			},
			DecayTriggers: &DecayTriggers{
				MaxScores:   map[string]float64{"liking": 0.3, "warmth": 0.25},
				SPTBehavior: "depth_reduction",
			},
			Invest: 0.68, Ctx: 0.65,
			DelayFactor: 1.1,
		},
		"circumscribing": {
			NextUp:   "differentiating",
			NextDown: "stagnating",
			UpEntry: &GrowthEntry{
				MinScores:       map[string]float64{"trust": 0.45, "warmth": 0.4},
				RequiredSignals: []string{"repair_attempt"},
			},
			DecayTriggers: &DecayTriggers{
				MaxScores:   map[string]float64{"liking": 0.25},
				SPTBehavior: "breadth_reduction",
			},
			Invest: 0.55, Ctx: 0.55,
			DelayFactor: 1.3,
		},
		"stagnating": {
			NextUp:   "circumscribing",
			NextDown: "avoiding",
			UpEntry: &GrowthEntry{
				MinScores:       map[string]float64{"liking": 0.4, "warmth": 0.35},
				RequiredSignals: []string{"re_engagement"},
			},
			DecayTriggers: &DecayTriggers{
				MaxScores:   map[string]float64{"liking": 0.2, "warmth": 0.15},
				SPTBehavior: "breadth_reduction",
			},
			Invest: 0.40, Ctx: 0.45,
			DelayFactor: 2.5,
			MacroDelayP: 0.5,
		},
		"avoiding": {
			NextUp:   "stagnating",
			NextDown: "terminating",
			UpEntry: &GrowthEntry{
				MinScores:       map[string]float64{"liking": 0.35, "trust": 0.35},
				RequiredSignals: []string{"re_engagement"},
			},
			DecayTriggers: &DecayTriggers{
				MaxScores: map[string]float64{"liking": 0.15, "trust": 0.15},
			},
			Invest: 0.25, Ctx: 0.30,
			DelayFactor: 3.0,
			MacroDelayP: 0.8,
		},
		"terminating": {
			Invest: 0.10, Ctx: 0.15,
			DelayFactor: 2.0,
			MacroDelayP: 0.8,
		},
	}
}
