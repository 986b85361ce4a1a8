package config

import (
	"fmt"

	"github.com/rapport-chat/rapport/pkg/models"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateSearch(); err != nil {
		return fmt.Errorf("search validation failed: %w", err)
	}

	if err := v.validateProcess(); err != nil {
		return fmt.Errorf("process validation failed: %w", err)
	}

	if err := v.validateSession(); err != nil {
		return fmt.Errorf("session validation failed: %w", err)
	}

	if err := v.validateInvoker(); err != nil {
		return fmt.Errorf("invoker validation failed: %w", err)
	}

	if err := v.validateMemory(); err != nil {
		return fmt.Errorf("memory validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := v.validateStageProfiles(); err != nil {
		return fmt.Errorf("stage profile validation failed: %w", err)
	}

	if err := v.validateBotSeeds(); err != nil {
		return fmt.Errorf("bot seed validation failed: %w", err)
	}

	if err := v.validateDailyTasks(); err != nil {
		return fmt.Errorf("daily task validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateSearch() error {
	lats := v.cfg.LATS

	// Zero means the stage-class budget applies.
	if lats.Rollouts < 0 {
		return NewValidationError("lats", "", "rollouts", fmt.Errorf("must not be negative"))
	}
	if lats.ExpandK < 0 {
		return NewValidationError("lats", "", "expand_k", fmt.Errorf("must not be negative"))
	}
	if lats.ExplorationC <= 0 {
		return NewValidationError("lats", "", "exploration_c", fmt.Errorf("must be positive"))
	}
	if lats.FinalScoreThreshold < 0 || lats.FinalScoreThreshold > 1 {
		return NewValidationError("lats", "", "final_score_threshold", fmt.Errorf("must be in [0,1]"))
	}

	if lats.EarlyExit != nil {
		for field, val := range map[string]float64{
			"early_exit.root_score":         lats.EarlyExit.RootScore,
			"early_exit.plan_alignment_min": lats.EarlyExit.PlanAlignmentMin,
			"early_exit.assistantiness_max": lats.EarlyExit.AssistantinessMax,
			"early_exit.mode_fit_min":       lats.EarlyExit.ModeFitMin,
		} {
			if val < 0 || val > 1 {
				return NewValidationError("lats", "", field, fmt.Errorf("must be in [0,1]"))
			}
		}
	}

	if lats.Soft != nil {
		if lats.Soft.TopN < 1 {
			return NewValidationError("lats", "", "soft.top_n", fmt.Errorf("must be at least 1"))
		}
		if lats.Soft.MaxConcurrency < 1 {
			return NewValidationError("lats", "", "soft.max_concurrency", fmt.Errorf("must be at least 1"))
		}
	}

	for class, budget := range lats.Budgets {
		if !models.SearchClass(class).IsValid() {
			return NewValidationError("lats", class, "budgets", fmt.Errorf("unknown search class"))
		}
		if budget.Rollouts < 1 {
			return NewValidationError("lats", class, "budgets.rollouts", fmt.Errorf("must be at least 1"))
		}
		if budget.ExpandK < 1 {
			return NewValidationError("lats", class, "budgets.expand_k", fmt.Errorf("must be at least 1"))
		}
		if budget.MinRollouts < 0 || budget.MinRollouts > budget.Rollouts {
			return NewValidationError("lats", class, "budgets.min_rollouts", fmt.Errorf("must be in [0, rollouts]"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateProcess() error {
	p := v.cfg.Process

	if p.MinBubbleLength < 1 {
		return NewValidationError("process", "", "min_bubble_length", fmt.Errorf("must be at least 1"))
	}
	if p.MaxMessages < 1 {
		return NewValidationError("process", "", "max_messages", fmt.Errorf("must be at least 1"))
	}
	if p.MinFirstLen < 1 {
		return NewValidationError("process", "", "min_first_len", fmt.Errorf("must be at least 1"))
	}
	if p.MaxMessageLen < p.MinBubbleLength {
		return NewValidationError("process", "", "max_message_len", fmt.Errorf("must be at least min_bubble_length (%d)", p.MinBubbleLength))
	}
	if p.MacroDelayMinSeconds < 1 {
		return NewValidationError("process", "", "macro_delay_min_seconds", fmt.Errorf("must be at least 1"))
	}
	if p.MacroDelayMaxSeconds < p.MacroDelayMinSeconds {
		return NewValidationError("process", "", "macro_delay_max_seconds", fmt.Errorf("must be at least macro_delay_min_seconds (%.0f)", p.MacroDelayMinSeconds))
	}

	return nil
}

func (v *ConfigValidator) validateSession() error {
	s := v.cfg.Session

	if s.QueueDepth < 1 {
		return NewValidationError("session", "", "queue_depth", fmt.Errorf("must be at least 1"))
	}
	if s.TurnTimeout <= 0 {
		return NewValidationError("session", "", "turn_timeout", fmt.Errorf("must be positive"))
	}
	if s.GracefulShutdownTimeout <= 0 {
		return NewValidationError("session", "", "graceful_shutdown_timeout", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateInvoker() error {
	inv := v.cfg.Invoker

	if inv.Addr == "" {
		return NewValidationError("invoker", "", "addr", fmt.Errorf("address required"))
	}
	for field, d := range map[string]int64{
		"timeout.main":      int64(inv.Timeouts.Main),
		"timeout.fast":      int64(inv.Timeouts.Fast),
		"timeout.judge":     int64(inv.Timeouts.Judge),
		"timeout.processor": int64(inv.Timeouts.Processor),
	} {
		if d <= 0 {
			return NewValidationError("invoker", "", field, fmt.Errorf("must be positive"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateMemory() error {
	m := v.cfg.Memory

	if m.BufferWindow < 1 {
		return NewValidationError("memory", "", "buffer_window", fmt.Errorf("must be at least 1"))
	}
	if m.RetrieveTopK < 0 {
		return NewValidationError("memory", "", "retrieve_top_k", fmt.Errorf("must not be negative"))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention

	if r.MessageWindow < 1 {
		return NewValidationError("retention", "", "message_window", fmt.Errorf("must be at least 1"))
	}
	if r.TranscriptMaxAge <= 0 {
		return NewValidationError("retention", "", "transcript_max_age", fmt.Errorf("must be positive"))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "", "cleanup_interval", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateServer() error {
	s := v.cfg.Server

	if s.Host == "" {
		return NewValidationError("server", "", "host", fmt.Errorf("host required"))
	}
	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("server", "", "port", fmt.Errorf("must be in [1,65535]"))
	}

	return nil
}

func (v *ConfigValidator) validateStageProfiles() error {
	reg := v.cfg.StageRegistry

	settings := reg.Settings()
	if settings.JumpDeltaThreshold <= 0 || settings.JumpDeltaThreshold > 1 {
		return NewValidationError("stage_settings", "", "jump_delta_threshold", fmt.Errorf("must be in (0,1]"))
	}
	if settings.PowerBalanceThreshold <= 0 || settings.PowerBalanceThreshold > 1 {
		return NewValidationError("stage_settings", "", "power_balance_threshold", fmt.Errorf("must be in (0,1]"))
	}
	if settings.MinUserTurnsFirstGrowth < 1 {
		return NewValidationError("stage_settings", "", "min_user_turns_first_growth", fmt.Errorf("must be at least 1"))
	}

	// Every canonical stage needs a profile; extra profiles indicate typos.
	for _, stage := range models.AllStages {
		if _, err := reg.Get(string(stage)); err != nil {
			return NewValidationError("stage_profile", string(stage), "", fmt.Errorf("missing profile for stage"))
		}
	}

	for name, profile := range reg.GetAll() {
		if !models.RelationshipStage(name).IsValid() {
			return NewValidationError("stage_profile", name, "", fmt.Errorf("unknown stage name"))
		}

		if err := v.validateStageProfile(name, profile); err != nil {
			return err
		}
	}

	return nil
}

func (v *ConfigValidator) validateStageProfile(name string, p *StageProfile) error {
	if p.NextUp != "" && !models.RelationshipStage(p.NextUp).IsValid() {
		return NewValidationError("stage_profile", name, "next_up", fmt.Errorf("unknown stage: %s", p.NextUp))
	}
	if p.NextDown != "" && !models.RelationshipStage(p.NextDown).IsValid() {
		return NewValidationError("stage_profile", name, "next_down", fmt.Errorf("unknown stage: %s", p.NextDown))
	}
	if p.NextUp != "" && p.UpEntry == nil {
		return NewValidationError("stage_profile", name, "up_entry", fmt.Errorf("required when next_up is set"))
	}

	if p.UpEntry != nil {
		if err := v.validateDimensionScores(name, "up_entry.min_scores", p.UpEntry.MinScores); err != nil {
			return err
		}
		if p.UpEntry.MinSPTDepth < 0 {
			return NewValidationError("stage_profile", name, "up_entry.min_spt_depth", fmt.Errorf("must not be negative"))
		}
		if p.UpEntry.MinTopicBreadth < 0 {
			return NewValidationError("stage_profile", name, "up_entry.min_topic_breadth", fmt.Errorf("must not be negative"))
		}
		for i, sig := range p.UpEntry.RequiredSignals {
			if sig == "" {
				return NewValidationError("stage_profile", name, fmt.Sprintf("up_entry.required_signals[%d]", i), fmt.Errorf("signal name required"))
			}
		}
	}

	if p.UpVeto != nil {
		if err := v.validateDimensionScores(name, "up_veto.min_scores", p.UpVeto.MinScores); err != nil {
			return err
		}
	}

	if p.DecayTriggers != nil {
		if err := v.validateDimensionScores(name, "decay_triggers.max_scores", p.DecayTriggers.MaxScores); err != nil {
			return err
		}
		if cd := p.DecayTriggers.ConditionalDrop; cd != nil {
			if cd.Condition == "" {
				return NewValidationError("stage_profile", name, "decay_triggers.conditional_drop.condition", fmt.Errorf("condition required"))
			}
			if err := v.validateDimensionScores(name, "decay_triggers.conditional_drop.triggers", cd.Triggers); err != nil {
				return err
			}
		}
		switch p.DecayTriggers.SPTBehavior {
		case "", SPTBehaviorDepthReduction, SPTBehaviorBreadthReduction:
		default:
			return NewValidationError("stage_profile", name, "decay_triggers.spt_behavior", fmt.Errorf("invalid behavior: %s", p.DecayTriggers.SPTBehavior))
		}
	}

	if p.Invest < 0 || p.Invest > 1 {
		return NewValidationError("stage_profile", name, "invest", fmt.Errorf("must be in [0,1]"))
	}
	if p.Ctx < 0 || p.Ctx > 1 {
		return NewValidationError("stage_profile", name, "ctx", fmt.Errorf("must be in [0,1]"))
	}
	if p.DelayFactor <= 0 {
		return NewValidationError("stage_profile", name, "delay_factor", fmt.Errorf("must be positive"))
	}
	if p.MacroDelayP < 0 || p.MacroDelayP > 1 {
		return NewValidationError("stage_profile", name, "macro_delay_p", fmt.Errorf("must be in [0,1]"))
	}

	return nil
}

func (v *ConfigValidator) validateDimensionScores(name, field string, scores map[string]float64) error {
	for dim, limit := range scores {
		if !isRelationshipDimension(dim) {
			return NewValidationError("stage_profile", name, field, fmt.Errorf("unknown dimension: %s", dim))
		}
		if limit < 0 || limit > 1 {
			return NewValidationError("stage_profile", name, field, fmt.Errorf("limit for %s must be in [0,1]", dim))
		}
	}
	return nil
}

func isRelationshipDimension(name string) bool {
	for _, dim := range models.RelationshipDimensions {
		if dim == name {
			return true
		}
	}
	return false
}

func (v *ConfigValidator) validateBotSeeds() error {
	seen := make(map[string]bool, len(v.cfg.BotSeeds))

	for i, seed := range v.cfg.BotSeeds {
		if seed.ID == "" {
			return NewValidationError("bot", fmt.Sprintf("index %d", i), "id", fmt.Errorf("id required"))
		}
		if seen[seed.ID] {
			return NewValidationError("bot", seed.ID, "id", fmt.Errorf("duplicate bot id"))
		}
		seen[seed.ID] = true

		if seed.Name == "" {
			return NewValidationError("bot", seed.ID, "name", fmt.Errorf("name required"))
		}

		for trait, val := range seed.BigFive {
			if !isBigFiveTrait(trait) {
				return NewValidationError("bot", seed.ID, "big_five", fmt.Errorf("unknown trait: %s", trait))
			}
			if val < -1 || val > 1 {
				return NewValidationError("bot", seed.ID, "big_five", fmt.Errorf("trait %s must be in [-1,1]", trait))
			}
		}
	}

	return nil
}

func isBigFiveTrait(name string) bool {
	switch name {
	case "openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism":
		return true
	}
	return false
}

func (v *ConfigValidator) validateDailyTasks() error {
	seen := make(map[string]bool, len(v.cfg.DailyTasks))

	for _, t := range v.cfg.DailyTasks {
		if t.Description == "" {
			return NewValidationError("daily_task", t.ID, "description", fmt.Errorf("description required"))
		}
		if seen[t.ID] {
			return NewValidationError("daily_task", t.ID, "id", fmt.Errorf("duplicate task id"))
		}
		seen[t.ID] = true
	}

	return nil
}
