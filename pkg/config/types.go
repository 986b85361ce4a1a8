package config

import "time"

// LATSConfig controls the candidate search engine.
type LATSConfig struct {
	// Rollouts / ExpandK override the stage-class budget when > 0.
	Rollouts int `yaml:"rollouts"`
	ExpandK  int `yaml:"expand_k"`

	// ExplorationC is the UCB exploration constant.
	ExplorationC float64 `yaml:"exploration_c"`

	EarlyExit *EarlyExitConfig `yaml:"early_exit"`
	Soft      *SoftJudgeConfig `yaml:"soft"`

	// FinalScoreThreshold is the bar for the best plan's re-evaluation.
	// A plan below it is still returned, with a warning.
	FinalScoreThreshold float64 `yaml:"final_score_threshold"`

	// Budgets maps stage class ("early", "deep", "late") to rollout budgets.
	Budgets map[string]StageBudget `yaml:"budgets"`
}

// EarlyExitConfig is the set of thresholds that let the search stop after
// the root evaluation or any rollout.
type EarlyExitConfig struct {
	RootScore         float64 `yaml:"root_score"`
	PlanAlignmentMin  float64 `yaml:"plan_alignment_min"`
	AssistantinessMax float64 `yaml:"assistantiness_max"`
	ModeFitMin        float64 `yaml:"mode_fit_min"`
}

// SoftJudgeConfig controls the LLM soft scorer layer.
type SoftJudgeConfig struct {
	// TopN is how many gate survivors get a soft score per expansion.
	TopN int `yaml:"top_n"`
	// MaxConcurrency caps concurrent judge calls process-wide.
	MaxConcurrency int `yaml:"max_concurrency"`
}

// StageBudget is the per-stage-class search budget.
type StageBudget struct {
	Rollouts    int `yaml:"rollouts"`
	ExpandK     int `yaml:"expand_k"`
	MinRollouts int `yaml:"min_rollouts"`
}

// ProcessConfig controls segmentation and delivery shaping.
type ProcessConfig struct {
	// MinBubbleLength drops shorter segments by merging them forward.
	MinBubbleLength int `yaml:"min_bubble_length"`
	// MaxMessages caps the bubbles per turn.
	MaxMessages int `yaml:"max_messages"`
	// MinFirstLen is the minimum rune length of the first bubble.
	MinFirstLen int `yaml:"min_first_len"`
	// MaxMessageLen is the hard cap on a single bubble.
	MaxMessageLen int `yaml:"max_message_len"`
	// UseProcessorRole lets an LLM reshape segmentation instead of the
	// rule splitter. The rule splitter remains the fallback.
	UseProcessorRole bool `yaml:"use_processor_role"`
	// MacroDelayMinSeconds / MacroDelayMaxSeconds bound the long-silence
	// window for withdrawn stages.
	MacroDelayMinSeconds float64 `yaml:"macro_delay_min_seconds"`
	MacroDelayMaxSeconds float64 `yaml:"macro_delay_max_seconds"`
}

// SessionConfig controls the per-session dispatcher.
type SessionConfig struct {
	// QueueDepth bounds the per-session inbox; beyond it, queued input
	// coalesces into the newest entry.
	QueueDepth int `yaml:"queue_depth"`
	// TurnTimeout is the maximum wall time for one graph run.
	TurnTimeout time.Duration `yaml:"-"`
	// GracefulShutdownTimeout is the max wait for in-flight turns on Stop.
	GracefulShutdownTimeout time.Duration `yaml:"-"`
}

// InvokerConfig controls the LLM transport.
type InvokerConfig struct {
	// Addr is the gRPC endpoint of the invoker service.
	Addr string `yaml:"addr"`
	// Timeouts are per-role call deadlines.
	Timeouts RoleTimeouts `yaml:"-"`
	// RetryOnTimeout retries a timed-out call once before falling back.
	RetryOnTimeout bool `yaml:"retry_on_timeout"`
	// ValidateSchema checks parsed replies against the per-call JSON schema.
	ValidateSchema bool `yaml:"validate_schema"`
}

// RoleTimeouts holds the per-role invoke deadlines.
type RoleTimeouts struct {
	Main      time.Duration
	Fast      time.Duration
	Judge     time.Duration
	Processor time.Duration
}

// EvolveConfig controls relationship evolution bookkeeping.
type EvolveConfig struct {
	// MarkAttemptedOnFallback counts the searched tasks as attempted when
	// the turn ended on a degenerate plan that names no task ids.
	MarkAttemptedOnFallback bool `yaml:"mark_attempted_on_fallback"`
}

// MemoryConfig controls buffer and retrieval windows.
type MemoryConfig struct {
	// BufferWindow is the chat-buffer tail kept in state and persisted.
	BufferWindow int `yaml:"buffer_window"`
	// RetrieveTopK is how many notes/transcripts retrieval surfaces.
	RetrieveTopK int `yaml:"retrieve_top_k"`
}

// RetentionConfig controls background pruning of per-user history.
type RetentionConfig struct {
	// MessageWindow is how many newest messages per user survive pruning.
	MessageWindow int `yaml:"message_window"`
	// TranscriptMaxAge is the age bound for transcripts and derived notes.
	TranscriptMaxAge time.Duration `yaml:"-"`
	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"-"`
}

// ServerConfig controls the HTTP API listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}
