package config

import (
	"time"

	"github.com/rapport-chat/rapport/pkg/models"
)

// DefaultLATSConfig returns the built-in search defaults. Rollouts and
// ExpandK stay zero so the stage-class budgets apply unless overridden.
func DefaultLATSConfig() *LATSConfig {
	return &LATSConfig{
		ExplorationC: 1.41421356,
		EarlyExit: &EarlyExitConfig{
			RootScore:         0.82,
			PlanAlignmentMin:  0.75,
			AssistantinessMax: 0.22,
			ModeFitMin:        0.60,
		},
		Soft: &SoftJudgeConfig{
			TopN:           1,
			MaxConcurrency: 1,
		},
		FinalScoreThreshold: 0.6,
		Budgets: map[string]StageBudget{
			"early": {Rollouts: 4, ExpandK: 2, MinRollouts: 1},
			"deep":  {Rollouts: 2, ExpandK: 1, MinRollouts: 0},
			"late":  {Rollouts: 3, ExpandK: 1, MinRollouts: 0},
		},
	}
}

// DefaultProcessConfig returns the built-in segmentation defaults.
func DefaultProcessConfig() *ProcessConfig {
	return &ProcessConfig{
		MinBubbleLength:      5,
		MaxMessages:          5,
		MinFirstLen:          8,
		MaxMessageLen:        200,
		UseProcessorRole:     false,
		MacroDelayMinSeconds: 1800,
		MacroDelayMaxSeconds: 7200,
	}
}

// DefaultSessionConfig returns the built-in dispatcher defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		QueueDepth:              4,
		TurnTimeout:             5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
	}
}

// DefaultInvokerConfig returns the built-in invoker defaults.
func DefaultInvokerConfig() *InvokerConfig {
	return &InvokerConfig{
		Addr: "localhost:50051",
		Timeouts: RoleTimeouts{
			Main:      60 * time.Second,
			Fast:      20 * time.Second,
			Judge:     20 * time.Second,
			Processor: 30 * time.Second,
		},
		RetryOnTimeout: true,
		ValidateSchema: false,
	}
}

// DefaultEvolveConfig returns the built-in evolution defaults.
func DefaultEvolveConfig() *EvolveConfig {
	return &EvolveConfig{
		MarkAttemptedOnFallback: true,
	}
}

// DefaultDailyTasks returns the built-in daily task pool, used when no
// daily_tasks.yaml is present.
func DefaultDailyTasks() []models.Task {
	return []models.Task{
		{
			ID:          "daily_echo",
			Description: "对对方刚说的点做一点共鸣或接话（可用问句也可不用）",
			Kind:        models.KindDaily,
			Source:      models.TaskSourceDaily,
		},
		{
			ID:          "daily_close",
			Description: "用一句话结束本轮并留一个小钩子（不是问题也行）",
			Kind:        models.KindDaily,
			Source:      models.TaskSourceDaily,
		},
	}
}

// DefaultMemoryConfig returns the built-in memory window defaults.
func DefaultMemoryConfig() *MemoryConfig {
	return &MemoryConfig{
		BufferWindow: 100,
		RetrieveTopK: 5,
	}
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		MessageWindow:    200,
		TranscriptMaxAge: 90 * 24 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}
}

// DefaultServerConfig returns the built-in HTTP listener defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host: "0.0.0.0",
		Port: 8080,
	}
}
