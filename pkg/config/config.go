package config

import "github.com/rapport-chat/rapport/pkg/models"

// Config is the umbrella configuration object returned by Initialize()
// and injected at construction everywhere; nothing reads it through a
// global.
type Config struct {
	configDir string

	LATS      *LATSConfig
	Process   *ProcessConfig
	Session   *SessionConfig
	Invoker   *InvokerConfig
	Evolve    *EvolveConfig
	Memory    *MemoryConfig
	Retention *RetentionConfig
	Server    *ServerConfig

	// StageRegistry holds the merged stage profiles.
	StageRegistry *StageRegistry

	// BotSeeds are bot definitions to upsert at startup.
	BotSeeds []BotSeed

	// DailyTasks is the ambient task pool the planner samples from.
	DailyTasks []models.Task
}

// Stats contains statistics about loaded configuration
type Stats struct {
	StageProfiles int
	BotSeeds      int
}

// Stats returns configuration statistics for logging
func (c *Config) Stats() Stats {
	s := Stats{BotSeeds: len(c.BotSeeds)}
	if c.StageRegistry != nil {
		s.StageProfiles = c.StageRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetStageProfile retrieves a stage profile by stage name.
// Convenience wrapper around StageRegistry.Get().
func (c *Config) GetStageProfile(stage string) (*StageProfile, error) {
	return c.StageRegistry.Get(stage)
}

// StageBudgetFor returns the search budget for a stage class, falling back
// to the late-stage budget for unknown classes.
func (c *Config) StageBudgetFor(class string) StageBudget {
	if b, ok := c.LATS.Budgets[class]; ok {
		return b
	}
	return c.LATS.Budgets["late"]
}
