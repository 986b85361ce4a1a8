package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/rapport-chat/rapport/pkg/models"
)

// RapportYAMLConfig represents the complete rapport.yaml file structure.
// Duration-valued and default-true fields use dedicated YAML types so that
// "20s" strings parse and explicit false survives merging.
type RapportYAMLConfig struct {
	LATS      *LATSConfig        `yaml:"lats"`
	Process   *ProcessConfig     `yaml:"process"`
	Session   *SessionYAMLConfig `yaml:"session"`
	Invoker   *InvokerYAMLConfig `yaml:"invoker"`
	Evolve    *EvolveYAMLConfig  `yaml:"evolve"`
	Memory    *MemoryConfig      `yaml:"memory"`
	Retention *RetentionYAML     `yaml:"retention"`
	Server    *ServerConfig      `yaml:"server"`

	// StagesFile points at the stage-profile YAML, relative to the config
	// directory.
	StagesFile string `yaml:"stages_file"`
	// BotsDir points at the bot seed directory, relative to the config
	// directory.
	BotsDir string `yaml:"bots_dir"`
	// DailyTasksFile points at the daily task pool YAML, relative to the
	// config directory.
	DailyTasksFile string `yaml:"daily_tasks_file"`
}

// DailyTasksYAML is the daily_tasks.yaml file structure.
type DailyTasksYAML struct {
	Tasks []DailyTaskYAML `yaml:"tasks"`
}

// DailyTaskYAML is one entry of the daily task pool.
type DailyTaskYAML struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
}

// SessionYAMLConfig holds dispatcher settings from YAML.
type SessionYAMLConfig struct {
	QueueDepth              int    `yaml:"queue_depth"`
	TurnTimeout             string `yaml:"turn_timeout"`
	GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout"`
}

// InvokerYAMLConfig holds invoker settings from YAML.
type InvokerYAMLConfig struct {
	Addr           string            `yaml:"addr"`
	Timeout        *RoleTimeoutsYAML `yaml:"timeout"`
	RetryOnTimeout *bool             `yaml:"retry_on_timeout"`
	ValidateSchema *bool             `yaml:"validate_schema"`
}

// RoleTimeoutsYAML holds per-role timeouts as duration strings.
type RoleTimeoutsYAML struct {
	Main      string `yaml:"main"`
	Fast      string `yaml:"fast"`
	Judge     string `yaml:"judge"`
	Processor string `yaml:"processor"`
}

// EvolveYAMLConfig holds evolution settings from YAML.
type EvolveYAMLConfig struct {
	MarkAttemptedOnFallback *bool `yaml:"mark_attempted_on_fallback"`
}

// RetentionYAML holds retention settings from YAML.
type RetentionYAML struct {
	MessageWindow    int    `yaml:"message_window"`
	TranscriptMaxAge string `yaml:"transcript_max_age"`
	CleanupInterval  string `yaml:"cleanup_interval"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load rapport.yaml from configDir
//  2. Expand environment variables
//  3. Merge user values over built-in defaults
//  4. Load and merge stage profiles (stages.yaml over built-ins)
//  5. Load bot seed definitions
//  6. Validate everything
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"stage_profiles", stats.StageProfiles,
		"bot_seeds", stats.BotSeeds)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	raw, err := loader.loadRapportYAML()
	if err != nil {
		return nil, NewLoadError("rapport.yaml", err)
	}

	// Numeric-heavy sections merge user YAML over defaults.
	lats := DefaultLATSConfig()
	if raw.LATS != nil {
		if err := mergo.Merge(lats, raw.LATS, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge lats config: %w", err)
		}
	}
	process := DefaultProcessConfig()
	if raw.Process != nil {
		if err := mergo.Merge(process, raw.Process, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge process config: %w", err)
		}
	}
	memory := DefaultMemoryConfig()
	if raw.Memory != nil {
		if err := mergo.Merge(memory, raw.Memory, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge memory config: %w", err)
		}
	}

	// Sections with durations or default-true booleans resolve manually.
	session := resolveSessionConfig(raw.Session)
	invoker := resolveInvokerConfig(raw.Invoker)
	evolve := resolveEvolveConfig(raw.Evolve)
	retention := resolveRetentionConfig(raw.Retention)
	server := resolveServerConfig(raw.Server)

	// Stage profiles: user stages.yaml overrides built-ins per stage.
	stagesFile := raw.StagesFile
	if stagesFile == "" {
		stagesFile = "stages.yaml"
	}
	stageRegistry, err := loader.loadStageRegistry(stagesFile)
	if err != nil {
		return nil, err
	}

	botsDir := raw.BotsDir
	if botsDir == "" {
		botsDir = "bots"
	}
	seeds, err := loadBotSeeds(filepath.Join(configDir, botsDir))
	if err != nil {
		return nil, err
	}

	dailyFile := raw.DailyTasksFile
	if dailyFile == "" {
		dailyFile = "daily_tasks.yaml"
	}
	daily, err := loader.loadDailyTasks(dailyFile)
	if err != nil {
		return nil, err
	}

	return &Config{
		configDir:     configDir,
		LATS:          lats,
		Process:       process,
		Session:       session,
		Invoker:       invoker,
		Evolve:        evolve,
		Memory:        memory,
		Retention:     retention,
		Server:        server,
		StageRegistry: stageRegistry,
		BotSeeds:      seeds,
		DailyTasks:    daily,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// {{.VAR}} template expansion; malformed templates pass through so the
	// YAML parser reports the clearer error.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}

func (l *configLoader) loadRapportYAML() (*RapportYAMLConfig, error) {
	var config RapportYAMLConfig
	if err := l.loadYAML("rapport.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadStageRegistry merges stages.yaml over the built-in profiles. A missing
// stages.yaml means built-ins apply unchanged.
func (l *configLoader) loadStageRegistry(filename string) (*StageRegistry, error) {
	var userStages StagesYAML
	if err := l.loadYAML(filename, &userStages); err != nil {
		if !isNotFound(err) {
			return nil, NewLoadError(filename, err)
		}
	}

	settings := builtinStageSettings()
	if userStages.Settings != nil {
		if userStages.Settings.JumpDeltaThreshold > 0 {
			settings.JumpDeltaThreshold = userStages.Settings.JumpDeltaThreshold
		}
		if userStages.Settings.PowerBalanceThreshold > 0 {
			settings.PowerBalanceThreshold = userStages.Settings.PowerBalanceThreshold
		}
		if userStages.Settings.MinUserTurnsFirstGrowth > 0 {
			settings.MinUserTurnsFirstGrowth = userStages.Settings.MinUserTurnsFirstGrowth
		}
	}

	profiles := mergeStageProfiles(builtinStageProfiles(), userStages.Stages)
	return NewStageRegistry(settings, profiles), nil
}

// loadDailyTasks reads the daily task pool. A missing file means the
// built-in pool applies; entries without a description are dropped.
func (l *configLoader) loadDailyTasks(filename string) ([]models.Task, error) {
	var file DailyTasksYAML
	if err := l.loadYAML(filename, &file); err != nil {
		if isNotFound(err) {
			return DefaultDailyTasks(), nil
		}
		return nil, NewLoadError(filename, err)
	}

	var tasks []models.Task
	for i, t := range file.Tasks {
		desc := strings.TrimSpace(t.Description)
		if desc == "" {
			continue
		}
		id := t.ID
		if id == "" {
			id = fmt.Sprintf("daily_%d", i)
		}
		tasks = append(tasks, models.Task{
			ID:          id,
			Description: desc,
			Kind:        models.KindDaily,
			Source:      models.TaskSourceDaily,
		})
	}
	if len(tasks) == 0 {
		return DefaultDailyTasks(), nil
	}
	return tasks, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, ErrConfigNotFound)
}

// resolveSessionConfig resolves dispatcher configuration, applying defaults.
func resolveSessionConfig(raw *SessionYAMLConfig) *SessionConfig {
	cfg := DefaultSessionConfig()
	if raw == nil {
		return cfg
	}
	if raw.QueueDepth > 0 {
		cfg.QueueDepth = raw.QueueDepth
	}
	if d, ok := parseDuration(raw.TurnTimeout, "session.turn_timeout"); ok {
		cfg.TurnTimeout = d
	}
	if d, ok := parseDuration(raw.GracefulShutdownTimeout, "session.graceful_shutdown_timeout"); ok {
		cfg.GracefulShutdownTimeout = d
	}
	return cfg
}

// resolveInvokerConfig resolves invoker configuration, applying defaults.
func resolveInvokerConfig(raw *InvokerYAMLConfig) *InvokerConfig {
	cfg := DefaultInvokerConfig()
	if raw == nil {
		return cfg
	}
	if raw.Addr != "" {
		cfg.Addr = raw.Addr
	}
	if raw.Timeout != nil {
		if d, ok := parseDuration(raw.Timeout.Main, "invoker.timeout.main"); ok {
			cfg.Timeouts.Main = d
		}
		if d, ok := parseDuration(raw.Timeout.Fast, "invoker.timeout.fast"); ok {
			cfg.Timeouts.Fast = d
		}
		if d, ok := parseDuration(raw.Timeout.Judge, "invoker.timeout.judge"); ok {
			cfg.Timeouts.Judge = d
		}
		if d, ok := parseDuration(raw.Timeout.Processor, "invoker.timeout.processor"); ok {
			cfg.Timeouts.Processor = d
		}
	}
	if raw.RetryOnTimeout != nil {
		cfg.RetryOnTimeout = *raw.RetryOnTimeout
	}
	if raw.ValidateSchema != nil {
		cfg.ValidateSchema = *raw.ValidateSchema
	}
	return cfg
}

// resolveEvolveConfig resolves evolution configuration, applying defaults.
func resolveEvolveConfig(raw *EvolveYAMLConfig) *EvolveConfig {
	cfg := DefaultEvolveConfig()
	if raw == nil {
		return cfg
	}
	if raw.MarkAttemptedOnFallback != nil {
		cfg.MarkAttemptedOnFallback = *raw.MarkAttemptedOnFallback
	}
	return cfg
}

// resolveRetentionConfig resolves retention configuration, applying defaults.
func resolveRetentionConfig(raw *RetentionYAML) *RetentionConfig {
	cfg := DefaultRetentionConfig()
	if raw == nil {
		return cfg
	}
	if raw.MessageWindow > 0 {
		cfg.MessageWindow = raw.MessageWindow
	}
	if d, ok := parseDuration(raw.TranscriptMaxAge, "retention.transcript_max_age"); ok {
		cfg.TranscriptMaxAge = d
	}
	if d, ok := parseDuration(raw.CleanupInterval, "retention.cleanup_interval"); ok {
		cfg.CleanupInterval = d
	}
	return cfg
}

// resolveServerConfig resolves the HTTP listener configuration.
func resolveServerConfig(raw *ServerConfig) *ServerConfig {
	cfg := DefaultServerConfig()
	if raw == nil {
		return cfg
	}
	if raw.Host != "" {
		cfg.Host = raw.Host
	}
	if raw.Port > 0 {
		cfg.Port = raw.Port
	}
	return cfg
}

// parseDuration parses a duration string, logging and skipping bad values.
func parseDuration(s, field string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		slog.Warn("Invalid duration in config, using default",
			"field", field,
			"value", s,
			"error", err)
		return 0, false
	}
	return d, true
}
