package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitializeMergesUserValuesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEST_INVOKER_ADDR", "invoker.internal:50051")

	writeFile(t, dir, "rapport.yaml", `
invoker:
  addr: "{{.TEST_INVOKER_ADDR}}"
  timeout:
    fast: 7s
session:
  queue_depth: 9
  turn_timeout: not-a-duration
memory:
  buffer_window: 12
`)
	writeFile(t, dir, "bots/ava.yaml", `
id: ava
name: 艾娃
basic_info:
  name: 艾娃
big_five:
  openness: 0.5
`)
	writeFile(t, dir, "daily_tasks.yaml", `
tasks:
  - id: d1
    description: 关心一下对方
  - id: d2
    description: "   "
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "invoker.internal:50051", cfg.Invoker.Addr, "env template expanded")
	assert.Equal(t, 7*time.Second, cfg.Invoker.Timeouts.Fast)
	assert.Equal(t, DefaultInvokerConfig().Timeouts.Main, cfg.Invoker.Timeouts.Main, "untouched timeout keeps default")
	assert.Equal(t, 9, cfg.Session.QueueDepth)
	assert.Equal(t, DefaultSessionConfig().TurnTimeout, cfg.Session.TurnTimeout, "bad duration falls back to default")
	assert.Equal(t, 12, cfg.Memory.BufferWindow)
	assert.Equal(t, DefaultMemoryConfig().RetrieveTopK, cfg.Memory.RetrieveTopK)

	require.Len(t, cfg.BotSeeds, 1)
	assert.Equal(t, "ava", cfg.BotSeeds[0].ID)

	// Blank daily task descriptions are dropped.
	require.Len(t, cfg.DailyTasks, 1)
	assert.Equal(t, "d1", cfg.DailyTasks[0].ID)
}

func TestInitializeMissingRapportYAML(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeMinimalConfigUsesBuiltins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rapport.yaml", "{}\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// No stages.yaml, no bots, no daily_tasks.yaml: built-ins all the way.
	profile, err := cfg.GetStageProfile("initiating")
	require.NoError(t, err)
	assert.Greater(t, profile.DelayFactor, 0.0)
	assert.Empty(t, cfg.BotSeeds)
	assert.NotEmpty(t, cfg.DailyTasks)
}

func TestInitializeRejectsInvalidStageOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rapport.yaml", "{}\n")
	writeFile(t, dir, "stages.yaml", `
stages:
  initiating:
    invest: 0.2
    ctx: 0.2
    delay_factor: 1.0
    macro_delay_p: 2.0
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "macro_delay_p")
}
