// Rapport conversation server — loads bot configuration, runs the per-turn
// pipeline behind an HTTP API, and maintains per-conversation state in
// PostgreSQL.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rapport-chat/rapport/pkg/api"
	"github.com/rapport-chat/rapport/pkg/cleanup"
	"github.com/rapport-chat/rapport/pkg/config"
	"github.com/rapport-chat/rapport/pkg/database"
	"github.com/rapport-chat/rapport/pkg/events"
	"github.com/rapport-chat/rapport/pkg/graph"
	"github.com/rapport-chat/rapport/pkg/invoker"
	"github.com/rapport-chat/rapport/pkg/masking"
	"github.com/rapport-chat/rapport/pkg/search"
	"github.com/rapport-chat/rapport/pkg/services"
	"github.com/rapport-chat/rapport/pkg/session"
	"github.com/rapport-chat/rapport/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		logger.Warn("could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		logger.Error("failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	logger.Info("configuration loaded",
		"config_dir", *configDir,
		"stage_profiles", stats.StageProfiles,
		"bot_seeds", stats.BotSeeds)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("error closing database client", "error", err)
		}
	}()
	logger.Info("connected to PostgreSQL")

	// 3. Services and bot seeds
	masker := masking.NewService(logger)
	stateService := services.NewStateService(dbClient.Client, cfg, logger)
	memoryService := services.NewMemoryService(dbClient.Client, cfg, logger)
	if err := stateService.SeedBots(ctx, cfg.BotSeeds); err != nil {
		logger.Error("failed to seed bots", "error", err)
		os.Exit(1)
	}

	// 4. Invoker transport (lazy dial; connects on first call)
	inv, err := invoker.NewGRPCInvoker(cfg.Invoker)
	if err != nil {
		logger.Error("failed to initialize invoker client", "addr", cfg.Invoker.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := inv.Close(); err != nil {
			logger.Error("error closing invoker client", "error", err)
		}
	}()
	logger.Info("invoker client initialized", "addr", cfg.Invoker.Addr)

	// 5. Turn pipeline
	engine := search.NewEngine(inv, cfg, logger)
	executor := graph.NewExecutor(inv, cfg, engine, stateService, memoryService, logger)

	// 6. Event fan-out and session dispatchers
	bus := events.NewBus(events.NewPGNotifier(dbClient.DB(), logger))
	sessions := session.NewManager(executor, bus, cfg, logger)

	// 7. Retention
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client, logger)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	srvCtx, srvCancel := context.WithCancel(ctx)
	defer srvCancel()

	httpServer := api.NewServer(sessions, bus, dbClient.DB(), masker, cfg, logger)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(srvCtx); err != nil {
			errCh <- err
		}
	}()
	logger.Info("rapport started",
		"version", version.Full(),
		"host", cfg.Server.Host, "port", cfg.Server.Port)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop accepting, drain in-flight turns.
	srvCancel()
	if err := sessions.Stop(ctx); err != nil {
		logger.Warn("session shutdown incomplete", "error", err)
	}
	logger.Info("shutdown complete")
}
