// Command resetstate clears the persisted trading state for the configured
// account. Useful when restarting a prop-firm challenge from scratch.
package main

import (
	"context"
	"log"

	"propTracker/config"
	"propTracker/internal/adapters/logger"
	"propTracker/internal/adapters/sqlite"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	appLogger := logger.NewStdLogger(cfg.LogLevel)
	ctx := context.Background()

	store, err := sqlite.NewStore(sqlite.Config{
		DBPath:    cfg.DBPath,
		AccountID: cfg.AccountID,
		Logger:    appLogger,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize state store: %v", err)
	}
	defer store.Close()

	if err := store.Clear(ctx); err != nil {
		log.Fatalf("FATAL: Failed to clear trading state: %v", err)
	}

	appLogger.Info(ctx, "Trading state cleared", map[string]interface{}{
		"accountID": cfg.AccountID,
	})
}
