// Command exportjournal writes the account's closed-trade history to a CSV
// file for offline review.
package main

import (
	"context"
	"flag"
	"log"

	"propTracker/config"
	"propTracker/internal/adapters/logger"
	"propTracker/internal/adapters/sqlite"
	"propTracker/internal/utils"
)

func main() {
	output := flag.String("o", "trades.csv", "output CSV file")
	flag.Parse()

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

	state, err := store.Load(ctx)
	if err != nil {
		log.Fatalf("FATAL: Failed to load trading state: %v", err)
	}
	if state == nil {
		log.Fatalf("FATAL: No trading state persisted for account %s", cfg.AccountID)
	}

	if err := utils.WriteTradesToCSV(state.Trades, *output); err != nil {
		log.Fatalf("FATAL: Failed to write journal: %v", err)
	}

	appLogger.Info(ctx, "Journal exported", map[string]interface{}{
		"accountID": cfg.AccountID,
		"trades":    len(state.Trades),
		"file":      *output,
	})
}
