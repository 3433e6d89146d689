package main

import (
	"context"
	"log" // Use standard log only for initial fatal errors before logger is set up
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"propTracker/config"
	"propTracker/internal/adapters/binanceclient"
	"propTracker/internal/adapters/logger"
	"propTracker/internal/adapters/sqlite"
	"propTracker/internal/domain"
	"propTracker/internal/equity"
	"propTracker/internal/ports"
	"propTracker/internal/risk"
	"propTracker/internal/rollover"
	"propTracker/internal/trading"
)

const demoPair = "BTCUSDT"

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	appLogger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize logger: %v", err)
	}
	ctx := context.Background()
	appLogger.Info(ctx, "Logger initialized", map[string]interface{}{
		"level":   cfg.LogLevel.String(),
		"backend": cfg.LogBackend,
	})

	// 3. Initialize State Store (Database Adapter)
	store, err := sqlite.NewStore(sqlite.Config{
		DBPath:    cfg.DBPath,
		AccountID: cfg.AccountID,
		Logger:    appLogger,
	})
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize state store")
		log.Fatalf("FATAL: Failed to initialize state store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Error(ctx, err, "Error closing state store")
		}
	}()

	// 4. Load persisted state or start a fresh account
	state, err := store.Load(ctx)
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to load trading state")
		log.Fatalf("FATAL: Failed to load trading state: %v", err)
	}
	if state == nil {
		state = domain.NewTradingState(cfg.InitialEquity)
		state.RiskSettings = domain.RiskSettings{
			RiskPerTrade:           cfg.RiskPerTrade,
			DailyLossLimit:         cfg.DailyLossLimit,
			ConsecutiveLossesLimit: cfg.ConsecutiveLossesLimit,
		}
		appLogger.Info(ctx, "Fresh account initialized", map[string]interface{}{
			"accountID":     cfg.AccountID,
			"initialEquity": cfg.InitialEquity,
		})
	} else {
		appLogger.Info(ctx, "Persisted state restored", map[string]interface{}{
			"accountID":     cfg.AccountID,
			"currentEquity": state.CurrentEquity,
			"trades":        len(state.Trades),
			"openPositions": len(state.OpenPositions),
		})
	}

	// 5. Initialize engine components
	riskManager := risk.NewManager(appLogger)
	tradeManager, err := trading.NewManager(trading.Config{
		Logger: appLogger,
		Store:  store,
		Risk:   riskManager,
	})
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize trade manager")
		log.Fatalf("FATAL: Failed to initialize trade manager: %v", err)
	}

	// 6. Initialize Price Feed (Binance Adapter, public endpoints only)
	priceFeed, err := binanceclient.New(binanceclient.Config{
		APIKey:     cfg.BinanceAPIKey,
		SecretKey:  cfg.BinanceSecretKey,
		UseTestnet: cfg.IsTestnet,
		Logger:     appLogger,
	})
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize price feed")
		log.Fatalf("FATAL: Failed to initialize price feed: %v", err)
	}

	if err := run(ctx, cfg, appLogger, tradeManager, riskManager, priceFeed, state); err != nil {
		appLogger.Error(ctx, err, "Runner exited with error")
		log.Fatalf("FATAL: Runner exited with error: %v", err)
	}
	appLogger.Info(ctx, "Application finished gracefully.")
}

func buildLogger(cfg *config.Config) (ports.Logger, error) {
	if cfg.LogBackend == "zap" {
		return logger.NewZapLogger(cfg.LogLevel)
	}
	return logger.NewStdLogger(cfg.LogLevel), nil
}

// run drives the paper-trading loop. It is the "UI caller" of the engine's
// contract: it holds the single TradingState reference, replaces it with each
// returned value, and checks the daily loss gate before opening.
func run(
	ctx context.Context,
	cfg *config.Config,
	appLogger ports.Logger,
	tradeManager *trading.Manager,
	riskManager *risk.Manager,
	priceFeed ports.PriceFeed,
	state *domain.TradingState,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLogger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()
	}()

	// State mailbox: the rollover goroutine and the tick loop exchange the
	// single reference through channels so there is exactly one writer.
	stateCh := make(chan *domain.TradingState, 1)
	stateCh <- state

	scheduler, err := rollover.NewScheduler(rollover.Config{
		Logger: appLogger,
		Spec:   cfg.RolloverSpec,
		OnRollover: func() {
			s := <-stateCh
			stateCh <- tradeManager.StartNewDay(ctx, s)
		},
	})
	if err != nil {
		return err
	}
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	ticker := time.NewTicker(cfg.PriceRefresh)
	defer ticker.Stop()

	appLogger.Info(ctx, "Paper trading loop started", map[string]interface{}{
		"pair":    demoPair,
		"refresh": cfg.PriceRefresh.String(),
	})

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s := <-stateCh
			stateCh <- tick(ctx, appLogger, tradeManager, riskManager, priceFeed, s)
		}
	}
}

// tick runs one dashboard cycle: mark open positions, resolve any position
// whose stop or target has been crossed, and open a new position when flat
// and the daily loss gate allows it.
func tick(
	ctx context.Context,
	appLogger ports.Logger,
	tradeManager *trading.Manager,
	riskManager *risk.Manager,
	priceFeed ports.PriceFeed,
	state *domain.TradingState,
) *domain.TradingState {
	prices, err := priceFeed.GetPrices(ctx, openPairs(state, demoPair))
	if err != nil {
		// The feed is display-level; booked equity never depends on it.
		appLogger.Warn(ctx, "Price refresh failed, skipping cycle", map[string]interface{}{
			"error": err.Error(),
		})
		return state
	}

	unrealized := equity.UnrealizedPnL(state.OpenPositions, prices)
	summary := riskManager.GetSummary(ctx, state)
	appLogger.Info(ctx, "Dashboard snapshot", map[string]interface{}{
		"currentEquity":  state.CurrentEquity,
		"unrealizedPnl":  unrealized,
		"dailyRiskUsed":  summary.DailyRiskUsed,
		"riskRemaining":  summary.MaxDailyRiskRemaining,
		"totalPnl":       state.PerformanceMetrics.TotalPnl,
		"winRate":        state.PerformanceMetrics.WinRate,
		"maxDrawdown":    state.PerformanceMetrics.MaxDrawdown,
		"openPositions":  len(state.OpenPositions),
		"tradesRecorded": len(state.Trades),
	})

	// Resolve positions whose levels have been crossed.
	for _, pos := range state.OpenPositions {
		price, ok := prices[pos.Pair]
		if !ok {
			continue
		}
		if outcome, hit := resolve(&pos, price); hit {
			state = tradeManager.CloseTrade(ctx, state, pos.ID, outcome, nil)
		}
	}

	if len(state.OpenPositions) > 0 {
		return state
	}
	if riskManager.IsDailyLossLimitReached(state) {
		appLogger.Warn(ctx, "Daily loss limit reached, not opening new trades today")
		return state
	}
	price, ok := prices[demoPair]
	if !ok {
		return state
	}
	return tradeManager.OpenTrade(ctx, state, demoSignal(price))
}

// resolve checks an open position against the current price and returns the
// outcome to book when a stop or target level has been crossed.
func resolve(pos *domain.Trade, price float64) (domain.TradeOutcome, bool) {
	switch pos.Direction {
	case domain.Long:
		if price <= pos.StopLoss {
			return domain.OutcomeStopLoss, true
		}
		if price >= pos.TakeProfit {
			return domain.OutcomeTargetHit, true
		}
	case domain.Short:
		if price >= pos.StopLoss {
			return domain.OutcomeStopLoss, true
		}
		if price <= pos.TakeProfit {
			return domain.OutcomeTargetHit, true
		}
	}
	return "", false
}

// demoSignal builds a long proposal around the current price with a 0.5% stop
// and a 1% target.
func demoSignal(price float64) *domain.Signal {
	return &domain.Signal{
		ID:          uuid.NewString(),
		Pair:        demoPair,
		Direction:   domain.Long,
		EntryPrice:  price,
		StopLoss:    price * 0.995,
		TakeProfit:  price * 1.01,
		Confidence:  50,
		Timestamp:   time.Now().UTC(),
		Description: "Paper-trading demo signal",
	}
}

// openPairs lists the symbols to quote: every open position's pair plus the
// pair used for new demo entries.
func openPairs(state *domain.TradingState, extra string) []string {
	seen := map[string]bool{extra: true}
	pairs := []string{extra}
	for _, pos := range state.OpenPositions {
		if !seen[pos.Pair] {
			seen[pos.Pair] = true
			pairs = append(pairs, pos.Pair)
		}
	}
	return pairs
}
