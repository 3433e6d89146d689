// Package trading orchestrates the trade lifecycle: opening a trade from a
// signal, closing it with an outcome, updating equity, recomputing statistics,
// and persisting the resulting state.
package trading

import (
	"context"
	"fmt"
	"time"

	"propTracker/internal/analytics"
	"propTracker/internal/domain"
	"propTracker/internal/equity"
	"propTracker/internal/ids"
	"propTracker/internal/ports"
	"propTracker/internal/risk"
)

// Manager coordinates the accounting engine for one account. All operations
// are synchronous transformations: the input state is never mutated, a new
// value is returned and the caller must replace its held reference.
//
// Open and close never return errors. Malformed input (unknown trade id,
// missing P&L) degrades to a no-op, and persistence failures are logged
// without rolling back the in-memory transition. Callers are interactive UI
// handlers that cannot usefully recover mid-render.
type Manager struct {
	logger ports.Logger
	store  ports.StateStore
	risk   *risk.Manager
	now    func() time.Time
	newID  func() string
}

// Config holds the dependencies for the trade manager.
type Config struct {
	Logger ports.Logger
	Store  ports.StateStore
	Risk   *risk.Manager
	Now    func() time.Time // Defaults to time.Now
	NewID  func() string    // Defaults to ULID generation
}

// NewManager creates a new trade manager instance.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Logger == nil || cfg.Store == nil || cfg.Risk == nil {
		return nil, fmt.Errorf("missing required dependencies for trade manager")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	newID := cfg.NewID
	if newID == nil {
		newID = ids.New
	}
	return &Manager{
		logger: cfg.Logger,
		store:  cfg.Store,
		risk:   cfg.Risk,
		now:    now,
		newID:  newID,
	}, nil
}

// OpenTrade books a new open position from a signal and returns the resulting
// state. Sizing comes from the risk manager; when the signal carries no reward
// sizing, a 2:1 reward-to-risk default applies.
//
// The daily loss limit is not checked here. Callers are expected to consult
// IsDailyLossLimitReached before allowing a new trade.
func (m *Manager) OpenTrade(ctx context.Context, state *domain.TradingState, signal *domain.Signal) *domain.TradingState {
	riskAmount := m.risk.PositionSize(ctx, state)
	rewardAmount := riskAmount * 2
	if signal.RewardAmount != nil {
		rewardAmount = *signal.RewardAmount
	}

	trade := domain.Trade{
		ID:           m.newID(),
		SignalID:     signal.ID,
		Pair:         signal.Pair,
		Direction:    signal.Direction,
		EntryPrice:   signal.EntryPrice,
		StopLoss:     signal.StopLoss,
		TakeProfit:   signal.TakeProfit,
		RiskAmount:   riskAmount,
		RewardAmount: rewardAmount,
		Status:       domain.StatusOpen,
		EntryTime:    m.now(),
		EquityBefore: state.CurrentEquity,
	}

	newState := state.Clone()
	newState.OpenPositions = append(newState.OpenPositions, trade)

	m.logger.Info(ctx, "Trade opened", map[string]interface{}{
		"tradeID":      trade.ID,
		"pair":         trade.Pair,
		"direction":    trade.Direction,
		"riskAmount":   trade.RiskAmount,
		"rewardAmount": trade.RewardAmount,
	})

	m.persist(ctx, newState)
	return newState
}

// CloseTrade resolves an open position with an outcome and returns the
// resulting state. The payout is fixed by the outcome: the full pre-committed
// risk on a stop, the full reward on a target, zero at breakeven, and the
// supplied figure (or zero) on a manual close.
//
// An id that is not among the open positions is silently ignored and the
// state is returned unchanged; a closed trade is immutable.
func (m *Manager) CloseTrade(ctx context.Context, state *domain.TradingState, tradeID string, outcome domain.TradeOutcome, manualPnl *float64) *domain.TradingState {
	idx := -1
	for i := range state.OpenPositions {
		if state.OpenPositions[i].ID == tradeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.logger.Warn(ctx, "Close requested for unknown trade, ignoring", map[string]interface{}{
			"tradeID": tradeID,
		})
		return state
	}

	open := state.OpenPositions[idx]

	var pnl float64
	switch outcome {
	case domain.OutcomeStopLoss:
		pnl = -open.RiskAmount
	case domain.OutcomeTargetHit:
		pnl = open.RewardAmount
	case domain.OutcomeBreakeven:
		pnl = 0
	case domain.OutcomeManualClose:
		if manualPnl != nil {
			pnl = *manualPnl
		}
	}

	closeTime := m.now()
	equityAfter := state.CurrentEquity + pnl
	closed := open
	closed.Status = domain.StatusClosed
	closed.CloseTime = &closeTime
	closed.Outcome = outcome
	closed.Pnl = &pnl
	closed.EquityAfter = &equityAfter

	newState := state.Clone()
	newState.OpenPositions = append(newState.OpenPositions[:idx], newState.OpenPositions[idx+1:]...)
	newState.Trades = append(newState.Trades, closed)
	newState.CurrentEquity = equity.UpdateEquity(state.CurrentEquity, &closed)
	newState.DailyStats.Trades++
	newState.DailyStats.Pnl += pnl
	newState.PerformanceMetrics = analytics.Calculate(newState.Trades, newState.CurrentEquity, newState.InitialEquity)

	m.logger.Info(ctx, "Trade closed", map[string]interface{}{
		"tradeID": closed.ID,
		"outcome": outcome,
		"pnl":     pnl,
		"equity":  newState.CurrentEquity,
	})

	m.persist(ctx, newState)
	return newState
}

// StartNewDay resets the daily counters at a trading-day boundary, anchoring
// the day's starting equity to the current equity. Invoked by the rollover
// scheduler, never by the open/close path.
func (m *Manager) StartNewDay(ctx context.Context, state *domain.TradingState) *domain.TradingState {
	newState := state.Clone()
	newState.DailyStats = domain.DailyStats{InitialEquity: newState.CurrentEquity}

	m.logger.Info(ctx, "Daily stats reset", map[string]interface{}{
		"dayInitialEquity": newState.DailyStats.InitialEquity,
	})

	m.persist(ctx, newState)
	return newState
}

// persist saves the state best-effort. Failures are logged and never surfaced:
// the in-memory transition already happened and must not be rolled back.
func (m *Manager) persist(ctx context.Context, state *domain.TradingState) {
	if err := m.store.Save(ctx, state); err != nil {
		m.logger.Error(ctx, err, "Failed to persist trading state")
	}
}
