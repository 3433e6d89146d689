package risk

import (
	"context"
	"math"

	"propTracker/internal/domain"
	"propTracker/internal/ports"
)

// Manager implements risk management functionality over a trading state.
// It is advisory: sizing and limit checks never block a trade themselves;
// enforcement is the caller's responsibility.
type Manager struct {
	logger ports.Logger
}

// Summary is a read-only risk snapshot for display. All dollar figures are in
// account currency.
type Summary struct {
	CurrentRiskPerTrade   float64 // Percent of equity risked per trade
	RiskPerTradeAmount    float64 // Dollar risk for the next trade, throttle applied
	DailyRiskUsed         float64 // Magnitude of today's realized P&L
	MaxDailyRiskRemaining float64 // Dollar headroom before the daily limit, floored at 0
	DailyLossLimit        float64 // Daily loss limit in dollars
}

// NewManager creates a new risk manager instance.
func NewManager(logger ports.Logger) *Manager {
	return &Manager{logger: logger}
}

// PositionSize computes the dollar risk allowed for the next trade.
//
// Base sizing is a fixed percentage of current equity. When the most recent
// trades form a full losing streak of the configured length, the base amount
// is halved (risk throttle). The window is the literal chronological tail of
// the closed-trade history.
func (m *Manager) PositionSize(ctx context.Context, state *domain.TradingState) float64 {
	base := state.CurrentEquity * state.RiskSettings.RiskPerTrade / 100

	limit := state.RiskSettings.ConsecutiveLossesLimit
	if limit <= 0 || len(state.Trades) < limit {
		return base
	}
	for _, trade := range state.Trades[len(state.Trades)-limit:] {
		if trade.Pnl == nil || *trade.Pnl >= 0 {
			return base
		}
	}
	if m.logger != nil {
		m.logger.Warn(ctx, "Losing streak detected, halving position size", map[string]interface{}{
			"streakLength": limit,
			"baseRisk":     base,
		})
	}
	return base / 2
}

// IsDailyLossLimitReached reports whether today's realized P&L magnitude has
// hit the configured share of the day's starting equity.
//
// The check uses abs(dailyStats.pnl), so a sufficiently large profitable day
// also satisfies it. That mirrors the dashboard's historical behavior and is
// kept as-is; callers only consult this gate while the day is flat or down.
func (m *Manager) IsDailyLossLimitReached(state *domain.TradingState) bool {
	limitAmount := state.DailyStats.InitialEquity * state.RiskSettings.DailyLossLimit / 100
	return math.Abs(state.DailyStats.Pnl) >= limitAmount
}

// GetSummary produces the risk snapshot shown alongside the account header.
// No mutation; safe to call at any time.
func (m *Manager) GetSummary(ctx context.Context, state *domain.TradingState) Summary {
	limitAmount := state.DailyStats.InitialEquity * state.RiskSettings.DailyLossLimit / 100
	used := math.Abs(state.DailyStats.Pnl)
	return Summary{
		CurrentRiskPerTrade:   state.RiskSettings.RiskPerTrade,
		RiskPerTradeAmount:    m.PositionSize(ctx, state),
		DailyRiskUsed:         used,
		MaxDailyRiskRemaining: math.Max(0, limitAmount-used),
		DailyLossLimit:        limitAmount,
	}
}
