package risk

import (
	"context"
	"testing"

	"propTracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func closedTrade(pnl float64) domain.Trade {
	return domain.Trade{Status: domain.StatusClosed, Pnl: floatPtr(pnl)}
}

func baseState() *domain.TradingState {
	state := domain.NewTradingState(100000)
	return state
}

func TestPositionSize(t *testing.T) {
	manager := NewManager(nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		trades []domain.Trade
		want   float64
	}{
		{
			name: "no history returns base",
			want: 1000, // 100000 * 1% = 1000
		},
		{
			name:   "short history returns base",
			trades: []domain.Trade{closedTrade(-100), closedTrade(-100)},
			want:   1000,
		},
		{
			name:   "full losing streak halves base",
			trades: []domain.Trade{closedTrade(-100), closedTrade(-50), closedTrade(-25)},
			want:   500,
		},
		{
			name:   "winner inside window keeps base",
			trades: []domain.Trade{closedTrade(-100), closedTrade(200), closedTrade(-25)},
			want:   1000,
		},
		{
			name:   "breakeven inside window keeps base",
			trades: []domain.Trade{closedTrade(-100), closedTrade(0), closedTrade(-25)},
			want:   1000,
		},
		{
			name: "older winner outside window still halves",
			trades: []domain.Trade{
				closedTrade(500), closedTrade(-100), closedTrade(-50), closedTrade(-25),
			},
			want: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := baseState()
			state.Trades = tt.trades
			assert.Equal(t, tt.want, manager.PositionSize(ctx, state))
		})
	}
}

func TestPositionSizeUsesCurrentEquity(t *testing.T) {
	manager := NewManager(nil)
	state := baseState()
	state.CurrentEquity = 50000
	state.RiskSettings.RiskPerTrade = 2

	assert.Equal(t, 1000.0, manager.PositionSize(context.Background(), state))
}

func TestIsDailyLossLimitReached(t *testing.T) {
	manager := NewManager(nil)

	tests := []struct {
		name     string
		dailyPnl float64
		want     bool
	}{
		{name: "flat day below limit", dailyPnl: 0, want: false},
		{name: "loss below limit", dailyPnl: -4999, want: false},
		{name: "loss at limit", dailyPnl: -5000, want: true},
		{name: "loss beyond limit", dailyPnl: -7500, want: true},
		// abs() quirk: a large enough profitable day also reads as "reached".
		// Kept deliberately; callers only consult the gate while flat or down.
		{name: "large profit trips the gate", dailyPnl: 6000, want: true},
		{name: "small profit does not", dailyPnl: 1000, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := baseState() // dailyLossLimit 5% of 100000 = 5000
			state.DailyStats.Pnl = tt.dailyPnl
			assert.Equal(t, tt.want, manager.IsDailyLossLimitReached(state))
		})
	}
}

func TestGetSummary(t *testing.T) {
	manager := NewManager(nil)
	state := baseState()
	state.DailyStats.Pnl = -2000

	summary := manager.GetSummary(context.Background(), state)

	assert.Equal(t, 1.0, summary.CurrentRiskPerTrade)
	assert.Equal(t, 1000.0, summary.RiskPerTradeAmount)
	assert.Equal(t, 2000.0, summary.DailyRiskUsed)
	assert.Equal(t, 3000.0, summary.MaxDailyRiskRemaining)
	assert.Equal(t, 5000.0, summary.DailyLossLimit)
}

func TestGetSummaryRemainingFloorsAtZero(t *testing.T) {
	manager := NewManager(nil)
	state := baseState()
	state.DailyStats.Pnl = -9000

	summary := manager.GetSummary(context.Background(), state)
	assert.Equal(t, 0.0, summary.MaxDailyRiskRemaining)
}
