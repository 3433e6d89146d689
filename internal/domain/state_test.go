package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTradingState(t *testing.T) {
	state := NewTradingState(100000)

	assert.Equal(t, 100000.0, state.InitialEquity)
	assert.Equal(t, 100000.0, state.CurrentEquity)
	assert.Empty(t, state.Trades)
	assert.Empty(t, state.OpenPositions)
	assert.Equal(t, RiskSettings{
		RiskPerTrade:           DefaultRiskPerTrade,
		DailyLossLimit:         DefaultDailyLossLimit,
		ConsecutiveLossesLimit: DefaultConsecutiveLossesLimit,
	}, state.RiskSettings)
	assert.Equal(t, PerformanceMetrics{}, state.PerformanceMetrics)
	assert.Equal(t, DailyStats{InitialEquity: 100000}, state.DailyStats)
}

func TestCloneIsIndependent(t *testing.T) {
	state := NewTradingState(100000)
	state.Trades = []Trade{{ID: "t-1", Status: StatusClosed}}
	state.OpenPositions = []Trade{{ID: "t-2", Status: StatusOpen}}

	clone := state.Clone()
	clone.Trades = append(clone.Trades, Trade{ID: "t-3", Status: StatusClosed})
	clone.OpenPositions[0].Pair = "EURUSD"
	clone.CurrentEquity = 95000

	require.Len(t, state.Trades, 1)
	assert.Empty(t, state.OpenPositions[0].Pair)
	assert.Equal(t, 100000.0, state.CurrentEquity)
}
