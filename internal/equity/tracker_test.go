package equity

import (
	"testing"

	"propTracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestUpdateEquity(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		trade   *domain.Trade
		want    float64
	}{
		{
			name:    "profit applied",
			current: 100000,
			trade:   &domain.Trade{Status: domain.StatusClosed, Pnl: floatPtr(2000)},
			want:    102000,
		},
		{
			name:    "loss applied",
			current: 100000,
			trade:   &domain.Trade{Status: domain.StatusClosed, Pnl: floatPtr(-1000)},
			want:    99000,
		},
		{
			name:    "missing pnl is a no-op",
			current: 100000,
			trade:   &domain.Trade{Status: domain.StatusOpen},
			want:    100000,
		},
		{
			name:    "nil trade is a no-op",
			current: 100000,
			trade:   nil,
			want:    100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UpdateEquity(tt.current, tt.trade))
		})
	}
}

func TestUnrealizedPnL(t *testing.T) {
	positions := []domain.Trade{
		{Pair: "EURUSD", Direction: domain.Long, EntryPrice: 1.1000, Status: domain.StatusOpen},
		{Pair: "GBPUSD", Direction: domain.Short, EntryPrice: 1.2500, Status: domain.StatusOpen},
		{Pair: "USDJPY", Direction: domain.Long, EntryPrice: 150.00, Status: domain.StatusOpen},
	}
	prices := map[string]float64{
		"EURUSD": 1.1050, // long, +0.0050
		"GBPUSD": 1.2450, // short, +0.0050
		// USDJPY has no quote and must contribute zero
	}

	got := UnrealizedPnL(positions, prices)
	assert.InDelta(t, 0.0100, got, 1e-9)
}

func TestUnrealizedPnLNoPositions(t *testing.T) {
	assert.Zero(t, UnrealizedPnL(nil, map[string]float64{"EURUSD": 1.1}))
	assert.Zero(t, UnrealizedPnL([]domain.Trade{}, nil))
}
