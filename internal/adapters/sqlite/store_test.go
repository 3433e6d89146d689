package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"propTracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements ports.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

// setupTestStore creates a temporary database for testing
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "prop-tracker-test-*")
	require.NoError(t, err)

	store, err := NewStore(Config{
		DBPath:    filepath.Join(tmpDir, "test.db"),
		AccountID: "trader@example.com",
		Logger:    &mockLogger{},
	})
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}
	return store, cleanup
}

func floatPtr(v float64) *float64 { return &v }

func sampleState() *domain.TradingState {
	entryTime := time.Date(2025, 6, 2, 9, 15, 0, 123456789, time.UTC)
	closeTime := time.Date(2025, 6, 2, 11, 45, 30, 987654321, time.UTC)

	state := domain.NewTradingState(100000)
	state.CurrentEquity = 102000
	state.Trades = []domain.Trade{{
		ID:           "01JX5G3A8PZT9QDM4VKXW2R7HE",
		SignalID:     "sig-1",
		Pair:         "EURUSD",
		Direction:    domain.Long,
		EntryPrice:   1.1000,
		StopLoss:     1.0950,
		TakeProfit:   1.1100,
		RiskAmount:   1000,
		RewardAmount: 2000,
		Status:       domain.StatusClosed,
		EntryTime:    entryTime,
		CloseTime:    &closeTime,
		Outcome:      domain.OutcomeTargetHit,
		Pnl:          floatPtr(2000),
		EquityBefore: 100000,
		EquityAfter:  floatPtr(102000),
	}}
	state.OpenPositions = []domain.Trade{{
		ID:           "01JX5G4B9QAT0RENM5WLXX3S8F",
		SignalID:     "sig-2",
		Pair:         "GBPUSD",
		Direction:    domain.Short,
		EntryPrice:   1.2500,
		StopLoss:     1.2550,
		TakeProfit:   1.2400,
		RiskAmount:   1020,
		RewardAmount: 2040,
		Status:       domain.StatusOpen,
		EntryTime:    entryTime.Add(3 * time.Hour),
		EquityBefore: 102000,
	}}
	state.DailyStats = domain.DailyStats{Pnl: 2000, Trades: 1, InitialEquity: 100000}
	return state
}

func TestStoreRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	want := sampleState()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, want.InitialEquity, got.InitialEquity)
	assert.Equal(t, want.CurrentEquity, got.CurrentEquity)
	assert.Equal(t, want.RiskSettings, got.RiskSettings)
	assert.Equal(t, want.DailyStats, got.DailyStats)
	require.Len(t, got.Trades, 1)
	require.Len(t, got.OpenPositions, 1)

	// Timestamps must survive serialization exactly, nanoseconds included.
	assert.True(t, want.Trades[0].EntryTime.Equal(got.Trades[0].EntryTime))
	require.NotNil(t, got.Trades[0].CloseTime)
	assert.True(t, want.Trades[0].CloseTime.Equal(*got.Trades[0].CloseTime))
	assert.Equal(t, want.Trades[0].Outcome, got.Trades[0].Outcome)
	require.NotNil(t, got.Trades[0].Pnl)
	assert.Equal(t, *want.Trades[0].Pnl, *got.Trades[0].Pnl)
	require.NotNil(t, got.Trades[0].EquityAfter)
	assert.Equal(t, *want.Trades[0].EquityAfter, *got.Trades[0].EquityAfter)

	// Open position keeps its close-only fields absent.
	assert.Nil(t, got.OpenPositions[0].CloseTime)
	assert.Nil(t, got.OpenPositions[0].Pnl)
	assert.Nil(t, got.OpenPositions[0].EquityAfter)
}

func TestStoreLoadAbsent(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreSaveReplacesSnapshot(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first := domain.NewTradingState(100000)
	require.NoError(t, store.Save(ctx, first))

	second := sampleState()
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 102000.0, got.CurrentEquity)
	assert.Len(t, got.Trades, 1)
}

func TestStoreClear(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleState()))
	require.NoError(t, store.Clear(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Clearing an already-empty store is not an error.
	require.NoError(t, store.Clear(ctx))
}

func TestNewStoreRequiresAccountID(t *testing.T) {
	_, err := NewStore(Config{Logger: &mockLogger{}})
	assert.Error(t, err)
}
