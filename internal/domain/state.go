package domain

// Default risk settings applied to a fresh account.
const (
	DefaultRiskPerTrade           = 1.0
	DefaultDailyLossLimit         = 5.0
	DefaultConsecutiveLossesLimit = 3
)

// RiskSettings is the user-editable risk configuration for an account.
type RiskSettings struct {
	RiskPerTrade           float64 `json:"riskPerTrade"`           // Percent of equity risked per trade
	DailyLossLimit         float64 `json:"dailyLossLimit"`         // Percent of the day's starting equity
	ConsecutiveLossesLimit int     `json:"consecutiveLossesLimit"` // Losing streak length that triggers risk throttling
}

// PerformanceMetrics is a fully derived statistics snapshot. It is a cache:
// always recomputable from the closed-trade history plus equity, never an
// independent source of truth.
type PerformanceMetrics struct {
	TotalPnl          float64 `json:"totalPnl"`
	WinRate           float64 `json:"winRate"` // Percent
	TotalTrades       int     `json:"totalTrades"`
	WinningTrades     int     `json:"winningTrades"`
	LosingTrades      int     `json:"losingTrades"`
	AverageWin        float64 `json:"averageWin"`
	AverageLoss       float64 `json:"averageLoss"`
	ProfitFactor      float64 `json:"profitFactor"`
	MaxDrawdown       float64 `json:"maxDrawdown"`     // Percent
	CurrentDrawdown   float64 `json:"currentDrawdown"` // Percent
	GrossProfit       float64 `json:"grossProfit"`
	GrossLoss         float64 `json:"grossLoss"`
	ConsecutiveWins   int     `json:"consecutiveWins"`   // Historical maximum streak
	ConsecutiveLosses int     `json:"consecutiveLosses"` // Historical maximum streak
}

// DailyStats holds per-trading-day counters. Reset is driven by an external
// daily-rollover collaborator; the engine does not detect day boundaries.
type DailyStats struct {
	Pnl           float64 `json:"pnl"`
	Trades        int     `json:"trades"`
	InitialEquity float64 `json:"initialEquity"` // Equity at the start of the trading day
}

// TradingState is the aggregate root for one account. Every engine operation
// replaces it wholesale; the caller owns the single current reference.
type TradingState struct {
	InitialEquity      float64            `json:"initialEquity"`
	CurrentEquity      float64            `json:"currentEquity"`
	Trades             []Trade            `json:"trades"` // Closed trades, append-only, oldest first
	OpenPositions      []Trade            `json:"openPositions"`
	RiskSettings       RiskSettings       `json:"riskSettings"`
	PerformanceMetrics PerformanceMetrics `json:"performanceMetrics"`
	DailyStats         DailyStats         `json:"dailyStats"`
}

// NewTradingState creates the state for a fresh account: current equity equals
// initial equity, empty histories, default risk settings, zeroed metrics.
func NewTradingState(initialEquity float64) *TradingState {
	return &TradingState{
		InitialEquity: initialEquity,
		CurrentEquity: initialEquity,
		Trades:        make([]Trade, 0),
		OpenPositions: make([]Trade, 0),
		RiskSettings: RiskSettings{
			RiskPerTrade:           DefaultRiskPerTrade,
			DailyLossLimit:         DefaultDailyLossLimit,
			ConsecutiveLossesLimit: DefaultConsecutiveLossesLimit,
		},
		DailyStats: DailyStats{InitialEquity: initialEquity},
	}
}

// Clone returns a deep copy of the state. Engine operations work on a clone so
// the caller's previous value is never mutated.
func (s *TradingState) Clone() *TradingState {
	c := *s
	c.Trades = make([]Trade, len(s.Trades))
	copy(c.Trades, s.Trades)
	c.OpenPositions = make([]Trade, len(s.OpenPositions))
	copy(c.OpenPositions, s.OpenPositions)
	return &c
}
