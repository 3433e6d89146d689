package domain

// Direction represents the side of a trade (LONG or SHORT).
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

// TradeStatus represents the lifecycle state of a trade.
type TradeStatus string

const (
	StatusOpen   TradeStatus = "open"
	StatusClosed TradeStatus = "closed"
)

// TradeOutcome indicates how a position was resolved. It selects the payout
// formula applied when the trade is closed.
type TradeOutcome string

const (
	OutcomeStopLoss    TradeOutcome = "Stop Loss Hit"
	OutcomeTargetHit   TradeOutcome = "Target Hit"
	OutcomeBreakeven   TradeOutcome = "Breakeven"
	OutcomeManualClose TradeOutcome = "Manual Close"
)
