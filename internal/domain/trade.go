package domain

import "time"

// Trade represents an executed position derived from exactly one Signal.
//
// A trade is either open, with CloseTime/Outcome/Pnl/EquityAfter all absent,
// or closed with all four present — never a partial mix. Closing produces a
// new value; closed trades are never mutated or deleted.
type Trade struct {
	ID           string       `json:"id"`
	SignalID     string       `json:"signalId"`
	Pair         string       `json:"pair"`
	Direction    Direction    `json:"direction"`
	EntryPrice   float64      `json:"entryPrice"`
	StopLoss     float64      `json:"stopLoss"`
	TakeProfit   float64      `json:"takeProfit"`
	RiskAmount   float64      `json:"riskAmount"`   // Dollar amount this trade may lose
	RewardAmount float64      `json:"rewardAmount"` // Dollar amount paid if the target is hit
	Status       TradeStatus  `json:"status"`
	EntryTime    time.Time    `json:"entryTime"`
	CloseTime    *time.Time   `json:"closeTime,omitempty"`
	Outcome      TradeOutcome `json:"outcome,omitempty"`
	Pnl          *float64     `json:"pnl,omitempty"`
	EquityBefore float64      `json:"equityBefore"`
	EquityAfter  *float64     `json:"equityAfter,omitempty"`
}

// IsOpen checks if the trade status is open.
func (t *Trade) IsOpen() bool {
	return t.Status == StatusOpen
}
