package domain

import "time"

// Signal is an externally produced trade proposal. It is immutable once
// issued; trades reference it by ID but never own it.
type Signal struct {
	ID           string    `json:"id"`
	Pair         string    `json:"pair"`      // Instrument symbol (e.g., "EURUSD")
	Direction    Direction `json:"direction"` // LONG or SHORT
	EntryPrice   float64   `json:"entryPrice"`
	StopLoss     float64   `json:"stopLoss"`
	TakeProfit   float64   `json:"takeProfit"`
	RiskAmount   *float64  `json:"riskAmount,omitempty"`   // Optional precomputed dollar risk
	RewardAmount *float64  `json:"rewardAmount,omitempty"` // Optional precomputed dollar reward
	Confidence   float64   `json:"confidence,omitempty"`   // Source's confidence score (0-100)
	Timestamp    time.Time `json:"timestamp"`
	Description  string    `json:"description,omitempty"`
}
