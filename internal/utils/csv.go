package utils

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"propTracker/internal/domain"
)

// WriteTradesToCSV exports the closed-trade history for offline journaling.
func WriteTradesToCSV(trades []domain.Trade, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	writer.Write([]string{"id", "signal_id", "pair", "direction", "entry_price", "stop_loss", "take_profit",
		"risk_amount", "reward_amount", "entry_time", "close_time", "outcome", "pnl", "equity_before", "equity_after"})

	for i := range trades {
		t := &trades[i]
		closeTime := ""
		if t.CloseTime != nil {
			closeTime = t.CloseTime.Format(time.RFC3339)
		}
		pnl := ""
		if t.Pnl != nil {
			pnl = strconv.FormatFloat(*t.Pnl, 'f', -1, 64)
		}
		equityAfter := ""
		if t.EquityAfter != nil {
			equityAfter = strconv.FormatFloat(*t.EquityAfter, 'f', -1, 64)
		}
		writer.Write([]string{
			t.ID,
			t.SignalID,
			t.Pair,
			string(t.Direction),
			strconv.FormatFloat(t.EntryPrice, 'f', -1, 64),
			strconv.FormatFloat(t.StopLoss, 'f', -1, 64),
			strconv.FormatFloat(t.TakeProfit, 'f', -1, 64),
			strconv.FormatFloat(t.RiskAmount, 'f', -1, 64),
			strconv.FormatFloat(t.RewardAmount, 'f', -1, 64),
			t.EntryTime.Format(time.RFC3339),
			closeTime,
			string(t.Outcome),
			pnl,
			strconv.FormatFloat(t.EquityBefore, 'f', -1, 64),
			equityAfter,
		})
	}
	return writer.Error()
}
