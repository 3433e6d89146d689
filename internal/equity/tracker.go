// Package equity applies realized trade results to account equity and marks
// open positions against external prices.
package equity

import "propTracker/internal/domain"

// UpdateEquity applies a closed trade's profit/loss to the account equity.
// A trade without a recorded P&L leaves the equity unchanged; this should not
// occur for a trade passed in closed, but the engine never crashes over it.
func UpdateEquity(currentEquity float64, trade *domain.Trade) float64 {
	if trade == nil || trade.Pnl == nil {
		return currentEquity
	}
	return currentEquity + *trade.Pnl
}

// UnrealizedPnL sums the per-unit price move of each open position against the
// supplied current prices. Positions without a quote contribute zero.
//
// Position size is deliberately not factored in: each position is marked as a
// single unit. Downstream displays depend on this simplified magnitude.
func UnrealizedPnL(openPositions []domain.Trade, currentPrices map[string]float64) float64 {
	var total float64
	for i := range openPositions {
		pos := &openPositions[i]
		price, ok := currentPrices[pos.Pair]
		if !ok {
			continue
		}
		switch pos.Direction {
		case domain.Long:
			total += price - pos.EntryPrice
		case domain.Short:
			total += pos.EntryPrice - price
		}
	}
	return total
}
