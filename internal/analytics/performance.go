// Package analytics recomputes the account's performance statistics from the
// complete closed-trade history. It is pure: no caching, no incremental
// updates, the full block is rebuilt on every call.
package analytics

import (
	"math"

	"propTracker/internal/domain"
)

// Calculate builds a fresh PerformanceMetrics block from the closed-trade
// history. Trades are expected oldest first, as stored on TradingState.
//
// currentEquity is the caller-supplied live account value. It may differ from
// the equity curve's terminal point when unrealized P&L exists; the current
// drawdown figure deliberately reflects the live value against the historical
// peak, so it can exceed the recorded maximum.
func Calculate(trades []domain.Trade, currentEquity, initialEquity float64) domain.PerformanceMetrics {
	metrics := domain.PerformanceMetrics{}
	if len(trades) == 0 {
		return metrics
	}

	var (
		grossProfit, grossLoss      float64
		winners, losers             int
		winStreak, lossStreak       int
		maxWinStreak, maxLossStreak int
	)

	runningEquity := initialEquity
	peakEquity := initialEquity
	var maxDrawdown float64

	for i := range trades {
		pnl := 0.0
		if trades[i].Pnl != nil {
			pnl = *trades[i].Pnl
		}

		// Winner/loser partition. Zero-P&L trades count toward the total
		// (and the win-rate denominator) but into neither bucket.
		switch {
		case pnl > 0:
			winners++
			grossProfit += pnl
		case pnl < 0:
			losers++
			grossLoss += math.Abs(pnl)
		}

		// Streaks are historical maxima across the whole history, not the
		// current tail (the risk throttle inspects the tail separately).
		if pnl > 0 {
			winStreak++
		} else {
			winStreak = 0
		}
		if pnl < 0 {
			lossStreak++
		} else {
			lossStreak = 0
		}
		if winStreak > maxWinStreak {
			maxWinStreak = winStreak
		}
		if lossStreak > maxLossStreak {
			maxLossStreak = lossStreak
		}

		// Equity curve walk for the drawdown maximum.
		runningEquity += pnl
		if runningEquity > peakEquity {
			peakEquity = runningEquity
		}
		if peakEquity > 0 {
			drawdown := (peakEquity - runningEquity) / peakEquity * 100
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	total := len(trades)
	metrics.TotalTrades = total
	metrics.WinningTrades = winners
	metrics.LosingTrades = losers
	metrics.GrossProfit = grossProfit
	metrics.GrossLoss = grossLoss
	metrics.TotalPnl = grossProfit - grossLoss
	metrics.WinRate = float64(winners) / float64(total) * 100
	if winners > 0 {
		metrics.AverageWin = grossProfit / float64(winners)
	}
	if losers > 0 {
		metrics.AverageLoss = grossLoss / float64(losers)
	}
	if grossLoss > 0 {
		metrics.ProfitFactor = grossProfit / grossLoss
	}
	metrics.MaxDrawdown = maxDrawdown
	if peakEquity > 0 {
		metrics.CurrentDrawdown = (peakEquity - currentEquity) / peakEquity * 100
	}
	metrics.ConsecutiveWins = maxWinStreak
	metrics.ConsecutiveLosses = maxLossStreak

	return metrics
}
