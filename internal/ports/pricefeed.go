package ports

import "context"

// PriceFeed supplies current market prices for instrument symbols. It is an
// external collaborator used only for display-level unrealized P&L marks;
// booked equity never depends on it.
type PriceFeed interface {
	// GetPrices returns the last price for each requested symbol. Symbols the
	// feed cannot quote are simply absent from the result map.
	GetPrices(ctx context.Context, symbols []string) (map[string]float64, error)
}
