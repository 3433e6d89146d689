package ports

import (
	"context"

	"propTracker/internal/domain"
)

// StateStore defines the durable-storage contract for the trading state of a
// single account. Save and Clear are best-effort from the engine's point of
// view: a failure is logged by the caller and never rolls back the in-memory
// state transition that triggered it.
type StateStore interface {
	// Save persists the complete trading state, replacing any previous snapshot.
	Save(ctx context.Context, state *domain.TradingState) error
	// Load retrieves the persisted state.
	// Returns nil, nil if no state has been saved yet.
	Load(ctx context.Context) (*domain.TradingState, error)
	// Clear removes the persisted state, if any.
	Clear(ctx context.Context) error
}
