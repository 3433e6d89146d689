// Package rollover drives the trading-day boundary. The accounting engine
// never detects day changes itself; this collaborator fires a callback on a
// cron schedule and the state owner performs the daily reset.
package rollover

import (
	"context"
	"fmt"

	"propTracker/internal/ports"

	"github.com/robfig/cron/v3"
)

// DefaultSpec fires at midnight local time.
const DefaultSpec = "@midnight"

// Scheduler manages the daily rollover job.
type Scheduler struct {
	cron       *cron.Cron
	logger     ports.Logger
	spec       string
	onRollover func()
}

// Config holds the scheduler dependencies.
type Config struct {
	Logger     ports.Logger
	Spec       string // Cron spec; defaults to DefaultSpec
	OnRollover func() // Invoked once per trading-day boundary
}

// NewScheduler creates a new rollover scheduler.
func NewScheduler(cfg Config) (*Scheduler, error) {
	if cfg.Logger == nil || cfg.OnRollover == nil {
		return nil, fmt.Errorf("missing required dependencies for rollover scheduler")
	}
	spec := cfg.Spec
	if spec == "" {
		spec = DefaultSpec
	}
	return &Scheduler{
		cron:       cron.New(),
		logger:     cfg.Logger,
		spec:       spec,
		onRollover: cfg.OnRollover,
	}, nil
}

// Start registers the rollover job and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.logger.Info(ctx, "Trading day rollover triggered", map[string]interface{}{"spec": s.spec})
		s.onRollover()
	})
	if err != nil {
		return fmt.Errorf("failed to register rollover job for spec %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.logger.Info(ctx, "Rollover scheduler started", map[string]interface{}{"spec": s.spec})
	return nil
}

// Stop stops the scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info(context.Background(), "Rollover scheduler stopped")
}
