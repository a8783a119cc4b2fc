package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/store"
)

// Sweeper runs the status projections against the store on a fixed cadence.
type Sweeper struct {
	store    *store.Store
	interval time.Duration
	logger   *zap.Logger
}

// NewSweeper constructs a sweeper.
func NewSweeper(st *store.Store, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{store: st, interval: interval, logger: logger}
}

// Run sweeps immediately and then on every tick until ctx is cancelled.
// Runs never overlap: each sweep completes before the next tick is read.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Sweep applies one pass synchronously. Exposed so callers can force a
// re-derivation without waiting on the timer.
func (s *Sweeper) Sweep(ctx context.Context) error {
	return s.sweep(ctx)
}

func (s *Sweeper) sweep(ctx context.Context) error {
	today := domain.Today()
	err := s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		var dirty store.Dirty
		reservations, changed := AdvancePending(state.Reservations, today)
		if changed {
			state.Reservations = reservations
			dirty.Reservations = true
		}
		items, changed := DeriveItemStates(state.Items, state.Reservations)
		if changed {
			state.Items = items
			dirty.Items = true
		}
		return dirty, nil
	})
	if err != nil {
		s.logger.Warn("sweep failed", zap.Error(err))
	}
	return err
}
