package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/persistence"
	"github.com/spec-kit/equiflow/internal/store"
)

func TestSweepPromotesAndDerives(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, persistence.NewMemory(), "test", zap.NewNop())
	require.NoError(t, err)

	today := domain.Today()
	err = st.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		state.Reservations = []domain.Reservation{{
			ID:        "r1",
			UserID:    "u1",
			UserName:  "Alice Chen",
			ItemIDs:   []string{"it1"},
			StartDate: today,
			EndDate:   today,
			Status:    domain.ReservationStatusPending,
			CreatedAt: time.Now(),
		}}
		return store.Dirty{Reservations: true}, nil
	})
	require.NoError(t, err)

	sweeper := NewSweeper(st, time.Second, zap.NewNop())
	require.NoError(t, sweeper.Sweep(ctx))

	r, ok := st.ReservationByID("r1")
	require.True(t, ok)
	require.Equal(t, domain.ReservationStatusActive, r.Status)

	item, ok := st.ItemByID("it1")
	require.True(t, ok)
	require.Equal(t, domain.ItemStatusBorrowed, item.Status)
	require.Equal(t, "Alice Chen", item.CurrentHolderName)
	require.Equal(t, "u1", item.CurrentHolderID)
}

func TestSweepReleasesItemAfterCancellation(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, persistence.NewMemory(), "test", zap.NewNop())
	require.NoError(t, err)

	today := domain.Today()
	err = st.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		state.Reservations = []domain.Reservation{{
			ID:        "r1",
			UserID:    "u1",
			UserName:  "Alice Chen",
			ItemIDs:   []string{"it1"},
			StartDate: today,
			EndDate:   today,
			Status:    domain.ReservationStatusActive,
		}}
		return store.Dirty{Reservations: true}, nil
	})
	require.NoError(t, err)

	sweeper := NewSweeper(st, time.Second, zap.NewNop())
	require.NoError(t, sweeper.Sweep(ctx))

	item, _ := st.ItemByID("it1")
	require.Equal(t, domain.ItemStatusBorrowed, item.Status)

	err = st.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		state.Reservations[0].Status = domain.ReservationStatusCancelled
		return store.Dirty{Reservations: true}, nil
	})
	require.NoError(t, err)

	// item state catches up on the next sweep
	require.NoError(t, sweeper.Sweep(ctx))
	item, _ = st.ItemByID("it1")
	require.Equal(t, domain.ItemStatusAvailable, item.Status)
	require.Empty(t, item.CurrentHolderName)
}
