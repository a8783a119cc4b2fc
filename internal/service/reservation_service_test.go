package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/events"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

var (
	testAdmin    = domain.User{ID: "u1", Name: "Alice Chen", Role: domain.RoleAdmin}
	testEmployee = domain.User{ID: "u2", Name: "Ben Torres", Role: domain.RoleEmployee}
)

func TestReserve(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(newTestStore(t), events.NewInMemoryDispatcher())

	t.Run("creates pending reservation", func(t *testing.T) {
		r, err := svc.Reserve(ctx, testEmployee, ReserveInput{
			ItemIDs:   []string{"it1"},
			StartDate: "2024-01-10",
			EndDate:   "2024-01-12",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusPending, r.Status)
		assert.Equal(t, testEmployee.ID, r.UserID)
		assert.Equal(t, testEmployee.Name, r.UserName)
		assert.False(t, r.CreatedAt.IsZero())
	})

	t.Run("rejects overlapping range on shared item", func(t *testing.T) {
		_, err := svc.Reserve(ctx, testAdmin, ReserveInput{
			ItemIDs:   []string{"it1", "it2"},
			StartDate: "2024-01-12",
			EndDate:   "2024-01-15",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, "CONFLICT"))
	})

	t.Run("allows adjacent non-overlapping range", func(t *testing.T) {
		_, err := svc.Reserve(ctx, testAdmin, ReserveInput{
			ItemIDs:   []string{"it1"},
			StartDate: "2024-01-13",
			EndDate:   "2024-01-15",
		})
		require.NoError(t, err)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.Reserve(ctx, testEmployee, ReserveInput{StartDate: "2024-01-10", EndDate: "2024-01-12"})
		assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

		_, err = svc.Reserve(ctx, testEmployee, ReserveInput{ItemIDs: []string{"it2"}, StartDate: "bad", EndDate: "2024-01-12"})
		assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

		_, err = svc.Reserve(ctx, testEmployee, ReserveInput{ItemIDs: []string{"it2"}, StartDate: "2024-01-13", EndDate: "2024-01-12"})
		assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

		_, err = svc.Reserve(ctx, testEmployee, ReserveInput{ItemIDs: []string{"missing"}, StartDate: "2024-01-10", EndDate: "2024-01-12"})
		assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
	})
}

func TestCancelReleasesRangeImmediately(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(newTestStore(t), events.NewInMemoryDispatcher())

	r, err := svc.Reserve(ctx, testEmployee, ReserveInput{
		ItemIDs:   []string{"it1"},
		StartDate: "2024-01-10",
		EndDate:   "2024-01-12",
	})
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, testAdmin, ReserveInput{
		ItemIDs:   []string{"it1"},
		StartDate: "2024-01-11",
		EndDate:   "2024-01-11",
	})
	require.Error(t, err)

	cancelled, err := svc.Cancel(ctx, testEmployee, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, cancelled.Status)

	// the previously conflicting booking now succeeds
	_, err = svc.Reserve(ctx, testAdmin, ReserveInput{
		ItemIDs:   []string{"it1"},
		StartDate: "2024-01-11",
		EndDate:   "2024-01-11",
	})
	require.NoError(t, err)
}

func TestCancelAuthorization(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(newTestStore(t), events.NewInMemoryDispatcher())

	r, err := svc.Reserve(ctx, testEmployee, ReserveInput{
		ItemIDs:   []string{"it3"},
		StartDate: "2024-01-10",
		EndDate:   "2024-01-12",
	})
	require.NoError(t, err)

	other := domain.User{ID: "u3", Name: "Carol Huang", Role: domain.RoleEmployee}
	_, err = svc.Cancel(ctx, other, r.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))

	// admins may cancel anyone's reservation
	_, err = svc.Cancel(ctx, testAdmin, r.ID)
	require.NoError(t, err)
}

func TestVerifyReturn(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(newTestStore(t), events.NewInMemoryDispatcher())

	r, err := svc.Reserve(ctx, testEmployee, ReserveInput{
		ItemIDs:   []string{"it4"},
		StartDate: "2024-01-10",
		EndDate:   "2024-01-12",
	})
	require.NoError(t, err)

	t.Run("requires verifier", func(t *testing.T) {
		_, err := svc.VerifyReturn(ctx, testEmployee, r.ID, "  ")
		assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	})

	t.Run("completes and records verifier", func(t *testing.T) {
		completed, err := svc.VerifyReturn(ctx, testEmployee, r.ID, "Alice Chen")
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusCompleted, completed.Status)
		assert.Equal(t, "Alice Chen", completed.VerifiedBy)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		_, err := svc.Cancel(ctx, testEmployee, r.ID)
		require.Error(t, err)
		_, err = svc.VerifyReturn(ctx, testEmployee, r.ID, "Alice Chen")
		require.Error(t, err)
	})
}

func TestListForUser(t *testing.T) {
	ctx := context.Background()
	svc := NewReservationService(newTestStore(t), events.NewInMemoryDispatcher())

	_, err := svc.Reserve(ctx, testEmployee, ReserveInput{ItemIDs: []string{"it5"}, StartDate: "2024-01-10", EndDate: "2024-01-12"})
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, testAdmin, ReserveInput{ItemIDs: []string{"it6"}, StartDate: "2024-01-10", EndDate: "2024-01-12"})
	require.NoError(t, err)

	mine := svc.ListForUser(ctx, testEmployee.ID)
	require.Len(t, mine, 1)
	assert.Equal(t, testEmployee.ID, mine[0].UserID)

	assert.Len(t, svc.ListAll(ctx), 2)
}
