package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/engine"
	"github.com/spec-kit/equiflow/internal/events"
	"github.com/spec-kit/equiflow/internal/store"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

// ReservationService coordinates booking, cancellation and verified returns.
type ReservationService struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewReservationService constructs the service.
func NewReservationService(st *store.Store, dispatcher events.Dispatcher) *ReservationService {
	return &ReservationService{store: st, dispatcher: dispatcher}
}

// ReserveInput describes a booking request.
type ReserveInput struct {
	ItemIDs   []string
	StartDate string
	EndDate   string
}

// Reserve validates the request, runs the conflict check and creates a
// pending reservation stamped with the session user.
func (s *ReservationService) Reserve(ctx context.Context, user domain.User, input ReserveInput) (*domain.Reservation, error) {
	if len(input.ItemIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one item required", nil)
	}
	if !domain.ValidDate(input.StartDate) || !domain.ValidDate(input.EndDate) {
		return nil, apperrors.NewValidationError("dates must be YYYY-MM-DD", nil)
	}
	if input.StartDate > input.EndDate {
		return nil, apperrors.NewValidationError("start date must not be after end date", nil)
	}

	reservation := domain.Reservation{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Name,
		ItemIDs:   dedupe(input.ItemIDs),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    domain.ReservationStatusPending,
		CreatedAt: time.Now(),
	}

	err := s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		for _, id := range reservation.ItemIDs {
			if !itemExists(state.Items, id) {
				return store.Dirty{}, apperrors.NewNotFound("item", map[string]any{"id": id})
			}
		}
		if engine.CheckConflicts(state.Reservations, reservation.ItemIDs, reservation.StartDate, reservation.EndDate) {
			return store.Dirty{}, apperrors.NewConflict("requested items are already reserved for an overlapping range", nil)
		}
		state.Reservations = append(state.Reservations, reservation)
		return store.Dirty{Reservations: true}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:          events.EventReservationCreated,
		ReservationID: reservation.ID,
		ActorUserID:   user.ID,
		Payload: events.ReservationCreatedPayload{
			ItemIDs:   reservation.ItemIDs,
			StartDate: reservation.StartDate,
			EndDate:   reservation.EndDate,
		},
	})
	return &reservation, nil
}

// Cancel sets the reservation to cancelled. The date range is released for
// conflict purposes immediately; item state catches up on the next sweep.
func (s *ReservationService) Cancel(ctx context.Context, actor domain.User, reservationID string) (*domain.Reservation, error) {
	var cancelled domain.Reservation
	var oldStatus domain.ReservationStatus

	err := s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		idx := reservationIndex(state.Reservations, reservationID)
		if idx < 0 {
			return store.Dirty{}, apperrors.NewNotFound("reservation", map[string]any{"id": reservationID})
		}
		r := state.Reservations[idx]
		if r.UserID != actor.ID && !actor.IsAdmin() {
			return store.Dirty{}, apperrors.NewForbidden("not your reservation")
		}
		if r.Terminal() {
			return store.Dirty{}, apperrors.NewValidationError("reservation already finished", nil)
		}
		oldStatus = r.Status
		r.Status = domain.ReservationStatusCancelled
		state.Reservations[idx] = r
		cancelled = r
		return store.Dirty{Reservations: true}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:          events.EventReservationStatusChanged,
		ReservationID: cancelled.ID,
		ActorUserID:   actor.ID,
		Payload: events.ReservationStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: cancelled.Status,
		},
	})
	return &cancelled, nil
}

// VerifyReturn records a verified return. This is the only path to the
// completed status.
func (s *ReservationService) VerifyReturn(ctx context.Context, actor domain.User, reservationID, verifiedBy string) (*domain.Reservation, error) {
	verifiedBy = strings.TrimSpace(verifiedBy)
	if verifiedBy == "" {
		return nil, apperrors.NewValidationError("verifier name required", nil)
	}

	var completed domain.Reservation
	var oldStatus domain.ReservationStatus
	_ = oldStatus

	err := s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		idx := reservationIndex(state.Reservations, reservationID)
		if idx < 0 {
			return store.Dirty{}, apperrors.NewNotFound("reservation", map[string]any{"id": reservationID})
		}
		r := state.Reservations[idx]
		if r.UserID != actor.ID && !actor.IsAdmin() {
			return store.Dirty{}, apperrors.NewForbidden("not your reservation")
		}
		if r.Terminal() {
			return store.Dirty{}, apperrors.NewValidationError("reservation already finished", nil)
		}
		oldStatus = r.Status
		r.Status = domain.ReservationStatusCompleted
		r.VerifiedBy = verifiedBy
		state.Reservations[idx] = r
		completed = r
		return store.Dirty{Reservations: true}, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:          events.EventReturnVerified,
		ReservationID: completed.ID,
		ActorUserID:   actor.ID,
		Payload:       events.ReturnVerifiedPayload{VerifiedBy: verifiedBy},
	})
	return &completed, nil
}

// ListForUser returns the user's own reservations.
func (s *ReservationService) ListForUser(_ context.Context, userID string) []domain.Reservation {
	all := s.store.Reservations()
	mine := make([]domain.Reservation, 0, len(all))
	for _, r := range all {
		if r.UserID == userID {
			mine = append(mine, r)
		}
	}
	return mine
}

// ListAll returns every reservation for admin views.
func (s *ReservationService) ListAll(_ context.Context) []domain.Reservation {
	return s.store.Reservations()
}

func (s *ReservationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func reservationIndex(reservations []domain.Reservation, id string) int {
	for i, r := range reservations {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func itemExists(items []domain.EquipmentItem, id string) bool {
	for _, i := range items {
		if i.ID == id {
			return true
		}
	}
	return false
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
