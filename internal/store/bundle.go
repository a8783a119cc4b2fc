package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/spec-kit/equiflow/internal/domain"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

// bundle is the wire form of a full state snapshot. Pointer fields
// distinguish an absent collection from an empty one; every key is required
// on import.
type bundle struct {
	Users        *[]domain.User          `json:"users"`
	Items        *[]domain.EquipmentItem `json:"items"`
	Reservations *[]domain.Reservation   `json:"reservations"`
	Categories   *[]string               `json:"categories"`
}

// Export encodes all four collections as a single portable blob.
func (s *Store) Export() (string, error) {
	s.mu.RLock()
	snapshot := bundle{
		Users:        &s.state.Users,
		Items:        &s.state.Items,
		Reservations: &s.state.Reservations,
		Categories:   &s.state.Categories,
	}
	raw, err := json.Marshal(snapshot)
	s.mu.RUnlock()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Import decodes an exported blob and, only when all four collections are
// present, replaces the whole state in one critical section and persists
// every key. On any failure the prior state is left untouched.
func (s *Store) Import(ctx context.Context, encoded string) error {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return apperrors.NewMalformedBundle(err)
	}

	var decoded bundle
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return apperrors.NewMalformedBundle(err)
	}
	if decoded.Users == nil || decoded.Items == nil || decoded.Reservations == nil || decoded.Categories == nil {
		return apperrors.NewMalformedBundle(errors.New("bundle missing required collection"))
	}

	return s.Mutate(ctx, func(state *State) (Dirty, error) {
		state.Users = *decoded.Users
		state.Items = *decoded.Items
		state.Reservations = *decoded.Reservations
		state.Categories = *decoded.Categories
		return DirtyAll(), nil
	})
}
