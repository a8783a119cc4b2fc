// Package store owns the four application collections and keeps them
// synchronized with the key-value storage medium. Every mutation runs inside
// the store's lock and writes the affected collections back to their keys
// before the lock is released, so concurrent requests and the lifecycle sweep
// never observe a half-applied change.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/persistence"
)

// Keys are the fixed logical storage keys, one per collection.
type Keys struct {
	Users        string
	Items        string
	Reservations string
	Categories   string
}

// KeysForPrefix builds the storage keys scoped to one application instance.
func KeysForPrefix(prefix string) Keys {
	return Keys{
		Users:        prefix + "_users",
		Items:        prefix + "_items",
		Reservations: prefix + "_reservations",
		Categories:   prefix + "_categories",
	}
}

// State is the mutable view handed to Mutate callbacks.
type State struct {
	Users        []domain.User
	Items        []domain.EquipmentItem
	Reservations []domain.Reservation
	Categories   []string
}

// Dirty marks which collections a mutation touched and must be persisted.
type Dirty struct {
	Users        bool
	Items        bool
	Reservations bool
	Categories   bool
}

// DirtyAll marks every collection for persistence.
func DirtyAll() Dirty {
	return Dirty{Users: true, Items: true, Reservations: true, Categories: true}
}

// Store holds the collections and their persistence backend.
type Store struct {
	mu     sync.RWMutex
	kv     persistence.KeyValue
	keys   Keys
	logger *zap.Logger
	state  State
}

// Open loads all four collections from the backend, substituting seed data
// for absent or unparseable blobs and dropping individually malformed
// records.
func Open(ctx context.Context, kv persistence.KeyValue, prefix string, logger *zap.Logger) (*Store, error) {
	s := &Store{
		kv:     kv,
		keys:   KeysForPrefix(prefix),
		logger: logger,
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	users, err := loadCollection(ctx, s.kv, s.keys.Users, SeedUsers(), s.logger, func(u domain.User) bool { return u.Valid() })
	if err != nil {
		return err
	}
	items, err := loadCollection(ctx, s.kv, s.keys.Items, SeedItems(), s.logger, func(i domain.EquipmentItem) bool { return i.Valid() })
	if err != nil {
		return err
	}
	reservations, err := loadCollection(ctx, s.kv, s.keys.Reservations, []domain.Reservation{}, s.logger, func(r domain.Reservation) bool { return r.Valid() })
	if err != nil {
		return err
	}
	categories, err := loadCollection(ctx, s.kv, s.keys.Categories, SeedCategories(), s.logger, func(c string) bool { return c != "" })
	if err != nil {
		return err
	}

	s.state = State{Users: users, Items: items, Reservations: reservations, Categories: categories}
	return nil
}

// loadCollection reads one key, falling back to seed data when the key is
// absent or the blob does not parse. Records rejected by keep are dropped
// rather than trusted.
func loadCollection[T any](ctx context.Context, kv persistence.KeyValue, key string, seed []T, logger *zap.Logger, keep func(T) bool) ([]T, error) {
	blob, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seed, nil
	}

	var records []T
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		logger.Warn("stored collection unparseable, using seed data", zap.String("key", key), zap.Error(err))
		return seed, nil
	}

	kept := make([]T, 0, len(records))
	for _, record := range records {
		if !keep(record) {
			logger.Warn("dropping malformed record", zap.String("key", key))
			continue
		}
		kept = append(kept, record)
	}
	return kept, nil
}

// Mutate runs fn against the current state under the store lock and persists
// the collections fn reports dirty. When persistence of a dirty collection
// fails the in-memory state still reflects the mutation; cross-collection
// write atomicity is explicitly not guaranteed.
func (s *Store) Mutate(ctx context.Context, fn func(state *State) (Dirty, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirty, err := fn(&s.state)
	if err != nil {
		return err
	}
	return s.persist(ctx, dirty)
}

func (s *Store) persist(ctx context.Context, dirty Dirty) error {
	if dirty.Users {
		if err := s.writeCollection(ctx, s.keys.Users, s.state.Users); err != nil {
			return err
		}
	}
	if dirty.Items {
		if err := s.writeCollection(ctx, s.keys.Items, s.state.Items); err != nil {
			return err
		}
	}
	if dirty.Reservations {
		if err := s.writeCollection(ctx, s.keys.Reservations, s.state.Reservations); err != nil {
			return err
		}
	}
	if dirty.Categories {
		if err := s.writeCollection(ctx, s.keys.Categories, s.state.Categories); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeCollection(ctx context.Context, key string, collection any) error {
	blob, err := json.Marshal(collection)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, string(blob))
}

// Users returns a copy of the user collection.
func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.state.Users...)
}

// Items returns a copy of the item collection.
func (s *Store) Items() []domain.EquipmentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.EquipmentItem(nil), s.state.Items...)
}

// Reservations returns a copy of the reservation collection.
func (s *Store) Reservations() []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Reservation(nil), s.state.Reservations...)
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.state.Categories...)
}

// UserByID looks up a user.
func (s *Store) UserByID(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

// ItemByID looks up an item.
func (s *Store) ItemByID(id string) (domain.EquipmentItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, i := range s.state.Items {
		if i.ID == id {
			return i, true
		}
	}
	return domain.EquipmentItem{}, false
}

// ReservationByID looks up a reservation.
func (s *Store) ReservationByID(id string) (domain.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.state.Reservations {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Reservation{}, false
}
