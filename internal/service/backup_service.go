package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/equiflow/internal/events"
	"github.com/spec-kit/equiflow/internal/store"
)

// BackupService exposes the full-state export/import bundle.
type BackupService struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewBackupService constructs the service.
func NewBackupService(st *store.Store, dispatcher events.Dispatcher) *BackupService {
	return &BackupService{store: st, dispatcher: dispatcher}
}

// Export returns the encoded snapshot of all four collections.
func (s *BackupService) Export(_ context.Context) (string, error) {
	return s.store.Export()
}

// Import replaces all four collections from an encoded snapshot. Prior state
// survives any failure.
func (s *BackupService) Import(ctx context.Context, encoded string) error {
	if err := s.store.Import(ctx, encoded); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventDataImported,
			Timestamp: time.Now(),
			Payload: events.DataImportedPayload{
				Users:        len(s.store.Users()),
				Items:        len(s.store.Items()),
				Reservations: len(s.store.Reservations()),
				Categories:   len(s.store.Categories()),
			},
		})
	}
	return nil
}
