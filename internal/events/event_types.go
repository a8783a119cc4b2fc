package events

import (
	"time"

	"github.com/spec-kit/equiflow/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventReservationCreated       EventType = "reservation_created"
	EventReservationStatusChanged EventType = "reservation_status_changed"
	EventReturnVerified           EventType = "return_verified"
	EventDataImported             EventType = "data_imported"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	ReservationID string      `json:"reservation_id,omitempty"`
	ActorUserID   string      `json:"actor_user_id,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// ReservationCreatedPayload payload.
type ReservationCreatedPayload struct {
	ItemIDs   []string `json:"item_ids"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
}

// ReservationStatusChangedPayload payload.
type ReservationStatusChangedPayload struct {
	OldStatus domain.ReservationStatus `json:"old_status"`
	NewStatus domain.ReservationStatus `json:"new_status"`
}

// ReturnVerifiedPayload payload.
type ReturnVerifiedPayload struct {
	VerifiedBy string `json:"verified_by"`
}

// DataImportedPayload payload.
type DataImportedPayload struct {
	Users        int `json:"users"`
	Items        int `json:"items"`
	Reservations int `json:"reservations"`
	Categories   int `json:"categories"`
}
