package dto

import (
	"time"

	"github.com/spec-kit/equiflow/internal/domain"
)

// CreateReservationRequest payload for booking items.
type CreateReservationRequest struct {
	ItemIDs   []string `json:"item_ids"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
}

// VerifyReturnRequest payload for a verified return.
type VerifyReturnRequest struct {
	VerifiedBy string `json:"verified_by"`
}

// ReservationResponse is the reservation wire view.
type ReservationResponse struct {
	ID         string                   `json:"id"`
	UserID     string                   `json:"user_id"`
	UserName   string                   `json:"user_name"`
	ItemIDs    []string                 `json:"item_ids"`
	StartDate  string                   `json:"start_date"`
	EndDate    string                   `json:"end_date"`
	Status     domain.ReservationStatus `json:"status"`
	CreatedAt  time.Time                `json:"created_at"`
	VerifiedBy string                   `json:"verified_by,omitempty"`
}
