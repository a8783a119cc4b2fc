package domain

import "time"

// ReservationStatus enumerates lifecycle states for reservations.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// DateLayout is the calendar-date form used for reservation bounds.
// Lexicographic comparison of dates in this form matches chronological order.
const DateLayout = "2006-01-02"

// Reservation books one or more items for an inclusive date range.
type Reservation struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	UserName   string            `json:"userName"`
	ItemIDs    []string          `json:"itemIds"`
	StartDate  string            `json:"startDate"`
	EndDate    string            `json:"endDate"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	VerifiedBy string            `json:"verifiedBy,omitempty"`
}

// Terminal reports whether the reservation can no longer change state.
func (r Reservation) Terminal() bool {
	return r.Status == ReservationStatusCompleted || r.Status == ReservationStatusCancelled
}

// Includes reports whether the reservation references the given item.
func (r Reservation) Includes(itemID string) bool {
	for _, id := range r.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// Valid reports whether the record is well formed enough to keep on load.
func (r Reservation) Valid() bool {
	if r.ID == "" || r.UserID == "" || len(r.ItemIDs) == 0 {
		return false
	}
	switch r.Status {
	case ReservationStatusPending, ReservationStatusActive, ReservationStatusCompleted, ReservationStatusCancelled:
	default:
		return false
	}
	if !ValidDate(r.StartDate) || !ValidDate(r.EndDate) {
		return false
	}
	return r.StartDate <= r.EndDate
}

// ValidDate reports whether s is a calendar date in DateLayout form.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the local calendar date in DateLayout form.
func Today() string {
	return time.Now().Format(DateLayout)
}
