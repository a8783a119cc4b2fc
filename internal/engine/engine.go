// Package engine derives reservation and item status from wall-clock dates.
// The projections are pure functions over slices so tests can call them
// synchronously; the Sweeper applies them to the store on a timer.
package engine

import "github.com/spec-kit/equiflow/internal/domain"

// AdvancePending promotes pending reservations whose inclusive date window
// contains today to active. No other status is touched: active reservations
// never auto-expire, completion happens only through a verified return.
func AdvancePending(reservations []domain.Reservation, today string) ([]domain.Reservation, bool) {
	out := append([]domain.Reservation(nil), reservations...)
	changed := false
	for i := range out {
		if out[i].Status != domain.ReservationStatusPending {
			continue
		}
		if today >= out[i].StartDate && today <= out[i].EndDate {
			out[i].Status = domain.ReservationStatusActive
			changed = true
		}
	}
	return out, changed
}

// DeriveItemStates recomputes item availability and holder fields from the
// active reservations. When several active reservations reference the same
// item the first one in slice order wins; that tie-break is incidental, not
// contractual.
func DeriveItemStates(items []domain.EquipmentItem, reservations []domain.Reservation) ([]domain.EquipmentItem, bool) {
	out := append([]domain.EquipmentItem(nil), items...)
	changed := false
	for i := range out {
		next := out[i]
		next.Status = domain.ItemStatusAvailable
		next.CurrentHolderName = ""
		next.CurrentHolderID = ""
		for _, r := range reservations {
			if r.Status == domain.ReservationStatusActive && r.Includes(out[i].ID) {
				next.Status = domain.ItemStatusBorrowed
				next.CurrentHolderName = r.UserName
				next.CurrentHolderID = r.UserID
				break
			}
		}
		if next != out[i] {
			out[i] = next
			changed = true
		}
	}
	return out, changed
}

// CheckConflicts reports whether booking the given items for the inclusive
// [start, end] range collides with any reservation that is not cancelled and
// not completed. Overlap is inclusive on both bounds: a shared boundary day
// is a conflict.
func CheckConflicts(reservations []domain.Reservation, itemIDs []string, start, end string) bool {
	for _, r := range reservations {
		if r.Terminal() {
			continue
		}
		if start > r.EndDate || end < r.StartDate {
			continue
		}
		for _, id := range itemIDs {
			if r.Includes(id) {
				return true
			}
		}
	}
	return false
}
