package domain

// ItemStatus enumerates availability states for equipment.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusBorrowed  ItemStatus = "borrowed"
)

// EquipmentItem is a single piece of bookable inventory.
//
// Status and the holder fields are derived from active reservations by the
// lifecycle engine; they are never set independently.
type EquipmentItem struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Status            ItemStatus `json:"status"`
	Specifications    string     `json:"specifications,omitempty"`
	CurrentHolderName string     `json:"currentHolderName,omitempty"`
	CurrentHolderID   string     `json:"currentHolderId,omitempty"`
}

// Valid reports whether the record is well formed enough to keep on load.
func (i EquipmentItem) Valid() bool {
	if i.ID == "" || i.Name == "" {
		return false
	}
	return i.Status == ItemStatusAvailable || i.Status == ItemStatusBorrowed
}
