package dto

import "github.com/spec-kit/equiflow/internal/domain"

// ItemRequest payload for item create/update.
type ItemRequest struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	Specifications string `json:"specifications"`
}

// ItemResponse is the item wire view, holder fields included only while
// borrowed.
type ItemResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Category          string            `json:"category"`
	Status            domain.ItemStatus `json:"status"`
	Specifications    string            `json:"specifications,omitempty"`
	CurrentHolderName string            `json:"current_holder_name,omitempty"`
	CurrentHolderID   string            `json:"current_holder_id,omitempty"`
}

// CategoryRequest payload for adding a category.
type CategoryRequest struct {
	Name string `json:"name"`
}

// RecommendationRequest payload for AI suggestions.
type RecommendationRequest struct {
	TaskDescription string `json:"task_description"`
}
