package service

import (
	"context"
	"strings"

	"github.com/spec-kit/equiflow/internal/ai"
	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/store"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

// RecommendationService suggests inventory items for a task description.
type RecommendationService struct {
	store       *store.Store
	recommender ai.Recommender
}

// NewRecommendationService constructs the service.
func NewRecommendationService(st *store.Store, recommender ai.Recommender) *RecommendationService {
	return &RecommendationService{store: st, recommender: recommender}
}

// Recommend returns suggested items in model order. Ids the model invents
// that are not in the inventory are filtered out; any upstream failure
// surfaces as an empty list.
func (s *RecommendationService) Recommend(ctx context.Context, taskDescription string) ([]domain.EquipmentItem, error) {
	taskDescription = strings.TrimSpace(taskDescription)
	if taskDescription == "" {
		return nil, apperrors.NewValidationError("task description required", nil)
	}

	items := s.store.Items()
	inventory := make([]ai.InventoryEntry, 0, len(items))
	byID := make(map[string]domain.EquipmentItem, len(items))
	for _, item := range items {
		inventory = append(inventory, ai.InventoryEntry{ID: item.ID, Name: item.Name})
		byID[item.ID] = item
	}

	suggested := make([]domain.EquipmentItem, 0)
	for _, id := range s.recommender.Recommend(ctx, taskDescription, inventory) {
		if item, ok := byID[id]; ok {
			suggested = append(suggested, item)
		}
	}
	return suggested, nil
}
