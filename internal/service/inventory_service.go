package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/store"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

// InventoryService manages equipment items and categories.
type InventoryService struct {
	store *store.Store
}

// NewInventoryService constructs the service.
func NewInventoryService(st *store.Store) *InventoryService {
	return &InventoryService{store: st}
}

// ItemInput describes item create/update payloads.
type ItemInput struct {
	Name           string
	Category       string
	Specifications string
}

// ListItems returns the full inventory.
func (s *InventoryService) ListItems(_ context.Context) []domain.EquipmentItem {
	return s.store.Items()
}

// ListCategories returns the category set.
func (s *InventoryService) ListCategories(_ context.Context) []string {
	return s.store.Categories()
}

// AddItem creates a new available item. The category must already exist.
func (s *InventoryService) AddItem(ctx context.Context, input ItemInput) (*domain.EquipmentItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("item name required", nil)
	}

	item := domain.EquipmentItem{
		ID:             uuid.NewString(),
		Name:           name,
		Category:       strings.TrimSpace(input.Category),
		Status:         domain.ItemStatusAvailable,
		Specifications: strings.TrimSpace(input.Specifications),
	}

	err := s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		if !categoryExists(state.Categories, item.Category) {
			return store.Dirty{}, apperrors.NewValidationError("unknown category", map[string]any{"category": item.Category})
		}
		state.Items = append(state.Items, item)
		return store.Dirty{Items: true}, nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem changes name, specifications and category. Status and holder
// fields stay derived and are not settable here.
func (s *InventoryService) UpdateItem(ctx context.Context, id string, input ItemInput) (*domain.EquipmentItem, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("item name required", nil)
	}

	var updated domain.EquipmentItem
	err := s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		for i := range state.Items {
			if state.Items[i].ID != id {
				continue
			}
			state.Items[i].Name = name
			state.Items[i].Category = strings.TrimSpace(input.Category)
			state.Items[i].Specifications = strings.TrimSpace(input.Specifications)
			updated = state.Items[i]
			return store.Dirty{Items: true}, nil
		}
		return store.Dirty{}, apperrors.NewNotFound("item", map[string]any{"id": id})
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteItem removes an item from the inventory. Reservations referencing it
// are left as they are.
func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		for i := range state.Items {
			if state.Items[i].ID != id {
				continue
			}
			state.Items = append(state.Items[:i], state.Items[i+1:]...)
			return store.Dirty{Items: true}, nil
		}
		return store.Dirty{}, apperrors.NewNotFound("item", map[string]any{"id": id})
	})
}

// AddCategory inserts a new category name. A case-sensitive exact duplicate
// is rejected and the collection is left unchanged.
func (s *InventoryService) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.NewValidationError("category name required", nil)
	}

	return s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		if categoryExists(state.Categories, name) {
			return store.Dirty{}, apperrors.NewDuplicateCategory(name)
		}
		state.Categories = append(state.Categories, name)
		return store.Dirty{Categories: true}, nil
	})
}

// DeleteCategory removes a category. Items referencing it keep their
// category string; the orphan reference is allowed.
func (s *InventoryService) DeleteCategory(ctx context.Context, name string) error {
	return s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		for i, c := range state.Categories {
			if c != name {
				continue
			}
			state.Categories = append(state.Categories[:i], state.Categories[i+1:]...)
			return store.Dirty{Categories: true}, nil
		}
		return store.Dirty{}, apperrors.NewNotFound("category", map[string]any{"category": name})
	})
}

func categoryExists(categories []string, name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}
