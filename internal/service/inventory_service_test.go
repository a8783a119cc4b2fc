package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/equiflow/internal/domain"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

func TestAddCategoryDuplicate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewInventoryService(st)

	before := svc.ListCategories(ctx)
	require.Contains(t, before, "Laptops")

	err := svc.AddCategory(ctx, "Laptops")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "DUPLICATE_CATEGORY"))
	assert.Equal(t, before, svc.ListCategories(ctx))

	// match is case-sensitive, a different casing is a new category
	require.NoError(t, svc.AddCategory(ctx, "laptops"))
	assert.Contains(t, svc.ListCategories(ctx), "laptops")
}

func TestDeleteCategoryKeepsOrphanedItems(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewInventoryService(st)

	require.NoError(t, svc.DeleteCategory(ctx, "Laptops"))
	assert.NotContains(t, svc.ListCategories(ctx), "Laptops")

	// items referencing the removed category keep their reference
	item, ok := st.ItemByID("it1")
	require.True(t, ok)
	assert.Equal(t, "Laptops", item.Category)
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	svc := NewInventoryService(newTestStore(t))

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := svc.AddItem(ctx, ItemInput{Name: "Projector", Category: "Projectors"})
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	})

	t.Run("creates available item", func(t *testing.T) {
		item, err := svc.AddItem(ctx, ItemInput{Name: "Surface Pro", Category: "Tablets", Specifications: "i5, 8GB"})
		require.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, domain.ItemStatusAvailable, item.Status)
		assert.Empty(t, item.CurrentHolderName)
	})
}

func TestUpdateItemDoesNotTouchDerivedFields(t *testing.T) {
	ctx := context.Background()
	svc := NewInventoryService(newTestStore(t))

	item, err := svc.UpdateItem(ctx, "it1", ItemInput{Name: "MacBook Pro 16", Category: "Laptops", Specifications: "M3 Max"})
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro 16", item.Name)
	assert.Equal(t, domain.ItemStatusAvailable, item.Status)
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewInventoryService(st)

	require.NoError(t, svc.DeleteItem(ctx, "it1"))
	_, ok := st.ItemByID("it1")
	assert.False(t, ok)

	err := svc.DeleteItem(ctx, "it1")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}
