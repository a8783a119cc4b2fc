package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equiflow/internal/api/dto"
	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/service"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

// InventoryHandler exposes the browsable inventory and AI suggestions.
type InventoryHandler struct {
	inventory       *service.InventoryService
	recommendations *service.RecommendationService
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(inventory *service.InventoryService, recommendations *service.RecommendationService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, recommendations: recommendations}
}

// ListItems handles GET /items.
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items := h.inventory.ListItems(c.UserContext())
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"items":      itemResponses(items),
			"categories": h.inventory.ListCategories(c.UserContext()),
		},
	})
}

// Recommend handles POST /items/recommendations.
func (h *InventoryHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	items, err := h.recommendations.Recommend(c.UserContext(), req.TaskDescription)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": itemResponses(items)})
}

func itemResponses(items []domain.EquipmentItem) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemResponse(item))
	}
	return out
}

func itemResponse(item domain.EquipmentItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:                item.ID,
		Name:              item.Name,
		Category:          item.Category,
		Status:            item.Status,
		Specifications:    item.Specifications,
		CurrentHolderName: item.CurrentHolderName,
		CurrentHolderID:   item.CurrentHolderID,
	}
}
