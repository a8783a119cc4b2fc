package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equiflow/internal/api/dto"
	"github.com/spec-kit/equiflow/internal/auth"
	"github.com/spec-kit/equiflow/internal/service"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

// AdminHandler exposes inventory, category, user and reservation management
// plus full-state export/import. All routes are admin-gated by middleware.
type AdminHandler struct {
	inventory    *service.InventoryService
	directory    *service.DirectoryService
	reservations *service.ReservationService
	backup       *service.BackupService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(inventory *service.InventoryService, directory *service.DirectoryService, reservations *service.ReservationService, backup *service.BackupService) *AdminHandler {
	return &AdminHandler{
		inventory:    inventory,
		directory:    directory,
		reservations: reservations,
		backup:       backup,
	}
}

// CreateItem handles POST /admin/items.
func (h *AdminHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.inventory.AddItem(c.UserContext(), service.ItemInput{
		Name:           req.Name,
		Category:       req.Category,
		Specifications: req.Specifications,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": itemResponse(*item)})
}

// UpdateItem handles PUT /admin/items/:id.
func (h *AdminHandler) UpdateItem(c *fiber.Ctx) error {
	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.inventory.UpdateItem(c.UserContext(), c.Params("id"), service.ItemInput{
		Name:           req.Name,
		Category:       req.Category,
		Specifications: req.Specifications,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": itemResponse(*item)})
}

// DeleteItem handles DELETE /admin/items/:id.
func (h *AdminHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.inventory.DeleteItem(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListCategories handles GET /admin/categories.
func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.inventory.ListCategories(c.UserContext())})
}

// CreateCategory handles POST /admin/categories.
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.inventory.AddCategory(c.UserContext(), req.Name); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": req.Name})
}

// DeleteCategory handles DELETE /admin/categories/:name.
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.inventory.DeleteCategory(c.UserContext(), c.Params("name")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users := h.directory.ListUsers(c.UserContext())
	summaries := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, userSummary(u))
	}
	return c.JSON(fiber.Map{"data": summaries})
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	user, err := h.directory.AddUser(c.UserContext(), req.Name, req.Role, req.Email)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userSummary(*user)})
}

// UpdateUser handles PUT /admin/users/:id.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	id := c.Params("id")
	if req.Role != "" {
		if _, err := h.directory.UpdateRole(c.UserContext(), id, req.Role); err != nil {
			return err
		}
	}
	if req.Name != "" {
		if _, err := h.directory.UpdateProfile(c.UserContext(), id, req.Name, req.Email); err != nil {
			return err
		}
	}

	users := h.directory.ListUsers(c.UserContext())
	for _, u := range users {
		if u.ID == id {
			return c.JSON(fiber.Map{"data": userSummary(u)})
		}
	}
	return apperrors.NewNotFound("user", map[string]any{"id": id})
}

// ResetUserPassword handles POST /admin/users/:id/password/reset.
func (h *AdminHandler) ResetUserPassword(c *fiber.Ctx) error {
	user, err := h.directory.ResetPassword(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userSummary(*user)})
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.directory.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListReservations handles GET /admin/reservations.
func (h *AdminHandler) ListReservations(c *fiber.Ctx) error {
	all := h.reservations.ListAll(c.UserContext())
	return c.JSON(fiber.Map{"data": reservationResponses(all)})
}

// CancelReservation handles POST /admin/reservations/:id/cancel.
func (h *AdminHandler) CancelReservation(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	reservation, err := h.reservations.Cancel(c.UserContext(), principal.User, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reservationResponse(*reservation)})
}

// Export handles GET /admin/export.
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	bundle, err := h.backup.Export(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ExportResponse{Bundle: bundle}})
}

// Import handles POST /admin/import.
func (h *AdminHandler) Import(c *fiber.Ctx) error {
	var req dto.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.backup.Import(c.UserContext(), req.Bundle); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": "imported"})
}
