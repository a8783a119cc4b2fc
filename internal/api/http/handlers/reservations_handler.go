package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equiflow/internal/api/dto"
	"github.com/spec-kit/equiflow/internal/auth"
	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/service"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

// ReservationsHandler manages a user's own bookings.
type ReservationsHandler struct {
	reservations *service.ReservationService
}

// NewReservationsHandler constructs handler.
func NewReservationsHandler(reservations *service.ReservationService) *ReservationsHandler {
	return &ReservationsHandler{reservations: reservations}
}

// List handles GET /reservations.
func (h *ReservationsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	mine := h.reservations.ListForUser(c.UserContext(), principal.User.ID)
	return c.JSON(fiber.Map{"data": reservationResponses(mine)})
}

// Create handles POST /reservations.
func (h *ReservationsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	reservation, err := h.reservations.Reserve(c.UserContext(), principal.User, service.ReserveInput{
		ItemIDs:   req.ItemIDs,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": reservationResponse(*reservation)})
}

// Cancel handles POST /reservations/:id/cancel.
func (h *ReservationsHandler) Cancel(c *fiber.Ctx) error {
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

// Return handles POST /reservations/:id/return.
func (h *ReservationsHandler) Return(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.VerifyReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	reservation, err := h.reservations.VerifyReturn(c.UserContext(), principal.User, c.Params("id"), req.VerifiedBy)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reservationResponse(*reservation)})
}

func reservationResponses(reservations []domain.Reservation) []dto.ReservationResponse {
	out := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, reservationResponse(r))
	}
	return out
}

func reservationResponse(r domain.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		UserName:   r.UserName,
		ItemIDs:    r.ItemIDs,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		VerifiedBy: r.VerifiedBy,
	}
}
