package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/equiflow/internal/api/dto"
	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/service"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

// AuthHandler exposes the login picker and the session gate.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// ListUsers handles GET /auth/users.
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users := h.auth.ListUsers(c.UserContext())
	summaries := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, userSummary(u))
	}
	return c.JSON(fiber.Map{"data": summaries})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == "" {
		return apperrors.NewValidationError("user_id required", nil)
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.UserID, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"user": userSummary(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

func userSummary(u domain.User) dto.UserSummary {
	return dto.UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Role:  u.Role,
		Email: u.Email,
	}
}
