package dto

import (
	"time"

	"github.com/spec-kit/equiflow/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserSummary is the sanitized account view; no password ever leaves the
// service through this type.
type UserSummary struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Role  domain.UserRole `json:"role"`
	Email string          `json:"email,omitempty"`
}
