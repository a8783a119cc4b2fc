package dto

import "github.com/spec-kit/equiflow/internal/domain"

// CreateUserRequest payload for adding an account.
type CreateUserRequest struct {
	Name  string          `json:"name"`
	Role  domain.UserRole `json:"role"`
	Email string          `json:"email"`
}

// UpdateUserRequest payload for profile and role edits. Empty fields are
// left unchanged.
type UpdateUserRequest struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// ImportRequest payload carrying the encoded bundle.
type ImportRequest struct {
	Bundle string `json:"bundle"`
}

// ExportResponse payload carrying the encoded bundle.
type ExportResponse struct {
	Bundle string `json:"bundle"`
}
