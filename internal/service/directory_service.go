package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/store"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

// DirectoryService manages the user accounts an admin can edit.
type DirectoryService struct {
	store *store.Store
}

// NewDirectoryService constructs the service.
func NewDirectoryService(st *store.Store) *DirectoryService {
	return &DirectoryService{store: st}
}

// ListUsers returns all accounts.
func (s *DirectoryService) ListUsers(_ context.Context) []domain.User {
	return s.store.Users()
}

// AddUser creates an account with the default password.
func (s *DirectoryService) AddUser(ctx context.Context, name string, role domain.UserRole, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("user name required", nil)
	}
	if role != domain.RoleAdmin && role != domain.RoleEmployee {
		return nil, apperrors.NewValidationError("role must be admin or employee", nil)
	}

	user := domain.User{
		ID:       uuid.NewString(),
		Name:     name,
		Role:     role,
		Email:    strings.TrimSpace(email),
		Password: domain.DefaultPassword,
	}

	err := s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		state.Users = append(state.Users, user)
		return store.Dirty{Users: true}, nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes name and email.
func (s *DirectoryService) UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("user name required", nil)
	}
	return s.updateUser(ctx, id, func(u *domain.User) {
		u.Name = name
		u.Email = strings.TrimSpace(email)
	})
}

// UpdateRole changes the user's role.
func (s *DirectoryService) UpdateRole(ctx context.Context, id string, role domain.UserRole) (*domain.User, error) {
	if role != domain.RoleAdmin && role != domain.RoleEmployee {
		return nil, apperrors.NewValidationError("role must be admin or employee", nil)
	}
	return s.updateUser(ctx, id, func(u *domain.User) {
		u.Role = role
	})
}

// ResetPassword sets the user's password back to the default.
func (s *DirectoryService) ResetPassword(ctx context.Context, id string) (*domain.User, error) {
	return s.updateUser(ctx, id, func(u *domain.User) {
		u.Password = domain.DefaultPassword
	})
}

// DeleteUser removes the account. Existing reservations keep their
// denormalized user name.
func (s *DirectoryService) DeleteUser(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		for i := range state.Users {
			if state.Users[i].ID != id {
				continue
			}
			state.Users = append(state.Users[:i], state.Users[i+1:]...)
			return store.Dirty{Users: true}, nil
		}
		return store.Dirty{}, apperrors.NewNotFound("user", map[string]any{"id": id})
	})
}

func (s *DirectoryService) updateUser(ctx context.Context, id string, apply func(*domain.User)) (*domain.User, error) {
	var updated domain.User
	err := s.store.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		for i := range state.Users {
			if state.Users[i].ID != id {
				continue
			}
			apply(&state.Users[i])
			updated = state.Users[i]
			return store.Dirty{Users: true}, nil
		}
		return store.Dirty{}, apperrors.NewNotFound("user", map[string]any{"id": id})
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
