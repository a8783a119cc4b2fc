package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/equiflow/internal/domain"
	"github.com/spec-kit/equiflow/internal/store"
	apperrors "github.com/spec-kit/equiflow/pkg/util"
)

func TestAddUserGetsDefaultPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewDirectoryService(st)

	user, err := svc.AddUser(ctx, "Dana Wu", domain.RoleEmployee, "dana.wu@example.com")
	require.NoError(t, err)

	stored, ok := st.UserByID(user.ID)
	require.True(t, ok)
	assert.Equal(t, domain.DefaultPassword, stored.Password)

	_, err = svc.AddUser(ctx, "", domain.RoleEmployee, "")
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	_, err = svc.AddUser(ctx, "Eve", "supervisor", "")
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
}

func TestUpdateRoleAndProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewDirectoryService(newTestStore(t))

	user, err := svc.UpdateRole(ctx, "u2", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	user, err = svc.UpdateProfile(ctx, "u2", "Benjamin Torres", "ben@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Benjamin Torres", user.Name)
	assert.Equal(t, "ben@example.com", user.Email)

	_, err = svc.UpdateProfile(ctx, "ghost", "Name", "")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	require.NoError(t, st.Mutate(ctx, func(state *store.State) (store.Dirty, error) {
		state.Users[0].Password = "changed"
		return store.Dirty{Users: true}, nil
	}))
	svc := NewDirectoryService(st)

	user, err := svc.ResetPassword(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPassword, user.Password)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := NewDirectoryService(st)

	require.NoError(t, svc.DeleteUser(ctx, "u3"))
	_, ok := st.UserByID("u3")
	assert.False(t, ok)

	err := svc.DeleteUser(ctx, "u3")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}
