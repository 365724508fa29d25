package identity

import (
	"errors"
	"testing"

	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with valid email and password", func(t *testing.T) {
		user, err := NewUser("jane@example.com", "Password123", "Jane", "Doe")

		require.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "Jane", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "Password123", user.PasswordHash)
		assert.Equal(t, RoleUnset, user.Role)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("normalizes email", func(t *testing.T) {
		user, err := NewUser("  Jane@Example.COM ", "Password123", "Jane", "Doe")

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "Password123", "Jane", "Doe")

		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrValidation))
		assert.Contains(t, err.Error(), "Invalid email format")
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser("jane@example.com", "Pass1", "Jane", "Doe")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("fails with password without digits", func(t *testing.T) {
		_, err := NewUser("jane@example.com", "Passwordonly", "Jane", "Doe")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one letter and one number")
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("jane@example.com", "Password123", "Jane", "Doe")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("Password123"))
	assert.False(t, user.VerifyPassword("Password124"))
	assert.False(t, user.VerifyPassword(""))
}

func TestUser_AssignRole(t *testing.T) {
	t.Run("assigns role once", func(t *testing.T) {
		user, err := NewUser("jane@example.com", "Password123", "Jane", "Doe")
		require.NoError(t, err)

		changed, err := user.AssignRole(RoleAgency)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, RoleAgency, user.Role)
	})

	t.Run("same role again is a no-op", func(t *testing.T) {
		user := &User{Role: RoleTenant}

		changed, err := user.AssignRole(RoleTenant)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, RoleTenant, user.Role)
	})

	t.Run("different role is rejected", func(t *testing.T) {
		user := &User{Role: RoleTenant}

		changed, err := user.AssignRole(RoleLandlord)
		require.Error(t, err)
		assert.False(t, changed)
		assert.True(t, errors.Is(err, shared.ErrInvalidState))
		assert.Equal(t, RoleTenant, user.Role)
	})

	t.Run("unset role is rejected", func(t *testing.T) {
		user := &User{}

		_, err := user.AssignRole(RoleUnset)
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestUser_Profile(t *testing.T) {
	user := &User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}

	assert.Equal(t, UserProfile{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}, user.Profile())
}
