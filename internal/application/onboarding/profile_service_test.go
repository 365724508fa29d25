package onboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
)

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()
	id := &identity.Identity{UserID: testUserID, SessionID: "session-1", Role: identity.RoleAgency}

	t.Run("returns the role profile", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		now := time.Now()
		profiles.On("FindByUserID", mock.Anything, identity.RoleAgency, testUserID).Return(&onboarding.ProfileRecord{
			UserID: testUserID,
			Role:   identity.RoleAgency,
			Fields: onboarding.Draft{
				onboarding.FieldCompanyName: "ACME IMMO",
				"unrelated":                 "dropped",
			},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

		view, err := NewProfileService(profiles, zap.NewNop()).GetProfile(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "/agency/dashboard", view.Dashboard)
		assert.Equal(t, onboarding.Draft{onboarding.FieldCompanyName: "ACME IMMO"}, view.Fields)
	})

	t.Run("missing profile", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("FindByUserID", mock.Anything, identity.RoleAgency, testUserID).Return(nil, shared.ErrNotFound)

		_, err := NewProfileService(profiles, zap.NewNop()).GetProfile(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("FindByUserID", mock.Anything, identity.RoleAgency, testUserID).Return(nil, errors.New("conn reset"))

		_, err := NewProfileService(profiles, zap.NewNop()).GetProfile(ctx, id)
		assert.ErrorIs(t, err, shared.ErrPersistence)
	})

	t.Run("no role", func(t *testing.T) {
		_, err := NewProfileService(new(MockProfileRepository), zap.NewNop()).GetProfile(ctx, &identity.Identity{UserID: testUserID})
		assert.ErrorIs(t, err, shared.ErrRoleRequired)
	})
}
