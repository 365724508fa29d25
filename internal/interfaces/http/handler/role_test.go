package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rentflow/backend/internal/application/onboarding"
	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/infrastructure/auth"
	"github.com/rentflow/backend/internal/interfaces/http/dto"
)

// MockRoleSelector is a mock implementation of RoleSelector
type MockRoleSelector struct {
	mock.Mock
}

func (m *MockRoleSelector) SelectRole(ctx context.Context, claims *auth.SessionClaims, input onboarding.SelectRoleInput) (*onboarding.RoleSelectionResult, error) {
	args := m.Called(ctx, claims, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboarding.RoleSelectionResult), args.Error(1)
}

func setupRoleRouter(roles RoleSelector, mw ...gin.HandlerFunc) *gin.Engine {
	h := NewRoleHandler(roles, testCookie())
	r := newRouter(mw...)
	r.GET("/onboarding/role", h.RolePage)
	r.POST("/onboarding/role", h.SelectRole)
	return r
}

func TestRoleHandler_SelectRole(t *testing.T) {
	roles := new(MockRoleSelector)
	roles.On("SelectRole", mock.Anything, mock.Anything, onboarding.SelectRoleInput{Role: "agency"}).
		Return(&onboarding.RoleSelectionResult{
			Role:     identity.RoleAgency,
			Redirect: "/onboarding/agency/siret-search",
			Session:  &auth.SessionToken{Token: "reissued", SessionID: "session-1", ExpiresAt: time.Now().Add(time.Hour)},
		}, nil)

	r := setupRoleRouter(roles, withSession(identity.RoleUnset))
	w := doJSON(r, http.MethodPost, "/onboarding/role", SelectRoleRequest{Role: "agency"})

	require.Equal(t, http.StatusOK, w.Code)
	var data RoleSelectionResponse
	decode(t, w, &data)
	assert.Equal(t, "agency", data.Role)
	assert.Equal(t, "/onboarding/agency/siret-search", data.Redirect)

	cookie := sessionCookieOf(w)
	require.NotNil(t, cookie)
	assert.Equal(t, "reissued", cookie.Value)
	roles.AssertExpectations(t)
}

func TestRoleHandler_SelectRole_Failures(t *testing.T) {
	t.Run("unknown role is rejected before the service", func(t *testing.T) {
		roles := new(MockRoleSelector)
		r := setupRoleRouter(roles, withSession(identity.RoleUnset))

		w := doJSON(r, http.MethodPost, "/onboarding/role", SelectRoleRequest{Role: "admin"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w, nil)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "role", resp.Error.Details[0].Field)
		roles.AssertNotCalled(t, "SelectRole", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("anonymous", func(t *testing.T) {
		roles := new(MockRoleSelector)
		r := setupRoleRouter(roles)

		w := doJSON(r, http.MethodPost, "/onboarding/role", SelectRoleRequest{Role: "tenant"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("profile seeding failure", func(t *testing.T) {
		roles := new(MockRoleSelector)
		roles.On("SelectRole", mock.Anything, mock.Anything, mock.Anything).Return(nil, shared.ErrPersistence)
		r := setupRoleRouter(roles, withSession(identity.RoleUnset))

		w := doJSON(r, http.MethodPost, "/onboarding/role", SelectRoleRequest{Role: "tenant"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode(t, w, nil)
		assert.Equal(t, dto.ErrCodePersistence, resp.Error.Code)
		assert.Nil(t, sessionCookieOf(w))
	})
}

func TestRoleHandler_RolePage(t *testing.T) {
	r := setupRoleRouter(new(MockRoleSelector), withSession(identity.RoleLandlord))

	w := doJSON(r, http.MethodGet, "/onboarding/role", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var page RolePageResponse
	decode(t, w, &page)
	assert.Equal(t, []string{"tenant", "landlord", "agency"}, page.Roles)
	assert.Equal(t, "landlord", page.CurrentRole)
}
