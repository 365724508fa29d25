package onboarding

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/infrastructure/auth"
)

// MockProfileRepository is a mock implementation of onboarding.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, role identity.Role, userID string, fields onboarding.Draft) error {
	args := m.Called(ctx, role, userID, fields)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, role identity.Role, userID string) (*onboarding.ProfileRecord, error) {
	args := m.Called(ctx, role, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboarding.ProfileRecord), args.Error(1)
}

// MockCompanyRegistry is a mock implementation of onboarding.CompanyRegistry
type MockCompanyRegistry struct {
	mock.Mock
}

func (m *MockCompanyRegistry) LookupByIdentifier(ctx context.Context, id onboarding.CompanyIdentifier) (*onboarding.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboarding.Company), args.Error(1)
}

// MockIdentityProvider is a mock implementation of IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) SetRole(ctx context.Context, claims *auth.SessionClaims, role identity.Role) (*auth.SessionToken, error) {
	args := m.Called(ctx, claims, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.SessionToken), args.Error(1)
}

func (m *MockIdentityProvider) GetUserProfile(ctx context.Context, userID string) (*identity.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.UserProfile), args.Error(1)
}
