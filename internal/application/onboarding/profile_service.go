package onboarding

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/infrastructure/logger"
)

// ProfileView is the profile shown on a dashboard
type ProfileView struct {
	Role      identity.Role
	Dashboard string
	Fields    onboarding.Draft
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileService reads the profile record of the caller's role
type ProfileService struct {
	profiles onboarding.ProfileRepository
	logger   *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles onboarding.ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, logger: logger}
}

// GetProfile returns the profile of id for its current role
func (s *ProfileService) GetProfile(ctx context.Context, id *identity.Identity) (*ProfileView, error) {
	if id == nil {
		return nil, shared.ErrAuthRequired
	}
	if !id.Role.IsSet() {
		return nil, shared.NewDomainError(shared.CodeRoleRequired, "Please choose a role first")
	}

	record, err := s.profiles.FindByUserID(ctx, id.Role, id.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Profile not found")
		}
		logger.With(ctx, s.logger).Error("Failed to load profile",
			zap.String("role", id.Role.String()),
			zap.Error(err),
		)
		return nil, shared.WrapDomainError(shared.CodePersistence, "Failed to load profile", err)
	}

	return &ProfileView{
		Role:      record.Role,
		Dashboard: onboarding.DashboardForRole(record.Role),
		Fields:    onboarding.ProfileFieldsOf(record.Role, record.Fields),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}
