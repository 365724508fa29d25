// Package onboarding drives role selection and the agency onboarding wizard.
package onboarding

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/infrastructure/auth"
	"github.com/rentflow/backend/internal/infrastructure/logger"
	"github.com/rentflow/backend/internal/infrastructure/telemetry"
)

// IdentityProvider is the part of the identity provider role selection uses
type IdentityProvider interface {
	SetRole(ctx context.Context, claims *auth.SessionClaims, role identity.Role) (*auth.SessionToken, error)
	GetUserProfile(ctx context.Context, userID string) (*identity.UserProfile, error)
}

// RoleService assigns the platform role and seeds the matching profile
type RoleService struct {
	identity IdentityProvider
	profiles onboarding.ProfileRepository
	metrics  *telemetry.OnboardingMetrics
	logger   *zap.Logger
}

// NewRoleService creates a new RoleService. metrics may be nil.
func NewRoleService(
	identity IdentityProvider,
	profiles onboarding.ProfileRepository,
	metrics *telemetry.OnboardingMetrics,
	logger *zap.Logger,
) *RoleService {
	return &RoleService{
		identity: identity,
		profiles: profiles,
		metrics:  metrics,
		logger:   logger,
	}
}

// SelectRole assigns the role named by input to the session's user, seeds
// the role's profile record and returns where the user goes next.
// Tenants and landlords get their name and email copied over; agency
// profiles start empty and are filled by the wizard.
func (s *RoleService) SelectRole(ctx context.Context, claims *auth.SessionClaims, input SelectRoleInput) (result *RoleSelectionResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "RoleService", "SelectRole",
		attribute.String("role", input.Role),
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	role, ok := identity.ParseRole(input.Role)
	if !ok {
		err = shared.NewFieldError(shared.CodeValidation, "role", "Please choose tenant, landlord or agency.")
		s.metrics.RecordRoleSelected(ctx, input.Role, err)
		return nil, err
	}
	defer func() { s.metrics.RecordRoleSelected(ctx, role.String(), err) }()

	if claims == nil {
		return nil, shared.ErrAuthRequired
	}
	log := logger.With(ctx, s.logger).With(
		zap.String("user_id", claims.UserID),
		zap.String("role", role.String()),
	)

	session, err := s.identity.SetRole(ctx, claims, role)
	if err != nil {
		log.Warn("Role assignment failed", zap.Error(err))
		return nil, err
	}

	fields := onboarding.Draft{}
	if role != identity.RoleAgency {
		profile, perr := s.identity.GetUserProfile(ctx, claims.UserID)
		if perr != nil {
			err = perr
			return nil, err
		}
		fields = onboarding.Draft{
			onboarding.FieldFirstName: profile.FirstName,
			onboarding.FieldLastName:  profile.LastName,
			onboarding.FieldEmail:     profile.Email,
		}
	}

	if perr := s.profiles.Upsert(ctx, role, claims.UserID, fields); perr != nil {
		log.Error("Failed to seed profile", zap.Error(perr))
		err = shared.WrapDomainError(shared.CodePersistence, shared.ErrPersistence.Message, perr)
		return nil, err
	}

	log.Info("Role selected")
	return &RoleSelectionResult{
		Role:     role,
		Redirect: onboarding.DestinationForRole(role),
		Session:  session,
	}, nil
}
