// Package identity implements the identity provider used by the gate and
// the onboarding flows: accounts, sessions and the set-once role.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/infrastructure/auth"
	"github.com/rentflow/backend/internal/infrastructure/logger"
)

// DefaultRoleCacheTTL is how long a resolved role stays cached
const DefaultRoleCacheTTL = 5 * time.Minute

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	RoleCacheTTL time.Duration
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{RoleCacheTTL: DefaultRoleCacheTTL}
}

// AuthService handles accounts, sessions and role assignment
type AuthService struct {
	userRepo   identity.UserRepository
	roleCache  identity.RoleCache
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	config     AuthServiceConfig
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	roleCache identity.RoleCache,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	if config.RoleCacheTTL <= 0 {
		config.RoleCacheTTL = DefaultRoleCacheTTL
	}
	return &AuthService{
		userRepo:   userRepo,
		roleCache:  roleCache,
		jwtService: jwtService,
		blacklist:  blacklist,
		config:     config,
		logger:     logger,
	}
}

// SignUp creates an account without a role and opens a session for it
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*SessionResult, error) {
	user, err := identity.NewUser(input.Email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		logger.With(ctx, s.logger).Error("Failed to check email", zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeIdentityProvider, "Failed to create account", err)
	}
	if exists {
		return nil, shared.NewFieldError(shared.CodeAlreadyExists, "email", "An account with this email already exists")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewFieldError(shared.CodeAlreadyExists, "email", "An account with this email already exists")
		}
		logger.With(ctx, s.logger).Error("Failed to create user", zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeIdentityProvider, "Failed to create account", err)
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	logger.With(ctx, s.logger).Info("Account created",
		zap.String("user_id", user.ID.String()),
		zap.String("session_id", session.SessionID),
	)
	return &SessionResult{Session: session, User: toUserInfo(user)}, nil
}

// SignIn verifies credentials and opens a session. Unknown emails and wrong
// passwords yield the same error.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*SessionResult, error) {
	log := logger.With(ctx, s.logger)

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			log.Warn("Sign-in for unknown email")
			return nil, shared.ErrInvalidCredentials
		}
		log.Error("Failed to load user", zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeIdentityProvider, "Failed to sign in", err)
	}

	if !user.VerifyPassword(input.Password) {
		log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, shared.ErrInvalidCredentials
	}

	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	log.Info("User signed in",
		zap.String("user_id", user.ID.String()),
		zap.String("session_id", session.SessionID),
	)
	return &SessionResult{Session: session, User: toUserInfo(user)}, nil
}

// SignOut revokes the session until the token would have expired
func (s *AuthService) SignOut(ctx context.Context, claims *auth.SessionClaims) error {
	if claims == nil {
		return shared.ErrAuthRequired
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		logger.With(ctx, s.logger).Error("Failed to revoke session", zap.Error(err))
		return shared.WrapDomainError(shared.CodeIdentityProvider, "Failed to sign out", err)
	}
	logger.With(ctx, s.logger).Info("User signed out", zap.String("user_id", claims.UserID))
	return nil
}

// Authenticate validates a session token and rejects revoked sessions. A
// blacklist failure is treated as a revoked session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.SessionClaims, error) {
	if token == "" {
		return nil, shared.ErrAuthRequired
	}
	claims, err := s.jwtService.Validate(token)
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeAuthRequired, "Invalid session", err)
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		logger.With(ctx, s.logger).Error("Failed to check session revocation", zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeIdentityProvider, "Failed to verify session", err)
	}
	if revoked {
		return nil, shared.WrapDomainError(shared.CodeAuthRequired, "Session has been revoked", auth.ErrTokenRevoked)
	}
	return claims, nil
}

// CurrentRole returns the authoritative role of userID. Assigned roles are
// served from the cache; a cache failure falls back to the user store.
func (s *AuthService) CurrentRole(ctx context.Context, userID string) (identity.Role, error) {
	log := logger.With(ctx, s.logger)

	role, ok, err := s.roleCache.Get(ctx, userID)
	if err != nil {
		log.Warn("Role cache read failed", zap.Error(err))
	} else if ok {
		return role, nil
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return identity.RoleUnset, err
	}

	if user.Role.IsSet() {
		if err := s.roleCache.Set(ctx, userID, user.Role, s.config.RoleCacheTTL); err != nil {
			log.Warn("Role cache write failed", zap.Error(err))
		}
	}
	return user.Role, nil
}

// SetRole assigns role to the session's user and returns a session token
// embedding it. Assigning the role the user already has succeeds without a
// write; a different role than the assigned one is rejected.
func (s *AuthService) SetRole(ctx context.Context, claims *auth.SessionClaims, role identity.Role) (*auth.SessionToken, error) {
	if claims == nil {
		return nil, shared.ErrAuthRequired
	}
	log := logger.With(ctx, s.logger).With(zap.String("role", role.String()))

	user, err := s.findUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	changed, err := user.AssignRole(role)
	if err != nil {
		return nil, err
	}

	if changed {
		if err := s.userRepo.UpdateRole(ctx, user.ID, role); err != nil {
			log.Error("Failed to persist role", zap.Error(err))
			return nil, shared.WrapDomainError(shared.CodePersistence, shared.ErrPersistence.Message, err)
		}
		if err := s.roleCache.Invalidate(ctx, claims.UserID); err != nil {
			log.Warn("Role cache invalidation failed", zap.Error(err))
		}
		log.Info("Role assigned", zap.String("user_id", claims.UserID))
	}

	session, err := s.jwtService.Reissue(claims, role)
	if err != nil {
		log.Error("Failed to reissue session", zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeIdentityProvider, "Failed to update session", err)
	}
	return session, nil
}

// GetUserProfile returns the name and email of userID
func (s *AuthService) GetUserProfile(ctx context.Context, userID string) (*identity.UserProfile, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

func (s *AuthService) findUser(ctx context.Context, userID string) (*identity.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeAuthRequired, "Invalid user id", err)
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.WrapDomainError(shared.CodeAuthRequired, "Account no longer exists", err)
		}
		logger.With(ctx, s.logger).Error("Failed to load user", zap.String("user_id", userID), zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeIdentityProvider, shared.ErrIdentityProvider.Message, err)
	}
	return user, nil
}

func (s *AuthService) issue(user *identity.User) (*auth.SessionToken, error) {
	session, err := s.jwtService.Issue(auth.IssueInput{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		s.logger.Error("Failed to sign session token", zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeIdentityProvider, "Failed to create session", err)
	}
	return session, nil
}
