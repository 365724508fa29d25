// Package access evaluates the route gate for a request, resolving the
// identity's role through the identity provider when the session does not
// carry it.
package access

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/rentflow/backend/internal/domain/access"
	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/infrastructure/logger"
	"github.com/rentflow/backend/internal/infrastructure/telemetry"
)

// RoleResolver returns the authoritative role of a user
type RoleResolver interface {
	CurrentRole(ctx context.Context, userID string) (identity.Role, error)
}

// GateResult is a gate decision together with the role it was based on
type GateResult struct {
	Decision access.Decision
	Role     identity.Role
}

// GateService applies the access policy to requests
type GateService struct {
	policy  *access.Policy
	roles   RoleResolver
	metrics *telemetry.OnboardingMetrics
	logger  *zap.Logger
}

// NewGateService creates a gate service. metrics may be nil.
func NewGateService(policy *access.Policy, roles RoleResolver, metrics *telemetry.OnboardingMetrics, logger *zap.Logger) *GateService {
	if policy == nil {
		policy = access.DefaultPolicy()
	}
	return &GateService{
		policy:  policy,
		roles:   roles,
		metrics: metrics,
		logger:  logger,
	}
}

// Evaluate decides whether id may reach requestedPath. id is nil for
// anonymous requests. When the session carries no role the role is fetched
// from the provider, except on the role selection page which is reachable
// either way. A failed fetch redirects to sign-in.
func (s *GateService) Evaluate(ctx context.Context, id *identity.Identity, requestedPath string) GateResult {
	result := s.evaluate(ctx, id, requestedPath)
	s.metrics.RecordGateDecision(ctx, string(result.Decision.Outcome))
	return result
}

func (s *GateService) evaluate(ctx context.Context, id *identity.Identity, requestedPath string) GateResult {
	if id == nil {
		return GateResult{Decision: s.policy.Authorize(nil, identity.RoleUnset, requestedPath)}
	}

	role := id.Role
	path, _, _ := strings.Cut(requestedPath, "?")
	if !role.IsSet() && strings.TrimRight(path, "/") != access.RoleSelectionPath {
		resolved, err := s.roles.CurrentRole(ctx, id.UserID)
		if err != nil {
			logger.With(ctx, s.logger).Warn("Role lookup failed, redirecting to sign-in",
				zap.String("path", requestedPath),
				zap.Error(err),
			)
			return GateResult{Decision: access.FailClosed(requestedPath)}
		}
		role = resolved
	}

	return GateResult{
		Decision: s.policy.Authorize(id, role, requestedPath),
		Role:     role,
	}
}
