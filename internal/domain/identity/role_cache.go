package identity

import (
	"context"
	"time"
)

// RoleCache caches the role of a user between requests. Only assigned roles
// are cached: a role never changes once set, so a cached entry cannot go
// stale, while an unset role may be assigned at any moment.
type RoleCache interface {
	// Get returns the cached role and whether it was present
	Get(ctx context.Context, userID string) (Role, bool, error)
	Set(ctx context.Context, userID string, role Role, ttl time.Duration) error
	Invalidate(ctx context.Context, userID string) error
}
