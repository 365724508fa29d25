package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rentflow/backend/internal/domain/identity"
)

const roleKeyPrefix = "role:"

// RedisRoleCache implements identity.RoleCache using Redis
type RedisRoleCache struct {
	client redis.Cmdable
}

// NewRedisRoleCache creates a role cache on an existing Redis client
func NewRedisRoleCache(client redis.Cmdable) *RedisRoleCache {
	return &RedisRoleCache{client: client}
}

// Get returns the cached role of userID
func (c *RedisRoleCache) Get(ctx context.Context, userID string) (identity.Role, bool, error) {
	v, err := c.client.Get(ctx, roleKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return identity.RoleUnset, false, nil
	}
	if err != nil {
		return identity.RoleUnset, false, fmt.Errorf("failed to read cached role: %w", err)
	}
	role, ok := identity.ParseRole(v)
	if !ok {
		// unknown value, treat as a miss
		return identity.RoleUnset, false, nil
	}
	return role, true, nil
}

// Set caches an assigned role; unset roles are ignored
func (c *RedisRoleCache) Set(ctx context.Context, userID string, role identity.Role, ttl time.Duration) error {
	if !role.IsSet() {
		return nil
	}
	if err := c.client.Set(ctx, roleKeyPrefix+userID, role.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache role: %w", err)
	}
	return nil
}

// Invalidate drops the cached role of userID
func (c *RedisRoleCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, roleKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached role: %w", err)
	}
	return nil
}

var _ identity.RoleCache = (*RedisRoleCache)(nil)

type roleEntry struct {
	role      identity.Role
	expiresAt time.Time
}

// InMemoryRoleCache implements identity.RoleCache in process memory
type InMemoryRoleCache struct {
	mu      sync.Mutex
	entries map[string]roleEntry
}

// NewInMemoryRoleCache creates an empty in-memory role cache
func NewInMemoryRoleCache() *InMemoryRoleCache {
	return &InMemoryRoleCache{entries: make(map[string]roleEntry)}
}

// Get returns the cached role of userID, evicting it when expired
func (c *InMemoryRoleCache) Get(_ context.Context, userID string) (identity.Role, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[userID]
	if !ok {
		return identity.RoleUnset, false, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, userID)
		return identity.RoleUnset, false, nil
	}
	return e.role, true, nil
}

// Set caches an assigned role; unset roles are ignored
func (c *InMemoryRoleCache) Set(_ context.Context, userID string, role identity.Role, ttl time.Duration) error {
	if !role.IsSet() || ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	c.entries[userID] = roleEntry{role: role, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Invalidate drops the cached role of userID
func (c *InMemoryRoleCache) Invalidate(_ context.Context, userID string) error {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
	return nil
}

var _ identity.RoleCache = (*InMemoryRoleCache)(nil)
