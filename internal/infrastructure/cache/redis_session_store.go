package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
)

const sessionKeyPrefix = "wizard:session:"

// RedisSessionStore keeps wizard sessions in Redis so that every instance
// behind the load balancer sees the same progress
type RedisSessionStore struct {
	client redis.Cmdable
	flows  *onboarding.FlowRegistry
	ttl    time.Duration
}

// NewRedisSessionStore creates a store on an existing Redis client
func NewRedisSessionStore(client redis.Cmdable, flows *onboarding.FlowRegistry, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, flows: flows, ttl: ttl}
}

// Load returns the session stored under key.
// The TTL is sliding: every save pushes expiry back.
func (s *RedisSessionStore) Load(ctx context.Context, key string) (*onboarding.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	return decodeSession(data, s.flows)
}

// Save stores the session under key
func (s *RedisSessionStore) Save(ctx context.Context, key string, session onboarding.Session) error {
	data, err := encodeSession(session)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save wizard session: %w", err)
	}
	return nil
}

// Delete removes the session stored under key
func (s *RedisSessionStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}

var _ onboarding.SessionStore = (*RedisSessionStore)(nil)
