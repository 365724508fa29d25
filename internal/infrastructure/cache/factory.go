package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/infrastructure/config"
)

// Wizard store kinds accepted by configuration
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr(), err)
	}
	return client, nil
}

// SessionStoreFactory builds the wizard session store selected by configuration
type SessionStoreFactory struct {
	cfg    config.WizardConfig
	client redis.Cmdable
	flows  *onboarding.FlowRegistry
	logger *zap.Logger
}

// NewSessionStoreFactory creates a factory; client may be nil when Redis is disabled
func NewSessionStoreFactory(cfg config.WizardConfig, client redis.Cmdable, flows *onboarding.FlowRegistry, logger *zap.Logger) *SessionStoreFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionStoreFactory{cfg: cfg, client: client, flows: flows, logger: logger}
}

// Create returns the configured store. The in-memory store must be closed by
// the caller to stop its cleanup goroutine.
func (f *SessionStoreFactory) Create() (onboarding.SessionStore, error) {
	switch f.cfg.Store {
	case StoreRedis:
		if f.client == nil {
			return nil, fmt.Errorf("wizard store %q requires a Redis client", StoreRedis)
		}
		f.logger.Info("using Redis wizard session store", zap.Duration("ttl", f.cfg.SessionTTL))
		return NewRedisSessionStore(f.client, f.flows, f.cfg.SessionTTL), nil
	case StoreMemory, "":
		f.logger.Warn("using in-memory wizard session store; sessions are lost on restart and not shared between instances")
		return NewInMemorySessionStore(f.flows, f.cfg.SessionTTL), nil
	default:
		return nil, fmt.Errorf("unknown wizard store %q", f.cfg.Store)
	}
}
