package cache

import (
	"fmt"

	"github.com/facultyfeedback/backend/internal/domain/surveytaking"
	"github.com/facultyfeedback/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Store is a session store that owns resources
type Store interface {
	surveytaking.SessionStore
	Close() error
}

// SessionStoreFactory builds the configured session store
type SessionStoreFactory struct {
	redisConfig   config.RedisConfig
	sessionConfig config.SessionConfig
	logger        *zap.Logger
}

// FactoryOption configures the factory
type FactoryOption func(*SessionStoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *SessionStoreFactory) {
		f.logger = logger
	}
}

// NewSessionStoreFactory creates a new factory
func NewSessionStoreFactory(redisCfg config.RedisConfig, sessionCfg config.SessionConfig, opts ...FactoryOption) *SessionStoreFactory {
	f := &SessionStoreFactory{
		redisConfig:   redisCfg,
		sessionConfig: sessionCfg,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateStore returns the memory store when configured, otherwise Redis.
// An unreachable Redis falls back to memory only when session.fallback is set.
func (f *SessionStoreFactory) CreateStore() (Store, error) {
	if f.sessionConfig.Backend == "memory" {
		f.logger.Info("Using in-memory session store", zap.Duration("ttl", f.sessionConfig.TTL))
		return NewInMemorySessionStore(f.sessionConfig.TTL), nil
	}

	store, err := NewRedisSessionStore(f.redisConfig, f.sessionConfig)
	if err == nil {
		f.logger.Info("Using Redis session store",
			zap.String("addr", f.redisConfig.Addr()),
			zap.Duration("ttl", f.sessionConfig.TTL),
		)
		return store, nil
	}

	if !f.sessionConfig.Fallback {
		return nil, fmt.Errorf("redis session store unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory session store. "+
		"Sessions will not be shared between instances.",
		zap.Error(err),
	)
	return NewInMemorySessionStore(f.sessionConfig.TTL), nil
}
