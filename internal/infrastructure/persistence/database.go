package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/facultyfeedback/backend/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is the service's PostgreSQL pool, shared by every repository
type Database struct {
	DB  *gorm.DB
	sql *sql.DB
}

// Option adjusts how Connect opens the pool
type Option func(*connectOptions)

type connectOptions struct {
	logger  logger.Interface
	plugins []gorm.Plugin
}

// WithLogger sends gorm's statement log to l
func WithLogger(l logger.Interface) Option {
	return func(o *connectOptions) { o.logger = l }
}

// WithPlugins installs gorm plugins such as the tracing callbacks
func WithPlugins(plugins ...gorm.Plugin) Option {
	return func(o *connectOptions) { o.plugins = append(o.plugins, plugins...) }
}

// Connect opens the pool described by cfg and waits for the server to
// answer.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, opts ...Option) (*Database, error) {
	var o connectOptions
	for _, opt := range opts {
		opt(&o)
	}

	db, err := Open(postgres.Open(cfg.DSN()), o.logger)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	for _, p := range o.plugins {
		if err := db.Use(p); err != nil {
			return nil, fmt.Errorf("install gorm plugin %s: %w", p.Name(), err)
		}
	}

	pool, err := db.DB()
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	pool.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("reach postgres at %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return &Database{DB: db, sql: pool}, nil
}

// Open starts gorm on any dialector the way the repositories expect it.
// TranslateError must stay on: duplicate submissions are detected through
// gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector, l logger.Interface) (*gorm.DB, error) {
	if l == nil {
		l = logger.Discard
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger:                 l,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
}

func (d *Database) Close() error { return d.sql.Close() }

// Ping is the readiness probe for the health endpoint
func (d *Database) Ping(ctx context.Context) error { return d.sql.PingContext(ctx) }

// Stats exposes the pool counters
func (d *Database) Stats() sql.DBStats { return d.sql.Stats() }
