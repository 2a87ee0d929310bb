package telemetry

import (
	"errors"
	"time"

	"github.com/facultyfeedback/backend/internal/infrastructure/config"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const queryStartKey = "feedback:query_start"

// DBTracingPlugin is a gorm plugin that installs otelgorm and flags slow
// statements on their spans
type DBTracingPlugin struct {
	logFullSQL bool
	slowQuery  time.Duration
	dbName     string
	logger     *zap.Logger
}

// NewDBTracingPlugin builds the plugin from telemetry settings
func NewDBTracingPlugin(cfg config.TelemetryConfig, dbName string, logger *zap.Logger) *DBTracingPlugin {
	slow := cfg.DBSlowQueryThresh
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}
	return &DBTracingPlugin{
		logFullSQL: cfg.DBLogFullSQL,
		slowQuery:  slow,
		dbName:     dbName,
		logger:     logger,
	}
}

// Name implements gorm.Plugin
func (p *DBTracingPlugin) Name() string {
	return "feedback:db_tracing"
}

// Initialize implements gorm.Plugin
func (p *DBTracingPlugin) Initialize(db *gorm.DB) error {
	opts := []otelgorm.Option{otelgorm.WithDBName(p.dbName)}
	if !p.logFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	// Slow-query checks run before otelgorm ends the span and restores the
	// parent context.
	cb := db.Callback()
	registrations := []func() error{
		func() error { return cb.Create().Before("gorm:create").Register("feedback:start_create", markStart) },
		func() error { return cb.Query().Before("gorm:query").Register("feedback:start_query", markStart) },
		func() error { return cb.Update().Before("gorm:update").Register("feedback:start_update", markStart) },
		func() error { return cb.Delete().Before("gorm:delete").Register("feedback:start_delete", markStart) },
		func() error { return cb.Row().Before("gorm:row").Register("feedback:start_row", markStart) },
		func() error { return cb.Raw().Before("gorm:raw").Register("feedback:start_raw", markStart) },
		func() error {
			return cb.Create().After("gorm:create").Before("otel:after:create").Register("feedback:slow_create", p.afterStatement)
		},
		func() error {
			return cb.Query().After("gorm:query").Before("otel:after:select").Register("feedback:slow_query", p.afterStatement)
		},
		func() error {
			return cb.Update().After("gorm:update").Before("otel:after:update").Register("feedback:slow_update", p.afterStatement)
		},
		func() error {
			return cb.Delete().After("gorm:delete").Before("otel:after:delete").Register("feedback:slow_delete", p.afterStatement)
		},
		func() error {
			return cb.Row().After("gorm:row").Before("otel:after:row").Register("feedback:slow_row", p.afterStatement)
		},
		func() error {
			return cb.Raw().After("gorm:raw").Before("otel:after:raw").Register("feedback:slow_raw", p.afterStatement)
		},
	}
	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.logFullSQL),
		zap.Duration("slow_query_threshold", p.slowQuery),
	)
	return nil
}

// markStart keeps the start time on the statement, not its context
func markStart(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func (p *DBTracingPlugin) afterStatement(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	recording := span.IsRecording()

	if recording && db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if recording && db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
	}

	v, ok := db.InstanceGet(queryStartKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(start)
	if elapsed <= p.slowQuery {
		return
	}
	if recording {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
	}
	p.logger.Warn("Slow query",
		zap.String("table", db.Statement.Table),
		zap.Duration("elapsed", elapsed),
		zap.String("trace_id", span.SpanContext().TraceID().String()),
	)
}

var _ gorm.Plugin = (*DBTracingPlugin)(nil)
