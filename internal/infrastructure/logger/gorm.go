package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger is a gorm logger.Interface writing to zap. Statements are
// logged at debug, slow ones at warn and failures at error.
type GormLogger struct {
	log   *zap.Logger
	level gormlogger.LogLevel
	slow  time.Duration
	sql   bool
}

type GormLoggerOption func(*GormLogger)

// WithSlowThreshold marks statements slower than d. Zero disables it.
func WithSlowThreshold(d time.Duration) GormLoggerOption {
	return func(l *GormLogger) { l.slow = d }
}

// WithSQL attaches statement text, bound values included
func WithSQL(enabled bool) GormLoggerOption {
	return func(l *GormLogger) { l.sql = enabled }
}

func NewGormLogger(log *zap.Logger, level gormlogger.LogLevel, opts ...GormLoggerOption) *GormLogger {
	l := &GormLogger{log: log.Named("gorm"), level: level, slow: 200 * time.Millisecond}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, msg, args)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, msg, args)
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, msg, args)
}

func (l *GormLogger) printf(ctx context.Context, at gormlogger.LogLevel, msg string, args []any) {
	if l.level < at {
		return
	}
	s := Enrich(ctx, l.log).Sugar()
	switch at {
	case gormlogger.Error:
		s.Errorf(msg, args...)
	case gormlogger.Warn:
		s.Warnf(msg, args...)
	default:
		s.Infof(msg, args...)
	}
}

// Trace logs one executed statement. Missing rows and duplicate keys are
// outcomes the repositories handle, so they log as ordinary statements.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	stmt, rows := fc()

	fields := make([]zap.Field, 0, 4)
	fields = append(fields, zap.Duration("elapsed", elapsed), zap.Int64("rows", rows))
	if l.sql {
		fields = append(fields, zap.String("sql", stmt))
	}
	log := Enrich(ctx, l.log)

	expected := errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey)
	switch {
	case err != nil && !expected:
		if l.level >= gormlogger.Error {
			log.Error("SQL error", append(fields, zap.Error(err))...)
		}
	case l.slow > 0 && elapsed > l.slow:
		if l.level >= gormlogger.Warn {
			log.Warn("Slow SQL", append(fields, zap.Duration("threshold", l.slow))...)
		}
	case l.level >= gormlogger.Info:
		if err != nil {
			fields = append(fields, zap.NamedError("outcome", err))
		}
		log.Debug("SQL query", fields...)
	}
}

// MapGormLogLevel picks the gorm level for an application log level
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch ParseLevel(level) {
	case zap.DebugLevel:
		return gormlogger.Info
	case zap.ErrorLevel:
		return gormlogger.Error
	}
	if level == "silent" {
		return gormlogger.Silent
	}
	return gormlogger.Warn
}
