package telemetry

import (
	"context"
	"fmt"

	"github.com/facultyfeedback/backend/internal/infrastructure/config"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerProvider ships zap entries to the collector through the otelzap
// bridge when telemetry.logs_enabled is set.
type LoggerProvider struct {
	sdk *sdklog.LoggerProvider
}

// NewLoggerProvider reports on bootLog, which has no OTLP core yet
func NewLoggerProvider(ctx context.Context, cfg config.TelemetryConfig, bootLog *zap.Logger) (*LoggerProvider, error) {
	if !cfg.LogsEnabled {
		bootLog.Info("Log export disabled")
		return &LoggerProvider{}, nil
	}

	exporter, err := otlploggrpc.New(ctx, grpcOptions(cfg.CollectorEndpoint, cfg.Insecure,
		otlploggrpc.WithEndpoint, otlploggrpc.WithInsecure)...)
	if err != nil {
		return nil, fmt.Errorf("create otlp log exporter: %w", err)
	}
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	sdk := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(sdk)

	bootLog.Info("Log export enabled", zap.String("collector", cfg.CollectorEndpoint))
	return &LoggerProvider{sdk: sdk}, nil
}

func (lp *LoggerProvider) IsEnabled() bool { return lp.sdk != nil }

// Core is the zap core to tee into the root logger. Entries below level
// stay local. It is a no-op core while export is off.
func (lp *LoggerProvider) Core(name string, level zapcore.Level) zapcore.Core {
	if lp.sdk == nil {
		return zapcore.NewNopCore()
	}
	return &levelFilterCore{
		Core:     otelzap.NewCore(name, otelzap.WithLoggerProvider(lp.sdk)),
		minLevel: level,
	}
}

func (lp *LoggerProvider) Shutdown(ctx context.Context) error {
	if lp.sdk == nil {
		return nil
	}
	return flush(ctx, "logs", lp.sdk.Shutdown)
}

// levelFilterCore gives the otelzap core, which accepts every level, a floor
type levelFilterCore struct {
	zapcore.Core
	minLevel zapcore.Level
}

func (c *levelFilterCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= c.minLevel && c.Core.Enabled(lvl)
}

func (c *levelFilterCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return c.Core.Check(e, ce)
	}
	return ce
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{Core: c.Core.With(fields), minLevel: c.minLevel}
}
