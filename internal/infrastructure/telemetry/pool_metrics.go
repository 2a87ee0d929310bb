package telemetry

import (
	"context"
	"database/sql"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PoolStats samples a connection pool, usually (*sql.DB).Stats
type PoolStats func() sql.DBStats

// RegisterPoolMetrics observes the pool on every collection. The returned
// registration is unregistered on shutdown.
func RegisterPoolMetrics(meter metric.Meter, pool string, stats PoolStats) (metric.Registration, error) {
	conns, err := meter.Int64ObservableGauge("db.client.connections.usage",
		metric.WithDescription("Connections by state"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, &MetricsError{Metric: "db.client.connections.usage", Err: err}
	}
	maxOpen, err := meter.Int64ObservableGauge("db.client.connections.max",
		metric.WithDescription("Open connection limit"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, &MetricsError{Metric: "db.client.connections.max", Err: err}
	}
	waits, err := meter.Int64ObservableCounter("db.client.connections.waits",
		metric.WithDescription("Requests that waited for a free connection"),
		metric.WithUnit("{wait}"),
	)
	if err != nil {
		return nil, &MetricsError{Metric: "db.client.connections.waits", Err: err}
	}

	name := attribute.String("pool.name", pool)
	idle := metric.WithAttributes(name, attribute.String("state", "idle"))
	used := metric.WithAttributes(name, attribute.String("state", "used"))
	only := metric.WithAttributes(name)

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s := stats()
		o.ObserveInt64(conns, int64(s.Idle), idle)
		o.ObserveInt64(conns, int64(s.InUse), used)
		o.ObserveInt64(maxOpen, int64(s.MaxOpenConnections), only)
		o.ObserveInt64(waits, s.WaitCount, only)
		return nil
	}, conns, maxOpen, waits)
}
