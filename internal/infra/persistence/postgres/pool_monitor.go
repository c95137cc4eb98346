package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"localdeal/internal/infra/metrics"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// poolMonitor samples sql.DBStats, exports connection gauges and logs
// when callers had to wait for a free connection.
type poolMonitor struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	prev   sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, db *sql.DB) *poolMonitor {
	return &poolMonitor{logger: logger, stats: db.Stats}
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(poolSampleInterval)
	defer ticker.Stop()

	m.prev = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.observe(ctx, m.stats())
		}
	}
}

func (m *poolMonitor) observe(ctx context.Context, cur sql.DBStats) {
	metrics.DBPoolConnections.WithLabelValues("open").Set(float64(cur.OpenConnections))
	metrics.DBPoolConnections.WithLabelValues("in_use").Set(float64(cur.InUse))
	metrics.DBPoolConnections.WithLabelValues("idle").Set(float64(cur.Idle))

	waits := cur.WaitCount - m.prev.WaitCount
	waited := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur
	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
