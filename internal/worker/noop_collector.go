package worker

import (
	"context"
	"log/slog"

	"github.com/leadloop/leadloop/internal/scheduler"
)

// NoopCollector completes runs without fetching anything. Used when no
// platform integrations are configured, so the scheduling pipeline stays
// exercisable end to end.
type NoopCollector struct {
	logger *slog.Logger
}

// NewNoopCollector creates a collector that always succeeds with zero results.
func NewNoopCollector(logger *slog.Logger) *NoopCollector {
	return &NoopCollector{logger: logger}
}

// Collect returns an empty result.
func (c *NoopCollector) Collect(ctx context.Context, job scheduler.SyncJob) (CollectResult, error) {
	c.logger.Debug("noop collector handling job", "sync_id", job.SyncID)
	return CollectResult{}, nil
}
