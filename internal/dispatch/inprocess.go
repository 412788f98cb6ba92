package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leadloop/leadloop/internal/scheduler"
)

// InProcess is a channel-backed dispatcher used when no broker is configured.
// Jobs are lost on restart, which the reaper compensates for by failing the
// abandoned records.
type InProcess struct {
	jobs   chan scheduler.SyncJob
	logger *slog.Logger
}

// NewInProcess creates an in-process dispatcher with a bounded buffer.
func NewInProcess(buffer int, logger *slog.Logger) *InProcess {
	if buffer <= 0 {
		buffer = 64
	}
	return &InProcess{
		jobs:   make(chan scheduler.SyncJob, buffer),
		logger: logger,
	}
}

// Dispatch enqueues the job, failing fast when the buffer is full so the
// coordinator can fail the record instead of blocking a request.
func (d *InProcess) Dispatch(ctx context.Context, job scheduler.SyncJob) error {
	select {
	case d.jobs <- job:
		d.logger.Debug("dispatched sync job in process", "sync_id", job.SyncID)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("in-process job buffer full")
	}
}

// Consume delivers jobs to the handler until the context is cancelled.
func (d *InProcess) Consume(ctx context.Context, handler func(context.Context, scheduler.SyncJob)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job := <-d.jobs:
			handler(ctx, job)
		}
	}
}
