package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/leadloop/leadloop/internal/models"
	"github.com/leadloop/leadloop/internal/scheduler"
)

// CollectResult is what a platform collector produced for one run.
type CollectResult struct {
	LeadsFound     int
	ResultsCreated int
}

// Collector fetches leads for a campaign. Implementations wrap the actual
// platform integrations.
type Collector interface {
	Collect(ctx context.Context, job scheduler.SyncJob) (CollectResult, error)
}

// RecordStore is the sync record surface the runner needs.
type RecordStore interface {
	MarkRunning(ctx context.Context, id string, startedAt time.Time) error
	Finalize(ctx context.Context, id string, status models.SyncStatus, leadsFound, resultsCreated int, errorMessage string, completedAt time.Time) error
}

// CampaignStore is the campaign surface the runner needs.
type CampaignStore interface {
	CompleteSync(ctx context.Context, id string, syncedAt time.Time) error
	ResetSyncing(ctx context.Context, id string) error
}

// RunObserver receives finished-run outcomes, typically for metrics.
type RunObserver interface {
	ObserveRunFinished(status string, duration time.Duration)
}

// Runner consumes dispatched sync jobs and drives each record through
// running to a terminal status.
type Runner struct {
	records   RecordStore
	campaigns CampaignStore
	collector Collector
	activity  scheduler.ActivityLogger
	observer  RunObserver
	logger    *slog.Logger
}

// NewRunner constructs a runner. activity and observer may be nil.
func NewRunner(records RecordStore, campaigns CampaignStore, collector Collector, activity scheduler.ActivityLogger, observer RunObserver, logger *slog.Logger) *Runner {
	return &Runner{
		records:   records,
		campaigns: campaigns,
		collector: collector,
		activity:  activity,
		observer:  observer,
		logger:    logger,
	}
}

// Handle processes one dispatched job. Duplicate deliveries are detected by
// the queued-to-running transition and dropped.
func (r *Runner) Handle(ctx context.Context, job scheduler.SyncJob) {
	started := time.Now()

	if err := r.records.MarkRunning(ctx, job.SyncID, started); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			r.logger.Warn("dropping duplicate or stale sync job", "sync_id", job.SyncID)
			return
		}
		r.logger.Error("failed to mark sync running", "sync_id", job.SyncID, "error", err)
		return
	}

	r.logger.Info("sync run started",
		"sync_id", job.SyncID,
		"campaign_id", job.CampaignID,
		"sync_mode", job.SyncMode,
	)

	result, err := r.collector.Collect(ctx, job)
	finished := time.Now()

	if err != nil {
		r.finish(ctx, job, models.SyncStatusFailed, CollectResult{}, err.Error(), started, finished)
		return
	}

	r.finish(ctx, job, models.SyncStatusCompleted, result, "", started, finished)
}

func (r *Runner) finish(ctx context.Context, job scheduler.SyncJob, status models.SyncStatus, result CollectResult, errorMessage string, started, finished time.Time) {
	if err := r.records.Finalize(ctx, job.SyncID, status, result.LeadsFound, result.ResultsCreated, errorMessage, finished); err != nil {
		r.logger.Error("failed to finalize sync record", "sync_id", job.SyncID, "error", err)
	}

	if status == models.SyncStatusCompleted {
		if err := r.campaigns.CompleteSync(ctx, job.CampaignID, finished); err != nil {
			r.logger.Error("failed to stamp campaign sync completion", "campaign_id", job.CampaignID, "error", err)
		}
	} else {
		if err := r.campaigns.ResetSyncing(ctx, job.CampaignID); err != nil {
			r.logger.Error("failed to release campaign after failed run", "campaign_id", job.CampaignID, "error", err)
		}
	}

	if r.observer != nil {
		r.observer.ObserveRunFinished(string(status), finished.Sub(started))
	}

	activityType := models.ActivityTypeSyncCompleted
	message := "sync run completed"
	details := map[string]interface{}{
		"sync_id":         job.SyncID,
		"leads_found":     result.LeadsFound,
		"results_created": result.ResultsCreated,
	}
	if status == models.SyncStatusFailed {
		activityType = models.ActivityTypeSyncFailed
		message = "sync run failed"
		details["error"] = errorMessage
	}

	if r.activity != nil {
		if err := r.activity.Log(ctx, models.ActivityLog{
			ActivityType: activityType,
			CampaignID:   job.CampaignID,
			UserID:       job.UserID,
			Message:      message,
			Details:      details,
		}); err != nil {
			r.logger.Warn("failed to write run activity log", "sync_id", job.SyncID, "error", err)
		}
	}

	r.logger.Info("sync run finished",
		"sync_id", job.SyncID,
		"campaign_id", job.CampaignID,
		"status", status,
		"leads_found", result.LeadsFound,
		"results_created", result.ResultsCreated,
		"duration_ms", finished.Sub(started).Milliseconds(),
	)
}
