package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/leadloop/leadloop/internal/models"
)

// Reaper periodically force-fails running sync records whose worker never
// reported a terminal status, and releases the campaigns they were holding.
type Reaper struct {
	records       StaleRunStore
	campaigns     CampaignStore
	activity      ActivityLogger
	logger        *slog.Logger
	stopChan      chan struct{}
	checkInterval time.Duration
	runTimeout    time.Duration
}

// NewReaper creates a reaper. activity may be nil.
func NewReaper(records StaleRunStore, campaigns CampaignStore, activity ActivityLogger, logger *slog.Logger, checkInterval, runTimeout time.Duration) *Reaper {
	return &Reaper{
		records:       records,
		campaigns:     campaigns,
		activity:      activity,
		logger:        logger,
		stopChan:      make(chan struct{}),
		checkInterval: checkInterval,
		runTimeout:    runTimeout,
	}
}

// Start begins the reaper loop
func (r *Reaper) Start(ctx context.Context) {
	r.logger.Info("Starting sync reaper", "check_interval", r.checkInterval, "run_timeout", r.runTimeout)
	ticker := time.NewTicker(r.checkInterval)
	defer ticker.Stop()

	// Run once immediately on start
	r.reapOnce(ctx)

	for {
		select {
		case <-ticker.C:
			r.reapOnce(ctx)
		case <-r.stopChan:
			r.logger.Info("Sync reaper stopped")
			return
		case <-ctx.Done():
			r.logger.Info("Sync reaper stopping due to context cancellation")
			return
		}
	}
}

// Stop stops the reaper
func (r *Reaper) Stop() {
	close(r.stopChan)
}

func (r *Reaper) reapOnce(ctx context.Context) {
	reaped, err := r.records.ReapStale(ctx, r.runTimeout)
	if err != nil {
		r.logger.Error("Failed to reap stale sync records", "error", err)
		return
	}

	if len(reaped) == 0 {
		return
	}

	r.logger.Warn("Reaped stale sync records", "count", len(reaped))

	for _, rec := range reaped {
		if err := r.campaigns.ResetSyncing(ctx, rec.CampaignID); err != nil {
			r.logger.Error("Failed to release campaign after reap",
				"campaign_id", rec.CampaignID, "sync_id", rec.ID, "error", err)
		}

		if r.activity == nil {
			continue
		}
		if err := r.activity.Log(ctx, models.ActivityLog{
			ActivityType: models.ActivityTypeSyncReaped,
			CampaignID:   rec.CampaignID,
			Message:      "stale sync run force-failed by reaper",
			Details:      map[string]interface{}{"sync_id": rec.ID},
		}); err != nil {
			r.logger.Warn("Failed to write reap activity log", "sync_id", rec.ID, "error", err)
		}
	}
}
