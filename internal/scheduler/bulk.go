package scheduler

import (
	"context"
	"log/slog"

	"github.com/leadloop/leadloop/internal/models"
)

// BulkResult summarizes a sync-all pass. Per-campaign rejection reasons are
// deliberately not surfaced here; they are written to the activity log
// instead, keeping the API response a simple aggregate.
type BulkResult struct {
	TotalCampaigns    int      `json:"total_campaigns"`
	QueuedCampaignIDs []string `json:"queued_campaigns"`
	TotalQueued       int      `json:"total_queued"`
	TotalSkipped      int      `json:"total_skipped"`
}

// BulkScheduler runs the coordinator's decision sequence over every active
// campaign a user owns.
type BulkScheduler struct {
	coordinator *Coordinator
	campaigns   CampaignStore
	activity    ActivityLogger
	logger      *slog.Logger
}

// NewBulkScheduler constructs a bulk scheduler. activity may be nil.
func NewBulkScheduler(coordinator *Coordinator, campaigns CampaignStore, activity ActivityLogger, logger *slog.Logger) *BulkScheduler {
	return &BulkScheduler{
		coordinator: coordinator,
		campaigns:   campaigns,
		activity:    activity,
		logger:      logger,
	}
}

// SyncAllEligible applies the full decision sequence to each of the user's
// active campaigns. Rejected campaigns are skipped without failing the pass;
// each skip is logged with its reason. Confirmation-band campaigns are
// skipped, never auto-confirmed, because confirmation implies a quota charge
// the user has not agreed to.
func (b *BulkScheduler) SyncAllEligible(ctx context.Context, userID string, syncMode string) (*BulkResult, error) {
	campaigns, err := b.campaigns.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &BulkResult{
		TotalCampaigns:    len(campaigns),
		QueuedCampaignIDs: []string{},
	}

	for _, campaign := range campaigns {
		req := SyncRequest{
			CampaignID: campaign.ID,
			UserID:     userID,
			SyncMode:   syncMode,
			Manual:     true,
		}

		decision, err := b.coordinator.decide(ctx, campaign, req)
		if err != nil {
			// Infrastructure failure on one campaign should not abort the
			// whole pass.
			b.logger.Error("bulk sync failed for campaign", "campaign_id", campaign.ID, "error", err)
			result.TotalSkipped++
			continue
		}

		b.coordinator.observe(decision.Outcome)

		if decision.Outcome == OutcomeAccepted {
			result.QueuedCampaignIDs = append(result.QueuedCampaignIDs, campaign.ID)
			result.TotalQueued++
			continue
		}

		result.TotalSkipped++
		b.logSkip(ctx, campaign, decision)
	}

	b.logger.Info("bulk sync pass finished",
		"user_id", userID,
		"queued", result.TotalQueued,
		"skipped", result.TotalSkipped,
	)

	if b.activity != nil {
		if err := b.activity.Log(ctx, models.ActivityLog{
			ActivityType: models.ActivityTypeBulkSync,
			UserID:       userID,
			Message:      "bulk sync pass finished",
			Details: map[string]interface{}{
				"total_queued":  result.TotalQueued,
				"total_skipped": result.TotalSkipped,
			},
		}); err != nil {
			b.logger.Warn("failed to write bulk sync activity log", "user_id", userID, "error", err)
		}
	}

	return result, nil
}

func (b *BulkScheduler) logSkip(ctx context.Context, campaign *models.Campaign, decision *Decision) {
	b.logger.Info("bulk sync skipped campaign",
		"campaign_id", campaign.ID,
		"outcome", decision.Outcome,
	)

	if b.activity == nil {
		return
	}

	if err := b.activity.Log(ctx, models.ActivityLog{
		ActivityType: models.ActivityTypeSyncRejected,
		CampaignID:   campaign.ID,
		UserID:       campaign.UserID,
		Message:      "campaign skipped during bulk sync",
		Details:      map[string]interface{}{"outcome": string(decision.Outcome)},
	}); err != nil {
		b.logger.Warn("failed to write skip activity log", "campaign_id", campaign.ID, "error", err)
	}
}
