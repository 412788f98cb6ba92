package main

import (
	"context"

	"log/slog"

	"github.com/leadloop/leadloop/internal/database"
	"github.com/leadloop/leadloop/internal/models"
)

// activityQuotaCharger records quota charges for confirmed re-syncs as
// activity log entries, which the billing pipeline consumes.
type activityQuotaCharger struct {
	logs   *database.ActivityLogRepository
	logger *slog.Logger
}

func newActivityQuotaCharger(logs *database.ActivityLogRepository, logger *slog.Logger) *activityQuotaCharger {
	return &activityQuotaCharger{logs: logs, logger: logger}
}

func (q *activityQuotaCharger) ChargeConfirmedSync(ctx context.Context, userID, campaignID, syncID string) error {
	q.logger.Info("charging quota for confirmed sync",
		"user_id", userID,
		"campaign_id", campaignID,
		"sync_id", syncID,
	)

	return q.logs.Log(ctx, models.ActivityLog{
		ActivityType: models.ActivityTypeQuotaCharge,
		CampaignID:   campaignID,
		UserID:       userID,
		Message:      "quota unit charged for confirmed re-sync",
		Details:      map[string]interface{}{"sync_id": syncID, "units": 1},
	})
}
