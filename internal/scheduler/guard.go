package scheduler

import (
	"context"
	"fmt"

	"github.com/leadloop/leadloop/internal/models"
)

// ActiveSync describes the run blocking a new sync for a campaign.
type ActiveSync struct {
	SyncID string
	Status models.SyncStatus
}

// CheckConcurrency reports the run, if any, already active for the campaign.
// Two independent checks feed it: the campaign's own syncing flag and the
// presence of an active sync record. The flag can lag record creation in the
// window between enqueue and the worker claiming the job, so either signal
// alone is enough to report a conflict.
func CheckConcurrency(ctx context.Context, records SyncRecordStore, campaign *models.Campaign) (*ActiveSync, error) {
	record, err := records.GetActiveByCampaign(ctx, campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active sync records: %w", err)
	}
	if record != nil {
		return &ActiveSync{SyncID: record.ID, Status: record.Status}, nil
	}

	if campaign.IsSyncing() {
		// Flag set but no record: a run is being set up or torn down.
		return &ActiveSync{Status: models.SyncStatusRunning}, nil
	}

	return nil, nil
}
