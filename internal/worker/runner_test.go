package worker

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/leadloop/leadloop/internal/models"
	"github.com/leadloop/leadloop/internal/scheduler"
)

type fakeRecordStore struct {
	markRunningErr error
	finalized      []fakeFinalize
}

type fakeFinalize struct {
	id             string
	status         models.SyncStatus
	leadsFound     int
	resultsCreated int
	errorMessage   string
}

func (f *fakeRecordStore) MarkRunning(ctx context.Context, id string, startedAt time.Time) error {
	return f.markRunningErr
}

func (f *fakeRecordStore) Finalize(ctx context.Context, id string, status models.SyncStatus, leadsFound, resultsCreated int, errorMessage string, completedAt time.Time) error {
	f.finalized = append(f.finalized, fakeFinalize{id, status, leadsFound, resultsCreated, errorMessage})
	return nil
}

type fakeCampaignStore struct {
	completed []string
	reset     []string
}

func (f *fakeCampaignStore) CompleteSync(ctx context.Context, id string, syncedAt time.Time) error {
	f.completed = append(f.completed, id)
	return nil
}

func (f *fakeCampaignStore) ResetSyncing(ctx context.Context, id string) error {
	f.reset = append(f.reset, id)
	return nil
}

type fakeCollector struct {
	result CollectResult
	err    error
}

func (f *fakeCollector) Collect(ctx context.Context, job scheduler.SyncJob) (CollectResult, error) {
	return f.result, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testJob() scheduler.SyncJob {
	return scheduler.SyncJob{
		SyncID:     "sync-1",
		CampaignID: "c-1",
		UserID:     "user-1",
		SyncMode:   models.SyncModeFast,
	}
}

func TestRunnerCompletesSuccessfulRun(t *testing.T) {
	records := &fakeRecordStore{}
	campaigns := &fakeCampaignStore{}
	collector := &fakeCollector{result: CollectResult{LeadsFound: 8, ResultsCreated: 5}}

	runner := NewRunner(records, campaigns, collector, nil, nil, testLogger())
	runner.Handle(context.Background(), testJob())

	if len(records.finalized) != 1 {
		t.Fatalf("expected 1 finalize call, got %d", len(records.finalized))
	}
	got := records.finalized[0]
	if got.status != models.SyncStatusCompleted {
		t.Errorf("finalized with status %s, want completed", got.status)
	}
	if got.leadsFound != 8 || got.resultsCreated != 5 {
		t.Errorf("finalized with results (%d, %d), want (8, 5)", got.leadsFound, got.resultsCreated)
	}

	if len(campaigns.completed) != 1 || campaigns.completed[0] != "c-1" {
		t.Errorf("expected campaign c-1 to be completed, got %v", campaigns.completed)
	}
	if len(campaigns.reset) != 0 {
		t.Errorf("did not expect campaign reset, got %v", campaigns.reset)
	}
}

func TestRunnerFailsRunOnCollectorError(t *testing.T) {
	records := &fakeRecordStore{}
	campaigns := &fakeCampaignStore{}
	collector := &fakeCollector{err: errors.New("platform unavailable")}

	runner := NewRunner(records, campaigns, collector, nil, nil, testLogger())
	runner.Handle(context.Background(), testJob())

	if len(records.finalized) != 1 {
		t.Fatalf("expected 1 finalize call, got %d", len(records.finalized))
	}
	got := records.finalized[0]
	if got.status != models.SyncStatusFailed {
		t.Errorf("finalized with status %s, want failed", got.status)
	}
	if got.errorMessage != "platform unavailable" {
		t.Errorf("finalized with error %q", got.errorMessage)
	}

	if len(campaigns.reset) != 1 || campaigns.reset[0] != "c-1" {
		t.Errorf("expected campaign c-1 to be reset, got %v", campaigns.reset)
	}
	if len(campaigns.completed) != 0 {
		t.Errorf("did not expect campaign completion, got %v", campaigns.completed)
	}
}

func TestRunnerDropsDuplicateDelivery(t *testing.T) {
	records := &fakeRecordStore{markRunningErr: models.ErrInvalidTransition}
	campaigns := &fakeCampaignStore{}
	collector := &fakeCollector{result: CollectResult{LeadsFound: 3}}

	runner := NewRunner(records, campaigns, collector, nil, nil, testLogger())
	runner.Handle(context.Background(), testJob())

	if len(records.finalized) != 0 {
		t.Errorf("expected no finalize for duplicate delivery, got %d", len(records.finalized))
	}
	if len(campaigns.completed) != 0 || len(campaigns.reset) != 0 {
		t.Error("expected no campaign updates for duplicate delivery")
	}
}
