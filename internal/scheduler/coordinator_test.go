package scheduler_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/leadloop/leadloop/internal/models"
	"github.com/leadloop/leadloop/internal/scheduler"
	"github.com/leadloop/leadloop/internal/scheduler/mocks"
)

type CoordinatorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	campaigns  *mocks.MockCampaignStore
	records    *mocks.MockSyncRecordStore
	registry   *mocks.MockPlatformRegistry
	dispatcher *mocks.MockDispatcher
	quota      *mocks.MockQuotaCharger
	activity   *mocks.MockActivityLogger

	coordinator *scheduler.Coordinator
	logger      *slog.Logger
}

func (s *CoordinatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.campaigns = mocks.NewMockCampaignStore(s.ctrl)
	s.records = mocks.NewMockSyncRecordStore(s.ctrl)
	s.registry = mocks.NewMockPlatformRegistry(s.ctrl)
	s.dispatcher = mocks.NewMockDispatcher(s.ctrl)
	s.quota = mocks.NewMockQuotaCharger(s.ctrl)
	s.activity = mocks.NewMockActivityLogger(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.coordinator = scheduler.NewCoordinator(
		s.campaigns,
		s.records,
		s.registry,
		s.dispatcher,
		s.quota,
		s.activity,
		nil,
		s.logger,
	)

	s.activity.EXPECT().Log(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *CoordinatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CoordinatorTestSuite) campaign(lastSyncMinutesAgo int) *models.Campaign {
	c := &models.Campaign{
		ID:        "campaign-1",
		UserID:    "user-1",
		Name:      "Test Campaign",
		Platforms: []string{"linkedin"},
		Status:    models.CampaignStatusActive,
	}
	if lastSyncMinutesAgo >= 0 {
		ts := time.Now().Add(-time.Duration(lastSyncMinutesAgo) * time.Minute)
		c.LastSyncAt = &ts
	}
	return c
}

func (s *CoordinatorTestSuite) request() scheduler.SyncRequest {
	return scheduler.SyncRequest{
		CampaignID: "campaign-1",
		UserID:     "user-1",
		SyncMode:   "fast",
		Manual:     true,
	}
}

func (s *CoordinatorTestSuite) TestCampaignNotFound() {
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").
		Return(nil, models.ErrCampaignNotFound)

	_, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().ErrorIs(err, models.ErrCampaignNotFound)
}

func (s *CoordinatorTestSuite) TestRequiresExtension() {
	campaign := s.campaign(-1)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(true)

	decision, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeRequiresExtension, decision.Outcome)
	s.Equal([]string{"linkedin"}, decision.Platforms)
}

func (s *CoordinatorTestSuite) TestExtensionCapabilityConnected() {
	campaign := s.campaign(-1)
	campaign.ConnectedCapabilities = []string{"linkedin"}

	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(true)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)
	s.registry.EXPECT().AnyChronological([]string{"linkedin"}).Return(true)
	s.expectAccept()

	decision, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeAccepted, decision.Outcome)
}

func (s *CoordinatorTestSuite) TestConflictFromActiveRecord() {
	campaign := s.campaign(-1)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").
		Return(&models.SyncRecord{ID: "sync-9", Status: models.SyncStatusRunning}, nil)

	decision, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeConflict, decision.Outcome)
	s.Equal("sync-9", decision.ExistingSyncID)
	s.Equal(models.SyncStatusRunning, decision.ExistingStatus)
}

func (s *CoordinatorTestSuite) TestConflictFromSyncingFlag() {
	campaign := s.campaign(-1)
	campaign.Status = models.CampaignStatusSyncing

	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)

	decision, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeConflict, decision.Outcome)
}

func (s *CoordinatorTestSuite) TestRateLimited() {
	campaign := s.campaign(10)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)
	s.registry.EXPECT().AnyChronological([]string{"linkedin"}).Return(true)

	decision, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeRateLimited, decision.Outcome)
	s.Require().NotNil(decision.LastSyncAt)
	s.Equal(10, decision.MinutesAgo)
	s.Equal(decision.LastSyncAt.Add(15*time.Minute), decision.NextAvailableAt)
}

func (s *CoordinatorTestSuite) TestRequiresConfirmation() {
	campaign := s.campaign(20)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)
	s.registry.EXPECT().AnyChronological([]string{"linkedin"}).Return(true).Times(2)

	decision, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeRequiresConfirmation, decision.Outcome)
	s.Equal([]string{"linkedin"}, decision.Platforms)
	s.Equal(20, decision.MinutesAgo)
}

func (s *CoordinatorTestSuite) TestConfirmedSyncChargesQuota() {
	campaign := s.campaign(20)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)
	s.registry.EXPECT().AnyChronological([]string{"linkedin"}).Return(true)
	s.expectAccept()
	s.quota.EXPECT().ChargeConfirmedSync(gomock.Any(), "user-1", "campaign-1", gomock.Any()).Return(nil)

	req := s.request()
	req.Confirmed = true

	decision, err := s.coordinator.RequestSync(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeAccepted, decision.Outcome)
	s.NotEmpty(decision.SyncID)
}

func (s *CoordinatorTestSuite) TestAcceptedNeverSynced() {
	campaign := s.campaign(-1)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)
	s.registry.EXPECT().AnyChronological([]string{"linkedin"}).Return(true)
	s.expectAccept()

	decision, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeAccepted, decision.Outcome)
	s.NotEmpty(decision.SyncID)
}

func (s *CoordinatorTestSuite) TestAcceptedOutsideAllWindows() {
	campaign := s.campaign(40)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)
	s.registry.EXPECT().AnyChronological([]string{"linkedin"}).Return(true)
	s.expectAccept()

	decision, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeAccepted, decision.Outcome)
}

func (s *CoordinatorTestSuite) TestBogusSyncModeNormalizedToFast() {
	campaign := s.campaign(-1)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)
	s.registry.EXPECT().AnyChronological([]string{"linkedin"}).Return(true)

	s.campaigns.EXPECT().TryMarkSyncing(gomock.Any(), "campaign-1").Return(true, nil)
	s.records.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.SyncRecord) error {
			s.Equal(models.SyncModeFast, record.SyncMode)
			record.ID = "sync-new"
			return nil
		})
	s.campaigns.EXPECT().SetNextScheduledSync(gomock.Any(), "campaign-1", gomock.Any()).Return(nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job scheduler.SyncJob) error {
			s.Equal(models.SyncModeFast, job.SyncMode)
			return nil
		})

	req := s.request()
	req.SyncMode = "turbo"

	decision, err := s.coordinator.RequestSync(context.Background(), req)
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeAccepted, decision.Outcome)
}

func (s *CoordinatorTestSuite) TestLockRaceLostIsConflict() {
	campaign := s.campaign(-1)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)
	s.registry.EXPECT().AnyChronological([]string{"linkedin"}).Return(true)
	s.campaigns.EXPECT().TryMarkSyncing(gomock.Any(), "campaign-1").Return(false, nil)

	decision, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeConflict, decision.Outcome)
}

func (s *CoordinatorTestSuite) TestActiveRecordRaceReleasesLock() {
	campaign := s.campaign(-1)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)
	s.registry.EXPECT().AnyChronological([]string{"linkedin"}).Return(true)
	s.campaigns.EXPECT().TryMarkSyncing(gomock.Any(), "campaign-1").Return(true, nil)
	s.records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.ErrActiveSyncExists)
	s.campaigns.EXPECT().ResetSyncing(gomock.Any(), "campaign-1").Return(nil)

	decision, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().NoError(err)
	s.Equal(scheduler.OutcomeConflict, decision.Outcome)
}

func (s *CoordinatorTestSuite) TestDispatchFailureReleasesLockAndFailsRecord() {
	campaign := s.campaign(-1)
	s.campaigns.EXPECT().GetOwned(gomock.Any(), "campaign-1", "user-1").Return(campaign, nil)
	s.registry.EXPECT().RequiresExtension("linkedin").Return(false)
	s.records.EXPECT().GetActiveByCampaign(gomock.Any(), "campaign-1").Return(nil, nil)
	s.registry.EXPECT().AnyChronological([]string{"linkedin"}).Return(true)
	s.campaigns.EXPECT().TryMarkSyncing(gomock.Any(), "campaign-1").Return(true, nil)
	s.records.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.SyncRecord) error {
			record.ID = "sync-doomed"
			return nil
		})
	s.campaigns.EXPECT().SetNextScheduledSync(gomock.Any(), "campaign-1", gomock.Any()).Return(nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	s.records.EXPECT().Finalize(gomock.Any(), "sync-doomed", models.SyncStatusFailed, 0, 0, gomock.Any(), gomock.Any()).Return(nil)
	s.campaigns.EXPECT().ResetSyncing(gomock.Any(), "campaign-1").Return(nil)

	_, err := s.coordinator.RequestSync(context.Background(), s.request())
	s.Require().Error(err)
}

// expectAccept wires the full happy path after the cooldown check. The queued
// record must carry the decision time in StartedAt; the worker claim re-stamps
// it when the run actually begins.
func (s *CoordinatorTestSuite) expectAccept() {
	s.campaigns.EXPECT().TryMarkSyncing(gomock.Any(), "campaign-1").Return(true, nil)
	s.records.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.SyncRecord) error {
			s.False(record.StartedAt.IsZero(), "queued record should be stamped with the request time")
			record.ID = "sync-new"
			return nil
		})
	s.campaigns.EXPECT().SetNextScheduledSync(gomock.Any(), "campaign-1", gomock.Any()).Return(nil)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)
}

func TestCoordinatorTestSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorTestSuite))
}
