package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"log/slog"

	"github.com/leadloop/leadloop/internal/api"
	"github.com/leadloop/leadloop/internal/auth"
	"github.com/leadloop/leadloop/internal/config"
	"github.com/leadloop/leadloop/internal/database"
	"github.com/leadloop/leadloop/internal/dispatch"
	"github.com/leadloop/leadloop/internal/logging"
	"github.com/leadloop/leadloop/internal/metrics"
	"github.com/leadloop/leadloop/internal/platforms"
	"github.com/leadloop/leadloop/internal/scheduler"
	"github.com/leadloop/leadloop/internal/server"
	"github.com/leadloop/leadloop/internal/worker"
)

// jobConsumer is the dispatch surface the worker loop consumes from.
type jobConsumer interface {
	scheduler.Dispatcher
	Consume(ctx context.Context, handler func(context.Context, scheduler.SyncJob)) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("failed to init logger", "error", err)
		os.Exit(1)
	}

	logger.Info("starting leadloop scheduler")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	logger.Info("connecting to database")
	db, err := database.Connect(ctx, database.Config{
		URL:                cfg.Database.URL,
		MaxConnections:     cfg.Database.MaxConnections,
		MaxIdleConnections: cfg.Database.MaxConnections / 5,
		ConnMaxLifetime:    database.DefaultConfig().ConnMaxLifetime,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("database connected")

	// Run pending migrations (non-fatal to allow app to start even if migrations fail)
	if err := database.RunMigrations(db, cfg.Database.MigrationsDir, logger); err != nil {
		logger.Warn("failed to run migrations, continuing anyway", "error", err)
	}

	// Create repositories
	campaignRepo := database.NewCampaignRepository(db)
	syncRecordRepo := database.NewSyncRecordRepository(db)
	userRepo := database.NewUserRepository(db)
	activityLogRepo := database.NewActivityLogRepository(db)

	// Load the platform catalog
	registry, err := platforms.Load(cfg.Scheduler.PlatformsFile)
	if err != nil {
		logger.Error("failed to load platform catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("platform catalog loaded", "platforms", registry.Names())

	collector, err := metrics.NewCollector()
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}

	// Dispatcher: prefer RabbitMQ, fall back to in-process delivery
	var dispatcher jobConsumer
	if cfg.Queue.URL != "" {
		rabbit, err := dispatch.NewRabbitMQ(dispatch.Config{
			URL:        cfg.Queue.URL,
			Exchange:   cfg.Queue.Exchange,
			RoutingKey: cfg.Queue.RoutingKey,
			QueueName:  cfg.Queue.QueueName,
		}, logger)
		if err != nil {
			logger.Warn("rabbitmq unavailable, falling back to in-process dispatch", "error", err)
		} else {
			defer rabbit.Close()
			dispatcher = rabbit
		}
	}
	if dispatcher == nil {
		dispatcher = dispatch.NewInProcess(0, logger)
	}

	// Quota charges are recorded in the activity log; billing reads them from
	// there.
	quota := newActivityQuotaCharger(activityLogRepo, logger)

	coordinator := scheduler.NewCoordinator(
		campaignRepo,
		syncRecordRepo,
		registry,
		dispatcher,
		quota,
		activityLogRepo,
		collector,
		logger,
	)
	bulk := scheduler.NewBulkScheduler(coordinator, campaignRepo, activityLogRepo, logger)

	// Worker loop consumes dispatched jobs
	runner := worker.NewRunner(
		syncRecordRepo,
		campaignRepo,
		worker.NewNoopCollector(logger),
		activityLogRepo,
		collector,
		logger,
	)
	go func() {
		if err := dispatcher.Consume(ctx, runner.Handle); err != nil && ctx.Err() == nil {
			logger.Error("job consumer stopped", "error", err)
		}
	}()

	// Reaper releases campaigns whose runs never finished
	reaper := scheduler.NewReaper(
		syncRecordRepo,
		campaignRepo,
		activityLogRepo,
		logger,
		cfg.Scheduler.ReaperInterval,
		cfg.Scheduler.RunTimeout,
	)
	go reaper.Start(ctx)

	// Setup HTTP routes
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	authConfig := auth.LoadConfigFromEnv()
	logger.Info("auth configured", "jwt_secret_set", authConfig.JWTSecret != "change-this-secret")

	api.SetupRoutes(mux, db, coordinator, bulk, campaignRepo, syncRecordRepo, userRepo, activityLogRepo, authConfig, logger)

	// Start server
	srv := server.New(cfg.Server, logger, collector.InstrumentHandler(mux))

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("leadloop started successfully")
	logger.Info("API available", "url", fmt.Sprintf("http://localhost:%s", cfg.Server.Port))

	waitForSignal(logger)

	logger.Info("shutting down")
	reaper.Stop()
	cancel()
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("shutdown complete")
}

func waitForSignal(logger *slog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	sig := <-c
	logger.Info("received signal", "signal", sig.String())
	signal.Stop(c)
	close(c)
}
