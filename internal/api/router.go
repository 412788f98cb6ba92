package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"log/slog"

	"github.com/leadloop/leadloop/internal/auth"
	"github.com/leadloop/leadloop/internal/database"
	"github.com/leadloop/leadloop/internal/scheduler"
)

// SetupRoutes configures all API routes
func SetupRoutes(mux *http.ServeMux, db *sql.DB, coordinator *scheduler.Coordinator, bulk *scheduler.BulkScheduler, campaignRepo *database.CampaignRepository, syncRecordRepo *database.SyncRecordRepository, userRepo *database.UserRepository, activityLogRepo *database.ActivityLogRepository, authConfig auth.Config, logger *slog.Logger) {
	authHandler := NewAuthHandler(authConfig, userRepo, logger)
	campaignHandler := NewCampaignHandler(campaignRepo, logger)
	syncHandler := NewSyncHandler(coordinator, bulk, campaignRepo, syncRecordRepo, logger)
	activityHandler := NewActivityLogHandler(activityLogRepo, logger)

	// Auth middleware
	authMiddleware := auth.Middleware(authConfig)
	protected := func(h http.HandlerFunc) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Handle CORS preflight before the auth check
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Origin", "*")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.WriteHeader(http.StatusOK)
				return
			}
			authMiddleware(h).ServeHTTP(w, r)
		})
	}

	// Authentication routes (public)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.Handle("/api/auth/validate", protected(authHandler.ValidateToken))

	// Campaign routes
	mux.Handle("/api/campaigns", protected(campaignHandler.List))
	mux.Handle("/api/campaigns/", protected(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/campaigns/sync-all":
			syncHandler.SyncAll(w, r)
		case strings.HasSuffix(r.URL.Path, "/sync"):
			syncHandler.RequestSync(w, r)
		case strings.HasSuffix(r.URL.Path, "/sync-history"):
			syncHandler.SyncHistory(w, r)
		case strings.HasSuffix(r.URL.Path, "/running-sync"):
			syncHandler.RunningSync(w, r)
		default:
			campaignHandler.Get(w, r)
		}
	}))

	// Sync record routes
	mux.Handle("/api/syncs/", protected(syncHandler.GetSyncRecord))

	// Activity log routes
	mux.Handle("/api/activity", protected(activityHandler.List))

	// Health check
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		code := http.StatusOK

		if err := database.HealthCheck(r.Context(), db); err != nil {
			logger.Error("health check failed", "error", err)
			status["status"] = "degraded"
			status["database"] = err.Error()
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(status)
	})
}
