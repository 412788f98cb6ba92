package config

import (
	"os"
	"testing"
	"time"

	"log/slog"
)

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != defaultPort {
		t.Errorf("expected default port %q, got %q", defaultPort, cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != defaultReadTimeout {
		t.Errorf("expected default read timeout %v, got %v", defaultReadTimeout, cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != defaultWriteTimeout {
		t.Errorf("expected default write timeout %v, got %v", defaultWriteTimeout, cfg.Server.WriteTimeout)
	}
	if cfg.Logging.Level != slog.LevelInfo {
		t.Errorf("expected default log level %v, got %v", slog.LevelInfo, cfg.Logging.Level)
	}
	if cfg.Logging.Format != defaultLogFormat {
		t.Errorf("expected default log format %q, got %q", defaultLogFormat, cfg.Logging.Format)
	}
	if cfg.Database.MaxConnections != defaultMaxConnections {
		t.Errorf("expected default max connections %d, got %d", defaultMaxConnections, cfg.Database.MaxConnections)
	}
	if cfg.Queue.Exchange != defaultQueueExchange {
		t.Errorf("expected default exchange %q, got %q", defaultQueueExchange, cfg.Queue.Exchange)
	}
	if cfg.Scheduler.ReaperInterval != defaultReaperInterval {
		t.Errorf("expected default reaper interval %v, got %v", defaultReaperInterval, cfg.Scheduler.ReaperInterval)
	}
	if cfg.Scheduler.RunTimeout != defaultRunTimeout {
		t.Errorf("expected default run timeout %v, got %v", defaultRunTimeout, cfg.Scheduler.RunTimeout)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	clearConfigEnv(t)

	overrides := map[string]string{
		"SERVER_PORT":                  "9090",
		"SERVER_READ_TIMEOUT_SECONDS":  "30",
		"SERVER_WRITE_TIMEOUT_SECONDS": "45",
		"DB_MAX_CONNECTIONS":           "50",
		"SYNC_RUN_TIMEOUT_SECONDS":     "600",
		"LOG_LEVEL":                    "debug",
		"LOG_FORMAT":                   "text",
	}
	for key, value := range overrides {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected overridden port %q, got %q", "9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("expected read timeout %v, got %v", 30*time.Second, cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 45*time.Second {
		t.Errorf("expected write timeout %v, got %v", 45*time.Second, cfg.Server.WriteTimeout)
	}
	if cfg.Database.MaxConnections != 50 {
		t.Errorf("expected max connections 50, got %d", cfg.Database.MaxConnections)
	}
	if cfg.Scheduler.RunTimeout != 10*time.Minute {
		t.Errorf("expected run timeout %v, got %v", 10*time.Minute, cfg.Scheduler.RunTimeout)
	}
	if cfg.Logging.Level != slog.LevelDebug {
		t.Errorf("expected log level %v, got %v", slog.LevelDebug, cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected log format %q, got %q", "text", cfg.Logging.Format)
	}
}

func TestLoadWithInvalidValues(t *testing.T) {
	tests := map[string]string{
		"SERVER_READ_TIMEOUT_SECONDS":  "-1",
		"SERVER_WRITE_TIMEOUT_SECONDS": "abc",
		"DB_MAX_CONNECTIONS":           "0",
		"SYNC_REAPER_INTERVAL_SECONDS": "3.5",
		"LOG_LEVEL":                    "verbose",
		"LOG_FORMAT":                   "xml",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error when %s=%q", key, value)
			}
		})
	}
}

func TestParseLogLevelAliases(t *testing.T) {
	tests := map[string]slog.Level{
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
	}

	for input, expected := range tests {
		level, err := parseLogLevel(input)
		if err != nil {
			t.Fatalf("parseLogLevel(%q) returned error: %v", input, err)
		}

		if level != expected {
			t.Errorf("parseLogLevel(%q) = %v, want %v", input, level, expected)
		}
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"PORT", "SERVER_PORT",
		"SERVER_READ_TIMEOUT_SECONDS", "SERVER_WRITE_TIMEOUT_SECONDS", "SERVER_SHUTDOWN_TIMEOUT_SECONDS",
		"DATABASE_URL", "DB_MAX_CONNECTIONS", "MIGRATIONS_DIR",
		"RABBITMQ_URL", "RABBITMQ_EXCHANGE", "RABBITMQ_ROUTING_KEY", "RABBITMQ_QUEUE",
		"PLATFORMS_FILE", "SYNC_REAPER_INTERVAL_SECONDS", "SYNC_RUN_TIMEOUT_SECONDS",
		"LOG_LEVEL", "LOG_FORMAT",
	}
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok {
			t.Setenv(key, value)
			os.Unsetenv(key)
		}
	}
}
