package config

import (
	"testing"
	"time"

	"github.com/hamed0406/ewsmon/internal/domain"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("API_ADDR", ":9090")
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("POLL_INTERVAL_SECONDS", "30")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "7")
	t.Setenv("ALERT_COOLDOWN_SECONDS", "120")
	t.Setenv("MAX_CONCURRENT_PROBES", "4")
	t.Setenv("PUROLATOR_KEY", "prodkey")
	t.Setenv("PUROLATOR_PASSWORD", "prodpass")
	t.Setenv("PUROLATOR_ACCOUNT", "999")
	t.Setenv("PUROLATOR_UAT_KEY", "uatkey")
	t.Setenv("TEAMS_WEBHOOK_URL", "https://example.webhook.office.com/x")

	cfg := FromEnv()

	if cfg.Addr != ":9090" || cfg.LogDir != "./_testlogs" {
		t.Fatalf("addr/logdir wrong: %+v", cfg)
	}
	if cfg.PollInterval != 30*time.Second || cfg.ProbeTimeout != 7*time.Second {
		t.Fatalf("durations wrong: %+v", cfg)
	}
	if cfg.AlertCooldown != 120*time.Second || cfg.MaxConcurrentProbes != 4 {
		t.Fatalf("alerting config wrong: %+v", cfg)
	}
	if cfg.Prod.Key != "prodkey" || cfg.UAT.Key != "uatkey" {
		t.Fatalf("creds wrong: prod=%q uat=%q", cfg.Prod.Key, cfg.UAT.Key)
	}

	// defaults when unset
	if cfg.RetentionDays != 14 {
		t.Fatalf("want default retention 14, got %d", cfg.RetentionDays)
	}
	if cfg.CleanupEvery != time.Hour {
		t.Fatalf("want default cleanup every 1h, got %s", cfg.CleanupEvery)
	}
	if cfg.Prod.TrackPIN == "" {
		t.Fatalf("expected default track PIN")
	}
}

func TestFromEnv_UATTestDataFallsBackToProd(t *testing.T) {
	t.Setenv("PUROLATOR_TRACK_PIN", "111222333")
	// no PUROLATOR_TRACK_PIN_UAT set

	cfg := FromEnv()
	if cfg.UAT.TrackPIN != "111222333" {
		t.Fatalf("UAT pin should fall back to prod, got %q", cfg.UAT.TrackPIN)
	}
}

func TestCredsFor(t *testing.T) {
	cfg := Config{
		Prod: Credentials{Key: "p"},
		UAT:  Credentials{Key: "u"},
	}
	if cfg.CredsFor(domain.EnvProduction).Key != "p" {
		t.Fatalf("prod creds wrong")
	}
	if cfg.CredsFor(domain.EnvCertification).Key != "u" {
		t.Fatalf("uat creds wrong")
	}
}
