package config

import (
	"os"
	"testing"
	"time"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("CHECK_INTERVAL_MS", "2500")
	t.Setenv("HISTORY_WINDOW", "100")
	t.Setenv("DNS_DIAGNOSE", "true")
	t.Setenv("STATUS_ADDR", ":9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := FromEnv()

	if cfg.LogDir != "./_testlogs" || cfg.StatusAddr != ":9090" {
		t.Fatalf("logdir/addr wrong: %+v", cfg)
	}
	if cfg.Interval != 2500*time.Millisecond {
		t.Fatalf("interval wrong: %v", cfg.Interval)
	}
	if cfg.HistoryWindow != 100 || !cfg.DiagnoseDNS {
		t.Fatalf("window/dns wrong: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins wrong: %+v", cfg.AllowedOrigins)
	}
}

func TestFromEnv_IgnoresBadValues(t *testing.T) {
	t.Setenv("CHECK_INTERVAL_MS", "0")
	t.Setenv("HISTORY_WINDOW", "-3")
	t.Setenv("DNS_DIAGNOSE", "maybe")
	os.Unsetenv("LOG_DIR")
	os.Unsetenv("STATUS_ADDR")
	os.Unsetenv("ALLOWED_ORIGINS")

	cfg := FromEnv()
	if cfg.Interval != 15*time.Second || cfg.HistoryWindow != 0 || cfg.DiagnoseDNS {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.LogDir != "logs" || cfg.StatusAddr != "" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Fatalf("origins default wrong: %+v", cfg.AllowedOrigins)
	}
}
