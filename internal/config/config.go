package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	LogDir         string        // logs directory
	Interval       time.Duration // pause between sweeps
	HistoryWindow  int           // verdicts kept per domain, 0 = all
	DiagnoseDNS    bool          // classify DNS after network failures
	StatusAddr     string        // status API bind address, empty disables it
	AllowedOrigins []string      // CORS origins for the status API
}

func FromEnv() Config {
	// Logs
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	// Sweep tuning
	interval := 15 * time.Second
	if v := os.Getenv("CHECK_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			interval = time.Duration(ms) * time.Millisecond
		}
	}

	window := 0
	if v := os.Getenv("HISTORY_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			window = n
		}
	}

	diagnose := false
	if v := os.Getenv("DNS_DIAGNOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			diagnose = b
		}
	}

	// Status API (empty means disabled)
	statusAddr := strings.TrimSpace(os.Getenv("STATUS_ADDR"))

	origins := []string{"*"}
	if v := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); v != "" {
		origins = splitList(v)
	}

	return Config{
		LogDir:         logDir,
		Interval:       interval,
		HistoryWindow:  window,
		DiagnoseDNS:    diagnose,
		StatusAddr:     statusAddr,
		AllowedOrigins: origins,
	}
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
