package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/healthchecker/internal/availability"
	"github.com/hamed0406/healthchecker/internal/config"
	"github.com/hamed0406/healthchecker/internal/httpapi"
	"github.com/hamed0406/healthchecker/internal/logging"
	"github.com/hamed0406/healthchecker/internal/metrics"
	"github.com/hamed0406/healthchecker/internal/probe"
	"github.com/hamed0406/healthchecker/internal/scheduler"
	"github.com/hamed0406/healthchecker/internal/version"
)

func main() {
	var (
		cfgPath  string
		logLevel string
		showVer  bool
	)
	flag.StringVar(&cfgPath, "c", "", "path to the YAML endpoints file")
	flag.StringVar(&cfgPath, "config_file_path", "", "path to the YAML endpoints file")
	flag.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warning, error")
	flag.BoolVar(&showVer, "version", false, "print version and exit")
	flag.Parse()

	fmt.Printf("HTTP Health Checker\nVersion: %s (%s)\n\n", version.Version, version.Commit)
	if showVer {
		return
	}
	if cfgPath == "" {
		fmt.Fprintln(os.Stderr, "missing required flag -c / -config_file_path")
		flag.Usage()
		os.Exit(2)
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		log.Fatal(err)
	}
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, level)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	endpoints, err := config.LoadEndpoints(cfgPath)
	if err != nil {
		logger.Error("config_load_failed", zap.String("path", cfgPath), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("config_loaded", zap.String("path", cfgPath), zap.Int("endpoints", len(endpoints)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chk := probe.NewHTTPChecker(logger, probe.DefaultTimeout)
	chk.DiagnoseDNS = cfg.DiagnoseDNS

	history := availability.NewHistory(cfg.HistoryWindow)
	sweeper := scheduler.NewSweeper(logger, endpoints, chk, history, cfg.Interval)

	metrics.MustRegister()
	if cfg.StatusAddr != "" {
		api := httpapi.NewServer(logger, history, sweeper)
		srv := &http.Server{
			Addr:              cfg.StatusAddr,
			Handler:           api.Router(cfg.AllowedOrigins),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go api.ListenAndServe(srv)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	_ = sweeper.Run(ctx)
}
