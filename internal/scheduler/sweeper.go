package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/healthchecker/internal/availability"
	"github.com/hamed0406/healthchecker/internal/domain"
	"github.com/hamed0406/healthchecker/internal/metrics"
	"github.com/hamed0406/healthchecker/internal/probe"
)

// DefaultInterval is the pause between two sweeps.
const DefaultInterval = 15 * time.Second

var separator = strings.Repeat("-", 56)

// Sweeper probes every endpoint once per sweep, in declared order and one at
// a time, then logs availability per domain and sleeps.
type Sweeper struct {
	Logger    *zap.Logger
	Endpoints []domain.Endpoint
	Prober    probe.Prober
	History   *availability.History
	Interval  time.Duration

	state  atomic.Int32
	sweeps atomic.Int64
}

func NewSweeper(
	logger *zap.Logger,
	endpoints []domain.Endpoint,
	prober probe.Prober,
	history *availability.History,
	interval time.Duration,
) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if history == nil {
		history = availability.NewHistory(0)
	}
	return &Sweeper{
		Logger:    logger,
		Endpoints: endpoints,
		Prober:    prober,
		History:   history,
		Interval:  interval,
	}
}

func (s *Sweeper) State() State { return State(s.state.Load()) }

// Sweeps is the number of completed sweeps.
func (s *Sweeper) Sweeps() int64 { return s.sweeps.Load() }

func (s *Sweeper) setState(st State) { s.state.Store(int32(st)) }

// Run loops until ctx is cancelled, then returns nil. Probe failures never
// stop the loop.
func (s *Sweeper) Run(ctx context.Context) error {
	s.Logger.Info("sweeper_started",
		zap.Int("endpoints", len(s.Endpoints)),
		zap.Duration("interval", s.Interval),
	)
	s.Logger.Info(separator)

	for {
		if !s.sweepOnce(ctx) {
			return s.stop()
		}
		s.report()

		s.setState(StateSleeping)
		t := time.NewTimer(s.Interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return s.stop()
		case <-t.C:
		}
	}
}

// sweepOnce probes every endpoint and records its verdict. It reports false
// when ctx was cancelled mid-sweep; the in-flight verdict is dropped.
func (s *Sweeper) sweepOnce(ctx context.Context) bool {
	s.setState(StateSweeping)
	for _, ep := range s.Endpoints {
		if ctx.Err() != nil {
			return false
		}
		d := ep.Domain()
		v := s.Prober.Probe(ctx, ep)
		if ctx.Err() != nil {
			return false
		}
		availability.Record(s.History, d, v.Up())
		metrics.ObserveProbe(d, string(v.Kind), v.LatencyMS)
	}
	s.sweeps.Add(1)
	metrics.SweepDone()
	return true
}

func (s *Sweeper) report() availability.Snapshot {
	s.setState(StateReporting)
	snap := availability.Compute(s.History)
	for _, d := range snap {
		s.Logger.Info(fmt.Sprintf("%s has %.1f%% availability percentage", d.Domain, d.Percent),
			zap.String("domain", d.Domain),
			zap.Float64("percent", d.Percent),
			zap.Int("up", d.Up),
			zap.Int("total", d.Total),
		)
		metrics.SetAvailability(d.Domain, d.Percent)
	}
	s.Logger.Info(separator)
	return snap
}

func (s *Sweeper) stop() error {
	s.setState(StateStopped)
	s.Logger.Info("Closing up shop..", zap.Int64("sweeps", s.Sweeps()))
	return nil
}
