package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/store"
)

// HousekeepingService periodically removes abandoned signups: unverified
// users whose OTP expired more than Retention ago. Their email becomes free
// to sign up again.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	now func() time.Time

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewHousekeepingService creates a new housekeeping service. If interval is
// 0 or negative it defaults to 1 hour. A retention of 0 disables purging.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		now:       time.Now,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down. A stopped
// service cannot be restarted.
func (s *HousekeepingService) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "retention", s.Retention)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup. Stopping a
// service that was never started is a no-op.
func (s *HousekeepingService) Stop() {
	if !s.started.Load() {
		return
	}
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// cleanup purges stale signups and returns how many users were removed.
func (s *HousekeepingService) cleanup(ctx context.Context) int64 {
	if s.Retention <= 0 {
		return 0
	}

	cutoff := s.now().UTC().Add(-s.Retention)
	n, err := s.Store.Users().DeleteStaleUnverified(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to purge unverified users", "error", err)
		return 0
	}

	s.Logger.Info("housekeeping cleanup completed", "purged_users", n, "cutoff", cutoff)
	return n
}
