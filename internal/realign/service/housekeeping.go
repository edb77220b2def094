package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/northpath/realign/internal/realign/domain"
	"github.com/northpath/realign/internal/realign/store"
)

// HousekeepingService periodically removes expired share links, realignments
// past their tier's retention window, and version history beyond the
// configured depth.
type HousekeepingService struct {
	Store          store.Store
	Logger         *slog.Logger
	Interval       time.Duration
	VersionHistory int // versions kept per realignment; 0 keeps all

	// Now defaults to time.Now.
	Now func() time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to one hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration, versionHistory int) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:          store,
		Logger:         logger,
		Interval:       interval,
		VersionHistory: versionHistory,
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}
}

// Start runs cleanup immediately and then on every tick. Call Stop to shut
// the worker down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
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

// cleanup runs every task; a failing task does not stop the others.
func (s *HousekeepingService) cleanup(ctx context.Context) {
	now := nowUTC(s.Now)
	s.Logger.Debug("starting housekeeping cleanup")

	var deleted int64

	n, err := s.Store.ShareLinks().DeleteExpiredShareLinks(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired share links", "error", err)
	}
	deleted += n

	for _, tier := range domain.Tiers() {
		if tier.Permanent() {
			continue
		}
		cutoff := now.AddDate(0, -tier.RetentionMonths, 0)
		n, err := s.Store.Realignments().DeleteRealignmentsCreatedBefore(ctx, tier.ID, cutoff)
		if err != nil {
			s.Logger.Error("failed to apply retention", "tier", tier.ID, "error", err)
			continue
		}
		if n > 0 {
			s.Logger.Info("expired realignments removed", "tier", tier.ID, "count", n)
		}
		deleted += n
	}

	if s.VersionHistory > 0 {
		n, err := s.Store.Versions().TrimVersions(ctx, s.VersionHistory)
		if err != nil {
			s.Logger.Error("failed to trim version history", "error", err)
		}
		deleted += n
	}

	s.Logger.Info("housekeeping cleanup completed", "deleted", deleted)
}
