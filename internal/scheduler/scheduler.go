package scheduler

import (
	"context"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingRejecter interface {
	RejectExpired(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler sweeps pending bookings that outlived the pending TTL. One sweep
// runs at startup, then one per interval. Each sweep is bounded by the
// interval so a stalled store call never overlaps the next one.
type Scheduler struct {
	rejecter bookingRejecter
	interval time.Duration
	log      logger.Logger
}

func New(rejecter bookingRejecter, interval time.Duration, log logger.Logger) *Scheduler {
	return &Scheduler{
		rejecter: rejecter,
		interval: interval,
		log:      log,
	}
}

// Start blocks until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info("pending expiry sweeper started", logger.Duration("interval", s.interval))
	defer s.log.Info("pending expiry sweeper stopped")

	if ctx.Err() != nil {
		return
	}
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep runs one expiry pass and returns how many bookings it rejected.
func (s *Scheduler) sweep(ctx context.Context) int {
	sweepCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	started := time.Now()
	rejected, err := s.rejecter.RejectExpired(sweepCtx)
	if err != nil {
		s.log.Error("pending expiry sweep failed",
			logger.String("error", err.Error()),
			logger.Duration("elapsed", time.Since(started)),
		)
		return 0
	}
	if len(rejected) == 0 {
		return 0
	}

	for listingID, n := range countByListing(rejected) {
		s.log.Info("pending bookings expired",
			logger.String("listing_id", listingID),
			logger.Int("rejected", n),
		)
	}

	return len(rejected)
}

func countByListing(bookings []*domain.Booking) map[string]int {
	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.ListingID]++
	}
	return counts
}
