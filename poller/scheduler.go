// Package poller maintains the repeating fetch of a selected feed variant
// for one consumer. Every cycle produces a fresh snapshot that replaces
// prior state wholesale; a failed cycle is skipped and the previous
// snapshot stays visible.
package poller

import (
	"context"
	"sync"
	"time"

	"marketview/logger"
	"marketview/models"
)

// Key identifies one polling target: a market and the feed variant active
// for it. Results are tagged with the key in effect when the request was
// issued.
type Key struct {
	MarketID int
	Feed     models.FeedKind
}

// Source is the read-only data source a scheduler polls.
type Source interface {
	FetchFeed(ctx context.Context, marketID int, feed models.FeedKind) ([]models.OrderRecord, error)
}

// Scheduler re-fetches the feed for the active key on a fixed interval and
// hands each accepted snapshot to the consumer callback. Overlapping
// fetches are permitted and applied in completion order, but a completion
// issued under a generation that is no longer current is discarded, so a
// slow response from a previous key can never overwrite state derived from
// the current one.
type Scheduler struct {
	source   Source
	interval time.Duration
	log      *logger.Log

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a scheduler polling the source at the given
// interval.
func NewScheduler(source Source, interval time.Duration) *Scheduler {
	return &Scheduler{
		source:   source,
		interval: interval,
		log:      logger.GetLogger(),
	}
}

// Start begins polling the given key, cancelling any previous timer first
// so no two timers run concurrently for the same consumer. The first fetch
// fires immediately; subsequent fetches align to the interval. onResult
// receives each accepted snapshot; every delivered list replaces the
// previous one wholesale.
func (s *Scheduler) Start(ctx context.Context, key Key, onResult func(models.BookSnapshot)) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	s.wg.Add(1)
	go s.loop(ctx, gen, key, onResult)
}

// Stop cancels the active timer synchronously; no further ticks fire. An
// in-flight request cannot be recalled, but its completion fails the
// generation check and is discarded. Stop waits for the polling goroutines
// to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, gen uint64, key Key, onResult func(models.BookSnapshot)) {
	defer s.wg.Done()

	log := s.log.WithComponent("poll_scheduler").WithFields(logger.Fields{
		"market_id": key.MarketID,
		"feed":      key.Feed.String(),
	})
	log.Info("starting poll loop")

	s.fetch(ctx, gen, key, onResult)

	now := time.Now()
	nextTick := now.Truncate(s.interval).Add(s.interval)
	timer := time.NewTimer(nextTick.Sub(now))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("poll loop stopped")
			return
		case <-timer.C:
			start := time.Now()
			// A slow cycle must not delay the next tick; the apply gate
			// keeps overlapping completions safe.
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.fetch(ctx, gen, key, onResult)
			}()
			nextTick = start.Truncate(s.interval).Add(s.interval)
			timer.Reset(time.Until(nextTick))
		}
	}
}

func (s *Scheduler) fetch(ctx context.Context, gen uint64, key Key, onResult func(models.BookSnapshot)) {
	log := s.log.WithComponent("poll_scheduler").WithFields(logger.Fields{
		"market_id": key.MarketID,
		"feed":      key.Feed.String(),
		"operation": "fetch_feed",
	})

	orders, err := s.source.FetchFeed(ctx, key.MarketID, key.Feed)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.WithError(err).Warn("feed fetch failed; keeping previous snapshot")
		return
	}

	s.mu.Lock()
	current := s.gen == gen
	s.mu.Unlock()
	if !current {
		logger.IncrementStaleDrop()
		log.Debug("discarding stale feed result")
		return
	}

	onResult(models.BookSnapshot{
		MarketID:  key.MarketID,
		Feed:      key.Feed,
		Orders:    orders,
		FetchedAt: time.Now().UTC(),
	})
}
