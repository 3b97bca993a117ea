// Package ratings keeps a location's stored average rating in line with its
// reviews.
//
// Review handlers commit their mutation first and then Enqueue the location
// id. A worker re-reads the persisted reviews and writes the new average, so
// the review record is consistent as soon as the handler responds while the
// aggregate catches up afterwards. A failed or dropped recompute is logged and
// counted but never reported to the client whose write triggered it.
package ratings

import (
	"context"
	"expvar"
	"sync"

	"loc8r/internal/domain/locations"

	"go.uber.org/zap"
)

// Counter names published in the metrics map.
const (
	MetricRecomputed   = "recomputed"
	MetricSkippedEmpty = "skipped_empty"
	MetricFailed       = "failed"
	MetricDropped      = "dropped"
)

type Store interface {
	GetRatingAndReviews(ctx context.Context, locationID int64) (int, []locations.Review, error)
	SetRating(ctx context.Context, locationID int64, rating int) error
}

// AverageRating returns the integer mean of the review ratings, truncated
// toward zero. ok is false for an empty set, in which case the caller keeps
// whatever rating is already stored.
func AverageRating(reviews []locations.Review) (rating int, ok bool) {
	if len(reviews) == 0 {
		return 0, false
	}
	total := 0
	for _, rv := range reviews {
		total += rv.Rating
	}
	return total / len(reviews), true
}

type Recomputer struct {
	store   Store
	logger  *zap.SugaredLogger
	metrics *expvar.Map

	mu     sync.RWMutex
	closed bool
	queue  chan int64
	wg     sync.WaitGroup
}

// NewRecomputer builds a recomputer with a bounded queue. metrics may be an
// unpublished map; main publishes it under /debug/vars.
func NewRecomputer(store Store, logger *zap.SugaredLogger, metrics *expvar.Map, queueSize int) *Recomputer {
	if metrics == nil {
		metrics = new(expvar.Map).Init()
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Recomputer{
		store:   store,
		logger:  logger,
		metrics: metrics,
		queue:   make(chan int64, queueSize),
	}
}

// Start launches workers that drain the queue until Close is called.
func (rc *Recomputer) Start(ctx context.Context, workers int) {
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		rc.wg.Add(1)
		go func() {
			defer rc.wg.Done()
			for id := range rc.queue {
				_ = rc.Recompute(ctx, id)
			}
		}()
	}
}

// Enqueue schedules a recompute without blocking. It reports false when the
// queue is full or closed; the task is then dropped.
func (rc *Recomputer) Enqueue(locationID int64) bool {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	if rc.closed {
		rc.drop(locationID, "closed")
		return false
	}

	select {
	case rc.queue <- locationID:
		return true
	default:
		rc.drop(locationID, "queue full")
		return false
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (rc *Recomputer) Close() {
	rc.mu.Lock()
	if !rc.closed {
		rc.closed = true
		close(rc.queue)
	}
	rc.mu.Unlock()

	rc.wg.Wait()
}

// Recompute re-reads the location's reviews from the store and persists the
// new average. The returned error has already been logged and counted.
func (rc *Recomputer) Recompute(ctx context.Context, locationID int64) error {
	current, reviews, err := rc.store.GetRatingAndReviews(ctx, locationID)
	if err != nil {
		rc.metrics.Add(MetricFailed, 1)
		rc.logger.Errorw("failed to load reviews for rating recompute", "location_id", locationID, "error", err)
		return err
	}

	rating, ok := AverageRating(reviews)
	if !ok {
		rc.metrics.Add(MetricSkippedEmpty, 1)
		rc.logger.Debugw("no reviews, keeping rating", "location_id", locationID, "rating", current)
		return nil
	}

	if err := rc.store.SetRating(ctx, locationID, rating); err != nil {
		rc.metrics.Add(MetricFailed, 1)
		rc.logger.Errorw("failed to save average rating", "location_id", locationID, "rating", rating, "error", err)
		return err
	}

	rc.metrics.Add(MetricRecomputed, 1)
	rc.logger.Infow("average rating updated", "location_id", locationID, "rating", rating, "reviews", len(reviews))
	return nil
}

func (rc *Recomputer) drop(locationID int64, reason string) {
	rc.metrics.Add(MetricDropped, 1)
	rc.logger.Warnw("rating recompute dropped", "location_id", locationID, "reason", reason)
}
