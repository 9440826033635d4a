package scheduler

import (
	"context"
	"time"

	"github.com/mgwunna/portfolio/internal/index"
	"github.com/mgwunna/portfolio/internal/logger"
	"github.com/mgwunna/portfolio/internal/metrics"
	redisstore "github.com/mgwunna/portfolio/internal/store/redis"
)

const (
	// DefaultGCThreshold is the duration after which disabled pages are deleted
	DefaultGCThreshold = 30 * 24 * time.Hour // 30 days
)

// GarbageCollector handles cleanup of pages removed from the content file
type GarbageCollector struct {
	store     *redisstore.Store
	index     *index.PageIndex
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	now       func() time.Time
	stopCh    chan struct{}
}

// NewGarbageCollector creates a new garbage collector
func NewGarbageCollector(
	store *redisstore.Store,
	idx *index.PageIndex,
	log logger.Logger,
	interval time.Duration,
	threshold time.Duration,
	now func() time.Time,
) *GarbageCollector {
	if threshold == 0 {
		threshold = DefaultGCThreshold
	}
	if now == nil {
		now = time.Now
	}

	return &GarbageCollector{
		store:     store,
		index:     idx,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		now:       now,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic garbage collection process
func (gc *GarbageCollector) Start(ctx context.Context) error {
	gc.Collect(ctx)

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				gc.Collect(ctx)
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the garbage collector
func (gc *GarbageCollector) Stop() {
	close(gc.stopCh)
}

// Collect removes pages that have been disabled for longer than the threshold
// and returns how many were removed.
func (gc *GarbageCollector) Collect(ctx context.Context) int {
	gc.logger.Debug("running garbage collection for disabled pages")

	now := gc.now()
	deletedCount := 0

	for _, page := range gc.index.GetAllPages() {
		if !page.Disabled || page.UpdatedAt.IsZero() {
			continue
		}

		disabledDuration := now.Sub(page.UpdatedAt)
		if disabledDuration < gc.threshold {
			continue
		}

		gc.index.DeletePage(page.Slug)

		// Delete from Redis store (best effort)
		if gc.store != nil {
			if err := gc.store.DeletePage(ctx, page.Slug); err != nil {
				gc.logger.Warn("failed to delete page from redis",
					logger.String("slug", page.Slug),
					logger.Error(err))
			}
		}

		gc.logger.Info("garbage collected disabled page",
			logger.String("slug", page.Slug),
			logger.String("path", page.Path),
			logger.String("disabled_for", disabledDuration.String()))

		metrics.PagesCollected.Inc()
		deletedCount++
	}

	if deletedCount > 0 {
		gc.logger.Info("garbage collection completed",
			logger.Int("pages_deleted", deletedCount))
	} else {
		gc.logger.Debug("no pages to garbage collect")
	}

	return deletedCount
}
