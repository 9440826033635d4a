package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/mgwunna/portfolio/internal/index"
	"github.com/mgwunna/portfolio/internal/logger"
	"github.com/mgwunna/portfolio/internal/metrics"
	"github.com/mgwunna/portfolio/internal/sources/content"
	redisstore "github.com/mgwunna/portfolio/internal/store/redis"
)

// ContentReloader handles periodic reloading of site.yaml
type ContentReloader struct {
	loader        *content.Loader
	mapper        *content.Mapper
	store         *redisstore.Store
	index         *index.PageIndex
	logger        logger.Logger
	interval      time.Duration
	now           func() time.Time
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewContentReloader creates a new content reloader.
// store may be nil when Redis is disabled.
func NewContentReloader(
	contentFile string,
	store *redisstore.Store,
	idx *index.PageIndex,
	log logger.Logger,
	interval time.Duration,
	now func() time.Time,
	manualTrigger chan struct{},
) *ContentReloader {
	if now == nil {
		now = time.Now
	}
	return &ContentReloader{
		loader:        content.NewLoader(contentFile),
		mapper:        content.NewMapper(now),
		store:         store,
		index:         idx,
		logger:        log,
		interval:      interval,
		now:           now,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the content once, then keeps reloading it in the background
func (cr *ContentReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *ContentReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads site.yaml and updates index + store.
// On failure the index keeps serving the previous content.
func (cr *ContentReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading content",
		logger.String("source", cr.loader.Source()))

	config, err := cr.loader.Load()
	if err != nil {
		metrics.RecordReload(metrics.StatusError, 0)
		return fmt.Errorf("failed to load content: %w", err)
	}

	newPages, err := cr.mapper.MapPages(config)
	if err != nil {
		metrics.RecordReload(metrics.StatusError, 0)
		return fmt.Errorf("failed to map pages: %w", err)
	}

	cr.logger.Info("loaded pages from content",
		logger.Int("count", len(newPages)))

	// Views counted while the merge runs must survive it.
	cr.index.SetSite(cr.mapper.MapSite(config))
	allPages, disabled := cr.index.ReplacePages(newPages, cr.now())
	metrics.RecordReload(metrics.StatusOK, cr.index.Count())

	if disabled > 0 {
		cr.logger.Info("marking removed pages as disabled",
			logger.Int("count", disabled))
	}

	// Redis is a mirror: failures are logged, not returned.
	if cr.store != nil {
		if err := cr.store.SavePagesMany(ctx, allPages); err != nil {
			cr.logger.Warn("failed to save pages to redis",
				logger.Error(err))
		} else {
			cr.logger.Debug("pages saved to redis")
		}
	}

	return nil
}
