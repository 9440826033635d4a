package scheduler

import (
	"context"
	"errors"

	"github.com/mgwunna/portfolio/internal/index"
	"github.com/mgwunna/portfolio/internal/logger"
	redisstore "github.com/mgwunna/portfolio/internal/store/redis"
)

// RedisSyncer restores pages and view counters from Redis on startup,
// so the first content reload can carry them over.
type RedisSyncer struct {
	store  *redisstore.Store
	index  *index.PageIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store *redisstore.Store,
	idx *index.PageIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads pages from Redis and updates the page index
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	if rs.store == nil {
		return errors.New("redis store not configured")
	}

	rs.logger.Info("syncing pages from redis to memory")

	pages, err := rs.store.GetAllPages(ctx)
	if err != nil {
		return err
	}

	if len(pages) == 0 {
		rs.logger.Info("no pages found in redis")
		return nil
	}

	rs.index.UpdatePages(pages)

	rs.logger.Info("synced pages from redis",
		logger.Int("count", len(pages)))

	return nil
}
