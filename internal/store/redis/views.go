package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// IncrementViews increments the view counter of a page and returns the new value
func (s *Store) IncrementViews(ctx context.Context, slug string) (int64, error) {
	n, err := s.client.Incr(ctx, ViewsKey(slug)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return n, nil
}

// GetViews returns the view counter of a page, 0 if never viewed
func (s *Store) GetViews(ctx context.Context, slug string) (int64, error) {
	n, err := s.client.Get(ctx, ViewsKey(slug)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get views: %w", err)
	}
	return n, nil
}

// GetViewStats retrieves view counters for every known page
func (s *Store) GetViewStats(ctx context.Context) (map[string]int64, error) {
	slugs, err := s.client.SMembers(ctx, AllPagesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get page slugs: %w", err)
	}

	stats := make(map[string]int64, len(slugs))
	for _, slug := range slugs {
		views, err := s.GetViews(ctx, slug)
		if err != nil {
			return nil, err
		}
		stats[slug] = views
	}

	return stats, nil
}
