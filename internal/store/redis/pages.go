package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mgwunna/portfolio/internal/domain"
)

const (
	// DefaultPageTTL is the default TTL for page snapshots (48 hours)
	DefaultPageTTL = 48 * time.Hour
)

// ErrPageNotFound is returned when a slug has no snapshot
var ErrPageNotFound = errors.New("page not found")

// Store handles Redis operations for page snapshots and view counters
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// GetPage retrieves a page snapshot by slug
func (s *Store) GetPage(ctx context.Context, slug string) (*domain.Page, error) {
	data, err := s.client.Get(ctx, PageKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	var page domain.Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal page: %w", err)
	}

	return &page, nil
}

// GetAllPages retrieves all page snapshots with their view counters
func (s *Store) GetAllPages(ctx context.Context) ([]*domain.Page, error) {
	slugs, err := s.client.SMembers(ctx, AllPagesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get page slugs: %w", err)
	}

	if len(slugs) == 0 {
		return []*domain.Page{}, nil
	}

	pages := make([]*domain.Page, 0, len(slugs))
	for _, slug := range slugs {
		page, err := s.GetPage(ctx, slug)
		if err != nil {
			// Skip pages that expired or couldn't be decoded
			continue
		}
		views, err := s.GetViews(ctx, slug)
		if err == nil {
			page.Views = views
		}
		pages = append(pages, page)
	}

	return pages, nil
}

// DeletePage removes a page snapshot and its view counter
func (s *Store) DeletePage(ctx context.Context, slug string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, PageKey(slug), ViewsKey(slug))
	pipe.SRem(ctx, AllPagesKey(), slug)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	return nil
}

// SavePagesMany stores page snapshots and registers their slugs in one transaction
func (s *Store) SavePagesMany(ctx context.Context, pages []*domain.Page) error {
	pipe := s.client.TxPipeline()

	for _, page := range pages {
		data, err := json.Marshal(page)
		if err != nil {
			return fmt.Errorf("failed to marshal page %s: %w", page.Slug, err)
		}

		pipe.Set(ctx, PageKey(page.Slug), data, DefaultPageTTL)
		pipe.SAdd(ctx, AllPagesKey(), page.Slug)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save pages: %w", err)
	}

	return nil
}
