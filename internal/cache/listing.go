package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
)

const listingsKey = "pgfinder:listings:all"

// ListingCache keeps the full listing set as one JSON value in Redis.
type ListingCache struct {
	client   *redis.Client
	ttl      time.Duration
	strategy retry.Strategy
}

func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{
		client: client,
		ttl:    ttl,
		strategy: retry.Strategy{
			Attempts: 2,
			Delay:    50 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (c *ListingCache) GetAll(ctx context.Context) ([]*domain.Listing, bool, error) {
	raw, err := c.client.Get(ctx, listingsKey)
	if err != nil {
		if errors.Is(err, redis.NoMatches) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get listings: %w", err)
	}

	var listings []*domain.Listing
	if err = json.Unmarshal([]byte(raw), &listings); err != nil {
		return nil, false, fmt.Errorf("decode listings: %w", err)
	}

	return listings, true, nil
}

func (c *ListingCache) SetAll(ctx context.Context, listings []*domain.Listing) error {
	raw, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("encode listings: %w", err)
	}

	if err = c.client.SetWithExpirationAndRetry(ctx, c.strategy, listingsKey, raw, c.ttl); err != nil {
		return fmt.Errorf("set listings: %w", err)
	}

	return nil
}

func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.client.DelWithRetry(ctx, c.strategy, listingsKey); err != nil {
		return fmt.Errorf("invalidate listings: %w", err)
	}
	return nil
}

// Disabled is used when no Redis address is configured. Every read misses.
type Disabled struct{}

func (Disabled) GetAll(context.Context) ([]*domain.Listing, bool, error) { return nil, false, nil }
func (Disabled) SetAll(context.Context, []*domain.Listing) error        { return nil }
func (Disabled) Invalidate(context.Context) error                       { return nil }
