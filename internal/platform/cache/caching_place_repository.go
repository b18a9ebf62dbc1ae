// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"places_backend/internal/feature/places/domain/entity"
	"places_backend/internal/feature/places/usecase"
)

// CachingPlaceRepository decorates a PlaceRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Only by-id lookups are cached; listing
// and write operations always go to the database, with write operations
// invalidating the affected id entry.
type CachingPlaceRepository struct {
	inner     usecase.PlaceRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingPlaceRepository decorates a PlaceRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "places".
func NewCachingPlaceRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PlaceRepository, namespace string) *CachingPlaceRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "places"
	}
	return &CachingPlaceRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID retrieves a place, checking cache first then falling back to the database.
func (c *CachingPlaceRepository) FindByID(ctx context.Context, id uint) (*entity.Place, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Place
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByCreator always reads from the database. Ownership listings change on
// every create/delete, so caching them buys little and risks staleness.
func (c *CachingPlaceRepository) FindByCreator(ctx context.Context, creatorID uint) ([]entity.Place, error) {
	return c.inner.FindByCreator(ctx, creatorID)
}

// Create inserts a place through the underlying repository.
// A freshly assigned id cannot be cached yet, so there is nothing to invalidate.
func (c *CachingPlaceRepository) Create(ctx context.Context, p *entity.Place) error {
	return c.inner.Create(ctx, p)
}

// Update writes through to the database and invalidates the cached entry.
func (c *CachingPlaceRepository) Update(ctx context.Context, p *entity.Place) error {
	if err := c.inner.Update(ctx, p); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.cacheKey(p.ID)).Err() // Best effort: don't fail if cache deletion fails
	}
	return nil
}

// Delete removes a place through the underlying repository and invalidates
// the cached entry.
func (c *CachingPlaceRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.cacheKey(id)).Err() // Best effort: don't fail if cache deletion fails
	}
	return nil
}

// cacheKey generates the cache key for a place id.
func (c *CachingPlaceRepository) cacheKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}
