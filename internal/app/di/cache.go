// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"places_backend/internal/feature/places/adapters"
	"places_backend/internal/feature/places/usecase"
	"places_backend/internal/platform/cache"
)

// placeCacheTTL is how long a place stays cached after a by-id lookup.
const placeCacheTTL = 5 * time.Minute

// NewPlaceRepository creates a PlaceRepository implementation.
// If Redis is available, the Postgres repository is wrapped with a
// read-through cache. Otherwise, it is used directly.
func NewPlaceRepository(rdb *redis.Client, db *gorm.DB) usecase.PlaceRepository {
	repo := adapters.NewPlacePostgres(db)
	if rdb != nil {
		return cache.NewCachingPlaceRepository(rdb, placeCacheTTL, repo, "places")
	}
	return repo
}
