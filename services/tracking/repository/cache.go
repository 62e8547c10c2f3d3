package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/greencycle/greencycle/internal/pkg/database"
	"github.com/greencycle/greencycle/internal/pkg/models"
)

const (
	currentLocationKeyPrefix = "tracking:current:"
	collectorGeoSetKey       = "tracking:collectors:geo"
	currentLocationTTL       = 5 * time.Minute
)

// LocationCache keeps the latest position per collector in Redis. Entries
// expire so a collector that stops reporting falls back to the database.
type LocationCache struct {
	redisClient *database.RedisClient
}

// NewLocationCache creates a new Redis-backed location cache
func NewLocationCache(redisClient *database.RedisClient) *LocationCache {
	return &LocationCache{redisClient: redisClient}
}

// StoreCurrentLocation caches a freshly recorded position and updates the
// collector geo set for proximity queries
func (c *LocationCache) StoreCurrentLocation(ctx context.Context, location *models.TrackingLocation) error {
	payload, err := json.Marshal(location)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}

	key := currentLocationKeyPrefix + location.CollectorID
	if err := c.redisClient.Set(ctx, key, payload, currentLocationTTL); err != nil {
		return fmt.Errorf("failed to cache location: %w", err)
	}

	return c.redisClient.GeoAdd(ctx, collectorGeoSetKey,
		location.Longitude, location.Latitude, location.CollectorID)
}

// GetCurrentLocation returns the cached position for a collector, or an
// error on cache miss
func (c *LocationCache) GetCurrentLocation(ctx context.Context, collectorID string) (*models.TrackingLocation, error) {
	raw, err := c.redisClient.Get(ctx, currentLocationKeyPrefix+collectorID)
	if err != nil {
		return nil, fmt.Errorf("location not cached: %w", err)
	}

	location := &models.TrackingLocation{}
	if err := json.Unmarshal([]byte(raw), location); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached location: %w", err)
	}

	return location, nil
}
