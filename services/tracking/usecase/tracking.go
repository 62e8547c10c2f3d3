package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/logger"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/internal/utils"
	"github.com/greencycle/greencycle/services/tracking"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 500
)

// TrackingUC implements the tracking.TrackingUC interface
type TrackingUC struct {
	repo  tracking.TrackingRepo
	cache tracking.LocationCache
	gw    tracking.TrackingGW
}

// NewTrackingUC creates a new tracking use case. The cache may be nil, in
// which case every current-location read goes to the database.
func NewTrackingUC(repo tracking.TrackingRepo, cache tracking.LocationCache, gw tracking.TrackingGW) *TrackingUC {
	return &TrackingUC{
		repo:  repo,
		cache: cache,
		gw:    gw,
	}
}

// RecordLocation validates and appends a position row. The timestamp is
// always assigned server-side; the geohash is derived from the coordinates.
func (uc *TrackingUC) RecordLocation(ctx context.Context, req *models.RecordLocationRequest) (*models.TrackingLocation, error) {
	if strings.TrimSpace(req.CollectorID) == "" {
		return nil, apperrors.BadRequest("MISSING_COLLECTOR_ID", "collectorId is required")
	}
	if req.Latitude == nil {
		return nil, apperrors.BadRequest("MISSING_LATITUDE", "latitude is required")
	}
	if req.Longitude == nil {
		return nil, apperrors.BadRequest("MISSING_LONGITUDE", "longitude is required")
	}

	lat, lon := *req.Latitude, *req.Longitude
	if lat < models.MinLatitude || lat > models.MaxLatitude {
		return nil, apperrors.BadRequest("INVALID_LATITUDE",
			"latitude must be between -90 and 90")
	}
	if lon < models.MinLongitude || lon > models.MaxLongitude {
		return nil, apperrors.BadRequest("INVALID_LONGITUDE",
			"longitude must be between -180 and 180")
	}
	if req.Speed != nil && (*req.Speed < 0 || *req.Speed > models.MaxSpeedKmh) {
		return nil, apperrors.BadRequest("INVALID_SPEED",
			"speed must be between 0 and 300 km/h")
	}

	location := &models.TrackingLocation{
		CollectorID: strings.TrimSpace(req.CollectorID),
		RouteID:     req.RouteID,
		Latitude:    lat,
		Longitude:   lon,
		Geohash:     utils.EncodeLocation(lat, lon),
		Timestamp:   models.Now(),
		Speed:       req.Speed,
	}

	created, err := uc.repo.RecordLocation(ctx, location)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.StoreCurrentLocation(ctx, created); err != nil {
			logger.Warn("Failed to cache collector location",
				logger.Err(err),
				logger.String("collector_id", created.CollectorID),
			)
		}
	}

	uc.gw.PublishLocationUpdated(ctx, &models.LocationEvent{
		CollectorID: created.CollectorID,
		RouteID:     created.RouteID,
		Latitude:    created.Latitude,
		Longitude:   created.Longitude,
		Geohash:     created.Geohash,
		Timestamp:   created.Timestamp,
	})

	return created, nil
}

// GetCurrentLocation returns the latest known position of a collector,
// serving from the cache when possible
func (uc *TrackingUC) GetCurrentLocation(ctx context.Context, collectorID string) (*models.TrackingLocation, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.GetCurrentLocation(ctx, collectorID); err == nil {
			return cached, nil
		}
	}

	location, err := uc.repo.GetCurrentLocation(ctx, collectorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("LOCATION_NOT_FOUND", "No location found for collector")
		}
		return nil, err
	}

	return location, nil
}

// GetHistory returns position rows newest-first, clamped server-side
func (uc *TrackingUC) GetHistory(ctx context.Context, filter models.TrackingHistoryFilter) ([]*models.TrackingLocation, error) {
	filter.Limit = clampLimit(filter.Limit, defaultHistoryLimit, maxHistoryLimit)
	filter.Offset = clampOffset(filter.Offset)

	return uc.repo.ListHistory(ctx, filter)
}

// DeleteLocation removes a position row and returns the deleted record
func (uc *TrackingUC) DeleteLocation(ctx context.Context, id int64) (*models.TrackingLocation, error) {
	deleted, err := uc.repo.DeleteLocation(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(apperrors.CodeNotFound, "Location record not found")
		}
		return nil, err
	}
	return deleted, nil
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
