package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

const trackingColumns = `id, collector_id, route_id, latitude, longitude, geohash, timestamp, speed`

// TrackingRepo persists collector positions in PostgreSQL
type TrackingRepo struct {
	db *sqlx.DB
}

// NewTrackingRepo creates a new tracking repository
func NewTrackingRepo(db *sqlx.DB) *TrackingRepo {
	return &TrackingRepo{db: db}
}

// RecordLocation appends a position row and returns the stored record
func (r *TrackingRepo) RecordLocation(ctx context.Context, location *models.TrackingLocation) (*models.TrackingLocation, error) {
	query := `
		INSERT INTO tracking_locations (collector_id, route_id, latitude, longitude, geohash, timestamp, speed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + trackingColumns

	created := &models.TrackingLocation{}
	err := r.db.GetContext(
		ctx,
		created,
		query,
		location.CollectorID,
		location.RouteID,
		location.Latitude,
		location.Longitude,
		location.Geohash,
		location.Timestamp,
		location.Speed,
	)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetCurrentLocation returns the most recent position for a collector
func (r *TrackingRepo) GetCurrentLocation(ctx context.Context, collectorID string) (*models.TrackingLocation, error) {
	query := `SELECT ` + trackingColumns + `
		FROM tracking_locations WHERE collector_id = $1
		ORDER BY timestamp DESC LIMIT 1`

	location := &models.TrackingLocation{}
	err := r.db.GetContext(ctx, location, query, collectorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("location not found: %w", err)
		}
		return nil, err
	}

	return location, nil
}

// ListHistory returns position rows matching the filter, newest first
func (r *TrackingRepo) ListHistory(ctx context.Context, filter models.TrackingHistoryFilter) ([]*models.TrackingLocation, error) {
	conditions := []string{"collector_id = $1"}
	args := []interface{}{filter.CollectorID}

	if filter.StartTime != nil {
		args = append(args, *filter.StartTime)
		conditions = append(conditions, fmt.Sprintf("timestamp >= $%d", len(args)))
	}
	if filter.EndTime != nil {
		args = append(args, *filter.EndTime)
		conditions = append(conditions, fmt.Sprintf("timestamp <= $%d", len(args)))
	}
	if filter.RouteID != nil {
		args = append(args, *filter.RouteID)
		conditions = append(conditions, fmt.Sprintf("route_id = $%d", len(args)))
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(
		`SELECT %s FROM tracking_locations WHERE %s ORDER BY timestamp DESC LIMIT $%d OFFSET $%d`,
		trackingColumns,
		strings.Join(conditions, " AND "),
		limitPos,
		offsetPos,
	)

	locations := []*models.TrackingLocation{}
	if err := r.db.SelectContext(ctx, &locations, query, args...); err != nil {
		return nil, err
	}

	return locations, nil
}

// DeleteLocation removes a position row and returns the deleted record
func (r *TrackingRepo) DeleteLocation(ctx context.Context, id int64) (*models.TrackingLocation, error) {
	query := `DELETE FROM tracking_locations WHERE id = $1 RETURNING ` + trackingColumns

	deleted := &models.TrackingLocation{}
	err := r.db.GetContext(ctx, deleted, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("location not found: %w", err)
		}
		return nil, err
	}

	return deleted, nil
}
