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

const stopColumns = `id, route_id, pickup_id, stop_order, address, waste_type, status,
	arrival_time, departure_time`

// RouteStopRepo persists route stops in PostgreSQL
type RouteStopRepo struct {
	db *sqlx.DB
}

// NewRouteStopRepo creates a new route stop repository
func NewRouteStopRepo(db *sqlx.DB) *RouteStopRepo {
	return &RouteStopRepo{db: db}
}

// CreateStop inserts a new route stop and returns the stored record
func (r *RouteStopRepo) CreateStop(ctx context.Context, stop *models.RouteStop) (*models.RouteStop, error) {
	query := `
		INSERT INTO route_stops (route_id, pickup_id, stop_order, address, waste_type, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + stopColumns

	created := &models.RouteStop{}
	err := r.db.GetContext(
		ctx,
		created,
		query,
		stop.RouteID,
		stop.PickupID,
		stop.StopOrder,
		stop.Address,
		stop.WasteType,
		stop.Status,
	)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListStopsByRoute lists a route's stops ordered by stop_order ascending.
// The ordering defines the traversal path and must never be re-sorted.
func (r *RouteStopRepo) ListStopsByRoute(ctx context.Context, routeID int64) ([]*models.RouteStop, error) {
	query := `SELECT ` + stopColumns + ` FROM route_stops WHERE route_id = $1 ORDER BY stop_order ASC`

	stops := []*models.RouteStop{}
	if err := r.db.SelectContext(ctx, &stops, query, routeID); err != nil {
		return nil, err
	}

	return stops, nil
}

// UpdateStop mutates the provided fields in a single conditional statement
func (r *RouteStopRepo) UpdateStop(ctx context.Context, id int64, update *models.RouteStopUpdate) (*models.RouteStop, error) {
	setParts := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Status != nil {
		addSet("status", *update.Status)
	}
	if update.ArrivalTime != nil {
		addSet("arrival_time", *update.ArrivalTime)
	}
	if update.DepartureTime != nil {
		addSet("departure_time", *update.DepartureTime)
	}

	if len(setParts) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE route_stops SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "),
		len(args),
		stopColumns,
	)

	updated := &models.RouteStop{}
	err := r.db.GetContext(ctx, updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("route stop not found: %w", err)
		}
		return nil, err
	}

	return updated, nil
}
