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

const routeColumns = `id, name, collector_id, status, total_distance, total_pickups,
	start_time, end_time, created_at`

// RouteRepo persists routes in PostgreSQL
type RouteRepo struct {
	db *sqlx.DB
}

// NewRouteRepo creates a new route repository
func NewRouteRepo(db *sqlx.DB) *RouteRepo {
	return &RouteRepo{db: db}
}

// CreateRoute inserts a new route and returns the stored record
func (r *RouteRepo) CreateRoute(ctx context.Context, route *models.Route) (*models.Route, error) {
	query := `
		INSERT INTO routes (name, collector_id, status, total_distance, total_pickups, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + routeColumns

	created := &models.Route{}
	err := r.db.GetContext(
		ctx,
		created,
		query,
		route.Name,
		route.CollectorID,
		route.Status,
		route.TotalDistance,
		route.TotalPickups,
		route.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetRouteByID retrieves a route by id
func (r *RouteRepo) GetRouteByID(ctx context.Context, id int64) (*models.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`

	route := &models.Route{}
	err := r.db.GetContext(ctx, route, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("route not found: %w", err)
		}
		return nil, err
	}

	return route, nil
}

// ListRoutes lists routes matching the filter, newest first
func (r *RouteRepo) ListRoutes(ctx context.Context, filter models.RouteListFilter) ([]*models.Route, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.CollectorID != "" {
		args = append(args, filter.CollectorID)
		conditions = append(conditions, fmt.Sprintf("collector_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(
		`SELECT %s FROM routes%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		routeColumns,
		where,
		limitPos,
		offsetPos,
	)

	routes := []*models.Route{}
	if err := r.db.SelectContext(ctx, &routes, query, args...); err != nil {
		return nil, err
	}

	return routes, nil
}

// UpdateRoute mutates the provided fields in a single conditional statement
func (r *RouteRepo) UpdateRoute(ctx context.Context, id int64, update *models.RouteUpdate) (*models.Route, error) {
	setParts := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Status != nil {
		addSet("status", *update.Status)
	}
	if update.StartTime != nil {
		addSet("start_time", *update.StartTime)
	}
	if update.EndTime != nil {
		addSet("end_time", *update.EndTime)
	}

	if len(setParts) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE routes SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "),
		len(args),
		routeColumns,
	)

	updated := &models.Route{}
	err := r.db.GetContext(ctx, updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("route not found: %w", err)
		}
		return nil, err
	}

	return updated, nil
}

// DeleteRoute removes a route and returns the deleted record
func (r *RouteRepo) DeleteRoute(ctx context.Context, id int64) (*models.Route, error) {
	query := `DELETE FROM routes WHERE id = $1 RETURNING ` + routeColumns

	deleted := &models.Route{}
	err := r.db.GetContext(ctx, deleted, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("route not found: %w", err)
		}
		return nil, err
	}

	return deleted, nil
}
