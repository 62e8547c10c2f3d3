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

const pickupColumns = `id, user_id, waste_type, pickup_date, pickup_time, address,
	estimated_weight, actual_weight, notes, status, collector_id, created_at, completed_at`

// PickupRepo persists pickups in PostgreSQL
type PickupRepo struct {
	db *sqlx.DB
}

// NewPickupRepo creates a new pickup repository
func NewPickupRepo(db *sqlx.DB) *PickupRepo {
	return &PickupRepo{db: db}
}

// CreatePickup inserts a new pickup and returns the stored record
func (r *PickupRepo) CreatePickup(ctx context.Context, pickup *models.Pickup) (*models.Pickup, error) {
	query := `
		INSERT INTO pickups (user_id, waste_type, pickup_date, pickup_time, address,
			estimated_weight, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + pickupColumns

	created := &models.Pickup{}
	err := r.db.GetContext(
		ctx,
		created,
		query,
		pickup.UserID,
		pickup.WasteType,
		pickup.PickupDate,
		pickup.PickupTime,
		pickup.Address,
		pickup.EstimatedWeight,
		pickup.Notes,
		pickup.Status,
		pickup.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetPickupByID retrieves a pickup visible to the owner
func (r *PickupRepo) GetPickupByID(ctx context.Context, id int64, ownerID string) (*models.Pickup, error) {
	query := `SELECT ` + pickupColumns + ` FROM pickups WHERE id = $1 AND user_id = $2`

	pickup := &models.Pickup{}
	err := r.db.GetContext(ctx, pickup, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pickup not found: %w", err)
		}
		return nil, err
	}

	return pickup, nil
}

// ListPickups lists pickups matching the filter. Results are scoped to the
// owner as a base condition before any explicit filters apply.
func (r *PickupRepo) ListPickups(ctx context.Context, filter models.PickupListFilter) ([]*models.Pickup, error) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{filter.OwnerID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.CollectorID != "" {
		args = append(args, filter.CollectorID)
		conditions = append(conditions, fmt.Sprintf("collector_id = $%d", len(args)))
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(
		`SELECT %s FROM pickups WHERE %s LIMIT $%d OFFSET $%d`,
		pickupColumns,
		strings.Join(conditions, " AND "),
		limitPos,
		offsetPos,
	)

	pickups := []*models.Pickup{}
	if err := r.db.SelectContext(ctx, &pickups, query, args...); err != nil {
		return nil, err
	}

	return pickups, nil
}

// UpdatePickup mutates the provided fields in a single conditional
// statement. Zero matched rows report not-found, which also covers a
// concurrent delete between validation and mutation.
func (r *PickupRepo) UpdatePickup(ctx context.Context, id int64, ownerID string, update *models.PickupUpdate) (*models.Pickup, error) {
	setParts := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Status != nil {
		addSet("status", *update.Status)
	}
	if update.CollectorID != nil {
		addSet("collector_id", *update.CollectorID)
	}
	if update.ActualWeight != nil {
		addSet("actual_weight", *update.ActualWeight)
	}
	if update.Notes != nil {
		addSet("notes", *update.Notes)
	}
	if update.CompletedAt != nil {
		addSet("completed_at", *update.CompletedAt)
	}

	if len(setParts) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	args = append(args, id)
	idPos := len(args)
	args = append(args, ownerID)
	ownerPos := len(args)

	query := fmt.Sprintf(
		`UPDATE pickups SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(setParts, ", "),
		idPos,
		ownerPos,
		pickupColumns,
	)

	updated := &models.Pickup{}
	err := r.db.GetContext(ctx, updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pickup not found: %w", err)
		}
		return nil, err
	}

	return updated, nil
}

// DeletePickup removes a pickup owned by the caller and returns the deleted
// record
func (r *PickupRepo) DeletePickup(ctx context.Context, id int64, ownerID string) (*models.Pickup, error) {
	query := `DELETE FROM pickups WHERE id = $1 AND user_id = $2 RETURNING ` + pickupColumns

	deleted := &models.Pickup{}
	err := r.db.GetContext(ctx, deleted, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pickup not found: %w", err)
		}
		return nil, err
	}

	return deleted, nil
}
