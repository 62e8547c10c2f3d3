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

const donationColumns = `id, user_id, ngo_id, item_type, item_name, condition, quantity,
	description, pickup_address, contact_number, status, created_at, updated_at`

// DonationRepo persists donations in PostgreSQL
type DonationRepo struct {
	db *sqlx.DB
}

// NewDonationRepo creates a new donation repository
func NewDonationRepo(db *sqlx.DB) *DonationRepo {
	return &DonationRepo{db: db}
}

// CreateDonation inserts a new donation and returns the stored record
func (r *DonationRepo) CreateDonation(ctx context.Context, donation *models.Donation) (*models.Donation, error) {
	query := `
		INSERT INTO donations (user_id, ngo_id, item_type, item_name, condition, quantity,
			description, pickup_address, contact_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + donationColumns

	created := &models.Donation{}
	err := r.db.GetContext(
		ctx,
		created,
		query,
		donation.UserID,
		donation.NgoID,
		donation.ItemType,
		donation.ItemName,
		donation.Condition,
		donation.Quantity,
		donation.Description,
		donation.PickupAddress,
		donation.ContactNumber,
		donation.Status,
		donation.CreatedAt,
		donation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetDonationByID retrieves a donation visible to the owner
func (r *DonationRepo) GetDonationByID(ctx context.Context, id int64, ownerID string) (*models.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1 AND user_id = $2`

	donation := &models.Donation{}
	err := r.db.GetContext(ctx, donation, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("donation not found: %w", err)
		}
		return nil, err
	}

	return donation, nil
}

// ListDonations lists donations matching the filter, always scoped to the
// owner as a base condition
func (r *DonationRepo) ListDonations(ctx context.Context, filter models.DonationListFilter) ([]*models.Donation, error) {
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
	if filter.NgoID != "" {
		args = append(args, filter.NgoID)
		conditions = append(conditions, fmt.Sprintf("ngo_id = $%d", len(args)))
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(
		`SELECT %s FROM donations WHERE %s LIMIT $%d OFFSET $%d`,
		donationColumns,
		strings.Join(conditions, " AND "),
		limitPos,
		offsetPos,
	)

	donations := []*models.Donation{}
	if err := r.db.SelectContext(ctx, &donations, query, args...); err != nil {
		return nil, err
	}

	return donations, nil
}

// UpdateDonation mutates the provided fields and bumps updated_at in a
// single conditional statement. An empty NgoID clears the assignment.
func (r *DonationRepo) UpdateDonation(ctx context.Context, id int64, ownerID string, update *models.DonationUpdate) (*models.Donation, error) {
	setParts := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Status != nil {
		addSet("status", *update.Status)
	}
	if update.NgoID != nil {
		if *update.NgoID == "" {
			setParts = append(setParts, "ngo_id = NULL")
		} else {
			addSet("ngo_id", *update.NgoID)
		}
	}
	addSet("updated_at", update.UpdatedAt)

	args = append(args, id)
	idPos := len(args)
	args = append(args, ownerID)
	ownerPos := len(args)

	query := fmt.Sprintf(
		`UPDATE donations SET %s WHERE id = $%d AND user_id = $%d RETURNING %s`,
		strings.Join(setParts, ", "),
		idPos,
		ownerPos,
		donationColumns,
	)

	updated := &models.Donation{}
	err := r.db.GetContext(ctx, updated, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("donation not found: %w", err)
		}
		return nil, err
	}

	return updated, nil
}

// DeleteDonation removes a donation owned by the caller and returns the
// deleted record
func (r *DonationRepo) DeleteDonation(ctx context.Context, id int64, ownerID string) (*models.Donation, error) {
	query := `DELETE FROM donations WHERE id = $1 AND user_id = $2 RETURNING ` + donationColumns

	deleted := &models.Donation{}
	err := r.db.GetContext(ctx, deleted, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("donation not found: %w", err)
		}
		return nil, err
	}

	return deleted, nil
}
