package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/donations"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// DonationUC implements the donations.DonationUC interface
type DonationUC struct {
	repo donations.DonationRepo
}

// NewDonationUC creates a new donation use case
func NewDonationUC(repo donations.DonationRepo) *DonationUC {
	return &DonationUC{repo: repo}
}

// CreateDonation validates and stores a new donation offer
func (uc *DonationUC) CreateDonation(ctx context.Context, callerID string, req *models.CreateDonationRequest) (*models.Donation, error) {
	if req.UserID != nil || req.UserIDSnake != nil {
		return nil, apperrors.BadRequest(apperrors.CodeUserIDNotAllowed,
			"User ID cannot be provided in request body")
	}

	required := []struct {
		name  string
		value string
	}{
		{"itemType", req.ItemType},
		{"itemName", req.ItemName},
		{"condition", req.Condition},
		{"description", req.Description},
		{"pickupAddress", req.PickupAddress},
		{"contactNumber", req.ContactNumber},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return nil, apperrors.BadRequest(apperrors.CodeMissingField, field.name+" is required")
		}
	}
	if req.Quantity == nil {
		return nil, apperrors.BadRequest(apperrors.CodeMissingField, "quantity is required")
	}

	itemType := strings.TrimSpace(req.ItemType)
	if !contains(models.ValidItemTypes, itemType) {
		return nil, apperrors.BadRequest("INVALID_ITEM_TYPE",
			"Invalid item type. Must be one of: "+strings.Join(models.ValidItemTypes, ", "))
	}

	condition := strings.TrimSpace(req.Condition)
	if !contains(models.ValidConditions, condition) {
		return nil, apperrors.BadRequest("INVALID_CONDITION",
			"Invalid condition. Must be one of: "+strings.Join(models.ValidConditions, ", "))
	}

	if *req.Quantity <= 0 {
		return nil, apperrors.BadRequest("INVALID_QUANTITY", "Quantity must be a positive number")
	}

	now := models.Now()
	donation := &models.Donation{
		UserID:        callerID,
		ItemType:      itemType,
		ItemName:      strings.TrimSpace(req.ItemName),
		Condition:     condition,
		Quantity:      *req.Quantity,
		Description:   strings.TrimSpace(req.Description),
		PickupAddress: strings.TrimSpace(req.PickupAddress),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Status:        string(models.DonationStatusPending),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.NgoID != nil {
		if trimmed := strings.TrimSpace(*req.NgoID); trimmed != "" {
			donation.NgoID = &trimmed
		}
	}

	return uc.repo.CreateDonation(ctx, donation)
}

// GetDonation retrieves a donation visible to the caller
func (uc *DonationUC) GetDonation(ctx context.Context, callerID string, id int64) (*models.Donation, error) {
	donation, err := uc.repo.GetDonationByID(ctx, id, callerID)
	if err != nil {
		return nil, mapDonationNotFound(err)
	}
	return donation, nil
}

// ListDonations lists the caller's donations with optional filters
func (uc *DonationUC) ListDonations(ctx context.Context, callerID string, status, userID, ngoID string, limit, offset int) ([]*models.Donation, error) {
	if status != "" && !contains(models.ValidDonationStatuses, status) {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
			"Invalid status. Must be one of: "+strings.Join(models.ValidDonationStatuses, ", "))
	}

	filter := models.DonationListFilter{
		OwnerID: callerID,
		Status:  status,
		UserID:  userID,
		NgoID:   ngoID,
		Limit:   clampLimit(limit, defaultListLimit, maxListLimit),
		Offset:  clampOffset(offset),
	}

	return uc.repo.ListDonations(ctx, filter)
}

// UpdateDonation applies a partial update. Only status and ngoId are
// mutable; updated_at is bumped on every change.
func (uc *DonationUC) UpdateDonation(ctx context.Context, callerID string, id int64, req *models.UpdateDonationRequest) (*models.Donation, error) {
	if req.UserID != nil || req.UserIDSnake != nil {
		return nil, apperrors.BadRequest(apperrors.CodeUserIDNotAllowed,
			"User ID cannot be provided in request body")
	}

	update := &models.DonationUpdate{UpdatedAt: models.Now()}

	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if !contains(models.ValidDonationStatuses, status) {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
				"Invalid status. Must be one of: "+strings.Join(models.ValidDonationStatuses, ", "))
		}
		update.Status = &status
	}

	if req.NgoID != nil {
		trimmed := strings.TrimSpace(*req.NgoID)
		update.NgoID = &trimmed
	}

	if update.Empty() {
		return nil, apperrors.BadRequest(apperrors.CodeNoUpdates, "No valid fields to update")
	}

	updated, err := uc.repo.UpdateDonation(ctx, id, callerID, update)
	if err != nil {
		return nil, mapDonationNotFound(err)
	}

	return updated, nil
}

// DeleteDonation removes a donation owned by the caller and returns the
// deleted record
func (uc *DonationUC) DeleteDonation(ctx context.Context, callerID string, id int64) (*models.Donation, error) {
	deleted, err := uc.repo.DeleteDonation(ctx, id, callerID)
	if err != nil {
		return nil, mapDonationNotFound(err)
	}
	return deleted, nil
}

func mapDonationNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(apperrors.CodeNotFound, "Donation not found")
	}
	return err
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

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
