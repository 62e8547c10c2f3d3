package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/pickups"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// PickupUC implements the pickups.PickupUC interface
type PickupUC struct {
	repo pickups.PickupRepo
	gw   pickups.PickupGW
}

// NewPickupUC creates a new pickup use case
func NewPickupUC(repo pickups.PickupRepo, gw pickups.PickupGW) *PickupUC {
	return &PickupUC{
		repo: repo,
		gw:   gw,
	}
}

// CreatePickup validates and stores a new pickup. The owner is always the
// authenticated caller; a userId in the body is rejected outright.
func (uc *PickupUC) CreatePickup(ctx context.Context, callerID string, req *models.CreatePickupRequest) (*models.Pickup, error) {
	if req.UserID != nil || req.UserIDSnake != nil {
		return nil, apperrors.BadRequest(apperrors.CodeUserIDNotAllowed,
			"User ID cannot be provided in request body")
	}

	if strings.TrimSpace(req.WasteType) == "" {
		return nil, apperrors.BadRequest("MISSING_WASTE_TYPE", "wasteType is required")
	}
	if strings.TrimSpace(req.PickupDate) == "" {
		return nil, apperrors.BadRequest("MISSING_PICKUP_DATE", "pickupDate is required")
	}
	if strings.TrimSpace(req.PickupTime) == "" {
		return nil, apperrors.BadRequest("MISSING_PICKUP_TIME", "pickupTime is required")
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, apperrors.BadRequest("MISSING_ADDRESS", "address is required")
	}
	if req.EstimatedWeight == nil {
		return nil, apperrors.BadRequest("MISSING_ESTIMATED_WEIGHT", "estimatedWeight is required")
	}

	wasteType := strings.TrimSpace(req.WasteType)
	if !contains(models.ValidWasteTypes, wasteType) {
		return nil, apperrors.BadRequest("INVALID_WASTE_TYPE",
			"Invalid wasteType. Must be one of: "+strings.Join(models.ValidWasteTypes, ", "))
	}

	pickupTime := strings.TrimSpace(req.PickupTime)
	if !contains(models.ValidPickupTimes, pickupTime) {
		return nil, apperrors.BadRequest("INVALID_PICKUP_TIME",
			"Invalid pickupTime. Must be one of: "+strings.Join(models.ValidPickupTimes, ", "))
	}

	if *req.EstimatedWeight <= 0 {
		return nil, apperrors.BadRequest("INVALID_ESTIMATED_WEIGHT",
			"estimatedWeight must be a positive number")
	}

	pickup := &models.Pickup{
		UserID:          callerID,
		WasteType:       wasteType,
		PickupDate:      strings.TrimSpace(req.PickupDate),
		PickupTime:      pickupTime,
		Address:         strings.TrimSpace(req.Address),
		EstimatedWeight: *req.EstimatedWeight,
		Status:          string(models.PickupStatusPending),
		CreatedAt:       models.Now(),
	}
	if req.Notes != nil {
		trimmed := strings.TrimSpace(*req.Notes)
		pickup.Notes = &trimmed
	}

	created, err := uc.repo.CreatePickup(ctx, pickup)
	if err != nil {
		return nil, err
	}

	uc.gw.PublishStatusChanged(ctx, &models.PickupStatusEvent{
		PickupID:   created.ID,
		UserID:     created.UserID,
		NewStatus:  created.Status,
		OccurredAt: models.Now(),
	})

	return created, nil
}

// GetPickup retrieves a pickup visible to the caller
func (uc *PickupUC) GetPickup(ctx context.Context, callerID string, id int64) (*models.Pickup, error) {
	pickup, err := uc.repo.GetPickupByID(ctx, id, callerID)
	if err != nil {
		return nil, mapPickupNotFound(err)
	}
	return pickup, nil
}

// ListPickups lists the caller's pickups, optionally narrowed by status and
// identity filters. The limit is clamped server-side.
func (uc *PickupUC) ListPickups(ctx context.Context, callerID string, status, userID, collectorID string, limit, offset int) ([]*models.Pickup, error) {
	if status != "" && !contains(models.ValidPickupStatuses, status) {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
			"Invalid status. Must be one of: "+strings.Join(models.ValidPickupStatuses, ", "))
	}

	filter := models.PickupListFilter{
		OwnerID:     callerID,
		Status:      status,
		UserID:      userID,
		CollectorID: collectorID,
		Limit:       clampLimit(limit, defaultListLimit, maxListLimit),
		Offset:      clampOffset(offset),
	}

	return uc.repo.ListPickups(ctx, filter)
}

// UpdatePickup applies a partial update. completedAt is auto-stamped when
// the status transitions to completed and the caller did not supply one.
func (uc *PickupUC) UpdatePickup(ctx context.Context, callerID string, id int64, req *models.UpdatePickupRequest) (*models.Pickup, error) {
	if req.UserID != nil || req.UserIDSnake != nil {
		return nil, apperrors.BadRequest(apperrors.CodeUserIDNotAllowed,
			"User ID cannot be provided in request body")
	}

	update := &models.PickupUpdate{
		CollectorID: req.CollectorID,
		CompletedAt: req.CompletedAt,
	}

	if req.Status != nil {
		if !contains(models.ValidPickupStatuses, *req.Status) {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
				"Invalid status. Must be one of: "+strings.Join(models.ValidPickupStatuses, ", "))
		}
		update.Status = req.Status

		if *req.Status == string(models.PickupStatusCompleted) && req.CompletedAt == nil {
			now := models.Now()
			update.CompletedAt = &now
		}
	}

	if req.ActualWeight != nil {
		if *req.ActualWeight <= 0 {
			return nil, apperrors.BadRequest("INVALID_ACTUAL_WEIGHT",
				"actualWeight must be a positive number")
		}
		update.ActualWeight = req.ActualWeight
	}

	if req.Notes != nil {
		trimmed := strings.TrimSpace(*req.Notes)
		update.Notes = &trimmed
	}

	if update.Empty() {
		return nil, apperrors.BadRequest(apperrors.CodeNoUpdates, "No valid fields to update")
	}

	updated, err := uc.repo.UpdatePickup(ctx, id, callerID, update)
	if err != nil {
		return nil, mapPickupNotFound(err)
	}

	if update.Status != nil {
		uc.gw.PublishStatusChanged(ctx, &models.PickupStatusEvent{
			PickupID:   updated.ID,
			UserID:     updated.UserID,
			NewStatus:  updated.Status,
			OccurredAt: models.Now(),
		})
	}

	return updated, nil
}

// DeletePickup removes a pickup owned by the caller and returns the deleted
// record
func (uc *PickupUC) DeletePickup(ctx context.Context, callerID string, id int64) (*models.Pickup, error) {
	deleted, err := uc.repo.DeletePickup(ctx, id, callerID)
	if err != nil {
		return nil, mapPickupNotFound(err)
	}
	return deleted, nil
}

func mapPickupNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound("PICKUP_NOT_FOUND", "Pickup not found")
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
