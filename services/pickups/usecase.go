package pickups

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// PickupUC defines the pickup service use case operations
type PickupUC interface {
	CreatePickup(ctx context.Context, callerID string, req *models.CreatePickupRequest) (*models.Pickup, error)
	GetPickup(ctx context.Context, callerID string, id int64) (*models.Pickup, error)
	ListPickups(ctx context.Context, callerID string, status, userID, collectorID string, limit, offset int) ([]*models.Pickup, error)
	UpdatePickup(ctx context.Context, callerID string, id int64, req *models.UpdatePickupRequest) (*models.Pickup, error)
	DeletePickup(ctx context.Context, callerID string, id int64) (*models.Pickup, error)
}
