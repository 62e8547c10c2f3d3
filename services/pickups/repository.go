package pickups

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// PickupRepo defines the pickup persistence operations. Mutations are
// single conditional statements scoped to the owning user, so a concurrent
// delete surfaces as not-found instead of a silent no-op.
type PickupRepo interface {
	CreatePickup(ctx context.Context, pickup *models.Pickup) (*models.Pickup, error)
	GetPickupByID(ctx context.Context, id int64, ownerID string) (*models.Pickup, error)
	ListPickups(ctx context.Context, filter models.PickupListFilter) ([]*models.Pickup, error)
	UpdatePickup(ctx context.Context, id int64, ownerID string, update *models.PickupUpdate) (*models.Pickup, error)
	DeletePickup(ctx context.Context, id int64, ownerID string) (*models.Pickup, error)
}
