package pickups

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// PickupGW publishes pickup domain events. Publishing is fire-and-forget;
// failures are logged by implementations and never fail the request.
type PickupGW interface {
	PublishStatusChanged(ctx context.Context, event *models.PickupStatusEvent)
}
