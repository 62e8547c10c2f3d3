package tracking

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// TrackingGW publishes collector movement events. Publishing is
// fire-and-forget; failures never fail the request.
type TrackingGW interface {
	PublishLocationUpdated(ctx context.Context, event *models.LocationEvent)
}
