package tracking

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// TrackingUC defines the tracking service use case operations
type TrackingUC interface {
	RecordLocation(ctx context.Context, req *models.RecordLocationRequest) (*models.TrackingLocation, error)
	GetCurrentLocation(ctx context.Context, collectorID string) (*models.TrackingLocation, error)
	GetHistory(ctx context.Context, filter models.TrackingHistoryFilter) ([]*models.TrackingLocation, error)
	DeleteLocation(ctx context.Context, id int64) (*models.TrackingLocation, error)
}
