package tracking

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// TrackingRepo defines the collector position log operations. The log is
// append-only apart from explicit row deletion.
type TrackingRepo interface {
	RecordLocation(ctx context.Context, location *models.TrackingLocation) (*models.TrackingLocation, error)
	GetCurrentLocation(ctx context.Context, collectorID string) (*models.TrackingLocation, error)
	ListHistory(ctx context.Context, filter models.TrackingHistoryFilter) ([]*models.TrackingLocation, error)
	DeleteLocation(ctx context.Context, id int64) (*models.TrackingLocation, error)
}

// LocationCache caches the latest position per collector so current-location
// reads skip the database on the hot path
type LocationCache interface {
	StoreCurrentLocation(ctx context.Context, location *models.TrackingLocation) error
	GetCurrentLocation(ctx context.Context, collectorID string) (*models.TrackingLocation, error)
}
