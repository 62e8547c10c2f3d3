package stats

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// StatsRepo defines the read-only aggregate queries. All values are
// derived from the resource tables; nothing here mutates state.
type StatsRepo interface {
	GetSystemStats(ctx context.Context) (*models.SystemStats, error)
	GetUserStats(ctx context.Context, userID string) (*models.UserStats, error)
	GetCollectorStats(ctx context.Context, collectorID string) (*models.CollectorStats, error)
}
