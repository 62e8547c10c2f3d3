package stats

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// StatsUC defines the stats service use case operations
type StatsUC interface {
	GetSystemStats(ctx context.Context) (*models.SystemStats, error)
	GetUserStats(ctx context.Context, userID string) (*models.UserStats, error)
	GetCollectorStats(ctx context.Context, collectorID string) (*models.CollectorStats, error)
}
