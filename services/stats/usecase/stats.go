package usecase

import (
	"context"
	"strings"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/internal/utils"
	"github.com/greencycle/greencycle/services/stats"
)

// StatsUC implements the stats.StatsUC interface
type StatsUC struct {
	repo     stats.StatsRepo
	co2PerKg float64
}

// NewStatsUC creates a new stats use case. co2PerKg is the linear
// estimate applied to the recycled weight.
func NewStatsUC(repo stats.StatsRepo, statsCfg models.StatsConfig) *StatsUC {
	return &StatsUC{
		repo:     repo,
		co2PerKg: statsCfg.CO2PerKg,
	}
}

// GetSystemStats returns the platform-wide aggregates
func (uc *StatsUC) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	systemStats, err := uc.repo.GetSystemStats(ctx)
	if err != nil {
		return nil, err
	}

	systemStats.TotalWeightRecycled = utils.Round2(systemStats.TotalWeightRecycled)
	return systemStats, nil
}

// GetUserStats returns per-user aggregates plus the derived CO2 estimate
func (uc *StatsUC) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.BadRequest("MISSING_USER_ID", "User ID is required")
	}

	userStats, err := uc.repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	userStats.TotalWeightRecycled = utils.Round2(userStats.TotalWeightRecycled)
	userStats.CO2Saved = utils.Round2(userStats.TotalWeightRecycled * uc.co2PerKg)
	return userStats, nil
}

// GetCollectorStats returns per-collector aggregates
func (uc *StatsUC) GetCollectorStats(ctx context.Context, collectorID string) (*models.CollectorStats, error) {
	if strings.TrimSpace(collectorID) == "" {
		return nil, apperrors.BadRequest("MISSING_COLLECTOR_ID", "Collector ID is required")
	}

	collectorStats, err := uc.repo.GetCollectorStats(ctx, collectorID)
	if err != nil {
		return nil, err
	}

	collectorStats.DistanceTraveled = utils.Round2(collectorStats.DistanceTraveled)
	return collectorStats, nil
}
