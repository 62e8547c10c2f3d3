package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// StatsRepo computes aggregate views over the resource tables
type StatsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new stats repository
func NewStatsRepo(db *sqlx.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

type systemStatsRow struct {
	TotalUsers          int     `db:"total_users"`
	TotalPickups        int     `db:"total_pickups"`
	CompletedPickups    int     `db:"completed_pickups"`
	PendingPickups      int     `db:"pending_pickups"`
	TotalWeightRecycled float64 `db:"total_weight_recycled"`
	TotalDonations      int     `db:"total_donations"`
	PendingDonations    int     `db:"pending_donations"`
	AcceptedDonations   int     `db:"accepted_donations"`
}

// GetSystemStats returns the platform-wide aggregate view. The recycled
// weight sums actual_weight over every pickup, completed or not.
func (r *StatsRepo) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM pickups) AS total_pickups,
			(SELECT COUNT(*) FROM pickups WHERE status = 'completed') AS completed_pickups,
			(SELECT COUNT(*) FROM pickups WHERE status = 'pending') AS pending_pickups,
			(SELECT COALESCE(SUM(actual_weight), 0) FROM pickups) AS total_weight_recycled,
			(SELECT COUNT(*) FROM donations) AS total_donations,
			(SELECT COUNT(*) FROM donations WHERE status = 'pending') AS pending_donations,
			(SELECT COUNT(*) FROM donations WHERE status IN ('accepted', 'picked-up', 'delivered')) AS accepted_donations`

	row := &systemStatsRow{}
	if err := r.db.GetContext(ctx, row, query); err != nil {
		return nil, err
	}

	return &models.SystemStats{
		TotalUsers:          row.TotalUsers,
		TotalPickups:        row.TotalPickups,
		CompletedPickups:    row.CompletedPickups,
		PendingPickups:      row.PendingPickups,
		TotalWeightRecycled: row.TotalWeightRecycled,
		TotalDonations:      row.TotalDonations,
		PendingDonations:    row.PendingDonations,
		AcceptedDonations:   row.AcceptedDonations,
	}, nil
}

type userStatsRow struct {
	TotalPickups        int     `db:"total_pickups"`
	CompletedPickups    int     `db:"completed_pickups"`
	TotalWeightRecycled float64 `db:"total_weight_recycled"`
	TotalDonations      int     `db:"total_donations"`
	AcceptedDonations   int     `db:"accepted_donations"`
}

// GetUserStats returns per-user pickup and donation aggregates. Only
// completed pickups with a recorded actual weight count toward the
// recycled total.
func (r *StatsRepo) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	pickupQuery := `
		SELECT
			COUNT(*) AS total_pickups,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_pickups,
			COALESCE(SUM(CASE WHEN status = 'completed' AND actual_weight IS NOT NULL THEN actual_weight ELSE 0 END), 0) AS total_weight_recycled
		FROM pickups WHERE user_id = $1`

	pickupRow := struct {
		TotalPickups        int     `db:"total_pickups"`
		CompletedPickups    int     `db:"completed_pickups"`
		TotalWeightRecycled float64 `db:"total_weight_recycled"`
	}{}
	if err := r.db.GetContext(ctx, &pickupRow, pickupQuery, userID); err != nil {
		return nil, err
	}

	donationQuery := `
		SELECT
			COUNT(*) AS total_donations,
			COALESCE(SUM(CASE WHEN status IN ('accepted', 'picked-up', 'delivered') THEN 1 ELSE 0 END), 0) AS accepted_donations
		FROM donations WHERE user_id = $1`

	donationRow := struct {
		TotalDonations    int `db:"total_donations"`
		AcceptedDonations int `db:"accepted_donations"`
	}{}
	if err := r.db.GetContext(ctx, &donationRow, donationQuery, userID); err != nil {
		return nil, err
	}

	return &models.UserStats{
		TotalPickups:        pickupRow.TotalPickups,
		CompletedPickups:    pickupRow.CompletedPickups,
		TotalWeightRecycled: pickupRow.TotalWeightRecycled,
		TotalDonations:      donationRow.TotalDonations,
		AcceptedDonations:   donationRow.AcceptedDonations,
	}, nil
}

type collectorStatsRow struct {
	RoutesCompleted  int     `db:"routes_completed"`
	ActiveRoutes     int     `db:"active_routes"`
	TotalRoutes      int     `db:"total_routes"`
	DistanceTraveled float64 `db:"distance_traveled"`
}

// GetCollectorStats returns per-collector route and pickup aggregates.
// Distance counts completed routes only.
func (r *StatsRepo) GetCollectorStats(ctx context.Context, collectorID string) (*models.CollectorStats, error) {
	routeQuery := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS routes_completed,
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active_routes,
			COUNT(*) AS total_routes,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN total_distance ELSE 0 END), 0) AS distance_traveled
		FROM routes WHERE collector_id = $1`

	routeRow := &collectorStatsRow{}
	if err := r.db.GetContext(ctx, routeRow, routeQuery, collectorID); err != nil {
		return nil, err
	}

	pickupQuery := `SELECT COUNT(*) FROM pickups WHERE collector_id = $1 AND status = 'completed'`

	var pickupsCompleted int
	if err := r.db.GetContext(ctx, &pickupsCompleted, pickupQuery, collectorID); err != nil {
		return nil, err
	}

	return &models.CollectorStats{
		RoutesCompleted:  routeRow.RoutesCompleted,
		ActiveRoutes:     routeRow.ActiveRoutes,
		TotalRoutes:      routeRow.TotalRoutes,
		PickupsCompleted: pickupsCompleted,
		DistanceTraveled: routeRow.DistanceTraveled,
	}, nil
}
