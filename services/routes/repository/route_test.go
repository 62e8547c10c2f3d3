package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

var routeTestColumns = []string{
	"id", "name", "collector_id", "status", "total_distance", "total_pickups",
	"start_time", "end_time", "created_at",
}

var stopTestColumns = []string{
	"id", "route_id", "pickup_id", "stop_order", "address", "waste_type", "status",
	"arrival_time", "departure_time",
}

func setupRouteRepoTest(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock, func() { sqlxDB.Close() }
}

func TestListRoutes_NewestFirst(t *testing.T) {
	db, mock, cleanup := setupRouteRepoTest(t)
	defer cleanup()
	repo := NewRouteRepo(db)

	rows := sqlmock.NewRows(routeTestColumns).
		AddRow(2, "Tuesday Loop", "col-9", "planned", 10.0, 4, nil, nil, time.Now()).
		AddRow(1, "Monday Loop", "col-9", "completed", 14.2, 6, nil, nil, time.Now().Add(-24*time.Hour))

	mock.ExpectQuery("^SELECT (.+) FROM routes WHERE collector_id = \\$1 ORDER BY created_at DESC LIMIT \\$2 OFFSET \\$3").
		WithArgs("col-9", 50, 0).
		WillReturnRows(rows)

	routes, err := repo.ListRoutes(context.Background(), models.RouteListFilter{
		CollectorID: "col-9",
		Limit:       50,
	})

	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, int64(2), routes[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRoutes_NoFilters(t *testing.T) {
	db, mock, cleanup := setupRouteRepoTest(t)
	defer cleanup()
	repo := NewRouteRepo(db)

	mock.ExpectQuery("^SELECT (.+) FROM routes ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows(routeTestColumns))

	routes, err := repo.ListRoutes(context.Background(), models.RouteListFilter{Limit: 50})

	require.NoError(t, err)
	assert.Empty(t, routes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRoute_ZeroRowsIsNotFound(t *testing.T) {
	db, mock, cleanup := setupRouteRepoTest(t)
	defer cleanup()
	repo := NewRouteRepo(db)

	status := "active"
	mock.ExpectQuery("^UPDATE routes SET status = \\$1 WHERE id = \\$2 RETURNING").
		WithArgs(status, int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateRoute(context.Background(), 99, &models.RouteUpdate{Status: &status})

	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestListStopsByRoute_OrderedByStopOrder(t *testing.T) {
	db, mock, cleanup := setupRouteRepoTest(t)
	defer cleanup()
	repo := NewRouteStopRepo(db)

	rows := sqlmock.NewRows(stopTestColumns).
		AddRow(10, 2, 7, 1, "12 Recycle Lane", "plastic", "pending", nil, nil).
		AddRow(11, 2, 8, 2, "33 Green Way", "glass", "pending", nil, nil)

	mock.ExpectQuery("^SELECT (.+) FROM route_stops WHERE route_id = \\$1 ORDER BY stop_order ASC").
		WithArgs(int64(2)).
		WillReturnRows(rows)

	stops, err := repo.ListStopsByRoute(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, stops, 2)
	assert.Equal(t, 1, stops[0].StopOrder)
	assert.Equal(t, 2, stops[1].StopOrder)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStop_DefaultsPending(t *testing.T) {
	db, mock, cleanup := setupRouteRepoTest(t)
	defer cleanup()
	repo := NewRouteStopRepo(db)

	mock.ExpectQuery("^INSERT INTO route_stops").
		WithArgs(int64(2), int64(7), 3, "12 Recycle Lane", "plastic", "pending").
		WillReturnRows(sqlmock.NewRows(stopTestColumns).
			AddRow(12, 2, 7, 3, "12 Recycle Lane", "plastic", "pending", nil, nil))

	created, err := repo.CreateStop(context.Background(), &models.RouteStop{
		RouteID:   2,
		PickupID:  7,
		StopOrder: 3,
		Address:   "12 Recycle Lane",
		WasteType: "plastic",
		Status:    "pending",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
