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

var pickupTestColumns = []string{
	"id", "user_id", "waste_type", "pickup_date", "pickup_time", "address",
	"estimated_weight", "actual_weight", "notes", "status", "collector_id",
	"created_at", "completed_at",
}

func setupPickupRepoTest(t *testing.T) (*PickupRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewPickupRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func pickupRow(id int64, userID, status string) *sqlmock.Rows {
	return sqlmock.NewRows(pickupTestColumns).
		AddRow(id, userID, "plastic", "2026-09-01", "morning", "12 Recycle Lane",
			4.5, nil, nil, status, nil, time.Now(), nil)
}

func TestCreatePickup_Insert(t *testing.T) {
	repo, mock, cleanup := setupPickupRepoTest(t)
	defer cleanup()

	pickup := &models.Pickup{
		UserID:          "user-1",
		WasteType:       "plastic",
		PickupDate:      "2026-09-01",
		PickupTime:      "morning",
		Address:         "12 Recycle Lane",
		EstimatedWeight: 4.5,
		Status:          "pending",
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectQuery("^INSERT INTO pickups").
		WithArgs(pickup.UserID, pickup.WasteType, pickup.PickupDate, pickup.PickupTime,
			pickup.Address, pickup.EstimatedWeight, pickup.Notes, pickup.Status, pickup.CreatedAt).
		WillReturnRows(pickupRow(7, "user-1", "pending"))

	created, err := repo.CreatePickup(context.Background(), pickup)

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "pending", created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPickupByID_ScopedToOwner(t *testing.T) {
	repo, mock, cleanup := setupPickupRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM pickups WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(5), "user-1").
		WillReturnRows(pickupRow(5, "user-1", "assigned"))

	pickup, err := repo.GetPickupByID(context.Background(), 5, "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(5), pickup.ID)
	assert.Equal(t, "user-1", pickup.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPickupByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupPickupRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM pickups WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(99), "user-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPickupByID(context.Background(), 99, "user-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestListPickups_AppliesFilters(t *testing.T) {
	repo, mock, cleanup := setupPickupRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(pickupTestColumns).
		AddRow(1, "user-1", "plastic", "2026-09-01", "morning", "12 Recycle Lane",
			4.5, nil, nil, "pending", nil, time.Now(), nil).
		AddRow(2, "user-1", "glass", "2026-09-02", "evening", "33 Green Way",
			2.0, nil, nil, "pending", nil, time.Now(), nil)

	mock.ExpectQuery("^SELECT (.+) FROM pickups WHERE user_id = \\$1 AND status = \\$2 LIMIT \\$3 OFFSET \\$4").
		WithArgs("user-1", "pending", 50, 0).
		WillReturnRows(rows)

	result, err := repo.ListPickups(context.Background(), models.PickupListFilter{
		OwnerID: "user-1",
		Status:  "pending",
		Limit:   50,
		Offset:  0,
	})

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPickups_OwnerOnly(t *testing.T) {
	repo, mock, cleanup := setupPickupRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM pickups WHERE user_id = \\$1 LIMIT \\$2 OFFSET \\$3").
		WithArgs("user-1", 50, 0).
		WillReturnRows(sqlmock.NewRows(pickupTestColumns))

	result, err := repo.ListPickups(context.Background(), models.PickupListFilter{
		OwnerID: "user-1",
		Limit:   50,
	})

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePickup_ConditionalStatement(t *testing.T) {
	repo, mock, cleanup := setupPickupRepoTest(t)
	defer cleanup()

	status := "assigned"
	collectorID := "col-9"

	mock.ExpectQuery("^UPDATE pickups SET status = \\$1, collector_id = \\$2 WHERE id = \\$3 AND user_id = \\$4 RETURNING").
		WithArgs(status, collectorID, int64(5), "user-1").
		WillReturnRows(pickupRow(5, "user-1", status))

	updated, err := repo.UpdatePickup(context.Background(), 5, "user-1", &models.PickupUpdate{
		Status:      &status,
		CollectorID: &collectorID,
	})

	require.NoError(t, err)
	assert.Equal(t, status, updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePickup_ZeroRowsIsNotFound(t *testing.T) {
	repo, mock, cleanup := setupPickupRepoTest(t)
	defer cleanup()

	status := "cancelled"
	mock.ExpectQuery("^UPDATE pickups SET status = \\$1 WHERE id = \\$2 AND user_id = \\$3 RETURNING").
		WithArgs(status, int64(5), "intruder").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdatePickup(context.Background(), 5, "intruder", &models.PickupUpdate{
		Status: &status,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestDeletePickup_ReturnsDeletedRecord(t *testing.T) {
	repo, mock, cleanup := setupPickupRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^DELETE FROM pickups WHERE id = \\$1 AND user_id = \\$2 RETURNING").
		WithArgs(int64(3), "user-1").
		WillReturnRows(pickupRow(3, "user-1", "pending"))

	deleted, err := repo.DeletePickup(context.Background(), 3, "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePickup_NotOwned(t *testing.T) {
	repo, mock, cleanup := setupPickupRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^DELETE FROM pickups WHERE id = \\$1 AND user_id = \\$2 RETURNING").
		WithArgs(int64(3), "intruder").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.DeletePickup(context.Background(), 3, "intruder")

	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
