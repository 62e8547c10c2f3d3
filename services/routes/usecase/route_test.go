package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/routes/mocks"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func validRouteRequest() *models.CreateRouteRequest {
	return &models.CreateRouteRequest{
		Name:          "Monday North Loop",
		CollectorID:   "col-9",
		TotalDistance: floatPtr(14.2),
		TotalPickups:  intPtr(6),
	}
}

func TestCreateRoute_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteRepo := mocks.NewMockRouteRepo(ctrl)
	mockStopRepo := mocks.NewMockRouteStopRepo(ctrl)

	mockRouteRepo.EXPECT().
		CreateRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, route *models.Route) (*models.Route, error) {
			assert.Equal(t, "planned", route.Status)
			assert.Equal(t, "col-9", route.CollectorID)
			route.ID = 2
			return route, nil
		})

	uc := NewRouteUC(mockRouteRepo, mockStopRepo)

	// Act
	created, err := uc.CreateRoute(context.Background(), validRouteRequest())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
}

func TestCreateRoute_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(mocks.NewMockRouteRepo(ctrl), mocks.NewMockRouteStopRepo(ctrl))

	tests := []struct {
		name     string
		mutate   func(r *models.CreateRouteRequest)
		wantCode string
	}{
		{"body user id", func(r *models.CreateRouteRequest) { r.UserID = strPtr("x") }, apperrors.CodeUserIDNotAllowed},
		{"no name", func(r *models.CreateRouteRequest) { r.Name = " " }, "MISSING_NAME"},
		{"no collector", func(r *models.CreateRouteRequest) { r.CollectorID = "" }, "MISSING_COLLECTOR_ID"},
		{"no distance", func(r *models.CreateRouteRequest) { r.TotalDistance = nil }, "MISSING_TOTAL_DISTANCE"},
		{"no pickups", func(r *models.CreateRouteRequest) { r.TotalPickups = nil }, "MISSING_TOTAL_PICKUPS"},
		{"negative distance", func(r *models.CreateRouteRequest) { r.TotalDistance = floatPtr(-1) }, "INVALID_TOTAL_DISTANCE"},
		{"negative pickups", func(r *models.CreateRouteRequest) { r.TotalPickups = intPtr(-2) }, "INVALID_TOTAL_PICKUPS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRouteRequest()
			tt.mutate(req)

			_, err := uc.CreateRoute(context.Background(), req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.From(err).Code)
		})
	}
}

func TestCreateRoute_ZeroTotalsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteRepo := mocks.NewMockRouteRepo(ctrl)
	mockRouteRepo.EXPECT().
		CreateRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, route *models.Route) (*models.Route, error) {
			return route, nil
		})

	uc := NewRouteUC(mockRouteRepo, mocks.NewMockRouteStopRepo(ctrl))

	req := validRouteRequest()
	req.TotalDistance = floatPtr(0)
	req.TotalPickups = intPtr(0)

	_, err := uc.CreateRoute(context.Background(), req)
	assert.NoError(t, err)
}

func TestGetRoute_InlinesOrderedStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteRepo := mocks.NewMockRouteRepo(ctrl)
	mockStopRepo := mocks.NewMockRouteStopRepo(ctrl)

	mockRouteRepo.EXPECT().
		GetRouteByID(gomock.Any(), int64(2)).
		Return(&models.Route{ID: 2, Name: "Monday North Loop", CollectorID: "col-9"}, nil)
	mockStopRepo.EXPECT().
		ListStopsByRoute(gomock.Any(), int64(2)).
		Return([]*models.RouteStop{
			{ID: 10, RouteID: 2, StopOrder: 1},
			{ID: 11, RouteID: 2, StopOrder: 2},
		}, nil)

	uc := NewRouteUC(mockRouteRepo, mockStopRepo)

	route, err := uc.GetRoute(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, route.Stops, 2)
	assert.Equal(t, 1, route.Stops[0].StopOrder)
	assert.Equal(t, 2, route.Stops[1].StopOrder)
}

func TestGetRoute_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRouteRepo := mocks.NewMockRouteRepo(ctrl)
	mockRouteRepo.EXPECT().
		GetRouteByID(gomock.Any(), int64(99)).
		Return(nil, sql.ErrNoRows)

	uc := NewRouteUC(mockRouteRepo, mocks.NewMockRouteStopRepo(ctrl))

	_, err := uc.GetRoute(context.Background(), 99)

	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "ROUTE_NOT_FOUND", appErr.Code)
}

func TestUpdateRoute_RejectsCollectorChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(mocks.NewMockRouteRepo(ctrl), mocks.NewMockRouteStopRepo(ctrl))

	_, err := uc.UpdateRoute(context.Background(), 2, &models.UpdateRouteRequest{
		CollectorID: strPtr("col-other"),
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUserIDNotAllowed, apperrors.From(err).Code)
}

func TestUpdateRoute_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(mocks.NewMockRouteRepo(ctrl), mocks.NewMockRouteStopRepo(ctrl))

	_, err := uc.UpdateRoute(context.Background(), 2, &models.UpdateRouteRequest{
		Status: strPtr("paused"),
	})

	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	assert.Contains(t, appErr.Message, "planned, active, completed")
}

func TestUpdateRoute_NoFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(mocks.NewMockRouteRepo(ctrl), mocks.NewMockRouteStopRepo(ctrl))

	_, err := uc.UpdateRoute(context.Background(), 2, &models.UpdateRouteRequest{})

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNoUpdates, apperrors.From(err).Code)
}

func TestCreateStop_CoercesStringNumbers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStopRepo := mocks.NewMockRouteStopRepo(ctrl)
	mockStopRepo.EXPECT().
		CreateStop(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, stop *models.RouteStop) (*models.RouteStop, error) {
			assert.Equal(t, int64(2), stop.RouteID)
			assert.Equal(t, int64(7), stop.PickupID)
			assert.Equal(t, 3, stop.StopOrder)
			assert.Equal(t, "pending", stop.Status)
			return stop, nil
		})

	uc := NewRouteUC(mocks.NewMockRouteRepo(ctrl), mockStopRepo)

	_, err := uc.CreateStop(context.Background(), &models.CreateRouteStopRequest{
		RouteID:   json.Number("2"),
		PickupID:  json.Number("7"),
		StopOrder: json.Number("3"),
		Address:   "12 Recycle Lane",
		WasteType: "plastic",
	})

	assert.NoError(t, err)
}

func TestCreateStop_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(mocks.NewMockRouteRepo(ctrl), mocks.NewMockRouteStopRepo(ctrl))

	tests := []struct {
		name     string
		req      *models.CreateRouteStopRequest
		wantCode string
	}{
		{
			"missing route id",
			&models.CreateRouteStopRequest{PickupID: "7", StopOrder: "1", Address: "a", WasteType: "plastic"},
			"MISSING_ROUTE_ID",
		},
		{
			"malformed route id",
			&models.CreateRouteStopRequest{RouteID: "two", PickupID: "7", StopOrder: "1", Address: "a", WasteType: "plastic"},
			"INVALID_ROUTE_ID",
		},
		{
			"missing pickup id",
			&models.CreateRouteStopRequest{RouteID: "2", StopOrder: "1", Address: "a", WasteType: "plastic"},
			"MISSING_PICKUP_ID",
		},
		{
			"missing stop order",
			&models.CreateRouteStopRequest{RouteID: "2", PickupID: "7", Address: "a", WasteType: "plastic"},
			"MISSING_STOP_ORDER",
		},
		{
			"missing address",
			&models.CreateRouteStopRequest{RouteID: "2", PickupID: "7", StopOrder: "1", WasteType: "plastic"},
			"MISSING_ADDRESS",
		},
		{
			"missing waste type",
			&models.CreateRouteStopRequest{RouteID: "2", PickupID: "7", StopOrder: "1", Address: "a"},
			"MISSING_WASTE_TYPE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateStop(context.Background(), tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.From(err).Code)
		})
	}
}

func TestUpdateStop_NoFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(mocks.NewMockRouteRepo(ctrl), mocks.NewMockRouteStopRepo(ctrl))

	_, err := uc.UpdateStop(context.Background(), 10, &models.UpdateRouteStopRequest{})

	require.Error(t, err)
	assert.Equal(t, "NO_UPDATE_FIELDS", apperrors.From(err).Code)
}

func TestUpdateStop_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStopRepo := mocks.NewMockRouteStopRepo(ctrl)
	mockStopRepo.EXPECT().
		UpdateStop(gomock.Any(), int64(10), gomock.Any()).
		Return(nil, sql.ErrNoRows)

	uc := NewRouteUC(mocks.NewMockRouteRepo(ctrl), mockStopRepo)

	_, err := uc.UpdateStop(context.Background(), 10, &models.UpdateRouteStopRequest{
		Status: strPtr("in-progress"),
	})

	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "STOP_NOT_FOUND", appErr.Code)
}

func TestUpdateStop_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRouteUC(mocks.NewMockRouteRepo(ctrl), mocks.NewMockRouteStopRepo(ctrl))

	_, err := uc.UpdateStop(context.Background(), 10, &models.UpdateRouteStopRequest{
		Status: strPtr("detoured"),
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidStatus, apperrors.From(err).Code)
}
