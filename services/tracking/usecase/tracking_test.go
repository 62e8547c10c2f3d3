package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/internal/utils"
	"github.com/greencycle/greencycle/services/tracking/mocks"
)

func floatPtr(v float64) *float64 {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestRecordLocation_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	mockCache := mocks.NewMockLocationCache(ctrl)
	mockGW := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(mockRepo, mockCache, mockGW)

	before := time.Now().UTC()

	mockRepo.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, location *models.TrackingLocation) (*models.TrackingLocation, error) {
			assert.Equal(t, "collector-1", location.CollectorID)
			assert.Equal(t, -6.2088, location.Latitude)
			assert.Equal(t, 106.8456, location.Longitude)
			assert.Equal(t, utils.EncodeLocation(-6.2088, 106.8456), location.Geohash)
			assert.False(t, location.Timestamp.Before(before), "timestamp must be stamped by the server")
			created := *location
			created.ID = 11
			return &created, nil
		})
	mockCache.EXPECT().StoreCurrentLocation(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any())

	// Act
	created, err := uc.RecordLocation(context.Background(), &models.RecordLocationRequest{
		CollectorID: "collector-1",
		RouteID:     int64Ptr(3),
		Latitude:    floatPtr(-6.2088),
		Longitude:   floatPtr(106.8456),
		Speed:       floatPtr(32.5),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
}

func TestRecordLocation_AcceptsBoundaryCoordinates(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"north pole", 90, 0},
		{"south pole", -90, 0},
		{"date line east", 0, 180},
		{"date line west", 0, -180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockTrackingRepo(ctrl)
			mockGW := mocks.NewMockTrackingGW(ctrl)
			uc := NewTrackingUC(mockRepo, nil, mockGW)

			mockRepo.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, location *models.TrackingLocation) (*models.TrackingLocation, error) {
					return location, nil
				})
			mockGW.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any())

			_, err := uc.RecordLocation(context.Background(), &models.RecordLocationRequest{
				CollectorID: "collector-1",
				Latitude:    floatPtr(tt.lat),
				Longitude:   floatPtr(tt.lon),
			})

			require.NoError(t, err)
		})
	}
}

func TestRecordLocation_Validation(t *testing.T) {
	tests := []struct {
		name         string
		req          *models.RecordLocationRequest
		expectedCode string
	}{
		{
			name:         "missing collector id",
			req:          &models.RecordLocationRequest{Latitude: floatPtr(1), Longitude: floatPtr(1)},
			expectedCode: "MISSING_COLLECTOR_ID",
		},
		{
			name:         "missing latitude",
			req:          &models.RecordLocationRequest{CollectorID: "collector-1", Longitude: floatPtr(1)},
			expectedCode: "MISSING_LATITUDE",
		},
		{
			name:         "missing longitude",
			req:          &models.RecordLocationRequest{CollectorID: "collector-1", Latitude: floatPtr(1)},
			expectedCode: "MISSING_LONGITUDE",
		},
		{
			name: "latitude above range",
			req: &models.RecordLocationRequest{
				CollectorID: "collector-1", Latitude: floatPtr(95), Longitude: floatPtr(1),
			},
			expectedCode: "INVALID_LATITUDE",
		},
		{
			name: "longitude below range",
			req: &models.RecordLocationRequest{
				CollectorID: "collector-1", Latitude: floatPtr(1), Longitude: floatPtr(-180.5),
			},
			expectedCode: "INVALID_LONGITUDE",
		},
		{
			name: "negative speed",
			req: &models.RecordLocationRequest{
				CollectorID: "collector-1", Latitude: floatPtr(1), Longitude: floatPtr(1), Speed: floatPtr(-1),
			},
			expectedCode: "INVALID_SPEED",
		},
		{
			name: "speed above cap",
			req: &models.RecordLocationRequest{
				CollectorID: "collector-1", Latitude: floatPtr(1), Longitude: floatPtr(1), Speed: floatPtr(301),
			},
			expectedCode: "INVALID_SPEED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := NewTrackingUC(mocks.NewMockTrackingRepo(ctrl), nil, mocks.NewMockTrackingGW(ctrl))

			_, err := uc.RecordLocation(context.Background(), tt.req)

			require.Error(t, err)
			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.expectedCode, appErr.Code)
		})
	}
}

func TestRecordLocation_AcceptsSpeedBounds(t *testing.T) {
	for _, speed := range []float64{0, 300} {
		ctrl := gomock.NewController(t)

		mockRepo := mocks.NewMockTrackingRepo(ctrl)
		mockGW := mocks.NewMockTrackingGW(ctrl)
		uc := NewTrackingUC(mockRepo, nil, mockGW)

		mockRepo.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, location *models.TrackingLocation) (*models.TrackingLocation, error) {
				return location, nil
			})
		mockGW.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any())

		_, err := uc.RecordLocation(context.Background(), &models.RecordLocationRequest{
			CollectorID: "collector-1",
			Latitude:    floatPtr(1),
			Longitude:   floatPtr(1),
			Speed:       floatPtr(speed),
		})

		require.NoError(t, err)
		ctrl.Finish()
	}
}

func TestRecordLocation_CacheFailureDoesNotFailRequest(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	mockCache := mocks.NewMockLocationCache(ctrl)
	mockGW := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(mockRepo, mockCache, mockGW)

	mockRepo.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, location *models.TrackingLocation) (*models.TrackingLocation, error) {
			return location, nil
		})
	mockCache.EXPECT().StoreCurrentLocation(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	mockGW.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any())

	// Act
	_, err := uc.RecordLocation(context.Background(), &models.RecordLocationRequest{
		CollectorID: "collector-1",
		Latitude:    floatPtr(1),
		Longitude:   floatPtr(1),
	})

	// Assert
	require.NoError(t, err)
}

func TestGetCurrentLocation_CacheHitSkipsRepo(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	mockCache := mocks.NewMockLocationCache(ctrl)
	uc := NewTrackingUC(mockRepo, mockCache, mocks.NewMockTrackingGW(ctrl))

	cached := &models.TrackingLocation{ID: 7, CollectorID: "collector-1"}
	mockCache.EXPECT().GetCurrentLocation(gomock.Any(), "collector-1").Return(cached, nil)

	// Act
	location, err := uc.GetCurrentLocation(context.Background(), "collector-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, cached, location)
}

func TestGetCurrentLocation_CacheMissFallsBackToRepo(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	mockCache := mocks.NewMockLocationCache(ctrl)
	uc := NewTrackingUC(mockRepo, mockCache, mocks.NewMockTrackingGW(ctrl))

	mockCache.EXPECT().GetCurrentLocation(gomock.Any(), "collector-1").
		Return(nil, errors.New("location not cached"))
	fromDB := &models.TrackingLocation{ID: 9, CollectorID: "collector-1"}
	mockRepo.EXPECT().GetCurrentLocation(gomock.Any(), "collector-1").Return(fromDB, nil)

	// Act
	location, err := uc.GetCurrentLocation(context.Background(), "collector-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fromDB, location)
}

func TestGetCurrentLocation_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	uc := NewTrackingUC(mockRepo, nil, mocks.NewMockTrackingGW(ctrl))

	mockRepo.EXPECT().GetCurrentLocation(gomock.Any(), "ghost").
		Return(nil, sql.ErrNoRows)

	// Act
	_, err := uc.GetCurrentLocation(context.Background(), "ghost")

	// Assert
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "LOCATION_NOT_FOUND", appErr.Code)
}

func TestGetHistory_ClampsLimitAndOffset(t *testing.T) {
	tests := []struct {
		name           string
		limit          int
		offset         int
		expectedLimit  int
		expectedOffset int
	}{
		{"zero limit uses default", 0, 0, 100, 0},
		{"limit above maximum is capped", 1000, 0, 500, 0},
		{"negative offset reset to zero", 25, -10, 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockTrackingRepo(ctrl)
			uc := NewTrackingUC(mockRepo, nil, mocks.NewMockTrackingGW(ctrl))

			mockRepo.EXPECT().ListHistory(gomock.Any(), models.TrackingHistoryFilter{
				CollectorID: "collector-1",
				Limit:       tt.expectedLimit,
				Offset:      tt.expectedOffset,
			}).Return([]*models.TrackingLocation{}, nil)

			_, err := uc.GetHistory(context.Background(), models.TrackingHistoryFilter{
				CollectorID: "collector-1",
				Limit:       tt.limit,
				Offset:      tt.offset,
			})

			require.NoError(t, err)
		})
	}
}

func TestDeleteLocation_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	uc := NewTrackingUC(mockRepo, nil, mocks.NewMockTrackingGW(ctrl))

	mockRepo.EXPECT().DeleteLocation(gomock.Any(), int64(404)).
		Return(nil, sql.ErrNoRows)

	// Act
	_, err := uc.DeleteLocation(context.Background(), 404)

	// Assert
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Location record not found", appErr.Message)
}
