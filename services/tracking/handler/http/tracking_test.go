package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/tracking/mocks"
)

func newTrackingContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetCurrentLocation_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	handler := NewTrackingHandler(mockUC)

	c, rec := newTrackingContext(http.MethodGet, "/tracking?collector_id=collector-1", "")

	mockUC.EXPECT().GetCurrentLocation(gomock.Any(), "collector-1").
		Return(&models.TrackingLocation{ID: 7, CollectorID: "collector-1"}, nil)

	// Act
	err := handler.GetCurrentLocation(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "collector-1", body["collectorId"])
}

func TestGetCurrentLocation_MissingCollectorID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTrackingHandler(mocks.NewMockTrackingUC(ctrl))
	c, rec := newTrackingContext(http.MethodGet, "/tracking", "")

	// Act
	err := handler.GetCurrentLocation(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_COLLECTOR_ID", body["code"])
}

func TestRecordLocation_Created(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	handler := NewTrackingHandler(mockUC)

	payload := `{"collectorId":"collector-1","latitude":-6.2,"longitude":106.8,"speed":20}`
	c, rec := newTrackingContext(http.MethodPost, "/tracking", payload)

	mockUC.EXPECT().RecordLocation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.RecordLocationRequest) (*models.TrackingLocation, error) {
			assert.Equal(t, "collector-1", req.CollectorID)
			require.NotNil(t, req.Latitude)
			assert.Equal(t, -6.2, *req.Latitude)
			return &models.TrackingLocation{ID: 21, CollectorID: req.CollectorID}, nil
		})

	// Act
	err := handler.RecordLocation(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetHistory_ParsesTimeWindow(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	handler := NewTrackingHandler(mockUC)

	target := "/tracking/history?collector_id=collector-1" +
		"&start_time=2026-08-01T00:00:00Z&end_time=2026-08-02T00:00:00Z&route_id=4&limit=10"
	c, rec := newTrackingContext(http.MethodGet, target, "")

	mockUC.EXPECT().GetHistory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter models.TrackingHistoryFilter) ([]*models.TrackingLocation, error) {
			assert.Equal(t, "collector-1", filter.CollectorID)
			require.NotNil(t, filter.StartTime)
			assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), filter.StartTime.UTC())
			require.NotNil(t, filter.EndTime)
			require.NotNil(t, filter.RouteID)
			assert.Equal(t, int64(4), *filter.RouteID)
			assert.Equal(t, 10, filter.Limit)
			return []*models.TrackingLocation{}, nil
		})

	// Act
	err := handler.GetHistory(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetHistory_InvalidStartTime(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTrackingHandler(mocks.NewMockTrackingUC(ctrl))
	c, rec := newTrackingContext(http.MethodGet, "/tracking/history?collector_id=collector-1&start_time=yesterday", "")

	// Act
	err := handler.GetHistory(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_START_TIME", body["code"])
}

func TestGetHistory_MissingCollectorID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewTrackingHandler(mocks.NewMockTrackingUC(ctrl))
	c, rec := newTrackingContext(http.MethodGet, "/tracking/history", "")

	// Act
	err := handler.GetHistory(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteLocation_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTrackingUC(ctrl)
	handler := NewTrackingHandler(mockUC)

	c, rec := newTrackingContext(http.MethodDelete, "/tracking/history?id=5", "")

	mockUC.EXPECT().DeleteLocation(gomock.Any(), int64(5)).
		Return(&models.TrackingLocation{ID: 5, CollectorID: "collector-1"}, nil)

	// Act
	err := handler.DeleteLocation(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Location record deleted successfully", body["message"])
	record, ok := body["record"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), record["id"])
}

func TestDeleteLocation_InvalidID(t *testing.T) {
	tests := []string{"", "abc", "0", "-1"}

	for _, id := range tests {
		ctrl := gomock.NewController(t)

		handler := NewTrackingHandler(mocks.NewMockTrackingUC(ctrl))
		c, rec := newTrackingContext(http.MethodDelete, "/tracking/history?id="+id, "")

		err := handler.DeleteLocation(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "INVALID_ID", body["code"])

		ctrl.Finish()
	}
}
