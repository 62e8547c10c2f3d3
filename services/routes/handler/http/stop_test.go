package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/routes/mocks"
)

func TestGetStops_RequiresRouteID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRouteStopHandler(mocks.NewMockRouteUC(ctrl))

	c, rec := newRouteContext(t, http.MethodGet, "/route-stops", "")

	// Act
	err := handler.GetStops(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_ROUTE_ID", body["code"])
}

func TestGetStops_Ordered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteStopHandler(mockUC)

	c, rec := newRouteContext(t, http.MethodGet, "/route-stops?route_id=2", "")

	mockUC.EXPECT().
		ListStops(gomock.Any(), int64(2)).
		Return([]*models.RouteStop{
			{ID: 10, RouteID: 2, StopOrder: 1},
			{ID: 11, RouteID: 2, StopOrder: 2},
		}, nil)

	err := handler.GetStops(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stops []models.RouteStop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stops))
	require.Len(t, stops, 2)
	assert.Equal(t, 1, stops[0].StopOrder)
}

func TestCreateStop_AcceptsStringAndNumberIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteStopHandler(mockUC)

	for _, body := range []string{
		`{"routeId":2,"pickupId":7,"stopOrder":3,"address":"12 Recycle Lane","wasteType":"plastic"}`,
		`{"routeId":"2","pickupId":"7","stopOrder":"3","address":"12 Recycle Lane","wasteType":"plastic"}`,
	} {
		c, rec := newRouteContext(t, http.MethodPost, "/route-stops", body)

		mockUC.EXPECT().
			CreateStop(gomock.Any(), gomock.Any()).
			Return(&models.RouteStop{ID: 12, RouteID: 2, PickupID: 7, StopOrder: 3, Status: "pending"}, nil)

		err := handler.CreateStop(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}

func TestUpdateStop_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewRouteStopHandler(mocks.NewMockRouteUC(ctrl))

	c, rec := newRouteContext(t, http.MethodPut, "/route-stops", `{"status":"completed"}`)

	err := handler.UpdateStop(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "MISSING_STOP_ID", body["code"])
}

func TestUpdateStop_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRouteUC(ctrl)
	handler := NewRouteStopHandler(mockUC)

	c, rec := newRouteContext(t, http.MethodPut, "/route-stops?id=10", `{"status":"completed"}`)

	mockUC.EXPECT().
		UpdateStop(gomock.Any(), int64(10), gomock.Any()).
		Return(&models.RouteStop{ID: 10, RouteID: 2, Status: "completed"}, nil)

	err := handler.UpdateStop(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
