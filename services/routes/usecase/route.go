package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/routes"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// RouteUC implements the routes.RouteUC interface
type RouteUC struct {
	routeRepo routes.RouteRepo
	stopRepo  routes.RouteStopRepo
}

// NewRouteUC creates a new route use case
func NewRouteUC(routeRepo routes.RouteRepo, stopRepo routes.RouteStopRepo) *RouteUC {
	return &RouteUC{
		routeRepo: routeRepo,
		stopRepo:  stopRepo,
	}
}

// CreateRoute validates and stores a new collection route
func (uc *RouteUC) CreateRoute(ctx context.Context, req *models.CreateRouteRequest) (*models.Route, error) {
	if req.UserID != nil || req.UserIDSnake != nil {
		return nil, apperrors.BadRequest(apperrors.CodeUserIDNotAllowed,
			"User ID cannot be provided in request body")
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.BadRequest("MISSING_NAME", "Route name is required")
	}
	if strings.TrimSpace(req.CollectorID) == "" {
		return nil, apperrors.BadRequest("MISSING_COLLECTOR_ID", "Collector ID is required")
	}
	if req.TotalDistance == nil {
		return nil, apperrors.BadRequest("MISSING_TOTAL_DISTANCE", "Total distance is required")
	}
	if req.TotalPickups == nil {
		return nil, apperrors.BadRequest("MISSING_TOTAL_PICKUPS", "Total pickups is required")
	}

	if *req.TotalDistance < 0 {
		return nil, apperrors.BadRequest("INVALID_TOTAL_DISTANCE",
			"Total distance must be a positive number")
	}
	if *req.TotalPickups < 0 {
		return nil, apperrors.BadRequest("INVALID_TOTAL_PICKUPS",
			"Total pickups must be a positive integer")
	}

	route := &models.Route{
		Name:          strings.TrimSpace(req.Name),
		CollectorID:   strings.TrimSpace(req.CollectorID),
		Status:        string(models.RouteStatusPlanned),
		TotalDistance: *req.TotalDistance,
		TotalPickups:  *req.TotalPickups,
		CreatedAt:     models.Now(),
	}

	return uc.routeRepo.CreateRoute(ctx, route)
}

// GetRoute retrieves a route with its stops inlined in traversal order
func (uc *RouteUC) GetRoute(ctx context.Context, id int64) (*models.RouteWithStops, error) {
	route, err := uc.routeRepo.GetRouteByID(ctx, id)
	if err != nil {
		return nil, mapRouteNotFound(err)
	}

	stops, err := uc.stopRepo.ListStopsByRoute(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.RouteWithStops{Route: *route, Stops: stops}, nil
}

// ListRoutes lists routes newest-first with optional filters
func (uc *RouteUC) ListRoutes(ctx context.Context, status, collectorID string, limit, offset int) ([]*models.Route, error) {
	if status != "" && !contains(models.ValidRouteStatuses, status) {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
			"Invalid status. Must be one of: "+strings.Join(models.ValidRouteStatuses, ", "))
	}

	filter := models.RouteListFilter{
		CollectorID: collectorID,
		Status:      status,
		Limit:       clampLimit(limit, defaultListLimit, maxListLimit),
		Offset:      clampOffset(offset),
	}

	return uc.routeRepo.ListRoutes(ctx, filter)
}

// UpdateRoute applies a partial update. The collector assignment is
// immutable after creation, so any identity field in the body is rejected.
func (uc *RouteUC) UpdateRoute(ctx context.Context, id int64, req *models.UpdateRouteRequest) (*models.Route, error) {
	if req.UserID != nil || req.UserIDSnake != nil || req.CollectorID != nil || req.CollectorIDSnake != nil {
		return nil, apperrors.BadRequest(apperrors.CodeUserIDNotAllowed,
			"User ID cannot be provided in request body")
	}

	update := &models.RouteUpdate{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if req.Status != nil {
		if !contains(models.ValidRouteStatuses, *req.Status) {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
				"Invalid status. Must be one of: "+strings.Join(models.ValidRouteStatuses, ", "))
		}
		update.Status = req.Status
	}

	if update.Empty() {
		return nil, apperrors.BadRequest(apperrors.CodeNoUpdates, "No valid fields to update")
	}

	updated, err := uc.routeRepo.UpdateRoute(ctx, id, update)
	if err != nil {
		return nil, mapRouteNotFound(err)
	}

	return updated, nil
}

// DeleteRoute removes a route and returns the deleted record
func (uc *RouteUC) DeleteRoute(ctx context.Context, id int64) (*models.Route, error) {
	deleted, err := uc.routeRepo.DeleteRoute(ctx, id)
	if err != nil {
		return nil, mapRouteNotFound(err)
	}
	return deleted, nil
}

// CreateStop validates and stores a new route stop. Numeric identifiers
// are coerced from string-or-number input.
func (uc *RouteUC) CreateStop(ctx context.Context, req *models.CreateRouteStopRequest) (*models.RouteStop, error) {
	routeID, err := parseStopNumber(req.RouteID, "Route ID is required", "MISSING_ROUTE_ID",
		"Valid route ID is required", "INVALID_ROUTE_ID")
	if err != nil {
		return nil, err
	}
	pickupID, err := parseStopNumber(req.PickupID, "Pickup ID is required", "MISSING_PICKUP_ID",
		"Valid pickup ID is required", "INVALID_PICKUP_ID")
	if err != nil {
		return nil, err
	}
	stopOrder, err := parseStopNumber(req.StopOrder, "Stop order is required", "MISSING_STOP_ORDER",
		"Valid stop order is required", "INVALID_STOP_ORDER")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Address) == "" {
		return nil, apperrors.BadRequest("MISSING_ADDRESS", "Address is required")
	}
	if strings.TrimSpace(req.WasteType) == "" {
		return nil, apperrors.BadRequest("MISSING_WASTE_TYPE", "Waste type is required")
	}

	stop := &models.RouteStop{
		RouteID:   routeID,
		PickupID:  pickupID,
		StopOrder: int(stopOrder),
		Address:   strings.TrimSpace(req.Address),
		WasteType: strings.TrimSpace(req.WasteType),
		Status:    "pending",
	}

	return uc.stopRepo.CreateStop(ctx, stop)
}

// ListStops lists a route's stops in traversal order
func (uc *RouteUC) ListStops(ctx context.Context, routeID int64) ([]*models.RouteStop, error) {
	return uc.stopRepo.ListStopsByRoute(ctx, routeID)
}

// UpdateStop applies a partial update to a stop's progress fields
func (uc *RouteUC) UpdateStop(ctx context.Context, id int64, req *models.UpdateRouteStopRequest) (*models.RouteStop, error) {
	update := &models.RouteStopUpdate{
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
	}

	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if !contains(models.ValidStopStatuses, status) {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
				"Invalid status. Must be one of: "+strings.Join(models.ValidStopStatuses, ", "))
		}
		update.Status = &status
	}

	if update.Empty() {
		return nil, apperrors.BadRequest("NO_UPDATE_FIELDS", "No valid fields to update")
	}

	updated, err := uc.stopRepo.UpdateStop(ctx, id, update)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("STOP_NOT_FOUND", "Route stop not found")
		}
		return nil, err
	}

	return updated, nil
}

func mapRouteNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound("ROUTE_NOT_FOUND", "Route not found")
	}
	return err
}

// parseStopNumber coerces a string-or-number JSON value into an id,
// distinguishing an absent value from a malformed one
func parseStopNumber(raw json.Number, missingMsg, missingCode, invalidMsg, invalidCode string) (int64, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return 0, apperrors.BadRequest(missingCode, missingMsg)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, apperrors.BadRequest(invalidCode, invalidMsg)
	}
	return n, nil
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
