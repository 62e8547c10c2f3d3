package routes

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// RouteUC defines the route service use case operations
type RouteUC interface {
	CreateRoute(ctx context.Context, req *models.CreateRouteRequest) (*models.Route, error)
	GetRoute(ctx context.Context, id int64) (*models.RouteWithStops, error)
	ListRoutes(ctx context.Context, status, collectorID string, limit, offset int) ([]*models.Route, error)
	UpdateRoute(ctx context.Context, id int64, req *models.UpdateRouteRequest) (*models.Route, error)
	DeleteRoute(ctx context.Context, id int64) (*models.Route, error)

	CreateStop(ctx context.Context, req *models.CreateRouteStopRequest) (*models.RouteStop, error)
	ListStops(ctx context.Context, routeID int64) ([]*models.RouteStop, error)
	UpdateStop(ctx context.Context, id int64, req *models.UpdateRouteStopRequest) (*models.RouteStop, error)
}
