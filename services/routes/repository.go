package routes

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// RouteRepo defines the route persistence operations. Routes carry no
// per-record ownership, so mutations are conditional on id only.
type RouteRepo interface {
	CreateRoute(ctx context.Context, route *models.Route) (*models.Route, error)
	GetRouteByID(ctx context.Context, id int64) (*models.Route, error)
	ListRoutes(ctx context.Context, filter models.RouteListFilter) ([]*models.Route, error)
	UpdateRoute(ctx context.Context, id int64, update *models.RouteUpdate) (*models.Route, error)
	DeleteRoute(ctx context.Context, id int64) (*models.Route, error)
}

// RouteStopRepo defines the route stop persistence operations
type RouteStopRepo interface {
	CreateStop(ctx context.Context, stop *models.RouteStop) (*models.RouteStop, error)
	ListStopsByRoute(ctx context.Context, routeID int64) ([]*models.RouteStop, error)
	UpdateStop(ctx context.Context, id int64, update *models.RouteStopUpdate) (*models.RouteStop, error)
}
