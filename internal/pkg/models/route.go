package models

import (
	"encoding/json"
	"time"
)

// RouteStatus represents the lifecycle state of a collection route
type RouteStatus string

const (
	RouteStatusPlanned   RouteStatus = "planned"
	RouteStatusActive    RouteStatus = "active"
	RouteStatusCompleted RouteStatus = "completed"
)

// ValidRouteStatuses is the closed set of accepted route statuses
var ValidRouteStatuses = []string{"planned", "active", "completed"}

// ValidStopStatuses is the closed set of accepted route stop statuses
var ValidStopStatuses = []string{"pending", "in-progress", "completed", "skipped"}

// Route represents a planned collection run for a collector
type Route struct {
	ID            int64      `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	CollectorID   string     `json:"collectorId" db:"collector_id"`
	Status        string     `json:"status" db:"status"`
	TotalDistance float64    `json:"totalDistance" db:"total_distance"`
	TotalPickups  int        `json:"totalPickups" db:"total_pickups"`
	StartTime     *time.Time `json:"startTime" db:"start_time"`
	EndTime       *time.Time `json:"endTime" db:"end_time"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

// RouteWithStops is a route with its ordered stops inlined
type RouteWithStops struct {
	Route
	Stops []*RouteStop `json:"stops"`
}

// RouteStop represents one pickup within a route. stop_order defines the
// traversal sequence and stops are always returned ordered by it ascending.
type RouteStop struct {
	ID            int64      `json:"id" db:"id"`
	RouteID       int64      `json:"routeId" db:"route_id"`
	PickupID      int64      `json:"pickupId" db:"pickup_id"`
	StopOrder     int        `json:"stopOrder" db:"stop_order"`
	Address       string     `json:"address" db:"address"`
	WasteType     string     `json:"wasteType" db:"waste_type"`
	Status        string     `json:"status" db:"status"`
	ArrivalTime   *time.Time `json:"arrivalTime" db:"arrival_time"`
	DepartureTime *time.Time `json:"departureTime" db:"departure_time"`
}

// CreateRouteRequest is the payload for planning a route
type CreateRouteRequest struct {
	UserID        *string  `json:"userId"`
	UserIDSnake   *string  `json:"user_id"`
	Name          string   `json:"name"`
	CollectorID   string   `json:"collectorId"`
	TotalDistance *float64 `json:"totalDistance"`
	TotalPickups  *int     `json:"totalPickups"`
}

// UpdateRouteRequest is the payload for partial route updates. The collector
// identity is immutable after creation; the identity fields exist only to
// reject attempts to change it.
type UpdateRouteRequest struct {
	UserID           *string    `json:"userId"`
	UserIDSnake      *string    `json:"user_id"`
	CollectorID      *string    `json:"collectorId"`
	CollectorIDSnake *string    `json:"collector_id"`
	Status           *string    `json:"status"`
	StartTime        *time.Time `json:"startTime"`
	EndTime          *time.Time `json:"endTime"`
}

// RouteUpdate carries the validated set of route columns to mutate
type RouteUpdate struct {
	Status    *string
	StartTime *time.Time
	EndTime   *time.Time
}

// Empty reports whether no field would be mutated
func (u *RouteUpdate) Empty() bool {
	return u.Status == nil && u.StartTime == nil && u.EndTime == nil
}

// RouteStopUpdate carries the validated set of stop columns to mutate
type RouteStopUpdate struct {
	Status        *string
	ArrivalTime   *time.Time
	DepartureTime *time.Time
}

// Empty reports whether no field would be mutated
func (u *RouteStopUpdate) Empty() bool {
	return u.Status == nil && u.ArrivalTime == nil && u.DepartureTime == nil
}

// RouteListFilter narrows a route listing
type RouteListFilter struct {
	CollectorID string
	Status      string
	Limit       int
	Offset      int
}

// CreateRouteStopRequest is the payload for adding a stop to a route.
// Numeric identifiers are accepted as either JSON numbers or strings.
type CreateRouteStopRequest struct {
	RouteID   json.Number `json:"routeId"`
	PickupID  json.Number `json:"pickupId"`
	StopOrder json.Number `json:"stopOrder"`
	Address   string      `json:"address"`
	WasteType string      `json:"wasteType"`
}

// UpdateRouteStopRequest is the payload for partial stop updates
type UpdateRouteStopRequest struct {
	Status        *string    `json:"status"`
	ArrivalTime   *time.Time `json:"arrivalTime"`
	DepartureTime *time.Time `json:"departureTime"`
}
