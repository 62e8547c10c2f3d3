package models

import (
	"time"
)

// Coordinate and speed bounds for tracking inserts. Speed is capped at
// 300 km/h across every tracking endpoint.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MaxSpeedKmh  = 300.0
)

// TrackingLocation is one row of the append-only collector position log.
// The timestamp is always assigned by the server at insertion; the current
// location of a collector is the row with the latest timestamp.
type TrackingLocation struct {
	ID          int64     `json:"id" db:"id"`
	CollectorID string    `json:"collectorId" db:"collector_id"`
	RouteID     *int64    `json:"routeId" db:"route_id"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Geohash     string    `json:"geohash" db:"geohash"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
	Speed       *float64  `json:"speed" db:"speed"`
}

// RecordLocationRequest is the payload for appending a tracking row.
// Client-supplied timestamps are never accepted.
type RecordLocationRequest struct {
	CollectorID string   `json:"collectorId"`
	RouteID     *int64   `json:"routeId"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Speed       *float64 `json:"speed"`
}

// TrackingHistoryFilter narrows a location history query
type TrackingHistoryFilter struct {
	CollectorID string
	RouteID     *int64
	StartTime   *time.Time
	EndTime     *time.Time
	Limit       int
	Offset      int
}

// LocationEvent is published when a collector position is recorded
type LocationEvent struct {
	CollectorID string    `json:"collector_id"`
	RouteID     *int64    `json:"route_id,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Geohash     string    `json:"geohash"`
	Timestamp   time.Time `json:"timestamp"`
}
