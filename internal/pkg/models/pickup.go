package models

import (
	"time"
)

// WasteType is the category of waste scheduled for collection
type WasteType string

const (
	WastePlastic WasteType = "plastic"
	WasteMetal   WasteType = "metal"
	WastePaper   WasteType = "paper"
	WasteGlass   WasteType = "glass"
	WasteEwaste  WasteType = "ewaste"
	WasteOrganic WasteType = "organic"
	WasteMixed   WasteType = "mixed"
)

// ValidWasteTypes is the closed set of accepted waste types
var ValidWasteTypes = []string{"plastic", "metal", "paper", "glass", "ewaste", "organic", "mixed"}

// PickupTime is the time-of-day slot for a pickup
type PickupTime string

// ValidPickupTimes is the closed set of accepted pickup time slots
var ValidPickupTimes = []string{"morning", "afternoon", "evening"}

// PickupStatus represents the lifecycle state of a pickup
type PickupStatus string

const (
	PickupStatusPending    PickupStatus = "pending"
	PickupStatusAssigned   PickupStatus = "assigned"
	PickupStatusInProgress PickupStatus = "in-progress"
	PickupStatusCompleted  PickupStatus = "completed"
	PickupStatusCancelled  PickupStatus = "cancelled"
)

// ValidPickupStatuses is the closed set of accepted pickup statuses
var ValidPickupStatuses = []string{"pending", "assigned", "in-progress", "completed", "cancelled"}

// Pickup represents a scheduled waste pickup. collector_id and actual_weight
// are populated only once the pickup has progressed past pending.
type Pickup struct {
	ID              int64      `json:"id" db:"id"`
	UserID          string     `json:"userId" db:"user_id"`
	WasteType       string     `json:"wasteType" db:"waste_type"`
	PickupDate      string     `json:"pickupDate" db:"pickup_date"`
	PickupTime      string     `json:"pickupTime" db:"pickup_time"`
	Address         string     `json:"address" db:"address"`
	EstimatedWeight float64    `json:"estimatedWeight" db:"estimated_weight"`
	ActualWeight    *float64   `json:"actualWeight" db:"actual_weight"`
	Notes           *string    `json:"notes" db:"notes"`
	Status          string     `json:"status" db:"status"`
	CollectorID     *string    `json:"collectorId" db:"collector_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	CompletedAt     *time.Time `json:"completedAt" db:"completed_at"`
}

// CreatePickupRequest is the payload for scheduling a pickup. The owner is
// always taken from the authenticated caller; the UserID fields exist only to
// detect identity spoofing attempts.
type CreatePickupRequest struct {
	UserID          *string  `json:"userId"`
	UserIDSnake     *string  `json:"user_id"`
	WasteType       string   `json:"wasteType"`
	PickupDate      string   `json:"pickupDate"`
	PickupTime      string   `json:"pickupTime"`
	Address         string   `json:"address"`
	EstimatedWeight *float64 `json:"estimatedWeight"`
	Notes           *string  `json:"notes"`
}

// UpdatePickupRequest is the payload for partial pickup updates. Only fields
// present in the body are mutated.
type UpdatePickupRequest struct {
	UserID       *string    `json:"userId"`
	UserIDSnake  *string    `json:"user_id"`
	Status       *string    `json:"status"`
	CollectorID  *string    `json:"collectorId"`
	ActualWeight *float64   `json:"actualWeight"`
	Notes        *string    `json:"notes"`
	CompletedAt  *time.Time `json:"completedAt"`
}

// PickupUpdate carries the validated set of columns to mutate. Nil fields
// are left untouched.
type PickupUpdate struct {
	Status       *string
	CollectorID  *string
	ActualWeight *float64
	Notes        *string
	CompletedAt  *time.Time
}

// Empty reports whether no field would be mutated
func (u *PickupUpdate) Empty() bool {
	return u.Status == nil && u.CollectorID == nil && u.ActualWeight == nil &&
		u.Notes == nil && u.CompletedAt == nil
}

// PickupListFilter narrows a pickup listing
type PickupListFilter struct {
	OwnerID     string
	Status      string
	UserID      string
	CollectorID string
	Limit       int
	Offset      int
}

// PickupStatusEvent is published when a pickup changes status
type PickupStatusEvent struct {
	PickupID   int64     `json:"pickup_id"`
	UserID     string    `json:"user_id"`
	OldStatus  string    `json:"old_status,omitempty"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}
