package models

import (
	"time"
)

// ValidItemTypes is the closed set of accepted donation item types
var ValidItemTypes = []string{"electronics", "furniture", "clothing", "books", "toys", "kitchenware", "other"}

// ValidConditions is the closed set of accepted item conditions
var ValidConditions = []string{"excellent", "good", "fair"}

// DonationStatus represents the lifecycle state of a donation
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusAccepted  DonationStatus = "accepted"
	DonationStatusRejected  DonationStatus = "rejected"
	DonationStatusPickedUp  DonationStatus = "picked-up"
	DonationStatusDelivered DonationStatus = "delivered"
)

// ValidDonationStatuses is the closed set of accepted donation statuses
var ValidDonationStatuses = []string{"pending", "accepted", "rejected", "picked-up", "delivered"}

// Donation represents a reusable item offered to an NGO. updated_at is
// bumped on every mutation.
type Donation struct {
	ID            int64     `json:"id" db:"id"`
	UserID        string    `json:"userId" db:"user_id"`
	NgoID         *string   `json:"ngoId" db:"ngo_id"`
	ItemType      string    `json:"itemType" db:"item_type"`
	ItemName      string    `json:"itemName" db:"item_name"`
	Condition     string    `json:"condition" db:"condition"`
	Quantity      int       `json:"quantity" db:"quantity"`
	Description   string    `json:"description" db:"description"`
	PickupAddress string    `json:"pickupAddress" db:"pickup_address"`
	ContactNumber string    `json:"contactNumber" db:"contact_number"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateDonationRequest is the payload for offering a donation
type CreateDonationRequest struct {
	UserID        *string `json:"userId"`
	UserIDSnake   *string `json:"user_id"`
	NgoID         *string `json:"ngoId"`
	ItemType      string  `json:"itemType"`
	ItemName      string  `json:"itemName"`
	Condition     string  `json:"condition"`
	Quantity      *int    `json:"quantity"`
	Description   string  `json:"description"`
	PickupAddress string  `json:"pickupAddress"`
	ContactNumber string  `json:"contactNumber"`
}

// UpdateDonationRequest is the payload for partial donation updates
type UpdateDonationRequest struct {
	UserID      *string `json:"userId"`
	UserIDSnake *string `json:"user_id"`
	Status      *string `json:"status"`
	NgoID       *string `json:"ngoId"`
}

// DonationUpdate carries the validated set of columns to mutate. A NgoID
// pointing at an empty string clears the assignment. updated_at is always
// bumped alongside.
type DonationUpdate struct {
	Status    *string
	NgoID     *string
	UpdatedAt time.Time
}

// Empty reports whether no domain field would be mutated
func (u *DonationUpdate) Empty() bool {
	return u.Status == nil && u.NgoID == nil
}

// DonationListFilter narrows a donation listing
type DonationListFilter struct {
	OwnerID string
	Status  string
	UserID  string
	NgoID   string
	Limit   int
	Offset  int
}
