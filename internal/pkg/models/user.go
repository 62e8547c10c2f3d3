package models

import (
	"time"
)

// User roles within the platform
const (
	RoleUser      = "user"
	RoleCollector = "collector"
	RoleNGO       = "ngo"
	RoleAdmin     = "admin"
)

// ValidRoles is the closed set of accepted user roles
var ValidRoles = []string{RoleUser, RoleCollector, RoleNGO, RoleAdmin}

// User represents an account in the system. Every other entity references a
// user as owner, collector, or NGO recipient.
type User struct {
	ID            string    `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	EmailVerified bool      `json:"emailVerified" db:"email_verified"`
	Name          string    `json:"name" db:"name"`
	Role          string    `json:"role" db:"role"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest is the payload for credential authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the authenticated user and their bearer token
type AuthResponse struct {
	User      *User  `json:"user"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
