package users

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// UserRepo defines the user persistence operations
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
