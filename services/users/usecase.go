package users

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// UserUC defines the user service use case operations
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
