package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	jwtpkg "github.com/greencycle/greencycle/internal/pkg/jwt"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/users"
)

// UserUC implements the users.UserUC interface
type UserUC struct {
	repo users.UserRepo
	cfg  *models.Config
}

// NewUserUC creates a new user use case
func NewUserUC(repo users.UserRepo, cfg *models.Config) *UserUC {
	return &UserUC{
		repo: repo,
		cfg:  cfg,
	}
}

// Register creates an account with a bcrypt password hash and issues a
// bearer token
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.BadRequest("INVALID_EMAIL", "A valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.BadRequest("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = models.RoleUser
	}
	if !contains(models.ValidRoles, role) {
		return nil, apperrors.BadRequest("INVALID_ROLE",
			"Invalid role. Must be one of: "+strings.Join(models.ValidRoles, ", "))
	}

	if existing, _ := uc.repo.GetUserByEmail(ctx, email); existing != nil {
		return nil, apperrors.BadRequest("EMAIL_IN_USE", "An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueToken(user)
}

// Login verifies credentials and issues a bearer token
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperrors.BadRequest(apperrors.CodeMissingField, "Email and password are required")
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	return uc.issueToken(user)
}

// GetUserByID retrieves a user profile
func (uc *UserUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("USER_NOT_FOUND", "User not found")
	}
	return user, nil
}

func (uc *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
