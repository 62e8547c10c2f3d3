package donations

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// DonationUC defines the donation service use case operations
type DonationUC interface {
	CreateDonation(ctx context.Context, callerID string, req *models.CreateDonationRequest) (*models.Donation, error)
	GetDonation(ctx context.Context, callerID string, id int64) (*models.Donation, error)
	ListDonations(ctx context.Context, callerID string, status, userID, ngoID string, limit, offset int) ([]*models.Donation, error)
	UpdateDonation(ctx context.Context, callerID string, id int64, req *models.UpdateDonationRequest) (*models.Donation, error)
	DeleteDonation(ctx context.Context, callerID string, id int64) (*models.Donation, error)
}
