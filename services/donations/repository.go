package donations

import (
	"context"

	"github.com/greencycle/greencycle/internal/pkg/models"
)

// DonationRepo defines the donation persistence operations. Mutations are
// single conditional statements scoped to the owning user.
type DonationRepo interface {
	CreateDonation(ctx context.Context, donation *models.Donation) (*models.Donation, error)
	GetDonationByID(ctx context.Context, id int64, ownerID string) (*models.Donation, error)
	ListDonations(ctx context.Context, filter models.DonationListFilter) ([]*models.Donation, error)
	UpdateDonation(ctx context.Context, id int64, ownerID string, update *models.DonationUpdate) (*models.Donation, error)
	DeleteDonation(ctx context.Context, id int64, ownerID string) (*models.Donation, error)
}
