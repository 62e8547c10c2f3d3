package usecase

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greencycle/greencycle/internal/pkg/apperrors"
	"github.com/greencycle/greencycle/internal/pkg/models"
	"github.com/greencycle/greencycle/services/donations/mocks"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func validDonationRequest() *models.CreateDonationRequest {
	return &models.CreateDonationRequest{
		ItemType:      "furniture",
		ItemName:      "Oak bookshelf",
		Condition:     "good",
		Quantity:      intPtr(1),
		Description:   "Five shelves, minor scratches",
		PickupAddress: "12 Recycle Lane",
		ContactNumber: "+14155550101",
	}
}

func TestCreateDonation_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockRepo.EXPECT().
		CreateDonation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, donation *models.Donation) (*models.Donation, error) {
			assert.Equal(t, "user-1", donation.UserID)
			assert.Equal(t, "pending", donation.Status)
			assert.Nil(t, donation.NgoID)
			assert.Equal(t, donation.CreatedAt, donation.UpdatedAt)
			donation.ID = 4
			return donation, nil
		})

	uc := NewDonationUC(mockRepo)

	// Act
	created, err := uc.CreateDonation(context.Background(), "user-1", validDonationRequest())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
}

func TestCreateDonation_RejectsBodyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDonationUC(mocks.NewMockDonationRepo(ctrl))

	req := validDonationRequest()
	req.UserIDSnake = strPtr("someone-else")

	_, err := uc.CreateDonation(context.Background(), "user-1", req)

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUserIDNotAllowed, apperrors.From(err).Code)
}

func TestCreateDonation_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDonationUC(mocks.NewMockDonationRepo(ctrl))

	tests := []struct {
		name    string
		mutate  func(r *models.CreateDonationRequest)
		wantMsg string
	}{
		{"no item type", func(r *models.CreateDonationRequest) { r.ItemType = "" }, "itemType is required"},
		{"no item name", func(r *models.CreateDonationRequest) { r.ItemName = " " }, "itemName is required"},
		{"no condition", func(r *models.CreateDonationRequest) { r.Condition = "" }, "condition is required"},
		{"no quantity", func(r *models.CreateDonationRequest) { r.Quantity = nil }, "quantity is required"},
		{"no description", func(r *models.CreateDonationRequest) { r.Description = "" }, "description is required"},
		{"no address", func(r *models.CreateDonationRequest) { r.PickupAddress = "" }, "pickupAddress is required"},
		{"no contact", func(r *models.CreateDonationRequest) { r.ContactNumber = "" }, "contactNumber is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validDonationRequest()
			tt.mutate(req)

			_, err := uc.CreateDonation(context.Background(), "user-1", req)

			require.Error(t, err)
			appErr := apperrors.From(err)
			assert.Equal(t, apperrors.CodeMissingField, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestCreateDonation_InvalidEnumsAndQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDonationUC(mocks.NewMockDonationRepo(ctrl))

	req := validDonationRequest()
	req.ItemType = "vehicles"
	_, err := uc.CreateDonation(context.Background(), "user-1", req)
	require.Error(t, err)
	assert.Equal(t, "INVALID_ITEM_TYPE", apperrors.From(err).Code)

	req = validDonationRequest()
	req.Condition = "broken"
	_, err = uc.CreateDonation(context.Background(), "user-1", req)
	require.Error(t, err)
	assert.Equal(t, "INVALID_CONDITION", apperrors.From(err).Code)

	req = validDonationRequest()
	req.Quantity = intPtr(0)
	_, err = uc.CreateDonation(context.Background(), "user-1", req)
	require.Error(t, err)
	assert.Equal(t, "INVALID_QUANTITY", apperrors.From(err).Code)
}

func TestListDonations_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDonationUC(mocks.NewMockDonationRepo(ctrl))

	_, err := uc.ListDonations(context.Background(), "user-1", "archived", "", "", 0, 0)

	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	assert.Contains(t, appErr.Message, "pending, accepted, rejected, picked-up, delivered")
}

func TestListDonations_ClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockRepo.EXPECT().
		ListDonations(gomock.Any(), models.DonationListFilter{
			OwnerID: "user-1",
			Limit:   100,
		}).
		Return([]*models.Donation{}, nil)

	uc := NewDonationUC(mockRepo)

	_, err := uc.ListDonations(context.Background(), "user-1", "", "", "", 250, 0)
	assert.NoError(t, err)
}

func TestUpdateDonation_StatusAndNgo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockRepo.EXPECT().
		UpdateDonation(gomock.Any(), int64(4), "user-1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64, ownerID string, update *models.DonationUpdate) (*models.Donation, error) {
			require.NotNil(t, update.Status)
			assert.Equal(t, "accepted", *update.Status)
			require.NotNil(t, update.NgoID)
			assert.Equal(t, "ngo-7", *update.NgoID)
			assert.False(t, update.UpdatedAt.IsZero())
			return &models.Donation{ID: id, UserID: ownerID, Status: *update.Status, NgoID: update.NgoID}, nil
		})

	uc := NewDonationUC(mockRepo)

	updated, err := uc.UpdateDonation(context.Background(), "user-1", 4, &models.UpdateDonationRequest{
		Status: strPtr("accepted"),
		NgoID:  strPtr("ngo-7"),
	})

	require.NoError(t, err)
	assert.Equal(t, "accepted", updated.Status)
}

func TestUpdateDonation_NoFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewDonationUC(mocks.NewMockDonationRepo(ctrl))

	_, err := uc.UpdateDonation(context.Background(), "user-1", 4, &models.UpdateDonationRequest{})

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNoUpdates, apperrors.From(err).Code)
}

func TestUpdateDonation_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	mockRepo.EXPECT().
		UpdateDonation(gomock.Any(), int64(99), "user-1", gomock.Any()).
		Return(nil, sql.ErrNoRows)

	uc := NewDonationUC(mockRepo)

	_, err := uc.UpdateDonation(context.Background(), "user-1", 99, &models.UpdateDonationRequest{
		Status: strPtr("accepted"),
	})

	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestDeleteDonation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDonationRepo(ctrl)
	deleted := &models.Donation{ID: 4, UserID: "user-1", ItemName: "Oak bookshelf"}
	mockRepo.EXPECT().
		DeleteDonation(gomock.Any(), int64(4), "user-1").
		Return(deleted, nil)

	uc := NewDonationUC(mockRepo)

	got, err := uc.DeleteDonation(context.Background(), "user-1", 4)

	require.NoError(t, err)
	assert.Equal(t, deleted, got)
}
