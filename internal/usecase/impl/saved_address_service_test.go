package impl

import (
	"context"
	"testing"

	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	"heatmap/internal/domain/repository"
	mockRepo "heatmap/internal/mocks/repository"
	"heatmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// savedAddressServiceFixtures holds all test dependencies for saved address service tests.
type savedAddressServiceFixtures struct {
	service          usecase.SavedAddressUsecase
	savedAddressRepo *mockRepo.MockSavedAddressRepository
}

func createTestSavedAddressService(t *testing.T) savedAddressServiceFixtures {
	savedAddressRepo := mockRepo.NewMockSavedAddressRepository(t)

	service := NewSavedAddressService(SavedAddressServiceParams{
		SavedAddressRepo: savedAddressRepo,
		Logger:           newDiscardLogger(),
	})

	return savedAddressServiceFixtures{
		service:          service,
		savedAddressRepo: savedAddressRepo,
	}
}

func TestSavedAddressService_CreateSavedAddress_Success(t *testing.T) {
	fx := createTestSavedAddressService(t)

	ctx := context.Background()
	caller := authz.NewCaller(uuid.New(), entity.RoleUser)
	input := &usecase.CreateSavedAddressInput{
		Name:        "Johnson House",
		Address:     "456 Oak Ave",
		City:        "Leavenworth",
		State:       "KS",
		ZipCode:     "66048",
		AddressType: "residential",
		FiltersUsed: entity.Document(`{"min_income":50000}`),
	}

	fx.savedAddressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SavedAddress")).
		Return(nil)

	address, err := fx.service.CreateSavedAddress(ctx, caller, input)

	require.NoError(t, err)
	assert.Equal(t, caller.UserID, address.UserID)
	assert.Equal(t, entity.AddressTypeResidential, address.AddressType)
	assert.Equal(t, input.FiltersUsed, address.FiltersUsed)
}

func TestSavedAddressService_CreateSavedAddress_RequiresAddress(t *testing.T) {
	fx := createTestSavedAddressService(t)

	ctx := context.Background()
	caller := authz.NewCaller(uuid.New(), entity.RoleUser)
	input := &usecase.CreateSavedAddressInput{Address: "   "}

	address, err := fx.service.CreateSavedAddress(ctx, caller, input)

	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSavedAddressService_CreateSavedAddress_Unauthenticated(t *testing.T) {
	fx := createTestSavedAddressService(t)

	address, err := fx.service.CreateSavedAddress(context.Background(), authz.Anonymous(), &usecase.CreateSavedAddressInput{Address: "456 Oak Ave"})

	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestSavedAddressService_ListSavedAddresses_AdminSeesAll(t *testing.T) {
	fx := createTestSavedAddressService(t)

	ctx := context.Background()
	expected := []*entity.SavedAddress{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.savedAddressRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	addresses, err := fx.service.ListSavedAddresses(ctx, authz.NewCaller(uuid.New(), entity.RoleAdmin))

	require.NoError(t, err)
	assert.Equal(t, expected, addresses)
}

func TestSavedAddressService_ListSavedAddresses_UserSeesOwnRows(t *testing.T) {
	fx := createTestSavedAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.SavedAddress{{ID: uuid.New(), UserID: userID}}

	fx.savedAddressRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	addresses, err := fx.service.ListSavedAddresses(ctx, authz.NewCaller(userID, entity.RoleUser))

	require.NoError(t, err)
	assert.Equal(t, expected, addresses)
}

func TestSavedAddressService_UpdateSavedAddress_OwnerCanRename(t *testing.T) {
	fx := createTestSavedAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	stored := &entity.SavedAddress{ID: addressID, UserID: userID, Name: "Old Name", Notes: "keep"}
	newName := "New Name"

	fx.savedAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)
	fx.savedAddressRepo.EXPECT().UpdateNameAndNotes(ctx, addressID, newName, "keep").Return(nil)

	address, err := fx.service.UpdateSavedAddress(ctx, authz.NewCaller(userID, entity.RoleUser), addressID, &usecase.UpdateSavedAddressInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, newName, address.Name)
	assert.Equal(t, "keep", address.Notes)
}

func TestSavedAddressService_UpdateSavedAddress_OtherUserForbidden(t *testing.T) {
	fx := createTestSavedAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()
	stored := &entity.SavedAddress{ID: addressID, UserID: uuid.New()}
	newName := "New Name"

	fx.savedAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)

	address, err := fx.service.UpdateSavedAddress(ctx, authz.NewCaller(uuid.New(), entity.RoleUser), addressID, &usecase.UpdateSavedAddressInput{Name: &newName})

	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSavedAddressService_UpdateSavedAddress_AdminCanEditAnyRow(t *testing.T) {
	fx := createTestSavedAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()
	stored := &entity.SavedAddress{ID: addressID, UserID: uuid.New(), Name: "Old Name"}
	newNotes := "flagged for follow-up"

	fx.savedAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)
	fx.savedAddressRepo.EXPECT().UpdateNameAndNotes(ctx, addressID, "Old Name", newNotes).Return(nil)

	address, err := fx.service.UpdateSavedAddress(ctx, authz.NewCaller(uuid.New(), entity.RoleAdmin), addressID, &usecase.UpdateSavedAddressInput{Notes: &newNotes})

	require.NoError(t, err)
	assert.Equal(t, newNotes, address.Notes)
}

func TestSavedAddressService_UpdateSavedAddress_NotFound(t *testing.T) {
	fx := createTestSavedAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()
	newName := "New Name"

	fx.savedAddressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrSavedAddressNotFound)

	address, err := fx.service.UpdateSavedAddress(ctx, authz.NewCaller(uuid.New(), entity.RoleUser), addressID, &usecase.UpdateSavedAddressInput{Name: &newName})

	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrSavedAddressNotFound)
}

func TestSavedAddressService_DeleteSavedAddress_OwnerCanDelete(t *testing.T) {
	fx := createTestSavedAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	stored := &entity.SavedAddress{ID: addressID, UserID: userID}

	fx.savedAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)
	fx.savedAddressRepo.EXPECT().Delete(ctx, addressID).Return(nil)

	err := fx.service.DeleteSavedAddress(ctx, authz.NewCaller(userID, entity.RoleUser), addressID)

	require.NoError(t, err)
}

func TestSavedAddressService_DeleteSavedAddress_OtherUserForbidden(t *testing.T) {
	fx := createTestSavedAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()
	stored := &entity.SavedAddress{ID: addressID, UserID: uuid.New()}

	fx.savedAddressRepo.EXPECT().FindByID(ctx, addressID).Return(stored, nil)

	err := fx.service.DeleteSavedAddress(ctx, authz.NewCaller(uuid.New(), entity.RoleUser), addressID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
