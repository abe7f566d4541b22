package impl

import (
	"context"
	"testing"

	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	"heatmap/internal/domain/repository"
	mockRepo "heatmap/internal/mocks/repository"
	mockSvc "heatmap/internal/mocks/service"
	"heatmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	zipLocator   *mockSvc.MockZipLocator
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	zipLocator := mockSvc.NewMockZipLocator(t)

	service := NewLocationService(LocationServiceParams{
		LocationRepo: locationRepo,
		ZipLocator:   zipLocator,
		Logger:       newDiscardLogger(),
	})

	return locationServiceFixtures{
		service:      service,
		locationRepo: locationRepo,
		zipLocator:   zipLocator,
	}
}

func validLocationInput() *usecase.CreateLocationInput {
	return &usecase.CreateLocationInput{
		Name:         "Joe's Coffee",
		Address:      "123 Main St",
		City:         "Kansas City",
		State:        "MO",
		ZipCode:      "64101",
		BusinessType: "restaurant",
	}
}

func TestLocationService_CreateLocation_BackfillsCoordinates(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	caller := authz.NewCaller(uuid.New(), entity.RoleUser)
	input := validLocationInput()

	fx.zipLocator.EXPECT().Lookup("64101").Return(orb.Point{-94.5859, 39.1049}, true)
	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, caller, input)

	require.NoError(t, err)
	require.NotNil(t, location.Latitude)
	require.NotNil(t, location.Longitude)
	assert.InDelta(t, 39.1049, *location.Latitude, 1e-9)
	assert.InDelta(t, -94.5859, *location.Longitude, 1e-9)
	assert.Equal(t, caller.UserID, location.UserID)
}

func TestLocationService_CreateLocation_KeepsProvidedCoordinates(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	caller := authz.NewCaller(uuid.New(), entity.RoleUser)
	lat, lon := 39.0, -94.6
	input := validLocationInput()
	input.Latitude = &lat
	input.Longitude = &lon

	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, caller, input)

	require.NoError(t, err)
	assert.Equal(t, &lat, location.Latitude)
	assert.Equal(t, &lon, location.Longitude)
}

func TestLocationService_CreateLocation_PartialCoordinatesNotOverwritten(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	caller := authz.NewCaller(uuid.New(), entity.RoleUser)
	lat := 39.0
	input := validLocationInput()
	input.Latitude = &lat

	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, caller, input)

	require.NoError(t, err)
	assert.Equal(t, &lat, location.Latitude)
	assert.Nil(t, location.Longitude)
}

func TestLocationService_CreateLocation_UnknownZipLeavesCoordinatesEmpty(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	caller := authz.NewCaller(uuid.New(), entity.RoleUser)
	input := validLocationInput()
	input.ZipCode = "99999"

	fx.zipLocator.EXPECT().Lookup("99999").Return(orb.Point{}, false)
	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, caller, input)

	require.NoError(t, err)
	assert.Nil(t, location.Latitude)
	assert.Nil(t, location.Longitude)
}

func TestLocationService_CreateLocation_InvalidLatitude(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	caller := authz.NewCaller(uuid.New(), entity.RoleUser)
	lat, lon := 91.0, 0.0
	input := validLocationInput()
	input.Latitude = &lat
	input.Longitude = &lon

	location, err := fx.service.CreateLocation(ctx, caller, input)

	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLocationService_CreateLocation_UnknownBusinessTypeFoldsToOther(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	caller := authz.NewCaller(uuid.New(), entity.RoleUser)
	input := validLocationInput()
	input.BusinessType = "alpaca farm"

	fx.zipLocator.EXPECT().Lookup("64101").Return(orb.Point{-94.5859, 39.1049}, true)
	fx.locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, caller, input)

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessTypeOther, location.BusinessType)
}

func TestLocationService_CreateLocation_Unauthenticated(t *testing.T) {
	fx := createTestLocationService(t)

	location, err := fx.service.CreateLocation(context.Background(), authz.Anonymous(), validLocationInput())

	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestLocationService_GetLocation_OwnerCanRead(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	stored := &entity.Location{ID: locationID, UserID: userID}

	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(stored, nil)

	location, err := fx.service.GetLocation(ctx, authz.NewCaller(userID, entity.RoleUser), locationID)

	require.NoError(t, err)
	assert.Equal(t, stored, location)
}

func TestLocationService_GetLocation_OtherUserForbidden(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()
	stored := &entity.Location{ID: locationID, UserID: uuid.New()}

	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(stored, nil)

	location, err := fx.service.GetLocation(ctx, authz.NewCaller(uuid.New(), entity.RoleUser), locationID)

	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestLocationService_GetLocation_AdminCanReadAnyRow(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()
	stored := &entity.Location{ID: locationID, UserID: uuid.New()}

	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(stored, nil)

	location, err := fx.service.GetLocation(ctx, authz.NewCaller(uuid.New(), entity.RoleAdmin), locationID)

	require.NoError(t, err)
	assert.Equal(t, stored, location)
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().FindByID(ctx, locationID).Return(nil, repository.ErrLocationNotFound)

	location, err := fx.service.GetLocation(ctx, authz.NewCaller(uuid.New(), entity.RoleUser), locationID)

	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_ListLocations_AdminSeesAll(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	expected := []*entity.Location{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.locationRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	locations, err := fx.service.ListLocations(ctx, authz.NewCaller(uuid.New(), entity.RoleAdmin))

	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestLocationService_ListLocations_UserSeesOwnRows(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Location{{ID: uuid.New(), UserID: userID}}

	fx.locationRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	locations, err := fx.service.ListLocations(ctx, authz.NewCaller(userID, entity.RoleUser))

	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}
