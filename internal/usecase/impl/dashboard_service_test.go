package impl

import (
	"context"
	"testing"

	mockRepo "heatmap/internal/mocks/repository"
	"heatmap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard service tests.
type dashboardServiceFixtures struct {
	service          usecase.DashboardUsecase
	userRepo         *mockRepo.MockUserRepository
	locationRepo     *mockRepo.MockLocationRepository
	demographicRepo  *mockRepo.MockDemographicRepository
	savedAddressRepo *mockRepo.MockSavedAddressRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	demographicRepo := mockRepo.NewMockDemographicRepository(t)
	savedAddressRepo := mockRepo.NewMockSavedAddressRepository(t)

	service := NewDashboardService(DashboardServiceParams{
		UserRepo:         userRepo,
		LocationRepo:     locationRepo,
		DemographicRepo:  demographicRepo,
		SavedAddressRepo: savedAddressRepo,
		Logger:           newDiscardLogger(),
	})

	return dashboardServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		locationRepo:     locationRepo,
		demographicRepo:  demographicRepo,
		savedAddressRepo: savedAddressRepo,
	}
}

func TestDashboardService_GetStats_Success(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().Count(ctx).Return(int64(12), nil)
	fx.locationRepo.EXPECT().Count(ctx).Return(int64(87), nil)
	fx.demographicRepo.EXPECT().Count(ctx).Return(int64(34), nil)
	fx.savedAddressRepo.EXPECT().Count(ctx).Return(int64(5), nil)

	stats, err := fx.service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.DashboardStats{
		Users:          12,
		Locations:      87,
		Demographics:   34,
		SavedAddresses: 5,
	}, stats)
}

func TestDashboardService_GetStats_CountFailure(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().Count(ctx).Return(int64(0), errors.New("connection refused"))

	stats, err := fx.service.GetStats(ctx)

	assert.Nil(t, stats)
	assert.ErrorContains(t, err, "failed to count users")
}
