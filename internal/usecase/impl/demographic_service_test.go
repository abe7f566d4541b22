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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// demographicServiceFixtures holds all test dependencies for demographic service tests.
type demographicServiceFixtures struct {
	service         usecase.DemographicUsecase
	txManager       *mockRepo.MockTransactionManager
	demographicRepo *mockRepo.MockDemographicRepository
}

func createTestDemographicService(t *testing.T) demographicServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	demographicRepo := mockRepo.NewMockDemographicRepository(t)

	service := NewDemographicService(DemographicServiceParams{
		TxManager:       txManager,
		DemographicRepo: demographicRepo,
		Logger:          newDiscardLogger(),
	})

	return demographicServiceFixtures{
		service:         service,
		txManager:       txManager,
		demographicRepo: demographicRepo,
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestDemographicService_ListDemographics_DerivesIncomeRange(t *testing.T) {
	fx := createTestDemographicService(t)

	ctx := context.Background()
	records := []*entity.Demographic{
		{ZipCode: "64101", MedianIncome: int64Ptr(35000)},
		{ZipCode: "64113", MedianIncome: int64Ptr(150000)},
		{ZipCode: "51601"},
	}

	fx.demographicRepo.EXPECT().FindAll(ctx).Return(records, nil)

	outputs, err := fx.service.ListDemographics(ctx)

	require.NoError(t, err)
	require.Len(t, outputs, 3)
	assert.Equal(t, entity.IncomeLow, outputs[0].IncomeRange)
	assert.Equal(t, entity.IncomeHigh, outputs[1].IncomeRange)
	assert.Equal(t, entity.IncomeUnknown, outputs[2].IncomeRange)
}

func TestDemographicService_GetDemographic_Success(t *testing.T) {
	fx := createTestDemographicService(t)

	ctx := context.Background()
	record := &entity.Demographic{ZipCode: "66207", City: "Overland Park", MedianIncome: int64Ptr(78000)}

	fx.demographicRepo.EXPECT().FindByZip(ctx, "66207").Return(record, nil)

	output, err := fx.service.GetDemographic(ctx, "66207")

	require.NoError(t, err)
	assert.Equal(t, "66207", output.ZipCode)
	assert.Equal(t, entity.IncomeUpperMiddle, output.IncomeRange)
}

func TestDemographicService_GetDemographic_NotFound(t *testing.T) {
	fx := createTestDemographicService(t)

	ctx := context.Background()
	fx.demographicRepo.EXPECT().FindByZip(ctx, "00000").Return(nil, repository.ErrDemographicNotFound)

	output, err := fx.service.GetDemographic(ctx, "00000")

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDemographicService_BulkLoad_RequiresAdmin(t *testing.T) {
	fx := createTestDemographicService(t)

	ctx := context.Background()
	records := []*usecase.DemographicRecordInput{{ZipCode: "64101"}}

	output, err := fx.service.BulkLoad(ctx, authz.NewCaller(uuid.New(), entity.RoleUser), records)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDemographicService_BulkLoad_Unauthenticated(t *testing.T) {
	fx := createTestDemographicService(t)

	output, err := fx.service.BulkLoad(context.Background(), authz.Anonymous(), nil)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestDemographicService_BulkLoad_EmptyBatch(t *testing.T) {
	fx := createTestDemographicService(t)

	output, err := fx.service.BulkLoad(context.Background(), authz.NewCaller(uuid.New(), entity.RoleAdmin), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, output.Inserted)
	assert.Equal(t, 0, output.Updated)
}

func TestDemographicService_BulkLoad_CountsInsertedAndUpdated(t *testing.T) {
	fx := createTestDemographicService(t)

	ctx := context.Background()
	records := []*usecase.DemographicRecordInput{
		{ZipCode: "64101", MedianIncome: int64Ptr(42000)},
		{ZipCode: "66207", MedianIncome: int64Ptr(78000)},
		{ZipCode: "50022", MedianIncome: int64Ptr(51000)},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDemographicRepo := mockRepo.NewMockDemographicRepository(t)

			mockFactory.EXPECT().DemographicRepo().Return(mockDemographicRepo)

			mockDemographicRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Demographic")).
				RunAndReturn(func(ctx context.Context, record *entity.Demographic) (bool, error) {
					// The middle record simulates a pre-existing row.
					return record.ZipCode != "66207", nil
				})

			return fn(mockFactory)
		})

	output, err := fx.service.BulkLoad(ctx, authz.NewCaller(uuid.New(), entity.RoleAdmin), records)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Inserted)
	assert.Equal(t, 1, output.Updated)
}

func TestDemographicService_BulkLoad_MissingZipFailsBatch(t *testing.T) {
	fx := createTestDemographicService(t)

	ctx := context.Background()
	records := []*usecase.DemographicRecordInput{
		{ZipCode: "64101"},
		{ZipCode: "   "},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDemographicRepo := mockRepo.NewMockDemographicRepository(t)

			mockFactory.EXPECT().DemographicRepo().Return(mockDemographicRepo)

			mockDemographicRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Demographic")).
				Return(true, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.BulkLoad(ctx, authz.NewCaller(uuid.New(), entity.RoleAdmin), records)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDemographicService_BulkLoad_UpsertErrorFailsBatch(t *testing.T) {
	fx := createTestDemographicService(t)

	ctx := context.Background()
	records := []*usecase.DemographicRecordInput{{ZipCode: "64101"}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockDemographicRepo := mockRepo.NewMockDemographicRepository(t)

			mockFactory.EXPECT().DemographicRepo().Return(mockDemographicRepo)

			mockDemographicRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Demographic")).
				Return(false, errors.New("connection reset"))

			return fn(mockFactory)
		})

	output, err := fx.service.BulkLoad(ctx, authz.NewCaller(uuid.New(), entity.RoleAdmin), records)

	assert.Nil(t, output)
	assert.ErrorContains(t, err, "failed to upsert demographic for zip 64101")
}
