package impl

import (
	"context"
	"testing"
	"time"

	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	mockRepo "heatmap/internal/mocks/repository"
	"heatmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// searchHistoryServiceFixtures holds all test dependencies for search history service tests.
type searchHistoryServiceFixtures struct {
	service           usecase.SearchHistoryUsecase
	searchHistoryRepo *mockRepo.MockSearchHistoryRepository
}

func createTestSearchHistoryService(t *testing.T) searchHistoryServiceFixtures {
	searchHistoryRepo := mockRepo.NewMockSearchHistoryRepository(t)

	service := NewSearchHistoryService(SearchHistoryServiceParams{
		SearchHistoryRepo: searchHistoryRepo,
		Logger:            newDiscardLogger(),
	})

	return searchHistoryServiceFixtures{
		service:           service,
		searchHistoryRepo: searchHistoryRepo,
	}
}

func TestSearchHistoryService_RecordSearch_Success(t *testing.T) {
	fx := createTestSearchHistoryService(t)

	ctx := context.Background()
	caller := authz.NewCaller(uuid.New(), entity.RoleUser)
	filters := entity.Document(`{"business_type":"coffee"}`)
	before := time.Now()

	fx.searchHistoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SearchHistory")).
		Return(nil)

	entry, err := fx.service.RecordSearch(ctx, caller, &usecase.RecordSearchInput{
		ZipCode: "64101",
		Filters: filters,
	})

	require.NoError(t, err)
	assert.Equal(t, caller.UserID, entry.UserID)
	assert.Equal(t, "64101", entry.ZipCode)
	assert.Equal(t, filters, entry.Filters)
	assert.False(t, entry.SearchedAt.Before(before))
}

func TestSearchHistoryService_RecordSearch_Unauthenticated(t *testing.T) {
	fx := createTestSearchHistoryService(t)

	entry, err := fx.service.RecordSearch(context.Background(), authz.Anonymous(), &usecase.RecordSearchInput{ZipCode: "64101"})

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestSearchHistoryService_ListRecentSearches_Success(t *testing.T) {
	fx := createTestSearchHistoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.SearchHistory{
		{ID: uuid.New(), UserID: userID, ZipCode: "64101"},
		{ID: uuid.New(), UserID: userID, ZipCode: "66048"},
	}

	fx.searchHistoryRepo.EXPECT().FindRecentByUser(ctx, userID).Return(expected, nil)

	entries, err := fx.service.ListRecentSearches(ctx, authz.NewCaller(userID, entity.RoleUser))

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestSearchHistoryService_ListRecentSearches_Unauthenticated(t *testing.T) {
	fx := createTestSearchHistoryService(t)

	entries, err := fx.service.ListRecentSearches(context.Background(), authz.Anonymous())

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}
