package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "heatmap/internal/delivery/context"
	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	"heatmap/internal/domain/repository"
	"heatmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchHistoryService implements the SearchHistoryUsecase interface.
type searchHistoryService struct {
	searchHistoryRepo repository.SearchHistoryRepository
	logger            *slog.Logger
}

// SearchHistoryServiceParams holds dependencies for SearchHistoryService, injected by Fx.
type SearchHistoryServiceParams struct {
	fx.In

	SearchHistoryRepo repository.SearchHistoryRepository
	Logger            *slog.Logger
}

// NewSearchHistoryService is the constructor for searchHistoryService.
func NewSearchHistoryService(params SearchHistoryServiceParams) usecase.SearchHistoryUsecase {
	return &searchHistoryService{
		searchHistoryRepo: params.SearchHistoryRepo,
		logger:            params.Logger,
	}
}

func (srv *searchHistoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordSearch appends an entry owned by the caller. The filter document is
// stored verbatim.
func (srv *searchHistoryService) RecordSearch(ctx context.Context, caller authz.Caller, input *usecase.RecordSearchInput) (*entity.SearchHistory, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	entry := &entity.SearchHistory{
		UserID:     caller.UserID,
		ZipCode:    input.ZipCode,
		Filters:    input.Filters,
		SearchedAt: time.Now(),
	}

	if err := srv.searchHistoryRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create search history entry")
	}

	srv.log(ctx).Debug("Search recorded", slog.Any("userID", caller.UserID), slog.String("zipCode", input.ZipCode))

	return entry, nil
}

// ListRecentSearches returns the caller's most recent entries, newest first.
func (srv *searchHistoryService) ListRecentSearches(ctx context.Context, caller authz.Caller) ([]*entity.SearchHistory, error) {
	if !caller.Authenticated {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	entries, err := srv.searchHistoryRepo.FindRecentByUser(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent searches")
	}

	return entries, nil
}
